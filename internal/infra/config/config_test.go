package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	require.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	require.Equal(t, 800, cfg.LLM.MaxTokens)
	require.Equal(t, 4, cfg.Tips.BatchConcurrency)
	require.Equal(t, "0 6 * * *", cfg.Scheduler.PregenerateSpec)
	require.Equal(t, "5 6 * * *", cfg.Scheduler.CleanupSpec)
	require.True(t, cfg.Scheduler.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  readTimeout: 2s
llm:
  model: llama-3.1-8b-instant
  maxTokens: 400
tips:
  batchConcurrency: 8
scheduler:
  timezone: Asia/Colombo
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	require.Equal(t, 400, cfg.LLM.MaxTokens)
	require.Equal(t, 8, cfg.Tips.BatchConcurrency)
	require.Equal(t, "Asia/Colombo", cfg.Scheduler.Timezone)
	// Untouched sections keep their defaults.
	require.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":9090\"\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("LLM_API_KEY", "from-env")
	t.Setenv("TIPS_BATCH_CONCURRENCY", "16")
	t.Setenv("HTTP_CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, "from-env", cfg.LLM.APIKey)
	require.Equal(t, 16, cfg.Tips.BatchConcurrency)
	require.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.HTTP.CORSOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":          func(c *Config) { c.HTTP.Address = "" },
		"empty model":            func(c *Config) { c.LLM.Model = " " },
		"zero max tokens":        func(c *Config) { c.LLM.MaxTokens = 0 },
		"zero concurrency":       func(c *Config) { c.Tips.BatchConcurrency = 0 },
		"valkey without addr":    func(c *Config) { c.Valkey.Enabled = true },
		"empty pregenerate spec": func(c *Config) { c.Scheduler.PregenerateSpec = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
