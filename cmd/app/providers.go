package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
	"github.com/vitalink/wellness-backend/internal/domain/vitals"
	"github.com/vitalink/wellness-backend/internal/infra/config"
	"github.com/vitalink/wellness-backend/internal/infra/llm/groq"
	"github.com/vitalink/wellness-backend/internal/infra/scheduler"
	"github.com/vitalink/wellness-backend/internal/infra/tipcache"
	"github.com/vitalink/wellness-backend/internal/infra/userdir"
	"github.com/vitalink/wellness-backend/internal/infra/vitalsrepo"
)

func provideTipsConfig(cfg *config.Config) dailytips.Config {
	return dailytips.Config{
		BatchConcurrency: cfg.Tips.BatchConcurrency,
	}
}

// provideGenerator returns nil when no API key is configured; the service
// then serves every request from the deterministic catalog.
func provideGenerator(cfg *config.Config, logger *slog.Logger) dailytips.Generator {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, tips served from the static catalog")
		return nil
	}
	client, err := groq.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.RequestTimeout)
	if err != nil {
		logger.Error("failed to create llm client, tips served from the static catalog", "error", err)
		return nil
	}
	return dailytips.NewExternalGenerator(dailytips.GeneratorConfig{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, client, logger)
}

// providePostgresPool builds the shared connection pool. A nil return means
// postgres is not configured and all stores fall back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory backends")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory backends", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory backends", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory backends", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres pool ready")
	return pool
}

// provideTipCache prefers valkey, then postgres, then memory.
func provideTipCache(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) dailytips.Cache {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back", "error", err)
		} else if client, err := valkey.NewClient(opt); err != nil {
			logger.Error("failed to create valkey client, falling back", "error", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
				logger.Error("valkey ping failed, falling back", "error", err)
				client.Close()
			} else {
				logger.Info("valkey tip cache enabled", "addr", cfg.Valkey.Addr)
				return tipcache.NewValkeyStore(client, "tips")
			}
		}
	}
	if pool != nil {
		logger.Info("postgres tip cache enabled")
		return tipcache.NewPostgresStore(pool)
	}
	return tipcache.NewMemoryStore()
}

func provideSnapshotSource(pool *pgxpool.Pool, logger *slog.Logger) vitals.SnapshotSource {
	if pool != nil {
		return vitalsrepo.NewPostgresRepository(pool)
	}
	logger.Info("using memory snapshot source")
	return vitalsrepo.NewMemoryRepository()
}

func provideUserDirectory(pool *pgxpool.Pool, logger *slog.Logger) dailytips.UserDirectory {
	if pool != nil {
		return userdir.NewPostgresDirectory(pool)
	}
	logger.Info("using memory user directory")
	return userdir.NewMemoryDirectory()
}

func provideScheduler(cfg *config.Config, svc dailytips.Service, logger *slog.Logger) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Scheduler, svc, logger)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
