package dailytips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
	"github.com/vitalink/wellness-backend/internal/infra/llm/groq"
	apperrors "github.com/vitalink/wellness-backend/pkg/errors"
)

// Generator produces a personalized tip set from a snapshot. Implementations
// return code generation_error for every failure mode; callers fall back to
// the deterministic tier, never propagate.
type Generator interface {
	Generate(ctx context.Context, snapshot vitals.Snapshot, window DayWindow) (TipsByCategory, error)
}

// ChatClient is the slice of the groq client the generator needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req groq.ChatCompletionRequest) (groq.ChatCompletionResponse, error)
}

// GeneratorConfig carries the completion knobs.
type GeneratorConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

type externalGenerator struct {
	cfg     GeneratorConfig
	client  ChatClient
	breaker *gobreaker.CircuitBreaker[groq.ChatCompletionResponse]
	logger  *slog.Logger
}

// NewExternalGenerator wraps the chat client in a circuit breaker so a dead
// upstream stops costing a full timeout per user once it has tripped.
func NewExternalGenerator(cfg GeneratorConfig, client ChatClient, logger *slog.Logger) Generator {
	breaker := gobreaker.NewCircuitBreaker[groq.ChatCompletionResponse](gobreaker.Settings{
		Name:        "groq-tips",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &externalGenerator{
		cfg:     cfg,
		client:  client,
		breaker: breaker,
		logger:  logger.With("component", "dailytips.generator"),
	}
}

func (g *externalGenerator) Generate(ctx context.Context, snapshot vitals.Snapshot, window DayWindow) (TipsByCategory, error) {
	prompt := buildPrompt(snapshot, window.DaySeed())

	resp, err := g.breaker.Execute(func() (groq.ChatCompletionResponse, error) {
		return g.client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
			Model:       g.cfg.Model,
			Messages:    []groq.Message{{Role: "user", Content: prompt}},
			Temperature: g.cfg.Temperature,
			MaxTokens:   g.cfg.MaxTokens,
		})
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeGenerationError, "completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeGenerationError, "completion returned no choices", nil)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, apperrors.Wrap(apperrors.CodeGenerationError, "completion content empty", nil)
	}
	if !resp.Usage.IsZero() {
		g.logger.Info("tips generated",
			"user_id", snapshot.UserID,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens,
		)
	}

	tips, err := parseTips(content)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeGenerationError, "completion content malformed", err)
	}
	return tips, nil
}

func buildPrompt(s vitals.Snapshot, daySeed int) string {
	return fmt.Sprintf(`You are a cardiometabolic wellness coach. Create 3 concise tips per category.
Categories: diet, exercise, sleep, stress.
Personalize using:
- risk_level: %s
- score: %.1f
- heart_rate: %d bpm
- blood_pressure: %s
- spo2: %.1f%%
- vascular_risk: %.1f
Day seed: %d (change tips daily).
Return JSON only:
{
  "diet": [{"title":"..","shortDescription":"..","longDescription":".."}],
  "exercise": [...3 tips...],
  "sleep": [...3 tips...],
  "stress": [...3 tips...]
}
Keep each shortDescription 20-35 words and each longDescription 40-60 words, friendly, actionable, avoid duplication across categories.`,
		s.RiskLevel, s.Score, s.HeartRate, s.BloodPressure, s.SpO2, s.VascularRisk, daySeed)
}

// tipWire tolerates both the requested field names and the legacy
// "description" key some models emit for the short form.
type tipWire struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	LongDescription  string `json:"longDescription"`
}

func parseTips(raw string) (TipsByCategory, error) {
	sanitized := stripCodeFences(raw)
	if sanitized == "" {
		return nil, errors.New("empty payload")
	}

	var wire map[string][]tipWire
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return nil, err
	}
	if len(wire) == 0 {
		return nil, errors.New("no categories in payload")
	}

	out := make(TipsByCategory, len(wire))
	for category, items := range wire {
		if len(items) > MaxTipsPerCategory {
			items = items[:MaxTipsPerCategory]
		}
		tips := make([]Tip, 0, len(items))
		for _, item := range items {
			short := item.ShortDescription
			if short == "" {
				short = item.Description
			}
			tips = append(tips, Tip{
				Title:            defaultString(item.Title, "Tip"),
				ShortDescription: short,
				LongDescription:  item.LongDescription,
				Category:         category,
			})
		}
		out[category] = tips
	}
	return out, nil
}

func stripCodeFences(raw string) string {
	sanitized := strings.ReplaceAll(raw, "```json", "")
	sanitized = strings.ReplaceAll(sanitized, "```", "")
	return strings.TrimSpace(sanitized)
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
