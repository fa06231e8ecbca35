package dailytips

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalink/wellness-backend/internal/domain/vitals"
	"github.com/vitalink/wellness-backend/internal/infra/llm/groq"
	apperrors "github.com/vitalink/wellness-backend/pkg/errors"
)

const validPayload = `{
	"diet": [{"title":"Eat greens","shortDescription":"short","longDescription":"long"}],
	"exercise": [{"title":"Walk","shortDescription":"short","longDescription":"long"}],
	"sleep": [{"title":"Sleep earlier","shortDescription":"short","longDescription":"long"}],
	"stress": [{"title":"Breathe","shortDescription":"short","longDescription":"long"}]
}`

func testSnapshot() vitals.Snapshot {
	return vitals.Snapshot{
		UserID:        42,
		RiskLevel:     vitals.RiskModerate,
		Score:         6.5,
		HeartRate:     72,
		BloodPressure: "128/82",
		SpO2:          97.5,
		VascularRisk:  0.4,
		ObservedAt:    time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
	}
}

func testWindow() DayWindow {
	return WindowFor(time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC))
}

func newGeneratorUnderTest(client ChatClient) Generator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExternalGenerator(GeneratorConfig{Model: "llama-test", Temperature: 0.7, MaxTokens: 800}, client, logger)
}

func TestGenerateSuccess(t *testing.T) {
	client := &stubChatClient{content: validPayload}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	require.Len(t, tips, 4)
	require.Equal(t, "Eat greens", tips[CategoryDiet][0].Title)
	require.Equal(t, CategoryDiet, tips[CategoryDiet][0].Category)
	require.Equal(t, 1, client.calls)
}

func TestGeneratePromptEmbedsSnapshotAndSeed(t *testing.T) {
	client := &stubChatClient{content: validPayload}
	_, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	require.Contains(t, client.lastPrompt, "risk_level: MODERATE")
	require.Contains(t, client.lastPrompt, "heart_rate: 72 bpm")
	require.Contains(t, client.lastPrompt, "blood_pressure: 128/82")
	require.Contains(t, client.lastPrompt, "Day seed: 72")
}

func TestGenerateStripsCodeFences(t *testing.T) {
	client := &stubChatClient{content: "```json\n" + validPayload + "\n```"}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	require.Len(t, tips, 4)
}

func TestGenerateCapsCategoriesAtThree(t *testing.T) {
	client := &stubChatClient{content: `{"diet":[
		{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"},{"title":"e"}
	]}`}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	require.Len(t, tips[CategoryDiet], MaxTipsPerCategory)
	require.Equal(t, "a", tips[CategoryDiet][0].Title)
	require.Equal(t, "c", tips[CategoryDiet][2].Title)
}

func TestGeneratePreservesUnknownCategories(t *testing.T) {
	client := &stubChatClient{content: `{"hydration":[{"title":"Drink water","shortDescription":"s","longDescription":"l"}]}`}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	require.Len(t, tips["hydration"], 1)
	require.Equal(t, "hydration", tips["hydration"][0].Category)
}

func TestGenerateAcceptsLegacyDescriptionKey(t *testing.T) {
	client := &stubChatClient{content: `{"diet":[{"title":"t","description":"short form","longDescription":"long form"}]}`}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	tip := tips[CategoryDiet][0]
	require.Equal(t, "short form", tip.ShortDescription)
	require.Equal(t, "long form", tip.LongDescription)
}

func TestGenerateKeepsLongDescriptionIndependent(t *testing.T) {
	client := &stubChatClient{content: `{"diet":[{"title":"t","shortDescription":"short"}]}`}
	tips, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.NoError(t, err)
	tip := tips[CategoryDiet][0]
	require.Equal(t, "short", tip.ShortDescription)
	require.Empty(t, tip.LongDescription)
}

func TestGenerateTransportFailure(t *testing.T) {
	client := &stubChatClient{err: errors.New("dial timeout")}
	_, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationError))
}

func TestGenerateMalformedPayload(t *testing.T) {
	for _, content := range []string{"", "   ", "not json", `{"diet":"oops"}`, "{}"} {
		client := &stubChatClient{content: content}
		_, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
		require.Error(t, err, "content %q", content)
		require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationError))
	}
}

func TestGenerateNoChoices(t *testing.T) {
	client := &stubChatClient{noChoices: true}
	_, err := newGeneratorUnderTest(client).Generate(context.Background(), testSnapshot(), testWindow())
	require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationError))
}

type stubChatClient struct {
	content    string
	err        error
	noChoices  bool
	calls      int
	lastPrompt string
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req groq.ChatCompletionRequest) (groq.ChatCompletionResponse, error) {
	s.calls++
	if len(req.Messages) > 0 {
		s.lastPrompt = req.Messages[len(req.Messages)-1].Content
	}
	if s.err != nil {
		return groq.ChatCompletionResponse{}, s.err
	}
	if s.noChoices {
		return groq.ChatCompletionResponse{}, nil
	}
	var resp groq.ChatCompletionResponse
	resp.Choices = append(resp.Choices, struct {
		Message groq.Message `json:"message"`
	}{Message: groq.Message{Role: "assistant", Content: s.content}})
	return resp, nil
}
