package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizblocks/internal/store"
)

func TestMockProvider_ReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(radioJSON), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockJSON(map[string]any{"type": "checkbox"}),
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	require.NoError(t, err)
	assert.JSONEq(t, radioJSON, string(first.Content))
	assert.Equal(t, 10, first.Usage.InputTokens)
	assert.Equal(t, "end", first.StopReason)

	second, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"checkbox"}`, string(second.Content))

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
	assert.Equal(t, 3, mock.CallCount())
}

func TestMockProvider_AddResponseAndErrors(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{System: "sys"})
	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl))
	assert.Equal(t, "sys", mock.Calls[0].System)
	assert.Equal(t, "mock", mock.ModelID())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, PurposeRepair, PurposeFrom(WithPurpose(ctx, PurposeRepair)))
}

func TestRequestFollowup(t *testing.T) {
	base := Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "write"}}, MaxTokens: 50}
	next := base.Followup("{}", "fix it")

	assert.Len(t, base.Messages, 1, "original request must not change")
	require.Len(t, next.Messages, 3)
	assert.Equal(t, Message{Role: RoleAssistant, Content: "{}"}, next.Messages[1])
	assert.Equal(t, Message{Role: RoleUser, Content: "fix it"}, next.Messages[2])
	assert.Equal(t, "sys", next.System)
	assert.Equal(t, 50, next.MaxTokens)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, "QUIZBLOCKS_ANTHROPIC_API_KEY is required for the anthropic provider"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, ""},
		{"openai without key", Config{Provider: ProviderOpenAI}, "QUIZBLOCKS_OPENAI_API_KEY is required for the openai provider"},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g"}}, ""},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, "QUIZBLOCKS_OPENROUTER_API_KEY is required for the openrouter provider"},
		{"mock needs no key", Config{Provider: ProviderMock}, ""},
		{"unknown provider", Config{Provider: "cohere"}, `unknown LLM provider: "cohere"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZBLOCKS_LLM_PROVIDER", "openai")
	t.Setenv("QUIZBLOCKS_OPENAI_API_KEY", "sk-env")
	t.Setenv("QUIZBLOCKS_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("QUIZBLOCKS_LLM_TIMEOUT", "90s")
	t.Setenv("QUIZBLOCKS_LLM_MAX_ATTEMPTS", "5")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_BadNumbers(t *testing.T) {
	t.Setenv("QUIZBLOCKS_LLM_TIMEOUT", "soon")
	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "QUIZBLOCKS_LLM_TIMEOUT")

	t.Setenv("QUIZBLOCKS_LLM_TIMEOUT", "")
	t.Setenv("QUIZBLOCKS_LLM_MAX_ATTEMPTS", "0")
	_, err = ConfigFromEnv()
	assert.ErrorContains(t, err, "QUIZBLOCKS_LLM_MAX_ATTEMPTS")
}

func TestDiscoverConfig(t *testing.T) {
	for _, name := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(name, "")
	}

	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.True(t, cfg.HasKey())
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-haiku-4-5-20251001")
	require.NotNil(t, c)
	assert.InDelta(t, 0.006, c.Cost(1000, 1000), 1e-9)

	assert.NotNil(t, LookupCost("openai/gpt-4o-mini"))
	assert.Nil(t, LookupCost("made-up-model"))
}

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func TestLoggingProvider_RecordsRequests(t *testing.T) {
	repo := openTestRepo(t)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(radioJSON), Usage: Usage{InputTokens: 12, OutputTokens: 34}},
		unavailable(),
	)
	p := WithLogging(mock, ProviderMock, repo)
	ctx := WithPurpose(context.Background(), PurposeAuthoring)

	req := Request{
		System:   "You write quizzes.",
		Messages: []Message{{Role: RoleUser, Content: "Planets"}},
		Schema:   radioSchema(),
	}
	_, err := p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "unavailable")

	assert.True(t, ok.Success)
	assert.Equal(t, PurposeAuthoring, ok.Purpose)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Equal(t, 34, ok.OutputTokens)
	assert.JSONEq(t, radioJSON, ok.ResponseBody)
	assert.True(t, strings.HasPrefix(ok.RequestBody, "[system]\nYou write quizzes.\n\n[user]\nPlanets\n\n[schema: test-quiz-radio]\n"))
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock

	p, err := NewProvider(context.Background(), cfg, openTestRepo(t))
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg.Provider = ProviderAnthropic
	_, err = NewProvider(context.Background(), cfg, nil)
	assert.Error(t, err)
}
