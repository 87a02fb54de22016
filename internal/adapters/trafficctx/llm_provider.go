package trafficctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// LLMContextProvider fabricates the ten traffic-condition features by asking
// an OpenAI-compatible chat-completion endpoint. The model is an untrusted
// data source: its output is brace-extracted, parsed, key-validated, and
// type-coerced before anything reaches the estimator. Every failure on that
// path resolves to the untouched default feature set; TrafficFeatures never
// returns an error.
type LLMContextProvider struct {
	client *openai.Client
	model  string
}

// NewLLMContextProvider builds the provider. An empty token yields a degraded
// provider that always returns defaults, logged once here as a warning rather
// than per request.
func NewLLMContextProvider(token, baseURL, model string) *LLMContextProvider {
	if strings.TrimSpace(token) == "" {
		logger.Warn("language model token missing; traffic context will use defaults")
		return &LLMContextProvider{model: model}
	}

	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}

	return &LLMContextProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// TrafficFeatures returns AI-fabricated features merged over the defaults, or
// the untouched defaults when the model path fails in any way.
func (p *LLMContextProvider) TrafficFeatures(ctx context.Context, trip domain.Trip) domain.TrafficFeatures {
	defaults := domain.DefaultTrafficFeatures()

	if p.client == nil {
		return defaults
	}

	raw, err := p.generate(ctx, trip)
	if err != nil {
		logger.Warn("traffic context generation failed; using defaults", zap.Error(err))
		return defaults
	}

	return mergeFeatures(raw)
}

// generate performs the chat-completion call and returns the parsed, validated
// (but not yet coerced) feature object.
func (p *LLMContextProvider) generate(ctx context.Context, trip domain.Trip) (map[string]any, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(trip)},
		},
		// Low temperature favors deterministic-ish structured output.
		Temperature: 0.2,
		MaxTokens:   512,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("unexpected data format from AI API")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)

	jsonStr, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("AI returned invalid JSON: %w", err)
	}

	// Minimal structural validation: the two load-bearing numeric keys must be
	// present, otherwise the whole object is rejected (no partial merge).
	if _, ok := parsed["Traffic Volume"]; !ok {
		return nil, errors.New("parsed JSON from AI is missing required keys")
	}
	if _, ok := parsed["Average Speed"]; !ok {
		return nil, errors.New("parsed JSON from AI is missing required keys")
	}

	return parsed, nil
}

// extractJSONObject returns the substring between the first '{' and the last
// '}'. Models routinely wrap JSON in prose or markdown fencing; this defends
// against both without trusting anything beyond the braces.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON object found in AI response")
	}

	return text[start : end+1], nil
}
