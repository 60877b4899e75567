// Package openaicompletions implements the OpenAI chat-completions wire
// format over raw HTTP. Several vendors expose this exact API shape, so the
// provider is parameterized by vendor label, endpoint, credential variable
// and defaults; the groq and together adapters embed it with their own
// settings.
package openaicompletions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

var (
	DefaultVendor      = "OpenAI"
	DefaultName        = "openai-completions"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultEndpoint    = "https://api.openai.com/v1/chat/completions"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTopP        = 1.0
	DefaultClient      = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client      *http.Client
	apiKey      string
	endpoint    string
	vendor      string
	name        string
	model       string
	temperature float64
	maxTokens   int
	topP        float64
	safePrompt  bool
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:      os.Getenv("OPENAI_API_KEY"),
		endpoint:    DefaultEndpoint,
		client:      DefaultClient,
		vendor:      DefaultVendor,
		name:        DefaultName,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		topP:        DefaultTopP,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return p.name
}

// Vendor returns the label used in error strings, e.g. "Together AI".
func (p *Provider) Vendor() string {
	return p.vendor
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	body, err := json.Marshal(p.buildRequest(systemPrompt, userPrompt, config, false))
	if err != nil {
		return llm.Failure(p.vendor, fmt.Errorf("error marshaling request: %w", err))
	}
	resp, err := p.do(ctx, body)
	if err != nil {
		return llm.Failure(p.vendor, err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return llm.Failure(p.vendor, fmt.Errorf("error decoding response: %w", err))
	}
	if len(result.Choices) == 0 {
		return llm.Failure(p.vendor, fmt.Errorf("empty response"))
	}
	return llm.Success(result.Choices[0].Message.Content)
}

func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	body, err := json.Marshal(p.buildRequest(systemPrompt, userPrompt, config, true))
	if err != nil {
		return llm.NewErrorStream(p.vendor, fmt.Errorf("error marshaling request: %w", err))
	}
	resp, err := p.do(ctx, body)
	if err != nil {
		return llm.NewErrorStream(p.vendor, err)
	}

	reader := llm.NewServerSentEventsReader[StreamResponse](resp.Body)
	return llm.NewSentinelStream(p.vendor, resp.Body, func() (string, bool, error) {
		event, ok := reader.Next()
		if !ok {
			return "", false, reader.Err()
		}
		if len(event.Choices) == 0 {
			return "", true, nil
		}
		return event.Choices[0].Delta.Content, true, nil
	})
}

func (p *Provider) buildRequest(systemPrompt, userPrompt string, config llm.ModelConfig, stream bool) *Request {
	temperature := config.Float("temperature", p.temperature)
	maxTokens := config.Int("max_tokens", p.maxTokens)
	topP := config.Float("top_p", p.topP)
	request := &Request{
		Model: config.String("model", p.model),
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		TopP:        &topP,
		Stream:      stream,
	}
	if p.safePrompt {
		safe := config.Bool("safe_prompt", false)
		request.SafePrompt = &safe
	}
	return request
}

// do issues the request and normalizes non-2xx responses into ProviderErrors.
// The response body is returned open; the caller owns closing it.
func (p *Provider) do(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, providers.NewError(resp.StatusCode, string(errBody))
	}
	return resp, nil
}
