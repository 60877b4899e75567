// Package cohere adapts the Cohere generate API. Cohere has no system-role
// concept, so the system and user prompts are combined into a single
// formatted prompt. Streaming responses are newline-delimited JSON objects
// carrying a text field per token.
package cohere

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

const Vendor = "Cohere"

var (
	DefaultModel    = "command"
	DefaultEndpoint = "https://api.cohere.ai/v1/generate"
	DefaultClient   = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client   *http.Client
	apiKey   string
	endpoint string
	model    string
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:   os.Getenv("COHERE_API_KEY"),
		endpoint: DefaultEndpoint,
		client:   DefaultClient,
		model:    DefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return "cohere"
}

// formatPrompt combines the system and user prompts in the Cohere template.
func formatPrompt(systemPrompt, userPrompt string) string {
	return fmt.Sprintf("%s\n\nUser: %s\nAssistant:", systemPrompt, userPrompt)
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	body, err := json.Marshal(p.buildRequest(systemPrompt, userPrompt, config, false))
	if err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error marshaling request: %w", err))
	}
	resp, err := p.do(ctx, body)
	if err != nil {
		return llm.Failure(Vendor, err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error decoding response: %w", err))
	}
	if len(result.Generations) == 0 {
		return llm.Failure(Vendor, fmt.Errorf("empty response"))
	}
	return llm.Success(strings.TrimSpace(result.Generations[0].Text))
}

func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	body, err := json.Marshal(p.buildRequest(systemPrompt, userPrompt, config, true))
	if err != nil {
		return llm.NewErrorStream(Vendor, fmt.Errorf("error marshaling request: %w", err))
	}
	resp, err := p.do(ctx, body)
	if err != nil {
		return llm.NewErrorStream(Vendor, err)
	}

	reader := bufio.NewReader(resp.Body)
	return llm.NewSentinelStream(Vendor, resp.Body, func() (string, bool, error) {
		for {
			line, err := reader.ReadBytes('\n')
			if err != nil {
				if err == io.EOF {
					return "", false, nil
				}
				return "", false, err
			}
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			var event StreamEvent
			if err := json.Unmarshal(line, &event); err != nil {
				// Malformed lines are skipped, not fatal
				continue
			}
			if event.IsFinished {
				return "", false, nil
			}
			return event.Text, true, nil
		}
	})
}

func (p *Provider) buildRequest(systemPrompt, userPrompt string, config llm.ModelConfig, stream bool) *Request {
	temperature := config.Float("temperature", 0.7)
	topP := config.Float("p", 1.0)
	topK := config.Int("k", 0)
	return &Request{
		Model:       config.String("model", p.model),
		Prompt:      formatPrompt(systemPrompt, userPrompt),
		Temperature: &temperature,
		MaxTokens:   config.Int("max_tokens", 2000),
		P:           &topP,
		K:           &topK,
		Stream:      stream,
	}
}

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
