// Package anthropic adapts the Anthropic messages API. Anthropic accepts
// the system prompt as a distinct top-level field rather than a system-role
// message.
package anthropic

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

const Vendor = "Anthropic"

var (
	DefaultModel     = "claude-3-sonnet-20240229"
	DefaultEndpoint  = "https://api.anthropic.com/v1/messages"
	DefaultMaxTokens = 2000
	DefaultClient    = &http.Client{Timeout: 300 * time.Second}
	DefaultVersion   = "2023-06-01"
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client   *http.Client
	apiKey   string
	endpoint string
	model    string
	version  string
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
		endpoint: DefaultEndpoint,
		client:   DefaultClient,
		model:    DefaultModel,
		version:  DefaultVersion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return "anthropic"
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
	if len(result.Content) == 0 {
		return llm.Failure(Vendor, fmt.Errorf("empty response"))
	}
	return llm.Success(extractText(result.Content))
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

	reader := llm.NewServerSentEventsReader[StreamEvent](resp.Body)
	return llm.NewSentinelStream(Vendor, resp.Body, func() (string, bool, error) {
		for {
			event, ok := reader.Next()
			if !ok {
				return "", false, reader.Err()
			}
			switch event.Type {
			case "content_block_delta":
				return event.Delta.Text, true, nil
			case "message_stop":
				return "", false, nil
			default:
				// ping, message_start, content_block_start, ...
				continue
			}
		}
	})
}

func (p *Provider) buildRequest(systemPrompt, userPrompt string, config llm.ModelConfig, stream bool) *Request {
	temperature := config.Float("temperature", 0.7)
	return &Request{
		Model:       config.String("model", p.model),
		MaxTokens:   config.Int("max_tokens", DefaultMaxTokens),
		Temperature: &temperature,
		System:      systemPrompt,
		Messages: []Message{
			{Role: "user", Content: userPrompt},
		},
		Stream: stream,
	}
}

func (p *Provider) do(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", p.apiKey)
	req.Header.Set("Anthropic-Version", p.version)

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

// extractText returns the first text block, or a stringified representation
// when the response holds an unexpected content shape.
func extractText(blocks []ContentBlock) string {
	for _, block := range blocks {
		if block.Type == "text" {
			return block.Text
		}
	}
	return fmt.Sprintf("%v", blocks)
}
