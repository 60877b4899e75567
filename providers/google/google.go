// Package google adapts the Google Gemini API via the official genai SDK.
// Gemini has no distinct system role in this usage, so the system and user
// prompts are combined into a single formatted prompt.
package google

import (
	"context"
	"fmt"
	"iter"
	"os"
	"sync"

	"google.golang.org/genai"

	"github.com/deepnoodle-ai/switchboard/llm"
)

const Vendor = "Google Gemini"

var (
	DefaultModel = "gemini-pro"
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client *genai.Client
	apiKey string
	model  string
	mutex  sync.Mutex
}

func New(opts ...Option) *Provider {
	var apiKey string
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		apiKey = value
	} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
		apiKey = value
	}
	p := &Provider{
		apiKey: apiKey,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Option func(*Provider)

func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithClient injects a pre-built genai client (tests).
func WithClient(client *genai.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

func (p *Provider) Name() string {
	return "google"
}

func (p *Provider) initClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %w", err)
	}
	p.client = client
	return p.client, nil
}

// formatPrompt combines the system and user prompts in the Gemini template.
func formatPrompt(systemPrompt, userPrompt string) string {
	return fmt.Sprintf("System: %s\n\nUser: %s", systemPrompt, userPrompt)
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	client, err := p.initClient(ctx)
	if err != nil {
		return llm.Failure(Vendor, err)
	}
	model := config.String("model", p.model)
	contents := genai.Text(formatPrompt(systemPrompt, userPrompt))

	resp, err := client.Models.GenerateContent(ctx, model, contents, buildGenerateConfig(config))
	if err != nil {
		return llm.Failure(Vendor, err)
	}
	text := resp.Text()
	if text == "" {
		// Unexpected response shape; fall back to a stringified form
		if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			return llm.Success(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts))
		}
		return llm.Failure(Vendor, fmt.Errorf("empty response"))
	}
	return llm.Success(text)
}

func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	client, err := p.initClient(ctx)
	if err != nil {
		return llm.NewErrorStream(Vendor, err)
	}
	model := config.String("model", p.model)
	contents := genai.Text(formatPrompt(systemPrompt, userPrompt))

	seq := client.Models.GenerateContentStream(ctx, model, contents, buildGenerateConfig(config))
	next, stop := iter.Pull2(seq)
	return llm.NewSentinelStream(Vendor, stopCloser(stop), func() (string, bool, error) {
		resp, err, ok := next()
		if !ok {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return resp.Text(), true, nil
	})
}

func buildGenerateConfig(config llm.ModelConfig) *genai.GenerateContentConfig {
	temperature := float32(config.Float("temperature", 0.7))
	topP := float32(config.Float("top_p", 1.0))
	topK := float32(config.Int("top_k", 40))
	return &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(config.Int("max_output_tokens", 2000)),
		TopP:            &topP,
		TopK:            &topK,
		CandidateCount:  int32(config.Int("candidate_count", 1)),
	}
}

// stopCloser adapts an iterator stop function to io.Closer so abandoning a
// stream releases the underlying transport.
type stopCloser func()

func (s stopCloser) Close() error {
	s()
	return nil
}
