// Package huggingface adapts the Hugging Face hosted inference API. The API
// serves thousands of heterogeneous models, so the prompt template depends
// on the model family and the response shape varies; extraction falls back
// to a stringified representation for unrecognized shapes.
package huggingface

import (
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

const Vendor = "Hugging Face"

// StreamChunkSize is the synthetic streaming chunk width in bytes. The
// inference API does not support true token streaming for most hosted
// models, so Stream re-chunks the complete response post hoc. This is
// documented, intentional behavior.
const StreamChunkSize = 10

var (
	DefaultModel   = "microsoft/DialoGPT-large"
	DefaultBaseURL = "https://api-inference.huggingface.co/models/"
	DefaultClient  = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:  os.Getenv("HUGGINGFACE_API_KEY"),
		baseURL: DefaultBaseURL,
		client:  DefaultClient,
		model:   DefaultModel,
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

func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

func WithClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

func (p *Provider) Name() string {
	return "huggingface"
}

// formatPrompt picks the prompt template for the model family. The template
// is model-specific, not a generic fallback chain.
func formatPrompt(model, systemPrompt, userPrompt string) string {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "gpt") || strings.Contains(lower, "dialo"):
		return fmt.Sprintf("%s\n\nUser: %s\nAssistant:", systemPrompt, userPrompt)
	case strings.Contains(lower, "t5") || strings.Contains(lower, "flan"):
		return fmt.Sprintf("system: %s user: %s", systemPrompt, userPrompt)
	default:
		return fmt.Sprintf("%s\n%s", systemPrompt, userPrompt)
	}
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	model := config.String("model", p.model)
	request := Request{
		Inputs: formatPrompt(model, systemPrompt, userPrompt),
		Parameters: Parameters{
			Temperature:       config.Float("temperature", 0.7),
			MaxNewTokens:      config.Int("max_tokens", 2000),
			TopP:              config.Float("top_p", 1.0),
			TopK:              config.Int("top_k", 50),
			RepetitionPenalty: config.Float("repetition_penalty", 1.0),
			DoSample:          config.Bool("do_sample", true),
			ReturnFullText:    false,
		},
		Options: Options{
			WaitForModel: config.Bool("wait_for_model", true),
		},
	}
	body, err := json.Marshal(request)
	if err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+model, bytes.NewReader(body))
	if err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return llm.Failure(Vendor, providers.NewError(resp.StatusCode, string(errBody)))
	}

	var result any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error decoding response: %w", err))
	}
	return llm.Success(extractText(result))
}

// Stream simulates streaming by re-chunking the complete synchronous
// response into fixed-size slices; see StreamChunkSize.
func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	result := p.Generate(ctx, systemPrompt, userPrompt, config)
	if !result.Successful() {
		return llm.NewErrorStream(Vendor, result.Err)
	}
	return llm.NewChunkedStream(result.Text, StreamChunkSize)
}

// extractText handles the inference API's response shapes: a list whose
// first element carries generated_text, an object carrying generated_text,
// or anything else stringified.
func extractText(result any) string {
	switch v := result.(type) {
	case []any:
		if len(v) > 0 {
			if obj, ok := v[0].(map[string]any); ok {
				if text, ok := obj["generated_text"].(string); ok {
					return text
				}
			}
			return fmt.Sprintf("%v", v[0])
		}
	case map[string]any:
		if text, ok := v["generated_text"].(string); ok {
			return text
		}
	}
	return fmt.Sprintf("%v", result)
}
