// Package replicate adapts the Replicate predictions API. Replicate hosts
// models under owner/name paths and runs them as predictions; a blocking
// prediction is requested with the Prefer: wait header, and streaming uses
// the server-sent events URL the create call returns.
package replicate

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

const Vendor = "Replicate"

var (
	DefaultModel   = "meta/llama-2-70b-chat"
	DefaultBaseURL = "https://api.replicate.com/v1"
	DefaultClient  = &http.Client{Timeout: 300 * time.Second}
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client   *http.Client
	apiToken string
	baseURL  string
	model    string
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiToken: os.Getenv("REPLICATE_API_TOKEN"),
		baseURL:  DefaultBaseURL,
		client:   DefaultClient,
		model:    DefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Option func(*Provider)

func WithAPIToken(apiToken string) Option {
	return func(p *Provider) {
		p.apiToken = apiToken
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
	return "replicate"
}

// formatPrompt folds the system prompt into the LLaMA-style chat template
// shared by the text models Replicate hosts.
func formatPrompt(systemPrompt, userPrompt string) string {
	return fmt.Sprintf("System: %s\n\nUser: %s\n\nAssistant:", systemPrompt, userPrompt)
}

func (p *Provider) buildInput(systemPrompt, userPrompt string, config llm.ModelConfig) Input {
	return Input{
		Prompt:      formatPrompt(systemPrompt, userPrompt),
		Temperature: config.Float("temperature", 0.7),
		MaxTokens:   config.Int("max_tokens", 2000),
		TopP:        config.Float("top_p", 1.0),
	}
}

func (p *Provider) createPrediction(ctx context.Context, model string, request Request, wait bool) (*http.Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}
	url := fmt.Sprintf("%s/models/%s/predictions", p.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiToken)
	if wait {
		req.Header.Set("Prefer", "wait")
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		errBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, providers.NewError(resp.StatusCode, string(errBody))
	}
	return resp, nil
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	model := config.String("model", p.model)
	request := Request{Input: p.buildInput(systemPrompt, userPrompt, config)}

	resp, err := p.createPrediction(ctx, model, request, true)
	if err != nil {
		return llm.Failure(Vendor, err)
	}
	defer resp.Body.Close()

	var prediction Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return llm.Failure(Vendor, fmt.Errorf("error decoding response: %w", err))
	}
	if prediction.Error != "" {
		return llm.Failure(Vendor, fmt.Errorf("prediction failed: %s", prediction.Error))
	}
	return llm.Success(extractOutput(prediction.Output))
}

func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	model := config.String("model", p.model)
	request := Request{
		Input:  p.buildInput(systemPrompt, userPrompt, config),
		Stream: true,
	}

	resp, err := p.createPrediction(ctx, model, request, false)
	if err != nil {
		return llm.NewErrorStream(Vendor, err)
	}
	var prediction Prediction
	decodeErr := json.NewDecoder(resp.Body).Decode(&prediction)
	resp.Body.Close()
	if decodeErr != nil {
		return llm.NewErrorStream(Vendor, fmt.Errorf("error decoding response: %w", decodeErr))
	}
	if prediction.URLs.Stream == "" {
		return llm.NewErrorStream(Vendor, fmt.Errorf("prediction has no stream URL"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, prediction.URLs.Stream, nil)
	if err != nil {
		return llm.NewErrorStream(Vendor, fmt.Errorf("error creating request: %w", err))
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+p.apiToken)

	streamResp, err := p.client.Do(req)
	if err != nil {
		return llm.NewErrorStream(Vendor, fmt.Errorf("error making request: %w", err))
	}
	if streamResp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(streamResp.Body)
		streamResp.Body.Close()
		return llm.NewErrorStream(Vendor, providers.NewError(streamResp.StatusCode, string(errBody)))
	}

	events := newEventReader(streamResp.Body)
	return llm.NewSentinelStream(Vendor, streamResp.Body, func() (string, bool, error) {
		event, err := events.Next()
		if err == io.EOF {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		switch event.Name {
		case "output":
			return event.Data, true, nil
		case "error":
			return "", false, fmt.Errorf("prediction failed: %s", event.Data)
		case "done":
			return "", false, nil
		default:
			return "", true, nil
		}
	})
}

// extractOutput normalizes the prediction output field. Text models return a
// list of token strings to join; others return a plain string or an
// arbitrary value that is stringified.
func extractOutput(output any) string {
	switch v := output.(type) {
	case []any:
		var b strings.Builder
		for _, item := range v {
			if s, ok := item.(string); ok {
				b.WriteString(s)
			} else {
				fmt.Fprintf(&b, "%v", item)
			}
		}
		return b.String()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
