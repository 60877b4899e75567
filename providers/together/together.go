// Package together adapts the Together AI chat-completions API. Together
// hosts open-source models behind the OpenAI wire format; its streaming
// responses use data-prefixed SSE lines terminated by a [DONE] sentinel.
package together

import (
	"net/http"
	"os"

	"github.com/deepnoodle-ai/switchboard/providers/openaicompletions"
)

var (
	DefaultModel    = "meta-llama/Llama-2-70b-chat-hf"
	DefaultEndpoint = "https://api.together.xyz/v1/chat/completions"
)

type Provider struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client

	// Embedded chat-completions provider
	*openaicompletions.Provider
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:   os.Getenv("TOGETHER_API_KEY"),
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		client:   openaicompletions.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Provider = openaicompletions.New(
		openaicompletions.WithAPIKey(p.apiKey),
		openaicompletions.WithClient(p.client),
		openaicompletions.WithEndpoint(p.endpoint),
		openaicompletions.WithModel(p.model),
		openaicompletions.WithVendor("Together AI"),
		openaicompletions.WithName("together"),
	)
	return p
}

type Option func(*Provider)

func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

func WithClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}
