// Package groq adapts the Groq inference API, which exposes the OpenAI
// chat-completions wire format at its own endpoint.
package groq

import (
	"net/http"
	"os"

	"github.com/deepnoodle-ai/switchboard/providers/openaicompletions"
)

var (
	DefaultModel    = "mixtral-8x7b-32768"
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
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
		apiKey:   os.Getenv("GROQ_API_KEY"),
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
		openaicompletions.WithVendor("Groq"),
		openaicompletions.WithName("groq"),
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
