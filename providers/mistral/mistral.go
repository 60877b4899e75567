// Package mistral adapts the Mistral chat API. The wire format matches
// OpenAI chat completions with one vendor-specific extra: the safe_prompt
// content-filtering flag.
package mistral

import (
	"net/http"
	"os"

	"github.com/deepnoodle-ai/switchboard/providers/openaicompletions"
)

var (
	DefaultModel    = "mistral-large-latest"
	DefaultEndpoint = "https://api.mistral.ai/v1/chat/completions"
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
		apiKey:   os.Getenv("MISTRAL_API_KEY"),
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
		openaicompletions.WithVendor("Mistral"),
		openaicompletions.WithName("mistral"),
		openaicompletions.WithSafePrompt(),
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
