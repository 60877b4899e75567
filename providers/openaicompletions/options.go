package openaicompletions

import "net/http"

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

func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) {
		p.maxTokens = maxTokens
	}
}

// WithVendor sets the label used in error strings.
func WithVendor(vendor string) Option {
	return func(p *Provider) {
		p.vendor = vendor
	}
}

// WithName sets the registry name reported by the provider.
func WithName(name string) Option {
	return func(p *Provider) {
		p.name = name
	}
}

// WithSafePrompt enables sending the safe_prompt flag (Mistral-specific).
func WithSafePrompt() Option {
	return func(p *Provider) {
		p.safePrompt = true
	}
}
