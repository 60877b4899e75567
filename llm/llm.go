package llm

import "context"

// Provider is the uniform capability set every vendor adapter satisfies.
//
// Implementations own an authenticated client handle created once at
// construction and reused across calls. Adapters are not documented as safe
// for concurrent use; treat one instance as usable by one logical caller
// context at a time.
type Provider interface {
	// Name returns the registry name of the provider (e.g. "anthropic").
	Name() string

	// Generate synchronously obtains one complete response. It never
	// returns a Go error: any failure (network, auth, malformed response,
	// vendor-side error payload) is converted into a failed Result.
	Generate(ctx context.Context, systemPrompt, userPrompt string, config ModelConfig) Result

	// Stream obtains an incrementally-delivered response. The returned
	// stream is finite, forward-only and not restartable. On failure it
	// yields exactly one sentinel-prefixed chunk, then terminates.
	// Concatenating all chunks reconstructs the text Generate would have
	// returned for equivalent input.
	Stream(ctx context.Context, systemPrompt, userPrompt string, config ModelConfig) Stream
}
