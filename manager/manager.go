// Package manager coordinates the registered provider adapters behind a
// single switchable interface. A Manager tracks the currently selected
// provider, constructs adapters lazily and caches one instance per name for
// its lifetime, and runs sequential multi-provider comparisons.
package manager

import (
	"context"
	"os"
	"sync"

	"github.com/deepnoodle-ai/switchboard/config"
	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/log"
	"github.com/deepnoodle-ai/switchboard/providers"
)

// DefaultSystemPrompt is used when a call does not supply its own.
const DefaultSystemPrompt = "You are a helpful AI assistant."

type Manager struct {
	mu        sync.Mutex
	current   string
	adapters  map[string]llm.Provider
	registry  *providers.Registry
	overrides map[string]llm.ModelConfig
	logger    log.Logger
}

type Option func(*Manager)

// WithDefaultProvider sets the initially selected provider.
func WithDefaultProvider(name string) Option {
	return func(m *Manager) {
		m.current = name
	}
}

// WithRegistry replaces the global default registry, mainly for tests.
func WithRegistry(registry *providers.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

func WithLogger(logger log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithConfigFile applies a loaded overrides file: its merged per-provider
// configurations replace the built-in defaults, and its default_provider, if
// set, selects the initial provider. A later WithDefaultProvider wins.
func WithConfigFile(file *config.File) Option {
	return func(m *Manager) {
		m.overrides = file.Providers
		if file.DefaultProvider != "" {
			m.current = file.DefaultProvider
		}
	}
}

// New creates a Manager. The only failure mode is an initial provider name
// that is not registered.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		current:  config.DefaultProvider,
		adapters: map[string]llm.Provider{},
		registry: providers.DefaultRegistry(),
		logger:   log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if _, ok := m.registry.Lookup(m.current); !ok {
		return nil, providers.UnknownProviderError(m.current)
	}
	return m, nil
}

// SwitchProvider selects a different provider for subsequent calls. Unknown
// names fail with providers.ErrUnknownProvider and leave the current
// selection unchanged. Credentials are not checked here; a missing key
// surfaces as an error result on the first call.
func (m *Manager) SwitchProvider(name string) error {
	if _, ok := m.registry.Lookup(name); !ok {
		return providers.UnknownProviderError(name)
	}
	m.mu.Lock()
	previous := m.current
	m.current = name
	m.mu.Unlock()
	m.logger.Info("switched provider", "from", previous, "to", name)
	return nil
}

// CurrentProvider returns the name of the selected provider.
func (m *Manager) CurrentProvider() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// ModelConfig returns a copy of the default configuration for the current
// provider. Callers may mutate the copy and pass it back via WithConfig.
func (m *Manager) ModelConfig() llm.ModelConfig {
	return m.defaultsFor(m.CurrentProvider())
}

func (m *Manager) defaultsFor(name string) llm.ModelConfig {
	if overrides, ok := m.overrides[name]; ok {
		return overrides.Clone()
	}
	defaults, _ := config.Defaults(name)
	return defaults
}

// adapter returns the cached adapter for the named provider, constructing it
// on first use.
func (m *Manager) adapter(name string) (llm.Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if adapter, ok := m.adapters[name]; ok {
		return adapter, nil
	}
	adapter, err := m.registry.New(name)
	if err != nil {
		return nil, err
	}
	m.adapters[name] = adapter
	return adapter, nil
}

// Generate sends one prompt to the current provider. Failures, including an
// adapter that cannot be constructed, are returned as error results in the
// standard sentinel form, never as Go errors.
func (m *Manager) Generate(ctx context.Context, prompt string, opts ...CallOption) llm.Result {
	name := m.CurrentProvider()
	call := m.buildCall(name, opts)
	adapter, err := m.adapter(name)
	if err != nil {
		return llm.Failure(name, err)
	}
	result := adapter.Generate(ctx, call.systemPrompt, prompt, call.config)
	if !result.Successful() {
		m.logger.Warn("generation failed", "provider", name, "error", result.Err)
	}
	return result
}

// Stream sends one prompt to the current provider and streams the response.
func (m *Manager) Stream(ctx context.Context, prompt string, opts ...CallOption) llm.Stream {
	name := m.CurrentProvider()
	call := m.buildCall(name, opts)
	adapter, err := m.adapter(name)
	if err != nil {
		return llm.NewErrorStream(name, err)
	}
	return adapter.Stream(ctx, call.systemPrompt, prompt, call.config)
}

// AvailableProviders returns the registered providers whose credential
// environment variable is set. The check is presence only; an invalid key
// still shows as available and fails on first call.
func (m *Manager) AvailableProviders() []string {
	var available []string
	for _, name := range m.registry.Names() {
		entry, _ := m.registry.Lookup(name)
		if os.Getenv(entry.CredentialEnvVar) != "" {
			available = append(available, name)
		}
	}
	return available
}

type callConfig struct {
	systemPrompt string
	config       llm.ModelConfig
}

// CallOption adjusts a single Generate or Stream call.
type CallOption func(*callConfig)

// WithSystemPrompt overrides the default system prompt for one call.
func WithSystemPrompt(systemPrompt string) CallOption {
	return func(c *callConfig) {
		c.systemPrompt = systemPrompt
	}
}

// WithConfig merges the given values over the provider's defaults for one
// call.
func WithConfig(overrides llm.ModelConfig) CallOption {
	return func(c *callConfig) {
		c.config = c.config.Merge(overrides)
	}
}

func (m *Manager) buildCall(name string, opts []CallOption) callConfig {
	call := callConfig{
		systemPrompt: DefaultSystemPrompt,
		config:       m.defaultsFor(name),
	}
	for _, opt := range opts {
		opt(&call)
	}
	return call
}
