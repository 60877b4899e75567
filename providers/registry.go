package providers

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/deepnoodle-ai/switchboard/llm"
)

// ErrUnknownProvider is returned when a name is not in the registry. This is
// the one failure that surfaces as a real error rather than an error-string:
// it indicates caller misuse, not a transient vendor failure.
var ErrUnknownProvider = errors.New("unknown provider")

// UnknownProviderError wraps ErrUnknownProvider with the offending name.
func UnknownProviderError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// Factory constructs a provider adapter. A factory may fail (e.g. a vendor
// SDK client that cannot be built); a missing credential alone is not a
// construction failure, since adapters are expected to surface auth errors
// on first call.
type Factory func() (llm.Provider, error)

// Entry describes one registered vendor.
type Entry struct {
	// Name is the registry key, e.g. "anthropic".
	Name string

	// CredentialEnvVar names the environment variable holding the
	// vendor's API credential.
	CredentialEnvVar string

	// New constructs the adapter with its default options.
	New Factory
}

// Registry manages name-to-adapter-factory mappings. Adapters register
// themselves during init() and the registry constructs them on demand.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]Entry{}}
}

// Register adds a provider entry. Registering the same name twice replaces
// the earlier entry.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = map[string]Entry{}
	}
	r.entries[entry.Name] = entry
}

// Lookup returns the entry for the given name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}

// New constructs the named provider. Returns ErrUnknownProvider for names
// that were never registered.
func (r *Registry) New(name string) (llm.Provider, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return nil, UnknownProviderError(name)
	}
	return entry.New()
}

// Names returns the sorted names of all registered providers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global default registry, populated by adapter init() functions.
var defaultRegistry = NewRegistry()

// Register adds a provider entry to the default registry.
func Register(entry Entry) {
	defaultRegistry.Register(entry)
}

// New constructs a provider from the default registry.
func New(name string) (llm.Provider, error) {
	return defaultRegistry.New(name)
}

// Names lists providers registered in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// DefaultRegistry returns the default global registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
