package config

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/deepnoodle-ai/switchboard/llm"
)

// File is the YAML shape for configuration overrides. Only the keys present
// in a provider's override block replace the built-in defaults.
type File struct {
	DefaultProvider string                     `yaml:"default_provider,omitempty"`
	Providers       map[string]llm.ModelConfig `yaml:"providers,omitempty"`
}

// LoadFile reads a YAML overrides file and returns the effective per-provider
// configuration: built-in defaults with the file's overrides merged on top.
// Providers absent from the file keep their defaults unchanged. Unknown
// provider names in the file are an error.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
	}
	if file.DefaultProvider != "" {
		if _, ok := defaults[file.DefaultProvider]; !ok {
			return nil, fmt.Errorf("unknown default provider %q in %q", file.DefaultProvider, path)
		}
	}
	merged := make(map[string]llm.ModelConfig, len(defaults))
	for name, config := range defaults {
		merged[name] = config.Clone()
	}
	for name, overrides := range file.Providers {
		base, ok := merged[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q in %q", name, path)
		}
		merged[name] = base.Merge(overrides)
	}
	file.Providers = merged
	return &file, nil
}

// Write dumps the effective registry as YAML.
func (f *File) Write(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(f)
}

// WriteFile dumps the effective registry to the given path.
func (f *File) WriteFile(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
