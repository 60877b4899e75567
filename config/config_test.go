package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestDefaults(t *testing.T) {
	config, ok := Defaults("cohere")
	assert.True(t, ok)
	assert.Equal(t, "command", config.String("model", ""))
	assert.Equal(t, 0.7, config.Float("temperature", 0))
	assert.Equal(t, 2000, config.Int("max_tokens", 0))
	assert.Equal(t, 1.0, config.Float("p", 0))
	assert.Equal(t, 0, config.Int("k", -1))

	_, ok = Defaults("nonexistent")
	assert.False(t, ok)
}

func TestDefaultsReturnsCopy(t *testing.T) {
	config, ok := Defaults("openai")
	assert.True(t, ok)
	config["model"] = "mutated"

	again, _ := Defaults("openai")
	assert.Equal(t, "gpt-3.5-turbo", again.String("model", ""))
}

func TestCredentialEnvVar(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", CredentialEnvVar("openai"))
	assert.Equal(t, "HUGGINGFACE_API_KEY", CredentialEnvVar("huggingface"))
	// The one vendor that does not follow the _API_KEY convention.
	assert.Equal(t, "REPLICATE_API_TOKEN", CredentialEnvVar("replicate"))
}

func TestProviderNames(t *testing.T) {
	names := ProviderNames()
	assert.Len(t, names, 9)
	assert.Equal(t, "anthropic", names[0])
	assert.Contains(t, names, "together")
}

func TestLoadFileMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switchboard.yaml")
	content := `default_provider: anthropic
providers:
  anthropic:
    model: claude-3-haiku-20240307
    max_tokens: 100
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	file, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "anthropic", file.DefaultProvider)

	anthropic := file.Providers["anthropic"]
	assert.Equal(t, "claude-3-haiku-20240307", anthropic.String("model", ""))
	assert.Equal(t, 100, anthropic.Int("max_tokens", 0))
	// Keys not overridden keep their defaults.
	assert.Equal(t, 0.7, anthropic.Float("temperature", 0))
	// Providers not mentioned keep all defaults.
	assert.Equal(t, "command", file.Providers["cohere"].String("model", ""))
}

func TestLoadFileRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switchboard.yaml")
	content := "providers:\n  nonexistent:\n    model: x\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
