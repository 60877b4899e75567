package llm

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestModelConfigFallbacks(t *testing.T) {
	config := ModelConfig{
		"model":       "command",
		"temperature": 0.3,
		"max_tokens":  512,
		"do_sample":   true,
	}

	assert.Equal(t, "command", config.String("model", "fallback"))
	assert.Equal(t, "fallback", config.String("missing", "fallback"))
	assert.Equal(t, 0.3, config.Float("temperature", 0.7))
	assert.Equal(t, 0.7, config.Float("missing", 0.7))
	assert.Equal(t, 512, config.Int("max_tokens", 2000))
	assert.Equal(t, 2000, config.Int("missing", 2000))
	assert.True(t, config.Bool("do_sample", false))
	assert.True(t, config.Bool("wait_for_model", true))
}

func TestModelConfigNumericCrossTypes(t *testing.T) {
	// JSON decoding yields float64 for every number; YAML may yield ints.
	config := ModelConfig{
		"max_tokens":  float64(100),
		"temperature": 1,
		"top_k":       int64(40),
	}
	assert.Equal(t, 100, config.Int("max_tokens", 2000))
	assert.Equal(t, 1.0, config.Float("temperature", 0.7))
	assert.Equal(t, 40, config.Int("top_k", 0))
}

func TestModelConfigMistypedValueFallsBack(t *testing.T) {
	config := ModelConfig{"max_tokens": "lots"}
	assert.Equal(t, 2000, config.Int("max_tokens", 2000))
	assert.Equal(t, "lots", config.String("max_tokens", ""))
}

func TestModelConfigNil(t *testing.T) {
	var config ModelConfig
	assert.Equal(t, "x", config.String("model", "x"))
	assert.Equal(t, 0.7, config.Float("temperature", 0.7))
	assert.NotNil(t, config.Clone())
}

func TestModelConfigMerge(t *testing.T) {
	base := ModelConfig{"model": "a", "temperature": 0.7}
	merged := base.Merge(ModelConfig{"model": "b", "top_p": 1.0})

	assert.Equal(t, "b", merged.String("model", ""))
	assert.Equal(t, 0.7, merged.Float("temperature", 0))
	assert.Equal(t, 1.0, merged.Float("top_p", 0))
	// The receiver is not mutated.
	assert.Equal(t, "a", base.String("model", ""))
}

func TestModelConfigStrings(t *testing.T) {
	config := ModelConfig{
		"stop":  []any{"User:", "\n\n"},
		"stop2": []string{"a"},
	}
	assert.Equal(t, []string{"User:", "\n\n"}, config.Strings("stop", nil))
	assert.Equal(t, []string{"a"}, config.Strings("stop2", nil))
	assert.Nil(t, config.Strings("missing", nil))
}
