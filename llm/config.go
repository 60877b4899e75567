package llm

// ModelConfig holds named generation parameters (model id, temperature,
// token limits, sampling controls). Recognized keys vary per vendor but
// overlap heavily. Accessors fall back to the given default when a key is
// absent or holds an unexpected type; a missing key is never fatal. Each
// adapter resolves its own documented defaults at call time.
type ModelConfig map[string]any

// String returns the string value for key, or fallback.
func (c ModelConfig) String(key, fallback string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return fallback
}

// Float returns the float value for key, or fallback. Integer values are
// accepted since configs may arrive via JSON or YAML decoding.
func (c ModelConfig) Float(key string, fallback float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

// Int returns the integer value for key, or fallback. Float values are
// truncated, matching JSON number decoding.
func (c ModelConfig) Int(key string, fallback int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case uint64:
		return int(v)
	}
	return fallback
}

// Bool returns the boolean value for key, or fallback.
func (c ModelConfig) Bool(key string, fallback bool) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}
	return fallback
}

// Strings returns the string-slice value for key, or fallback. Values
// decoded as []any are converted element-wise.
func (c ModelConfig) Strings(key string, fallback []string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fallback
			}
			out = append(out, s)
		}
		return out
	}
	return fallback
}

// Clone returns a shallow copy, so callers can hand out defaults without
// exposing shared mutable state.
func (c ModelConfig) Clone() ModelConfig {
	if c == nil {
		return ModelConfig{}
	}
	out := make(ModelConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Merge returns a copy of c with the overrides applied on top.
func (c ModelConfig) Merge(overrides ModelConfig) ModelConfig {
	out := c.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
