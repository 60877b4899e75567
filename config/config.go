// Package config holds the per-provider default generation parameters and
// the credential environment variable for each supported vendor. The
// registry is built from static configuration at process start and is
// immutable thereafter; lookups are pure and side-effect free.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deepnoodle-ai/switchboard/llm"
)

// DefaultProvider is the provider selected when the caller does not name one.
const DefaultProvider = "openai"

// defaults reproduces each vendor's documented default parameters. Adapters
// apply the same fallbacks independently at call time; this table exists so
// callers can inspect and override the configuration a provider will use.
var defaults = map[string]llm.ModelConfig{
	"openai": {
		"model":       "gpt-3.5-turbo",
		"temperature": 0.7,
		"max_tokens":  2000,
		"top_p":       1.0,
	},
	"anthropic": {
		"model":       "claude-3-sonnet-20240229",
		"temperature": 0.7,
		"max_tokens":  2000,
	},
	"cohere": {
		"model":       "command",
		"temperature": 0.7,
		"max_tokens":  2000,
		"p":           1.0,
		"k":           0,
	},
	"google": {
		"model":             "gemini-pro",
		"temperature":       0.7,
		"max_output_tokens": 2000,
		"top_p":             1.0,
		"top_k":             40,
		"candidate_count":   1,
	},
	"groq": {
		"model":       "mixtral-8x7b-32768",
		"temperature": 0.7,
		"max_tokens":  2000,
		"top_p":       1.0,
	},
	"huggingface": {
		"model":              "microsoft/DialoGPT-large",
		"temperature":        0.7,
		"max_tokens":         2000,
		"top_p":              1.0,
		"top_k":              50,
		"repetition_penalty": 1.0,
		"do_sample":          true,
		"wait_for_model":     true,
	},
	"mistral": {
		"model":       "mistral-large-latest",
		"temperature": 0.7,
		"max_tokens":  2000,
		"top_p":       1.0,
		"safe_prompt": false,
	},
	"replicate": {
		"model":       "meta/llama-2-70b-chat",
		"temperature": 0.7,
		"max_tokens":  2000,
		"top_p":       1.0,
	},
	"together": {
		"model":       "meta-llama/Llama-2-70b-chat-hf",
		"temperature": 0.7,
		"max_tokens":  2000,
		"top_p":       1.0,
	},
}

// Defaults returns a copy of the default ModelConfig for the named provider.
func Defaults(name string) (llm.ModelConfig, bool) {
	config, ok := defaults[name]
	if !ok {
		return nil, false
	}
	return config.Clone(), true
}

// CredentialEnvVar returns the environment variable holding the named
// provider's API credential. The convention is <PROVIDER>_API_KEY; replicate
// is the documented exception and is special-cased by name rather than
// derived mechanically.
func CredentialEnvVar(name string) string {
	if name == "replicate" {
		return "REPLICATE_API_TOKEN"
	}
	return fmt.Sprintf("%s_API_KEY", strings.ToUpper(name))
}

// ProviderNames returns the sorted names of all supported providers.
func ProviderNames() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
