package mistral

import (
	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

func init() {
	providers.Register(providers.Entry{
		Name:             "mistral",
		CredentialEnvVar: "MISTRAL_API_KEY",
		New: func() (llm.Provider, error) {
			return New(), nil
		},
	})
}
