package groq

import (
	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

func init() {
	providers.Register(providers.Entry{
		Name:             "groq",
		CredentialEnvVar: "GROQ_API_KEY",
		New: func() (llm.Provider, error) {
			return New(), nil
		},
	})
}
