package replicate

import (
	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

func init() {
	providers.Register(providers.Entry{
		Name: "replicate",
		// Replicate calls its credential a token, not a key.
		CredentialEnvVar: "REPLICATE_API_TOKEN",
		New: func() (llm.Provider, error) {
			return New(), nil
		},
	})
}
