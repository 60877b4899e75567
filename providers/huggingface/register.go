package huggingface

import (
	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers"
)

func init() {
	providers.Register(providers.Entry{
		Name:             "huggingface",
		CredentialEnvVar: "HUGGINGFACE_API_KEY",
		New: func() (llm.Provider, error) {
			return New(), nil
		},
	})
}
