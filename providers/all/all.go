// Package all registers every built-in provider with the default registry.
// Import it for side effects:
//
//	import _ "github.com/deepnoodle-ai/switchboard/providers/all"
//
// Programs that want a smaller binary can instead import only the vendor
// packages they use.
package all

import (
	_ "github.com/deepnoodle-ai/switchboard/providers/anthropic"
	_ "github.com/deepnoodle-ai/switchboard/providers/cohere"
	_ "github.com/deepnoodle-ai/switchboard/providers/google"
	_ "github.com/deepnoodle-ai/switchboard/providers/groq"
	_ "github.com/deepnoodle-ai/switchboard/providers/huggingface"
	_ "github.com/deepnoodle-ai/switchboard/providers/mistral"
	_ "github.com/deepnoodle-ai/switchboard/providers/openai"
	_ "github.com/deepnoodle-ai/switchboard/providers/replicate"
	_ "github.com/deepnoodle-ai/switchboard/providers/together"
)
