// Package providers contains the provider registry and shared error types.
//
// Vendor adapters self-register via init() functions using [Register], and
// the registry constructs adapters by name. Individual adapters are in
// subpackages:
//
//   - [github.com/deepnoodle-ai/switchboard/providers/openai] - OpenAI chat completions
//   - [github.com/deepnoodle-ai/switchboard/providers/anthropic] - Anthropic messages API
//   - [github.com/deepnoodle-ai/switchboard/providers/cohere] - Cohere generate API
//   - [github.com/deepnoodle-ai/switchboard/providers/google] - Google Gemini
//   - [github.com/deepnoodle-ai/switchboard/providers/groq] - Groq inference engine
//   - [github.com/deepnoodle-ai/switchboard/providers/huggingface] - Hugging Face inference API
//   - [github.com/deepnoodle-ai/switchboard/providers/mistral] - Mistral chat API
//   - [github.com/deepnoodle-ai/switchboard/providers/replicate] - Replicate predictions
//   - [github.com/deepnoodle-ai/switchboard/providers/together] - Together AI chat completions
//
// Importing [github.com/deepnoodle-ai/switchboard/providers/all] registers
// every adapter.
package providers
