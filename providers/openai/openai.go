// Package openai adapts the OpenAI chat completions API through the official
// Go SDK. The SDK reads OPENAI_API_KEY from the environment when no key
// option is supplied.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/deepnoodle-ai/switchboard/llm"
)

const Vendor = "OpenAI"

var (
	DefaultModel     = "gpt-3.5-turbo"
	DefaultMaxTokens = 2000
)

var _ llm.Provider = &Provider{}

type Provider struct {
	client    openai.Client
	model     string
	maxTokens int
	options   clientOptions
}

func New(opts ...Option) *Provider {
	p := &Provider{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.client = openai.NewClient(p.options...)
	return p
}

func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) buildParams(systemPrompt, userPrompt string, config llm.ModelConfig) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: config.String("model", p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(config.Float("temperature", 0.7)),
		MaxTokens:   openai.Int(int64(config.Int("max_tokens", p.maxTokens))),
		TopP:        openai.Float(config.Float("top_p", 1.0)),
	}
}

func (p *Provider) Generate(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Result {
	completion, err := p.client.Chat.Completions.New(ctx, p.buildParams(systemPrompt, userPrompt, config))
	if err != nil {
		return llm.Failure(Vendor, err)
	}
	if len(completion.Choices) == 0 {
		return llm.Failure(Vendor, fmt.Errorf("response contained no choices"))
	}
	return llm.Success(completion.Choices[0].Message.Content)
}

func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string, config llm.ModelConfig) llm.Stream {
	stream := p.client.Chat.Completions.NewStreaming(ctx, p.buildParams(systemPrompt, userPrompt, config))
	return llm.NewSentinelStream(Vendor, stream, func() (string, bool, error) {
		if !stream.Next() {
			return "", false, stream.Err()
		}
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			return "", true, nil
		}
		return chunk.Choices[0].Delta.Content, true, nil
	})
}
