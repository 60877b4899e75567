package cohere

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/switchboard/llm"
)

func newTestProvider(handler http.Handler) (*Provider, *httptest.Server) {
	server := httptest.NewServer(handler)
	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithClient(server.Client()),
	)
	return provider, server
}

func TestGeneratePromptTemplate(t *testing.T) {
	var captured Request
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(Response{
			Generations: []Generation{{Text: "  a response  "}},
		})
	}))
	defer server.Close()

	result := provider.Generate(context.Background(), "Be concise.", "What is Go?", llm.ModelConfig{})
	assert.True(t, result.Successful())
	// Leading/trailing whitespace is trimmed.
	assert.Equal(t, "a response", result.Text)

	// The system prompt is folded into the single prompt string using the
	// Cohere template.
	assert.Equal(t, "Be concise.\n\nUser: What is Go?\nAssistant:", captured.Prompt)
	assert.Equal(t, "command", captured.Model)
	assert.Equal(t, 0.7, *captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
	assert.Equal(t, 1.0, *captured.P)
	assert.Equal(t, 0, *captured.K)
}

func TestGenerateErrorAsValue(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.False(t, result.Successful())
	assert.Contains(t, result.Text, "Error with Cohere: ")
}

func TestStreamJSONLines(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"text":"Hel"}`+"\n")
		fmt.Fprint(w, `{"text":"lo"}`+"\n")
		fmt.Fprint(w, `{"is_finished":true,"finish_reason":"COMPLETE"}`+"\n")
	}))
	defer server.Close()

	stream := provider.Stream(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.Equal(t, "Hello", llm.CollectStream(stream))
}

func TestStreamErrorYieldsSingleSentinelChunk(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	stream := provider.Stream(context.Background(), "sys", "hi", llm.ModelConfig{})
	var chunks []string
	for stream.Next() {
		chunks = append(chunks, stream.Chunk())
	}
	assert.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "Error with Cohere streaming: ")
}
