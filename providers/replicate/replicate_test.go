package replicate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/switchboard/llm"
)

func newTestProvider(handler http.Handler) (*Provider, *httptest.Server) {
	server := httptest.NewServer(handler)
	provider := New(
		WithAPIToken("test-token"),
		WithBaseURL(server.URL),
		WithClient(server.Client()),
	)
	return provider, server
}

func TestGenerateBlockingPrediction(t *testing.T) {
	var captured Request
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/meta/llama-2-70b-chat/predictions", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "wait", r.Header.Get("Prefer"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(Prediction{
			Status: "succeeded",
			Output: []any{"Hello", ", ", "world"},
		})
	}))
	defer server.Close()

	result := provider.Generate(context.Background(), "Be helpful.", "Say hi.", llm.ModelConfig{})
	assert.True(t, result.Successful())
	// List outputs are joined into a single string.
	assert.Equal(t, "Hello, world", result.Text)

	assert.Equal(t, "System: Be helpful.\n\nUser: Say hi.\n\nAssistant:", captured.Input.Prompt)
	assert.Equal(t, 0.7, captured.Input.Temperature)
	assert.Equal(t, 2000, captured.Input.MaxTokens)
	assert.Equal(t, 1.0, captured.Input.TopP)
	assert.False(t, captured.Stream)
}

func TestGeneratePredictionError(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Prediction{
			Status: "failed",
			Error:  "model exploded",
		})
	}))
	defer server.Close()

	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.False(t, result.Successful())
	assert.Contains(t, result.Text, "Error with Replicate: ")
	assert.Contains(t, result.Text, "model exploded")
}

func TestGenerateHTTPError(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.False(t, result.Successful())
	assert.Contains(t, result.Text, "Error with Replicate: ")
}

func TestExtractOutputShapes(t *testing.T) {
	assert.Equal(t, "ab", extractOutput([]any{"a", "b"}))
	assert.Equal(t, "plain", extractOutput("plain"))
	assert.Equal(t, "", extractOutput(nil))
	assert.Equal(t, "42", extractOutput(42.0))
}

func TestStreamFollowsEventURL(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/models/meta/llama-2-70b-chat/predictions", func(w http.ResponseWriter, r *http.Request) {
		var captured Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.True(t, captured.Stream)
		json.NewEncoder(w).Encode(Prediction{
			Status: "starting",
			URLs:   URLs{Stream: server.URL + "/stream"},
		})
	})
	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		fmt.Fprint(w, "event: output\ndata: Hel\n\n")
		fmt.Fprint(w, "event: output\ndata: lo\n\n")
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
	})

	provider := New(
		WithAPIToken("test-token"),
		WithBaseURL(server.URL),
		WithClient(server.Client()),
	)
	stream := provider.Stream(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.Equal(t, "Hello", llm.CollectStream(stream))
}

func TestStreamErrorYieldsSingleSentinelChunk(t *testing.T) {
	provider, server := newTestProvider(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	stream := provider.Stream(context.Background(), "sys", "hi", llm.ModelConfig{})
	var chunks []string
	for stream.Next() {
		chunks = append(chunks, stream.Chunk())
	}
	assert.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "Error with Replicate streaming: ")
}

func TestEventReader(t *testing.T) {
	input := "event: output\ndata: first\n\nevent: error\ndata: boom\n\n"
	reader := newEventReader(strings.NewReader(input))

	ev, err := reader.Next()
	assert.NoError(t, err)
	assert.Equal(t, "output", ev.Name)
	assert.Equal(t, "first", ev.Data)

	ev, err = reader.Next()
	assert.NoError(t, err)
	assert.Equal(t, "error", ev.Name)
	assert.Equal(t, "boom", ev.Data)
}
