package together

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/switchboard/llm"
	"github.com/deepnoodle-ai/switchboard/providers/openaicompletions"
)

func TestDefaults(t *testing.T) {
	var captured openaicompletions.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(openaicompletions.Response{
			Choices: []openaicompletions.Choice{
				{Message: openaicompletions.Message{Role: "assistant", Content: "open"}},
			},
		})
	}))
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithClient(server.Client()),
	)
	assert.Equal(t, "together", provider.Name())

	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.True(t, result.Successful())
	assert.Equal(t, "meta-llama/Llama-2-70b-chat-hf", captured.Model)
}

func TestErrorLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	provider := New(WithAPIKey("k"), WithEndpoint(server.URL), WithClient(server.Client()))
	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.False(t, result.Successful())
	assert.Contains(t, result.Text, "Error with Together AI: ")
}
