package groq

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
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(openaicompletions.Response{
			Choices: []openaicompletions.Choice{
				{Message: openaicompletions.Message{Role: "assistant", Content: "fast"}},
			},
		})
	}))
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithClient(server.Client()),
	)
	assert.Equal(t, "groq", provider.Name())

	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.True(t, result.Successful())
	assert.Equal(t, "fast", result.Text)
	assert.Equal(t, "mixtral-8x7b-32768", captured.Model)
}

func TestErrorLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := New(WithAPIKey("k"), WithEndpoint(server.URL), WithClient(server.Client()))
	result := provider.Generate(context.Background(), "sys", "hi", llm.ModelConfig{})
	assert.False(t, result.Successful())
	assert.Contains(t, result.Text, "Error with Groq: ")
}
