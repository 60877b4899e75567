package llm

import (
	"io"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

type delta struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func readAll(r *ServerSentEventsReader[delta]) []string {
	var out []string
	for {
		event, ok := r.Next()
		if !ok {
			break
		}
		if len(event.Choices) > 0 {
			out = append(out, event.Choices[0].Delta.Content)
		}
	}
	return out
}

func TestServerSentEventsReader(t *testing.T) {
	body := strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"Hel"}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"lo"}}]}`,
		`data: [DONE]`,
		`data: {"choices":[{"delta":{"content":"never"}}]}`,
	}, "\n") + "\n"

	reader := NewServerSentEventsReader[delta](io.NopCloser(strings.NewReader(body)))
	chunks := readAll(reader)

	assert.NoError(t, reader.Err())
	assert.Equal(t, []string{"Hel", "lo"}, chunks)
}

func TestServerSentEventsReaderSkipsMalformedLines(t *testing.T) {
	body := strings.Join([]string{
		`data: {not json`,
		`event: ping`,
		`data: {"choices":[{"delta":{"content":"ok"}}]}`,
		`data: [DONE]`,
	}, "\n") + "\n"

	reader := NewServerSentEventsReader[delta](io.NopCloser(strings.NewReader(body)))
	chunks := readAll(reader)

	assert.NoError(t, reader.Err())
	assert.Equal(t, []string{"ok"}, chunks)
}

func TestServerSentEventsReaderEOFWithoutDone(t *testing.T) {
	body := `data: {"choices":[{"delta":{"content":"tail"}}]}` + "\n"

	reader := NewServerSentEventsReader[delta](io.NopCloser(strings.NewReader(body)))
	chunks := readAll(reader)

	assert.NoError(t, reader.Err())
	assert.Equal(t, []string{"tail"}, chunks)
}
