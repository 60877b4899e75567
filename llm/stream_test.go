package llm

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestChunkedStream(t *testing.T) {
	text := "abcdefghijklmnopqrstuvw" // 23 characters
	stream := NewChunkedStream(text, 10)

	var chunks []string
	for stream.Next() {
		chunks = append(chunks, stream.Chunk())
	}
	assert.NoError(t, stream.Close())

	assert.Len(t, chunks, 3)
	assert.Equal(t, 10, len(chunks[0]))
	assert.Equal(t, 10, len(chunks[1]))
	assert.Equal(t, 3, len(chunks[2]))
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkedStreamEmptyText(t *testing.T) {
	stream := NewChunkedStream("", 10)
	assert.False(t, stream.Next())
}

func TestErrorStream(t *testing.T) {
	stream := NewErrorStream("Hugging Face", errors.New("model loading"))

	assert.True(t, stream.Next())
	assert.Equal(t, "Error with Hugging Face streaming: model loading", stream.Chunk())
	assert.False(t, stream.Next())
}

func TestTextStreamCloseStopsIteration(t *testing.T) {
	stream := NewTextStream([]string{"a", "b", "c"})
	assert.True(t, stream.Next())
	assert.NoError(t, stream.Close())
	assert.False(t, stream.Next())
}

func TestCollectStream(t *testing.T) {
	stream := NewTextStream([]string{"hello", " ", "world"})
	assert.Equal(t, "hello world", CollectStream(stream))
}

type closeRecorder struct {
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestSentinelStreamConvertsTransportError(t *testing.T) {
	body := &closeRecorder{}
	calls := 0
	stream := NewSentinelStream("Cohere", body, func() (string, bool, error) {
		calls++
		switch calls {
		case 1:
			return "partial", true, nil
		default:
			return "", false, io.ErrUnexpectedEOF
		}
	})

	assert.True(t, stream.Next())
	assert.Equal(t, "partial", stream.Chunk())
	assert.True(t, stream.Next())
	assert.Equal(t, "Error with Cohere streaming: unexpected EOF", stream.Chunk())
	assert.False(t, stream.Next())
	assert.True(t, body.closed)
}

func TestSentinelStreamSkipsEmptyChunks(t *testing.T) {
	chunks := []string{"", "a", "", "b"}
	i := 0
	stream := NewSentinelStream("OpenAI", nil, func() (string, bool, error) {
		if i >= len(chunks) {
			return "", false, nil
		}
		chunk := chunks[i]
		i++
		return chunk, true, nil
	})

	assert.Equal(t, "ab", CollectStream(stream))
}

func TestSentinelStreamEarlyClose(t *testing.T) {
	body := &closeRecorder{}
	stream := NewSentinelStream("OpenAI", body, func() (string, bool, error) {
		return "chunk", true, nil
	})
	assert.True(t, stream.Next())
	assert.NoError(t, stream.Close())
	assert.False(t, stream.Next())
	assert.True(t, body.closed)
}
