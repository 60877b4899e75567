package llm

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// ServerSentEventsReader decodes a stream of server-sent events whose data
// lines carry JSON payloads of type T. Lines are framed with a "data: "
// prefix and the stream is terminated by a literal [DONE] sentinel line.
// Blank lines, SSE metadata lines and malformed JSON lines are silently
// skipped; they are not fatal on this wire format.
type ServerSentEventsReader[T any] struct {
	body   io.ReadCloser
	reader *bufio.Reader
	err    error
}

func NewServerSentEventsReader[T any](stream io.ReadCloser) *ServerSentEventsReader[T] {
	return &ServerSentEventsReader[T]{
		body:   stream,
		reader: bufio.NewReader(stream),
	}
}

// Err returns the transport error that ended the stream, if any.
func (s *ServerSentEventsReader[T]) Err() error {
	return s.err
}

// Next returns the next decoded event. Returns false when the stream ends,
// either at EOF, at the [DONE] sentinel, or on a transport error.
func (s *ServerSentEventsReader[T]) Next() (T, bool) {
	var zero T
	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return zero, false
		}

		// Skip empty lines
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		// Skip SSE metadata lines such as "event: ..."
		if bytes.HasPrefix(line, []byte("event: ")) {
			continue
		}

		// Remove "data: " prefix if present
		line = bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data: ")))

		// Check for stream end
		if bytes.Equal(line, []byte("[DONE]")) {
			return zero, false
		}

		var event T
		if err := json.Unmarshal(line, &event); err != nil {
			// Malformed data lines are skipped, not fatal
			continue
		}
		return event, true
	}
}
