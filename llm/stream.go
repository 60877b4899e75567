package llm

import "io"

// Stream is a pull-based sequence of response text chunks. It is finite,
// forward-only, single-consumer and not restartable. Transport failures are
// delivered in-band: the stream yields one sentinel-prefixed chunk
// ("Error with <Vendor> streaming: ...") and then Next returns false.
// Iteration never panics and never surfaces a Go error.
type Stream interface {
	// Next advances to the next chunk. Returns false when the stream is
	// exhausted.
	Next() bool

	// Chunk returns the current chunk. Valid only after a true Next.
	Chunk() string

	// Close releases any underlying transport resources. Safe to call
	// before the stream is drained and safe to call more than once.
	Close() error
}

// NewErrorStream returns a stream that yields exactly one chunk carrying the
// streaming error sentinel for the given vendor, then terminates.
func NewErrorStream(vendor string, err error) Stream {
	return &textStream{chunks: []string{StreamFailure(vendor, err).Text}}
}

// NewTextStream returns a stream over the given chunks.
func NewTextStream(chunks []string) Stream {
	return &textStream{chunks: chunks}
}

// NewChunkedStream re-chunks a fully materialized response into fixed-size
// slices. Used by vendors whose APIs do not support true token streaming.
// A 23-character text at size 10 yields chunks of 10, 10 and 3 characters.
func NewChunkedStream(text string, size int) Stream {
	if size <= 0 {
		size = 1
	}
	var chunks []string
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return &textStream{chunks: chunks}
}

type textStream struct {
	chunks  []string
	pos     int
	current string
	closed  bool
}

func (s *textStream) Next() bool {
	if s.closed || s.pos >= len(s.chunks) {
		return false
	}
	s.current = s.chunks[s.pos]
	s.pos++
	return true
}

func (s *textStream) Chunk() string {
	return s.current
}

func (s *textStream) Close() error {
	s.closed = true
	return nil
}

// CollectStream drains a stream and concatenates its chunks. The stream is
// closed before returning.
func CollectStream(s Stream) string {
	defer s.Close()
	var text string
	for s.Next() {
		text += s.Chunk()
	}
	return text
}

// NewSentinelStream wraps a chunk-producing function in the in-band error
// contract shared by all adapters. next returns the next text chunk, whether
// one was produced, and any transport error. Empty chunks are skipped. When
// next reports an error the stream yields one sentinel chunk for the vendor
// and terminates. body, if non-nil, is closed when the stream ends or is
// closed early.
func NewSentinelStream(vendor string, body io.Closer, next func() (string, bool, error)) Stream {
	return &sentinelStream{vendor: vendor, body: body, next: next}
}

type sentinelStream struct {
	vendor  string
	body    io.Closer
	next    func() (string, bool, error)
	current string
	done    bool
}

func (s *sentinelStream) Next() bool {
	if s.done {
		return false
	}
	for {
		chunk, ok, err := s.next()
		if err != nil {
			s.current = StreamFailure(s.vendor, err).Text
			s.finish()
			return true
		}
		if !ok {
			s.finish()
			return false
		}
		if chunk == "" {
			continue
		}
		s.current = chunk
		return true
	}
}

func (s *sentinelStream) Chunk() string {
	return s.current
}

func (s *sentinelStream) Close() error {
	s.finish()
	return nil
}

func (s *sentinelStream) finish() {
	if s.done {
		return
	}
	s.done = true
	if s.body != nil {
		_ = s.body.Close()
	}
}
