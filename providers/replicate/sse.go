package replicate

import (
	"bufio"
	"io"
	"strings"
)

// event is one named server-sent event from the prediction stream. Replicate
// uses named events (output, error, done) rather than bare data lines, so
// the shared data-only reader does not apply here.
type event struct {
	Name string
	Data string
}

type eventReader struct {
	scanner *bufio.Scanner
}

func newEventReader(r io.Reader) *eventReader {
	return &eventReader{scanner: bufio.NewScanner(r)}
}

// Next reads one event block. Data lines within a block are joined with
// newlines per the SSE spec. Returns io.EOF when the stream ends.
func (r *eventReader) Next() (event, error) {
	var ev event
	var data []string
	started := false
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			if started {
				ev.Data = strings.Join(data, "\n")
				return ev, nil
			}
			continue
		}
		started = true
		switch {
		case strings.HasPrefix(line, "event:"):
			ev.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			value := strings.TrimPrefix(line, "data:")
			value = strings.TrimPrefix(value, " ")
			data = append(data, value)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return event{}, err
	}
	if started {
		ev.Data = strings.Join(data, "\n")
		return ev, nil
	}
	return event{}, io.EOF
}
