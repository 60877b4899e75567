package llm

import (
	"fmt"
	"strings"
)

// ErrorPrefix marks a failed result's text. A response string beginning with
// this prefix is treated as a failure by aggregating callers.
const ErrorPrefix = "Error with "

// Result is the outcome of a generation call. Failures are carried as data:
// Err holds the underlying error and Text holds the sentinel-prefixed
// description that callers display in place of a response.
type Result struct {
	Text string
	Err  error
}

// Success wraps a completed response text.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure wraps a failed generation call. The vendor label appears in the
// result text, e.g. "Error with Anthropic: ...".
func Failure(vendor string, err error) Result {
	return Result{
		Text: fmt.Sprintf("%s%s: %s", ErrorPrefix, vendor, err),
		Err:  err,
	}
}

// StreamFailure wraps a failed streaming call, e.g.
// "Error with Anthropic streaming: ...".
func StreamFailure(vendor string, err error) Result {
	return Result{
		Text: fmt.Sprintf("%s%s streaming: %s", ErrorPrefix, vendor, err),
		Err:  err,
	}
}

// Successful reports whether the call produced a response rather than an
// error description.
func (r Result) Successful() bool {
	return r.Err == nil && !strings.HasPrefix(r.Text, ErrorPrefix)
}

func (r Result) String() string {
	return r.Text
}
