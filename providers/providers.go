package providers

import "fmt"

// ProviderError represents an error payload returned by an LLM vendor API.
type ProviderError struct {
	statusCode int
	body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider api error (status %d): %s", e.statusCode, e.body)
}

func (e *ProviderError) StatusCode() int {
	return e.statusCode
}

// NewError creates a new ProviderError for a non-2xx vendor response.
func NewError(statusCode int, body string) error {
	return &ProviderError{statusCode: statusCode, body: body}
}
