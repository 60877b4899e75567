package cohere

type Request struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	P           *float64 `json:"p,omitempty"`
	K           *int     `json:"k,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
}

type Generation struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Response struct {
	ID          string       `json:"id"`
	Generations []Generation `json:"generations"`
}

// StreamEvent is one newline-delimited JSON object of a streaming response.
type StreamEvent struct {
	Text       string `json:"text"`
	IsFinished bool   `json:"is_finished"`
}
