package anthropic

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature *float64  `json:"temperature,omitempty"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Stream      bool      `json:"stream,omitempty"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type Response struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Content []ContentBlock `json:"content"`
}

// StreamEvent is one decoded SSE data line. Text chunks arrive in
// content_block_delta events; message_stop ends the stream.
type StreamEvent struct {
	Type  string      `json:"type"`
	Delta StreamDelta `json:"delta"`
}

type StreamDelta struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}
