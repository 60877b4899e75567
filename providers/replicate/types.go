package replicate

type Request struct {
	Input  Input `json:"input"`
	Stream bool  `json:"stream,omitempty"`
}

type Input struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
}

type Prediction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  string `json:"error,omitempty"`
	URLs   URLs   `json:"urls"`
}

type URLs struct {
	Get    string `json:"get"`
	Cancel string `json:"cancel"`
	Stream string `json:"stream"`
}
