package entity

// ChatMessage is one message of an oracle chat exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions tunes oracle sampling. Low temperature keeps
// classification and scoring output stable.
type ChatOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// ChatRequest is the request body of the Ollama-compatible chat
// endpoint the oracle connector talks to.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ChatOptions   `json:"options"`
}

// ChatResponse is the non-streamed chat completion.
type ChatResponse struct {
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}
