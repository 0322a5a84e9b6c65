package entity

// StartSessionRequest opens a new screening session. UserID is
// optional; anonymous sessions are allowed.
type StartSessionRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// StartSessionResponse carries the opening prompt of the battery.
type StartSessionResponse struct {
	SessionID   string `json:"session_id"`
	FirstPrompt string `json:"first_prompt"`
}

// TurnRequest is one user utterance within a session.
type TurnRequest struct {
	Utterance string `json:"utterance"`
}

// TurnResult is the structured outcome of processing one turn.
type TurnResult struct {
	SessionID  string  `json:"session_id"`
	Response   string  `json:"response"`
	Intent     Intent  `json:"intent"`
	IsComplete bool    `json:"is_complete"`
	Report     *Report `json:"report,omitempty"`
}

// ProgressResponse reports how far a session has advanced.
type ProgressResponse struct {
	SessionID      string                `json:"session_id"`
	AnsweredCount  int                   `json:"answered_count"`
	TotalQuestions int                   `json:"total_questions"`
	CategoryTotals map[Category]*int     `json:"category_totals"`
	IsComplete     bool                  `json:"is_complete"`
}

// HistoryResponse returns the conversation exchanges of a session.
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	History   []HistoryEntry `json:"conversation_history"`
}

// ResetResponse acknowledges a session reset.
type ResetResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ResultFormat selects the report download rendering.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "md"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)
