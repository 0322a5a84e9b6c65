package entity

// QuestionDefinition is one entry of a question plan. Index 0 is by
// convention the greeting, the final index the closing action; only
// entries with a non-empty Category are scored.
type QuestionDefinition struct {
	Index       int      `json:"index"`
	Prompt      string   `json:"prompt"`
	Category    Category `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
}

// Scored reports whether an answer to this question contributes to a
// category total.
func (q QuestionDefinition) Scored() bool {
	return q.Category != ""
}
