package entity

// NotEvaluatedLabel marks a category no answered question mapped to.
// Such categories keep a nil total; no zero is fabricated for them.
const NotEvaluatedLabel = "평가되지 않음"

// CategoryResult is one instrument's line in the final report.
type CategoryResult struct {
	Category Category `json:"category"`
	// Total is nil when the category was never scored.
	Total *int `json:"total"`
	// Label is the severity interpretation of Total, or
	// NotEvaluatedLabel when Total is nil.
	Label string `json:"interpretation"`
}

// Report is the interpreted outcome of a completed screening session.
type Report struct {
	Results  []CategoryResult `json:"results"`
	Rendered string           `json:"rendered"`
}

// InterpretScore maps an accumulated category total to a descriptive
// severity label, monotonic in severity.
func InterpretScore(c Category, total *int) string {
	if total == nil {
		return NotEvaluatedLabel
	}

	var mild, severe string
	switch c {
	case CategoryRCMAS:
		mild, severe = "경미한 불안 증상", "불안 증상 주의 필요"
	default:
		mild, severe = "경미한 우울 증상", "우울 증상 주의 필요"
	}

	switch {
	case *total <= 1:
		return "정상 범위"
	case *total <= 2:
		return mild
	default:
		return severe
	}
}
