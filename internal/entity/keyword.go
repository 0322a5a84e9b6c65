package entity

import "time"

// KeywordFrequency is an aggregated count of one keyword observed in
// answers for a (category, subcategory) pair.
type KeywordFrequency struct {
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory"`
	Keyword     string    `json:"keyword"`
	Frequency   int       `json:"frequency"`
	LastSeen    time.Time `json:"last_seen"`
}
