package scoring

import (
	"regexp"
	"strings"

	"github.com/aihelper/screening-backend/internal/entity"
)

// ambiguousThreshold is the minimum best-tier overlap fraction needed
// to trust the keyword match; below it the middle score is returned.
const ambiguousThreshold = 0.3

// intensity modifiers scale a keyword hit when they appear anywhere in
// the utterance; negation markers invert the contribution.
var modifierWeights = []struct {
	markers []string
	weight  float64
}{
	{markers: []string{"매우", "정말", "완전히"}, weight: 2.0},
	{markers: []string{"꽤", "상당히"}, weight: 1.5},
	{markers: []string{"조금", "약간"}, weight: 1.2},
	{markers: []string{" 안 ", " 못 ", "않"}, weight: -1.0},
	{markers: []string{"전혀", "절대"}, weight: -2.0},
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
var spaceRe = regexp.MustCompile(`\s+`)

func preprocess(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// fallbackScore picks the rubric tier whose exemplar keywords best
// overlap the utterance. Used only when the oracle is unreachable.
func fallbackScore(utterance string, r entity.Rubric) int {
	cleaned := preprocess(utterance)
	if cleaned == "" {
		return r.Category.AmbiguousScore()
	}

	// Pad with spaces so word-initial markers like "안 " match at the
	// start of the utterance too.
	padded := " " + cleaned + " "
	weight := 1.0
	for _, mw := range modifierWeights {
		for _, m := range mw.markers {
			if strings.Contains(padded, m) {
				weight *= mw.weight
				break
			}
		}
	}

	bestTier := entity.Tier("")
	bestOverlap := -1.0
	for _, tier := range r.TierOrder() {
		keywords := r.Tiers[tier]
		matched := 0.0
		for _, kw := range keywords {
			if strings.Contains(cleaned, preprocess(kw)) {
				matched += weight
			}
		}
		overlap := matched / float64(len(keywords))
		if overlap > 1.0 {
			overlap = 1.0
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			bestTier = tier
		}
	}

	if bestOverlap < ambiguousThreshold {
		return r.Category.AmbiguousScore()
	}
	return bestTier.Score(r.Category)
}
