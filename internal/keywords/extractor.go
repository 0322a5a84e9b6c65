// Package keywords extracts salient terms from Korean answers. The
// extracted terms are stored alongside responses and aggregated into
// per-subscale frequency counters.
package keywords

import (
	"regexp"
	"strings"
)

const minKeywordLength = 2

var tokenRe = regexp.MustCompile(`[가-힣a-zA-Z0-9]+`)

// stopWords lists Korean particles, fillers and generic predicates
// that carry no screening signal.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"은", "는", "이", "가", "을", "를", "에", "의", "로", "으로", "와", "과",
		"도", "만", "부터", "까지", "에서", "에게", "한테", "께", "보다", "처럼",
		"같이", "같은", "같은데", "같지만", "같으면서", "같은데도",
		"그리고", "그런데", "하지만", "그러나", "또한", "또는", "또", "그래서",
		"그러므로", "따라서", "그런", "이런", "저런", "어떤", "무엇", "누구",
		"언제", "어디", "왜", "어떻게", "얼마나", "몇", "몇몇", "많은", "적은",
		"좋은", "나쁜", "큰", "작은", "높은", "낮은", "빠른", "느린", "많이",
		"조금", "아주", "매우", "정말", "진짜", "완전", "너무", "꽤", "상당히",
		"그냥", "단지", "오직", "다만", "뿐", "조차", "마저", "까지도",
		"나", "너", "우리", "그들", "그녀", "그", "저", "이것", "그것", "저것",
		"여기", "거기", "저기",
		"있다", "없다", "하다", "되다", "가다", "오다", "듣다", "말하다",
		"생각하다", "느끼다", "알다", "모르다", "좋다", "나쁘다", "크다", "작다",
		"많다", "적다", "빠르다", "느리다", "높다", "낮다", "길다", "짧다",
	} {
		stopWords[w] = struct{}{}
	}
}

// Extract tokenizes an utterance and returns the content words, in
// order of appearance, with stop words and short fragments removed.
func Extract(text string) []string {
	words := tokenRe.FindAllString(strings.ToLower(text), -1)

	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if len([]rune(w)) < minKeywordLength {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// Frequencies counts keyword occurrences across a batch of utterances.
func Frequencies(texts []string) map[string]int {
	freq := make(map[string]int)
	for _, t := range texts {
		for _, kw := range Extract(t) {
			freq[kw]++
		}
	}
	return freq
}
