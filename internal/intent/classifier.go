// Package intent classifies user utterances into dialogue intents.
// Classification is total: every utterance maps to some intent and the
// classifier never returns an error.
package intent

import (
	"context"
	"strings"
	"unicode"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/entity"
)

// Oracle produces a completion for a system/user prompt pair.
type Oracle interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Classifier resolves utterances with a cheap rule pass first and an
// oracle fallback for everything the rules do not recognize.
type Classifier struct {
	oracle Oracle
}

func NewClassifier(oracle Oracle) *Classifier {
	return &Classifier{oracle: oracle}
}

var (
	greetingMarkers = []string{"안녕", "하이", "반가워", "hello", "hi"}
	readyMarkers    = []string{"준비", "시작", "좋아", "그래", "해볼게", "응", "네", "ok", "오케이"}
	refuseMarkers   = []string{"싫어", "싫다", "안 할래", "안할래", "그만", "거부", "하기 싫", "안 해", "안해"}
	confusedMarkers = []string{"모르겠", "무슨 말", "무슨 뜻", "이해가 안", "이해 안", "뭐라고", "다시 말해", "잘 몰라"}
)

// Classify maps an utterance to an intent given the last system
// prompt. Oracle failures degrade to IntentAnswer rather than
// surfacing an error.
func (c *Classifier) Classify(ctx context.Context, utterance, lastPrompt string) entity.Intent {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return entity.IntentConfused
	}

	if it, ok := classifyByRules(trimmed); ok {
		return it
	}

	if c.oracle == nil {
		return entity.IntentAnswer
	}

	reply, err := c.oracle.Complete(ctx, intentSystemPrompt, buildIntentPrompt(trimmed, lastPrompt))
	if err != nil {
		ctxzap.Info(ctx, "intent oracle unavailable, defaulting to answer", zap.Error(err))
		return entity.IntentAnswer
	}

	return parseIntentReply(reply)
}

// classifyByRules tests the marker sets in fixed priority order:
// greeting, ready, refuse, confused, then numeric answers. First
// match wins.
func classifyByRules(utterance string) (entity.Intent, bool) {
	lower := strings.ToLower(utterance)

	for _, m := range greetingMarkers {
		if strings.Contains(lower, m) {
			return entity.IntentGreeting, true
		}
	}
	// Ready markers are short acknowledgements; inside a longer
	// sentence words like "좋아" are usually part of an answer.
	if len([]rune(lower)) <= 10 {
		for _, m := range readyMarkers {
			if strings.Contains(lower, m) {
				return entity.IntentReady, true
			}
		}
	}
	for _, m := range refuseMarkers {
		if strings.Contains(lower, m) {
			return entity.IntentRefuse, true
		}
	}
	for _, m := range confusedMarkers {
		if strings.Contains(lower, m) {
			return entity.IntentConfused, true
		}
	}
	// Numeric picks ("2", "1번", "두 번째") are direct answers even
	// without any emotion vocabulary.
	if hasAnswerMarker(lower) {
		return entity.IntentAnswer, true
	}

	return "", false
}

func hasAnswerMarker(s string) bool {
	hasDigit := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if hasDigit {
		return true
	}
	return strings.Contains(s, "번째") || strings.HasSuffix(strings.TrimSpace(s), "번")
}

// parseIntentReply maps a free-form oracle reply onto an intent,
// accepting both the English labels and their Korean glosses.
func parseIntentReply(reply string) entity.Intent {
	lower := strings.ToLower(strings.TrimSpace(reply))

	switch {
	case containsAny(lower, "ready", "준비", "시작"):
		return entity.IntentReady
	case containsAny(lower, "answer", "답변", "응답"):
		return entity.IntentAnswer
	case containsAny(lower, "greeting", "인사", "안녕"):
		return entity.IntentGreeting
	case containsAny(lower, "confused", "혼란", "모르겠"):
		return entity.IntentConfused
	case containsAny(lower, "refuse", "거부", "싫어"):
		return entity.IntentRefuse
	default:
		return entity.IntentAnswer
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
