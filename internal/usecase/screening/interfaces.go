package screening

import (
	"context"

	"github.com/aihelper/screening-backend/internal/entity"
)

// IntentClassifier resolves an utterance to a dialogue intent using
// the previous system prompt as context. Must be total.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance, lastPrompt string) entity.Intent
}

// AnswerScorer maps an answer to a bounded ordinal score for a
// (category, subcategory) pair. Must be total.
type AnswerScorer interface {
	Score(ctx context.Context, utterance string, c entity.Category, sub string) int
}

// SessionRepository persists session lifecycle records.
type SessionRepository interface {
	CreateSession(ctx context.Context, s *entity.ScreeningSession, totalQuestions int) error
	UpdateSessionProgress(ctx context.Context, s *entity.ScreeningSession) error
	UpdateSessionStatus(ctx context.Context, sessionID string, status entity.SessionStatus) error
	SessionExists(ctx context.Context, sessionID string) (bool, error)
}

// ResponseRepository persists individual scored answers.
type ResponseRepository interface {
	SaveResponse(ctx context.Context, sessionID string, rec entity.EvaluationRecord, questionText string, intent entity.Intent, keywords []string) error
	ListResponses(ctx context.Context, sessionID string) ([]entity.EvaluationRecord, error)
}

// KeywordRepository aggregates keyword frequencies per subscale.
type KeywordRepository interface {
	IncrementFrequencies(ctx context.Context, c entity.Category, sub string, keywords []string) error
}
