package repository

import (
	"context"

	"github.com/aihelper/screening-backend/internal/entity"
)

// SessionRepository persists screening session lifecycle records.
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

// KeywordRepository aggregates observed answer keywords per subscale.
type KeywordRepository interface {
	IncrementFrequencies(ctx context.Context, c entity.Category, sub string, keywords []string) error
	TopKeywords(ctx context.Context, c entity.Category, sub string, limit int) ([]entity.KeywordFrequency, error)
}
