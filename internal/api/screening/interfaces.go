package screening

import (
	"context"

	"github.com/aihelper/screening-backend/internal/entity"
)

// ScreeningUsecase is the handler's view of the screening core.
type ScreeningUsecase interface {
	StartSession(ctx context.Context, userID string) (*entity.StartSessionResponse, error)
	ProcessTurn(ctx context.Context, sessionID, utterance string) (*entity.TurnResult, error)
	ResetSession(ctx context.Context, sessionID string) (*entity.ResetResponse, error)
	GetProgress(ctx context.Context, sessionID string) (*entity.ProgressResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*entity.HistoryResponse, error)
	GetReport(ctx context.Context, sessionID string) (*entity.Report, error)
}

// KeywordReader exposes aggregated answer keywords for review.
type KeywordReader interface {
	TopKeywords(ctx context.Context, c entity.Category, sub string, limit int) ([]entity.KeywordFrequency, error)
}
