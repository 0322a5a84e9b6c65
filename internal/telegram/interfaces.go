package telegram

import (
	"context"

	"github.com/aihelper/screening-backend/internal/entity"
)

// ScreeningUsecase is the bot's view of the screening core.
type ScreeningUsecase interface {
	StartSession(ctx context.Context, userID string) (*entity.StartSessionResponse, error)
	ProcessTurn(ctx context.Context, sessionID, utterance string) (*entity.TurnResult, error)
	ResetSession(ctx context.Context, sessionID string) (*entity.ResetResponse, error)
	GetReport(ctx context.Context, sessionID string) (*entity.Report, error)
}
