package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/config"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(
	cfg *config.TelegramConfig,
	usecase ScreeningUsecase,
	logger *zap.Logger,
) (Bot, error) {
	return newBot(cfg, usecase, logger)
}
