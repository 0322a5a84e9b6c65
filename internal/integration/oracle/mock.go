package oracle

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is an offline stand-in for the chat service. It keys
// off the prompt shape: intent prompts get an intent label, scoring
// prompts get the middle score.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, system, user string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] chat completion", zap.Int("prompt_length", len(user)))

	if strings.Contains(user, "의도를 파악해주세요") {
		return "answer", nil
	}

	return "1", nil
}
