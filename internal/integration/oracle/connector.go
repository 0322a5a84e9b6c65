// Package oracle talks to the Ollama-compatible chat service that
// backs intent classification and answer scoring.
package oracle

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/config"
	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/integration/common"
	pkghttp "github.com/aihelper/screening-backend/pkg/http"
)

type Connector struct {
	config    config.OracleConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.OracleConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends one system/user prompt pair to the chat endpoint and
// returns the model's reply text. Transient failures are retried; the
// caller's fallback handles a final error.
func (c *Connector) Complete(ctx context.Context, system, user string) (string, error) {
	req := &entity.ChatRequest{
		Model: c.config.Model,
		Messages: []entity.ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Options: entity.ChatOptions{
			Temperature: c.config.Temperature,
			TopP:        c.config.TopP,
		},
	}

	var resp entity.ChatResponse
	err := retry.Do(
		func() error {
			return c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatEndpoint, req, &resp)
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp.Message.Content == "" {
		return "", fmt.Errorf("invalid chat response: empty message content")
	}

	ctxzap.Info(ctx, "chat completion received",
		zap.String("model", c.config.Model),
		zap.Int("reply_length", len(resp.Message.Content)),
	)

	return resp.Message.Content, nil
}
