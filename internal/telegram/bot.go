package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/config"
	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/pkg/formatter"
)

const (
	msgWelcome   = "안녕! 나는 오늘 네 기분을 함께 이야기해볼 친구야.\n/start 를 입력하면 대화를 시작할 수 있어."
	msgNoSession = "아직 진행 중인 대화가 없어. /start 로 시작해줘."
	msgExpired   = "대화가 너무 오래 멈춰 있어서 종료됐어. /start 로 다시 시작해줘."
	msgGeneric   = "앗, 잠깐 문제가 생겼어. 조금 있다가 다시 말해줄래?"
	msgHelp      = `명령어 안내:

/start - 새 대화 시작
/reset - 처음부터 다시 시작
/report - 지금까지의 결과 파일 받기
/help - 이 안내 보기

그냥 편하게 이야기하면 내가 질문을 이어갈게.`
)

// bot talks to children over Telegram and drives one screening
// session per chat.
type bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.TelegramConfig
	usecase  ScreeningUsecase
	formats  *formatter.Factory
	logger   *zap.Logger
	sessions sync.Map // chat id -> session id
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func newBot(cfg *config.TelegramConfig, usecase ScreeningUsecase, logger *zap.Logger) (*bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	api.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	return &bot{
		api:      api,
		cfg:      cfg,
		usecase:  usecase,
		formats:  formatter.NewFactory(),
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Start starts the bot
func (b *bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	updates := b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)

	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return nil
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(ctxzap.ToContext(context.Background(), b.logger), message)
			}(update.Message)
		}
	}
}

// Stop stops receiving updates and waits for active handlers
func (b *bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

// handleMessage routes a single incoming message
func (b *bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "panic in message handler",
				zap.Any("panic", r),
				zap.Int64("chat_id", message.Chat.ID),
			)
			b.sendError(message.Chat.ID)
		}
	}()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	b.handleUtterance(ctx, message)
}

// handleCommand handles bot commands
func (b *bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()
	chatID := message.Chat.ID

	ctxzap.Info(ctx, "command received",
		zap.String("command", command),
		zap.Int64("chat_id", chatID),
	)

	switch command {
	case "start":
		b.handleStartCommand(ctx, message)
	case "reset":
		b.handleResetCommand(ctx, message)
	case "report":
		b.handleReportCommand(ctx, message)
	case "help":
		b.sendMessage(chatID, msgHelp)
	default:
		b.sendMessage(chatID, "모르는 명령어야. /help 를 참고해줘.")
	}
}

func (b *bot) handleStartCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	userID := fmt.Sprintf("telegram:%d", message.From.ID)
	resp, err := b.usecase.StartSession(ctx, userID)
	if err != nil {
		ctxzap.Error(ctx, "failed to start session",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		b.sendError(chatID)
		return
	}

	b.sessions.Store(chatID, resp.SessionID)

	ctxzap.Info(ctx, "telegram session started",
		zap.String("session_id", resp.SessionID),
		zap.Int64("chat_id", chatID),
	)

	b.sendMessage(chatID, resp.FirstPrompt)
}

func (b *bot) handleResetCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	sessionID, ok := b.sessionFor(chatID)
	if !ok {
		b.sendMessage(chatID, msgNoSession)
		return
	}

	resp, err := b.usecase.ResetSession(ctx, sessionID)
	if err != nil {
		b.handleUsecaseError(ctx, chatID, err)
		return
	}

	b.sendMessage(chatID, resp.Message)
}

func (b *bot) handleReportCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	sessionID, ok := b.sessionFor(chatID)
	if !ok {
		b.sendMessage(chatID, msgNoSession)
		return
	}

	report, err := b.usecase.GetReport(ctx, sessionID)
	if err != nil {
		b.handleUsecaseError(ctx, chatID, err)
		return
	}

	f, err := b.formats.Create(entity.FormatPDF)
	if err != nil {
		b.sendError(chatID)
		return
	}

	data, err := f.Format(report.Rendered)
	if err != nil {
		ctxzap.Error(ctx, "failed to render report",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		b.sendError(chatID)
		return
	}

	filename := fmt.Sprintf("screening-report-%s%s", sessionID, f.FileExtension())
	if err := b.sendDocument(chatID, filename, data); err != nil {
		ctxzap.Error(ctx, "failed to send report document",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		b.sendError(chatID)
	}
}

// handleUtterance forwards free text into the screening dialogue
func (b *bot) handleUtterance(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	sessionID, ok := b.sessionFor(chatID)
	if !ok {
		b.sendMessage(chatID, msgWelcome)
		return
	}

	result, err := b.usecase.ProcessTurn(ctx, sessionID, message.Text)
	if err != nil {
		b.handleUsecaseError(ctx, chatID, err)
		return
	}

	ctxzap.Info(ctx, "telegram turn processed",
		zap.String("session_id", sessionID),
		zap.String("intent", string(result.Intent)),
		zap.Bool("is_complete", result.IsComplete),
	)

	b.sendMessage(chatID, result.Response)

	if result.IsComplete {
		b.sendMessage(chatID, "결과 파일이 필요하면 /report 를 입력해줘. 다시 하고 싶으면 /reset!")
	}
}

func (b *bot) handleUsecaseError(ctx context.Context, chatID int64, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		b.sessions.Delete(chatID)
		b.sendMessage(chatID, msgNoSession)
	case errors.Is(err, entity.ErrSessionExpired):
		b.sessions.Delete(chatID)
		b.sendMessage(chatID, msgExpired)
	case errors.Is(err, entity.ErrEmptyUtterance):
		b.sendMessage(chatID, "뭐라고 말했는지 잘 못 들었어. 다시 한 번 말해줄래?")
	default:
		ctxzap.Error(ctx, "usecase error",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		b.sendError(chatID)
	}
}

func (b *bot) sessionFor(chatID int64) (string, bool) {
	v, ok := b.sessions.Load(chatID)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// sendMessage sends a message to chat
func (b *bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// sendError sends a generic error message
func (b *bot) sendError(chatID int64) {
	b.sendMessage(chatID, msgGeneric)
}

// sendDocument sends a document
func (b *bot) sendDocument(chatID int64, filename string, data []byte) error {
	doc := tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	}

	msg := tgbotapi.NewDocument(chatID, doc)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send document: %w", err)
	}

	return nil
}
