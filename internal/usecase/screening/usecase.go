// Package screening implements the conversational screening core: the
// dialogue state machine, session registry, and turn orchestration.
package screening

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/keywords"
	"github.com/aihelper/screening-backend/internal/plan"
)

// ScreeningUsecase orchestrates screening sessions end to end:
// intent classification, state transitions, scoring, and
// fire-and-forget persistence.
type ScreeningUsecase struct {
	plan         *plan.Plan
	classifier   IntentClassifier
	machine      actionSelector
	sessions     *registry
	sessionRepo  SessionRepository
	responseRepo ResponseRepository
	keywordRepo  KeywordRepository
	logger       *zap.Logger
}

// NewUsecase creates a new screening use case.
func NewUsecase(
	questionPlan *plan.Plan,
	classifier IntentClassifier,
	scorer AnswerScorer,
	sessionRepo SessionRepository,
	responseRepo ResponseRepository,
	keywordRepo KeywordRepository,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *ScreeningUsecase {
	return &ScreeningUsecase{
		plan:         questionPlan,
		classifier:   classifier,
		machine:      &machine{plan: questionPlan, scorer: scorer},
		sessions:     newRegistry(sessionTTL),
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
		keywordRepo:  keywordRepo,
		logger:       logger,
	}
}

// StartSession opens a new session and returns the opening prompt.
func (uc *ScreeningUsecase) StartSession(ctx context.Context, userID string) (*entity.StartSessionResponse, error) {
	session := entity.NewScreeningSession(uuid.New().String(), userID, uc.plan.Name())
	session.LastPrompt = uc.plan.Greeting()

	uc.sessions.put(session)

	snapshot := session.Snapshot()
	uc.persistAsync(ctx, "create session", func(ctx context.Context) error {
		return uc.sessionRepo.CreateSession(ctx, snapshot, uc.plan.TotalQuestions())
	})

	return &entity.StartSessionResponse{
		SessionID:   session.ID,
		FirstPrompt: session.LastPrompt,
	}, nil
}

// ProcessTurn runs one utterance through the state machine. Completed
// sessions keep replaying the closing report until a reset.
func (uc *ScreeningUsecase) ProcessTurn(ctx context.Context, sessionID, utterance string) (*entity.TurnResult, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, entity.ErrEmptyUtterance
	}

	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	it := uc.classifier.Classify(ctx, utterance, session.LastPrompt)

	questionText := uc.plan.Question(session.CurrentQuestionIndex).Prompt
	prompt, scored := uc.machine.transition(ctx, session, it, utterance)

	result := &entity.TurnResult{
		SessionID:  session.ID,
		Intent:     it,
		IsComplete: session.Mode == entity.ModeComplete,
	}

	if result.IsComplete {
		report := buildReport(session)
		result.Report = report
		result.Response = prompt + "\n\n" + report.Rendered
	} else {
		result.Response = prompt
	}

	session.Conversation = append(session.Conversation, entity.HistoryEntry{
		User:      utterance,
		System:    result.Response,
		Intent:    it,
		Timestamp: time.Now().UTC(),
	})
	session.LastPrompt = result.Response

	uc.persistTurn(ctx, session, scored, questionText, it)

	return result, nil
}

// ResetSession returns a session to its initial state, keeping its
// identity. The persisted record is marked reset before the in-memory
// state is cleared.
func (uc *ScreeningUsecase) ResetSession(ctx context.Context, sessionID string) (*entity.ResetResponse, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	session.Reset()
	session.LastPrompt = uc.plan.Greeting()

	uc.persistAsync(ctx, "mark session reset", func(ctx context.Context) error {
		return uc.sessionRepo.UpdateSessionStatus(ctx, sessionID, entity.SessionStatusReset)
	})

	return &entity.ResetResponse{
		SessionID: session.ID,
		Message:   session.LastPrompt,
	}, nil
}

// GetProgress reports how far a session has advanced.
func (uc *ScreeningUsecase) GetProgress(ctx context.Context, sessionID string) (*entity.ProgressResponse, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	totals := make(map[entity.Category]*int, len(entity.Categories))
	for _, c := range entity.Categories {
		if t := session.Total(c); t != nil {
			v := *t
			totals[c] = &v
		} else {
			totals[c] = nil
		}
	}

	return &entity.ProgressResponse{
		SessionID:      session.ID,
		AnsweredCount:  session.AnsweredCount(),
		TotalQuestions: uc.plan.TotalQuestions(),
		CategoryTotals: totals,
		IsComplete:     session.Mode == entity.ModeComplete,
	}, nil
}

// GetHistory returns the conversation exchanges of a session.
func (uc *ScreeningUsecase) GetHistory(ctx context.Context, sessionID string) (*entity.HistoryResponse, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	history := make([]entity.HistoryEntry, len(session.Conversation))
	copy(history, session.Conversation)

	return &entity.HistoryResponse{
		SessionID: session.ID,
		History:   history,
	}, nil
}

// GetReport builds the interpreted per-category report for a session
// at its current state, complete or not.
func (uc *ScreeningUsecase) GetReport(ctx context.Context, sessionID string) (*entity.Report, error) {
	entry, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return buildReport(entry.session), nil
}

// lookup resolves a live session, distinguishing sessions that were
// never created from ones that expired out of the registry.
func (uc *ScreeningUsecase) lookup(ctx context.Context, sessionID string) (*sessionEntry, error) {
	if entry, ok := uc.sessions.get(sessionID); ok {
		return entry, nil
	}

	if uc.sessionRepo != nil {
		exists, err := uc.sessionRepo.SessionExists(ctx, sessionID)
		if err == nil && exists {
			return nil, fmt.Errorf("session %s: %w", sessionID, entity.ErrSessionExpired)
		}
	}

	return nil, fmt.Errorf("session %s: %w", sessionID, entity.ErrSessionNotFound)
}

// persistTurn writes the side effects of one turn: the scored answer
// record, the keyword frequencies, and the session progress counters.
func (uc *ScreeningUsecase) persistTurn(ctx context.Context, session *entity.ScreeningSession, scored *entity.EvaluationRecord, questionText string, it entity.Intent) {
	if scored != nil {
		rec := *scored
		kws := keywords.Extract(rec.RawResponse)

		uc.persistAsync(ctx, "save answer record", func(ctx context.Context) error {
			return uc.responseRepo.SaveResponse(ctx, session.ID, rec, questionText, it, kws)
		})
		if len(kws) > 0 {
			uc.persistAsync(ctx, "update keyword frequencies", func(ctx context.Context) error {
				return uc.keywordRepo.IncrementFrequencies(ctx, rec.Category, rec.Subcategory, kws)
			})
		}
	}

	// Snapshot under the lock so the write does not race later turns.
	snapshot := session.Snapshot()
	uc.persistAsync(ctx, "update session progress", func(ctx context.Context) error {
		return uc.sessionRepo.UpdateSessionProgress(ctx, snapshot)
	})
}

// persistAsync runs a storage write without blocking the turn. A
// failed write is logged, never surfaced to the caller.
func (uc *ScreeningUsecase) persistAsync(ctx context.Context, op string, fn func(context.Context) error) {
	logger := uc.logger
	if logger == nil {
		logger = ctxzap.Extract(ctx)
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := fn(writeCtx); err != nil {
			logger.Warn("storage write failed", zap.String("op", op), zap.Error(err))
		}
	}()
}
