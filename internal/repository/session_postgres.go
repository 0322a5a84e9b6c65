package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aihelper/screening-backend/internal/entity"
)

var _ SessionRepository = &SessionPostgres{}

// SessionPostgres implements SessionRepository using PostgreSQL
type SessionPostgres struct {
	db *pgxpool.Pool
}

func NewSessionPostgres(db *pgxpool.Pool) *SessionPostgres {
	return &SessionPostgres{db: db}
}

func (r *SessionPostgres) CreateSession(ctx context.Context, s *entity.ScreeningSession, totalQuestions int) error {
	sessionID, err := uuid.Parse(s.ID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO screening_sessions (
			id, user_id, plan_name, status,
			total_questions, completed_questions, total_score, started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sessionID, nullable(s.UserID), s.PlanName, string(s.Status()),
		totalQuestions, s.AnsweredCount(), s.TotalScore(), s.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *SessionPostgres) UpdateSessionProgress(ctx context.Context, s *entity.ScreeningSession) error {
	sessionID, err := uuid.Parse(s.ID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE screening_sessions
		SET status = $2,
		    completed_questions = $3,
		    total_score = $4,
		    completed_at = $5
		WHERE id = $1`,
		sessionID, string(s.Status()), s.AnsweredCount(), s.TotalScore(), s.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update session progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update session progress: %w", entity.ErrSessionNotFound)
	}

	return nil
}

func (r *SessionPostgres) UpdateSessionStatus(ctx context.Context, id string, status entity.SessionStatus) error {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE screening_sessions SET status = $2 WHERE id = $1`,
		sessionID, string(status),
	)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update session status: %w", entity.ErrSessionNotFound)
	}

	return nil
}

func (r *SessionPostgres) SessionExists(ctx context.Context, id string) (bool, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Errorf("invalid session ID: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM screening_sessions WHERE id = $1)`,
		sessionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check session existence: %w", err)
	}

	return exists, nil
}
