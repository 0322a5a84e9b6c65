package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aihelper/screening-backend/internal/entity"
)

var _ ResponseRepository = &ResponsePostgres{}

// ResponsePostgres implements ResponseRepository using PostgreSQL
type ResponsePostgres struct {
	db *pgxpool.Pool
}

func NewResponsePostgres(db *pgxpool.Pool) *ResponsePostgres {
	return &ResponsePostgres{db: db}
}

func (r *ResponsePostgres) SaveResponse(
	ctx context.Context,
	sessionID string,
	rec entity.EvaluationRecord,
	questionText string,
	intent entity.Intent,
	keywords []string,
) error {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO screening_responses (
			id, session_id, question_index, question_text,
			utterance, intent, category, subcategory, score, keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(), sid, rec.QuestionIndex, questionText,
		rec.RawResponse, string(intent), string(rec.Category), rec.Subcategory, rec.Score, keywords,
	)
	if err != nil {
		return fmt.Errorf("save response: %w", err)
	}

	return nil
}

func (r *ResponsePostgres) ListResponses(ctx context.Context, sessionID string) ([]entity.EvaluationRecord, error) {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT category, subcategory, utterance, score, question_index,
		       row_number() OVER (ORDER BY created_at)
		FROM screening_responses
		WHERE session_id = $1
		ORDER BY created_at`,
		sid,
	)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.EvaluationRecord, error) {
		var rec entity.EvaluationRecord
		var category string
		err := row.Scan(&category, &rec.Subcategory, &rec.RawResponse, &rec.Score, &rec.QuestionIndex, &rec.SequenceNumber)
		rec.Category = entity.Category(category)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan responses: %w", err)
	}

	return records, nil
}
