package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aihelper/screening-backend/internal/entity"
)

var _ KeywordRepository = &KeywordPostgres{}

// KeywordPostgres implements KeywordRepository using PostgreSQL
type KeywordPostgres struct {
	db *pgxpool.Pool
}

func NewKeywordPostgres(db *pgxpool.Pool) *KeywordPostgres {
	return &KeywordPostgres{db: db}
}

func (r *KeywordPostgres) IncrementFrequencies(ctx context.Context, c entity.Category, sub string, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, kw := range keywords {
		batch.Queue(`
			INSERT INTO keyword_frequencies (category, subcategory, keyword, frequency, last_seen)
			VALUES ($1, $2, $3, 1, now())
			ON CONFLICT (category, subcategory, keyword)
			DO UPDATE SET frequency = keyword_frequencies.frequency + 1, last_seen = now()`,
			string(c), sub, kw,
		)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("increment keyword frequencies: %w", err)
	}

	return nil
}

func (r *KeywordPostgres) TopKeywords(ctx context.Context, c entity.Category, sub string, limit int) ([]entity.KeywordFrequency, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, subcategory, keyword, frequency, last_seen
		FROM keyword_frequencies
		WHERE category = $1 AND subcategory = $2
		ORDER BY frequency DESC, keyword
		LIMIT $3`,
		string(c), sub, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top keywords: %w", err)
	}

	freqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.KeywordFrequency, error) {
		var f entity.KeywordFrequency
		var category string
		err := row.Scan(&category, &f.Subcategory, &f.Keyword, &f.Frequency, &f.LastSeen)
		f.Category = entity.Category(category)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan keywords: %w", err)
	}

	return freqs, nil
}
