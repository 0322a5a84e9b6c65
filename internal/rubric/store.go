// Package rubric holds the tiered evaluation criteria the scorer
// matches answers against. Each rubric keys on a (category,
// subcategory) pair and lists Korean exemplar phrases per severity
// tier.
package rubric

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aihelper/screening-backend/internal/entity"
)

// Store is an immutable lookup of rubrics. It is safe for concurrent
// use once built.
type Store struct {
	rubrics map[string]entity.Rubric
}

func key(c entity.Category, sub string) string {
	return string(c) + "/" + sub
}

// NewStore builds a store from a rubric list. Later entries with the
// same (category, subcategory) override earlier ones, which lets a
// file-loaded set extend the built-in defaults.
func NewStore(rubrics []entity.Rubric) (*Store, error) {
	m := make(map[string]entity.Rubric, len(rubrics))
	for _, r := range rubrics {
		if err := r.Category.Validate(); err != nil {
			return nil, fmt.Errorf("rubric %s/%s: %w", r.Category, r.Subcategory, err)
		}
		if r.Subcategory == "" {
			return nil, fmt.Errorf("%w: rubric for %s has empty subcategory", entity.ErrMissingField, r.Category)
		}
		if len(r.Tiers) == 0 {
			return nil, fmt.Errorf("%w: rubric %s/%s has no tiers", entity.ErrMissingField, r.Category, r.Subcategory)
		}
		m[key(r.Category, r.Subcategory)] = r
	}
	return &Store{rubrics: m}, nil
}

// Default returns the store preloaded with the built-in rubrics.
func Default() *Store {
	s, err := NewStore(defaultRubrics())
	if err != nil {
		// Built-in data is validated by tests; reaching this is a bug.
		panic(fmt.Sprintf("built-in rubrics invalid: %v", err))
	}
	return s
}

// Load reads rubrics from a JSON file and layers them over the
// built-in defaults.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rubric file: %w", err)
	}

	var extra []entity.Rubric
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse rubric file %s: %w", path, err)
	}

	return NewStore(append(defaultRubrics(), extra...))
}

// Get returns the rubric for a (category, subcategory) pair. The
// second result is false when no rubric is defined; callers treat
// that as "score zero", never as an error.
func (s *Store) Get(c entity.Category, sub string) (entity.Rubric, bool) {
	r, ok := s.rubrics[key(c, sub)]
	return r, ok
}

// Len returns the number of loaded rubrics.
func (s *Store) Len() int { return len(s.rubrics) }
