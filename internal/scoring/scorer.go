// Package scoring maps free-text answers to bounded ordinal scores
// using the rubric criteria, an external oracle, and a keyword-overlap
// fallback so scoring never blocks on oracle availability.
package scoring

import (
	"context"
	"regexp"
	"strconv"

	grpczap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/rubric"
)

// Oracle produces a completion for a system/user prompt pair.
type Oracle interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Scorer evaluates answers against the rubric store. Score is total:
// it always returns a value within the category's bound and never an
// error.
type Scorer struct {
	rubrics *rubric.Store
	oracle  Oracle
}

func NewScorer(rubrics *rubric.Store, oracle Oracle) *Scorer {
	return &Scorer{rubrics: rubrics, oracle: oracle}
}

var firstIntRe = regexp.MustCompile(`\d+`)

// Score evaluates one utterance for a (category, subcategory) pair.
// A missing rubric scores zero. Oracle failures fall back to keyword
// overlap against the rubric tiers.
func (s *Scorer) Score(ctx context.Context, utterance string, c entity.Category, sub string) int {
	r, ok := s.rubrics.Get(c, sub)
	if !ok {
		return 0
	}

	if s.oracle != nil {
		reply, err := s.oracle.Complete(ctx, scoreSystemPrompt, BuildScorePrompt(utterance, r))
		if err == nil {
			return extractScore(reply, c)
		}
		grpczap.Info(ctx, "scoring oracle unavailable, using keyword fallback",
			zap.String("category", string(c)),
			zap.String("subcategory", sub),
			zap.Error(err))
	}

	return fallbackScore(utterance, r)
}

// extractScore pulls the first integer token out of an oracle reply
// and clamps it to the category bound. A reply with no digits resolves
// to the ambiguous middle score.
func extractScore(reply string, c entity.Category) int {
	m := firstIntRe.FindString(reply)
	if m == "" {
		return c.AmbiguousScore()
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return c.AmbiguousScore()
	}
	if n < 0 {
		return 0
	}
	if max := c.MaxScore(); n > max {
		return max
	}
	return n
}
