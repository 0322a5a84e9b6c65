package screening

import (
	"context"
	"time"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/plan"
)

// actionSelector decides the next prompt for a classified turn and
// mutates the session accordingly. The rule-based machine is the only
// implementation; a learned selector could be plugged in here.
type actionSelector interface {
	transition(ctx context.Context, s *entity.ScreeningSession, it entity.Intent, utterance string) (string, *entity.EvaluationRecord)
}

// machine applies the dialogue transition function to a session. It
// mutates the session in place; callers hold the session lock.
type machine struct {
	plan   *plan.Plan
	scorer AnswerScorer
}

// transition advances the session for one classified turn and returns
// the next prompt plus the evaluation record when the turn scored an
// answer. The complete mode is terminal: it keeps replaying the
// closing prompt until a reset.
func (m *machine) transition(ctx context.Context, s *entity.ScreeningSession, it entity.Intent, utterance string) (string, *entity.EvaluationRecord) {
	if s.Mode == entity.ModeComplete {
		return m.plan.Closing(), nil
	}

	var scored *entity.EvaluationRecord

	switch it {
	case entity.IntentGreeting:
		s.CurrentQuestionIndex = m.plan.FirstQuestionIndex()

	case entity.IntentAnswer:
		q := m.plan.Question(s.CurrentQuestionIndex)
		if q.Scored() && !s.Answered[q.Index] {
			score := m.scorer.Score(ctx, utterance, q.Category, q.Subcategory)
			rec := entity.EvaluationRecord{
				Category:       q.Category,
				Subcategory:    q.Subcategory,
				RawResponse:    utterance,
				Score:          score,
				QuestionIndex:  q.Index,
				SequenceNumber: len(s.History) + 1,
			}
			s.AddScore(rec)
			scored = &rec
		}
		s.CurrentQuestionIndex = m.plan.NextUnanswered(s.CurrentQuestionIndex, s.Answered)

	case entity.IntentConfused:
		// Do not penalize, do not re-ask: move past the question
		// without scoring it.
		s.CurrentQuestionIndex = m.plan.NextUnanswered(s.CurrentQuestionIndex, s.Answered)

	case entity.IntentRefuse:
		s.Refused = true
		s.CurrentQuestionIndex = m.plan.ClosingIndex()

	default: // ready and anything unrecognized advance
		if s.CurrentQuestionIndex == 0 {
			s.CurrentQuestionIndex = m.plan.FirstQuestionIndex()
		} else {
			s.CurrentQuestionIndex = m.plan.NextUnanswered(s.CurrentQuestionIndex, s.Answered)
		}
	}

	if s.Refused || m.plan.Complete(s.Answered) {
		m.complete(s)
		return m.plan.Closing(), scored
	}

	if s.CurrentQuestionIndex >= m.plan.ClosingIndex() {
		// Plan exhausted without full coverage (confused skips):
		// close out rather than looping forever.
		m.complete(s)
		return m.plan.Closing(), scored
	}

	return m.plan.Question(s.CurrentQuestionIndex).Prompt, scored
}

func (m *machine) complete(s *entity.ScreeningSession) {
	if s.Mode == entity.ModeComplete {
		return
	}
	s.Mode = entity.ModeComplete
	s.CurrentQuestionIndex = m.plan.ClosingIndex()
	now := time.Now().UTC()
	s.CompletedAt = &now
}
