// Package plan defines the ordered, immutable question batteries that
// drive screening sessions. A plan starts with a greeting, ends with a
// closing action, and tags every scorable question with the
// (category, subcategory) pair that selects its rubric.
package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aihelper/screening-backend/internal/entity"
)

// Plan is an ordered question battery. It is read-only after
// construction and safe for concurrent use.
type Plan struct {
	name      string
	questions []entity.QuestionDefinition
}

// New builds a plan from an ordered question list. The list must
// contain at least a greeting, one tagged question and a closing entry.
func New(name string, questions []entity.QuestionDefinition) (*Plan, error) {
	if len(questions) < 3 {
		return nil, fmt.Errorf("%w: plan %q needs a greeting, questions and a closing", entity.ErrEmptyPlan, name)
	}
	for i, q := range questions {
		if q.Index != i {
			return nil, fmt.Errorf("plan %q: question at position %d has index %d", name, i, q.Index)
		}
		if q.Category != "" {
			if err := q.Category.Validate(); err != nil {
				return nil, fmt.Errorf("plan %q question %d: %w", name, i, err)
			}
		}
	}
	tagged := 0
	for _, q := range questions {
		if q.Scored() {
			tagged++
		}
	}
	if tagged == 0 {
		return nil, fmt.Errorf("%w: plan %q has no scorable questions", entity.ErrEmptyPlan, name)
	}
	return &Plan{name: name, questions: questions}, nil
}

func (p *Plan) Name() string { return p.name }

// Len returns the number of entries including greeting and closing.
func (p *Plan) Len() int { return len(p.questions) }

// Question returns the definition at an index. Indexes past the end
// resolve to the closing entry, so traversal never falls off the plan.
func (p *Plan) Question(index int) entity.QuestionDefinition {
	if index < 0 {
		index = 0
	}
	if index >= len(p.questions) {
		return p.questions[len(p.questions)-1]
	}
	return p.questions[index]
}

// FirstQuestionIndex is the first real question after the greeting.
func (p *Plan) FirstQuestionIndex() int { return 1 }

// ClosingIndex is the index of the closing/report action.
func (p *Plan) ClosingIndex() int { return len(p.questions) - 1 }

// Greeting returns the opening prompt of the battery.
func (p *Plan) Greeting() string { return p.questions[0].Prompt }

// Closing returns the closing prompt shown with the final report.
func (p *Plan) Closing() string { return p.questions[p.ClosingIndex()].Prompt }

// TotalQuestions counts the category-tagged questions of the plan.
func (p *Plan) TotalQuestions() int {
	n := 0
	for _, q := range p.questions {
		if q.Scored() {
			n++
		}
	}
	return n
}

// TaggedIndexes returns the indexes whose answers are required for
// completion, in plan order.
func (p *Plan) TaggedIndexes() []int {
	idx := make([]int, 0, len(p.questions))
	for _, q := range p.questions {
		if q.Scored() {
			idx = append(idx, q.Index)
		}
	}
	return idx
}

// NextUnanswered returns the first question index strictly after
// `after` that is not in answered, or the closing index when the plan
// is exhausted.
func (p *Plan) NextUnanswered(after int, answered map[int]bool) int {
	for i := after + 1; i < p.ClosingIndex(); i++ {
		if !answered[i] {
			return i
		}
	}
	return p.ClosingIndex()
}

// Complete reports whether every tagged index has been answered.
func (p *Plan) Complete(answered map[int]bool) bool {
	for _, i := range p.TaggedIndexes() {
		if !answered[i] {
			return false
		}
	}
	return true
}

// planFile is the on-disk JSON shape of a custom plan.
type planFile struct {
	Name      string                      `json:"name"`
	Questions []entity.QuestionDefinition `json:"questions"`
}

// Load reads a plan from a JSON file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var pf planFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}
	if pf.Name == "" {
		pf.Name = path
	}

	return New(pf.Name, pf.Questions)
}

// Select resolves a plan by configured name: "default", "extended",
// or a path to a JSON plan file.
func Select(name string) (*Plan, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "extended":
		return Extended(), nil
	default:
		p, err := Load(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%v)", entity.ErrUnknownPlan, name, err)
		}
		return p, nil
	}
}
