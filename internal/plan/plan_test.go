package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aihelper/screening-backend/internal/entity"
)

func TestDefaultPlanShape(t *testing.T) {
	p := Default()
	require.NotNil(t, p)

	assert.Equal(t, "default", p.Name())
	assert.Equal(t, 3, p.TotalQuestions())
	assert.Equal(t, []int{1, 2, 3}, p.TaggedIndexes())
	assert.Equal(t, 4, p.ClosingIndex())
	assert.False(t, p.Question(0).Scored())
	assert.False(t, p.Question(p.ClosingIndex()).Scored())

	seen := map[entity.Category]bool{}
	for _, i := range p.TaggedIndexes() {
		seen[p.Question(i).Category] = true
	}
	for _, c := range entity.Categories {
		assert.True(t, seen[c], "category %s has no question", c)
	}
}

func TestExtendedPlanShape(t *testing.T) {
	p := Extended()
	require.NotNil(t, p)

	assert.Equal(t, 19, p.TotalQuestions())
	assert.Equal(t, 20, p.ClosingIndex())
	for _, i := range p.TaggedIndexes() {
		q := p.Question(i)
		assert.NoError(t, q.Category.Validate())
		assert.NotEmpty(t, q.Subcategory)
		assert.NotEmpty(t, q.Prompt)
	}
}

func TestQuestionClampsOutOfRange(t *testing.T) {
	p := Default()

	assert.Equal(t, p.Question(0), p.Question(-3))
	assert.Equal(t, p.Question(p.ClosingIndex()), p.Question(99))
}

func TestNextUnanswered(t *testing.T) {
	p := Default()

	tests := []struct {
		name     string
		after    int
		answered map[int]bool
		want     int
	}{
		{name: "from greeting", after: 0, answered: map[int]bool{}, want: 1},
		{name: "skips answered", after: 0, answered: map[int]bool{1: true}, want: 2},
		{name: "all answered", after: 0, answered: map[int]bool{1: true, 2: true, 3: true}, want: p.ClosingIndex()},
		{name: "past last question", after: 3, answered: map[int]bool{}, want: p.ClosingIndex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.NextUnanswered(tt.after, tt.answered))
		})
	}
}

func TestComplete(t *testing.T) {
	p := Default()

	assert.False(t, p.Complete(map[int]bool{}))
	assert.False(t, p.Complete(map[int]bool{1: true, 2: true}))
	assert.True(t, p.Complete(map[int]bool{1: true, 2: true, 3: true}))
}

func TestNewRejectsInvalidPlans(t *testing.T) {
	_, err := New("tiny", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕"},
		{Index: 1, Prompt: "끝"},
	})
	assert.ErrorIs(t, err, entity.ErrEmptyPlan)

	_, err = New("untagged", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕"},
		{Index: 1, Prompt: "질문"},
		{Index: 2, Prompt: "끝"},
	})
	assert.ErrorIs(t, err, entity.ErrEmptyPlan)

	_, err = New("misnumbered", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕"},
		{Index: 2, Prompt: "질문", Category: entity.CategoryCDI, Subcategory: "depression"},
		{Index: 3, Prompt: "끝"},
	})
	assert.Error(t, err)

	_, err = New("bad category", []entity.QuestionDefinition{
		{Index: 0, Prompt: "안녕"},
		{Index: 1, Prompt: "질문", Category: entity.Category("phq9"), Subcategory: "depression"},
		{Index: 2, Prompt: "끝"},
	})
	assert.Error(t, err)
}

func TestLoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	data := `{
		"name": "short",
		"questions": [
			{"index": 0, "prompt": "안녕!"},
			{"index": 1, "prompt": "요즘 기분이 어때?", "category": "cdi", "subcategory": "depression"},
			{"index": 2, "prompt": "고마워."}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "short", p.Name())
	assert.Equal(t, 1, p.TotalQuestions())
	assert.Equal(t, entity.CategoryCDI, p.Question(1).Category)
}

func TestSelect(t *testing.T) {
	p, err := Select("")
	require.NoError(t, err)
	assert.Equal(t, "default", p.Name())

	p, err = Select("extended")
	require.NoError(t, err)
	assert.Equal(t, "extended", p.Name())

	_, err = Select("/does/not/exist.json")
	assert.ErrorIs(t, err, entity.ErrUnknownPlan)
}
