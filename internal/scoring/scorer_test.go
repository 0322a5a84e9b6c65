package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/rubric"
)

type stubOracle struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubOracle) Complete(_ context.Context, _, user string) (string, error) {
	s.calls++
	s.last = user
	return s.reply, s.err
}

func TestScoreMissingRubricIsZero(t *testing.T) {
	oracle := &stubOracle{reply: "2"}
	s := NewScorer(rubric.Default(), oracle)

	got := s.Score(context.Background(), "매우 우울해", entity.CategoryCDI, "unknown_subscale")
	assert.Zero(t, got)
	assert.Zero(t, oracle.calls, "missing rubric must not reach the oracle")
}

func TestScoreOraclePath(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		category entity.Category
		sub      string
		want     int
	}{
		{name: "plain integer", reply: "2", category: entity.CategoryCDI, sub: "depression", want: 2},
		{name: "integer in prose", reply: "점수: 1점입니다", category: entity.CategoryCDI, sub: "depression", want: 1},
		{name: "clamped to cdi bound", reply: "7", category: entity.CategoryCDI, sub: "depression", want: 2},
		{name: "clamped to rcmas bound", reply: "2", category: entity.CategoryRCMAS, sub: "anxiety", want: 1},
		{name: "no digits means ambiguous", reply: "판단하기 어렵습니다", category: entity.CategoryCDI, sub: "depression", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := &stubOracle{reply: tt.reply}
			s := NewScorer(rubric.Default(), oracle)

			got := s.Score(context.Background(), "요즘 계속 그래", tt.category, tt.sub)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, oracle.calls)
		})
	}
}

func TestScorePromptEmbedsRubric(t *testing.T) {
	oracle := &stubOracle{reply: "0"}
	s := NewScorer(rubric.Default(), oracle)

	s.Score(context.Background(), "기분 좋아", entity.CategoryCDI, "depression")

	require.NotEmpty(t, oracle.last)
	assert.Contains(t, oracle.last, "아동용 우울척도(CDI)")
	assert.Contains(t, oracle.last, "우울감")
	assert.Contains(t, oracle.last, "우울하지 않다")
	assert.Contains(t, oracle.last, "절망적이다")
	assert.Contains(t, oracle.last, "기분 좋아")
}

func TestScoreFallsBackOnOracleFailure(t *testing.T) {
	oracle := &stubOracle{err: errors.New("connection refused")}
	s := NewScorer(rubric.Default(), oracle)

	got := s.Score(context.Background(), "가끔 우울하다 보통이다 그럭저럭이다", entity.CategoryCDI, "depression")
	assert.Equal(t, 1, got)
}

func TestFallbackScore(t *testing.T) {
	store := rubric.Default()

	depression, ok := store.Get(entity.CategoryCDI, "depression")
	require.True(t, ok)
	anxiety, ok := store.Get(entity.CategoryRCMAS, "anxiety")
	require.True(t, ok)

	tests := []struct {
		name      string
		utterance string
		r         entity.Rubric
		want      int
	}{
		{name: "clear negative tier", utterance: "매우 우울하다 항상 슬프다 절망적이다", r: depression, want: 2},
		{name: "clear positive tier", utterance: "기분 좋다 괜찮다 밝다", r: depression, want: 0},
		{name: "weak overlap is ambiguous", utterance: "글쎄 어제 축구 봤어", r: depression, want: 1},
		{name: "binary severe capped at one", utterance: "불안하다 초조하다 긴장된다 두렵다", r: anxiety, want: 1},
		{name: "empty is ambiguous", utterance: "", r: depression, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackScore(tt.utterance, tt.r))
		})
	}
}

func TestFallbackNegationSuppressesMatch(t *testing.T) {
	store := rubric.Default()
	r, ok := store.Get(entity.CategoryCDI, "depression")
	require.True(t, ok)

	// Negation flips the keyword contributions negative, leaving no
	// tier above the confidence threshold.
	got := fallbackScore("어둡다는 건 아니야, 안 그래", r)
	assert.Equal(t, 1, got)
}

func TestPreprocess(t *testing.T) {
	assert.Equal(t, "잘 자요 정말", preprocess("  잘...   자요!! (정말)  "))
	assert.Equal(t, "", preprocess("?!~"))
}
