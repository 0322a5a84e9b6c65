package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aihelper/screening-backend/internal/entity"
)

type stubOracle struct {
	reply string
	err   error
	calls int
}

func (s *stubOracle) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestClassifyByRules(t *testing.T) {
	oracle := &stubOracle{}
	c := NewClassifier(oracle)
	ctx := context.Background()

	tests := []struct {
		name      string
		utterance string
		want      entity.Intent
	}{
		{name: "greeting", utterance: "안녕하세요!", want: entity.IntentGreeting},
		{name: "english greeting", utterance: "hello", want: entity.IntentGreeting},
		{name: "ready short ack", utterance: "응 준비됐어", want: entity.IntentReady},
		{name: "ready start", utterance: "시작하자", want: entity.IntentReady},
		{name: "refuse", utterance: "싫어 안 할래", want: entity.IntentRefuse},
		{name: "refuse stop", utterance: "그만하고 싶어", want: entity.IntentRefuse},
		{name: "confused", utterance: "무슨 말인지 모르겠어", want: entity.IntentConfused},
		{name: "confused question", utterance: "뭐라고?", want: entity.IntentConfused},
		{name: "numeric answer", utterance: "2", want: entity.IntentAnswer},
		{name: "ordinal answer", utterance: "두 번째", want: entity.IntentAnswer},
		{name: "empty is confused", utterance: "   ", want: entity.IntentConfused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(ctx, tt.utterance, "")
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Zero(t, oracle.calls, "rule hits must not reach the oracle")
}

func TestClassifyFallsBackToOracle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		reply string
		want  entity.Intent
	}{
		{name: "english label", reply: "answer", want: entity.IntentAnswer},
		{name: "korean gloss", reply: "사용자는 혼란스러워함", want: entity.IntentConfused},
		{name: "verbose refuse", reply: `분류: "refuse"`, want: entity.IntentRefuse},
		{name: "garbage defaults to answer", reply: "판단 불가", want: entity.IntentAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := &stubOracle{reply: tt.reply}
			c := NewClassifier(oracle)

			got := c.Classify(ctx, "요즘 학교 생활이 그냥 그런 편이야", "요즘 잠은 잘 자?")
			assert.Equal(t, tt.want, got)
			assert.NotZero(t, oracle.calls)
		})
	}
}

func TestClassifyOracleFailureDefaultsToAnswer(t *testing.T) {
	oracle := &stubOracle{err: errors.New("connection refused")}
	c := NewClassifier(oracle)

	got := c.Classify(context.Background(), "요즘 학교 생활이 그냥 그런 편이야", "")
	assert.Equal(t, entity.IntentAnswer, got)
}

func TestClassifyWithoutOracle(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify(context.Background(), "요즘 학교 생활이 그냥 그런 편이야", "")
	assert.Equal(t, entity.IntentAnswer, got)
}

func TestBuildIntentPromptIncludesContext(t *testing.T) {
	p := buildIntentPrompt("잘 자", "요즘 잠은 잘 자?")
	assert.Contains(t, p, "시스템 질문")
	assert.Contains(t, p, "요즘 잠은 잘 자?")

	p = buildIntentPrompt("잘 자", "")
	assert.NotContains(t, p, "시스템 질문")
}
