package screening

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/plan"
)

// fixedClassifier returns a fixed intent per keyword, standing in for
// the oracle-backed classifier.
type fixedClassifier struct{}

func (fixedClassifier) Classify(_ context.Context, utterance, _ string) entity.Intent {
	switch utterance {
	case "안녕":
		return entity.IntentGreeting
	case "준비됐어":
		return entity.IntentReady
	case "싫어":
		return entity.IntentRefuse
	case "모르겠어":
		return entity.IntentConfused
	default:
		return entity.IntentAnswer
	}
}

type fixedScorer struct {
	score int
	calls int
}

func (s *fixedScorer) Score(_ context.Context, _ string, c entity.Category, _ string) int {
	s.calls++
	if s.score > c.MaxScore() {
		return c.MaxScore()
	}
	return s.score
}

type memSessionRepo struct {
	mu       sync.Mutex
	created  map[string]bool
	statuses map[string]entity.SessionStatus
	updates  int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		created:  make(map[string]bool),
		statuses: make(map[string]entity.SessionStatus),
	}
}

func (r *memSessionRepo) CreateSession(_ context.Context, s *entity.ScreeningSession, _ int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[s.ID] = true
	r.statuses[s.ID] = s.Status()
	return nil
}

func (r *memSessionRepo) UpdateSessionProgress(_ context.Context, s *entity.ScreeningSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	r.statuses[s.ID] = s.Status()
	return nil
}

func (r *memSessionRepo) UpdateSessionStatus(_ context.Context, sessionID string, status entity.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[sessionID] = status
	return nil
}

func (r *memSessionRepo) SessionExists(_ context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created[sessionID], nil
}

type memResponseRepo struct {
	mu   sync.Mutex
	recs []entity.EvaluationRecord
}

func (r *memResponseRepo) SaveResponse(_ context.Context, _ string, rec entity.EvaluationRecord, _ string, _ entity.Intent, _ []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func (r *memResponseRepo) ListResponses(_ context.Context, _ string) ([]entity.EvaluationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.EvaluationRecord(nil), r.recs...), nil
}

type memKeywordRepo struct {
	mu    sync.Mutex
	calls int
}

func (r *memKeywordRepo) IncrementFrequencies(_ context.Context, _ entity.Category, _ string, _ []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func newTestUsecase(t *testing.T, scorer AnswerScorer) (*ScreeningUsecase, *memSessionRepo, *memResponseRepo) {
	t.Helper()
	sessionRepo := newMemSessionRepo()
	responseRepo := &memResponseRepo{}
	uc := NewUsecase(
		plan.Default(),
		fixedClassifier{},
		scorer,
		sessionRepo,
		responseRepo,
		&memKeywordRepo{},
		time.Minute,
		zap.NewNop(),
	)
	return uc, sessionRepo, responseRepo
}

func start(t *testing.T, uc *ScreeningUsecase) string {
	t.Helper()
	resp, err := uc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, plan.Default().Greeting(), resp.FirstPrompt)
	return resp.SessionID
}

func TestGreetingAdvancesWithoutScoring(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)

	res, err := uc.ProcessTurn(context.Background(), id, "안녕")
	require.NoError(t, err)

	assert.Equal(t, entity.IntentGreeting, res.Intent)
	assert.Equal(t, plan.Default().Question(1).Prompt, res.Response)
	assert.False(t, res.IsComplete)
	assert.Zero(t, scorer.calls)

	progress, err := uc.GetProgress(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, progress.AnsweredCount)
	for _, c := range entity.Categories {
		assert.Nil(t, progress.CategoryTotals[c])
	}
}

func TestAnswerScoresExactlyOnce(t *testing.T) {
	scorer := &fixedScorer{score: 2}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)

	res, err := uc.ProcessTurn(ctx, id, "잠을 잘 못 자")
	require.NoError(t, err)

	assert.Equal(t, entity.IntentAnswer, res.Intent)
	assert.Equal(t, 1, scorer.calls)

	progress, err := uc.GetProgress(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.AnsweredCount)
	require.NotNil(t, progress.CategoryTotals[entity.CategoryCDI])
	assert.Equal(t, 2, *progress.CategoryTotals[entity.CategoryCDI])
	assert.Nil(t, progress.CategoryTotals[entity.CategoryRCMAS])
	assert.Nil(t, progress.CategoryTotals[entity.CategoryBDI])
}

func TestFullBatteryCompletes(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)

	res, err := uc.ProcessTurn(ctx, id, "요즘 좀 우울해")
	require.NoError(t, err)
	assert.False(t, res.IsComplete, "one of three answered")

	res, err = uc.ProcessTurn(ctx, id, "긴장 많이 돼")
	require.NoError(t, err)
	assert.False(t, res.IsComplete, "two of three answered")

	res, err = uc.ProcessTurn(ctx, id, "잠을 잘 못 자")
	require.NoError(t, err)
	assert.True(t, res.IsComplete, "last tagged question answered")
	require.NotNil(t, res.Report)

	for _, r := range res.Report.Results {
		require.NotNil(t, r.Total, "category %s must be scored", r.Category)
		assert.NotEqual(t, entity.NotEvaluatedLabel, r.Label)
	}
	assert.Contains(t, res.Response, plan.Default().Closing())
}

func TestRefuseForcesCompletionWithPartialReport(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(ctx, id, "요즘 좀 우울해")
	require.NoError(t, err)

	res, err := uc.ProcessTurn(ctx, id, "싫어")
	require.NoError(t, err)

	assert.Equal(t, entity.IntentRefuse, res.Intent)
	assert.True(t, res.IsComplete)
	require.NotNil(t, res.Report)

	byCategory := map[entity.Category]entity.CategoryResult{}
	for _, r := range res.Report.Results {
		byCategory[r.Category] = r
	}
	require.NotNil(t, byCategory[entity.CategoryCDI].Total)
	assert.Nil(t, byCategory[entity.CategoryRCMAS].Total)
	assert.Equal(t, entity.NotEvaluatedLabel, byCategory[entity.CategoryRCMAS].Label)
	assert.Nil(t, byCategory[entity.CategoryBDI].Total)
	assert.Equal(t, entity.NotEvaluatedLabel, byCategory[entity.CategoryBDI].Label)
}

func TestDuplicateAnswerDoesNotDoubleCount(t *testing.T) {
	scorer := &fixedScorer{score: 2}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(ctx, id, "우울해")
	require.NoError(t, err)

	// Force the cursor back onto the already-answered question and
	// answer again: the total must not change.
	entry, ok := uc.sessions.get(id)
	require.True(t, ok)
	entry.mu.Lock()
	entry.session.CurrentQuestionIndex = 1
	entry.mu.Unlock()

	_, err = uc.ProcessTurn(ctx, id, "진짜 우울하다니까")
	require.NoError(t, err)

	assert.Equal(t, 1, scorer.calls)
	progress, err := uc.GetProgress(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, progress.CategoryTotals[entity.CategoryCDI])
	assert.Equal(t, 2, *progress.CategoryTotals[entity.CategoryCDI])
}

func TestCompletedSessionIsIdempotent(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	for _, u := range []string{"안녕", "우울해", "긴장돼", "잠 못 자"} {
		_, err := uc.ProcessTurn(ctx, id, u)
		require.NoError(t, err)
	}

	first, err := uc.ProcessTurn(ctx, id, "그래서?")
	require.NoError(t, err)
	require.True(t, first.IsComplete)

	second, err := uc.ProcessTurn(ctx, id, "뭐라도 해봐")
	require.NoError(t, err)

	assert.True(t, second.IsComplete)
	assert.Equal(t, first.Report.Results, second.Report.Results)
	assert.Equal(t, 3, scorer.calls, "no further scoring after completion")
}

func TestConfusedAdvancesWithoutScoring(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)

	res, err := uc.ProcessTurn(ctx, id, "모르겠어")
	require.NoError(t, err)

	assert.Equal(t, entity.IntentConfused, res.Intent)
	assert.Equal(t, plan.Default().Question(2).Prompt, res.Response)
	assert.Zero(t, scorer.calls)

	progress, err := uc.GetProgress(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, progress.AnsweredCount)
}

func TestEmptyUtteranceRejectedWithoutMutation(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "   ")
	assert.ErrorIs(t, err, entity.ErrEmptyUtterance)

	progress, err := uc.GetProgress(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, progress.AnsweredCount)
}

func TestUnknownSessionErrors(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)

	_, err := uc.ProcessTurn(context.Background(), "missing", "안녕")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	_, err = uc.GetProgress(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestExpiredSessionDistinguishedFromUnknown(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, sessionRepo, _ := newTestUsecase(t, scorer)
	id := start(t, uc)

	// Wait for the async create to land, then evict the live entry to
	// simulate TTL expiry.
	require.Eventually(t, func() bool {
		exists, err := sessionRepo.SessionExists(context.Background(), id)
		return err == nil && exists
	}, time.Second, 10*time.Millisecond)
	uc.sessions.delete(id)

	_, err := uc.ProcessTurn(context.Background(), id, "안녕")
	assert.ErrorIs(t, err, entity.ErrSessionExpired)
}

func TestResetReturnsSessionToStart(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	for _, u := range []string{"안녕", "우울해", "긴장돼", "잠 못 자"} {
		_, err := uc.ProcessTurn(ctx, id, u)
		require.NoError(t, err)
	}

	resp, err := uc.ResetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, plan.Default().Greeting(), resp.Message)

	progress, err := uc.GetProgress(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, progress.AnsweredCount)
	assert.False(t, progress.IsComplete)
	for _, c := range entity.Categories {
		assert.Nil(t, progress.CategoryTotals[c])
	}

	// The session runs again after the reset.
	res, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)
	assert.Equal(t, plan.Default().Question(1).Prompt, res.Response)
}

func TestAnsweredRecordsPersisted(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, responseRepo := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(ctx, id, "요즘 우울해")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		recs, err := responseRepo.ListResponses(ctx, id)
		return err == nil && len(recs) == 1
	}, time.Second, 10*time.Millisecond)

	recs, err := responseRepo.ListResponses(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryCDI, recs[0].Category)
	assert.Equal(t, "depression", recs[0].Subcategory)
	assert.Equal(t, 1, recs[0].Score)
	assert.Equal(t, 1, recs[0].QuestionIndex)
}

func TestHistoryRecordsEveryTurn(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	id := start(t, uc)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, id, "안녕")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(ctx, id, "우울해")
	require.NoError(t, err)

	history, err := uc.GetHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history.History, 2)
	assert.Equal(t, "안녕", history.History[0].User)
	assert.Equal(t, entity.IntentGreeting, history.History[0].Intent)
	assert.Equal(t, "우울해", history.History[1].User)
}

func TestSessionsAreIndependent(t *testing.T) {
	scorer := &fixedScorer{score: 1}
	uc, _, _ := newTestUsecase(t, scorer)
	ctx := context.Background()

	a := start(t, uc)
	b := start(t, uc)

	_, err := uc.ProcessTurn(ctx, a, "안녕")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(ctx, a, "우울해")
	require.NoError(t, err)

	progressB, err := uc.GetProgress(ctx, b)
	require.NoError(t, err)
	assert.Zero(t, progressB.AnsweredCount)
}
