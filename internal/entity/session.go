package entity

import "time"

// SessionStatus is the persisted lifecycle state of a screening session.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "IN_PROGRESS" // Battery running, waiting for user turns
	SessionStatusCompleted  SessionStatus = "COMPLETED"   // Every category-tagged question answered
	SessionStatusRefused    SessionStatus = "REFUSED"     // User refused, session force-closed early
	SessionStatusReset      SessionStatus = "RESET"       // Session reinitialized on user request
)

// SessionMode is the live dialogue state of a session. Complete is
// terminal: further turns replay the closing report until a reset.
type SessionMode string

const (
	ModeAwaitingInput SessionMode = "AWAITING_INPUT"
	ModeComplete      SessionMode = "COMPLETE"
)

// EvaluationRecord captures one scored answer. Records are append-only
// and never mutated after creation.
type EvaluationRecord struct {
	Category       Category `json:"category"`
	Subcategory    string   `json:"subcategory"`
	RawResponse    string   `json:"response"`
	Score          int      `json:"score"`
	QuestionIndex  int      `json:"question_index"`
	SequenceNumber int      `json:"sequence_number"`
}

// HistoryEntry is one user/system exchange kept for the session
// history endpoint.
type HistoryEntry struct {
	User      string    `json:"user"`
	System    string    `json:"system"`
	Intent    Intent    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// ScreeningSession holds the mutable per-conversation state driven by
// the dialogue state machine. A nil category total means "never
// answered"; zero means "answered and scored zero" — the distinction
// drives completion detection.
type ScreeningSession struct {
	ID                   string
	UserID               string
	PlanName             string
	CurrentQuestionIndex int
	Answered             map[int]bool
	Totals               map[Category]*int
	History              []EvaluationRecord
	Conversation         []HistoryEntry
	LastPrompt           string
	Mode                 SessionMode
	Refused              bool
	StartedAt            time.Time
	CompletedAt          *time.Time
}

// NewScreeningSession returns a session at its creation-time state:
// position zero, nothing answered, all totals nil.
func NewScreeningSession(id, userID, planName string) *ScreeningSession {
	return &ScreeningSession{
		ID:        id,
		UserID:    userID,
		PlanName:  planName,
		Answered:  make(map[int]bool),
		Totals:    make(map[Category]*int),
		Mode:      ModeAwaitingInput,
		StartedAt: time.Now().UTC(),
	}
}

// AddScore folds a score into the category total, initializing the
// total to zero on first touch, and appends the evaluation record.
func (s *ScreeningSession) AddScore(rec EvaluationRecord) {
	total := s.Totals[rec.Category]
	if total == nil {
		total = new(int)
		s.Totals[rec.Category] = total
	}
	*total += rec.Score
	s.History = append(s.History, rec)
	s.Answered[rec.QuestionIndex] = true
}

// Total returns the accumulated score for a category, or nil if no
// question of that category has been answered.
func (s *ScreeningSession) Total(c Category) *int {
	return s.Totals[c]
}

// AnsweredCount returns how many questions have been answered so far.
func (s *ScreeningSession) AnsweredCount() int {
	return len(s.Answered)
}

// Status derives the persisted status from the live state.
func (s *ScreeningSession) Status() SessionStatus {
	switch {
	case s.Mode != ModeComplete:
		return SessionStatusInProgress
	case s.Refused:
		return SessionStatusRefused
	default:
		return SessionStatusCompleted
	}
}

// TotalScore sums every non-nil category total.
func (s *ScreeningSession) TotalScore() int {
	sum := 0
	for _, t := range s.Totals {
		if t != nil {
			sum += *t
		}
	}
	return sum
}

// Snapshot returns a deep copy safe to read outside the session lock.
func (s *ScreeningSession) Snapshot() *ScreeningSession {
	cp := *s
	cp.Answered = make(map[int]bool, len(s.Answered))
	for k, v := range s.Answered {
		cp.Answered[k] = v
	}
	cp.Totals = make(map[Category]*int, len(s.Totals))
	for k, v := range s.Totals {
		if v != nil {
			n := *v
			cp.Totals[k] = &n
		}
	}
	cp.History = append([]EvaluationRecord(nil), s.History...)
	cp.Conversation = append([]HistoryEntry(nil), s.Conversation...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}

// Reset returns all fields to their creation-time values, keeping the
// session identity.
func (s *ScreeningSession) Reset() {
	s.CurrentQuestionIndex = 0
	s.Answered = make(map[int]bool)
	s.Totals = make(map[Category]*int)
	s.History = nil
	s.Conversation = nil
	s.LastPrompt = ""
	s.Mode = ModeAwaitingInput
	s.Refused = false
	s.StartedAt = time.Now().UTC()
	s.CompletedAt = nil
}
