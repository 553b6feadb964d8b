package models

import (
	"fmt"
	"strings"
	"time"
)

// CursorElaborating is the sentinel cursor position for the elaboration
// pre-step, before question 0 is asked.
const CursorElaborating = -1

// SessionState is the single live state of one questionnaire run. The answer
// state machine is its only writer; everything else reads it.
type SessionState struct {
	// Idea is the original one-line idea text. Required, non-empty.
	Idea string `json:"idea"`

	// Elaboration is the expanded description. Collected as a pre-step when
	// the idea is judged short, otherwise set equal to the idea.
	Elaboration string `json:"elaboration,omitempty"`

	// Answers holds the recorded answer per question id.
	Answers AnswerSet `json:"answers"`

	// Cursor is the index of the question currently being asked.
	// CursorElaborating means the elaboration pre-step; a value equal to the
	// question count means the session is complete.
	Cursor int `json:"cursor"`

	// Complete is true once the sequence has finished, naturally or by an
	// early finish.
	Complete bool `json:"complete"`
}

// ContextText returns the case-folded free text used for answer
// recommendations: the idea plus the elaboration when it adds anything.
func (s *SessionState) ContextText() string {
	text := s.Idea
	if s.Elaboration != "" && s.Elaboration != s.Idea {
		text += " " + s.Elaboration
	}
	return strings.ToLower(text)
}

// Validate checks the structural invariants of a session.
func (s *SessionState) Validate() error {
	if strings.TrimSpace(s.Idea) == "" {
		return fmt.Errorf("session idea is empty")
	}
	if s.Cursor < CursorElaborating {
		return fmt.Errorf("session cursor out of range: %d", s.Cursor)
	}
	return nil
}

// SavedPlan is one history entry: a completed (or abandoned-but-saved) plan
// keyed by its idea text for de-duplication.
type SavedPlan struct {
	ID          string    `json:"id"`
	Idea        string    `json:"idea"`
	Elaboration string    `json:"elaboration,omitempty"`
	Answers     AnswerSet `json:"answers"`
	SavedAt     time.Time `json:"saved_at"`
}

// Validate validates a saved plan record.
func (p *SavedPlan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("saved plan ID is empty")
	}
	if strings.TrimSpace(p.Idea) == "" {
		return fmt.Errorf("saved plan idea is empty")
	}
	return nil
}

// Session reconstructs a completed session from the plan.
func (p *SavedPlan) Session(questionCount int) *SessionState {
	return &SessionState{
		Idea:        p.Idea,
		Elaboration: p.Elaboration,
		Answers:     p.Answers.Clone(),
		Cursor:      questionCount,
		Complete:    true,
	}
}

// Draft is an autosaved in-progress session, restored on the next run unless
// it has gone stale.
type Draft struct {
	Idea        string    `json:"idea"`
	Elaboration string    `json:"elaboration,omitempty"`
	Answers     AnswerSet `json:"answers"`
	Cursor      int       `json:"cursor"`
	Complete    bool      `json:"complete"`
	SavedAt     time.Time `json:"saved_at"`
}

// Session reconstructs the session the draft captured.
func (d *Draft) Session() *SessionState {
	return &SessionState{
		Idea:        d.Idea,
		Elaboration: d.Elaboration,
		Answers:     d.Answers.Clone(),
		Cursor:      d.Cursor,
		Complete:    d.Complete,
	}
}

// NewDraft snapshots a live session for autosave.
func NewDraft(s *SessionState, now time.Time) *Draft {
	return &Draft{
		Idea:        s.Idea,
		Elaboration: s.Elaboration,
		Answers:     s.Answers.Clone(),
		Cursor:      s.Cursor,
		Complete:    s.Complete,
		SavedAt:     now,
	}
}

// SharePayload is the shape round-tripped through a share code: just the
// answers and idea text, no cursor or timestamps.
type SharePayload struct {
	Idea        string    `json:"idea"`
	Elaboration string    `json:"elaboration,omitempty"`
	Answers     AnswerSet `json:"answers"`
}

// Session rebuilds a completed session from the payload. A decoded plan is
// always treated as finished.
func (p *SharePayload) Session(questionCount int) *SessionState {
	return &SessionState{
		Idea:        p.Idea,
		Elaboration: p.Elaboration,
		Answers:     p.Answers.Clone(),
		Cursor:      questionCount,
		Complete:    true,
	}
}
