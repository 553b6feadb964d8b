// Package session implements the questionnaire state machine: the ordered
// progression through the question list with skip, rewind, and early finish.
package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

// Thresholds for judging an idea too terse to plan from directly. An idea
// below either bound triggers the elaboration pre-step.
const (
	DefaultShortIdeaWords = 6
	DefaultShortIdeaChars = 30
)

// DefaultCoreQuestions is how many leading questions must be passed before an
// early finish is allowed. The default covers platform through auth.
const DefaultCoreQuestions = 6

// Options tunes the machine's heuristics. Zero values fall back to defaults.
type Options struct {
	ShortIdeaWords int
	ShortIdeaChars int
	CoreQuestions  int
}

func (o Options) withDefaults() Options {
	if o.ShortIdeaWords <= 0 {
		o.ShortIdeaWords = DefaultShortIdeaWords
	}
	if o.ShortIdeaChars <= 0 {
		o.ShortIdeaChars = DefaultShortIdeaChars
	}
	if o.CoreQuestions <= 0 {
		o.CoreQuestions = DefaultCoreQuestions
	}
	return o
}

// Machine is the sole writer of a SessionState. All transitions are
// synchronous; callers on the presentation side re-render the spec panel
// after each one.
type Machine struct {
	state *models.SessionState
	opts  Options
}

// New starts a session from an idea string. The idea is trimmed and must be
// non-empty. Short ideas start in the elaboration pre-step; otherwise the
// elaboration is set equal to the idea and question 0 is asked immediately.
func New(idea string, opts Options) (*Machine, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, fmt.Errorf("idea is empty")
	}
	opts = opts.withDefaults()

	state := &models.SessionState{
		Idea:    idea,
		Answers: models.AnswerSet{},
	}
	if ideaIsShort(idea, opts) {
		state.Cursor = models.CursorElaborating
	} else {
		state.Elaboration = idea
		state.Cursor = 0
	}

	log.Debug().
		Str("idea", idea).
		Bool("elaborating", state.Cursor == models.CursorElaborating).
		Msg("Session started")

	return &Machine{state: state, opts: opts}, nil
}

// Restore wraps an existing session state (from a draft, share code, or
// history entry) in a machine.
func Restore(state *models.SessionState, opts Options) (*Machine, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("cannot restore session: %w", err)
	}
	if state.Answers == nil {
		state.Answers = models.AnswerSet{}
	}
	return &Machine{state: state, opts: opts.withDefaults()}, nil
}

func ideaIsShort(idea string, opts Options) bool {
	words := len(strings.Fields(idea))
	return words < opts.ShortIdeaWords || utf8.RuneCountInString(idea) < opts.ShortIdeaChars
}

// State exposes the underlying session for rendering and persistence.
// Callers must treat it as read-only.
func (m *Machine) State() *models.SessionState {
	return m.state
}

// Elaborating reports whether the session is in the elaboration pre-step.
func (m *Machine) Elaborating() bool {
	return m.state.Cursor == models.CursorElaborating
}

// Complete reports whether the sequence has finished.
func (m *Machine) Complete() bool {
	return m.state.Complete
}

// Current returns the question at the cursor. ok is false during elaboration
// and after completion.
func (m *Machine) Current() (question.Spec, bool) {
	if m.Elaborating() || m.state.Complete || m.state.Cursor >= question.Count() {
		return question.Spec{}, false
	}
	return question.At(m.state.Cursor), true
}

// Progress returns the completion percentage shown next to the spec panel.
func (m *Machine) Progress() int {
	if m.Elaborating() {
		return 0
	}
	return int(float64(m.state.Cursor) / float64(question.Count()) * 100)
}

// SubmitElaboration records the elaboration text and moves to question 0.
func (m *Machine) SubmitElaboration(text string) error {
	if !m.Elaborating() {
		return fmt.Errorf("not in elaboration step (cursor %d)", m.state.Cursor)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("elaboration is empty")
	}
	m.state.Elaboration = text
	m.state.Cursor = 0
	return nil
}

// Answer records a scalar answer for the current question and advances.
func (m *Machine) Answer(id, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("answer for %q is empty", id)
	}
	return m.record(id, models.Scalar(value))
}

// AnswerList records a multi-select answer: the picked options plus any
// custom free-text entries, comma-split, trimmed, empties dropped.
func (m *Machine) AnswerList(id string, selected []string, custom string) error {
	combined := append([]string(nil), selected...)
	combined = append(combined, SplitCustom(custom)...)
	if len(combined) == 0 {
		return fmt.Errorf("answer for %q is empty", id)
	}
	return m.record(id, models.List(combined))
}

// Skip records an explicit "let the AI decide" for the current question and
// advances.
func (m *Machine) Skip(id string) error {
	return m.record(id, models.Skipped())
}

func (m *Machine) record(id string, value models.AnswerValue) error {
	if m.state.Complete {
		return fmt.Errorf("session is complete; only rewind is allowed")
	}
	if m.Elaborating() {
		return fmt.Errorf("elaboration step must be completed first")
	}
	current := question.At(m.state.Cursor)
	if current.ID != id {
		return fmt.Errorf("question %q is not current (expected %q)", id, current.ID)
	}

	m.state.Answers[id] = value
	m.state.Cursor++
	if m.state.Cursor == question.Count() {
		m.state.Complete = true
	}

	log.Debug().
		Str("question", id).
		Str("status", string(value.Status)).
		Int("cursor", m.state.Cursor).
		Msg("Answer recorded")

	return nil
}

// CanFinishEarly reports whether enough core questions have been passed for
// an early finish.
func (m *Machine) CanFinishEarly() bool {
	return !m.Elaborating() && !m.state.Complete && m.state.Cursor >= m.opts.CoreQuestions
}

// EarlyFinish ends the questionnaire before all questions are asked. The
// remaining questions stay Unanswered; document generation treats them like
// skips. Rejected before the core-question threshold.
func (m *Machine) EarlyFinish() error {
	if !m.CanFinishEarly() {
		return fmt.Errorf("early finish requires %d answered core questions, have %d",
			m.opts.CoreQuestions, m.state.Cursor)
	}
	m.state.Cursor = question.Count()
	m.state.Complete = true

	log.Debug().Msg("Session finished early")
	return nil
}

// Rewind moves the cursor back to the named question so it can be redone.
// Only that question's answer is cleared; later answers are left in place.
// Completion is cleared.
func (m *Machine) Rewind(id string) error {
	idx := question.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("unknown question: %q", id)
	}
	if m.Elaborating() {
		return fmt.Errorf("cannot rewind during elaboration")
	}
	if !m.state.Complete && idx > m.state.Cursor {
		return fmt.Errorf("cannot rewind forward to %q", id)
	}

	delete(m.state.Answers, id)
	m.state.Cursor = idx
	m.state.Complete = false

	log.Debug().Str("question", id).Msg("Rewound to question")
	return nil
}

// Undo rewinds to the previous question. No-op at question 0, during
// elaboration, or once complete.
func (m *Machine) Undo() error {
	if m.Elaborating() || m.state.Complete || m.state.Cursor == 0 {
		return nil
	}
	return m.Rewind(question.At(m.state.Cursor - 1).ID)
}

// SplitCustom splits free-text multi-select input on commas, trimming each
// segment and dropping empties.
func SplitCustom(custom string) []string {
	if strings.TrimSpace(custom) == "" {
		return nil
	}
	parts := strings.Split(custom, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
