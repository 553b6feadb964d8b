// Package store persists plans, drafts, and share codes. All recoverable
// failures (missing files, corrupt JSON) are absorbed here and surface as
// "no data", never as errors the presentation layer has to handle.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/pkg/fsops"
)

const (
	historyFile = "history.json"
	draftFile   = "draft.json"
)

// DefaultMaxHistory caps the saved-plan list, most recent first.
const DefaultMaxHistory = 20

// DefaultDraftMaxAge is how old an autosaved draft may be before it is
// discarded at load time.
const DefaultDraftMaxAge = 24 * time.Hour

// Options tunes the store. Zero values fall back to defaults.
type Options struct {
	MaxHistory  int
	DraftMaxAge time.Duration

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

// Store reads and writes the persisted record files under one directory.
type Store struct {
	fs          fsops.FileOps
	maxHistory  int
	draftMaxAge time.Duration
	now         func() time.Time
}

// New creates a store rooted at dir.
func New(dir string, opts Options) (*Store, error) {
	fs, err := fsops.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan store: %w", err)
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.DraftMaxAge <= 0 {
		opts.DraftMaxAge = DefaultDraftMaxAge
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		fs:          fs,
		maxHistory:  opts.MaxHistory,
		draftMaxAge: opts.DraftMaxAge,
		now:         opts.Now,
	}, nil
}

// History returns the saved plans, most recent first. A missing or corrupt
// history file reads as empty.
func (s *Store) History() []models.SavedPlan {
	content, err := s.fs.ReadFile(historyFile)
	if err != nil {
		return nil
	}

	var plans []models.SavedPlan
	if err := json.Unmarshal([]byte(content), &plans); err != nil {
		log.Debug().Err(err).Msg("History file is corrupt, treating as empty")
		return nil
	}
	return plans
}

// SavePlan records a completed session in history. Re-saving the same idea
// replaces the earlier entry instead of appending; the list is capped.
func (s *Store) SavePlan(session *models.SessionState) (*models.SavedPlan, error) {
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("cannot save plan: %w", err)
	}

	plan := models.SavedPlan{
		ID:          uuid.New().String(),
		Idea:        session.Idea,
		Elaboration: session.Elaboration,
		Answers:     session.Answers.Clone(),
		SavedAt:     s.now(),
	}

	existing := s.History()
	filtered := make([]models.SavedPlan, 0, len(existing)+1)
	filtered = append(filtered, plan)
	for _, p := range existing {
		if p.Idea != plan.Idea {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > s.maxHistory {
		filtered = filtered[:s.maxHistory]
	}

	if err := s.writeHistory(filtered); err != nil {
		return nil, err
	}

	log.Info().
		Str("plan_id", plan.ID).
		Str("idea", plan.Idea).
		Int("history_size", len(filtered)).
		Msg("Plan saved")

	return &plan, nil
}

// GetPlan finds a saved plan by id, by id prefix, or by 1-based list index.
func (s *Store) GetPlan(ref string) (*models.SavedPlan, error) {
	plans := s.History()
	for i := range plans {
		if plans[i].ID == ref {
			return &plans[i], nil
		}
	}
	if len(ref) >= 8 {
		for i := range plans {
			if len(plans[i].ID) >= len(ref) && plans[i].ID[:len(ref)] == ref {
				return &plans[i], nil
			}
		}
	}
	var idx int
	if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil && idx >= 1 && idx <= len(plans) {
		return &plans[idx-1], nil
	}
	return nil, fmt.Errorf("no saved plan matches %q", ref)
}

// Latest returns the most recently saved plan, or nil when history is empty.
func (s *Store) Latest() *models.SavedPlan {
	plans := s.History()
	if len(plans) == 0 {
		return nil
	}
	return &plans[0]
}

// DeletePlan removes a plan from history.
func (s *Store) DeletePlan(ref string) error {
	plan, err := s.GetPlan(ref)
	if err != nil {
		return err
	}

	plans := s.History()
	filtered := plans[:0]
	for _, p := range plans {
		if p.ID != plan.ID {
			filtered = append(filtered, p)
		}
	}
	if err := s.writeHistory(filtered); err != nil {
		return err
	}

	log.Info().Str("plan_id", plan.ID).Msg("Plan deleted")
	return nil
}

func (s *Store) writeHistory(plans []models.SavedPlan) error {
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.fs.AtomicWrite(historyFile, string(data)); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
