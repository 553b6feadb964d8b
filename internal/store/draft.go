package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/promptplan/promptplan/internal/models"
)

// SaveDraft autosaves an in-progress session so the next run can resume it.
func (s *Store) SaveDraft(session *models.SessionState) error {
	draft := models.NewDraft(session, s.now())
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.fs.AtomicWrite(draftFile, string(data)); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

// LoadDraft returns the autosaved draft, or nil when there is none. A draft
// older than the staleness threshold is discarded, as is a corrupt one;
// neither is an error.
func (s *Store) LoadDraft() *models.Draft {
	content, err := s.fs.ReadFile(draftFile)
	if err != nil {
		return nil
	}

	var draft models.Draft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		log.Debug().Err(err).Msg("Draft file is corrupt, discarding")
		s.ClearDraft()
		return nil
	}

	if s.now().Sub(draft.SavedAt) > s.draftMaxAge {
		log.Debug().
			Time("saved_at", draft.SavedAt).
			Dur("max_age", s.draftMaxAge).
			Msg("Draft is stale, discarding")
		s.ClearDraft()
		return nil
	}

	return &draft
}

// ClearDraft removes the autosaved draft.
func (s *Store) ClearDraft() {
	if err := s.fs.DeleteFile(draftFile); err != nil {
		log.Debug().Err(err).Msg("Failed to clear draft")
	}
}
