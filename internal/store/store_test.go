package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptplan/promptplan/internal/models"
)

func testSession(idea string) *models.SessionState {
	return &models.SessionState{
		Idea: idea,
		Answers: models.AnswerSet{
			"platform": models.Scalar("Web App"),
			"auth":     models.Skipped(),
		},
		Cursor:   10,
		Complete: true,
	}
}

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	s, err := New(t.TempDir(), opts)
	require.NoError(t, err)
	return s
}

func TestSavePlan_AndHistory(t *testing.T) {
	s := newTestStore(t, Options{})

	plan, err := s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)

	plans := s.History()
	require.Len(t, plans, 1)
	assert.Equal(t, "A recipe app", plans[0].Idea)
	assert.Equal(t, models.Scalar("Web App"), plans[0].Answers.Get("platform"))
	assert.True(t, plans[0].Answers.Get("auth").IsSkipped())
}

func TestSavePlan_RejectsEmptyIdea(t *testing.T) {
	s := newTestStore(t, Options{})
	_, err := s.SavePlan(&models.SessionState{Idea: "  "})
	assert.Error(t, err)
}

func TestSavePlan_DeduplicatesByIdea(t *testing.T) {
	s := newTestStore(t, Options{})

	_, err := s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)
	_, err = s.SavePlan(testSession("A habit tracker"))
	require.NoError(t, err)

	// Re-saving the first idea replaces it and moves it to the front
	_, err = s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)

	plans := s.History()
	require.Len(t, plans, 2)
	assert.Equal(t, "A recipe app", plans[0].Idea)
	assert.Equal(t, "A habit tracker", plans[1].Idea)
}

func TestSavePlan_CapsHistory(t *testing.T) {
	s := newTestStore(t, Options{MaxHistory: 3})

	for i := 0; i < 5; i++ {
		_, err := s.SavePlan(testSession(fmt.Sprintf("Idea %d", i)))
		require.NoError(t, err)
	}

	plans := s.History()
	require.Len(t, plans, 3)
	assert.Equal(t, "Idea 4", plans[0].Idea)
	assert.Equal(t, "Idea 2", plans[2].Idea)
}

func TestGetPlan(t *testing.T) {
	s := newTestStore(t, Options{})
	saved, err := s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)

	byID, err := s.GetPlan(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byID.ID)

	byPrefix, err := s.GetPlan(saved.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byPrefix.ID)

	byIndex, err := s.GetPlan("1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byIndex.ID)

	_, err = s.GetPlan("nope")
	assert.Error(t, err)
}

func TestDeletePlan(t *testing.T) {
	s := newTestStore(t, Options{})
	saved, err := s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)

	require.NoError(t, s.DeletePlan(saved.ID))
	assert.Empty(t, s.History())
	assert.Nil(t, s.Latest())

	assert.Error(t, s.DeletePlan(saved.ID))
}

func TestHistory_CorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, historyFile), []byte("{not json"), 0o600))

	s, err := New(dir, Options{})
	require.NoError(t, err)
	assert.Empty(t, s.History())

	// And saving over it works
	_, err = s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)
	assert.Len(t, s.History(), 1)
}

func TestSavedPlan_SessionRoundTrip(t *testing.T) {
	s := newTestStore(t, Options{Now: func() time.Time { return time.Unix(1700000000, 0) }})
	saved, err := s.SavePlan(testSession("A recipe app"))
	require.NoError(t, err)

	got, err := s.GetPlan(saved.ID)
	require.NoError(t, err)

	session := got.Session(10)
	assert.True(t, session.Complete)
	assert.Equal(t, 10, session.Cursor)
	assert.Equal(t, testSession("A recipe app").Answers, session.Answers)
}
