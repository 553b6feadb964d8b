package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptplan/promptplan/internal/models"
)

func TestShare_RoundTrip(t *testing.T) {
	session := &models.SessionState{
		Idea:        "A recipe app",
		Elaboration: "Users upload recipes and get AI-suggested pairings",
		Answers: models.AnswerSet{
			"platform": models.Scalar("Web App"),
			"features": models.List([]string{"Search", "AI Integration"}),
			"auth":     models.Skipped(),
		},
		Cursor:   10,
		Complete: true,
	}

	code, err := EncodeShare(session)
	require.NoError(t, err)
	assert.NotContains(t, code, "=", "share codes must be URL-safe without padding")
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")

	payload, err := DecodeShare(code)
	require.NoError(t, err)
	assert.Equal(t, session.Idea, payload.Idea)
	assert.Equal(t, session.Elaboration, payload.Elaboration)
	assert.Equal(t, session.Answers, payload.Answers)
}

func TestDecodeShare_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "Garbage base64", code: "!!not-base64!!"},
		{name: "Valid base64, invalid JSON", code: "bm90LWpzb24"},
		{name: "Valid JSON, missing idea", code: "e30"},
		{name: "Empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeShare(tt.code)
			assert.Error(t, err)
		})
	}
}
