package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/promptplan/promptplan/internal/models"
)

// EncodeShare packs a session's idea, elaboration, and answers into a
// URL-safe share code.
func EncodeShare(session *models.SessionState) (string, error) {
	payload := models.SharePayload{
		Idea:        session.Idea,
		Elaboration: session.Elaboration,
		Answers:     session.Answers,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShare unpacks a share code. A malformed code is a recoverable user
// error, not a crash.
func DecodeShare(code string) (*models.SharePayload, error) {
	data, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("invalid share code: %w", err)
	}
	var payload models.SharePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid share code: %w", err)
	}
	if payload.Idea == "" {
		return nil, fmt.Errorf("invalid share code: missing idea")
	}
	if payload.Answers == nil {
		payload.Answers = models.AnswerSet{}
	}
	return &payload, nil
}
