// Package models defines the core data structures used throughout promptplan.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerStatus distinguishes a question the user never reached from one they
// explicitly handed off to the AI. The two render identically in generated
// documents but are distinct states in the session.
type AnswerStatus string

const (
	// StatusUnanswered means the question has not been reached (or was rewound).
	StatusUnanswered AnswerStatus = "unanswered"
	// StatusSkipped means the user explicitly chose "let the AI decide".
	StatusSkipped AnswerStatus = "skipped"
	// StatusAnswered means the user provided a value.
	StatusAnswered AnswerStatus = "answered"
)

// AnswerValue is a tagged three-state answer: Unanswered, Skipped, or an
// answered scalar/list value. At most one of Scalar/List is populated, and
// only when Status is StatusAnswered.
type AnswerValue struct {
	Status AnswerStatus
	Scalar string
	List   []string
}

// Unanswered returns the zero answer state.
func Unanswered() AnswerValue {
	return AnswerValue{Status: StatusUnanswered}
}

// Skipped returns an explicit skip marker.
func Skipped() AnswerValue {
	return AnswerValue{Status: StatusSkipped}
}

// Scalar wraps a single-valued answer.
func Scalar(v string) AnswerValue {
	return AnswerValue{Status: StatusAnswered, Scalar: v}
}

// List wraps a multi-valued answer.
func List(vs []string) AnswerValue {
	return AnswerValue{Status: StatusAnswered, List: vs}
}

// IsAnswered reports whether the user provided an explicit value.
func (a AnswerValue) IsAnswered() bool {
	return a.Status == StatusAnswered
}

// IsSkipped reports whether the user explicitly skipped the question.
func (a AnswerValue) IsSkipped() bool {
	return a.Status == StatusSkipped
}

// IsExplicit reports whether the question was reached at all (answered or
// skipped, as opposed to never asked).
func (a AnswerValue) IsExplicit() bool {
	return a.Status != StatusUnanswered
}

// IsList reports whether the answer holds multiple values.
func (a AnswerValue) IsList() bool {
	return a.Status == StatusAnswered && a.List != nil
}

// Values returns the answer as a slice: nil when not answered, a single
// element for scalars, the full list otherwise.
func (a AnswerValue) Values() []string {
	switch {
	case a.Status != StatusAnswered:
		return nil
	case a.List != nil:
		return a.List
	default:
		return []string{a.Scalar}
	}
}

// Display renders the answer for inline text output. Lists join with ", ".
func (a AnswerValue) Display() string {
	if a.Status != StatusAnswered {
		return ""
	}
	if a.List != nil {
		return strings.Join(a.List, ", ")
	}
	return a.Scalar
}

// MarshalJSON encodes the answer in the persisted wire shape: skipped is an
// explicit null, scalars are strings, lists are arrays. Unanswered values
// must be omitted by the container (see AnswerSet.MarshalJSON).
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Status {
	case StatusSkipped:
		return []byte("null"), nil
	case StatusAnswered:
		if a.List != nil {
			return json.Marshal(a.List)
		}
		return json.Marshal(a.Scalar)
	default:
		return nil, fmt.Errorf("cannot marshal unanswered value")
	}
}

// UnmarshalJSON decodes the persisted wire shape back into the tagged enum.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Skipped()
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var vs []string
		if err := json.Unmarshal(data, &vs); err != nil {
			return fmt.Errorf("failed to unmarshal answer list: %w", err)
		}
		*a = List(vs)
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to unmarshal answer: %w", err)
	}
	*a = Scalar(v)
	return nil
}

// AnswerSet maps question id to its current answer. A later write fully
// replaces an earlier one; there is no merging.
type AnswerSet map[string]AnswerValue

// Get returns the answer for id, or Unanswered when the id is absent.
func (s AnswerSet) Get(id string) AnswerValue {
	if v, ok := s[id]; ok {
		return v
	}
	return Unanswered()
}

// Clone returns a deep copy of the answer set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for id, v := range s {
		if v.List != nil {
			v.List = append([]string(nil), v.List...)
		}
		out[id] = v
	}
	return out
}

// MarshalJSON encodes the set, dropping Unanswered entries so the wire shape
// matches the original "absent means never asked" convention.
func (s AnswerSet) MarshalJSON() ([]byte, error) {
	filtered := make(map[string]AnswerValue, len(s))
	for id, v := range s {
		if v.IsExplicit() {
			filtered[id] = v
		}
	}
	return json.Marshal(filtered)
}

// UnmarshalJSON decodes a persisted answer map.
func (s *AnswerSet) UnmarshalJSON(data []byte) error {
	raw := map[string]AnswerValue{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal answer set: %w", err)
	}
	*s = raw
	return nil
}
