package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_States(t *testing.T) {
	tests := []struct {
		name       string
		value      AnswerValue
		isAnswered bool
		isExplicit bool
		display    string
		values     []string
	}{
		{
			name:       "Unanswered",
			value:      Unanswered(),
			isAnswered: false,
			isExplicit: false,
			display:    "",
			values:     nil,
		},
		{
			name:       "Skipped",
			value:      Skipped(),
			isAnswered: false,
			isExplicit: true,
			display:    "",
			values:     nil,
		},
		{
			name:       "Scalar",
			value:      Scalar("Web App"),
			isAnswered: true,
			isExplicit: true,
			display:    "Web App",
			values:     []string{"Web App"},
		},
		{
			name:       "List",
			value:      List([]string{"Search", "Chat / Messaging"}),
			isAnswered: true,
			isExplicit: true,
			display:    "Search, Chat / Messaging",
			values:     []string{"Search", "Chat / Messaging"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isAnswered, tt.value.IsAnswered())
			assert.Equal(t, tt.isExplicit, tt.value.IsExplicit())
			assert.Equal(t, tt.display, tt.value.Display())
			assert.Equal(t, tt.values, tt.value.Values())
		})
	}
}

func TestAnswerValue_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		value    AnswerValue
		wantJSON string
	}{
		{name: "Skipped encodes as null", value: Skipped(), wantJSON: `null`},
		{name: "Scalar encodes as string", value: Scalar("Mobile App"), wantJSON: `"Mobile App"`},
		{name: "List encodes as array", value: List([]string{"a", "b"}), wantJSON: `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))

			var back AnswerValue
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestAnswerValue_MarshalUnansweredFails(t *testing.T) {
	_, err := json.Marshal(Unanswered())
	assert.Error(t, err)
}

func TestAnswerSet_MarshalDropsUnanswered(t *testing.T) {
	set := AnswerSet{
		"platform": Scalar("Web App"),
		"auth":     Skipped(),
		"stack":    Unanswered(),
	}

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "platform")
	assert.Contains(t, raw, "auth")
	assert.NotContains(t, raw, "stack")
}

func TestAnswerSet_Get(t *testing.T) {
	set := AnswerSet{"platform": Scalar("Web App")}
	assert.Equal(t, Scalar("Web App"), set.Get("platform"))
	assert.Equal(t, Unanswered(), set.Get("missing"))
}

func TestAnswerSet_CloneIsDeep(t *testing.T) {
	set := AnswerSet{"features": List([]string{"Search"})}
	clone := set.Clone()

	clone["features"].List[0] = "mutated"
	assert.Equal(t, "Search", set["features"].List[0])
}
