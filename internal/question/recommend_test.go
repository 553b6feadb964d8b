package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		context    string
		want       string
		wantOK     bool
	}{
		{
			name:       "Platform from mobile keyword",
			questionID: IDPlatform,
			context:    "a workout tracker for android phones",
			want:       OptPlatformMobile,
			wantOK:     true,
		},
		{
			name:       "Specific substring wins over broad one",
			questionID: IDPlatform,
			context:    "a chrome extension for the web",
			want:       OptPlatformExtension,
			wantOK:     true,
		},
		{
			name:       "First match wins when keywords co-occur",
			questionID: IDVibe,
			context:    "a dark, minimal dashboard",
			want:       "Dark & Techy",
			wantOK:     true,
		},
		{
			name:       "Auth from magic link",
			questionID: IDAuth,
			context:    "sign in with a magic link",
			want:       OptAuthMagicLink,
			wantOK:     true,
		},
		{
			name:       "Stack from framework mention",
			questionID: IDStack,
			context:    "i already know django well",
			want:       "Python + Django",
			wantOK:     true,
		},
		{
			name:       "No match",
			questionID: IDPlatform,
			context:    "a tool for gardeners",
			wantOK:     false,
		},
		{
			name:       "No table for free-text question",
			questionID: IDAudience,
			context:    "a mobile app for android",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Recommend(tt.questionID, tt.context)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommend_TableOptionsExist(t *testing.T) {
	// Every recommended option must be a real option of its question
	for id, rules := range keywordTables {
		q, ok := ByID(id)
		assert.True(t, ok, "keyword table for unknown question %q", id)
		for _, r := range rules {
			assert.Contains(t, q.Options, r.option,
				"table for %q recommends unknown option %q", id, r.option)
		}
	}
}
