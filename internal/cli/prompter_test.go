package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptplan/promptplan/internal/question"
	"github.com/promptplan/promptplan/internal/specdoc"
)

func askWith(t *testing.T, id, input string, canFinish bool) (Reply, string) {
	t.Helper()
	q, ok := question.ByID(id)
	require.True(t, ok)

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)
	reply, err := p.AskQuestion(q, "", canFinish)
	require.NoError(t, err)
	return reply, out.String()
}

func TestAskQuestion_SingleSelectByNumber(t *testing.T) {
	reply, out := askWith(t, question.IDPlatform, "2\n", false)
	assert.Equal(t, []string{question.OptPlatformMobile}, reply.Values)
	assert.Contains(t, out, "What kind of app is this?")
	assert.Contains(t, out, "1. Web App")
}

func TestAskQuestion_SingleSelectRejectsThenAccepts(t *testing.T) {
	reply, out := askWith(t, question.IDPlatform, "99\n1\n", false)
	assert.Equal(t, []string{question.OptPlatformWeb}, reply.Values)
	assert.Contains(t, out, "Pick a number")
}

func TestAskQuestion_SingleSelectByLabel(t *testing.T) {
	reply, _ := askWith(t, question.IDAuth, "magic link\n", false)
	assert.Equal(t, []string{question.OptAuthMagicLink}, reply.Values)
}

func TestAskQuestion_TextAnswer(t *testing.T) {
	reply, _ := askWith(t, question.IDAudience, "busy parents\n", false)
	assert.Equal(t, []string{"busy parents"}, reply.Values)
}

func TestAskQuestion_SkipVariants(t *testing.T) {
	for _, input := range []string{"skip\n", "\n"} {
		reply, _ := askWith(t, question.IDAudience, input, false)
		assert.True(t, reply.Skipped, "input %q", input)
	}
}

func TestAskQuestion_MultiSelectWithCustom(t *testing.T) {
	reply, _ := askWith(t, question.IDFeatures, "1, 5, offline sync\n", false)
	assert.Equal(t, []string{"User Accounts", "Search", "offline sync"}, reply.Values)
}

func TestAskQuestion_MultiSelectOutOfRangeRetries(t *testing.T) {
	reply, out := askWith(t, question.IDFeatures, "99\n2\n", false)
	assert.Equal(t, []string{"Dashboard"}, reply.Values)
	assert.Contains(t, out, "out of range")
}

func TestAskQuestion_MetaCommands(t *testing.T) {
	reply, _ := askWith(t, question.IDVibe, "undo\n", false)
	assert.Equal(t, CommandUndo, reply.Command)

	reply, _ = askWith(t, question.IDVibe, "quit\n", false)
	assert.Equal(t, CommandQuit, reply.Command)

	// "done" only counts once an early finish is allowed
	reply, _ = askWith(t, question.IDData, "done\n", true)
	assert.Equal(t, CommandDone, reply.Command)

	reply, _ = askWith(t, question.IDData, "done\n", false)
	assert.Empty(t, reply.Command)
	assert.Equal(t, []string{"done"}, reply.Values)
}

func TestAskQuestion_RecommendationHighlight(t *testing.T) {
	q, _ := question.ByID(question.IDPlatform)
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n"), &out)
	_, err := p.AskQuestion(q, question.OptPlatformMobile, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(suggested)")
}

func TestRenderPanel(t *testing.T) {
	sections := []specdoc.Section{
		{Title: specdoc.IdeaSectionTitle, Body: "A recipe app"},
		{Title: "Platform", Body: "Web App"},
		{Title: "Authentication", Body: specdoc.SkipPlaceholder},
	}

	out := RenderPanel(sections, 30)
	assert.Contains(t, out, "30%")
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "Web App")
	assert.Contains(t, out, specdoc.SkipPlaceholder)
}
