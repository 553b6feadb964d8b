package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

func completedSession() *models.SessionState {
	return &models.SessionState{
		Idea:        "A recipe app",
		Elaboration: "Users upload recipes and get AI-suggested pairings",
		Answers: models.AnswerSet{
			question.IDPlatform:       models.Scalar(question.OptPlatformWeb),
			question.IDAudience:       models.Scalar("home cooks"),
			question.IDVibe:           models.Scalar("Minimal & Clean"),
			question.IDFeatures:       models.List([]string{"Search", question.OptFeatureAI}),
			question.IDFeaturesCustom: models.Scalar("wine pairing suggestions"),
			question.IDAuth:           models.Scalar(question.OptAuthMagicLink),
			question.IDStack:          models.Scalar("React + Node"),
			question.IDData:           models.Scalar("recipes, pairings, user profiles"),
			question.IDScope:          models.Scalar(question.OptScopeMVP),
			question.IDExtras:         models.Skipped(),
		},
		Cursor:   10,
		Complete: true,
	}
}

func TestGenerate_AllFormatsDeterministic(t *testing.T) {
	s := completedSession()
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			first, err := Generate(s, format)
			require.NoError(t, err)
			require.NotEmpty(t, first)

			second, err := Generate(s, format)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, err := Generate(completedSession(), Format("pdf"))
	assert.Error(t, err)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestGenerate_EmptySessionNeverLeaksPlaceholders(t *testing.T) {
	s := &models.SessionState{Idea: "A recipe app", Answers: models.AnswerSet{}}

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			doc, err := Generate(s, format)
			require.NoError(t, err)
			assert.NotEmpty(t, doc)
			assert.NotContains(t, doc, "undefined")
			assert.NotContains(t, doc, "<nil>")
		})
	}
}

func TestBuildSpecBody_AnsweredSections(t *testing.T) {
	body := buildSpecBody(completedSession())

	assert.Contains(t, body, "## App Idea\nA recipe app — Users upload recipes")
	assert.Contains(t, body, "## Platform\nWeb App\n")
	assert.Contains(t, body, "## Core Features\nSearch, AI Integration\n")

	// Skipped extras are flagged in open decisions, not given a section
	assert.NotContains(t, body, "## Additional Notes")
	assert.Contains(t, body, "Use your best judgment on: Additional Notes.")

	// Stack was chosen explicitly, so no suggestion block
	assert.NotContains(t, body, "## Suggested Tech Stack")
}

func TestBuildSpecBody_SkippedAndUnansweredAreEquivalent(t *testing.T) {
	skipped := completedSession()
	skipped.Answers[question.IDStack] = models.Skipped()

	unanswered := completedSession()
	delete(unanswered.Answers, question.IDStack)

	assert.Equal(t, buildSpecBody(skipped), buildSpecBody(unanswered))
	assert.Equal(t, InferStack(skipped), InferStack(unanswered))

	for _, format := range Formats() {
		a, err := Generate(skipped, format)
		require.NoError(t, err)
		b, err := Generate(unanswered, format)
		require.NoError(t, err)
		assert.Equal(t, a, b, "format %s", format)
	}
}

func TestBuildSpecBody_MobileStackSuggestion(t *testing.T) {
	s := completedSession()
	s.Answers[question.IDPlatform] = models.Scalar(question.OptPlatformMobile)
	delete(s.Answers, question.IDStack)

	body := buildSpecBody(s)
	assert.Contains(t, body, "## Suggested Tech Stack")
	assert.Contains(t, body, stackMobile)
}

func TestSummary_ClausesDropWithMissingAnswers(t *testing.T) {
	full := summary(completedSession())
	assert.Contains(t, full, "This is a Web App for home cooks.")
	assert.Contains(t, full, "Minimal & Clean")
	assert.Contains(t, full, "Sign-in: Magic Link.")

	bare := summary(&models.SessionState{Idea: "x", Answers: models.AnswerSet{}})
	assert.Equal(t, "This is an app.", bare)
}

func TestInstructions_VaryByScopeAndPlatform(t *testing.T) {
	prod := completedSession()
	prodLines := strings.Join(instructions(prod), "\n")
	assert.Contains(t, prodLines, "production-quality")
	assert.Contains(t, prodLines, "backend API")

	exploring := completedSession()
	exploring.Answers[question.IDScope] = models.Scalar(question.OptScopeJustExploring)
	exploring.Answers[question.IDPlatform] = models.Scalar(question.OptPlatformNoBuild)
	expLines := strings.Join(instructions(exploring), "\n")
	assert.Contains(t, expLines, "speed over polish")
	assert.Contains(t, expLines, "index.html")

	mobile := completedSession()
	mobile.Answers[question.IDPlatform] = models.Scalar(question.OptPlatformMobile)
	assert.Contains(t, strings.Join(instructions(mobile), "\n"), "mobile project")
}

func TestGenerateV0_UIFocused(t *testing.T) {
	doc, err := Generate(completedSession(), FormatV0)
	require.NoError(t, err)

	assert.Contains(t, doc, "Create a Minimal & Clean UI for: A recipe app")
	assert.Contains(t, doc, "- Search\n")
	assert.Contains(t, doc, "Additional features: wine pairing suggestions")
	assert.Contains(t, doc, "sign-in flow (Magic Link)")
	// Backend concerns stay out
	assert.NotContains(t, doc, "Data Model")
	assert.NotContains(t, doc, "Tech Stack")
}

func TestGenerateV0_Defaults(t *testing.T) {
	s := &models.SessionState{Idea: "A recipe app", Answers: models.AnswerSet{}}
	doc, err := Generate(s, FormatV0)
	require.NoError(t, err)

	assert.Contains(t, doc, "Create a clean and modern UI for: A recipe app")
	assert.Contains(t, doc, "standard features")
}

func TestGenerateJSON_Shape(t *testing.T) {
	s := completedSession()
	s.Answers[question.IDStack] = models.Scalar(question.OptStackLetAIDecide)

	doc, err := Generate(s, FormatJSON)
	require.NoError(t, err)

	var parsed struct {
		Idea        string         `json:"idea"`
		Elaboration string         `json:"elaboration"`
		Spec        map[string]any `json:"spec"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "A recipe app", parsed.Idea)
	assert.Equal(t, "Users upload recipes and get AI-suggested pairings", parsed.Elaboration)
	assert.Equal(t, "home cooks", parsed.Spec[question.IDAudience])
	assert.Equal(t, []any{"Search", "AI Integration"}, parsed.Spec[question.IDFeatures])
	assert.NotEmpty(t, parsed.Spec["suggestedStack"], "deferred stack gets a suggestion")
	assert.NotContains(t, parsed.Spec, question.IDExtras, "skipped answers are omitted")
}

func TestDiff(t *testing.T) {
	out := Diff("shared\nold line\n", "shared\nnew line\n")

	assert.Contains(t, out, "  shared")
	assert.Contains(t, out, "- old line")
	assert.Contains(t, out, "+ new line")
}
