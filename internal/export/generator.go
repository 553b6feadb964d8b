package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

// Generate renders one document format from a session. Pure: no I/O, no
// mutation, identical input gives byte-identical output. Missing answers
// degrade to omissions or neutral text, never errors.
func Generate(s *models.SessionState, format Format) (string, error) {
	switch format {
	case FormatClaude:
		return generateClaude(s), nil
	case FormatCursor:
		return generateCursor(s), nil
	case FormatV0:
		return generateV0(s), nil
	case FormatMarkdown:
		return generateMarkdown(s), nil
	case FormatJSON:
		return generateJSON(s)
	default:
		return "", fmt.Errorf("unknown format: %q", format)
	}
}

// buildSpecBody produces the shared Markdown section list: the idea, one
// block per explicitly answered question in registry order, the open
// decisions left to the consumer, and the inferred stack when the user
// deferred that choice.
func buildSpecBody(s *models.SessionState) string {
	var sb strings.Builder

	sb.WriteString("## App Idea\n")
	sb.WriteString(s.Idea)
	if s.Elaboration != "" && s.Elaboration != s.Idea {
		sb.WriteString(" — ")
		sb.WriteString(s.Elaboration)
	}
	sb.WriteString("\n")

	var open []string
	for _, q := range question.All() {
		v := s.Answers.Get(q.ID)
		if !v.IsAnswered() {
			open = append(open, q.SectionName)
			continue
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n%s\n", q.SectionName, v.Display()))
	}

	if len(open) > 0 {
		sb.WriteString("\n## Open Decisions\n")
		sb.WriteString("Use your best judgment on: ")
		sb.WriteString(strings.Join(open, ", "))
		sb.WriteString(".\n")
	}

	if !StackIsExplicit(s) {
		sb.WriteString("\n## Suggested Tech Stack\n")
		sb.WriteString(InferStack(s))
		sb.WriteString("\n")
	}

	return sb.String()
}

// summary builds the one-paragraph natural-language overview. Each clause is
// dropped when its answer is absent or skipped.
func summary(s *models.SessionState) string {
	var sb strings.Builder

	if platform := s.Answers.Get(question.IDPlatform).Scalar; platform != "" {
		sb.WriteString(fmt.Sprintf("This is a %s", platform))
	} else {
		sb.WriteString("This is an app")
	}
	if audience := s.Answers.Get(question.IDAudience).Scalar; audience != "" {
		sb.WriteString(fmt.Sprintf(" for %s", audience))
	}
	sb.WriteString(".")

	if vibe := s.Answers.Get(question.IDVibe).Scalar; vibe != "" {
		sb.WriteString(fmt.Sprintf(" The design should feel %s.", vibe))
	}
	if features := s.Answers.Get(question.IDFeatures); features.IsAnswered() {
		sb.WriteString(fmt.Sprintf(" Core features: %s.", features.Display()))
	}
	if custom := s.Answers.Get(question.IDFeaturesCustom).Scalar; custom != "" {
		sb.WriteString(fmt.Sprintf(" On top of that: %s.", custom))
	}
	if auth := s.Answers.Get(question.IDAuth).Scalar; auth != "" {
		sb.WriteString(fmt.Sprintf(" Sign-in: %s.", auth))
	}

	return sb.String()
}

// scopeIsExploratory reports whether the declared scope calls for the
// skip-perfectionism framing instead of schema-first production quality.
func scopeIsExploratory(s *models.SessionState) bool {
	scope := s.Answers.Get(question.IDScope).Scalar
	return scope == question.OptScopeJustExploring || scope == question.OptScopePrototype
}

// instructions builds the bulleted build-steps block shared by the claude and
// cursor prompts. Content varies with declared scope and platform.
func instructions(s *models.SessionState) []string {
	var lines []string

	if scopeIsExploratory(s) {
		lines = append(lines,
			"Favor speed over polish: skip tests and edge cases, get something working fast.",
			"Hard-code sample data wherever it saves time.",
		)
	} else {
		lines = append(lines,
			"Start with the data schema and get it right before building on top of it.",
			"Write production-quality code with proper error handling throughout.",
		)
	}

	switch s.Answers.Get(question.IDPlatform).Scalar {
	case question.OptPlatformNoBuild:
		lines = append(lines,
			"Build it as a single index.html plus a stylesheet and a script file.",
			"No bundler and no framework — it must open directly in a browser.",
		)
	case question.OptPlatformMobile:
		lines = append(lines,
			"Scaffold the mobile project first, then build each screen, then wire up the backend.",
			"Check the layout on both small and large phone screens.",
		)
	default:
		lines = append(lines,
			"Set up the project structure, then the backend API, then the frontend UI.",
			"Make the UI responsive and accessible.",
		)
	}

	return lines
}

func bullets(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString("- ")
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return sb.String()
}

func generateClaude(s *models.SessionState) string {
	var sb strings.Builder
	sb.WriteString("I want you to build the following application. Here's my complete spec:\n\n")
	sb.WriteString(summary(s))
	sb.WriteString("\n\n")
	sb.WriteString(buildSpecBody(s))
	sb.WriteString("\nUse clean, modern patterns and build this step by step, starting with project setup.\n")
	sb.WriteString(bullets(instructions(s)))
	return sb.String()
}

func generateCursor(s *models.SessionState) string {
	var sb strings.Builder
	sb.WriteString("Build this application from scratch:\n\n")
	sb.WriteString(summary(s))
	sb.WriteString("\n\n")
	sb.WriteString(buildSpecBody(s))
	sb.WriteString("\nRequirements:\n")
	sb.WriteString(bullets(append([]string{
		"Set up the project with a proper folder structure.",
		"Implement every feature listed above.",
		"Use TypeScript where possible.",
		"Write clean, well-organized code.",
	}, instructions(s)...)))
	return sb.String()
}

func generateV0(s *models.SessionState) string {
	vibe := s.Answers.Get(question.IDVibe).Scalar
	if vibe == "" {
		vibe = "clean and modern"
	}
	featureStr := s.Answers.Get(question.IDFeatures).Display()
	if featureStr == "" {
		featureStr = "standard features"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a %s UI for: %s\n\n", vibe, s.Idea))
	sb.WriteString("Screens to include in the interface:\n")
	features := s.Answers.Get(question.IDFeatures).Values()
	if len(features) == 0 {
		sb.WriteString(bullets([]string{featureStr}))
	} else {
		sb.WriteString(bullets(features))
	}
	if custom := s.Answers.Get(question.IDFeaturesCustom).Scalar; custom != "" {
		sb.WriteString(fmt.Sprintf("\nAdditional features: %s\n", custom))
	}
	if audience := s.Answers.Get(question.IDAudience).Scalar; audience != "" {
		sb.WriteString(fmt.Sprintf("\nThe audience is %s.\n", audience))
	}
	if auth := s.Answers.Get(question.IDAuth).Scalar; auth != "" && auth != question.OptAuthNone {
		sb.WriteString(fmt.Sprintf("Include a sign-in flow (%s).\n", auth))
	}
	sb.WriteString("\nMake it responsive with a polished, production-ready feel. Use shadcn/ui components.\n")
	return sb.String()
}

func generateMarkdown(s *models.SessionState) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", s.Idea))
	sb.WriteString(summary(s))
	sb.WriteString("\n\n")
	sb.WriteString(buildSpecBody(s))
	return sb.String()
}

type jsonDocument struct {
	Idea        string         `json:"idea"`
	Elaboration string         `json:"elaboration,omitempty"`
	Spec        map[string]any `json:"spec"`
}

func generateJSON(s *models.SessionState) (string, error) {
	spec := make(map[string]any, question.Count()+1)
	for _, q := range question.All() {
		v := s.Answers.Get(q.ID)
		if !v.IsAnswered() {
			continue
		}
		if v.IsList() {
			spec[q.ID] = v.Values()
		} else {
			spec[q.ID] = v.Scalar
		}
	}
	if !StackIsExplicit(s) {
		spec["suggestedStack"] = InferStack(s)
	}

	doc := jsonDocument{Idea: s.Idea, Spec: spec}
	if s.Elaboration != s.Idea {
		doc.Elaboration = s.Elaboration
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON document: %w", err)
	}
	return string(data) + "\n", nil
}
