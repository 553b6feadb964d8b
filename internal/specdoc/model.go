// Package specdoc builds the live spec panel: the ordered section list
// derived from a session's answers. Rendering is pure and idempotent so the
// panel can be rebuilt wholesale on resume.
package specdoc

import (
	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

// SkipPlaceholder is what a skipped question's section shows instead of a
// value.
const SkipPlaceholder = "AI will decide"

// IdeaSectionTitle labels the always-first section.
const IdeaSectionTitle = "Idea"

// Section is one titled block of the derived spec.
type Section struct {
	Title string
	Body  string
}

// Render derives the ordered section list from a session. The idea section
// comes first; question sections follow in registry order, one per question
// that has been answered or explicitly skipped. Section order never depends
// on the order answers were recorded.
func Render(s *models.SessionState) []Section {
	sections := []Section{ideaSection(s)}

	for _, q := range question.All() {
		v := s.Answers.Get(q.ID)
		if !v.IsExplicit() {
			continue
		}
		body := SkipPlaceholder
		if v.IsAnswered() {
			body = q.RenderValue(v)
		}
		sections = append(sections, Section{Title: q.SectionName, Body: body})
	}

	return sections
}

func ideaSection(s *models.SessionState) Section {
	body := s.Idea
	if s.Elaboration != "" && s.Elaboration != s.Idea {
		body += "\n" + s.Elaboration
	}
	return Section{Title: IdeaSectionTitle, Body: body}
}
