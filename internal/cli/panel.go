// Package cli provides command-line interface utilities for promptplan:
// the styled spec panel and the interactive questionnaire prompter.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/promptplan/promptplan/internal/specdoc"
)

var (
	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)

	panelHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("63"))

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	sectionBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	placeholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("214"))
)

// RenderPanel renders the live spec panel: every derived section plus the
// completion percentage.
func RenderPanel(sections []specdoc.Section, progress int) string {
	var sb strings.Builder
	sb.WriteString(panelHeaderStyle.Render(fmt.Sprintf("Your Spec — %d%%", progress)))
	sb.WriteString("\n")

	for _, s := range sections {
		sb.WriteString("\n")
		sb.WriteString(sectionTitleStyle.Render(s.Title))
		sb.WriteString("\n")
		if s.Body == specdoc.SkipPlaceholder {
			sb.WriteString(placeholderStyle.Render(s.Body))
		} else {
			sb.WriteString(sectionBodyStyle.Render(s.Body))
		}
		sb.WriteString("\n")
	}

	return panelBorderStyle.Render(sb.String())
}
