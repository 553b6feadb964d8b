// Package export transforms a completed session into the exportable document
// formats: prompts tailored to AI coding tools, a Markdown brief, and a
// machine-readable JSON object. All generation is pure and synchronous.
package export

import "fmt"

// Format names an output document shape.
type Format string

const (
	// FormatClaude is a conversational build-from-scratch prompt.
	FormatClaude Format = "claude"
	// FormatCursor is an imperative build-from-scratch prompt with an
	// explicit requirements list.
	FormatCursor Format = "cursor"
	// FormatV0 is a UI-generation prompt; backend concerns are dropped.
	FormatV0 Format = "v0"
	// FormatMarkdown is a human-readable brief, not an instruction prompt.
	FormatMarkdown Format = "markdown"
	// FormatJSON preserves per-question machine-readable keys.
	FormatJSON Format = "json"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatClaude, FormatCursor, FormatV0, FormatMarkdown, FormatJSON}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %q (must be claude, cursor, v0, markdown, or json)", name)
}

// Extension returns the file extension used when writing the format to disk.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}
