package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/promptplan/promptplan/internal/question"
)

// Reply is what the prompter read for one question: either a value, an
// explicit skip, or a meta command (undo, done, quit).
type Reply struct {
	Values  []string
	Skipped bool
	Command string
}

// Meta commands accepted anywhere an answer is expected.
const (
	CommandUndo = "undo"
	CommandDone = "done"
	CommandQuit = "quit"
)

// Prompter reads questionnaire answers from a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	bot       *color.Color
	hint      *color.Color
	highlight *color.Color
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		bot:       color.New(color.FgCyan, color.Bold),
		hint:      color.New(color.FgHiBlack),
		highlight: color.New(color.FgGreen, color.Bold),
	}
}

// Bot prints a planner message.
func (p *Prompter) Bot(msg string) {
	p.bot.Fprint(p.out, "planner> ")
	fmt.Fprintln(p.out, msg)
}

// Hint prints dimmed helper text.
func (p *Prompter) Hint(msg string) {
	p.hint.Fprintln(p.out, "  "+msg)
}

// Print writes plain output (e.g. the spec panel).
func (p *Prompter) Print(s string) {
	fmt.Fprintln(p.out, s)
}

// ReadLine reads one trimmed line of input.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskQuestion presents one question and reads a reply. recommended, when
// non-empty, is the advisory keyword-match highlight; it is never
// auto-selected. canFinish enables the "done" command.
func (p *Prompter) AskQuestion(q question.Spec, recommended string, canFinish bool) (Reply, error) {
	p.Bot(q.Prompt)
	if q.Suggestion != "" {
		p.Hint(q.Suggestion)
	}

	switch q.Modality {
	case question.ModalityText:
		return p.askText(q, canFinish)
	case question.ModalitySingle:
		return p.askSingle(q, recommended, canFinish)
	case question.ModalityMulti:
		return p.askMulti(q, canFinish)
	default:
		return Reply{}, fmt.Errorf("unknown question modality: %q", q.Modality)
	}
}

func (p *Prompter) printOptions(q question.Spec, recommended string) {
	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		if opt == recommended {
			p.highlight.Fprintln(p.out, line+"  (suggested)")
		} else {
			fmt.Fprintln(p.out, line)
		}
	}
}

func (p *Prompter) commandHint(canFinish bool) {
	hint := `"skip" to let the AI decide, "undo" to redo the previous question`
	if canFinish {
		hint += `, "done" to finish early`
	}
	p.Hint(hint)
}

func (p *Prompter) askText(q question.Spec, canFinish bool) (Reply, error) {
	if q.Placeholder != "" {
		p.Hint(q.Placeholder)
	}
	p.commandHint(canFinish)

	line, err := p.ReadLine("> ")
	if err != nil {
		return Reply{}, err
	}
	if reply, ok := metaReply(line, canFinish); ok {
		return reply, nil
	}
	if line == "" {
		return Reply{Skipped: true}, nil
	}
	return Reply{Values: []string{line}}, nil
}

func (p *Prompter) askSingle(q question.Spec, recommended string, canFinish bool) (Reply, error) {
	p.printOptions(q, recommended)
	p.commandHint(canFinish)

	for {
		line, err := p.ReadLine("> ")
		if err != nil {
			return Reply{}, err
		}
		if reply, ok := metaReply(line, canFinish); ok {
			return reply, nil
		}
		if line == "" {
			return Reply{Skipped: true}, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
			return Reply{Values: []string{q.Options[n-1]}}, nil
		}
		// Accept a typed option label as-is for questions with a custom escape hatch
		for _, opt := range q.Options {
			if strings.EqualFold(opt, line) {
				return Reply{Values: []string{opt}}, nil
			}
		}
		p.Hint(fmt.Sprintf("Pick a number between 1 and %d.", len(q.Options)))
	}
}

func (p *Prompter) askMulti(q question.Spec, canFinish bool) (Reply, error) {
	p.printOptions(q, "")
	p.Hint(`Pick numbers separated by commas, e.g. "1, 4, 7".`)
	if q.AllowsCustom {
		p.Hint("Add your own entries after the numbers, separated by commas.")
	}
	p.commandHint(canFinish)

	for {
		line, err := p.ReadLine("> ")
		if err != nil {
			return Reply{}, err
		}
		if reply, ok := metaReply(line, canFinish); ok {
			return reply, nil
		}
		if line == "" {
			return Reply{Skipped: true}, nil
		}

		var picked, custom []string
		valid := true
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if n, err := strconv.Atoi(part); err == nil {
				if n < 1 || n > len(q.Options) {
					p.Hint(fmt.Sprintf("%d is out of range (1-%d).", n, len(q.Options)))
					valid = false
					break
				}
				picked = append(picked, q.Options[n-1])
			} else if q.AllowsCustom {
				custom = append(custom, part)
			} else {
				p.Hint("This question only accepts the numbered options.")
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		if len(picked)+len(custom) == 0 {
			return Reply{Skipped: true}, nil
		}
		return Reply{Values: append(picked, custom...)}, nil
	}
}

func metaReply(line string, canFinish bool) (Reply, bool) {
	switch strings.ToLower(line) {
	case "skip":
		return Reply{Skipped: true}, true
	case CommandUndo:
		return Reply{Command: CommandUndo}, true
	case CommandQuit, "exit":
		return Reply{Command: CommandQuit}, true
	case CommandDone:
		if canFinish {
			return Reply{Command: CommandDone}, true
		}
	}
	return Reply{}, false
}
