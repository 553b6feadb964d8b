package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/promptplan/promptplan/internal/export"
	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

var (
	exportPlanRef string
	exportAll     bool
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export [format]",
	Short: "Generate a document from a saved plan",
	Long: `Generate an export document from the most recently saved plan (or a
specific one via --plan).

Formats:
  claude    conversational build prompt
  cursor    imperative build prompt with a requirements list
  v0        UI-focused generation prompt
  markdown  human-readable brief
  json      machine-readable spec object

A single format prints to stdout; --all writes every format into the output
directory.

Example:
  promptplan export claude
  promptplan export markdown --plan 2
  promptplan export --all --output ./prompts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func setupExportFlags() {
	exportCmd.Flags().StringVarP(&exportPlanRef, "plan", "p", "", "saved plan id, id prefix, or list index (default: latest)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "write every format to the output directory")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "output directory for --all")
}

func runExport(cmd *cobra.Command, args []string) error {
	if !exportAll && len(args) != 1 {
		return ExitError{Code: ExitCodeInputError, Err: fmt.Errorf("expected a format argument or --all")}
	}

	planStore, err := openStore()
	if err != nil {
		return err
	}

	session, idea, err := loadExportSession(planStore.GetPlan, planStore.Latest)
	if err != nil {
		return err
	}

	if exportAll {
		return exportAllFormats(session, idea)
	}

	format, err := export.ParseFormat(args[0])
	if err != nil {
		return ExitError{Code: ExitCodeInputError, Err: err}
	}
	doc, err := export.Generate(session, format)
	if err != nil {
		return ExitError{Code: ExitCodeInternalError, Err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}

func loadExportSession(
	get func(string) (*models.SavedPlan, error),
	latest func() *models.SavedPlan,
) (*models.SessionState, string, error) {
	var plan *models.SavedPlan
	if exportPlanRef != "" {
		p, err := get(exportPlanRef)
		if err != nil {
			return nil, "", ExitError{Code: ExitCodeInputError, Err: err}
		}
		plan = p
	} else {
		plan = latest()
		if plan == nil {
			return nil, "", ExitError{Code: ExitCodeInputError,
				Err: fmt.Errorf("no saved plans yet; run `promptplan plan` first")}
		}
	}
	return plan.Session(question.Count()), plan.Idea, nil
}

// exportAllFormats writes every document format to disk concurrently.
func exportAllFormats(session *models.SessionState, idea string) error {
	if err := os.MkdirAll(exportOutput, 0o750); err != nil {
		return ExitError{Code: ExitCodeStorageError, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	slug := slugify(idea)

	var g errgroup.Group
	for _, format := range export.Formats() {
		format := format
		g.Go(func() error {
			doc, err := export.Generate(session, format)
			if err != nil {
				return err
			}
			path := filepath.Join(exportOutput, fmt.Sprintf("%s-%s%s", slug, format, format.Extension()))
			if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Info().Str("path", path).Str("format", string(format)).Msg("Document written")
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ExitError{Code: ExitCodeStorageError, Err: err}
	}
	return nil
}

func slugify(s string) string {
	s = strings.ToLower(s)
	var sb strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteRune('-')
				lastDash = true
			}
		}
		if sb.Len() >= 40 {
			break
		}
	}
	return strings.Trim(sb.String(), "-")
}
