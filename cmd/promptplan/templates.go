package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptplan/promptplan/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the idea presets usable with plan --template",
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	presets, err := template.Load(cfg.Planner.TemplatesFile)
	if err != nil {
		return ExitError{Code: ExitCodeInputError, Err: err}
	}

	for _, p := range presets {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", p.Name, p.Idea)
	}
	return nil
}
