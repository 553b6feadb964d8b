package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptplan/promptplan/internal/cli"
	"github.com/promptplan/promptplan/internal/export"
	"github.com/promptplan/promptplan/internal/question"
	"github.com/promptplan/promptplan/internal/specdoc"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage saved plans",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <plan>",
	Short: "Show a saved plan's spec",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <plan>",
	Short: "Delete a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyDiffCmd = &cobra.Command{
	Use:   "diff <plan> <plan>",
	Short: "Diff the generated briefs of two saved plans",
	Args:  cobra.ExactArgs(2),
	RunE:  runHistoryDiff,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyDiffCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	plans := planStore.History()
	if len(plans) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved plans yet. Run `promptplan plan` to create one.")
		return nil
	}

	for i, p := range plans {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s  %s  (%s)\n",
			i+1, shortID(p.ID), p.Idea, p.SavedAt.Format("Jan 2 2006"))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	plan, err := planStore.GetPlan(args[0])
	if err != nil {
		return ExitError{Code: ExitCodeInputError, Err: err}
	}

	session := plan.Session(question.Count())
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderPanel(specdoc.Render(session), 100))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	if err := planStore.DeletePlan(args[0]); err != nil {
		return ExitError{Code: ExitCodeInputError, Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Plan deleted.")
	return nil
}

func runHistoryDiff(cmd *cobra.Command, args []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	var docs [2]string
	for i, ref := range args {
		plan, err := planStore.GetPlan(ref)
		if err != nil {
			return ExitError{Code: ExitCodeInputError, Err: err}
		}
		doc, err := export.Generate(plan.Session(question.Count()), export.FormatMarkdown)
		if err != nil {
			return ExitError{Code: ExitCodeInternalError, Err: err}
		}
		docs[i] = doc
	}

	fmt.Fprint(cmd.OutOrStdout(), export.Diff(docs[0], docs[1]))
	return nil
}
