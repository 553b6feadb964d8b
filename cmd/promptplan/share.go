package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptplan/promptplan/internal/cli"
	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
	"github.com/promptplan/promptplan/internal/specdoc"
	"github.com/promptplan/promptplan/internal/store"
)

var shareSave bool

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share plans as URL-safe codes",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode [plan]",
	Short: "Print a share code for a saved plan (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShareEncode,
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Show the plan inside a share code",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func setupShareFlags() {
	shareDecodeCmd.Flags().BoolVar(&shareSave, "save", false, "also save the decoded plan to history")
	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
}

func runShareEncode(cmd *cobra.Command, args []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	var plan *models.SavedPlan
	if len(args) == 1 {
		plan, err = planStore.GetPlan(args[0])
		if err != nil {
			return ExitError{Code: ExitCodeInputError, Err: err}
		}
	} else {
		plan = planStore.Latest()
		if plan == nil {
			return ExitError{Code: ExitCodeInputError,
				Err: fmt.Errorf("no saved plans yet; run `promptplan plan` first")}
		}
	}

	code, err := store.EncodeShare(plan.Session(question.Count()))
	if err != nil {
		return ExitError{Code: ExitCodeInternalError, Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	payload, err := store.DecodeShare(args[0])
	if err != nil {
		return ExitError{Code: ExitCodeInputError, Err: err}
	}

	session := payload.Session(question.Count())
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderPanel(specdoc.Render(session), 100))

	if shareSave {
		planStore, err := openStore()
		if err != nil {
			return err
		}
		plan, err := planStore.SavePlan(session)
		if err != nil {
			return ExitError{Code: ExitCodeStorageError, Err: err}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan saved (%s).\n", shortID(plan.ID))
	}
	return nil
}
