package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promptplan/promptplan/internal/cli"
	"github.com/promptplan/promptplan/internal/export"
	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
	"github.com/promptplan/promptplan/internal/session"
	"github.com/promptplan/promptplan/internal/specdoc"
	"github.com/promptplan/promptplan/internal/store"
	"github.com/promptplan/promptplan/internal/template"
)

var (
	planTemplate  string
	planResume    bool
	planFromShare string
)

var planCmd = &cobra.Command{
	Use:   "plan [idea]",
	Short: "Run the interactive questionnaire for an app idea",
	Long: `Start a planning session for an app idea. The planner asks a fixed
sequence of questions (platform, audience, design, features, auth, stack,
data, scope) and builds up a spec as you answer.

During a question you can type:
  skip   let the AI decide this one
  undo   go back and redo the previous question
  done   finish early once the core questions are answered
  quit   save a draft and leave

Example:
  promptplan plan "A recipe app with AI wine pairings"
  promptplan plan --template habits
  promptplan plan --resume`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func setupPlanFlags() {
	planCmd.Flags().StringVarP(&planTemplate, "template", "t", "", "start from a named idea preset")
	planCmd.Flags().BoolVarP(&planResume, "resume", "r", false, "resume the autosaved draft")
	planCmd.Flags().StringVar(&planFromShare, "from-share", "", "restore a session from a share code")
}

func openStore() (*store.Store, error) {
	s, err := store.New(cfg.Storage.Dir, store.Options{
		MaxHistory:  cfg.Storage.MaxHistory,
		DraftMaxAge: cfg.Storage.DraftMaxAge,
	})
	if err != nil {
		return nil, ExitError{Code: ExitCodeStorageError, Err: err}
	}
	return s, nil
}

func machineOptions() session.Options {
	return session.Options{
		ShortIdeaWords: cfg.Planner.ShortIdeaWords,
		ShortIdeaChars: cfg.Planner.ShortIdeaChars,
		CoreQuestions:  cfg.Planner.CoreQuestions,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	planStore, err := openStore()
	if err != nil {
		return err
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	machine, err := startSession(prompter, planStore, args)
	if err != nil {
		return err
	}
	if machine == nil {
		return nil
	}

	if err := runQuestionLoop(prompter, planStore, machine); err != nil {
		return err
	}
	if !machine.Complete() {
		// User quit mid-session; the draft is already saved.
		prompter.Bot("Draft saved. Run `promptplan plan --resume` to pick it up again.")
		return nil
	}

	return finishSession(prompter, planStore, machine.State())
}

// startSession resolves the idea source (argument, preset, share code, draft,
// or interactive prompt) and builds the machine. Returns nil when there is
// nothing to do.
func startSession(prompter *cli.Prompter, planStore *store.Store, args []string) (*session.Machine, error) {
	if planFromShare != "" {
		payload, err := store.DecodeShare(planFromShare)
		if err != nil {
			return nil, ExitError{Code: ExitCodeInputError, Err: err}
		}
		state := payload.Session(question.Count())
		prompter.Bot(fmt.Sprintf("Loaded the shared plan for %q.", state.Idea))
		machine, err := session.Restore(state, machineOptions())
		if err != nil {
			return nil, ExitError{Code: ExitCodeInternalError, Err: err}
		}
		return machine, nil
	}

	if planResume {
		if draft := planStore.LoadDraft(); draft != nil {
			prompter.Bot(fmt.Sprintf("Resuming your draft for %q.", draft.Idea))
			machine, err := session.Restore(draft.Session(), machineOptions())
			if err != nil {
				return nil, ExitError{Code: ExitCodeInternalError, Err: err}
			}
			return machine, nil
		}
		prompter.Bot("No draft to resume (drafts expire after a day). Starting fresh.")
	}

	idea := ""
	if len(args) == 1 {
		idea = args[0]
	}

	if planTemplate != "" {
		presets, err := template.Load(cfg.Planner.TemplatesFile)
		if err != nil {
			return nil, ExitError{Code: ExitCodeInputError, Err: err}
		}
		preset, ok := template.Find(presets, planTemplate)
		if !ok {
			return nil, ExitError{Code: ExitCodeInputError,
				Err: fmt.Errorf("unknown template %q (run `promptplan templates` to list them)", planTemplate)}
		}
		idea = preset.Idea
	}

	if strings.TrimSpace(idea) == "" {
		line, err := prompter.ReadLine("What do you want to build? ")
		if err != nil {
			return nil, nil
		}
		idea = line
	}
	if strings.TrimSpace(idea) == "" {
		prompter.Bot("No idea given, nothing to plan.")
		return nil, nil
	}

	machine, err := session.New(idea, machineOptions())
	if err != nil {
		return nil, ExitError{Code: ExitCodeInputError, Err: err}
	}

	prompter.Bot(fmt.Sprintf("Great idea! Let me help you shape %q into a buildable spec. I'll ask a few quick questions.", machine.State().Idea))
	return machine, nil
}

// runQuestionLoop drives the machine until completion or quit. The draft is
// autosaved and the spec panel re-rendered after every transition.
func runQuestionLoop(prompter *cli.Prompter, planStore *store.Store, machine *session.Machine) error {
	if machine.Elaborating() {
		prompter.Bot("That's a short one. Tell me a bit more — what should it do, and for whom?")
		for machine.Elaborating() {
			line, err := prompter.ReadLine("> ")
			if err != nil {
				return nil
			}
			if err := machine.SubmitElaboration(line); err != nil {
				prompter.Hint("A sentence or two helps a lot here.")
			}
		}
		autosave(planStore, machine)
		renderPanel(prompter, machine)
	}

	contextText := machine.State().ContextText()

	for !machine.Complete() {
		q, ok := machine.Current()
		if !ok {
			return ExitError{Code: ExitCodeInternalError,
				Err: fmt.Errorf("no current question at cursor %d", machine.State().Cursor)}
		}

		recommended, _ := question.Recommend(q.ID, contextText)
		reply, err := prompter.AskQuestion(q, recommended, machine.CanFinishEarly())
		if err != nil {
			return nil
		}

		switch {
		case reply.Command == cli.CommandQuit:
			autosave(planStore, machine)
			return nil
		case reply.Command == cli.CommandUndo:
			if err := machine.Undo(); err != nil {
				return ExitError{Code: ExitCodeInternalError, Err: err}
			}
		case reply.Command == cli.CommandDone:
			if err := machine.EarlyFinish(); err != nil {
				prompter.Hint(err.Error())
				continue
			}
			prompter.Bot("Wrapping up early. The AI will decide anything we didn't cover.")
		case reply.Skipped:
			if err := machine.Skip(q.ID); err != nil {
				return ExitError{Code: ExitCodeInternalError, Err: err}
			}
			prompter.Hint("No problem, the AI will decide this.")
		case q.Modality == question.ModalityMulti:
			if err := machine.AnswerList(q.ID, reply.Values, ""); err != nil {
				return ExitError{Code: ExitCodeInternalError, Err: err}
			}
		default:
			if err := machine.Answer(q.ID, reply.Values[0]); err != nil {
				return ExitError{Code: ExitCodeInternalError, Err: err}
			}
		}

		autosave(planStore, machine)
		renderPanel(prompter, machine)
	}

	return nil
}

func finishSession(prompter *cli.Prompter, planStore *store.Store, state *models.SessionState) error {
	prompter.Bot("Your spec is ready!")
	renderPanelState(prompter, state)

	line, err := prompter.ReadLine("Save this plan? [Y/n] ")
	if err == nil && !strings.EqualFold(line, "n") && !strings.EqualFold(line, "no") {
		plan, err := planStore.SavePlan(state)
		if err != nil {
			return ExitError{Code: ExitCodeStorageError, Err: err}
		}
		planStore.ClearDraft()
		prompter.Bot(fmt.Sprintf("Plan saved (%s).", shortID(plan.ID)))
	}

	prompter.Bot("Export a prompt with one of:")
	for _, f := range export.Formats() {
		prompter.Hint(fmt.Sprintf("promptplan export %s", f))
	}
	return nil
}

func autosave(planStore *store.Store, machine *session.Machine) {
	if err := planStore.SaveDraft(machine.State()); err != nil {
		log.Warn().Err(err).Msg("Draft autosave failed")
	}
}

func renderPanel(prompter *cli.Prompter, machine *session.Machine) {
	state := machine.State()
	prompter.Print(cli.RenderPanel(specdoc.Render(state), machine.Progress()))
}

func renderPanelState(prompter *cli.Prompter, state *models.SessionState) {
	prompter.Print(cli.RenderPanel(specdoc.Render(state), 100))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
