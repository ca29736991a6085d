package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"geoquiz/internal/config"
	"geoquiz/internal/country"
	"geoquiz/internal/quiz"
	"geoquiz/internal/ui"
	"geoquiz/internal/ui/live"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		datasetPath := fs.String("dataset", "", "Path to a countries JSON file (default: embedded dataset)")
		presetPath := fs.String("preset", "", "Path to a preset file; skips the interactive prompts")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		seed := fs.Int64("seed", 0, "Random seed; 0 seeds from the clock")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		dataset, err := loadDataset(*datasetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dataset: %v\n", err)
			return ExitError
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		console := ui.NewTerminal(stdin, stdout, *noColor)
		var plan sessionPlan
		if *presetPath != "" {
			preset, err := config.Load(*presetPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load preset: %v\n", err)
				return ExitError
			}
			plan = sessionPlan{
				derived: quiz.Derive(dataset, preset.QuizTopic(), preset.QuizDirection(),
					preset.NameVariant(), preset.Condition()),
				count: *preset.Options,
			}
			if *seed == 0 {
				*seed = preset.Seed
			}
		} else {
			plan, err = configure(console, dataset)
			if errors.Is(err, quiz.ErrEndOfSession) {
				return ExitOK
			}
			if err != nil {
				console.Print("Error: " + err.Error() + ".")
				return ExitError
			}
		}

		session, err := quiz.NewSession(plan.derived, plan.count, quiz.NewRand(*seed))
		if err != nil {
			console.Print("Error: " + err.Error() + ".")
			return ExitError
		}

		if decision.useLive {
			model := live.NewModel(session, live.Options{NoColor: *noColor})
			program := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout))
			if _, err := program.Run(); err != nil {
				fmt.Fprintf(stderr, "Live UI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := quiz.Play(session, console); err != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", err)
			return ExitError
		}
		console.Print("\nInfo: Session " + session.ID() + ".")
		return ExitOK
	}
}

// loadDataset reads a dataset file, or the embedded dataset when no path
// is given.
func loadDataset(path string) ([]country.Country, error) {
	if path == "" {
		return country.Default()
	}
	return country.Load(path)
}
