package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"geoquiz/internal/config"
)

// runValidate builds the handler for the validate command. With no flags
// the embedded dataset is checked, which doubles as a build self-test.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		datasetPath := fs.String("dataset", "", "Path to a countries JSON file (default: embedded dataset)")
		presetPath := fs.String("preset", "", "Path to a preset file")
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

		if _, err := loadDataset(*datasetPath); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Dataset OK")

		if *presetPath != "" {
			if _, err := config.Load(*presetPath); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Preset OK")
		}
		return ExitOK
	}
}
