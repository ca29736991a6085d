package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"geoquiz/internal/country"
	"geoquiz/internal/quiz"
)

// runTopics builds the handler for the topics command: a per-topic count
// of questions and distinct answers, so a dataset's coverage can be seen
// without starting a session.
func runTopics(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		datasetPath := fs.String("dataset", "", "Path to a countries JSON file (default: embedded dataset)")
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

		fmt.Fprintf(stdout, "%-18s %9s  %s\n", "TOPIC", "QUESTIONS", "ANSWERS")
		for _, topic := range quiz.Topics {
			derived := quiz.Derive(dataset, topic, quiz.TopicFromCountry, country.NameCommon, nil)
			fmt.Fprintf(stdout, "%-18s %9d  %d\n",
				topic, len(derived.Pairs), len(derived.UniqueAnswers()))
		}
		return ExitOK
	}
}
