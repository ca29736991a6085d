package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"geoquiz/internal/cli"
)

// aDatasetWithRecords writes a dataset fixture from the docstring.
func (s *featureState) aDatasetWithRecords(doc *godog.DocString) error {
	path, err := s.writeFile("countries.json", doc.Content)
	if err != nil {
		return err
	}
	s.datasetPath = path
	return nil
}

// aPresetFileWith writes a preset fixture from the docstring.
func (s *featureState) aPresetFileWith(doc *godog.DocString) error {
	path, err := s.writeFile("preset.yml", doc.Content+"\n")
	if err != nil {
		return err
	}
	s.presetPath = path
	return nil
}

// iWillAnswer scripts the input lines fed to the command.
func (s *featureState) iWillAnswer(doc *godog.DocString) error {
	s.stdin = doc.Content + "\n"
	return nil
}

// iRunCommand executes a CLI command in process, substituting the
// <dataset> and <preset> fixture placeholders.
func (s *featureState) iRunCommand(command string) error {
	command = strings.ReplaceAll(command, "<dataset>", s.datasetPath)
	command = strings.ReplaceAll(command, "<preset>", s.presetPath)
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "geoquiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, strings.NewReader(s.stdin), &s.stdout, &s.stderr)
	return nil
}
