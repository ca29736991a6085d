package cucumber

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"
)

// featureState holds per-scenario fixtures and the last command result.
type featureState struct {
	workDir     string
	datasetPath string
	presetPath  string
	stdin       string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a dataset with these records:$`, state.aDatasetWithRecords)
	ctx.Step(`^a preset file with:$`, state.aPresetFileWith)
	ctx.Step(`^I will answer:$`, state.iWillAnswer)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
}

// reset clears buffers and creates a fresh scratch directory.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.stdin = ""
	s.datasetPath = ""
	s.presetPath = ""
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "geoquiz-cucumber-")
	if err != nil {
		return err
	}
	s.workDir = dir
	return nil
}

// cleanup removes the scratch directory.
func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// writeFile writes a fixture into the scratch directory.
func (s *featureState) writeFile(name, content string) (string, error) {
	path := filepath.Join(s.workDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
