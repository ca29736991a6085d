package cucumber

import (
	"fmt"
	"strings"
)

// theExitCodeIs asserts the exit code of the last command.
func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("exit code %d, expected %d\nstdout:\n%s\nstderr:\n%s",
			s.exitCode, expected, s.stdout.String(), s.stderr.String())
	}
	return nil
}

// theOutputContains asserts on the captured stdout.
func (s *featureState) theOutputContains(fragment string) error {
	if !strings.Contains(s.stdout.String(), fragment) {
		return fmt.Errorf("stdout does not contain %q:\n%s", fragment, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts on the captured stderr.
func (s *featureState) theErrorOutputContains(fragment string) error {
	if !strings.Contains(s.stderr.String(), fragment) {
		return fmt.Errorf("stderr does not contain %q:\n%s", fragment, s.stderr.String())
	}
	return nil
}
