package testutil

import (
	"io"
	"strings"
)

// FakeConsole scripts console input for tests and records everything
// printed. Verdict emphasis is passed through unchanged so assertions can
// match plain text.
type FakeConsole struct {
	Inputs []string
	Lines  []string
	next   int
}

// NewFakeConsole initializes a FakeConsole that will serve the given input
// lines in order.
func NewFakeConsole(inputs ...string) *FakeConsole {
	return &FakeConsole{Inputs: inputs}
}

// Print records one printed block.
func (c *FakeConsole) Print(text string) {
	c.Lines = append(c.Lines, text)
}

// ReadLine serves the next scripted input, or io.EOF when the script is
// exhausted.
func (c *FakeConsole) ReadLine() (string, error) {
	if c.next >= len(c.Inputs) {
		return "", io.EOF
	}
	line := c.Inputs[c.next]
	c.next++
	return line, nil
}

// Success returns text unchanged.
func (c *FakeConsole) Success(text string) string { return text }

// Failure returns text unchanged.
func (c *FakeConsole) Failure(text string) string { return text }

// Output joins everything printed into one block for assertions.
func (c *FakeConsole) Output() string {
	return strings.Join(c.Lines, "\n")
}

// FakeRand replays a fixed sequence of draws, wrapping values into range,
// so question order and option sampling are fully scripted.
type FakeRand struct {
	Values []int
	next   int
}

// NewFakeRand initializes a FakeRand serving the given values in order.
// An empty script always draws 0.
func NewFakeRand(values ...int) *FakeRand {
	return &FakeRand{Values: values}
}

// Intn returns the next scripted value reduced modulo n.
func (r *FakeRand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v % n
}
