// Package ui implements the terminal console the quiz talks to.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is a line-oriented console over a reader and writer pair.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	noColor bool
}

// NewTerminal initializes a Terminal. noColor disables verdict styling.
func NewTerminal(in io.Reader, out io.Writer, noColor bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, noColor: noColor}
}

// Print writes a block of text followed by a newline.
func (t *Terminal) Print(text string) {
	fmt.Fprintln(t.out, text)
}

// ReadLine reads one input line without its line ending. A trailing
// unterminated line is still delivered before the read error.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Success renders text as a positive verdict.
func (t *Terminal) Success(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("42"))
}

// Failure renders text as a negative verdict.
func (t *Terminal) Failure(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("196"))
}

// stylize applies bold colored styling when enabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
