package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"geoquiz/internal/answer"
)

// Console is the I/O boundary the quiz talks to. Implementations decide
// how text is shown and how verdicts are emphasized.
type Console interface {
	// Print writes a block of text followed by a newline.
	Print(text string)
	// ReadLine blocks for one line of input without its line ending.
	ReadLine() (string, error)
	// Success returns text emphasized as a positive verdict.
	Success(text string) string
	// Failure returns text emphasized as a negative verdict.
	Failure(text string) string
}

// ErrEndOfSession reports that the learner submitted empty input, which
// ends the session cleanly at any prompt. Read failures end the session
// the same way.
var ErrEndOfSession = errors.New("end of session")

// FormatError reports input that cannot be interpreted as an answer. It is
// recoverable: the same question is asked again and no mistake is counted.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

// readTokens reads one line and splits it into answer tokens. Multi-token
// input is only split when the prompt accepts several answers.
func readTokens(c Console, multiple bool) ([]string, error) {
	line, err := c.ReadLine()
	if err != nil {
		return nil, ErrEndOfSession
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEndOfSession
	}
	return answer.SplitTokens(line, multiple), nil
}

// Ask prints a question head and reads a free-text answer. When several
// tokens are accepted they are joined in canonical order.
func Ask(c Console, head string, multiple bool) (string, error) {
	c.Print("\n" + Capitalize(head) + ":")
	tokens, err := readTokens(c, multiple)
	if err != nil {
		return "", err
	}
	return answer.Join(tokens), nil
}

// AskInt prints a question head with the accepted range and re-prompts
// until an integer inside [lower, upper] or among extras is given.
func AskInt(c Console, head string, lower, upper int, extras []int) (int, error) {
	choices := fmt.Sprintf("%d..%d", lower, upper)
	if len(extras) > 0 {
		rendered := make([]string, 0, len(extras))
		for _, extra := range extras {
			rendered = append(rendered, strconv.Itoa(extra))
		}
		choices += " or " + answer.Join(rendered)
	}
	c.Print(fmt.Sprintf("\n%s (%s):", Capitalize(head), choices))
	for {
		tokens, err := readTokens(c, false)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(tokens[0])
		if err != nil {
			printError(c, "Only an integer is accepted")
			continue
		}
		if !intAllowed(value, lower, upper, extras) {
			printError(c, "The integer should be one of "+choices)
			continue
		}
		return value, nil
	}
}

// AskOptions prints an indexed option list and re-prompts until a valid
// selection of indices is given. Single-choice lists are denoted with
// parentheses, multi-choice with brackets. The joined selection is
// returned.
func AskOptions(c Console, head string, options []string, multiple bool) (string, error) {
	selection, err := AskSelection(c, head, options, multiple)
	if err != nil {
		return "", err
	}
	return answer.Join(selection), nil
}

// AskSelection is AskOptions without the joining: the chosen option
// strings come back as a slice, in submission order.
func AskSelection(c Console, head string, options []string, multiple bool) ([]string, error) {
	c.Print(renderOptions(head, options, multiple))
	for {
		tokens, err := readTokens(c, multiple)
		if err != nil {
			return nil, err
		}
		selection, err := ParseSelection(tokens, options, multiple)
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) {
				printError(c, ferr.Message)
				continue
			}
			return nil, err
		}
		return selection, nil
	}
}

// ParseSelection maps submitted index tokens onto the option list. Indices
// are 1-based. Failures are FormatErrors carrying the message to show.
func ParseSelection(tokens []string, options []string, multiple bool) ([]string, error) {
	selection := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isDigits(token) {
			if !multiple && strings.Contains(token, answer.Delim) {
				return nil, &FormatError{Message: "Only one option index is accepted"}
			}
			return nil, &FormatError{Message: "Only option indices are accepted"}
		}
		idx, err := strconv.Atoi(token)
		if err != nil || idx < 1 || idx > len(options) {
			return nil, &FormatError{Message: token + " is not a valid option index"}
		}
		selection = append(selection, options[idx-1])
	}
	return selection, nil
}

func renderOptions(head string, options []string, multiple bool) string {
	left, right := "(", ")"
	if multiple {
		left, right = "[", "]"
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Capitalize(head))
	b.WriteString(":")
	for i, option := range options {
		fmt.Fprintf(&b, "\n%s%d%s %s", left, i+1, right, option)
	}
	return b.String()
}

func printError(c Console, message string) {
	c.Print("Error: " + message + ".")
}

func intAllowed(value, lower, upper int, extras []int) bool {
	if value >= lower && value <= upper {
		return true
	}
	for _, extra := range extras {
		if value == extra {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Capitalize uppercases the first rune of a question head for display.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
