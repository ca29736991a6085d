package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geoquiz/internal/quiz"
)

const (
	headerColor  = lipgloss.Color("33")
	metaColor    = lipgloss.Color("242")
	helpColor    = lipgloss.Color("244")
	successColor = lipgloss.Color("42")
	failureColor = lipgloss.Color("196")
)

// renderRound renders the header, the question with its options, the
// input line, and the last verdict.
func renderRound(s *quiz.Session, round quiz.Round, inputView, verdict string, noColor bool) string {
	parts := []string{
		renderHeader(s, noColor),
		"",
		renderQuestion(round),
		inputView,
	}
	if verdict != "" {
		parts = append(parts, verdict)
	}
	parts = append(parts, renderHelp(round, noColor))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the session line with progress and mistakes.
func renderHeader(s *quiz.Session, noColor bool) string {
	title := stylize("Geography quiz", noColor, headerColor)
	line := fmt.Sprintf("Session %s | Answered: %d/%d | Mistakes: %d",
		s.ID(), s.Total()-s.Remaining(), s.Total(), s.Mistakes())
	return title + "\n" + stylize(line, noColor, metaColor)
}

// renderQuestion renders the question head and, for indexed rounds, the
// option list in the same bracket notation the plain console uses.
func renderQuestion(round quiz.Round) string {
	var b strings.Builder
	b.WriteString(quiz.Capitalize(round.Head))
	b.WriteString(":")
	left, right := "(", ")"
	if round.Multiple {
		left, right = "[", "]"
	}
	for i, option := range round.Options {
		fmt.Fprintf(&b, "\n%s%d%s %s", left, i+1, right, option)
	}
	return b.String()
}

// renderHelp renders the key hint line.
func renderHelp(round quiz.Round, noColor bool) string {
	hint := "type your answer"
	if round.Options != nil {
		hint = "type an option index"
	}
	if round.Multiple {
		hint += ", separate several with ','"
	}
	return stylize(hint+" | enter submits | empty input or esc ends the session", noColor, helpColor)
}

// renderSummary renders the closing block once every question is
// answered.
func renderSummary(s *quiz.Session, noColor bool) string {
	head := stylize("Congratulations on completing the questionnaire!", noColor, successColor)
	var text string
	switch mistakes := s.Mistakes(); mistakes {
	case 0:
		text = "did not make any mistakes"
	case 1:
		text = "made " + stylize("1", noColor, failureColor) + " mistake"
	default:
		text = "made " + stylize(fmt.Sprint(mistakes), noColor, failureColor) + " mistakes"
	}
	return head + " You " + text + "."
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
