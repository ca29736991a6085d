// Package live renders an interactive quiz round loop using Bubble Tea.
package live

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"geoquiz/internal/answer"
	"geoquiz/internal/quiz"
)

// Model drives one quiz session. Answers are typed into a single input
// line; indexed rounds take option indices, free rounds take text.
type Model struct {
	session *quiz.Session
	input   textinput.Model
	round   quiz.Round
	verdict string
	done    bool
	aborted bool
	noColor bool
	width   int
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for a freshly built session.
func NewModel(session *quiz.Session, opts Options) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "answer"
	input.CharLimit = 120
	input.Focus()
	return Model{
		session: session,
		input:   input,
		round:   session.Draw(),
		noColor: opts.NoColor,
	}
}

// Aborted reports whether the learner ended the session before answering
// everything.
func (m Model) Aborted() bool { return m.aborted }

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the round screen, or the closing summary once every
// question is answered.
func (m Model) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		return renderSummary(m.session, m.noColor) + "\n"
	}
	return renderRound(m.session, m.round, m.input.View(), m.verdict, m.noColor) + "\n"
}

// submit interprets the typed line against the current round. Format
// problems re-prompt in place; verdicts advance the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.aborted = true
		return m, tea.Quit
	}
	submitted, err := interpret(m.round, raw)
	if err != nil {
		var ferr *quiz.FormatError
		if errors.As(err, &ferr) {
			m.verdict = stylize("Error: "+ferr.Message+".", m.noColor, failureColor)
			m.input.SetValue("")
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit
	}
	outcome := m.session.Submit(m.round, submitted)
	if outcome.Correct {
		m.verdict = stylize("Right!", m.noColor, successColor) +
			fmt.Sprintf(" Progress: %d out of %d questions answered correctly.", outcome.Answered, outcome.Total)
	} else {
		m.verdict = stylize("Wrong!", m.noColor, failureColor) +
			fmt.Sprintf(" The right answer is %s.", outcome.Reveal)
	}
	m.input.SetValue("")
	if outcome.Done {
		m.done = true
		return m, tea.Quit
	}
	m.round = m.session.Draw()
	return m, nil
}

// interpret maps the typed line to the submission string the session
// compares: joined free text, or the joined selection of option indices.
func interpret(round quiz.Round, raw string) (string, error) {
	tokens := answer.SplitTokens(raw, round.Multiple)
	if round.Options == nil {
		return answer.Join(tokens), nil
	}
	selection, err := quiz.ParseSelection(tokens, round.Options, round.Multiple)
	if err != nil {
		return "", err
	}
	return answer.Join(selection), nil
}
