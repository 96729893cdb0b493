package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// Checked is the evaluation shown under a MultiChoice after the answers
// were checked.
type Checked struct {
	Correct  bool
	Feedback string
}

// MultiChoice is a single-answer question. Chosen is -1 until the user
// picks an option; Result stays nil until the answers are checked.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int
	Focused  bool
	Result   *Checked
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Changing the answer
// clears a previous check result.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space", " ":
		if m.Chosen != m.Cursor {
			m.Chosen = m.Cursor
			m.Result = nil
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n"

	for i, opt := range m.Options {
		prefix := "  "
		if m.Focused && i == m.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %c) %s", prefix, mark, 'A'+rune(i%26), opt)

		switch {
		case i == m.Chosen && m.Result != nil && m.Result.Correct:
			s += theme.Correct.Render(line) + "\n"
		case i == m.Chosen && m.Result != nil:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Focused && i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	if m.Result != nil {
		verdict := theme.Incorrect.Render("✗ Not quite.")
		if m.Result.Correct {
			verdict = theme.Correct.Render("✓ Correct.")
		}
		if m.Result.Feedback != "" {
			verdict += " " + theme.Hint.Render(m.Result.Feedback)
		}
		s += "  " + verdict + "\n"
	}
	return s
}

// Answered reports whether an option was chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0 && m.Chosen < len(m.Options)
}
