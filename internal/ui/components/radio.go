package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// RadioGroup is a labelled single-choice input. Chosen is -1 when nothing
// is selected.
type RadioGroup struct {
	Prompt  string
	IDs     []string
	Labels  []string
	Cursor  int
	Chosen  int
	Focused bool
}

// NewRadioGroup creates a group with the option at selectedID chosen, if
// any.
func NewRadioGroup(prompt string, ids, labels []string, selectedID string) RadioGroup {
	r := RadioGroup{Prompt: prompt, IDs: ids, Labels: labels, Chosen: -1}
	for i, id := range ids {
		if id == selectedID {
			r.Chosen = i
			r.Cursor = i
		}
	}
	return r
}

// Update moves the cursor with up/down and chooses with enter or space.
// The second return value is true when the choice changed.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !r.Focused {
		return r, false
	}
	switch kmsg.String() {
	case "up":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down":
		if r.Cursor < len(r.IDs)-1 {
			r.Cursor++
		}
	case "enter", "space", " ":
		if r.Chosen != r.Cursor {
			r.Chosen = r.Cursor
			return r, true
		}
	}
	return r, false
}

// Selected returns the chosen option id, or "".
func (r RadioGroup) Selected() string {
	if r.Chosen < 0 || r.Chosen >= len(r.IDs) {
		return ""
	}
	return r.IDs[r.Chosen]
}

// View renders the group.
func (r RadioGroup) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Prompt) + "\n"
	for i, label := range r.Labels {
		prefix := "  "
		if r.Focused && i == r.Cursor {
			prefix = "▸ "
		}
		mark := "( ) "
		if i == r.Chosen {
			mark = "(•) "
		}
		line := prefix + mark + label
		if r.Focused && i == r.Cursor {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
