package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// TextArea is a labelled multi-line free-text field.
type TextArea struct {
	Name   string
	Prompt string
	Model  textarea.Model
}

// NewTextArea creates a blurred text area holding value.
func NewTextArea(name, prompt, value string, width int) TextArea {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "Type here..."
	ta.CharLimit = 2000
	ta.SetWidth(width)
	ta.SetHeight(3)
	ta.SetValue(value)
	ta.Blur()
	return TextArea{Name: name, Prompt: prompt, Model: ta}
}

// Focus gives the field keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// Update forwards msg to the text area.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Value returns the text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// View renders the prompt above the field.
func (t TextArea) View() string {
	style := theme.Unselected
	prefix := "  "
	if t.Focused() {
		style = theme.Selected
		prefix = "▸ "
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(prefix+t.Prompt), t.Model.View())
}
