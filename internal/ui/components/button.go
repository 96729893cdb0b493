package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// Button is a navigation button with its shortcut shown beside the label.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, enabled bool) Button {
	return Button{
		Label:   label,
		Key:     key,
		Enabled: enabled,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " " + lipgloss.NewStyle().Faint(true).Render(b.Key)
	}
	if b.Enabled {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
}
