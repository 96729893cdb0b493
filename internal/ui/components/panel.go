package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards and panels so they
// line up across screens.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Dialog centers content in a double-border box within width x height.
func Dialog(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
