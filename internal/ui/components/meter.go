package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// Meter draws a 0..100 value as a track between two end labels with a
// thumb at the value.
type Meter struct {
	Left    string
	Right   string
	Value   int
	Width   int
	Focused bool
}

// NewMeter creates a meter spanning width cells, labels included.
func NewMeter(left, right string, value, width int) Meter {
	return Meter{Left: left, Right: right, Value: value, Width: width}
}

// Track returns the number of cells between the end labels.
func (m Meter) Track() int {
	return max(m.Width-lipgloss.Width(m.Left)-lipgloss.Width(m.Right)-2, 5)
}

// Thumb returns the track cell the thumb sits on.
func (m Meter) Thumb() int {
	v := min(max(m.Value, 0), 100)
	return v * (m.Track() - 1) / 100
}

func (m Meter) View() string {
	track, pos := m.Track(), m.Thumb()

	thumbColor := theme.Text
	if m.Focused {
		thumbColor = theme.Accent
	}
	before := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", pos))
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Bold(true).Render("●")
	after := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", track-pos-1))

	ends := lipgloss.NewStyle().Foreground(theme.TextDim)
	return ends.Render(m.Left) + " " + before + thumb + after + " " + ends.Render(m.Right)
}
