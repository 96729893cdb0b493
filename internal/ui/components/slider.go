package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careaid/internal/ui/theme"
)

// SliderStep is how far one left/right press moves a slider.
const SliderStep = 5

// Slider rates a value between the AI end (0) and the human end (100).
type Slider struct {
	ID      string
	Label   string
	Value   int
	Caption string
	Focused bool
	Width   int
}

// NewSlider creates a slider.
func NewSlider(id, label string, value, width int) Slider {
	return Slider{ID: id, Label: label, Value: value, Width: width}
}

// Update handles left/right (coarse), shift+left/right (fine) and
// home/end. The second return value is true when the value changed.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused {
		return s, false
	}
	v := s.Value
	switch kmsg.String() {
	case "left", "h":
		v -= SliderStep
	case "right", "l":
		v += SliderStep
	case "shift+left":
		v--
	case "shift+right":
		v++
	case "home":
		v = 0
	case "end":
		v = 100
	default:
		return s, false
	}
	v = min(max(v, 0), 100)
	if v == s.Value {
		return s, false
	}
	s.Value = v
	return s, true
}

// View renders the label, the meter and the caption.
func (s Slider) View() string {
	labelStyle := theme.Unselected
	prefix := "  "
	if s.Focused {
		labelStyle = theme.Selected
		prefix = "▸ "
	}
	head := labelStyle.Render(prefix + s.Label)

	meter := NewMeter("AI", "Human", s.Value, s.Width-4)
	meter.Focused = s.Focused
	line := "  " + meter.View() + theme.Hint.Render(fmt.Sprintf(" %3d", s.Value))
	if s.Caption != "" {
		line += "\n     " + theme.Hint.Render(s.Caption)
	}
	return head + "\n" + line
}
