package session

import "maps"

// DisplayMode selects how the summary shows slider values.
type DisplayMode string

const (
	ModeVisual DisplayMode = "visual"
	ModeText   DisplayMode = "text"
)

// Body classes for the display modes.
const (
	ClassVisualMode = "visual-mode"
	ClassTextMode   = "text-mode"
)

// DefaultSliderValue is the neutral midpoint every slider starts at.
const DefaultSliderValue = 50

// State is the session-owned part of the user's input. The active step,
// the quiz results and the search terms live in their own components.
type State struct {
	// Values maps slider id to its 0..100 rating.
	Values map[string]int

	// Choices maps a choice group to the selected option id.
	Choices map[string]string

	// Text maps a free-text field name to its value.
	Text map[string]string

	// Mode is the current display mode.
	Mode DisplayMode

	// Printing is true while a print scope is open.
	Printing bool

	// Status is a one-line message for the user about the last action.
	Status string

	// SummaryReady is set once the summary has been written into the
	// content tree.
	SummaryReady bool
}

func newState(sliderIDs []string, mode DisplayMode) State {
	s := State{
		Values:  make(map[string]int, len(sliderIDs)),
		Choices: make(map[string]string),
		Text:    make(map[string]string),
		Mode:    mode,
	}
	for _, id := range sliderIDs {
		s.Values[id] = DefaultSliderValue
	}
	return s
}

// clone returns a deep copy so callers cannot write through.
func (s State) clone() State {
	s.Values = maps.Clone(s.Values)
	s.Choices = maps.Clone(s.Choices)
	s.Text = maps.Clone(s.Text)
	return s
}

func clamp(v int) int {
	return min(max(v, 0), 100)
}
