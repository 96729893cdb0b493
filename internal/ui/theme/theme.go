package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm clinical blues with warm accents for highlights.
var (
	Primary   = lipgloss.Color("#3B82F6") // Clinic Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	MarkBg    = lipgloss.Color("#FDE68A") // Highlighter Yellow
	MarkFg    = lipgloss.Color("#0F172A")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Mark renders a search hit.
	Mark = lipgloss.NewStyle().
		Background(MarkBg).
		Foreground(MarkFg)

	Status = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Padding(0, 1)

	StepDone = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StepPending = lipgloss.NewStyle().
			Foreground(TextDim)
)
