package history

import (
	"context"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/router"
	"github.com/abhisek/careaid/internal/screen"
	"github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/store"
	"github.com/abhisek/careaid/internal/ui/layout"
	"github.com/abhisek/careaid/internal/ui/theme"
)

// Limit is the number of events loaded.
const Limit = 200

type historyLoadedMsg struct {
	Events []store.Event
	Err    error
}

// HistoryScreen lists the journal events of the current session, newest
// first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessionID string
	events    []store.Event
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for sessionID. A nil repo shows the
// empty state.
func New(eventRepo store.EventRepo, sessionID string) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		events, err := s.eventRepo.Query(context.Background(), store.QueryOpts{
			SessionID: s.sessionID,
			Limit:     Limit,
			Newest:    true,
		})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Activity"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selected row on screen.
	first := 0
	if visible := height - 2; visible > 0 && s.selected >= visible {
		first = s.selected - visible + 1
	}

	for i := first; i < len(s.events); i++ {
		e := s.events[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-14s %s",
			prefix, e.Timestamp.Local().Format("15:04:05"), e.Kind, describe(e))

		style := lipgloss.NewStyle().Foreground(kindColor(e.Kind))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, k := range slices.Sorted(maps.Keys(e.Detail)) {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("      %s: %v", k, e.Detail[k])))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// describe returns a one-line summary of an event's detail.
func describe(e store.Event) string {
	d := e.Detail
	switch e.Kind {
	case session.EventNavigate:
		return fmt.Sprintf("step %v → %v", d["from"], d["to"])
	case session.EventSearchAdd:
		return fmt.Sprintf("%q (%v marks)", d["term"], d["marks"])
	case session.EventSearchRemove:
		return fmt.Sprintf("%q removed", d["term"])
	case session.EventQuizSubmit:
		return fmt.Sprintf("%v correct of %v answered", d["correct"], d["answered"])
	case session.EventSlider:
		return fmt.Sprintf("%v = %v", d["slider"], d["value"])
	case session.EventChoice:
		return fmt.Sprintf("%v = %v", d["group"], d["option"])
	case session.EventText:
		return fmt.Sprintf("%v (%v chars)", d["field"], d["length"])
	case session.EventDisplayMode:
		return fmt.Sprintf("%v", d["mode"])
	case session.EventPrint:
		return fmt.Sprintf("%v ok=%v", d["kind"], d["ok"])
	}
	return ""
}

func kindColor(kind string) color.Color {
	switch kind {
	case session.EventStart, session.EventSummary:
		return theme.Primary
	case session.EventSearchAdd, session.EventSearchRemove:
		return theme.Accent
	case session.EventQuizSubmit:
		return theme.Secondary
	case session.EventPrint:
		return theme.Success
	default:
		return theme.Text
	}
}
