package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careaid/internal/router"
	"github.com/abhisek/careaid/internal/screen"
	sessionscreen "github.com/abhisek/careaid/internal/screens/session"
	"github.com/abhisek/careaid/internal/screens/welcome"
	sess "github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Session *sess.Session
	Logger  *zap.Logger

	// SkipWelcome starts directly on the decision aid.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *sess.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	aid := func() screen.Screen { return sessionscreen.New(opts.Session) }

	var root screen.Screen
	if opts.SkipWelcome {
		root = aid()
	} else {
		pack := opts.Session.Pack()
		steps := make([]string, len(pack.Steps))
		for i, st := range pack.Steps {
			steps[i] = st.Title
		}
		root = welcome.New(welcome.Intro{Title: pack.Title, Steps: steps}, aid)
	}
	return AppModel{
		router:  router.New(root),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// Only the decision aid itself shows the step counter.
	step, steps := 0, 0
	if _, ok := active.(*sessionscreen.SessionScreen); ok {
		step, steps = m.session.Active(), m.session.Steps()
	}
	header := layout.RenderHeader(title, step, steps, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		footerHints = []layout.KeyHint{{Key: "Any key", Description: "Start"}}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return errors.New("app needs a session")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	p := tea.NewProgram(newAppModel(opts))
	log.Info("tui started", zap.String("session_id", opts.Session.ID()))
	_, err := p.Run()
	if err != nil {
		log.Error("tui failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	log.Info("tui stopped", zap.Int("step", opts.Session.Active()))
	return nil
}
