package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careaid/internal/content"
	"github.com/abhisek/careaid/internal/printmode"
	"github.com/abhisek/careaid/internal/quiz"
	"github.com/abhisek/careaid/internal/router"
	"github.com/abhisek/careaid/internal/screen"
	"github.com/abhisek/careaid/internal/screens/history"
	sess "github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/ui/components"
	"github.com/abhisek/careaid/internal/ui/layout"
)

// controlWidth is the width panel inputs are built at.
const controlWidth = 60

// scrollPage is how many lines pgup/pgdown move the step body.
const scrollPage = 10

// SessionScreen implements screen.Screen for the decision aid wizard.
type SessionScreen struct {
	sess     *sess.Session
	controls map[int][]control
	focus    int // index into the active step's controls, -1 for none
	scroll   int
	follow   bool // bring the focused control into view on next render

	searching bool
	search    components.TextInput
	termSel   int

	printMenu *components.Menu
	alert     string // status text of a failed print, shown as an error
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Resumer = (*SessionScreen)(nil)

// New creates a SessionScreen over s.
func New(s *sess.Session) *SessionScreen {
	scr := &SessionScreen{
		sess:     s,
		controls: make(map[int][]control),
		search:   components.NewTextInput("Search the aid...", 40),
	}
	scr.enterStep()
	return scr
}

func (s *SessionScreen) Init() tea.Cmd {
	if c := s.focused(); c != nil {
		return c.Focus()
	}
	return nil
}

// Resume restores the focused control after the activity screen closes.
func (s *SessionScreen) Resume() tea.Cmd {
	s.follow = true
	return s.Init()
}

func (s *SessionScreen) Title() string {
	return s.sess.ActiveStep().Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.printMenu != nil {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Choose"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Highlight"},
			{Key: "↑↓", Description: "Pick term"},
			{Key: "Ctrl+D", Description: "Remove term"},
			{Key: "Esc", Description: "Close"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "Ctrl+N/P", Description: "Next/Back"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+F", Description: "Search"},
	}
	switch s.sess.ActiveStep().Kind {
	case content.KindQuiz:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Check answers"})
	case content.KindDecision:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+G", Description: "Summary"})
	case content.KindSummary:
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+T", Description: "Visual/Text"},
			layout.KeyHint{Key: "Ctrl+O", Description: "Print"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "Activity"})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case printCancelMsg:
		s.printMenu = nil
		return s, nil

	case printRequestMsg:
		s.printMenu = nil
		s.commitText()
		s.alert = ""
		if _, err := s.sess.OnPrint(context.Background(), msg.Kind); err != nil {
			s.alert = s.sess.Status()
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Blink and other internal messages.
	var cmd tea.Cmd
	if s.searching {
		s.search, cmd = s.search.Update(msg)
	} else if c := s.focused(); c != nil {
		cmd = c.Update(msg, s.sess)
	}
	return s, cmd
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.printMenu != nil {
		if key == "esc" {
			s.printMenu = nil
			return s, nil
		}
		m, cmd := s.printMenu.Update(msg)
		s.printMenu = &m
		return s, cmd
	}

	if s.searching {
		return s.handleSearchKey(msg)
	}

	switch key {
	case "ctrl+n":
		return s, s.navigate(s.sess.OnNext)
	case "ctrl+p":
		return s, s.navigate(s.sess.OnPrev)
	case "ctrl+g":
		return s, s.navigate(func() error {
			_, err := s.sess.OnGenerateSummary()
			return err
		})
	case "ctrl+s":
		s.checkAnswers()
		return s, nil
	case "ctrl+f":
		s.searching = true
		s.termSel = 0
		return s, s.search.Init()
	case "ctrl+t":
		s.sess.OnToggleDisplayMode()
		return s, nil
	case "ctrl+o":
		s.openPrintMenu()
		return s, nil
	case "ctrl+l":
		s.commitText()
		h := history.New(s.sess.Journal(), s.sess.ID())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	case "tab":
		return s, s.moveFocus(1)
	case "shift+tab":
		return s, s.moveFocus(-1)
	case "pgdown":
		s.scroll += scrollPage
		s.follow = false
		return s, nil
	case "pgup":
		s.scroll = max(s.scroll-scrollPage, 0)
		s.follow = false
		return s, nil
	}

	if c := s.focused(); c != nil {
		s.follow = true
		return s, c.Update(msg, s.sess)
	}

	switch key {
	case "down", "j":
		s.scroll++
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	}
	return s, nil
}

func (s *SessionScreen) handleSearchKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	terms := s.sess.Terms()
	switch msg.String() {
	case "esc":
		s.searching = false
		return s, nil
	case "enter":
		prev := s.focused()
		res := s.sess.OnSearchSubmit(s.search.Value())
		if res.Changed {
			s.search.Reset()
			s.termSel = len(s.sess.Terms()) - 1
		}
		if res.Jumped != 0 {
			if prev != nil {
				prev.Blur(s.sess)
			}
			s.enterStep()
		}
		return s, nil
	case "up":
		if s.termSel > 0 {
			s.termSel--
		}
		return s, nil
	case "down":
		if s.termSel < len(terms)-1 {
			s.termSel++
		}
		return s, nil
	case "ctrl+d":
		if s.termSel >= 0 && s.termSel < len(terms) {
			s.sess.OnSearchRemove(terms[s.termSel])
			s.termSel = min(s.termSel, len(s.sess.Terms())-1)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

// navigate runs a step change. Typed text is committed first so it reaches
// the summary. On success the new step's panel takes focus.
func (s *SessionScreen) navigate(fn func() error) tea.Cmd {
	s.commitText()
	prev, before := s.focused(), s.sess.Active()
	if err := fn(); err != nil {
		// The session reports quiz gating in its status; running off
		// either end is ignored.
		return nil
	}
	if s.sess.Active() == before {
		s.follow = true
		return nil
	}
	if prev != nil {
		prev.Blur(s.sess)
	}
	s.enterStep()
	if c := s.focused(); c != nil {
		return c.Focus()
	}
	return nil
}

// enterStep resets scrolling and focus for the active step.
func (s *SessionScreen) enterStep() {
	s.scroll = 0
	s.follow = false
	s.focus = -1
	if len(s.stepControls()) > 0 {
		s.focus = 0
		s.stepControls()[0].Focus()
	}
}

func (s *SessionScreen) stepControls() []control {
	step := s.sess.Active()
	cs, ok := s.controls[step]
	if !ok {
		cs = buildControls(s.sess, s.sess.ActiveStep().Kind, controlWidth)
		s.controls[step] = cs
	}
	return cs
}

func (s *SessionScreen) focused() control {
	cs := s.stepControls()
	if s.focus < 0 || s.focus >= len(cs) {
		return nil
	}
	return cs[s.focus]
}

func (s *SessionScreen) moveFocus(delta int) tea.Cmd {
	cs := s.stepControls()
	if len(cs) == 0 {
		return nil
	}
	if c := s.focused(); c != nil {
		c.Blur(s.sess)
	}
	s.focus = (s.focus + delta + len(cs)) % len(cs)
	s.follow = true
	return cs[s.focus].Focus()
}

// commitText pushes every text field on the active step to the session.
func (s *SessionScreen) commitText() {
	for _, c := range s.stepControls() {
		if tc, ok := c.(*textControl); ok {
			tc.commit(s.sess)
		}
	}
}

// checkAnswers submits the quiz and shows the outcome under each question.
func (s *SessionScreen) checkAnswers() {
	if s.sess.ActiveStep().Kind != content.KindQuiz {
		return
	}
	sub := quiz.Submission{}
	var qcs []*quizControl
	for _, c := range s.stepControls() {
		if qc, ok := c.(*quizControl); ok {
			qcs = append(qcs, qc)
			if a := qc.answer(); a != "" {
				sub[qc.id] = a
			}
		}
	}
	eval, err := s.sess.OnQuizSubmit(sub)
	if err != nil {
		return
	}
	for _, qc := range qcs {
		qc.mc.Result = nil
		if o, ok := eval.Outcome(qc.id); ok && o.Answered {
			qc.mc.Result = &components.Checked{Correct: o.Correct, Feedback: o.Feedback}
		}
	}
}

func (s *SessionScreen) openPrintMenu() {
	request := func(kind printmode.Kind) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return printRequestMsg{Kind: kind} }
		}
	}
	m := components.NewMenu([]components.MenuItem{
		{Label: "Print my summary", Action: request(printmode.KindSummary)},
		{Label: "Print the full decision aid", Action: request(printmode.KindFull)},
		{Label: "Cancel", Action: func() tea.Cmd {
			return func() tea.Msg { return printCancelMsg{} }
		}},
	})
	s.printMenu = &m
}
