package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careaid/internal/content"
	sessionscreen "github.com/abhisek/careaid/internal/screens/session"
	"github.com/abhisek/careaid/internal/screens/welcome"
	sess "github.com/abhisek/careaid/internal/session"
)

func newTestSession(t *testing.T) *sess.Session {
	t.Helper()
	pack, err := content.Default()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	s, err := sess.New(sess.Options{Pack: pack})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t)})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected the welcome animation to start")
	}
}

func TestWelcomeHandsOffToAid(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t)})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	m.Update(cmd())

	if _, ok := m.router.Active().(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected the decision aid, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("expected the welcome screen to be replaced, depth %d", m.router.Depth())
	}
}

func TestSkipWelcome(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t), SkipWelcome: true})
	if _, ok := m.router.Active().(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected the decision aid, got %T", m.router.Active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t), SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowSize(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	am := next.(AppModel)
	if am.width != 100 || am.height != 40 {
		t.Errorf("expected 100x40, got %dx%d", am.width, am.height)
	}
}

func TestRunNeedsSession(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected an error without a session")
	}
}
