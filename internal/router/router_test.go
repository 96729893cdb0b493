package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careaid/internal/screen"
)

type pingMsg struct{}

// fakeScreen records what the router did to it.
type fakeScreen struct {
	title   string
	inits   int
	resumes int
	pings   int
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(pingMsg); ok {
		s.pings++
	}
	return s, nil
}

func (s *fakeScreen) View(w, h int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

// resumingScreen also implements screen.Resumer.
type resumingScreen struct{ fakeScreen }

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumes++
	return func() tea.Msg { return pingMsg{} }
}

func TestPushInitsAndActivates(t *testing.T) {
	aid := &fakeScreen{title: "aid"}
	r := New(aid)

	activity := &fakeScreen{title: "activity"}
	r.Update(PushScreenMsg{Screen: activity})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != activity {
		t.Errorf("expected activity on top, got %q", r.Active().Title())
	}
	if activity.inits != 1 {
		t.Errorf("expected one Init on push, got %d", activity.inits)
	}
}

func TestMessagesReachOnlyTheTopScreen(t *testing.T) {
	aid := &fakeScreen{title: "aid"}
	r := New(aid)
	activity := &fakeScreen{title: "activity"}
	r.Push(activity)

	r.Update(pingMsg{})

	if activity.pings != 1 || aid.pings != 0 {
		t.Errorf("expected ping on top screen only, got top=%d bottom=%d", activity.pings, aid.pings)
	}
	if r.View(80, 24) != "activity" {
		t.Errorf("expected top screen view, got %q", r.View(80, 24))
	}
}

func TestPopResumesScreenBelow(t *testing.T) {
	aid := &resumingScreen{fakeScreen{title: "aid"}}
	r := New(aid)
	r.Push(&fakeScreen{title: "activity"})

	cmd := r.Update(PopScreenMsg{})

	if r.Active() != aid {
		t.Fatalf("expected aid on top, got %q", r.Active().Title())
	}
	if aid.resumes != 1 {
		t.Errorf("expected one Resume, got %d", aid.resumes)
	}
	if cmd == nil {
		t.Fatal("expected the resume command to be returned")
	}
	if _, ok := cmd().(pingMsg); !ok {
		t.Error("expected the resume command's message")
	}
}

func TestPopWithoutResumer(t *testing.T) {
	r := New(&fakeScreen{title: "aid"})
	r.Push(&fakeScreen{title: "activity"})
	if cmd := r.Pop(); cmd != nil {
		t.Error("expected no command for a plain screen")
	}
}

func TestPopKeepsLastScreen(t *testing.T) {
	aid := &resumingScreen{fakeScreen{title: "aid"}}
	r := New(aid)

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected no command when nothing was popped")
	}
	if r.Depth() != 1 || aid.resumes != 0 {
		t.Errorf("expected the only screen to stay untouched, depth %d resumes %d", r.Depth(), aid.resumes)
	}
}

func TestReplaceSwapsTop(t *testing.T) {
	welcome := &fakeScreen{title: "welcome"}
	r := New(welcome)

	aid := &fakeScreen{title: "aid"}
	r.Update(ReplaceScreenMsg{Screen: aid})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active() != aid || aid.inits != 1 {
		t.Errorf("expected aid on top and initialized, got %q with %d inits", r.Active().Title(), aid.inits)
	}

	r.Push(&fakeScreen{title: "activity"})
	dialog := &fakeScreen{title: "dialog"}
	r.Replace(dialog)
	if r.Depth() != 2 || r.Active() != dialog {
		t.Errorf("expected replace to keep depth 2, got %d", r.Depth())
	}
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	if r.Active() != nil || r.View(10, 10) != "" || r.Update(pingMsg{}) != nil {
		t.Error("expected an empty router to be inert")
	}
	s := &fakeScreen{title: "only"}
	r.Replace(s)
	if r.Active() != s {
		t.Error("expected replace to seed an empty stack")
	}
}
