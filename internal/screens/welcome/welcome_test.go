package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/careaid/internal/router"
	"github.com/abhisek/careaid/internal/screen"
)

// aidStub stands in for the decision aid screen.
type aidStub struct{}

func (s *aidStub) Init() tea.Cmd                          { return nil }
func (s *aidStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *aidStub) View(int, int) string                   { return "aid" }
func (s *aidStub) Title() string                          { return "Aid" }

func newCountingWelcome(intro Intro) (*WelcomeScreen, *int) {
	built := 0
	return New(intro, func() screen.Screen {
		built++
		return &aidStub{}
	}), &built
}

func advance(w *WelcomeScreen, d time.Duration) tea.Cmd {
	var cmd tea.Cmd
	for i := time.Duration(0); i < d; i += tickInterval {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestRevealOrder(t *testing.T) {
	w, _ := newCountingWelcome(Intro{Title: "AI in your care", Steps: []string{"Learn", "Decide"}})

	if strings.Contains(ansi.Strip(w.View(100, 40)), DefaultTagline) {
		t.Error("tagline should not show before the banner phase")
	}

	advance(w, bannerAt)
	view := ansi.Strip(w.View(100, 40))
	if !strings.Contains(view, DefaultTagline) {
		t.Error("expected the tagline with the banner")
	}
	if strings.Contains(view, "AI in your care") {
		t.Error("overview should wait for its phase")
	}

	advance(w, overviewAt-bannerAt)
	view = ansi.Strip(w.View(100, 40))
	for _, want := range []string{"AI in your care", "1. Learn", "2. Decide", "press any key to begin"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in overview", want)
		}
	}
}

func TestElapsedIsCapped(t *testing.T) {
	w, built := newCountingWelcome(Intro{})
	if cmd := advance(w, 2*totalDur); cmd == nil {
		t.Error("expected ticks to continue for the heartbeat")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if *built != 0 {
		t.Error("the aid must not open without a key press")
	}
}

func TestKeyPressOpensAid(t *testing.T) {
	w, built := newCountingWelcome(Intro{})
	advance(w, 300*time.Millisecond)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*aidStub); !ok {
		t.Errorf("expected the aid screen, got %T", msg.Screen)
	}
	if *built != 1 {
		t.Errorf("expected the aid to be built once, got %d", *built)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, built := newCountingWelcome(Intro{})
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second key press should not produce a command")
	}
	if *built != 1 {
		t.Errorf("expected one build, got %d", *built)
	}
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop after the transition")
	}
}

func TestCustomTagline(t *testing.T) {
	w, _ := newCountingWelcome(Intro{Tagline: "Decide together."})
	advance(w, bannerAt)
	if !strings.Contains(ansi.Strip(w.View(80, 30)), "Decide together.") {
		t.Error("expected the custom tagline")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), bannerCompact) {
		t.Error("expected the compact banner on narrow terminals")
	}
	if strings.Contains(RenderBanner(100), bannerCompact) {
		t.Error("expected the full banner on wide terminals")
	}
}
