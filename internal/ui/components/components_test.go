package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSliderSteps(t *testing.T) {
	s := NewSlider("privacy", "Privacy", 50, 60)
	s.Focused = true

	tests := []struct {
		name string
		key  tea.KeyPressMsg
		want int
	}{
		{"right", press(tea.KeyRight), 55},
		{"left", press(tea.KeyLeft), 50},
		{"fine right", tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}, 51},
		{"home", press(tea.KeyHome), 0},
		{"left at zero", press(tea.KeyLeft), 0},
		{"end", press(tea.KeyEnd), 100},
		{"right at max", press(tea.KeyRight), 100},
	}
	for _, tt := range tests {
		var changed bool
		prev := s.Value
		s, changed = s.Update(tt.key)
		if s.Value != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, s.Value)
		}
		if changed != (prev != tt.want) {
			t.Errorf("%s: unexpected changed=%v", tt.name, changed)
		}
	}
}

func TestSliderIgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSlider("privacy", "Privacy", 50, 60)
	s, changed := s.Update(press(tea.KeyRight))
	if changed || s.Value != 50 {
		t.Errorf("blurred slider should not move, got %d", s.Value)
	}
}

func TestSliderView(t *testing.T) {
	s := NewSlider("privacy", "Keeping my data private", 30, 60)
	s.Caption = "Lean toward AI"
	view := ansi.Strip(s.View())
	for _, want := range []string{"Keeping my data private", "AI", "Human", " 30", "Lean toward AI"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestMeterThumb(t *testing.T) {
	m := NewMeter("AI", "Human", 0, 40)
	if m.Thumb() != 0 {
		t.Errorf("expected thumb at 0, got %d", m.Thumb())
	}
	m.Value = 100
	if m.Thumb() != m.Track()-1 {
		t.Errorf("expected thumb at the end, got %d of %d", m.Thumb(), m.Track())
	}
	m.Value = 250
	if m.Thumb() != m.Track()-1 {
		t.Error("expected out of range values to clamp")
	}
	if got := ansi.StringWidth(m.View()); got != 40 {
		t.Errorf("expected meter width 40, got %d", got)
	}
}

func TestRadioGroup(t *testing.T) {
	r := NewRadioGroup("Are you sure?", []string{"sure", "unsure"}, []string{"Yes", "No"}, "unsure")
	if r.Selected() != "unsure" || r.Cursor != 1 {
		t.Fatalf("expected preselected unsure, got %q at %d", r.Selected(), r.Cursor)
	}

	r.Focused = true
	r, _ = r.Update(press(tea.KeyUp))
	r, changed := r.Update(press(tea.KeyEnter))
	if !changed || r.Selected() != "sure" {
		t.Errorf("expected sure chosen, got %q", r.Selected())
	}

	_, changed = r.Update(press(tea.KeySpace))
	if changed {
		t.Error("choosing the same option again should not report a change")
	}

	if !strings.Contains(ansi.Strip(r.View()), "(•) Yes") {
		t.Error("expected the chosen option to be marked")
	}
}

func TestRadioGroupNoSelection(t *testing.T) {
	r := NewRadioGroup("Pick", []string{"a"}, []string{"A"}, "")
	if r.Selected() != "" || r.Chosen != -1 {
		t.Errorf("expected no selection, got %q", r.Selected())
	}
}

func TestMultiChoiceClearsResultOnChange(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"one", "two"})
	mc.Focused = true
	mc, _ = mc.Update(press(tea.KeyEnter))
	if !mc.Answered() || mc.Chosen != 0 {
		t.Fatalf("expected first option chosen, got %d", mc.Chosen)
	}

	mc.Result = &Checked{Correct: false, Feedback: "Not quite."}
	mc, _ = mc.Update(press(tea.KeyDown))
	if mc.Result == nil {
		t.Error("moving the cursor should keep the result")
	}
	mc, _ = mc.Update(press(tea.KeyEnter))
	if mc.Result != nil {
		t.Error("changing the answer should clear the result")
	}
}

func TestMultiChoiceShowsFeedback(t *testing.T) {
	mc := NewMultiChoice("Q?", []string{"one", "two"})
	mc.Chosen = 1
	mc.Result = &Checked{Correct: true, Feedback: "That's right."}
	if !strings.Contains(ansi.Strip(mc.View()), "That's right.") {
		t.Error("expected feedback in view")
	}
}

func TestButtonView(t *testing.T) {
	on := ansi.Strip(NewButton("Next", "ctrl+n", true).View())
	if !strings.Contains(on, "Next") || !strings.Contains(on, "ctrl+n") {
		t.Errorf("unexpected button %q", on)
	}
}

func TestMenuDigitActivates(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "First", Action: func() tea.Cmd { called = "first"; return nil }},
		{Label: "Second", Action: func() tea.Cmd { called = "second"; return nil }},
	})
	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if called != "second" || m.Selected != 1 {
		t.Errorf("expected second item activated, got %q", called)
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(200); got != 76 {
		t.Errorf("expected 76 on wide frames, got %d", got)
	}
	if got := ContentWidth(10); got != 20 {
		t.Errorf("expected minimum 20, got %d", got)
	}
}
