package session

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careaid/internal/content"
	sess "github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/summary"
	"github.com/abhisek/careaid/internal/ui/components"
)

// control is one focusable input of a step panel. Controls write through
// to the session as the user edits them.
type control interface {
	Focus() tea.Cmd
	Blur(s *sess.Session)
	Update(msg tea.Msg, s *sess.Session) tea.Cmd
	View() string
}

// quizControl holds one question. Answers are collected on check.
type quizControl struct {
	id  int
	mc  components.MultiChoice
	ids []string
}

func newQuizControl(q content.Question) *quizControl {
	labels := make([]string, len(q.Options))
	ids := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
		ids[i] = o.ID
	}
	return &quizControl{id: q.ID, mc: components.NewMultiChoice(q.Prompt, labels), ids: ids}
}

func (c *quizControl) Focus() tea.Cmd     { c.mc.Focused = true; return nil }
func (c *quizControl) Blur(*sess.Session) { c.mc.Focused = false }
func (c *quizControl) View() string       { return c.mc.View() }
func (c *quizControl) Update(msg tea.Msg, _ *sess.Session) tea.Cmd {
	var cmd tea.Cmd
	c.mc, cmd = c.mc.Update(msg)
	return cmd
}

// answer returns the chosen option id, or "".
func (c *quizControl) answer() string {
	if !c.mc.Answered() {
		return ""
	}
	return c.ids[c.mc.Chosen]
}

type sliderControl struct {
	slider components.Slider
}

func newSliderControl(sl content.Slider, value, width int) *sliderControl {
	c := &sliderControl{slider: components.NewSlider(sl.ID, sl.Label, value, width)}
	c.slider.Caption = summary.Label(value)
	return c
}

func (c *sliderControl) Focus() tea.Cmd     { c.slider.Focused = true; return nil }
func (c *sliderControl) Blur(*sess.Session) { c.slider.Focused = false }
func (c *sliderControl) View() string       { return c.slider.View() }
func (c *sliderControl) Update(msg tea.Msg, s *sess.Session) tea.Cmd {
	var changed bool
	c.slider, changed = c.slider.Update(msg)
	if changed {
		_ = s.OnSliderChange(c.slider.ID, c.slider.Value)
		c.slider.Value = s.Value(c.slider.ID)
		c.slider.Caption = summary.Label(c.slider.Value)
	}
	return nil
}

type choiceControl struct {
	group string
	radio components.RadioGroup
}

func newChoiceControl(g content.ChoiceGroup, selected string) *choiceControl {
	ids := make([]string, len(g.Options))
	labels := make([]string, len(g.Options))
	for i, o := range g.Options {
		ids[i] = o.ID
		labels[i] = o.Label
	}
	return &choiceControl{group: g.Name, radio: components.NewRadioGroup(g.Prompt, ids, labels, selected)}
}

func (c *choiceControl) Focus() tea.Cmd     { c.radio.Focused = true; return nil }
func (c *choiceControl) Blur(*sess.Session) { c.radio.Focused = false }
func (c *choiceControl) View() string       { return c.radio.View() }
func (c *choiceControl) Update(msg tea.Msg, s *sess.Session) tea.Cmd {
	var changed bool
	c.radio, changed = c.radio.Update(msg)
	if changed {
		_ = s.OnChoice(c.group, c.radio.Selected())
	}
	return nil
}

// textControl commits its value to the session when it loses focus.
type textControl struct {
	area components.TextArea
}

func newTextControl(f content.TextField, value string, width int) *textControl {
	return &textControl{area: components.NewTextArea(f.Name, f.Prompt, value, width)}
}

func (c *textControl) Focus() tea.Cmd { return c.area.Focus() }
func (c *textControl) View() string   { return c.area.View() }
func (c *textControl) Blur(s *sess.Session) {
	c.area.Blur()
	c.commit(s)
}
func (c *textControl) Update(msg tea.Msg, _ *sess.Session) tea.Cmd {
	var cmd tea.Cmd
	c.area, cmd = c.area.Update(msg)
	return cmd
}

func (c *textControl) commit(s *sess.Session) {
	if c.area.Value() != s.Text(c.area.Name) {
		_ = s.OnText(c.area.Name, c.area.Value())
	}
}

// buildControls returns the panel inputs for a step kind, seeded from the
// session state.
func buildControls(s *sess.Session, kind content.StepKind, width int) []control {
	p := s.Pack()
	var out []control
	text := func(name string) {
		if f, ok := p.TextField(name); ok {
			out = append(out, newTextControl(f, s.Text(name), width))
		}
	}
	choice := func(name string) {
		if g, ok := p.Choice(name); ok {
			out = append(out, newChoiceControl(g, s.Choice(name)))
		}
	}

	switch kind {
	case content.KindQuiz:
		eval, checked := s.Evaluation()
		for _, q := range p.Questions {
			c := newQuizControl(q)
			if checked {
				if o, ok := eval.Outcome(q.ID); ok && o.Answered {
					c.mc.Result = &components.Checked{Correct: o.Correct, Feedback: o.Feedback}
				}
			}
			out = append(out, c)
		}
	case content.KindValues:
		for _, sl := range p.Sliders {
			out = append(out, newSliderControl(sl, s.Value(sl.ID), width))
		}
		text(content.FieldOtherReasons)
	case content.KindDecision:
		choice(content.GroupComfort)
		text(content.FieldDecisionNotes)
		choice(content.GroupCertainty)
		choice(content.GroupNextSteps)
		text(content.FieldConcerns)
	}
	return out
}
