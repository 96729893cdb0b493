package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/careaid/internal/content"
	"github.com/abhisek/careaid/internal/doc"
	"github.com/abhisek/careaid/internal/printmode"
	"github.com/abhisek/careaid/internal/quiz"
	"github.com/abhisek/careaid/internal/search"
	"github.com/abhisek/careaid/internal/summary"
	"github.com/abhisek/careaid/internal/wizard"
)

// SearchResult describes the outcome of a search command.
type SearchResult struct {
	// Changed is false when the command was a no-op (empty or duplicate
	// term, or removing an absent term).
	Changed bool

	// Marks is the number of highlights in the whole content tree.
	Marks int

	// Jumped is the step navigated to, or 0 when the active step was kept.
	Jumped int

	// Status is the message shown to the user.
	Status string
}

// OnNavigate activates step. Entering the summary step regenerates the
// summary so it always reflects the current answers.
func (s *Session) OnNavigate(step int) error {
	if step == s.pack.SummaryStep() && step != s.wizard.Active() {
		_, err := s.OnGenerateSummary()
		return err
	}
	return s.goTo(step)
}

// OnNext moves to the next step. Leaving the quiz step needs a checked
// submission; at the last step it returns wizard.ErrStepNotFound.
func (s *Session) OnNext() error {
	if s.ActiveStep().Kind == content.KindQuiz && !s.quiz.Evaluated() {
		s.state.Status = ErrQuizPending.Error()
		return ErrQuizPending
	}
	return s.OnNavigate(s.wizard.Active() + 1)
}

// OnPrev moves to the previous step. At the first step it returns
// wizard.ErrStepNotFound.
func (s *Session) OnPrev() error {
	return s.OnNavigate(s.wizard.Active() - 1)
}

func (s *Session) goTo(step int) error {
	from := s.wizard.Active()
	if err := s.wizard.GoTo(step); err != nil {
		if !errors.Is(err, wizard.ErrStepNotFound) {
			s.log.Error("show step failed", zap.Int("step", step), zap.Error(err))
		}
		return err
	}
	s.state.Status = ""
	s.record(EventNavigate, map[string]any{"from": from, "to": step})
	return nil
}

// OnSearchSubmit adds raw to the search terms. When the active step has no
// match but another step does, the first such step is activated.
func (s *Session) OnSearchSubmit(raw string) SearchResult {
	term := strings.TrimSpace(raw)
	changed, marks := s.search.AddTerm(term)
	res := SearchResult{Changed: changed, Marks: marks}

	switch {
	case term == "":
		res.Status = "Enter a search term"
	case !changed:
		res.Status = fmt.Sprintf("Already highlighting %q", search.Normalize(term))
	case marks == 0:
		res.Status = "No matches found"
	default:
		res.Status = matchesStatus(marks)
		if sec, err := s.doc.Section(s.wizard.Active()); err == nil && s.search.MarksIn(sec) == 0 {
			if step, ok := s.search.FirstMatchStep(); ok && s.goTo(step) == nil {
				res.Jumped = step
			}
		}
	}

	s.state.Status = res.Status
	if changed {
		s.record(EventSearchAdd, map[string]any{"term": search.Normalize(term), "marks": marks, "jumped": res.Jumped})
	}
	return res
}

// OnSearchRemove removes term from the search terms.
func (s *Session) OnSearchRemove(term string) SearchResult {
	changed, marks := s.search.RemoveTerm(term)
	res := SearchResult{Changed: changed, Marks: marks}
	switch {
	case !changed:
		res.Status = fmt.Sprintf("Not highlighting %q", term)
	case len(s.search.Terms()) == 0:
		res.Status = "Search cleared"
	default:
		res.Status = matchesStatus(marks)
	}

	s.state.Status = res.Status
	if changed {
		s.record(EventSearchRemove, map[string]any{"term": search.Normalize(term), "marks": marks})
	}
	return res
}

func matchesStatus(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// OnQuizSubmit evaluates sub. On error the previous results are kept.
func (s *Session) OnQuizSubmit(sub quiz.Submission) (quiz.Evaluation, error) {
	eval, err := s.quiz.Evaluate(sub)
	if err != nil {
		s.log.Error("quiz evaluation failed", zap.Error(err))
		return quiz.Evaluation{}, err
	}
	s.eval = &eval
	s.state.Status = fmt.Sprintf("%d of %d correct", eval.Score(), len(eval.Outcomes))
	s.record(EventQuizSubmit, map[string]any{"answered": len(sub), "correct": eval.Score()})
	return eval, nil
}

// OnSliderChange sets slider id, clamping value into 0..100.
func (s *Session) OnSliderChange(id string, value int) error {
	if _, ok := s.state.Values[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlider, id)
	}
	v := clamp(value)
	s.state.Values[id] = v
	s.record(EventSlider, map[string]any{"slider": id, "value": v})
	return nil
}

// OnChoice selects optionID in group. An empty optionID clears the
// selection.
func (s *Session) OnChoice(group, optionID string) error {
	g, ok := s.pack.Choice(group)
	if !ok {
		return fmt.Errorf("%w: group %q", ErrUnknownChoice, group)
	}
	if optionID == "" {
		delete(s.state.Choices, group)
		s.record(EventChoice, map[string]any{"group": group, "option": ""})
		return nil
	}
	found := false
	for _, o := range g.Options {
		if o.ID == optionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s has no option %q", ErrUnknownChoice, group, optionID)
	}
	s.state.Choices[group] = optionID
	s.record(EventChoice, map[string]any{"group": group, "option": optionID})
	return nil
}

// OnText sets free-text field name. Surrounding whitespace is dropped.
func (s *Session) OnText(name, value string) error {
	if _, ok := s.pack.TextField(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(s.state.Text, name)
	} else {
		s.state.Text[name] = value
	}
	// Only the length is journaled; the text stays with the user.
	s.record(EventText, map[string]any{"field": name, "length": len(value)})
	return nil
}

// OnGenerateSummary builds the summary, writes it into the summary step,
// reapplies search highlighting and activates the summary step.
func (s *Session) OnGenerateSummary() (summary.Summary, error) {
	sum, err := s.writeSummary()
	if err != nil {
		return summary.Summary{}, err
	}
	if err := s.goTo(s.pack.SummaryStep()); err != nil {
		return summary.Summary{}, err
	}
	s.record(EventSummary, map[string]any{"review_needed": sum.ReviewNeeded})
	return sum, nil
}

func (s *Session) writeSummary() (summary.Summary, error) {
	choices := make(map[string]string, len(s.state.Choices))
	for group, id := range s.state.Choices {
		choices[group] = s.pack.ChoiceLabel(group, id)
	}
	sum := summary.Build(summary.Input{
		Sliders:       s.pack.Sliders,
		Values:        s.state.Values,
		Facts:         s.pack.Facts,
		Results:       s.quiz.Results(),
		Choices:       choices,
		NextSteps:     s.state.Choices[content.GroupNextSteps],
		NextStepsText: s.pack.NextStepsText,
		Text:          s.state.Text,
	})

	fragment, err := sum.HTML()
	if err != nil {
		return summary.Summary{}, fmt.Errorf("render summary: %w", err)
	}
	if err := s.doc.SetSummary(fragment); err != nil {
		s.log.Error("write summary failed", zap.Error(err))
		return summary.Summary{}, err
	}
	s.search.Rehighlight()

	s.summary = &sum
	s.state.SummaryReady = true
	return sum, nil
}

// OnToggleDisplayMode switches between visual and text mode.
func (s *Session) OnToggleDisplayMode() DisplayMode {
	if s.state.Mode == ModeVisual {
		s.state.Mode = ModeText
	} else {
		s.state.Mode = ModeVisual
	}
	s.applyMode()
	s.state.Status = fmt.Sprintf("%s mode", s.state.Mode)
	s.record(EventDisplayMode, map[string]any{"mode": string(s.state.Mode)})
	return s.state.Mode
}

func (s *Session) applyMode() {
	body := s.doc.Body()
	if s.state.Mode == ModeText {
		doc.RemoveClass(body, ClassVisualMode)
		doc.AddClass(body, ClassTextMode)
		return
	}
	doc.RemoveClass(body, ClassTextMode)
	doc.AddClass(body, ClassVisualMode)
}

// OnPrint prints the summary or the full aid through the configured
// printer and returns where the output went. The summary is rebuilt from
// the current inputs first, so the printout never shows stale values.
func (s *Session) OnPrint(ctx context.Context, kind printmode.Kind) (string, error) {
	if s.printer == nil {
		return "", errors.New("no printer configured")
	}
	if _, err := s.writeSummary(); err != nil {
		return "", err
	}

	header := printmode.Header{
		Title:       s.pack.Title,
		Developer:   s.pack.PrintHeader.Developer,
		LastUpdated: s.pack.PrintHeader.LastUpdated,
	}
	s.state.Printing = true
	out, err := printmode.Run(ctx, s.doc, kind, header, s.printer, s.now())
	s.state.Printing = false

	detail := map[string]any{"kind": string(kind), "ok": err == nil}
	s.record(EventPrint, detail)
	if err != nil {
		s.log.Warn("print failed", zap.String("kind", string(kind)), zap.Error(err))
		s.state.Status = "Print failed: " + err.Error()
		return "", err
	}
	s.state.Status = "Saved " + out
	return out, nil
}
