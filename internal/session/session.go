// Package session owns the state of one run of the decision aid and
// exposes one command handler per user action. Each handler maps to a
// single core operation and records a journal event.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/careaid/internal/content"
	"github.com/abhisek/careaid/internal/doc"
	"github.com/abhisek/careaid/internal/printmode"
	"github.com/abhisek/careaid/internal/quiz"
	"github.com/abhisek/careaid/internal/search"
	"github.com/abhisek/careaid/internal/store"
	"github.com/abhisek/careaid/internal/summary"
	"github.com/abhisek/careaid/internal/wizard"
)

var (
	// ErrUnknownSlider is returned for a slider id the pack does not define.
	ErrUnknownSlider = errors.New("unknown slider")

	// ErrUnknownField is returned for a free-text field the pack does not
	// define.
	ErrUnknownField = errors.New("unknown text field")

	// ErrUnknownChoice is returned for a choice group or option the pack
	// does not define.
	ErrUnknownChoice = errors.New("unknown choice")

	// ErrQuizPending is returned when leaving the quiz step before the
	// answers were checked.
	ErrQuizPending = errors.New("check your answers before continuing")
)

// Options configures a new Session. Pack is required.
type Options struct {
	Pack      *content.Pack
	Journal   store.EventRepo
	Logger    *zap.Logger
	Printer   printmode.Printer
	Mode      DisplayMode
	StartStep int
	Now       func() time.Time
}

// Session is the single writer of all session state. It is not safe for
// concurrent use; the TUI drives it from its update loop.
type Session struct {
	id      string
	pack    *content.Pack
	doc     *doc.Document
	wizard  *wizard.Controller
	quiz    *quiz.Engine
	search  *search.Highlighter
	state   State
	eval    *quiz.Evaluation
	summary *summary.Summary
	journal store.EventRepo
	log     *zap.Logger
	printer printmode.Printer
	now     func() time.Time
}

// New builds the content tree for opts.Pack and activates the start step.
func New(opts Options) (*Session, error) {
	if opts.Pack == nil {
		return nil, errors.New("session needs a content pack")
	}
	d, err := doc.Build(opts.Pack)
	if err != nil {
		return nil, fmt.Errorf("build content: %w", err)
	}
	w, err := wizard.New(d, d.StepCount())
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:      uuid.New().String(),
		pack:    opts.Pack,
		doc:     d,
		wizard:  w,
		quiz:    quiz.NewEngine(opts.Pack.Questions),
		search:  search.NewHighlighter(d.Main(), d),
		journal: opts.Journal,
		log:     opts.Logger,
		printer: opts.Printer,
		now:     opts.Now,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.log = s.log.With(zap.String("session_id", s.id))

	mode := opts.Mode
	if mode == "" {
		mode = ModeVisual
	}
	ids := make([]string, len(opts.Pack.Sliders))
	for i, sl := range opts.Pack.Sliders {
		ids[i] = sl.ID
	}
	s.state = newState(ids, mode)
	s.applyMode()

	start := opts.StartStep
	if start == 0 {
		start = 1
	}
	if err := s.wizard.GoTo(start); err != nil {
		return nil, err
	}
	s.record(EventStart, map[string]any{"step": start, "steps": w.Steps()})
	return s, nil
}

// ID returns the session id stamped on journal events.
func (s *Session) ID() string { return s.id }

// Pack returns the content pack.
func (s *Session) Pack() *content.Pack { return s.pack }

// Doc returns the content tree.
func (s *Session) Doc() *doc.Document { return s.doc }

// Active returns the 1-based active step.
func (s *Session) Active() int { return s.wizard.Active() }

// Steps returns the number of steps.
func (s *Session) Steps() int { return s.wizard.Steps() }

// ActiveStep returns the content of the active step.
func (s *Session) ActiveStep() content.Step { return s.pack.Steps[s.wizard.Active()-1] }

// Progress returns the completed flag of each progress item.
func (s *Session) Progress() []bool { return s.wizard.Progress() }

// State returns a copy of the session-owned state.
func (s *Session) State() State { return s.state.clone() }

// Value returns the rating of slider id.
func (s *Session) Value(id string) int { return s.state.Values[id] }

// Choice returns the selected option id of group, or "".
func (s *Session) Choice(group string) string { return s.state.Choices[group] }

// Text returns the value of free-text field name.
func (s *Session) Text(name string) string { return s.state.Text[name] }

// Mode returns the display mode.
func (s *Session) Mode() DisplayMode { return s.state.Mode }

// Status returns the message about the last action.
func (s *Session) Status() string { return s.state.Status }

// Terms returns the active search terms.
func (s *Session) Terms() []string { return s.search.Terms() }

// MarkCount returns the number of highlight marks in the whole tree.
func (s *Session) MarkCount() int { return len(s.search.Marks()) }

// Evaluation returns the latest quiz evaluation.
func (s *Session) Evaluation() (quiz.Evaluation, bool) {
	if s.eval == nil {
		return quiz.Evaluation{}, false
	}
	return *s.eval, true
}

// QuizResults returns the latest question id -> correct map.
func (s *Session) QuizResults() map[int]bool { return s.quiz.Results() }

// Summary returns the last generated summary.
func (s *Session) Summary() (summary.Summary, bool) {
	if s.summary == nil {
		return summary.Summary{}, false
	}
	return *s.summary, true
}

// CanAdvance reports whether Next may leave the active step. The quiz
// step requires one checked submission first.
func (s *Session) CanAdvance() bool {
	if s.ActiveStep().Kind == content.KindQuiz && !s.quiz.Evaluated() {
		return false
	}
	return !s.wizard.IsLast()
}
