// Package quiz evaluates submissions of the understanding check.
package quiz

import (
	"errors"
	"fmt"
	"maps"

	"github.com/abhisek/careaid/internal/content"
)

var (
	// ErrUnknownQuestion is returned for a submission naming a question the
	// quiz does not have.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrUnknownOption is returned for a selection that is not an option of
	// its question.
	ErrUnknownOption = errors.New("unknown option")
)

// Submission maps question id to the selected option id. Unanswered
// questions are absent.
type Submission map[int]string

// Outcome is the evaluation of a single question.
type Outcome struct {
	QuestionID int
	Answered   bool
	Correct    bool
	Feedback   string
}

// Evaluation is the result of one submission, in question order.
type Evaluation struct {
	Outcomes []Outcome
}

// Results returns the question id -> answered correctly map.
func (e Evaluation) Results() map[int]bool {
	out := make(map[int]bool, len(e.Outcomes))
	for _, o := range e.Outcomes {
		out[o.QuestionID] = o.Correct
	}
	return out
}

// Score returns the number of correct answers.
func (e Evaluation) Score() int {
	n := 0
	for _, o := range e.Outcomes {
		if o.Correct {
			n++
		}
	}
	return n
}

// Outcome returns the outcome for question id.
func (e Evaluation) Outcome(id int) (Outcome, bool) {
	for _, o := range e.Outcomes {
		if o.QuestionID == id {
			return o, true
		}
	}
	return Outcome{}, false
}

// Engine holds the questions and the results of the latest evaluation.
type Engine struct {
	questions []content.Question
	results   map[int]bool
	evaluated bool
}

// NewEngine creates an engine over questions.
func NewEngine(questions []content.Question) *Engine {
	return &Engine{
		questions: questions,
		results:   make(map[int]bool),
	}
}

// Questions returns the questions in content order.
func (e *Engine) Questions() []content.Question {
	return e.questions
}

// Evaluate scores sub against every question. On success the stored
// results are replaced; on error they are left as they were.
func (e *Engine) Evaluate(sub Submission) (Evaluation, error) {
	for id := range sub {
		if _, ok := e.question(id); !ok {
			return Evaluation{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
		}
	}

	eval := Evaluation{Outcomes: make([]Outcome, 0, len(e.questions))}
	for _, q := range e.questions {
		out := Outcome{QuestionID: q.ID}
		if sel, ok := sub[q.ID]; ok {
			opt, found := findOption(q, sel)
			if !found {
				return Evaluation{}, fmt.Errorf("%w: question %d has no option %q", ErrUnknownOption, q.ID, sel)
			}
			out.Answered = true
			out.Correct = opt.Correct
			out.Feedback = opt.Feedback
		}
		eval.Outcomes = append(eval.Outcomes, out)
	}

	e.results = eval.Results()
	e.evaluated = true
	return eval, nil
}

// Results returns a copy of the latest question id -> correct map.
func (e *Engine) Results() map[int]bool {
	return maps.Clone(e.results)
}

// Evaluated reports whether at least one submission was evaluated.
func (e *Engine) Evaluated() bool {
	return e.evaluated
}

func (e *Engine) question(id int) (content.Question, bool) {
	for _, q := range e.questions {
		if q.ID == id {
			return q, true
		}
	}
	return content.Question{}, false
}

func findOption(q content.Question, id string) (content.Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return content.Option{}, false
}
