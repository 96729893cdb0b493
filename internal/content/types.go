package content

// SliderCount is the number of value dimensions every pack must define.
const SliderCount = 9

// Choice group names used by the decision step.
const (
	GroupComfort   = "comfort"
	GroupCertainty = "certainty"
	GroupNextSteps = "next_steps"
)

// Free-text field names.
const (
	FieldDecisionNotes = "decision_notes"
	FieldConcerns      = "concerns"
	FieldOtherReasons  = "other_reasons"
)

// Pack is the authored content of the decision aid.
type Pack struct {
	SchemaVersion string            `yaml:"schema_version"`
	MinAppVersion string            `yaml:"min_app_version"`
	Title         string            `yaml:"title"`
	PrintHeader   PrintHeader       `yaml:"print_header"`
	Steps         []Step            `yaml:"steps"`
	Questions     []Question        `yaml:"questions"`
	Facts         []FactGroup       `yaml:"facts"`
	Sliders       []Slider          `yaml:"sliders"`
	Choices       []ChoiceGroup     `yaml:"choices"`
	NextStepsText map[string]string `yaml:"next_steps_text"`
	TextFields    []TextField       `yaml:"text_fields"`
}

// PrintHeader is injected at the top of the summary while printing.
type PrintHeader struct {
	Developer   string `yaml:"developer"`
	LastUpdated string `yaml:"last_updated"`
}

// StepKind selects the interactive panel shown below a step's body.
type StepKind string

const (
	KindInfo     StepKind = "info"
	KindQuiz     StepKind = "quiz"
	KindValues   StepKind = "values"
	KindDecision StepKind = "decision"
	KindSummary  StepKind = "summary"
)

// Step is one screen of the wizard. Body is Markdown.
type Step struct {
	Title string   `yaml:"title"`
	Kind  StepKind `yaml:"kind"`
	Body  string   `yaml:"body"`
}

// Question is a single-choice quiz prompt.
type Question struct {
	ID      int      `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Options []Option `yaml:"options"`
}

// Option is one answer of a quiz question, tagged correct or incorrect by
// the content authors.
type Option struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Correct  bool   `yaml:"correct"`
	Feedback string `yaml:"feedback"`
}

// FactGroup holds the fact statements tied to one quiz question.
type FactGroup struct {
	QuestionID int      `yaml:"question"`
	Statements []string `yaml:"statements"`
}

// Slider is one preference dimension rated between AI (0) and human (100).
type Slider struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// ChoiceGroup is a named single-choice input.
type ChoiceGroup struct {
	Name    string         `yaml:"name"`
	Prompt  string         `yaml:"prompt"`
	Options []ChoiceOption `yaml:"options"`
}

// ChoiceOption is one option of a ChoiceGroup.
type ChoiceOption struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// TextField is a free-text input.
type TextField struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
}

// SummaryStep returns the 1-based number of the final step, which hosts the
// summary.
func (p *Pack) SummaryStep() int {
	return len(p.Steps)
}

// StepOf returns the 1-based number of the first step of the given kind,
// or 0 when the pack has none.
func (p *Pack) StepOf(kind StepKind) int {
	for i, s := range p.Steps {
		if s.Kind == kind {
			return i + 1
		}
	}
	return 0
}

// Choice returns the choice group with the given name.
func (p *Pack) Choice(name string) (ChoiceGroup, bool) {
	for _, g := range p.Choices {
		if g.Name == name {
			return g, true
		}
	}
	return ChoiceGroup{}, false
}

// ChoiceLabel returns the label of option id in group name, or "" when
// either is unknown.
func (p *Pack) ChoiceLabel(name, id string) string {
	g, ok := p.Choice(name)
	if !ok {
		return ""
	}
	for _, o := range g.Options {
		if o.ID == id {
			return o.Label
		}
	}
	return ""
}

// TextField returns the free-text field with the given name.
func (p *Pack) TextField(name string) (TextField, bool) {
	for _, f := range p.TextFields {
		if f.Name == name {
			return f, true
		}
	}
	return TextField{}, false
}
