package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPack []byte

// ErrInvalidPack wraps every content pack validation failure.
var ErrInvalidPack = errors.New("invalid content pack")

// Default returns the embedded content pack.
func Default() (*Pack, error) {
	return Parse(defaultPack)
}

// Load reads and validates the pack at path. An empty path selects the
// embedded pack.
func Load(path string) (*Pack, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML pack, validates it against PackSchema and runs the
// semantic checks.
func Parse(data []byte) (*Pack, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidPack, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPack, err)
	}

	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidPack, err)
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Check runs the cross-reference checks the schema cannot express.
// All problems are reported together.
func (p *Pack) Check() error {
	var problems []string

	if len(p.Steps) == 0 {
		problems = append(problems, "pack has no steps")
	} else if last := p.Steps[len(p.Steps)-1]; last.Kind != KindSummary {
		problems = append(problems, fmt.Sprintf("last step must be the summary, got %q", last.Kind))
	}

	if len(p.Sliders) != SliderCount {
		problems = append(problems, fmt.Sprintf("want %d sliders, got %d", SliderCount, len(p.Sliders)))
	}
	sliderIDs := make(map[string]bool)
	for _, s := range p.Sliders {
		if sliderIDs[s.ID] {
			problems = append(problems, fmt.Sprintf("duplicate slider %q", s.ID))
		}
		sliderIDs[s.ID] = true
	}

	questionIDs := make(map[int]bool)
	for _, q := range p.Questions {
		if questionIDs[q.ID] {
			problems = append(problems, fmt.Sprintf("duplicate question %d", q.ID))
		}
		questionIDs[q.ID] = true

		correct := 0
		optionIDs := make(map[string]bool)
		for _, o := range q.Options {
			if optionIDs[o.ID] {
				problems = append(problems, fmt.Sprintf("question %d: duplicate option %q", q.ID, o.ID))
			}
			optionIDs[o.ID] = true
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			problems = append(problems, fmt.Sprintf("question %d: want exactly one correct option, got %d", q.ID, correct))
		}
	}
	if len(p.Questions) > 0 && p.StepOf(KindQuiz) == 0 {
		problems = append(problems, "pack has questions but no quiz step")
	}

	for _, f := range p.Facts {
		if !questionIDs[f.QuestionID] {
			problems = append(problems, fmt.Sprintf("facts reference unknown question %d", f.QuestionID))
		}
	}

	for _, name := range []string{GroupComfort, GroupCertainty, GroupNextSteps} {
		if _, ok := p.Choice(name); !ok {
			problems = append(problems, fmt.Sprintf("missing choice group %q", name))
		}
	}
	if g, ok := p.Choice(GroupNextSteps); ok {
		for _, o := range g.Options {
			if _, ok := p.NextStepsText[o.ID]; !ok {
				problems = append(problems, fmt.Sprintf("next_steps_text missing entry for %q", o.ID))
			}
		}
	}

	for _, name := range []string{FieldDecisionNotes, FieldConcerns, FieldOtherReasons} {
		if _, ok := p.TextField(name); !ok {
			problems = append(problems, fmt.Sprintf("missing text field %q", name))
		}
	}

	if p.MinAppVersion != "" && !semver.IsValid(p.MinAppVersion) {
		problems = append(problems, fmt.Sprintf("min_app_version %q is not a semantic version", p.MinAppVersion))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPack, strings.Join(problems, "; "))
	}
	return nil
}

// CheckAppVersion reports whether the running app satisfies the pack's
// min_app_version. Development builds always pass.
func (p *Pack) CheckAppVersion(appVersion string) error {
	if p.MinAppVersion == "" || appVersion == "(devel)" {
		return nil
	}
	v := appVersion
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return nil
	}
	if semver.Compare(v, p.MinAppVersion) < 0 {
		return fmt.Errorf("%w: requires app version %s or newer, running %s", ErrInvalidPack, p.MinAppVersion, v)
	}
	return nil
}
