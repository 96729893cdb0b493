// Package summary folds the user's answers into the printable summary.
// Everything here is a pure function of its input.
package summary

import (
	"github.com/abhisek/careaid/internal/content"
)

// Preference labels for a slider value.
const (
	StronglyAI    = "Strongly leans towards accepting AI use"
	ModeratelyAI  = "Moderately leans towards accepting AI use"
	Neutral       = "Undecided / Neutral"
	ModerateHuman = "Moderately leans towards Human-only care"
	StrongHuman   = "Strongly leans towards Human-only care"
)

// Fallbacks for empty inputs.
const (
	NotAnswered = "Not answered"
	None        = "None"
)

// Label maps a slider value to its preference label. The strong bands
// include 25 and 75; exactly 50 is neutral.
func Label(v int) string {
	switch {
	case v <= 25:
		return StronglyAI
	case v < 50:
		return ModeratelyAI
	case v == 50:
		return Neutral
	case v < 75:
		return ModerateHuman
	default:
		return StrongHuman
	}
}

// Input is everything the summary is built from.
type Input struct {
	Sliders []content.Slider
	Values  map[string]int
	Facts   []content.FactGroup
	Results map[int]bool
	// Choices maps a choice group to the label of the selected option.
	Choices map[string]string
	// NextSteps is the selected next-steps option id.
	NextSteps     string
	NextStepsText map[string]string
	Text          map[string]string
}

// ValueLine is one slider in the summary.
type ValueLine struct {
	ID         string
	Label      string
	Value      int
	Preference string
}

// Summary is the display-ready projection of the session.
type Summary struct {
	Values        []ValueLine
	OtherReasons  string
	Understood    []string
	Review        []string
	ReviewNeeded  bool
	Comfort       string
	Certainty     string
	DecisionNotes string
	Concerns      string
	NextSteps     string
}

// Build assembles the summary. Sliders without a value are reported at
// the neutral midpoint. in is not modified.
func Build(in Input) Summary {
	var s Summary

	for _, sl := range in.Sliders {
		v, ok := in.Values[sl.ID]
		if !ok {
			v = 50
		}
		s.Values = append(s.Values, ValueLine{
			ID:         sl.ID,
			Label:      sl.Label,
			Value:      v,
			Preference: Label(v),
		})
	}
	s.OtherReasons = in.Text[content.FieldOtherReasons]

	for _, g := range in.Facts {
		if in.Results[g.QuestionID] {
			s.Understood = append(s.Understood, g.Statements...)
		} else {
			s.Review = append(s.Review, g.Statements...)
		}
	}
	s.ReviewNeeded = len(s.Review) > 0

	s.Comfort = orDefault(in.Choices[content.GroupComfort], NotAnswered)
	s.Certainty = orDefault(in.Choices[content.GroupCertainty], NotAnswered)
	s.DecisionNotes = orDefault(in.Text[content.FieldDecisionNotes], None)
	s.Concerns = orDefault(in.Text[content.FieldConcerns], None)
	if in.NextSteps != "" {
		s.NextSteps = in.NextStepsText[in.NextSteps]
	}
	return s
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
