package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerms_AddDedupCaseInsensitive(t *testing.T) {
	var ts Terms
	assert.True(t, ts.Add("Foo"))
	assert.False(t, ts.Add("foo"))
	assert.False(t, ts.Add("  FOO  "))
	assert.Equal(t, []string{"foo"}, ts.List())
}

func TestTerms_AddEmpty(t *testing.T) {
	var ts Terms
	assert.False(t, ts.Add(""))
	assert.False(t, ts.Add("   \t"))
	assert.Equal(t, 0, ts.Len())
}

func TestTerms_RemoveMissingIsNoop(t *testing.T) {
	var ts Terms
	ts.Add("ai")
	ts.Add("care")

	assert.False(t, ts.Remove("privacy"))
	assert.Equal(t, []string{"ai", "care"}, ts.List())

	assert.True(t, ts.Remove("AI"))
	assert.Equal(t, []string{"care"}, ts.List())
}

func TestTerms_ListIsCopy(t *testing.T) {
	var ts Terms
	ts.Add("ai")
	l := ts.List()
	l[0] = "changed"
	assert.Equal(t, []string{"ai"}, ts.List())
}

func TestPattern(t *testing.T) {
	assert.Nil(t, Pattern(nil))

	re := Pattern([]string{"c++", "a.i"})
	assert.True(t, re.MatchString("I like C++"))
	assert.True(t, re.MatchString("A.I."))
	assert.False(t, re.MatchString("aXi"))
}

func TestPatternFoldsDottedCapitalI(t *testing.T) {
	term := Normalize("İstanbul")
	got := Split("Clinics in İstanbul and istanbul", []string{term})
	assert.Equal(t, []Segment{
		{Text: "Clinics in "},
		{Text: "İstanbul", Match: true},
		{Text: " and "},
		{Text: "istanbul", Match: true},
	}, got)

	re := Pattern([]string{"ai"})
	assert.True(t, re.MatchString("AI"))
	assert.True(t, re.MatchString("aİ"))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  []Segment
	}{
		{
			name:  "two terms preserve casing",
			text:  "AI helps care teams",
			terms: []string{"ai", "care"},
			want: []Segment{
				{Text: "AI", Match: true},
				{Text: " helps "},
				{Text: "care", Match: true},
				{Text: " teams"},
			},
		},
		{
			name:  "no match",
			text:  "nothing here",
			terms: []string{"ai"},
			want:  []Segment{{Text: "nothing here"}},
		},
		{
			name:  "no terms",
			text:  "plain",
			terms: nil,
			want:  []Segment{{Text: "plain"}},
		},
		{
			name:  "empty text",
			text:  "",
			terms: []string{"ai"},
			want:  nil,
		},
		{
			name:  "first registered term wins at same position",
			text:  "careful",
			terms: []string{"care", "careful"},
			want: []Segment{
				{Text: "care", Match: true},
				{Text: "ful"},
			},
		},
		{
			name:  "order reversed picks the longer term",
			text:  "careful",
			terms: []string{"careful", "care"},
			want:  []Segment{{Text: "careful", Match: true}},
		},
		{
			name:  "punctuation is literal",
			text:  "Is it (AI)? Yes.",
			terms: []string{"(ai)?"},
			want: []Segment{
				{Text: "Is it "},
				{Text: "(AI)?", Match: true},
				{Text: " Yes."},
			},
		},
		{
			name:  "multibyte text",
			text:  "Ärzte nutzen KI",
			terms: []string{"ärzte", "ki"},
			want: []Segment{
				{Text: "Ärzte", Match: true},
				{Text: " nutzen "},
				{Text: "KI", Match: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.terms)
			assert.Equal(t, tt.want, got)

			var b strings.Builder
			for _, s := range got {
				b.WriteString(s.Text)
			}
			assert.Equal(t, tt.text, b.String())
		})
	}
}
