package doc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/content"
)

func testPack() *content.Pack {
	return &content.Pack{
		Title: "Test Aid",
		Steps: []content.Step{
			{Title: "Learn", Kind: content.KindInfo, Body: "# Learn\n\nAI helps **care** teams."},
			{Title: "Quiz", Kind: content.KindQuiz, Body: "Answer the questions."},
			{Title: "Summary", Kind: content.KindSummary, Body: "Your summary."},
		},
	}
}

func testDoc(t *testing.T) *Document {
	t.Helper()
	d, err := Build(testPack())
	require.NoError(t, err)
	return d
}

func TestBuild(t *testing.T) {
	d := testDoc(t)

	assert.Equal(t, 3, d.StepCount())
	assert.Len(t, d.ProgressState(), 3)
	assert.Empty(t, d.ActiveSteps())

	sec, err := d.Section(1)
	require.NoError(t, err)
	assert.Contains(t, TextContent(sec), "AI helps care teams.")
	kind, ok := Attr(sec, "data-kind")
	require.True(t, ok)
	assert.Equal(t, "info", kind)

	assert.True(t, HasClass(d.Body(), "visual-mode"))

	_, err = d.SummaryContainer()
	require.NoError(t, err)
}

func TestShowStep(t *testing.T) {
	d := testDoc(t)

	for step := 1; step <= 3; step++ {
		completed := make([]bool, 3)
		for i := range completed {
			completed[i] = i < step
		}
		require.NoError(t, d.ShowStep(step, completed))
		assert.Equal(t, []int{step}, d.ActiveSteps())
		assert.Equal(t, completed, d.ProgressState())
	}
}

func TestShowStep_MissingNodeLeavesTreeUntouched(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.ShowStep(2, []bool{true, true, false}))

	tests := []struct {
		name      string
		step      int
		completed []bool
	}{
		{"step zero", 0, []bool{false, false, false}},
		{"step past end", 4, []bool{true, true, true}},
		{"progress length mismatch", 1, []bool{true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.ShowStep(tt.step, tt.completed)
			assert.True(t, errors.Is(err, ErrNodeNotFound))
			assert.Equal(t, []int{2}, d.ActiveSteps())
			assert.Equal(t, []bool{true, true, false}, d.ProgressState())
		})
	}
}

func TestStepOf(t *testing.T) {
	d := testDoc(t)

	sec, err := d.Section(1)
	require.NoError(t, err)
	leaf := Find(sec, func(n *html.Node) bool {
		return n.Type == html.TextNode && strings.Contains(n.Data, "care")
	})
	require.NotNil(t, leaf)
	assert.Equal(t, 1, d.StepOf(leaf))
	assert.Equal(t, 0, d.StepOf(d.Body()))
}

func TestSetSummary(t *testing.T) {
	d := testDoc(t)

	require.NoError(t, d.SetSummary(`<h3>Values</h3><p>first</p>`))
	c, err := d.SummaryContainer()
	require.NoError(t, err)
	assert.Equal(t, "Valuesfirst", TextContent(c))

	require.NoError(t, d.SetSummary(`<p>second</p>`))
	assert.Equal(t, "second", TextContent(c))
	assert.Equal(t, 3, d.StepOf(c.FirstChild))
}

func TestParse_MissingSections(t *testing.T) {
	_, err := Parse(strings.NewReader(`<html><body><main><p>no steps</p></main></body></html>`))
	assert.ErrorIs(t, err, ErrNodeNotFound)

	d, err := Parse(strings.NewReader(`<html><body><main><section id="step-1"></section></main></body></html>`))
	require.NoError(t, err)
	_, err = d.SummaryContainer()
	assert.ErrorIs(t, err, ErrNodeNotFound)
	assert.ErrorIs(t, d.SetSummary("<p>x</p>"), ErrNodeNotFound)
}

func TestRender(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.ShowStep(1, []bool{true, false, false}))

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, `class="step active-step"`)
	assert.Contains(t, out, "@media print")
	assert.Contains(t, out, `id="summary-content"`)
}

func TestClassHelpers(t *testing.T) {
	n := Element(atom.Span)
	AddClass(n, "a")
	AddClass(n, "b")
	AddClass(n, "a")
	assert.Equal(t, []string{"a", "b"}, Classes(n))

	RemoveClass(n, "a")
	assert.Equal(t, []string{"b"}, Classes(n))
	RemoveClass(n, "b")
	_, ok := Attr(n, "class")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	p := Element(atom.P)
	p.AppendChild(Text("AI "))
	p.AppendChild(Text(""))
	p.AppendChild(Text("helps"))
	p.AppendChild(Element(atom.Br))
	p.AppendChild(Text(" care"))

	Normalize(p)
	kids := Children(p)
	require.Len(t, kids, 3)
	assert.Equal(t, "AI helps", kids[0].Data)
	assert.Equal(t, " care", kids[2].Data)
}
