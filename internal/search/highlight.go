package search

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/doc"
)

// MarkClass tags the highlight elements the highlighter owns.
const MarkClass = "search-hit"

// StepLocator maps a node to the 1-based step containing it, 0 for none.
type StepLocator interface {
	StepOf(n *html.Node) int
}

// Highlighter owns the term set and keeps the tree's highlight marks in
// sync with it.
type Highlighter struct {
	root  *html.Node
	steps StepLocator
	terms Terms
}

// NewHighlighter creates a highlighter over the subtree at root. steps
// may be nil when step lookups are not needed.
func NewHighlighter(root *html.Node, steps StepLocator) *Highlighter {
	return &Highlighter{root: root, steps: steps}
}

// Terms returns the active terms in insertion order.
func (h *Highlighter) Terms() []string {
	return h.terms.List()
}

// AddTerm adds raw to the set and rehighlights when the set changed. It
// returns whether the set changed and the resulting mark count.
func (h *Highlighter) AddTerm(raw string) (bool, int) {
	if !h.terms.Add(raw) {
		return false, len(h.Marks())
	}
	return true, h.Rehighlight()
}

// RemoveTerm removes term and rehighlights when the set changed.
func (h *Highlighter) RemoveTerm(term string) (bool, int) {
	if !h.terms.Remove(term) {
		return false, len(h.Marks())
	}
	return true, h.Rehighlight()
}

// Rehighlight removes every existing mark, then wraps each match of the
// current terms in a new mark. It returns the number of marks. Running it
// twice in a row leaves the tree unchanged.
func (h *Highlighter) Rehighlight() int {
	h.clear()

	re := Pattern(h.terms.List())
	if re == nil {
		return 0
	}

	var targets []*html.Node
	collectText(h.root, &targets)

	count := 0
	for _, n := range targets {
		segs := segmentWith(n.Data, re)
		if !HasMatch(segs) {
			continue
		}
		parent := n.Parent
		for _, s := range segs {
			if !s.Match {
				doc.InsertBefore(parent, doc.Text(s.Text), n)
				continue
			}
			mark := doc.Element(atom.Mark, html.Attribute{Key: "class", Val: MarkClass})
			mark.AppendChild(doc.Text(s.Text))
			doc.InsertBefore(parent, mark, n)
			count++
		}
		parent.RemoveChild(n)
	}
	return count
}

// Marks returns the highlight marks in document order.
func (h *Highlighter) Marks() []*html.Node {
	return marksUnder(h.root)
}

// MarksIn returns the number of marks under n.
func (h *Highlighter) MarksIn(n *html.Node) int {
	if n == nil {
		return 0
	}
	return len(marksUnder(n))
}

// FirstMatchStep returns the step holding the first mark in document
// order.
func (h *Highlighter) FirstMatchStep() (int, bool) {
	if h.steps == nil {
		return 0, false
	}
	for _, m := range h.Marks() {
		if step := h.steps.StepOf(m); step > 0 {
			return step, true
		}
	}
	return 0, false
}

// clear replaces every mark with its text and merges the text back into
// its neighbours.
func (h *Highlighter) clear() {
	parents := make(map[*html.Node]struct{})
	var order []*html.Node
	for _, m := range h.Marks() {
		parent := m.Parent
		if parent == nil {
			continue
		}
		doc.InsertBefore(parent, doc.Text(doc.TextContent(m)), m)
		parent.RemoveChild(m)
		if _, seen := parents[parent]; !seen {
			parents[parent] = struct{}{}
			order = append(order, parent)
		}
	}
	for _, p := range order {
		doc.Normalize(p)
	}
}

func isMark(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Mark && doc.HasClass(n, MarkClass)
}

func marksUnder(root *html.Node) []*html.Node {
	return doc.FindAll(root, isMark)
}

// collectText appends the non-empty text nodes under n, skipping subtrees
// that are not rendered as content and existing marks.
func collectText(n *html.Node, out *[]*html.Node) {
	switch {
	case n.Type == html.TextNode:
		if n.Data != "" && n.Parent != nil {
			*out = append(*out, n)
		}
		return
	case n.Type == html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Mark, atom.Noscript, atom.Template:
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}
