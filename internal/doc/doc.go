// Package doc holds the content tree the decision aid renders from. It is
// an HTML document: the wizard toggles classes on it, the search
// highlighter rewrites its text nodes, the summary is written into it and
// the print path serializes it.
package doc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/content"
)

// ErrNodeNotFound is returned when an expected container is missing from
// the tree. It signals a structural bug, never a user error.
var ErrNodeNotFound = errors.New("content node not found")

// Class and id names shared with the page template and CSS.
const (
	ClassStep          = "step"
	ClassActiveStep    = "active-step"
	ClassProgressDone  = "active"
	ClassProgressBar   = "progressbar"
	SummaryContainerID = "summary-content"
)

// Document is the parsed content tree.
type Document struct {
	root     *html.Node
	body     *html.Node
	main     *html.Node
	steps    []*html.Node
	progress []*html.Node
}

// Build renders the pack into a page and parses it into a Document.
func Build(p *content.Pack) (*Document, error) {
	page, err := renderPage(p)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(page))
}

// Parse reads an HTML page and indexes its step sections and progress
// items.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	d := &Document{root: root}
	if bodies := ByTag(root, atom.Body); len(bodies) > 0 {
		d.body = bodies[0]
	}
	if mains := ByTag(root, atom.Main); len(mains) > 0 {
		d.main = mains[0]
	}
	if d.body == nil || d.main == nil {
		return nil, fmt.Errorf("%w: page has no body or main element", ErrNodeNotFound)
	}

	for i := 1; ; i++ {
		sec := ByID(d.main, "step-"+strconv.Itoa(i))
		if sec == nil {
			break
		}
		d.steps = append(d.steps, sec)
	}
	if len(d.steps) == 0 {
		return nil, fmt.Errorf("%w: page has no step sections", ErrNodeNotFound)
	}

	if bars := ByClass(root, ClassProgressBar); len(bars) > 0 {
		d.progress = ByTag(bars[0], atom.Li)
	}
	return d, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the body element.
func (d *Document) Body() *html.Node { return d.body }

// Main returns the searchable content container.
func (d *Document) Main() *html.Node { return d.main }

// StepCount returns the number of step sections.
func (d *Document) StepCount() int { return len(d.steps) }

// Section returns the container for 1-based step.
func (d *Document) Section(step int) (*html.Node, error) {
	if step < 1 || step > len(d.steps) {
		return nil, fmt.Errorf("%w: step-%d", ErrNodeNotFound, step)
	}
	return d.steps[step-1], nil
}

// StepOf returns the 1-based step whose section contains n, or 0.
func (d *Document) StepOf(n *html.Node) int {
	for ; n != nil; n = n.Parent {
		for i, sec := range d.steps {
			if n == sec {
				return i + 1
			}
		}
	}
	return 0
}

// ShowStep marks step as the only active section and sets the progress
// indicator. Every node is located before anything is modified, so a
// failure leaves the tree untouched.
func (d *Document) ShowStep(step int, completed []bool) error {
	target, err := d.Section(step)
	if err != nil {
		return err
	}
	if len(completed) != len(d.progress) {
		return fmt.Errorf("%w: want %d progress items, have %d", ErrNodeNotFound, len(completed), len(d.progress))
	}

	for _, sec := range d.steps {
		RemoveClass(sec, ClassActiveStep)
	}
	AddClass(target, ClassActiveStep)

	for i, li := range d.progress {
		if completed[i] {
			AddClass(li, ClassProgressDone)
		} else {
			RemoveClass(li, ClassProgressDone)
		}
	}
	return nil
}

// ActiveSteps returns the 1-based numbers of every section currently
// marked active.
func (d *Document) ActiveSteps() []int {
	var out []int
	for i, sec := range d.steps {
		if HasClass(sec, ClassActiveStep) {
			out = append(out, i+1)
		}
	}
	return out
}

// ProgressState returns the completed flag of each progress item.
func (d *Document) ProgressState() []bool {
	out := make([]bool, len(d.progress))
	for i, li := range d.progress {
		out[i] = HasClass(li, ClassProgressDone)
	}
	return out
}

// SummaryContainer returns the node the summary is written into.
func (d *Document) SummaryContainer() (*html.Node, error) {
	n := ByID(d.main, SummaryContainerID)
	if n == nil {
		return nil, fmt.Errorf("%w: #%s", ErrNodeNotFound, SummaryContainerID)
	}
	return n, nil
}

// SetSummary replaces the summary container's children with the parsed
// HTML fragment.
func (d *Document) SetSummary(fragment string) error {
	container, err := d.SummaryContainer()
	if err != nil {
		return err
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return fmt.Errorf("parse summary fragment: %w", err)
	}
	SetText(container, "")
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return nil
}

// Render serializes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}
