// Package printmode prepares the content tree for printing and restores it
// afterwards.
package printmode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/doc"
)

// Kind selects what is printed.
type Kind string

const (
	KindSummary Kind = "summary"
	KindFull    Kind = "full"
)

// Body classes set while printing, and the injected header's id.
const (
	ClassSummaryMode = "print-summary-mode"
	ClassFullMode    = "print-full-mode"
	HeaderID         = "print-header-info"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSummary, KindFull:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown print kind %q (want summary or full)", s)
}

func (k Kind) class() string {
	if k == KindFull {
		return ClassFullMode
	}
	return ClassSummaryMode
}

// Header is the identifying block shown at the top of a printout.
type Header struct {
	Title       string
	Developer   string
	LastUpdated string
}

// Printer renders the prepared document.
type Printer interface {
	Print(ctx context.Context, d *doc.Document, kind Kind) (string, error)
}

// Scope is an entered print mode. Exit must be called exactly once the
// print interaction is over, whatever its outcome.
type Scope struct {
	doc    *doc.Document
	header *html.Node
	done   bool
}

// Enter injects the print header at the top of the summary step (unless
// one is already there) and sets the body class for kind.
func Enter(d *doc.Document, kind Kind, h Header, now time.Time) (*Scope, error) {
	sec, err := d.Section(d.StepCount())
	if err != nil {
		return nil, err
	}

	s := &Scope{doc: d}
	if doc.ByID(d.Root(), HeaderID) == nil {
		s.header = headerNode(h, now)
		doc.InsertBefore(sec, s.header, sec.FirstChild)
	}

	body := d.Body()
	doc.RemoveClass(body, ClassSummaryMode)
	doc.RemoveClass(body, ClassFullMode)
	doc.AddClass(body, kind.class())
	return s, nil
}

// Exit clears the print classes and removes the header this scope
// injected. A header that was already present is left alone. Calling it
// again is a no-op.
func (s *Scope) Exit() {
	if s == nil || s.done {
		return
	}
	s.done = true

	body := s.doc.Body()
	doc.RemoveClass(body, ClassSummaryMode)
	doc.RemoveClass(body, ClassFullMode)
	if s.header != nil && s.header.Parent != nil {
		s.header.Parent.RemoveChild(s.header)
	}
}

// Run prints d inside a print-mode scope. The scope is exited whether the
// printer succeeded, failed or ctx was cancelled.
func Run(ctx context.Context, d *doc.Document, kind Kind, h Header, p Printer, now time.Time) (string, error) {
	scope, err := Enter(d, kind, h, now)
	if err != nil {
		return "", fmt.Errorf("enter print mode: %w", err)
	}
	defer scope.Exit()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := p.Print(ctx, d, kind)
	if err != nil {
		return "", fmt.Errorf("print %s: %w", kind, err)
	}
	return out, nil
}

func headerNode(h Header, now time.Time) *html.Node {
	div := doc.Element(atom.Div,
		html.Attribute{Key: "id", Val: HeaderID},
		html.Attribute{Key: "class", Val: "print-only-header"},
	)
	title := doc.Element(atom.H2)
	title.AppendChild(doc.Text(h.Title))
	div.AppendChild(title)

	for _, row := range [][2]string{
		{"Developed by:", h.Developer},
		{"Last Updated:", h.LastUpdated},
		{"Date Printed:", now.Format("01/02/2006 3:04:05 PM")},
	} {
		p := doc.Element(atom.P)
		strong := doc.Element(atom.Strong)
		strong.AppendChild(doc.Text(row[0]))
		p.AppendChild(strong)
		p.AppendChild(doc.Text(" " + row[1]))
		div.AppendChild(p)
	}
	return div
}

// FilePrinter writes the document as a standalone HTML file, which a
// browser can print with the embedded print styles.
type FilePrinter struct {
	Dir string
	Now func() time.Time
}

// Print writes <Dir>/careaid-<kind>-<timestamp>.html and returns its path.
func (p FilePrinter) Print(ctx context.Context, d *doc.Document, kind Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	dir := p.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("careaid-%s-%s.html", kind, now().Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
