// Package richtext renders a section of the content tree as styled
// terminal text.
package richtext

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/doc"
	"github.com/abhisek/careaid/internal/search"
	"github.com/abhisek/careaid/internal/ui/theme"
)

// Options controls rendering.
type Options struct {
	// Width is the wrap width. Values below 10 are raised to 10.
	Width int

	// TextMode hides the visual preference bars.
	TextMode bool
}

// run is a piece of inline text with its style.
type run struct {
	text  string
	style lipgloss.Style
	hard  bool // line break
}

type renderer struct {
	opts Options
}

// Render returns the lines for the children of n.
func Render(n *html.Node, opts Options) []string {
	if opts.Width < 10 {
		opts.Width = 10
	}
	r := renderer{opts: opts}
	return trimBlank(r.blocks(n, opts.Width))
}

// String renders n and joins the lines.
func String(n *html.Node, opts Options) string {
	return strings.Join(Render(n, opts), "\n")
}

func (r renderer) blocks(n *html.Node, width int) []string {
	var lines []string
	var runs []run
	flush := func() {
		if text := joinRuns(runs); text != "" {
			lines = appendBlock(lines, wrap(text, width))
		}
		runs = nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r.skip(c) {
			continue
		}
		if c.Type == html.ElementNode && isBlock(c) {
			flush()
			lines = appendBlock(lines, r.block(c, width))
			continue
		}
		r.inline(c, lipgloss.NewStyle().Foreground(theme.Text), &runs)
	}
	flush()
	return lines
}

func (r renderer) block(n *html.Node, width int) []string {
	switch n.DataAtom {
	case atom.H1, atom.H2:
		text := joinRuns(r.inlineOf(n, theme.Heading.Underline(true)))
		return append(wrap(text, width), "")
	case atom.H3, atom.H4, atom.H5, atom.H6:
		text := joinRuns(r.inlineOf(n, theme.Heading))
		return append(wrap(text, width), "")
	case atom.P:
		return append(r.blocks(n, width), "")
	case atom.Ul, atom.Ol:
		return append(r.list(n, width), "")
	case atom.Hr:
		return []string{lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)), ""}
	case atom.Pre:
		style := lipgloss.NewStyle().Foreground(theme.Accent)
		var out []string
		for _, l := range strings.Split(strings.TrimRight(doc.TextContent(n), "\n"), "\n") {
			out = append(out, style.Render(l))
		}
		return append(out, "")
	case atom.Blockquote:
		inner := r.blocks(n, width-2)
		bar := lipgloss.NewStyle().Foreground(theme.Border).Render("│ ")
		for i, l := range inner {
			inner[i] = bar + l
		}
		return append(inner, "")
	}
	if doc.HasClass(n, "pref-bar") {
		return []string{r.prefBar(n, width)}
	}
	return r.blocks(n, width)
}

func (r renderer) list(n *html.Node, width int) []string {
	var out []string
	num := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li || r.skip(c) {
			continue
		}
		num++
		bullet := "• "
		if n.DataAtom == atom.Ol {
			bullet = strconv.Itoa(num) + ". "
		}
		pad := strings.Repeat(" ", ansi.StringWidth(bullet))
		item := trimBlank(r.blocks(c, width-len(pad)))
		if len(item) == 0 {
			item = []string{""}
		}
		for i, l := range item {
			if i == 0 {
				out = append(out, lipgloss.NewStyle().Foreground(theme.Secondary).Render(bullet)+l)
			} else {
				out = append(out, pad+l)
			}
		}
	}
	return out
}

// prefBar draws a 0..100 preference value as a track with a dot.
func (r renderer) prefBar(n *html.Node, width int) string {
	v, _ := doc.Attr(n, "data-value")
	value, err := strconv.Atoi(v)
	if err != nil {
		value = 50
	}
	value = min(max(value, 0), 100)

	left, right := "AI ", " Human"
	track := max(width-len(left)-len(right)-4, 10)
	pos := value * (track - 1) / 100

	dim := lipgloss.NewStyle().Foreground(theme.Border)
	dot := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	return fmt.Sprintf("  %s%s%s%s%s",
		label.Render(left),
		dim.Render(strings.Repeat("─", pos)),
		dot.Render("●"),
		dim.Render(strings.Repeat("─", track-1-pos)),
		label.Render(right),
	)
}

func (r renderer) inlineOf(n *html.Node, st lipgloss.Style) []run {
	var runs []run
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !r.skip(c) {
			r.inline(c, st, &runs)
		}
	}
	return runs
}

func (r renderer) inline(n *html.Node, st lipgloss.Style, runs *[]run) {
	switch n.Type {
	case html.TextNode:
		*runs = append(*runs, run{text: n.Data, style: st})
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		*runs = append(*runs, run{hard: true})
		return
	case atom.Strong, atom.B:
		st = st.Bold(true)
	case atom.Em, atom.I:
		st = st.Italic(true)
	case atom.Code:
		st = st.Foreground(theme.Accent)
	case atom.A:
		st = st.Underline(true)
	case atom.Mark:
		if doc.HasClass(n, search.MarkClass) {
			st = st.Background(theme.MarkBg).Foreground(theme.MarkFg)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !r.skip(c) {
			r.inline(c, st, runs)
		}
	}
}

func (r renderer) skip(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return true
	case html.ElementNode:
	default:
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
		return true
	}
	if doc.HasClass(n, "hidden") {
		return true
	}
	return r.opts.TextMode && doc.HasClass(n, "pref-bar")
}

func isBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Section, atom.Main, atom.Article, atom.Header,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Li, atom.Pre, atom.Blockquote, atom.Hr, atom.Table:
		return true
	}
	return false
}

// joinRuns collapses HTML whitespace across runs and renders them.
func joinRuns(runs []run) string {
	var b strings.Builder
	space := true // swallow leading whitespace
	pending := false
	for _, r := range runs {
		if r.hard {
			b.WriteString("\n")
			space, pending = true, false
			continue
		}
		var seg strings.Builder
		for _, ch := range r.text {
			if ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '\f' {
				if !space {
					pending = true
				}
				space = true
				continue
			}
			if pending {
				seg.WriteByte(' ')
				pending = false
			}
			space = false
			seg.WriteRune(ch)
		}
		if seg.Len() > 0 {
			b.WriteString(r.style.Render(seg.String()))
		}
	}
	return b.String()
}

func wrap(text string, width int) []string {
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// appendBlock appends block to lines without stacking blank lines.
func appendBlock(lines, block []string) []string {
	for _, l := range block {
		if l == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
