package readability

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abhisek/careaid/internal/doc"
)

var blockTags = map[atom.Atom]bool{
	atom.P: true, atom.Li: true, atom.Td: true, atom.Th: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true,
}

// TextFromMarkdown renders Markdown and returns its readable text, one
// block per line. Blocks without closing punctuation are terminated with a
// period so headings and list items count as sentences.
func TextFromMarkdown(src string) (string, error) {
	rendered, err := doc.RenderMarkdown(src)
	if err != nil {
		return "", err
	}
	return TextFromHTML(rendered)
}

// TextFromHTML extracts the block text of an HTML fragment.
func TextFromHTML(src string) (string, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.DataAtom == atom.Script || n.DataAtom == atom.Style:
				return
			case blockTags[n.DataAtom] && !hasBlockChild(n):
				if line := sentence(doc.TextContent(n)); line != "" {
					lines = append(lines, line)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(lines, "\n"), nil
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (blockTags[c.DataAtom] || c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			return true
		}
	}
	return false
}

func sentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ':':
		return s
	}
	return s + "."
}
