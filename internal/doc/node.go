package doc

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Children returns the direct children of n in order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// TextContent returns the concatenated text of every text node under n,
// like the DOM property of the same name.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	return slices.Contains(Classes(n), c)
}

// AddClass adds class c to n if missing.
func AddClass(n *html.Node, c string) {
	classes := Classes(n)
	if slices.Contains(classes, c) {
		return
	}
	SetAttr(n, "class", strings.Join(append(classes, c), " "))
}

// RemoveClass removes class c from n. The attribute is dropped when the
// class list becomes empty.
func RemoveClass(n *html.Node, c string) {
	classes := Classes(n)
	if !slices.Contains(classes, c) {
		return
	}
	classes = slices.DeleteFunc(classes, func(s string) bool { return s == c })
	if len(classes) == 0 {
		removeAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(classes, " "))
}

// InsertBefore inserts child into parent before ref. A nil ref appends.
func InsertBefore(parent, child, ref *html.Node) {
	parent.InsertBefore(child, ref)
}

// Find returns the first node under root (root included) in document
// order for which match returns true.
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := Find(c, match); n != nil {
			return n
		}
	}
	return nil
}

// FindAll returns every node under root matching match, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ByID finds the element with the given id attribute.
func ByID(root *html.Node, id string) *html.Node {
	return Find(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// ByClass finds every element carrying class c.
func ByClass(root *html.Node, c string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && HasClass(n, c)
	})
}

// ByTag finds every element with the given tag.
func ByTag(root *html.Node, tag atom.Atom) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == tag
	})
}

// Element creates a detached element node.
func Element(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

// Text creates a detached text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Normalize merges adjacent text node children of n and drops empty ones,
// like the DOM method of the same name (one level only).
func Normalize(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type != html.TextNode {
			c = next
			continue
		}
		for next != nil && next.Type == html.TextNode {
			c.Data += next.Data
			after := next.NextSibling
			n.RemoveChild(next)
			next = after
		}
		if c.Data == "" {
			n.RemoveChild(c)
		}
		c = next
	}
}
