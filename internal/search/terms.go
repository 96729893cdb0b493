// Package search highlights user-entered terms in the content tree.
//
// Matching is split in two layers: Pattern and Split are pure functions
// over strings, and Highlighter applies their result to an HTML tree.
package search

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Terms is an insertion-ordered set of lowercase search terms.
type Terms struct {
	list []string
}

// Normalize returns the canonical form of a raw term: trimmed and
// lowercased. The empty string means the term is degenerate.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Add inserts raw after normalizing it. It reports whether the set
// changed; empty and duplicate terms are no-ops.
func (t *Terms) Add(raw string) bool {
	term := Normalize(raw)
	if term == "" || slices.Contains(t.list, term) {
		return false
	}
	t.list = append(t.list, term)
	return true
}

// Remove deletes term if present and reports whether the set changed.
func (t *Terms) Remove(term string) bool {
	term = Normalize(term)
	i := slices.Index(t.list, term)
	if i < 0 {
		return false
	}
	t.list = slices.Delete(t.list, i, i+1)
	return true
}

// List returns the terms in insertion order.
func (t *Terms) List() []string {
	return slices.Clone(t.list)
}

// Len returns the number of terms.
func (t *Terms) Len() int { return len(t.list) }

// Pattern builds one case-insensitive alternation over terms, with every
// term quoted so punctuation matches literally. It returns nil for an
// empty list.
//
// Alternation in RE2 is leftmost-first: when two terms match at the same
// position the one listed first wins, and matches never overlap.
func Pattern(terms []string) *regexp.Regexp {
	if len(terms) == 0 {
		return nil
	}
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = quoteTerm(term)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// quoteTerm quotes term for a (?i) pattern. Runes whose uppercase form does
// not fold back to them, such as the "i" of "İ", become a class that also
// accepts that form.
func quoteTerm(term string) string {
	gaps := foldGaps()
	var b strings.Builder
	for _, r := range term {
		extra, ok := gaps[r]
		if !ok {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		b.WriteByte('[')
		b.WriteString(regexp.QuoteMeta(string(r)))
		for _, e := range extra {
			b.WriteString(regexp.QuoteMeta(string(e)))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// foldGaps maps a lowercase rune to the runes that lowercase to it but sit
// outside its simple case-folding orbit.
var foldGaps = sync.OnceValue(func() map[rune][]rune {
	gaps := make(map[rune][]rune)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		lower := unicode.ToLower(r)
		if lower == r || sameFold(r, lower) {
			continue
		}
		gaps[lower] = append(gaps[lower], r)
	}
	return gaps
})

func sameFold(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// Segment is a run of text that either matched a term or did not.
type Segment struct {
	Text  string
	Match bool
}

// Split cuts text into ordered match and non-match runs. Joining the
// runs reproduces text exactly. A text with no match yields a single
// non-match segment; an empty text yields none.
func Split(text string, terms []string) []Segment {
	return segmentWith(text, Pattern(terms))
}

func segmentWith(text string, re *regexp.Regexp) []Segment {
	if text == "" {
		return nil
	}
	if re == nil {
		return []Segment{{Text: text}}
	}

	var out []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, Segment{Text: text[last:loc[0]]})
		}
		out = append(out, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

// HasMatch reports whether any segment matched.
func HasMatch(segs []Segment) bool {
	return slices.ContainsFunc(segs, func(s Segment) bool { return s.Match })
}
