package cmd

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/abhisek/careaid/internal/content"
	"github.com/abhisek/careaid/internal/doc"
	"github.com/abhisek/careaid/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term> [term ...]",
	Short: "Show where terms appear in the content pack",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := loadPack(cfg)
		if err != nil {
			return err
		}
		d, err := doc.Build(p)
		if err != nil {
			return err
		}

		h := search.NewHighlighter(d.Main(), d)
		total := 0
		for _, t := range args {
			_, total = h.AddTerm(t)
		}
		showLines, _ := cmd.Flags().GetBool("lines")
		printSearch(cmd.OutOrStdout(), d, h, p.Steps, total, showLines)
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("lines", false, "Print each matching paragraph with matches in [brackets]")
}

func printSearch(w io.Writer, d *doc.Document, h *search.Highlighter, steps []content.Step, total int, showLines bool) {
	fmt.Fprintf(w, "Terms: %s\n\n", strings.Join(h.Terms(), ", "))

	for i, st := range steps {
		sec, err := d.Section(i + 1)
		if err != nil {
			continue
		}
		n := h.MarksIn(sec)
		fmt.Fprintf(w, "%d. %-30s %3d\n", i+1, st.Title, n)
		if !showLines || n == 0 {
			continue
		}
		seen := make(map[*html.Node]bool)
		for _, m := range h.Marks() {
			if d.StepOf(m) != i+1 || seen[m.Parent] {
				continue
			}
			seen[m.Parent] = true
			fmt.Fprintf(w, "     %s\n", bracketed(m.Parent))
		}
	}

	if first, ok := h.FirstMatchStep(); ok {
		fmt.Fprintf(w, "\n%d matches, first in step %d\n", total, first)
	} else {
		fmt.Fprintln(w, "\nNo matches found")
	}
}

// bracketed flattens n to text with every highlight wrapped in brackets.
func bracketed(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && doc.HasClass(n, search.MarkClass):
			b.WriteString("[" + doc.TextContent(n) + "]")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
