package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/careaid/internal/readability"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var readabilityCmd = &cobra.Command{
	Use:   "readability [glob ...]",
	Short: "Score the reading level of the step texts or of Markdown files",
	Long: "Without arguments, scores every step of the active content pack.\n" +
		"With arguments, scores each Markdown file matched by the globs (** is supported).",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			names []string
			texts []string
		)

		if len(args) == 0 {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := loadPack(cfg)
			if err != nil {
				return err
			}
			for i, st := range p.Steps {
				text, err := readability.TextFromMarkdown(st.Body)
				if err != nil {
					return fmt.Errorf("step %d: %w", i+1, err)
				}
				names = append(names, fmt.Sprintf("%d. %s", i+1, st.Title))
				texts = append(texts, text)
			}
		} else {
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern)
				if err != nil {
					return fmt.Errorf("bad pattern %q: %w", pattern, err)
				}
				if len(matches) == 0 {
					return fmt.Errorf("no files match %q", pattern)
				}
				for _, path := range matches {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					text, err := readability.TextFromMarkdown(string(data))
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					names = append(names, path)
					texts = append(texts, text)
				}
			}
		}

		printReadability(cmd.OutOrStdout(), names, texts)
		return nil
	},
}

func printReadability(w io.Writer, names, texts []string) {
	fmt.Fprintf(w, "%-32s  %6s  %6s  %6s  %6s  %6s  %6s  %6s\n",
		"Text", "Words", "Flesch", "FK", "SMOG", "CLI", "ARI", "Fog")
	fmt.Fprintln(w, strings.Repeat("─", 88))

	for i, name := range names {
		st, sc := readability.Analyze(texts[i])
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		fmt.Fprintf(w, "%-32s  %6d  %6.1f  %6.1f  %6.1f  %6.1f  %6.1f  %6.1f\n",
			name, st.Words, sc.FleschReadingEase, sc.FleschKincaidGrade,
			sc.SMOG, sc.ColemanLiau, sc.AutomatedReadability, sc.GunningFog)
	}

	all := strings.Join(texts, "\n")
	st, sc := readability.Analyze(all)
	fmt.Fprintln(w, strings.Repeat("─", 88))
	fmt.Fprintf(w, "%-32s  %6d  %6.1f  %6.1f  %6.1f  %6.1f  %6.1f  %6.1f\n",
		"All", st.Words, sc.FleschReadingEase, sc.FleschKincaidGrade,
		sc.SMOG, sc.ColemanLiau, sc.AutomatedReadability, sc.GunningFog)
}
