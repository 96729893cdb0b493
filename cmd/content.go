package cmd

import (
	"fmt"

	"github.com/abhisek/careaid/internal/content"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with content packs",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a content pack against the schema and its rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(args[0])
		if err != nil {
			return err
		}
		if err := p.CheckAppVersion(version); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", args[0])
		fmt.Fprintf(out, "  %-10s %d\n", "steps", len(p.Steps))
		fmt.Fprintf(out, "  %-10s %d\n", "questions", len(p.Questions))
		fmt.Fprintf(out, "  %-10s %d\n", "sliders", len(p.Sliders))
		fmt.Fprintf(out, "  %-10s %d\n", "choices", len(p.Choices))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
