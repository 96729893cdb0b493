package cmd

import (
	"fmt"

	"github.com/abhisek/careaid/internal/config"
	"github.com/abhisek/careaid/internal/content"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careaid",
	Short: "Patient decision aid for AI in healthcare",
	Long: "CareAid walks you through what AI in healthcare means, checks your understanding,\n" +
		"asks what matters to you and prints a summary to share with your care team.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultFile, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("content", "", "Path to a content pack (overrides the built-in pack)")
	rootCmd.PersistentFlags().String("print-dir", "", "Directory printed pages are saved to")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file")

	rootCmd.Flags().Bool("text", false, "Show slider values as text instead of bars")
	rootCmd.Flags().Bool("skip-welcome", false, "Start directly on the first step")

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(readabilityCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration: .env, then the config file and
// CAREAID_* variables, then command-line flags (highest priority).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("content"); v != "" {
		cfg.Content = v
	}
	if v, _ := cmd.Flags().GetString("print-dir"); v != "" {
		cfg.PrintDir = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if f := cmd.Flags().Lookup("text"); f != nil && f.Changed {
		if text, _ := cmd.Flags().GetBool("text"); text {
			cfg.DisplayMode = config.DisplayText
		} else {
			cfg.DisplayMode = config.DisplayVisual
		}
	}
	return cfg, nil
}

// loadPack returns the configured content pack, or the built-in one.
func loadPack(cfg *config.Config) (*content.Pack, error) {
	p, err := content.Load(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := p.CheckAppVersion(version); err != nil {
		return nil, err
	}
	return p, nil
}
