package cmd

import (
	"fmt"

	"github.com/abhisek/careaid/internal/app"
	"github.com/abhisek/careaid/internal/logging"
	"github.com/abhisek/careaid/internal/printmode"
	"github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runApp loads config and content, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pack, err := loadPack(cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(len(pack.Steps)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// The journal only lives for this process.
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	s, err := session.New(session.Options{
		Pack:      pack,
		Journal:   st.EventRepo(),
		Logger:    logger,
		Printer:   printmode.FilePrinter{Dir: cfg.PrintDir},
		Mode:      session.DisplayMode(cfg.DisplayMode),
		StartStep: cfg.StartStep,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	logger.Debug("session ready",
		zap.String("content", cfg.Content),
		zap.String("print_dir", cfg.PrintDir),
		zap.Int("steps", s.Steps()))

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(app.Options{
		Session:     s,
		Logger:      logger,
		SkipWelcome: skip || cfg.StartStep > 1,
	})
}
