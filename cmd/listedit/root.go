package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"listedit/internal/clipboard"
	"listedit/internal/config"
	"listedit/internal/logger"
	"listedit/internal/tui"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "listedit",
	Short: "Edit a shared list with undo, redo, clipboard and drag and drop",
	Long: `listedit shows one ordered list of text items through several panes.
Every edit goes through a single undo history, and copy, cut and paste
are routed to whichever pane holds focus.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default ~/.config/listedit/config.yaml)")
}

// setup loads the configuration and starts the log
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Init(cfg.LogOptions()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Starting listedit %s", cmd.Name())
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return logger.Close()
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.RunTUI(cfg, clipboard.SystemHost{})
}
