package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"listedit/internal/clipboard"
	"listedit/internal/config"
	"listedit/internal/logger"
)

// RunTUI starts the TUI interface
func RunTUI(cfg config.Config, host clipboard.Host) error {
	m, err := New(cfg, host)
	if err != nil {
		return err
	}
	defer m.app.Close()

	// Run the Bubble Tea program
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited: %v", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
