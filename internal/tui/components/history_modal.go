package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryModal lists the undo and redo stacks, most recent first
type HistoryModal struct {
	visible bool
	undo    []string
	redo    []string
	width   int
	height  int
}

// NewHistoryModal creates a new history modal
func NewHistoryModal() *HistoryModal {
	return &HistoryModal{}
}

// Show displays the modal. Both lists are ordered oldest first, as the
// stack stores them.
func (m *HistoryModal) Show(undo, redo []string, width, height int) {
	m.visible = true
	m.undo = undo
	m.redo = redo
	m.width = width
	m.height = height
}

// Hide hides the modal
func (m *HistoryModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently shown
func (m HistoryModal) IsVisible() bool {
	return m.visible
}

// Update handles tea messages
func (m HistoryModal) Update(msg tea.Msg) (HistoryModal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter, tea.KeySpace:
			m.Hide()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the modal
func (m HistoryModal) View() string {
	if !m.visible {
		return ""
	}

	// Handle very small terminals
	if m.width < 20 || m.height < 10 {
		return "Terminal too small"
	}

	width := modalWidth(m.width)
	if width > 80 {
		width = 80
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(width)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1).
		Align(lipgloss.Center).
		Width(width - 4)

	headingStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	entryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1).
		Align(lipgloss.Center).
		Width(width - 4)

	// Keep the modal inside the screen
	maxEntries := max(1, (m.height-14)/2)

	var content strings.Builder
	content.WriteString(titleStyle.Render("History"))
	content.WriteString("\n\n")
	writeEntries(&content, headingStyle.Render(fmt.Sprintf("Undo (%d)", len(m.undo))), m.undo, maxEntries, width-6, entryStyle)
	content.WriteString("\n")
	writeEntries(&content, headingStyle.Render(fmt.Sprintf("Redo (%d)", len(m.redo))), m.redo, maxEntries, width-6, entryStyle)
	content.WriteString(helpStyle.Render("Press Esc, Enter, or Space to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(content.String()),
	)
}

func writeEntries(b *strings.Builder, heading string, entries []string, limit, width int, style lipgloss.Style) {
	b.WriteString(heading)
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(style.Render("  (empty)"))
		b.WriteString("\n")
		return
	}
	shown := 0
	for i := len(entries) - 1; i >= 0 && shown < limit; i-- {
		b.WriteString(style.Render("  " + truncate(entries[i], max(1, width))))
		b.WriteString("\n")
		shown++
	}
	if rest := len(entries) - shown; rest > 0 {
		b.WriteString(style.Render(fmt.Sprintf("  … %d older", rest)))
		b.WriteString("\n")
	}
}
