package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptModal is a modal dialog asking for one line of text
type PromptModal struct {
	active   bool
	title    string
	message  string
	input    textinput.Model
	width    int
	height   int
	onSubmit func(string) tea.Cmd
	onCancel func() tea.Cmd
}

// NewPromptModal creates a new prompt modal
func NewPromptModal() PromptModal {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 50

	return PromptModal{
		input: ti,
	}
}

// PromptConfig contains configuration for showing the modal
type PromptConfig struct {
	Title       string
	Message     string
	Placeholder string
	Width       int
	Height      int
	OnSubmit    func(string) tea.Cmd
	OnCancel    func() tea.Cmd
}

// modalWidth is 60% of the screen, at least 40 columns when there is room
func modalWidth(screen int) int {
	w := screen * 60 / 100
	if w < 40 {
		w = min(40, screen-4)
	}
	return w
}

// Show displays the modal with the given configuration
func (m *PromptModal) Show(config PromptConfig) tea.Cmd {
	m.active = true
	m.title = config.Title
	m.message = config.Message
	m.width = config.Width
	m.height = config.Height
	m.onSubmit = config.OnSubmit
	m.onCancel = config.OnCancel
	m.input.Reset()
	m.input.Placeholder = config.Placeholder
	m.input.Width = max(10, modalWidth(m.width)-6)

	return m.input.Focus()
}

// Hide hides the modal
func (m *PromptModal) Hide() {
	m.active = false
	m.input.Blur()
	m.input.Reset()
}

// Active returns whether the modal is currently shown
func (m PromptModal) Active() bool {
	return m.active
}

// Value returns the text typed so far
func (m PromptModal) Value() string {
	return m.input.Value()
}

// Update handles tea messages
func (m PromptModal) Update(msg tea.Msg) (PromptModal, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			value := m.input.Value()
			if strings.TrimSpace(value) == "" {
				return m, nil
			}
			m.Hide()
			if m.onSubmit != nil {
				return m, m.onSubmit(value)
			}
			return m, nil
		case tea.KeyEsc:
			m.Hide()
			if m.onCancel != nil {
				return m, m.onCancel()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, modalWidth(m.width)-6)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the modal
func (m PromptModal) View() string {
	if !m.active {
		return ""
	}

	// Handle very small terminals
	if m.width < 20 || m.height < 8 {
		return "Terminal too small"
	}

	width := modalWidth(m.width)

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
		Width(width - 4) // Account for padding

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginBottom(1).
		Width(width - 4)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1).
		Align(lipgloss.Center).
		Width(width - 4)

	var content strings.Builder
	if m.title != "" {
		content.WriteString(titleStyle.Render(m.title))
		content.WriteString("\n")
	}
	if m.message != "" {
		content.WriteString(messageStyle.Render(m.message))
		content.WriteString("\n")
	}

	m.input.Width = max(10, width-6)
	content.WriteString(m.input.View())
	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Enter to add • Esc to cancel"))

	// Center the modal vertically and horizontally
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(content.String()),
	)
}
