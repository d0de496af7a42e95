package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatuslineMessageType represents the type of statusline message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineWarning
	StatuslineError
)

// How long messages stay up by default
const (
	infoDuration  = 3 * time.Second
	errorDuration = 6 * time.Second
)

// StatuslineMessage represents a message to display in the statusline
type StatuslineMessage struct {
	Type     StatuslineMessageType
	Text     string
	Duration time.Duration
	ShowTime time.Time
}

// InfoMessage creates a short-lived informational message
func InfoMessage(text string) *StatuslineMessage {
	return &StatuslineMessage{Type: StatuslineInfo, Text: text, Duration: infoDuration, ShowTime: time.Now()}
}

// ErrorMessage creates a message reporting err
func ErrorMessage(err error) *StatuslineMessage {
	return &StatuslineMessage{Type: StatuslineError, Text: err.Error(), Duration: errorDuration, ShowTime: time.Now()}
}

// StatuslineComponent handles the rendering of the statusline
type StatuslineComponent struct {
	message *StatuslineMessage
	width   int
}

// NewStatuslineComponent creates a new statusline component
func NewStatuslineComponent(width int) *StatuslineComponent {
	return &StatuslineComponent{
		width: width,
	}
}

// SetMessage sets the current message to display
func (s *StatuslineComponent) SetMessage(msg *StatuslineMessage) {
	s.message = msg
}

// Message returns the message on display, nil when there is none
func (s *StatuslineComponent) Message() *StatuslineMessage {
	return s.message
}

// ClearMessage clears the current message
func (s *StatuslineComponent) ClearMessage() {
	s.message = nil
}

// HasExpired checks if the current message has expired
func (s *StatuslineComponent) HasExpired(now time.Time) bool {
	if s.message == nil || s.message.Duration == 0 {
		return false
	}
	return now.Sub(s.message.ShowTime) > s.message.Duration
}

// Render renders the statusline
func (s *StatuslineComponent) Render() string {
	if s.message == nil {
		return lipgloss.NewStyle().
			Width(s.width).
			Render(" ")
	}

	var fg lipgloss.Color
	prefix := ""
	switch s.message.Type {
	case StatuslineWarning:
		fg = lipgloss.Color("226") // Yellow
	case StatuslineError:
		fg = lipgloss.Color("196") // Red
		prefix = "✗ "
	default:
		fg = lipgloss.Color("252") // Light gray for info
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Width(s.width).
		Padding(0, 1).
		Render(truncate(prefix+s.message.Text, max(1, s.width-2)))
}

// SetWidth updates the width of the statusline
func (s *StatuslineComponent) SetWidth(width int) {
	s.width = width
}
