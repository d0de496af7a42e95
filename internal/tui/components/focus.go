package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Background colors cycled through by context position
var focusColors = []string{"4", "2", "5", "6"}

// FocusIndicatorComponent renders which context currently owns focus
type FocusIndicatorComponent struct {
	title string
	index int
}

// NewFocusIndicatorComponent creates a new focus indicator. A negative
// index means no context is focused.
func NewFocusIndicatorComponent(title string, index int) *FocusIndicatorComponent {
	return &FocusIndicatorComponent{
		title: title,
		index: index,
	}
}

func (f *FocusIndicatorComponent) text() string {
	if f.index < 0 {
		return " NO FOCUS "
	}
	return " " + strings.ToUpper(f.title) + " "
}

// Render renders the indicator with a colored background
func (f *FocusIndicatorComponent) Render() string {
	color := "8" // Gray when unfocused
	if f.index >= 0 {
		color = focusColors[f.index%len(focusColors)]
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")). // Black text
		Background(lipgloss.Color(color)).
		Render(f.text())
}

// Width returns the width of the indicator
func (f *FocusIndicatorComponent) Width() int {
	return lipgloss.Width(f.text())
}
