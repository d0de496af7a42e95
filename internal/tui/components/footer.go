package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterComponent handles the rendering of the status bar footer
type FooterComponent struct {
	focusTitle string
	focusIndex int
	width      int
	undoCount  int
	redoCount  int
	slotText   string
	hasSlot    bool
}

// NewFooterComponent creates a new footer component. focusIndex is -1
// when no context holds focus.
func NewFooterComponent(focusTitle string, focusIndex int, width int) *FooterComponent {
	return &FooterComponent{
		focusTitle: focusTitle,
		focusIndex: focusIndex,
		width:      width,
	}
}

// UpdateHistoryInfo updates the undo/redo counters and the clipboard slot preview
func (f *FooterComponent) UpdateHistoryInfo(undoCount, redoCount int, slotText string, hasSlot bool) {
	f.undoCount = undoCount
	f.redoCount = redoCount
	f.slotText = slotText
	f.hasSlot = hasSlot
}

// Render renders the complete footer with focus indicator and status bar
func (f *FooterComponent) Render() string {
	indicator := NewFocusIndicatorComponent(f.focusTitle, f.focusIndex)
	indicatorRendered := indicator.Render()

	// Calculate remaining width for main footer content
	remainingWidth := f.width - indicator.Width()

	historyText := fmt.Sprintf("undo %d · redo %d", f.undoCount, f.redoCount)

	slotText := "clipboard empty"
	slotColor := "241" // Gray
	if f.hasSlot {
		slotText = "clipboard: " + truncate(strings.ReplaceAll(f.slotText, "\n", " "), 24)
		slotColor = "2" // Green
	}

	leftText := "listedit"
	rightText := "? help"

	// Layout: listedit | history | slot | help
	sections := []string{leftText, historyText, slotText, rightText}

	totalContentWidth := 0
	for _, section := range sections {
		totalContentWidth += lipgloss.Width(section)
	}

	separatorCount := len(sections) - 1
	availableWidth := remainingWidth - totalContentWidth - separatorCount*3 - 2

	// Distribute extra space evenly
	extraSpacePerGap := max(0, availableWidth/separatorCount)

	base := lipgloss.NewStyle().Background(lipgloss.Color("236"))
	muted := base.Foreground(lipgloss.Color("245"))

	styledSeparator := base.Render(strings.Repeat(" ", 3+extraSpacePerGap))
	styledSlot := base.Foreground(lipgloss.Color(slotColor)).Render(slotText)

	composedFooter := muted.Render(leftText) + styledSeparator +
		muted.Render(historyText) + styledSeparator +
		styledSlot + styledSeparator +
		muted.Render(rightText)

	// Ensure the footer fills the entire width with padding
	paddingNeeded := remainingWidth - lipgloss.Width(composedFooter) - 2
	if paddingNeeded > 0 {
		composedFooter += base.Render(strings.Repeat(" ", paddingNeeded))
	}

	mainFooter := base.
		Width(max(0, remainingWidth)).
		Padding(0, 1).
		Render(composedFooter)

	return indicatorRendered + mainFooter
}
