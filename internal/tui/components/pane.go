package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"listedit/internal/listcontext"
)

// PaneHeaderLines is the number of lines above the first row: the top
// border and the title.
const PaneHeaderLines = 2

// PaneComponent renders one list context as a bordered column of rows
type PaneComponent struct {
	title      string
	rows       []listcontext.Row
	width      int
	height     int
	rowHeight  int
	focused    bool
	dropTarget bool
}

// NewPaneComponent creates a pane of the given outer size
func NewPaneComponent(title string, rows []listcontext.Row, width, height, rowHeight int) *PaneComponent {
	if rowHeight < 1 {
		rowHeight = 1
	}
	return &PaneComponent{
		title:     title,
		rows:      rows,
		width:     width,
		height:    height,
		rowHeight: rowHeight,
	}
}

// SetFocused marks the pane as owning input focus
func (p *PaneComponent) SetFocused(focused bool) {
	p.focused = focused
}

// SetDropTarget marks the pane as being under an active drag
func (p *PaneComponent) SetDropTarget(target bool) {
	p.dropTarget = target
}

// Render renders the pane
func (p *PaneComponent) Render() string {
	borderColor := lipgloss.Color("240")
	switch {
	case p.dropTarget:
		borderColor = lipgloss.Color("214") // Orange while a drag hovers
	case p.focused:
		borderColor = lipgloss.Color("39")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	if p.focused {
		titleStyle = titleStyle.Foreground(lipgloss.Color("39"))
	}
	bulletStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedBulletStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	selectedTextStyle := lipgloss.NewStyle().Background(lipgloss.Color("22"))

	innerWidth := max(1, p.width-2)
	innerHeight := max(1, p.height-2)
	textWidth := max(1, innerWidth-2)

	lines := []string{titleStyle.Render(truncate(fmt.Sprintf("%s (%d)", p.title, len(p.rows)), innerWidth))}

	// Rows that do not fit are summarized on the last line
	capacity := max(0, (innerHeight-1)/p.rowHeight)
	visible := p.rows
	hidden := 0
	if len(visible) > capacity {
		if capacity > 0 {
			capacity--
		}
		hidden = len(visible) - capacity
		visible = visible[:capacity]
	}

	for _, row := range visible {
		text := truncate(row.Text, textWidth)
		if row.Selected {
			lines = append(lines, selectedBulletStyle.Render("●")+" "+selectedTextStyle.Render(text))
		} else {
			lines = append(lines, bulletStyle.Render("•")+" "+text)
		}
		for i := 1; i < p.rowHeight; i++ {
			lines = append(lines, "")
		}
	}
	if hidden > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("… %d more", hidden)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most width cells
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)+"…") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
