package components

import (
	"fmt"
	"strings"

	"listedit/internal/interaction"
)

type MenuComponent struct {
	title    string
	items    []interaction.ContextAction
	selected int
	height   int
	width    int
}

func NewMenuComponent(title string, items []interaction.ContextAction, selected int, width int) MenuComponent {
	maxHeight := 8 // Maximum menu height
	height := len(items)
	if height > maxHeight {
		height = maxHeight
	}

	return MenuComponent{
		title:    title,
		items:    items,
		selected: selected,
		height:   height,
		width:    width,
	}
}

func (c MenuComponent) Render() string {
	if len(c.items) == 0 || c.width < 6 {
		return ""
	}

	var lines []string

	// Calculate visible range for scrolling
	startIdx := 0
	endIdx := len(c.items)

	if len(c.items) > c.height {
		// Scroll to keep selected item visible
		if c.selected >= c.height {
			startIdx = c.selected - c.height + 1
		}
		endIdx = startIdx + c.height
		if endIdx > len(c.items) {
			endIdx = len(c.items)
			startIdx = endIdx - c.height
		}
	}

	for i := startIdx; i < endIdx; i++ {
		item := c.items[i]

		name := item.Name
		if item.IsGroup() {
			name += " ▸"
		}
		line := "  " + name
		if i == c.selected {
			line = "> " + name
		}

		if len([]rune(line)) > c.width-2 {
			line = string([]rune(line)[:c.width-5]) + "..."
		}
		lines = append(lines, line)
	}

	title := truncate(c.title, c.width-4)
	border := strings.Repeat("─", max(0, c.width-2-len([]rune(title))))
	var result strings.Builder
	result.WriteString("┌" + title + border + "┐\n")
	for _, line := range lines {
		pad := max(0, c.width-2-len([]rune(line)))
		result.WriteString(fmt.Sprintf("│%s%s│\n", line, strings.Repeat(" ", pad)))
	}
	result.WriteString("└" + strings.Repeat("─", c.width-2) + "┘")
	return result.String()
}

func (c MenuComponent) Height() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.height + 2 // +2 for borders
}
