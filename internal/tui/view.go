package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"listedit/internal/tui/components"
)

// Lines below the panes: the statusline and the footer
const chromeLines = 2

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.helpModal.IsVisible() {
		return m.helpModal.View()
	}
	if m.historyModal.IsVisible() {
		return m.historyModal.View()
	}
	if m.prompt.Active() {
		return m.prompt.View()
	}

	var menu string
	if menuComponent, ok := m.menuComponent(); ok {
		menu = menuComponent.Render() + "\n"
	}

	panes := m.renderPanes()

	ctx, index := m.focused()
	title := ""
	if ctx != nil {
		title = ctx.Title()
	}
	footer := components.NewFooterComponent(title, index, m.viewport.width)
	entry, hasSlot := m.app.Arbiter.Slot()
	slotText := ""
	if hasSlot {
		slotText = entry.Payload.Text()
	}
	footer.UpdateHistoryInfo(m.app.Stack.UndoCount(), m.app.Stack.RedoCount(), slotText, hasSlot)

	return panes + "\n" + menu + m.statusline.Render() + "\n" + footer.Render()
}

func (m Model) menuComponent() (components.MenuComponent, bool) {
	if len(m.menu) == 0 {
		return components.MenuComponent{}, false
	}
	level := m.menu[len(m.menu)-1]
	titles := make([]string, len(m.menu))
	for i, l := range m.menu {
		titles[i] = l.title
	}
	return components.NewMenuComponent(strings.Join(titles, " › "), level.items, level.selected, min(m.viewport.width, 40)), true
}

// paneHeight is what is left of the screen once the chrome and the menu
// are drawn
func (m Model) paneHeight() int {
	height := m.viewport.height - chromeLines
	if menuComponent, ok := m.menuComponent(); ok {
		height -= menuComponent.Height()
	}
	return max(3, height)
}

func (m Model) renderPanes() string {
	n := len(m.app.Contexts)
	if n == 0 {
		return ""
	}
	paneWidth := m.viewport.width / n
	height := m.paneHeight()
	_, focusIndex := m.focused()

	rendered := make([]string, n)
	for i, ctx := range m.app.Contexts {
		width := paneWidth
		if i == n-1 {
			width = m.viewport.width - paneWidth*(n-1)
		}
		pane := components.NewPaneComponent(ctx.Title(), ctx.Rows(), width, height, m.app.Config.UI.RowHeight)
		pane.SetFocused(i == focusIndex)
		pane.SetDropTarget(m.drag != nil && m.drag.session != nil && m.drag.hover == ctx.ID())
		rendered[i] = pane.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
