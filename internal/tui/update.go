package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listedit/internal/clipboard"
	"listedit/internal/command"
	"listedit/internal/interaction"
	"listedit/internal/logger"
	"listedit/internal/transfer"
	"listedit/internal/tui/components"
	"listedit/internal/useraction"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.viewport.width = size.Width
		m.viewport.height = size.Height
		m.statusline.SetWidth(size.Width)
		m.ready = true
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case AddItemMsg:
		m.addItem(msg.Text)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.statusline.HasExpired(m.now()) {
		m.statusline.ClearMessage()
	}

	if m.historyModal.IsVisible() {
		hm, cmd := m.historyModal.Update(msg)
		*m.historyModal = hm
		if key.Matches(msg, m.keys.History, m.keys.Quit) {
			m.historyModal.Hide()
		}
		return m, cmd
	}
	if m.helpModal.IsVisible() {
		if key.Matches(msg, m.keys.Help, m.keys.Deselect, m.keys.Quit) {
			m.helpModal.Hide()
		}
		return m, nil
	}
	if len(m.menu) > 0 {
		return m.handleMenuKey(msg)
	}

	// Bracketed paste arrives as one key message carrying the text
	if msg.Paste {
		ev := &clipboard.Event{Kind: clipboard.EventPaste, Trusted: true, Data: transfer.NewText(string(msg.Runes))}
		m.report(m.app.Arbiter.NotifyExternalPaste(ev), "Pasted")
		return m, nil
	}

	ctx, _ := m.focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.UndoShortcut, m.keys.RedoShortcut):
		undo, redo := m.app.Stack.UndoCount(), m.app.Stack.RedoCount()
		handled, err := m.app.Manager.HandleShortcut(msg.String())
		if handled {
			changed := undo != m.app.Stack.UndoCount() || redo != m.app.Stack.RedoCount()
			m.report(err, historyNote(msg.String(), changed))
		}

	case key.Matches(msg, m.keys.ExternalCopy):
		m.report(m.app.Arbiter.NotifyExternalCopy(&clipboard.Event{Kind: clipboard.EventCopy, Trusted: true}), m.slotNote("Copied"))
	case key.Matches(msg, m.keys.ExternalCut):
		m.report(m.app.Arbiter.NotifyExternalCut(&clipboard.Event{Kind: clipboard.EventCut, Trusted: true}), m.slotNote("Cut"))
	case key.Matches(msg, m.keys.Copy):
		m.perform(useraction.Copy{Clipboard: m.app.Arbiter})
	case key.Matches(msg, m.keys.Cut):
		m.perform(useraction.Cut{Clipboard: m.app.Arbiter})
	case key.Matches(msg, m.keys.Paste):
		m.perform(useraction.Paste{Clipboard: m.app.Arbiter})
	case key.Matches(msg, m.keys.Undo):
		m.perform(useraction.Undo{History: m.app.Stack})
	case key.Matches(msg, m.keys.Redo):
		m.perform(useraction.Redo{History: m.app.Stack})

	case key.Matches(msg, m.keys.Delete):
		if ctx != nil {
			m.perform(useraction.Delete{Store: m.app.Store, Stack: m.app.Stack, Selected: ctx.SelectedIndex})
		}
	case key.Matches(msg, m.keys.Up):
		if ctx != nil {
			ctx.MoveSelection(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if ctx != nil {
			ctx.MoveSelection(1)
		}
	case key.Matches(msg, m.keys.MoveUp):
		if ctx != nil {
			m.report(ctx.MoveSelected(-1), "")
		}
	case key.Matches(msg, m.keys.MoveDown):
		if ctx != nil {
			m.report(ctx.MoveSelected(1), "")
		}
	case key.Matches(msg, m.keys.Deselect):
		if ctx != nil {
			ctx.ClearSelection()
		}

	case key.Matches(msg, m.keys.NextFocus):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Menu):
		if ctx != nil {
			m.menu = []menuLevel{{title: ctx.Title(), items: ctx.ContextActions()}}
		}
	case key.Matches(msg, m.keys.Add):
		cmd := m.prompt.Show(components.PromptConfig{
			Title:       "Add item",
			Message:     "The new item goes after the selection.",
			Placeholder: "text",
			Width:       m.viewport.width,
			Height:      m.viewport.height,
			OnSubmit: func(text string) tea.Cmd {
				return func() tea.Msg { return AddItemMsg{Text: text} }
			},
		})
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.helpModal.Show()
	case key.Matches(msg, m.keys.History):
		undo, redo := m.app.Stack.Descriptions()
		m.historyModal.Show(undo, redo, m.viewport.width, m.viewport.height)
	}

	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	level := &m.menu[len(m.menu)-1]

	switch {
	case key.Matches(msg, m.keys.Up):
		if level.selected > 0 {
			level.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if level.selected < len(level.items)-1 {
			level.selected++
		}
	case key.Matches(msg, m.keys.Back):
		m.menu = m.menu[:len(m.menu)-1]
	case key.Matches(msg, m.keys.Enter):
		if len(level.items) == 0 {
			m.menu = nil
			return m, nil
		}
		item := level.items[level.selected]
		if item.IsGroup() {
			m.menu = append(m.menu, menuLevel{title: item.Name, items: item.Children})
			return m, nil
		}
		m.menu = nil
		if item.Action != nil {
			m.perform(item.Action)
		}
	case key.Matches(msg, m.keys.Quit):
		m.menu = nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.prompt.Active() || m.helpModal.IsVisible() || m.historyModal.IsVisible() || len(m.menu) > 0 {
		return m, nil
	}

	index, y, inPane := m.hitTest(msg.X, msg.Y)
	rowHeight := m.app.Config.UI.RowHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inPane {
			return m, nil
		}
		ctx := m.app.Contexts[index]
		m.setFocus(index)
		ctx.SelectRow(y, rowHeight)

		switch {
		case msg.Shift:
			m.perform(useraction.Copy{Clipboard: m.app.Arbiter})
		case msg.Ctrl:
			m.perform(useraction.Cut{Clipboard: m.app.Arbiter})
		case msg.Alt:
			m.perform(useraction.Paste{Clipboard: m.app.Arbiter})
		default:
			m.drag = &dragState{source: ctx, startX: msg.X, startY: msg.Y}
		}

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		if m.drag.session == nil {
			if msg.X == m.drag.startX && msg.Y == m.drag.startY {
				return m, nil
			}
			session, ok := m.app.Manager.BeginDrag(m.drag.source)
			if !ok {
				m.drag = nil
				return m, nil
			}
			m.drag.session = session
		}
		m.drag.hover = ""
		if inPane {
			m.drag.hover = m.app.Contexts[index].ID()
		}
		m.drag.session.Over(m.drag.hover)

	case tea.MouseActionRelease:
		drag := m.drag
		m.drag = nil
		if drag == nil || drag.session == nil {
			return m, nil
		}
		target := ""
		if inPane {
			ctx := m.app.Contexts[index]
			ctx.SelectRow(y, rowHeight)
			target = ctx.ID()
			m.setFocus(index)
		}
		err := drag.session.Drop(target)
		m.report(err, dropNote(drag.session.Event()))
	}

	return m, nil
}

// hitTest maps a screen cell to a pane and a row offset inside it
func (m Model) hitTest(x, y int) (int, int, bool) {
	n := len(m.app.Contexts)
	if n == 0 || m.viewport.width <= 0 {
		return 0, 0, false
	}
	if y < 0 || y >= m.paneHeight() || x < 0 {
		return 0, 0, false
	}
	paneWidth := m.viewport.width / n
	if paneWidth <= 0 {
		return 0, 0, false
	}
	index := min(x/paneWidth, n-1)
	return index, y - components.PaneHeaderLines, true
}

// addItem inserts text after the focused selection, or at the end
func (m Model) addItem(text string) {
	index := m.app.Store.Len()
	ctx, _ := m.focused()
	if ctx != nil {
		if sel, ok := ctx.SelectedIndex(); ok {
			index = sel + 1
		}
	}
	if err := m.app.Stack.PerformAction(command.NewAddText(m.app.Store, text, index), false); err != nil {
		m.report(err, "")
		return
	}
	if ctx != nil {
		ctx.SelectAt(index)
	}
	m.report(nil, fmt.Sprintf("Added %q", text))
}

func (m Model) perform(action interaction.UserAction) {
	m.report(action.Perform(), "")
	logger.Debug("Performed %s", action.Name())
}

// report shows err on the statusline, or note when there is no error
func (m Model) report(err error, note string) {
	if err != nil {
		logger.Error("%v", err)
		m.statusline.SetMessage(components.ErrorMessage(err))
		return
	}
	if note != "" {
		m.statusline.SetMessage(components.InfoMessage(note))
	}
}

// slotNote describes the slot after a copy or cut
func (m Model) slotNote(verb string) string {
	entry, ok := m.app.Arbiter.Slot()
	if !ok {
		return "Clipboard cleared"
	}
	return fmt.Sprintf("%s %q", verb, strings.TrimSpace(entry.Payload.Text()))
}

func historyNote(shortcut string, changed bool) string {
	if !changed {
		return ""
	}
	if shortcut == "ctrl+z" {
		return "Undone"
	}
	return "Redone"
}

func dropNote(ev *interaction.DragEvent) string {
	if !ev.Dropped {
		return "Drag cancelled"
	}
	switch ev.DropEffect {
	case transfer.DropMove:
		return "Moved"
	case transfer.DropCopy:
		return "Copied"
	}
	return ""
}
