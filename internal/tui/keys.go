package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	History key.Binding

	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Deselect  key.Binding

	Copy         key.Binding
	Cut          key.Binding
	Paste        key.Binding
	ExternalCopy key.Binding
	ExternalCut  key.Binding
	Delete       key.Binding
	Add          key.Binding
	Menu         key.Binding

	Undo         key.Binding
	Redo         key.Binding
	UndoShortcut key.Binding
	RedoShortcut key.Binding

	Enter key.Binding
	Back  key.Binding
}

var defaultKeys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+q"), key.WithHelp("q", "quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "show undo history")),

	NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus next list")),
	PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus previous list")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select previous")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select next")),
	MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move item up")),
	MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move item down")),
	Deselect:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

	Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	Cut:          key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
	Paste:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
	ExternalCopy: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy to system clipboard")),
	ExternalCut:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut to system clipboard")),
	Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete item")),
	Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	Menu:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "context menu")),

	Undo:         key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Redo:         key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),
	UndoShortcut: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
	RedoShortcut: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

	Enter: key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "choose")),
	Back:  key.NewBinding(key.WithKeys("esc", "left", "h"), key.WithHelp("esc", "back")),
}
