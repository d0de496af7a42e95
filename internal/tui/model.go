package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listedit/internal/app"
	"listedit/internal/clipboard"
	"listedit/internal/config"
	"listedit/internal/interaction"
	"listedit/internal/listcontext"
	"listedit/internal/tui/components"
)

// focusState is the host focus the interaction manager reads. It lives
// behind a pointer so every copy of the Model shares it.
type focusState struct {
	id string
}

func (f *focusState) FocusedID() string { return f.id }

// menuLevel is one open level of the context menu
type menuLevel struct {
	title    string
	items    []interaction.ContextAction
	selected int
}

// dragState tracks a mouse gesture that started on a row
type dragState struct {
	source  *listcontext.ListContext
	session *interaction.DragSession // nil until the pointer moves
	hover   string
	startX  int
	startY  int
}

// Model represents the Bubble Tea model for the TUI
type Model struct {
	app   *app.App
	keys  keyMap
	focus *focusState

	viewport struct {
		width  int
		height int
	}
	ready bool

	helpModal    *components.HelpModal
	historyModal *components.HistoryModal
	prompt       components.PromptModal
	statusline   *components.StatuslineComponent
	menu         []menuLevel
	drag         *dragState
	now          func() time.Time
}

// AddItemMsg carries the text submitted from the add prompt
type AddItemMsg struct {
	Text string
}

// New creates the application and a model hosting it. The first
// configured context starts with focus.
func New(cfg config.Config, host clipboard.Host) (Model, error) {
	focus := &focusState{}
	a, err := app.New(cfg, focus, host)
	if err != nil {
		return Model{}, err
	}
	if len(a.Contexts) > 0 {
		focus.id = a.Contexts[0].ID()
	}

	keys := defaultKeys
	return Model{
		app:   a,
		keys:  keys,
		focus: focus,
		helpModal: components.NewHelpModal(
			components.HelpSection{Title: "Lists", Bindings: []key.Binding{keys.NextFocus, keys.PrevFocus, keys.Up, keys.Down, keys.MoveUp, keys.MoveDown, keys.Deselect, keys.Add, keys.Delete, keys.Menu}},
			components.HelpSection{Title: "Clipboard", Bindings: []key.Binding{keys.Copy, keys.Cut, keys.Paste, keys.ExternalCopy, keys.ExternalCut}},
			components.HelpSection{Title: "History", Bindings: []key.Binding{keys.Undo, keys.Redo, keys.UndoShortcut, keys.RedoShortcut, keys.History}},
			components.HelpSection{Title: "General", Bindings: []key.Binding{keys.Help, keys.Quit}},
		),
		historyModal: components.NewHistoryModal(),
		prompt:       components.NewPromptModal(),
		statusline:   components.NewStatuslineComponent(0),
		now:          time.Now,
	}, nil
}

// App returns the application the model hosts
func (m Model) App() *app.App {
	return m.app
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// focused returns the context holding focus and its position
func (m Model) focused() (*listcontext.ListContext, int) {
	for i, c := range m.app.Contexts {
		if c.ID() == m.focus.id {
			return c, i
		}
	}
	return nil, -1
}

func (m Model) setFocus(index int) {
	if index < 0 || index >= len(m.app.Contexts) {
		m.focus.id = ""
		return
	}
	m.focus.id = m.app.Contexts[index].ID()
}

func (m Model) cycleFocus(delta int) {
	n := len(m.app.Contexts)
	if n == 0 {
		return
	}
	_, i := m.focused()
	if i < 0 {
		i = 0
		if delta < 0 {
			i = n - 1
		}
		m.setFocus(i)
		return
	}
	m.setFocus(((i+delta)%n + n) % n)
}
