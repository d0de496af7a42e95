package interaction

import (
	"errors"
	"fmt"
	"reflect"

	"listedit/internal/command"
	"listedit/internal/logger"
	"listedit/internal/transfer"
)

// ErrDuplicateSubscription is returned when a context ID is already registered.
var ErrDuplicateSubscription = errors.New("duplicate subscription")

// Manager is the registry of live contexts. It resolves which context owns
// focus and handles the global undo/redo shortcuts.
type Manager struct {
	contexts []Context
	focus    FocusSource
	stack    *command.Stack
}

// NewManager creates a registry bound to the host focus and the command stack
func NewManager(stack *command.Stack, focus FocusSource) *Manager {
	return &Manager{
		stack: stack,
		focus: focus,
	}
}

// Subscribe registers ctx
func (m *Manager) Subscribe(ctx Context) error {
	for _, c := range m.contexts {
		if c.ID() == ctx.ID() {
			return fmt.Errorf("subscribe %q: %w", ctx.ID(), ErrDuplicateSubscription)
		}
	}
	m.contexts = append(m.contexts, ctx)
	logger.Debug("Subscribed context %q (%d live)", ctx.ID(), len(m.contexts))
	return nil
}

// Unsubscribe removes the first registered entry identical to ctx.
// Unknown contexts are ignored. Contexts whose type is not comparable
// match by ID.
func (m *Manager) Unsubscribe(ctx Context) {
	for i, c := range m.contexts {
		if sameContext(c, ctx) {
			m.contexts = append(m.contexts[:i], m.contexts[i+1:]...)
			logger.Debug("Unsubscribed context %q (%d live)", ctx.ID(), len(m.contexts))
			return
		}
	}
}

func sameContext(a, b Context) bool {
	if a.ID() != b.ID() {
		return false
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return true
	}
	return a == b
}

// Contexts returns the registered contexts in subscription order
func (m *Manager) Contexts() []Context {
	out := make([]Context, len(m.contexts))
	copy(out, m.contexts)
	return out
}

// Lookup returns the registered context with id
func (m *Manager) Lookup(id string) (Context, bool) {
	for _, c := range m.contexts {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// FindActiveContext returns the context whose ID matches host focus
func (m *Manager) FindActiveContext() (Context, bool) {
	if m.focus == nil {
		return nil, false
	}
	return m.Lookup(m.focus.FocusedID())
}

// GuardWindowDrag lets drags over registered contexts through and turns
// every other drag into a no-op so the host never loads dropped data.
func (m *Manager) GuardWindowDrag(ev *DragEvent) bool {
	if _, ok := m.Lookup(ev.TargetID); ok {
		return true
	}
	ev.EffectAllowed = transfer.AllowNone
	ev.DropEffect = transfer.DropNone
	ev.PreventDefault()
	return false
}

// HandleShortcut runs the undo/redo key bindings. It reports whether the
// key was consumed.
func (m *Manager) HandleShortcut(key string) (bool, error) {
	switch key {
	case "ctrl+z":
		if m.stack.CanUndo() {
			return true, m.stack.UndoLastAction()
		}
	case "ctrl+y":
		if m.stack.CanRedo() {
			return true, m.stack.RedoAction()
		}
	}
	return false, nil
}
