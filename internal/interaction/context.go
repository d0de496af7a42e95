package interaction

import (
	"listedit/internal/store"
	"listedit/internal/transfer"
)

// Copier produces a transfer payload for the current selection.
// An empty payload means there was nothing to copy.
type Copier interface {
	HandleCopy() *transfer.Payload
}

// Cutter removes the selected item through an undoable command and
// returns its payload.
type Cutter interface {
	HandleCut() (*transfer.Payload, error)
}

// Paster consumes a payload through an undoable command.
type Paster interface {
	HandlePaste(p *transfer.Payload) error
}

// DropContainer receives drags from any context.
type DropContainer interface {
	HandleDragOver(ev *DragEvent)
	HandleDrop(ev *DragEvent) error
	HandleDragEnter(ev *DragEvent)
	HandleDragLeave(ev *DragEvent)
}

// Draggable is the source side of a drag.
type Draggable interface {
	HandleDragStart(ev *DragEvent)
	HandleDrag(ev *DragEvent)
	HandleDragEnd(ev *DragEvent) error
}

// Contextual supplies the entries of a context menu.
type Contextual interface {
	ContextActions() []ContextAction
}

// Selector exposes the selection a context keeps privately.
type Selector interface {
	SelectAt(approximateIndex int)
	SelectedIndex() (int, bool)
}

// Context is an editing surface identified by a stable unique ID.
type Context interface {
	ID() string
	Copier
	Cutter
	Paster
	DropContainer
	Draggable
	Contextual
	Selector
}

// UserAction is something a user can invoke from a menu or a key.
type UserAction interface {
	Name() string
	Perform() error
}

// ContextAction is one entry of a context menu. Either Action is set, or
// Children holds a nested menu.
type ContextAction struct {
	Name     string
	Action   UserAction
	Children []ContextAction
}

// IsGroup reports whether the entry opens a nested menu
func (a ContextAction) IsGroup() bool {
	return a.Action == nil && len(a.Children) > 0
}

// DragEvent carries one drag-and-drop notification between host and
// contexts. The same event value travels from drag start to drag end.
type DragEvent struct {
	Data          *transfer.Payload
	EffectAllowed transfer.EffectAllowed
	DropEffect    transfer.DropEffect

	// TargetID is the context under the pointer, "" outside any context.
	TargetID string

	// Drop location recorded by the drop target.
	DropTarget string
	DropStore  *store.Store
	DropIndex  int
	Dropped    bool

	defaultPrevented bool
}

// NewDragEvent creates an event over target with an empty payload
func NewDragEvent(target string) *DragEvent {
	return &DragEvent{
		Data:          &transfer.Payload{},
		EffectAllowed: transfer.AllowUninitialized,
		DropEffect:    transfer.DropNone,
		TargetID:      target,
	}
}

// PreventDefault suppresses the host's default handling
func (e *DragEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *DragEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// FocusSource reports which element currently holds input focus in the host.
type FocusSource interface {
	FocusedID() string
}

// FocusFunc adapts a function to FocusSource
type FocusFunc func() string

func (f FocusFunc) FocusedID() string { return f() }
