package listcontext

import (
	"fmt"

	"listedit/internal/command"
	"listedit/internal/interaction"
	"listedit/internal/logger"
	"listedit/internal/store"
	"listedit/internal/transfer"
	"listedit/internal/useraction"
)

const noSelection = -1

// ListContext is an editing surface that shows a Store as a vertical list
// of rows. Several contexts may view the same Store.
type ListContext struct {
	id        string
	title     string
	store     *store.Store
	stack     *command.Stack
	clipboard useraction.ClipboardRequester

	elements []Element
	selected int

	// Source side of an in-flight drag
	dragging  bool
	dragIndex int
}

// New creates a context over s. Mutations go through stack; menu clipboard
// actions go through clipboard.
func New(id, title string, s *store.Store, stack *command.Stack, clipboard useraction.ClipboardRequester) *ListContext {
	l := &ListContext{
		id:        id,
		title:     title,
		store:     s,
		stack:     stack,
		clipboard: clipboard,
		selected:  noSelection,
	}
	l.sync()
	s.Subscribe(l.track)
	return l
}

var _ interaction.Context = (*ListContext)(nil)

func (l *ListContext) ID() string    { return l.id }
func (l *ListContext) Title() string { return l.title }

// Store returns the document this context edits
func (l *ListContext) Store() *store.Store { return l.store }

// track keeps the selection on the same item when any context edits the
// shared store. Removing the selected item clears the selection.
func (l *ListContext) track(c store.Change) {
	if l.selected != noSelection {
		switch c.Type {
		case store.ChangeInsert:
			if c.Index <= l.selected {
				l.selected++
			}
		case store.ChangeRemove:
			switch {
			case c.Index == l.selected:
				l.selected = noSelection
			case c.Index < l.selected:
				l.selected--
			}
		}
	}
	l.sync()
}

// sync rebuilds the elements from the store and clamps the selection
func (l *ListContext) sync() {
	items := l.store.Items()
	l.elements = l.elements[:0]
	for _, item := range items {
		l.elements = append(l.elements, TextElement{Value: item})
	}
	if l.selected >= len(l.elements) {
		l.selected = len(l.elements) - 1
	}
}

// Elements returns the current elements in store order
func (l *ListContext) Elements() []Element {
	out := make([]Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Rows returns the elements as display rows
func (l *ListContext) Rows() []Row {
	rows := make([]Row, len(l.elements))
	for i, e := range l.elements {
		rows[i] = Row{Index: i, Text: e.Label(), Selected: i == l.selected}
	}
	return rows
}

// SelectAt selects the element nearest a pointer position. Positions
// outside the list clear the selection.
func (l *ListContext) SelectAt(approximateIndex int) {
	if approximateIndex < 0 || approximateIndex >= len(l.elements) {
		l.selected = noSelection
		return
	}
	l.selected = approximateIndex
}

// SelectRow selects by vertical offset within the pane
func (l *ListContext) SelectRow(y, rowHeight int) {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	if y < 0 {
		l.ClearSelection()
		return
	}
	l.SelectAt(y / rowHeight)
}

func (l *ListContext) SelectedIndex() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

func (l *ListContext) ClearSelection() {
	l.selected = noSelection
}

// MoveSelection moves the selection by delta, stopping at either end
func (l *ListContext) MoveSelection(delta int) {
	n := len(l.elements)
	if n == 0 {
		l.selected = noSelection
		return
	}
	if l.selected == noSelection {
		if delta > 0 {
			l.selected = 0
		} else {
			l.selected = n - 1
		}
		return
	}
	l.selected = max(0, min(n-1, l.selected+delta))
}

// target is the selected index, or the last element when nothing is selected
func (l *ListContext) target() (int, bool) {
	if len(l.elements) == 0 {
		return 0, false
	}
	if l.selected == noSelection {
		return len(l.elements) - 1, true
	}
	return l.selected, true
}

func (l *ListContext) HandleCopy() *transfer.Payload {
	if l.selected == noSelection {
		return &transfer.Payload{}
	}
	return l.elements[l.selected].Payload()
}

func (l *ListContext) HandleCut() (*transfer.Payload, error) {
	index, ok := l.target()
	if !ok {
		return &transfer.Payload{}, nil
	}
	cmd := command.NewRemoveText(l.store, index)
	if err := l.stack.PerformAction(cmd, false); err != nil {
		return nil, err
	}
	text, _ := cmd.Removed()
	return transfer.NewText(text), nil
}

// HandlePaste appends the payload text to the end of the list
func (l *ListContext) HandlePaste(p *transfer.Payload) error {
	if !p.HasType(transfer.TypeText) {
		return nil
	}
	return l.stack.PerformAction(command.NewAddText(l.store, p.Text(), l.store.Len()), false)
}

// Move relocates the item at from so that it lands in front of the item
// currently at to, the way a drop at row to would. to may equal Len().
// The move is a single undo step and the moved item stays selected.
func (l *ListContext) Move(from, to int) error {
	text, err := l.store.Get(from)
	if err != nil {
		return fmt.Errorf("move in %q: %w", l.id, err)
	}
	if to < 0 || to > l.store.Len() {
		return fmt.Errorf("move in %q to %d: %w", l.id, to, store.ErrRange)
	}
	if to == from || to == from+1 {
		return nil
	}

	source, final := from, to-1
	if to < from {
		source, final = from+1, to
	}
	if err := l.stack.PerformAction(command.NewMoveText(l.store, source, l.store, to, text), false); err != nil {
		return fmt.Errorf("move in %q: %w", l.id, err)
	}
	l.selected = final
	return nil
}

// MoveSelected shifts the selected item by delta rows
func (l *ListContext) MoveSelected(delta int) error {
	if l.selected == noSelection || delta == 0 {
		return nil
	}
	target := max(0, min(len(l.elements)-1, l.selected+delta))
	if target == l.selected {
		return nil
	}
	if target > l.selected {
		return l.Move(l.selected, target+1)
	}
	return l.Move(l.selected, target)
}

func (l *ListContext) HandleDragStart(ev *interaction.DragEvent) {
	index, ok := l.target()
	if !ok {
		ev.PreventDefault()
		return
	}
	l.dragging = true
	l.dragIndex = index

	ev.Data = l.elements[index].Payload()
	ev.EffectAllowed = transfer.AllowAll
	ev.DropEffect = transfer.DropMove
}

func (l *ListContext) HandleDrag(*interaction.DragEvent) {}

func (l *ListContext) HandleDragEnter(ev *interaction.DragEvent) {
	if !ev.Data.HasType(transfer.TypeText) {
		logger.Debug("Drag entered %q without text, types %v", l.id, ev.Data.Types())
		return
	}
	ev.DropEffect = transfer.DropMove
}

func (l *ListContext) HandleDragLeave(ev *interaction.DragEvent) {
	ev.DropEffect = transfer.DropNone
}

// HandleDragOver accepts the drag so the host does not load the data itself
func (l *ListContext) HandleDragOver(ev *interaction.DragEvent) {
	ev.PreventDefault()
}

// HandleDrop inserts the dragged text at the selection, or at the end, and
// selects it
func (l *ListContext) HandleDrop(ev *interaction.DragEvent) error {
	ev.PreventDefault()
	if err := transfer.AcceptDrop(ev.EffectAllowed, ev.Data); err != nil {
		logger.Debug("Drop on %q rejected: %v", l.id, err)
		ev.DropEffect = transfer.DropNone
		return nil
	}

	index := l.store.Len()
	if l.selected != noSelection {
		index = l.selected
	}
	if err := l.stack.PerformAction(command.NewAddText(l.store, ev.Data.Text(), index), false); err != nil {
		return fmt.Errorf("drop on %q: %w", l.id, err)
	}

	// Settle on an effect the source permits
	switch {
	case ev.DropEffect == transfer.DropMove && ev.EffectAllowed.AllowsMove():
	case ev.DropEffect == transfer.DropCopy && ev.EffectAllowed.AllowsCopy():
	case ev.EffectAllowed.AllowsMove():
		ev.DropEffect = transfer.DropMove
	default:
		ev.DropEffect = transfer.DropCopy
	}
	l.selected = index
	ev.Dropped = true
	ev.DropTarget = l.id
	ev.DropIndex = index
	ev.DropStore = l.store
	return nil
}

// HandleDragEnd finishes a drag this context started. A move removes the
// original item in the same undo step as the drop.
func (l *ListContext) HandleDragEnd(ev *interaction.DragEvent) error {
	if !l.dragging {
		return nil
	}
	l.dragging = false
	if ev.DropEffect == transfer.DropNone || !ev.Dropped {
		return nil
	}

	index := l.dragIndex
	l.selected = noSelection
	if ev.DropEffect != transfer.DropMove {
		return nil
	}
	// The drop shifted the original down
	if ev.DropStore == l.store && ev.DropIndex <= index {
		index++
	}
	if err := l.stack.PerformAction(command.NewRemoveText(l.store, index), true); err != nil {
		return fmt.Errorf("finish move from %q: %w", l.id, err)
	}
	return nil
}

// ContextActions lists the element actions for the selection followed by
// the actions that apply to the whole list.
func (l *ListContext) ContextActions() []interaction.ContextAction {
	var actions []interaction.ContextAction
	if l.selected != noSelection {
		actions = append(actions,
			interaction.ContextAction{Name: "Copy", Action: useraction.Copy{Clipboard: l.clipboard}},
			interaction.ContextAction{Name: "Cut", Action: useraction.Cut{Clipboard: l.clipboard}},
			interaction.ContextAction{Name: "Delete", Action: useraction.Delete{
				Store:    l.store,
				Stack:    l.stack,
				Selected: l.SelectedIndex,
			}},
		)
	}
	return append(actions,
		interaction.ContextAction{Name: "Paste", Action: useraction.Paste{Clipboard: l.clipboard}},
		interaction.ContextAction{Name: "History", Children: []interaction.ContextAction{
			{Name: "Undo", Action: useraction.Undo{History: l.stack}},
			{Name: "Redo", Action: useraction.Redo{History: l.stack}},
		}},
	)
}
