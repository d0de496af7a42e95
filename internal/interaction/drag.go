package interaction

import (
	"errors"
	"fmt"

	"listedit/internal/transfer"
)

// DragSession follows one pointer drag across the registered contexts and
// delivers the enter, over, leave, drop and end notifications in order.
type DragSession struct {
	manager *Manager
	source  Context
	over    Context
	ev      *DragEvent
}

// BeginDrag starts a drag from source. It returns false when the source
// refuses the drag.
func (m *Manager) BeginDrag(source Context) (*DragSession, bool) {
	ev := NewDragEvent(source.ID())
	source.HandleDragStart(ev)
	if ev.DefaultPrevented() {
		return nil, false
	}
	return &DragSession{
		manager: m,
		source:  source,
		over:    source,
		ev:      ev,
	}, true
}

// Event returns the event shared by every notification of this drag
func (d *DragSession) Event() *DragEvent {
	return d.ev
}

// Source returns the context the drag started in
func (d *DragSession) Source() Context {
	return d.source
}

// Over moves the pointer to targetID; "" means outside every context
func (d *DragSession) Over(targetID string) {
	d.source.HandleDrag(d.ev)
	d.ev.TargetID = targetID

	if d.over != nil && d.over.ID() == targetID {
		d.over.HandleDragOver(d.ev)
		return
	}
	if d.over != nil {
		d.over.HandleDragLeave(d.ev)
		d.over = nil
	}
	target, ok := d.manager.Lookup(targetID)
	if !ok {
		return
	}
	target.HandleDragEnter(d.ev)
	target.HandleDragOver(d.ev)
	d.over = target
}

// Drop releases the pointer over targetID and finishes the drag. Drops
// outside every context are neutralized and end as cancelled.
func (d *DragSession) Drop(targetID string) error {
	d.Over(targetID)

	var dropErr error
	if d.manager.GuardWindowDrag(d.ev) && d.over != nil {
		if err := d.over.HandleDrop(d.ev); err != nil {
			dropErr = fmt.Errorf("drop on %q: %w", d.over.ID(), err)
		}
	}
	return errors.Join(dropErr, d.source.HandleDragEnd(d.ev))
}

// Cancel abandons the drag without dropping
func (d *DragSession) Cancel() error {
	if d.over != nil {
		d.over.HandleDragLeave(d.ev)
		d.over = nil
	}
	d.ev.DropEffect = transfer.DropNone
	return d.source.HandleDragEnd(d.ev)
}
