package useraction

import (
	"listedit/internal/command"
	"listedit/internal/store"
)

// ClipboardRequester issues internal clipboard requests for the focused context
type ClipboardRequester interface {
	RequestInternalCopy() error
	RequestInternalCut() error
	RequestInternalPaste() error
}

// History is the part of the command stack undo and redo need
type History interface {
	CanUndo() bool
	CanRedo() bool
	UndoLastAction() error
	RedoAction() error
}

// Copy copies the focused selection into the internal slot
type Copy struct {
	Clipboard ClipboardRequester
}

func (a Copy) Name() string   { return "Copy" }
func (a Copy) Perform() error { return a.Clipboard.RequestInternalCopy() }

// Cut moves the focused selection into the internal slot
type Cut struct {
	Clipboard ClipboardRequester
}

func (a Cut) Name() string   { return "Cut" }
func (a Cut) Perform() error { return a.Clipboard.RequestInternalCut() }

// Paste inserts the internal slot into the focused context
type Paste struct {
	Clipboard ClipboardRequester
}

func (a Paste) Name() string   { return "Paste" }
func (a Paste) Perform() error { return a.Clipboard.RequestInternalPaste() }

// Undo reverts the latest history entry, if any
type Undo struct {
	History History
}

func (a Undo) Name() string { return "Undo" }

func (a Undo) Perform() error {
	if !a.History.CanUndo() {
		return nil
	}
	return a.History.UndoLastAction()
}

// Redo re-applies the latest undone entry, if any
type Redo struct {
	History History
}

func (a Redo) Name() string { return "Redo" }

func (a Redo) Perform() error {
	if !a.History.CanRedo() {
		return nil
	}
	return a.History.RedoAction()
}

// Delete removes the selected item through the command stack
type Delete struct {
	Store    *store.Store
	Stack    *command.Stack
	Selected func() (int, bool)
}

func (a Delete) Name() string { return "Delete" }

func (a Delete) Perform() error {
	index, ok := a.Selected()
	if !ok {
		return nil
	}
	return a.Stack.PerformAction(command.NewRemoveText(a.Store, index), false)
}

// Func adapts a plain function to a named action
type Func struct {
	Label string
	Fn    func() error
}

func (a Func) Name() string   { return a.Label }
func (a Func) Perform() error { return a.Fn() }
