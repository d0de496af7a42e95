package command

import (
	"errors"
	"fmt"

	"listedit/internal/logger"
)

// ErrInvalidOperation is returned for undo/redo on an empty stack and for
// bundling when there is nothing to bundle with.
var ErrInvalidOperation = errors.New("invalid operation")

// Registrar is implemented by commands that can absorb further commands.
type Registrar interface {
	Command
	Register(cmd Command)
}

// Stack records performed commands for undo and undone commands for redo.
// Stack is not safe for concurrent use; every call is expected to run to
// completion inside one host event.
type Stack struct {
	history []Command
	redo    []Command
}

// NewStack creates an empty stack
func NewStack() *Stack {
	return &Stack{}
}

// PerformAction runs cmd and records it. With bundleWithPrevious the
// command joins the most recent history entry so a single undo reverses
// both.
func (s *Stack) PerformAction(cmd Command, bundleWithPrevious bool) error {
	s.redo = s.redo[:0]

	if bundleWithPrevious && len(s.history) == 0 {
		return fmt.Errorf("bundle %q: no command to bundle with: %w", cmd.Description(), ErrInvalidOperation)
	}

	if err := cmd.Do(); err != nil {
		return err
	}
	logger.Action("perform", cmd.Description())

	if !bundleWithPrevious {
		s.history = append(s.history, cmd)
		return nil
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	if last.Kind() == KindBundle {
		if b, ok := last.(Registrar); ok {
			b.Register(cmd)
			s.history = append(s.history, b)
			logger.Debug("Bundled into existing bundle, history: %d", len(s.history))
			return nil
		}
	}

	s.history = append(s.history, NewBundle(last, cmd))
	logger.Debug("Created bundle from top entry, history: %d", len(s.history))
	return nil
}

// UndoLastAction reverses the most recent history entry
func (s *Stack) UndoLastAction() error {
	if len(s.history) == 0 {
		return fmt.Errorf("undo: nothing to undo: %w", ErrInvalidOperation)
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.redo = append(s.redo, last)

	if err := last.Undo(); err != nil {
		return err
	}
	logger.Action("undo", last.Description())
	return nil
}

// RedoAction replays the most recently undone entry
func (s *Stack) RedoAction() error {
	if len(s.redo) == 0 {
		return fmt.Errorf("redo: nothing to redo: %w", ErrInvalidOperation)
	}

	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	if err := next.Do(); err != nil {
		s.redo = append(s.redo, next)
		return err
	}
	s.history = append(s.history, next)
	logger.Action("redo", next.Description())
	return nil
}

// CanUndo reports whether there is a history entry
func (s *Stack) CanUndo() bool {
	return len(s.history) > 0
}

// CanRedo reports whether there is a redo entry
func (s *Stack) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoCount returns the number of history entries
func (s *Stack) UndoCount() int {
	return len(s.history)
}

// RedoCount returns the number of redo entries
func (s *Stack) RedoCount() int {
	return len(s.redo)
}

// PeekUndo describes the entry UndoLastAction would reverse
func (s *Stack) PeekUndo() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	return s.history[len(s.history)-1].Description(), true
}

// PeekRedo describes the entry RedoAction would replay
func (s *Stack) PeekRedo() (string, bool) {
	if len(s.redo) == 0 {
		return "", false
	}
	return s.redo[len(s.redo)-1].Description(), true
}

// Descriptions lists the history and redo entries, oldest first
func (s *Stack) Descriptions() (undo, redo []string) {
	for _, c := range s.history {
		undo = append(undo, c.Description())
	}
	for _, c := range s.redo {
		redo = append(redo, c.Description())
	}
	return undo, redo
}
