package command

import (
	"errors"
	"fmt"

	"listedit/internal/store"
)

// ErrInvalidCommandState is returned when Undo runs before Do.
var ErrInvalidCommandState = errors.New("invalid command state")

// Kind discriminates command variants. The stack relies on it to tell a
// bundle apart from a single command.
type Kind int

const (
	KindSingle Kind = iota
	KindBundle
)

func (k Kind) String() string {
	if k == KindBundle {
		return "bundle"
	}
	return "single"
}

// Command is a reversible mutation of one or more stores.
type Command interface {
	// Do performs the mutation. Calling Do again after Undo replays it.
	Do() error

	// Undo restores the stores to their state before Do.
	Undo() error

	// Kind reports whether this is a single command or a bundle.
	Kind() Kind

	// Description returns a short human-readable label.
	Description() string
}

// AddText inserts Text at Index.
type AddText struct {
	store *store.Store
	Text  string
	Index int
}

// NewAddText creates a command that inserts text at index
func NewAddText(s *store.Store, text string, index int) *AddText {
	return &AddText{store: s, Text: text, Index: index}
}

func (c *AddText) Do() error {
	if err := c.store.Insert(c.Index, c.Text); err != nil {
		return fmt.Errorf("add text: %w", err)
	}
	return nil
}

func (c *AddText) Undo() error {
	if _, err := c.store.Remove(c.Index); err != nil {
		return fmt.Errorf("undo add text: %w", err)
	}
	return nil
}

func (c *AddText) Kind() Kind { return KindSingle }

func (c *AddText) Description() string {
	return fmt.Sprintf("Add %q at %d", c.Text, c.Index)
}

// RemoveText removes the item at Index and remembers it for Undo.
type RemoveText struct {
	store   *store.Store
	Index   int
	removed *string
}

// NewRemoveText creates a command that removes the item at index
func NewRemoveText(s *store.Store, index int) *RemoveText {
	return &RemoveText{store: s, Index: index}
}

func (c *RemoveText) Do() error {
	v, err := c.store.Remove(c.Index)
	if err != nil {
		return fmt.Errorf("remove text: %w", err)
	}
	c.removed = &v
	return nil
}

func (c *RemoveText) Undo() error {
	if c.removed == nil {
		return fmt.Errorf("undo remove text at %d: %w", c.Index, ErrInvalidCommandState)
	}
	if err := c.store.Insert(c.Index, *c.removed); err != nil {
		return fmt.Errorf("undo remove text: %w", err)
	}
	return nil
}

func (c *RemoveText) Kind() Kind { return KindSingle }

// Removed returns the value taken out by the last Do
func (c *RemoveText) Removed() (string, bool) {
	if c.removed == nil {
		return "", false
	}
	return *c.removed, true
}

func (c *RemoveText) Description() string {
	if c.removed != nil {
		return fmt.Sprintf("Remove %q at %d", *c.removed, c.Index)
	}
	return fmt.Sprintf("Remove item at %d", c.Index)
}

// MoveText inserts Text into the destination store and removes the item
// at SourceIndex from the source store. Source and destination may be the
// same store; indices are interpreted in order, destination first.
type MoveText struct {
	source      *store.Store
	dest        *store.Store
	SourceIndex int
	DestIndex   int
	Text        string
}

// NewMoveText creates a move between two stores
func NewMoveText(source *store.Store, sourceIndex int, dest *store.Store, destIndex int, text string) *MoveText {
	return &MoveText{
		source:      source,
		dest:        dest,
		SourceIndex: sourceIndex,
		DestIndex:   destIndex,
		Text:        text,
	}
}

func (c *MoveText) Do() error {
	if err := c.dest.Insert(c.DestIndex, c.Text); err != nil {
		return fmt.Errorf("move text: %w", err)
	}
	if _, err := c.source.Remove(c.SourceIndex); err != nil {
		// Roll back the insert so a failed move leaves nothing behind.
		_, _ = c.dest.Remove(c.DestIndex)
		return fmt.Errorf("move text: %w", err)
	}
	return nil
}

func (c *MoveText) Undo() error {
	if err := c.source.Insert(c.SourceIndex, c.Text); err != nil {
		return fmt.Errorf("undo move text: %w", err)
	}
	if _, err := c.dest.Remove(c.DestIndex); err != nil {
		return fmt.Errorf("undo move text: %w", err)
	}
	return nil
}

func (c *MoveText) Kind() Kind { return KindSingle }

func (c *MoveText) Description() string {
	return fmt.Sprintf("Move %q from %d to %d", c.Text, c.SourceIndex, c.DestIndex)
}
