package command

import (
	"fmt"
	"strings"
)

// Bundle groups commands into a single undo unit.
//
// Do runs members in registration order. Undo runs them in reverse, so
// members that depend on each other's indices reverse cleanly.
type Bundle struct {
	commands []Command
}

// NewBundle creates a bundle holding cmds in order
func NewBundle(cmds ...Command) *Bundle {
	b := &Bundle{}
	for _, cmd := range cmds {
		b.Register(cmd)
	}
	return b
}

// Register appends cmd to the bundle
func (b *Bundle) Register(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Commands returns the members in registration order
func (b *Bundle) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Len returns the number of members
func (b *Bundle) Len() int {
	return len(b.commands)
}

// Do runs every member. When one fails, the members already done are
// undone in reverse so the bundle leaves nothing behind.
func (b *Bundle) Do() error {
	for i, cmd := range b.commands {
		if err := cmd.Do(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = b.commands[j].Undo()
			}
			return fmt.Errorf("bundle member %d: %w", i, err)
		}
	}
	return nil
}

func (b *Bundle) Undo() error {
	for i := len(b.commands) - 1; i >= 0; i-- {
		if err := b.commands[i].Undo(); err != nil {
			return fmt.Errorf("undo bundle member %d: %w", i, err)
		}
	}
	return nil
}

func (b *Bundle) Kind() Kind { return KindBundle }

func (b *Bundle) Description() string {
	parts := make([]string, 0, len(b.commands))
	for _, cmd := range b.commands {
		parts = append(parts, cmd.Description())
	}
	return "Bundle[" + strings.Join(parts, "; ") + "]"
}
