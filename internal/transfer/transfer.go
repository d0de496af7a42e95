package transfer

import (
	"errors"
	"fmt"
)

// TypeText is the only transfer type listedit produces or accepts.
const TypeText = "text/plain"

// Payload is the data exchanged by copy, cut, paste and drag-and-drop.
// The zero value is an empty payload.
type Payload struct {
	data  map[string]string
	types []string
}

// NewText creates a payload carrying a single text value
func NewText(text string) *Payload {
	p := &Payload{}
	p.SetData(TypeText, text)
	return p
}

// SetData stores value under the given type, replacing any previous value
func (p *Payload) SetData(typ, value string) {
	if p.data == nil {
		p.data = make(map[string]string)
	}
	if _, ok := p.data[typ]; !ok {
		p.types = append(p.types, typ)
	}
	p.data[typ] = value
}

// Data returns the value stored under typ, or "" when absent
func (p *Payload) Data(typ string) string {
	if p == nil {
		return ""
	}
	return p.data[typ]
}

// Text is shorthand for Data(TypeText)
func (p *Payload) Text() string {
	return p.Data(TypeText)
}

// Types lists the advertised types in the order they were set
func (p *Payload) Types() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.types))
	copy(out, p.types)
	return out
}

// HasType reports whether the payload advertises typ
func (p *Payload) HasType(typ string) bool {
	if p == nil {
		return false
	}
	_, ok := p.data[typ]
	return ok
}

// Empty reports whether the payload carries no data at all
func (p *Payload) Empty() bool {
	return p == nil || len(p.types) == 0
}

// Clone returns an independent copy
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}
	c := &Payload{}
	for _, typ := range p.types {
		c.SetData(typ, p.data[typ])
	}
	return c
}

// DropEffect is the operation a drop target performs.
type DropEffect string

const (
	DropNone          DropEffect = "none"
	DropUninitialized DropEffect = "uninitialized"
	DropCopy          DropEffect = "copy"
	DropMove          DropEffect = "move"
	DropLink          DropEffect = "link"
)

// EffectAllowed is the set of operations a drag source permits.
type EffectAllowed string

const (
	AllowNone          EffectAllowed = "none"
	AllowUninitialized EffectAllowed = "uninitialized"
	AllowCopy          EffectAllowed = "copy"
	AllowMove          EffectAllowed = "move"
	AllowLink          EffectAllowed = "link"
	AllowCopyMove      EffectAllowed = "copyMove"
	AllowCopyLink      EffectAllowed = "copyLink"
	AllowLinkMove      EffectAllowed = "linkMove"
	AllowAll           EffectAllowed = "all"
)

// AllowsMove reports whether a move is among the permitted effects
func (e EffectAllowed) AllowsMove() bool {
	switch e {
	case AllowMove, AllowLinkMove, AllowCopyMove, AllowAll:
		return true
	}
	return false
}

// AllowsCopy reports whether a copy is among the permitted effects
func (e EffectAllowed) AllowsCopy() bool {
	switch e {
	case AllowCopy, AllowCopyLink, AllowCopyMove, AllowAll:
		return true
	}
	return false
}

// ParseEffectAllowed maps a textual effect name onto EffectAllowed
func ParseEffectAllowed(s string) (EffectAllowed, error) {
	switch e := EffectAllowed(s); e {
	case AllowNone, AllowUninitialized, AllowCopy, AllowMove, AllowLink,
		AllowCopyMove, AllowCopyLink, AllowLinkMove, AllowAll:
		return e, nil
	}
	return "", fmt.Errorf("unknown drag effect %q", s)
}

var (
	// ErrEffectNotAllowed means the drag source permits neither move nor copy.
	ErrEffectNotAllowed = errors.New("drop effect not allowed")
	// ErrTypeNotAllowed means the payload does not advertise text.
	ErrTypeNotAllowed = errors.New("transfer type not allowed")
)

// AcceptDrop validates a drop before any payload is consumed.
func AcceptDrop(allowed EffectAllowed, p *Payload) error {
	if !allowed.AllowsMove() && !allowed.AllowsCopy() {
		return fmt.Errorf("%w: %s", ErrEffectNotAllowed, allowed)
	}
	if !p.HasType(TypeText) {
		return fmt.Errorf("%w: %v", ErrTypeNotAllowed, p.Types())
	}
	return nil
}
