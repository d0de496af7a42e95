package listcontext

import "listedit/internal/transfer"

// Element is one rendered row. The set of element kinds is closed.
type Element interface {
	Label() string
	Payload() *transfer.Payload
	isElement()
}

// TextElement is a plain text item
type TextElement struct {
	Value string
}

func (e TextElement) Label() string              { return e.Value }
func (e TextElement) Payload() *transfer.Payload { return transfer.NewText(e.Value) }
func (TextElement) isElement()                   {}

// Row is the read-only view of one element for renderers
type Row struct {
	Index    int
	Text     string
	Selected bool
}
