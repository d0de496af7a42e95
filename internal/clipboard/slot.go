package clipboard

import (
	"time"

	"github.com/google/uuid"

	"listedit/internal/transfer"
)

// Entry is one value held in the internal slot. IDs are time ordered so
// the journal can correlate a paste with the copy that produced it.
type Entry struct {
	ID      uuid.UUID
	Payload *transfer.Payload
	Source  string
	Stored  time.Time
}

// slot holds at most one entry
type slot struct {
	entry *Entry
}

func (s *slot) store(p *transfer.Payload, source string, now time.Time) Entry {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	s.entry = &Entry{
		ID:      id,
		Payload: p.Clone(),
		Source:  source,
		Stored:  now,
	}
	return *s.entry
}

func (s *slot) clear() {
	s.entry = nil
}

func (s *slot) get() (Entry, bool) {
	if s.entry == nil {
		return Entry{}, false
	}
	e := *s.entry
	e.Payload = s.entry.Payload.Clone()
	return e, true
}
