package store

import (
	"errors"
	"fmt"
)

// ErrRange is returned when an index falls outside the valid range.
var ErrRange = errors.New("index out of range")

// ChangeType identifies what kind of mutation a Change describes.
type ChangeType int

const (
	ChangeInsert ChangeType = iota
	ChangeRemove
)

func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after every mutation.
type Change struct {
	Type  ChangeType
	Index int
	Value string
}

// Observer is notified synchronously after the store mutates.
//
// Observers must not call Insert or Remove from inside the callback;
// later observers would then see notifications out of order.
type Observer func(Change)

// ObserverHandle identifies a registered observer.
type ObserverHandle int

// Store owns the ordered sequence of text items. It is the only place
// document content is mutated. Store is not safe for concurrent use.
type Store struct {
	items     []string
	observers []Observer
}

// New creates a store seeded with items
func New(items ...string) *Store {
	s := &Store{items: make([]string, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of items
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a copy of the current sequence
func (s *Store) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item at index
func (s *Store) Get(index int) (string, error) {
	if index < 0 || index >= len(s.items) {
		return "", fmt.Errorf("get %d of %d: %w", index, len(s.items), ErrRange)
	}
	return s.items[index], nil
}

// Insert places value at index, shifting later items up.
// index may equal Len() to append.
func (s *Store) Insert(index int, value string) error {
	if index < 0 || index > len(s.items) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(s.items), ErrRange)
	}

	s.items = append(s.items, "")
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = value

	s.broadcast(Change{Type: ChangeInsert, Index: index, Value: value})
	return nil
}

// Remove deletes and returns the item at index, shifting later items down
func (s *Store) Remove(index int) (string, error) {
	if index < 0 || index >= len(s.items) {
		return "", fmt.Errorf("remove at %d of %d: %w", index, len(s.items), ErrRange)
	}

	value := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)

	s.broadcast(Change{Type: ChangeRemove, Index: index, Value: value})
	return value, nil
}

// Subscribe registers an observer. Observers run in registration order
// and live as long as the store.
func (s *Store) Subscribe(fn Observer) ObserverHandle {
	s.observers = append(s.observers, fn)
	return ObserverHandle(len(s.observers) - 1)
}

func (s *Store) broadcast(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}
