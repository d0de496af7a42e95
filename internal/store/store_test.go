package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InsertShiftsLaterItems(t *testing.T) {
	s := New("A", "C")

	require.NoError(t, s.Insert(1, "B"))
	assert.Equal(t, []string{"A", "B", "C"}, s.Items())

	require.NoError(t, s.Insert(3, "D"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Items())

	require.NoError(t, s.Insert(0, "Z"))
	assert.Equal(t, []string{"Z", "A", "B", "C", "D"}, s.Items())
}

func TestStore_InsertOutOfRange(t *testing.T) {
	s := New("A")

	err := s.Insert(2, "X")
	require.ErrorIs(t, err, ErrRange)

	err = s.Insert(-1, "X")
	require.ErrorIs(t, err, ErrRange)

	assert.Equal(t, []string{"A"}, s.Items())
}

func TestStore_RemoveReturnsValue(t *testing.T) {
	s := New("A", "B", "C")

	v, err := s.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "B", v)
	assert.Equal(t, []string{"A", "C"}, s.Items())
}

func TestStore_RemoveOutOfRange(t *testing.T) {
	s := New("A")

	_, err := s.Remove(1)
	require.ErrorIs(t, err, ErrRange)

	_, err = New().Remove(0)
	require.ErrorIs(t, err, ErrRange)
}

func TestStore_InsertRemoveRoundTrip(t *testing.T) {
	base := []string{"A", "B", "C"}

	for index := 0; index <= len(base); index++ {
		s := New(base...)
		require.NoError(t, s.Insert(index, "X"))

		v, err := s.Remove(index)
		require.NoError(t, err)
		assert.Equal(t, "X", v)
		assert.Equal(t, base, s.Items(), "index %d", index)
	}
}

func TestStore_ObserversRunInRegistrationOrder(t *testing.T) {
	s := New()
	var calls []string

	s.Subscribe(func(c Change) { calls = append(calls, "first:"+c.Type.String()) })
	s.Subscribe(func(c Change) { calls = append(calls, "second:"+c.Type.String()) })

	require.NoError(t, s.Insert(0, "A"))
	_, err := s.Remove(0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"first:insert", "second:insert",
		"first:remove", "second:remove",
	}, calls)
}

func TestStore_ObserverSeesChangeDetails(t *testing.T) {
	s := New("A", "B")
	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	require.NoError(t, s.Insert(1, "X"))
	_, err := s.Remove(0)
	require.NoError(t, err)

	assert.Equal(t, []Change{
		{Type: ChangeInsert, Index: 1, Value: "X"},
		{Type: ChangeRemove, Index: 0, Value: "A"},
	}, got)
}

func TestStore_FailedMutationDoesNotNotify(t *testing.T) {
	s := New()
	notified := false
	s.Subscribe(func(Change) { notified = true })

	_ = s.Insert(5, "X")
	_, _ = s.Remove(0)

	assert.False(t, notified)
}

func TestStore_ItemsIsACopy(t *testing.T) {
	s := New("A")
	items := s.Items()
	items[0] = "mutated"

	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", v)
}
