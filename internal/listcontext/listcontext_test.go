package listcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listedit/internal/clipboard"
	"listedit/internal/command"
	"listedit/internal/interaction"
	"listedit/internal/store"
	"listedit/internal/transfer"
)

type env struct {
	store   *store.Store
	stack   *command.Stack
	manager *interaction.Manager
	arbiter *clipboard.Arbiter
	focused string
}

func newEnv(items ...string) *env {
	e := &env{store: store.New(items...), stack: command.NewStack()}
	e.manager = interaction.NewManager(e.stack, interaction.FocusFunc(func() string { return e.focused }))
	e.arbiter = clipboard.NewArbiter(e.manager, clipboard.NopHost{}, clipboard.WithMirror(false))
	return e
}

func (e *env) context(t *testing.T, id string) *ListContext {
	t.Helper()
	l := New(id, id, e.store, e.stack, e.arbiter)
	require.NoError(t, e.manager.Subscribe(l))
	return l
}

// drag runs a full drag sequence from src to dst, releasing over dstRow
func drag(t *testing.T, src, dst *ListContext, srcRow, dstRow int) *interaction.DragEvent {
	t.Helper()
	src.SelectAt(srcRow)
	ev := interaction.NewDragEvent(src.ID())
	src.HandleDragStart(ev)
	src.HandleDrag(ev)
	if src != dst {
		src.HandleDragLeave(ev)
		dst.HandleDragEnter(ev)
	}
	dst.HandleDragOver(ev)
	dst.SelectAt(dstRow)
	require.NoError(t, dst.HandleDrop(ev))
	require.NoError(t, src.HandleDragEnd(ev))
	return ev
}

func TestMirrorsStore(t *testing.T) {
	e := newEnv("A")
	l := e.context(t, "list")

	require.NoError(t, e.store.Insert(1, "B"))
	require.Len(t, l.Elements(), 2)
	assert.Equal(t, "B", l.Elements()[1].Label())

	rows := l.Rows()
	assert.Equal(t, Row{Index: 0, Text: "A"}, rows[0])
}

func TestSelectionFollowsItem(t *testing.T) {
	e := newEnv("A", "B", "C")
	l := e.context(t, "list")
	l.SelectAt(1)

	require.NoError(t, e.store.Insert(0, "X"))
	idx, ok := l.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "B", l.HandleCopy().Text())

	require.NoError(t, e.store.Insert(3, "Y"))
	idx, _ = l.SelectedIndex()
	assert.Equal(t, 2, idx)

	_, err := e.store.Remove(0)
	require.NoError(t, err)
	idx, _ = l.SelectedIndex()
	assert.Equal(t, 1, idx)
	assert.Equal(t, "B", l.HandleCopy().Text())

	_, err = e.store.Remove(1)
	require.NoError(t, err)
	_, ok = l.SelectedIndex()
	assert.False(t, ok)
}

func TestSelectionSurvivesEditsInOtherContext(t *testing.T) {
	e := newEnv("a", "b", "c")
	left := e.context(t, "left")
	right := e.context(t, "right")
	right.SelectAt(1)

	left.SelectAt(0)
	_, err := left.HandleCut()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, e.store.Items())
	assert.Equal(t, "b", right.HandleCopy().Text())

	_, ok := left.SelectedIndex()
	assert.False(t, ok, "the cut item was selected")

	require.NoError(t, e.stack.UndoLastAction())
	assert.Equal(t, "b", right.HandleCopy().Text())
}

func TestSelectAt(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")

	tests := []struct {
		name   string
		index  int
		want   int
		wantOK bool
	}{
		{"first", 0, 0, true},
		{"last", 1, 1, true},
		{"past the end", 2, 0, false},
		{"negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SelectAt(tt.index)
			got, ok := l.SelectedIndex()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSelectRow(t *testing.T) {
	e := newEnv("A", "B", "C")
	l := e.context(t, "list")

	l.SelectRow(5, 2)
	idx, ok := l.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	l.SelectRow(100, 2)
	_, ok = l.SelectedIndex()
	assert.False(t, ok)
}

func TestMoveSelection(t *testing.T) {
	e := newEnv("A", "B", "C")
	l := e.context(t, "list")

	l.MoveSelection(1)
	idx, _ := l.SelectedIndex()
	assert.Equal(t, 0, idx)

	l.MoveSelection(5)
	idx, _ = l.SelectedIndex()
	assert.Equal(t, 2, idx)

	l.ClearSelection()
	l.MoveSelection(-1)
	idx, _ = l.SelectedIndex()
	assert.Equal(t, 2, idx)
}

func TestCopy(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")

	assert.True(t, l.HandleCopy().Empty())

	l.SelectAt(1)
	assert.Equal(t, "B", l.HandleCopy().Text())
}

func TestCutSelectedOrLast(t *testing.T) {
	e := newEnv("A", "B", "C")
	l := e.context(t, "list")

	l.SelectAt(0)
	p, err := l.HandleCut()
	require.NoError(t, err)
	assert.Equal(t, "A", p.Text())

	l.ClearSelection()
	p, err = l.HandleCut()
	require.NoError(t, err)
	assert.Equal(t, "C", p.Text())
	assert.Equal(t, []string{"B"}, e.store.Items())
	assert.Equal(t, 2, e.stack.UndoCount())
}

func TestCutEmpty(t *testing.T) {
	e := newEnv()
	l := e.context(t, "list")

	p, err := l.HandleCut()
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.False(t, e.stack.CanUndo())
}

func TestPasteAppends(t *testing.T) {
	e := newEnv("A")
	l := e.context(t, "list")
	l.SelectAt(0)

	require.NoError(t, l.HandlePaste(transfer.NewText("B")))
	assert.Equal(t, []string{"A", "B"}, e.store.Items())

	require.NoError(t, l.HandlePaste(&transfer.Payload{}))
	assert.Equal(t, 1, e.stack.UndoCount())
}

func TestDragReorderIsOneUndoStep(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 2, []string{"B", "A", "C"}},
		{"up", 2, 0, []string{"C", "A", "B"}},
		{"to end", 0, 9, []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv("A", "B", "C")
			l := e.context(t, "list")

			ev := drag(t, l, l, tt.from, tt.to)
			assert.Equal(t, transfer.DropMove, ev.DropEffect)
			assert.Equal(t, tt.want, e.store.Items())
			assert.Equal(t, 1, e.stack.UndoCount())

			require.NoError(t, e.stack.UndoLastAction())
			assert.Equal(t, []string{"A", "B", "C"}, e.store.Items())

			require.NoError(t, e.stack.RedoAction())
			assert.Equal(t, tt.want, e.store.Items())
		})
	}
}

func TestDragBetweenContextsOnSharedStore(t *testing.T) {
	e := newEnv("A", "B", "C")
	left := e.context(t, "left")
	right := e.context(t, "right")

	drag(t, left, right, 0, 2)
	assert.Equal(t, []string{"B", "A", "C"}, e.store.Items())
	assert.Equal(t, 1, e.stack.UndoCount())
	assert.Equal(t, "A", right.HandleCopy().Text(), "dropped item stays selected")
}

func TestDragBetweenStores(t *testing.T) {
	e := newEnv("A", "B")
	src := e.context(t, "src")
	other := store.New("X")
	dst := New("dst", "dst", other, e.stack, e.arbiter)
	require.NoError(t, e.manager.Subscribe(dst))

	drag(t, src, dst, 0, 0)
	assert.Equal(t, []string{"B"}, e.store.Items())
	assert.Equal(t, []string{"A", "X"}, other.Items())

	require.NoError(t, e.stack.UndoLastAction())
	assert.Equal(t, []string{"A", "B"}, e.store.Items())
	assert.Equal(t, []string{"X"}, other.Items())
}

func TestDragStartOnEmptyList(t *testing.T) {
	e := newEnv()
	l := e.context(t, "list")

	ev := interaction.NewDragEvent("list")
	l.HandleDragStart(ev)
	assert.True(t, ev.DefaultPrevented())

	require.NoError(t, l.HandleDragEnd(ev))
	assert.False(t, e.stack.CanUndo())
}

func TestDropRejections(t *testing.T) {
	tests := []struct {
		name    string
		allowed transfer.EffectAllowed
		data    *transfer.Payload
	}{
		{"link only", transfer.AllowLink, transfer.NewText("x")},
		{"none", transfer.AllowNone, transfer.NewText("x")},
		{"no text type", transfer.AllowAll, func() *transfer.Payload {
			p := &transfer.Payload{}
			p.SetData("text/uri-list", "file:///etc/passwd")
			return p
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv("A")
			l := e.context(t, "list")

			ev := interaction.NewDragEvent("list")
			ev.Data = tt.data
			ev.EffectAllowed = tt.allowed
			ev.DropEffect = transfer.DropMove

			require.NoError(t, l.HandleDrop(ev))
			assert.Equal(t, transfer.DropNone, ev.DropEffect)
			assert.False(t, ev.Dropped)
			assert.Equal(t, []string{"A"}, e.store.Items())
		})
	}
}

func TestCancelledDragLeavesSource(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")
	l.SelectAt(0)

	ev := interaction.NewDragEvent("list")
	l.HandleDragStart(ev)
	l.HandleDragLeave(ev)
	require.NoError(t, l.HandleDragEnd(ev))

	assert.Equal(t, []string{"A", "B"}, e.store.Items())
	assert.False(t, e.stack.CanUndo())
}

func TestCopyDropKeepsSource(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")
	l.SelectAt(0)

	ev := interaction.NewDragEvent("list")
	l.HandleDragStart(ev)
	ev.EffectAllowed = transfer.AllowCopy
	ev.DropEffect = transfer.DropCopy
	l.ClearSelection()
	require.NoError(t, l.HandleDrop(ev))
	require.NoError(t, l.HandleDragEnd(ev))

	assert.Equal(t, []string{"A", "B", "A"}, e.store.Items())
}

func TestDragEnterRequiresText(t *testing.T) {
	e := newEnv()
	l := e.context(t, "list")

	ev := interaction.NewDragEvent("list")
	l.HandleDragEnter(ev)
	assert.Equal(t, transfer.DropNone, ev.DropEffect)

	ev.Data = transfer.NewText("x")
	l.HandleDragEnter(ev)
	assert.Equal(t, transfer.DropMove, ev.DropEffect)
}

func actionNames(actions []interaction.ContextAction) []string {
	var names []string
	for _, a := range actions {
		names = append(names, a.Name)
	}
	return names
}

func TestContextActions(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")

	assert.Equal(t, []string{"Paste", "History"}, actionNames(l.ContextActions()))

	l.SelectAt(0)
	actions := l.ContextActions()
	require.Equal(t, []string{"Copy", "Cut", "Delete", "Paste", "History"}, actionNames(actions))
	assert.True(t, actions[4].IsGroup())
	assert.Equal(t, []string{"Undo", "Redo"}, actionNames(actions[4].Children))

	// Delete then Undo through the menu
	require.NoError(t, actions[2].Action.Perform())
	assert.Equal(t, []string{"B"}, e.store.Items())
	require.NoError(t, actions[4].Children[0].Action.Perform())
	assert.Equal(t, []string{"A", "B"}, e.store.Items())
}

func TestMenuCopyPaste(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")
	e.focused = "list"
	l.SelectAt(1)

	actions := l.ContextActions()
	require.NoError(t, actions[0].Action.Perform())
	require.NoError(t, actions[3].Action.Perform())

	assert.Equal(t, []string{"A", "B", "B"}, e.store.Items())
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantSel  int
	}{
		{"down", 0, 2, []string{"B", "A", "C"}, 1},
		{"up", 2, 0, []string{"C", "A", "B"}, 0},
		{"to end", 0, 3, []string{"B", "C", "A"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv("A", "B", "C")
			l := e.context(t, "list")

			require.NoError(t, l.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, e.store.Items())
			sel, ok := l.SelectedIndex()
			require.True(t, ok)
			assert.Equal(t, tt.wantSel, sel)

			require.NoError(t, e.stack.UndoLastAction())
			assert.Equal(t, []string{"A", "B", "C"}, e.store.Items())
		})
	}
}

func TestMoveInPlaceIsNoop(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")

	require.NoError(t, l.Move(0, 0))
	require.NoError(t, l.Move(0, 1))
	assert.False(t, e.stack.CanUndo())
}

func TestMoveOutOfRange(t *testing.T) {
	e := newEnv("A", "B")
	l := e.context(t, "list")

	require.ErrorIs(t, l.Move(5, 0), store.ErrRange)
	require.ErrorIs(t, l.Move(0, 9), store.ErrRange)
}

func TestMoveSelected(t *testing.T) {
	e := newEnv("A", "B", "C")
	l := e.context(t, "list")

	require.NoError(t, l.MoveSelected(1), "no selection is a no-op")
	assert.False(t, e.stack.CanUndo())

	l.SelectAt(0)
	require.NoError(t, l.MoveSelected(1))
	assert.Equal(t, []string{"B", "A", "C"}, e.store.Items())

	require.NoError(t, l.MoveSelected(1))
	assert.Equal(t, []string{"B", "C", "A"}, e.store.Items())

	require.NoError(t, l.MoveSelected(1), "already last")
	assert.Equal(t, 2, e.stack.UndoCount())

	require.NoError(t, l.MoveSelected(-2))
	assert.Equal(t, []string{"A", "B", "C"}, e.store.Items())
}
