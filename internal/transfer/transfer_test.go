package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_ZeroValueIsEmpty(t *testing.T) {
	var p Payload
	assert.True(t, p.Empty())
	assert.Equal(t, "", p.Text())

	var nilPayload *Payload
	assert.True(t, nilPayload.Empty())
	assert.False(t, nilPayload.HasType(TypeText))
}

func TestPayload_SetDataKeepsTypeOrder(t *testing.T) {
	p := &Payload{}
	p.SetData("text/html", "<b>a</b>")
	p.SetData(TypeText, "a")
	p.SetData("text/html", "<i>a</i>")

	assert.Equal(t, []string{"text/html", TypeText}, p.Types())
	assert.Equal(t, "<i>a</i>", p.Data("text/html"))
}

func TestPayload_CloneIsIndependent(t *testing.T) {
	p := NewText("one")
	c := p.Clone()
	c.SetData(TypeText, "two")

	assert.Equal(t, "one", p.Text())
	assert.Equal(t, "two", c.Text())
}

func TestEffectAllowed_Sets(t *testing.T) {
	tests := []struct {
		effect EffectAllowed
		move   bool
		copy   bool
	}{
		{AllowNone, false, false},
		{AllowUninitialized, false, false},
		{AllowLink, false, false},
		{AllowMove, true, false},
		{AllowLinkMove, true, false},
		{AllowCopy, false, true},
		{AllowCopyLink, false, true},
		{AllowCopyMove, true, true},
		{AllowAll, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.effect), func(t *testing.T) {
			assert.Equal(t, tt.move, tt.effect.AllowsMove())
			assert.Equal(t, tt.copy, tt.effect.AllowsCopy())
		})
	}
}

func TestAcceptDrop(t *testing.T) {
	require.NoError(t, AcceptDrop(AllowAll, NewText("x")))
	require.NoError(t, AcceptDrop(AllowCopy, NewText("x")))

	err := AcceptDrop(AllowLink, NewText("x"))
	require.ErrorIs(t, err, ErrEffectNotAllowed)

	html := &Payload{}
	html.SetData("text/html", "<p>x</p>")
	err = AcceptDrop(AllowMove, html)
	require.ErrorIs(t, err, ErrTypeNotAllowed)

	err = AcceptDrop(AllowMove, nil)
	require.ErrorIs(t, err, ErrTypeNotAllowed)
}

func TestParseEffectAllowed(t *testing.T) {
	e, err := ParseEffectAllowed("copyMove")
	require.NoError(t, err)
	assert.Equal(t, AllowCopyMove, e)

	_, err = ParseEffectAllowed("teleport")
	require.Error(t, err)
}
