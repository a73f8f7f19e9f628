package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/gensyn"
)

func TestDirectory(t *testing.T) {
	g := newTestGraph(t)
	h, err := g.Add("Const", "bass")
	require.NoError(t, err)
	got, ok := g.Lookup("bass")
	require.True(t, ok)
	assert.Equal(t, h, got)
	name, ok := g.NameOf(h)
	require.True(t, ok)
	assert.Equal(t, "bass", name)

	_, err = g.Add("Sum", "bass")
	assert.ErrorIs(t, err, gensyn.ErrDuplicateName)
	_, err = g.Add("Sum", "")
	assert.ErrorIs(t, err, gensyn.ErrEmptyName)
	_, err = g.Add("Nope", "x")
	assert.ErrorIs(t, err, gensyn.ErrUnknownGate)
	_, ok = g.Lookup("x")
	assert.False(t, ok, "a failed add must not register the name")
	assert.Equal(t, 1, g.Len())

	_, err = g.Add("Sum", "alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bass"}, g.Names())

	require.NoError(t, g.Remove("bass"))
	_, ok = g.Lookup("bass")
	assert.False(t, ok)
	_, ok = g.NameOf(h)
	assert.False(t, ok)
	assert.ErrorIs(t, g.Remove("bass"), gensyn.ErrUnknownGate)
}

func TestDestroyForgetsName(t *testing.T) {
	g := newTestGraph(t)
	h, err := g.Add("Const", "gone")
	require.NoError(t, err)
	require.NoError(t, g.Destroy(h))
	assert.Empty(t, g.Names())
	_, err = g.Add("Const", "gone")
	assert.NoError(t, err, "the name is free again")
}

func TestAddAnonymous(t *testing.T) {
	g := newTestGraph(t)
	h1, n1, err := g.AddAnonymous("Const")
	require.NoError(t, err)
	_, n2, err := g.AddAnonymous("Const")
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
	assert.True(t, strings.HasPrefix(n1, "Const-"))
	got, ok := g.Lookup(n1)
	require.True(t, ok)
	assert.Equal(t, h1, got)
}
