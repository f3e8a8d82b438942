package spyglass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/spyglass/stage"
)

func flashNodes(st *stage.Stage) []*stage.Node {
	return FindAll(st.Node, func(n *stage.Node) bool { return n.Name == "spyglass-flash" })
}

func TestHighlightAddsFlashOverGlobalBounds(t *testing.T) {
	st := stage.New()
	hero := boundedShape("hero", 10, 10, 20, 20)
	st.AddChild(hero)
	in := New(st)

	in.Highlight(hero, 100*time.Millisecond)

	flashes := flashNodes(st)
	require.Len(t, flashes, 1)
	assert.False(t, flashes[0].MouseEnabled)
	b, err := flashes[0].LocalBounds()
	require.NoError(t, err)
	assert.Equal(t, stage.Rect{X: 10, Y: 10, Width: 20, Height: 20}, b)
}

func TestHighlightKeepsOverlayOnTop(t *testing.T) {
	st := stage.New()
	hero := boundedShape("hero", 10, 10, 20, 20)
	st.AddChild(hero)
	in := New(st)
	in.Show()
	require.True(t, in.Showing())

	in.Highlight(hero, 100*time.Millisecond)

	require.Len(t, flashNodes(st), 1)
	assert.True(t, in.Showing(), "the flash slots in beneath the overlay layer")
}

func TestHighlightBoundlessNodeIsNoOp(t *testing.T) {
	st := stage.New()
	group := stage.NewContainer("group")
	st.AddChild(group)
	in := New(st)

	in.Highlight(group, 100*time.Millisecond)
	assert.Empty(t, flashNodes(st))
}

func TestHighlightFadesAndRemovesItself(t *testing.T) {
	st := stage.New()
	hero := boundedShape("hero", 10, 10, 20, 20)
	st.AddChild(hero)
	in := New(st)

	in.Highlight(hero, 30*time.Millisecond)
	require.Len(t, flashNodes(st), 1)

	// The flash steps on redraw notifications using wall-clock time.
	time.Sleep(10 * time.Millisecond)
	st.Draw(nil)
	flashes := flashNodes(st)
	require.Len(t, flashes, 1)
	assert.Less(t, flashes[0].Alpha, 1.0)

	time.Sleep(40 * time.Millisecond)
	st.Draw(nil)
	assert.Empty(t, flashNodes(st), "an expired flash removes itself from the stage")
	assert.Empty(t, in.flashes)
	assert.Nil(t, in.effects.Parent, "the effects container detaches with its last flash")
	assert.Equal(t, 1, st.NumChildren())
}

// An active flash is the inspector's own display object: the overlay never
// annotates it.
func TestHighlightFlashNotAnnotatedByOverlay(t *testing.T) {
	st := stage.New()
	hero := boundedShape("hero", 10, 10, 20, 20)
	st.AddChild(hero)
	in := New(st)
	in.SetProperties(PropertySet{PropBounds: true})
	in.SetLiveRefresh(false)

	in.Highlight(hero, time.Second)
	in.Show()

	assert.Len(t, labelTexts(in.layer), 1, "only the scene shape carries a bounds label")
}

func TestHighlightOverlappingFlashes(t *testing.T) {
	st := stage.New()
	a := boundedShape("a", 0, 0, 10, 10)
	b := boundedShape("b", 20, 0, 10, 10)
	st.AddChild(a)
	st.AddChild(b)
	in := New(st)

	in.Highlight(a, 20*time.Millisecond)
	in.Highlight(b, 200*time.Millisecond)
	require.Len(t, flashNodes(st), 2)

	time.Sleep(40 * time.Millisecond)
	st.Draw(nil)
	flashes := flashNodes(st)
	require.Len(t, flashes, 1, "only the longer flash survives")
	bb, err := flashes[0].LocalBounds()
	require.NoError(t, err)
	assert.Equal(t, 20.0, bb.X)
}
