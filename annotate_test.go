package spyglass

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/spyglass/stage"
)

func TestFmtNum(t *testing.T) {
	assert.Equal(t, "5", fmtNum(5))
	assert.Equal(t, "0", fmtNum(0))
	assert.Equal(t, "-3", fmtNum(-3))
	assert.Equal(t, "5.500", fmtNum(5.5))
	assert.Equal(t, "-0.250", fmtNum(-0.25))
	assert.Equal(t, "0.333", fmtNum(1.0/3.0))
}

func labelsOf(prims []primitive) []primitive {
	var out []primitive
	for _, p := range prims {
		if p.kind == primLabel {
			out = append(out, p)
		}
	}
	return out
}

func kindsOf(prims []primitive) []primitiveKind {
	out := make([]primitiveKind, len(prims))
	for i, p := range prims {
		out[i] = p.kind
	}
	return out
}

// A node at (5, 5) annotated with only the position property yields exactly
// one cross at the global position and one coordinate label.
func TestSynthesizePositionOnly(t *testing.T) {
	n := stage.NewShape("dot")
	n.X, n.Y = 5, 5
	n.SetBounds(stage.Rect{Width: 10, Height: 10})

	local, ok := resolveBounds(n)
	require.True(t, ok)
	prims := synthesize(n, local, globalRect(n, local), 5, 5,
		DefaultNestColors[0], PropertySet{PropPos: true})

	require.Equal(t, []primitiveKind{primCross, primLabel}, kindsOf(prims))
	assert.Equal(t, 5.0, prims[0].x)
	assert.Equal(t, 5.0, prims[0].y)
	assert.Equal(t, posColor, prims[0].color)
	assert.Equal(t, "5.000,5.000", prims[1].text)
}

func TestSynthesizeBoundsRectUsesNestColor(t *testing.T) {
	n := stage.NewShape("box")
	n.SetBounds(stage.Rect{Width: 30, Height: 20})
	nest := stage.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}

	local, _ := resolveBounds(n)
	global := globalRect(n, local)
	prims := synthesize(n, local, global, 0, 0, nest, PropertySet{PropBounds: true})

	require.Equal(t, []primitiveKind{primRect, primLabel}, kindsOf(prims))
	assert.Equal(t, global, prims[0].rect)
	assert.Equal(t, nest, prims[0].color)
	assert.Equal(t, "0.000,0.000", prims[1].text, "bounds label carries local origin")
}

func TestSynthesizeRegPosIndependentOfPos(t *testing.T) {
	n := stage.NewShape("box")
	n.RegX, n.RegY = 3, 4
	n.SetBounds(stage.Rect{Width: 10, Height: 10})

	local, _ := resolveBounds(n)
	prims := synthesize(n, local, globalRect(n, local), 0, 0,
		DefaultNestColors[0], PropertySet{PropRegPos: true})

	require.Equal(t, []primitiveKind{primCross, primLabel}, kindsOf(prims))
	assert.Equal(t, regColor, prims[0].color)
	assert.Equal(t, "3.000,4.000", prims[1].text)
}

func TestSynthesizeDimensionLabels(t *testing.T) {
	n := stage.NewShape("box")
	n.SetBounds(stage.Rect{Width: 30, Height: 20})

	local, _ := resolveBounds(n)
	prims := synthesize(n, local, globalRect(n, local), 0, 0,
		DefaultNestColors[0], PropertySet{PropWidth: true, PropHeight: true})

	labels := labelsOf(prims)
	require.Len(t, labels, 2)
	assert.Equal(t, "30.000", labels[0].text)
	assert.False(t, labels[0].rotated)
	assert.Equal(t, "20.000", labels[1].text)
	assert.True(t, labels[1].rotated, "height label runs down the left edge")
	assert.Equal(t, labelPad+stage.TextLineHeight(), labels[1].x,
		"rotated glyph box lands inside the left edge, not outside it")
}

// The info panel orders its lines id, name, parent id, then registry order,
// with a single backdrop emitted before the panel's labels.
func TestSynthesizeInfoPanelOrder(t *testing.T) {
	parent := stage.NewContainer("parent")
	n := stage.NewShape("hero")
	n.X = 5
	n.SetBounds(stage.Rect{Width: 10, Height: 10})
	parent.AddChild(n)

	props := PropertySet{
		PropID: true, PropName: true, PropParentID: true,
		"x": true, "alpha": true,
	}
	local, _ := resolveBounds(n)
	prims := synthesize(n, local, globalRect(n, local), 0, 0, DefaultNestColors[0], props)

	require.Equal(t, []primitiveKind{primBackdrop, primLabel, primLabel, primLabel, primLabel, primLabel},
		kindsOf(prims))
	labels := labelsOf(prims)
	assert.Equal(t, fmt.Sprintf("id: %d", n.ID), labels[0].text)
	assert.Equal(t, "name: hero", labels[1].text)
	assert.Equal(t, fmt.Sprintf("Parent ID: %d", parent.ID), labels[2].text)
	assert.Equal(t, "x: 5", labels[3].text)
	assert.Equal(t, "alpha: 1", labels[4].text)
}

func TestSynthesizeParentIDSkippedOnRoot(t *testing.T) {
	n := stage.NewShape("root")
	n.SetBounds(stage.Rect{Width: 10, Height: 10})

	local, _ := resolveBounds(n)
	prims := synthesize(n, local, globalRect(n, local), 0, 0,
		DefaultNestColors[0], PropertySet{PropParentID: true})

	assert.Empty(t, prims, "a parentless node has no parent id line and no panel")
}

func TestSynthesizeTypeSpecificKeys(t *testing.T) {
	shape := stage.NewShape("box")
	shape.SetBounds(stage.Rect{Width: 10, Height: 10})
	props := PropertySet{"currentFrame": true, "text": true}

	local, _ := resolveBounds(shape)
	prims := synthesize(shape, local, globalRect(shape, local), 0, 0, DefaultNestColors[0], props)
	assert.Empty(t, prims, "sprite and text keys do not apply to shapes")

	txt := stage.NewText("label", "hi")
	local, ok := resolveBounds(txt)
	require.True(t, ok)
	prims = synthesize(txt, local, globalRect(txt, local), 0, 0, DefaultNestColors[0], props)
	labels := labelsOf(prims)
	require.Len(t, labels, 1)
	assert.Equal(t, "text: hi", labels[0].text)
}

func TestSynthesizeStructuralKeysNeverEnterPanel(t *testing.T) {
	n := stage.NewShape("box")
	n.SetBounds(stage.Rect{Width: 10, Height: 10})

	local, _ := resolveBounds(n)
	prims := synthesize(n, local, globalRect(n, local), 0, 0, DefaultNestColors[0],
		PropertySet{PropBounds: true, PropPos: true, PropWidth: true, PropHeight: true})

	for _, p := range prims {
		assert.NotEqual(t, primBackdrop, p.kind, "drawn annotations alone produce no panel")
	}
}

func TestSynthesizeIsPure(t *testing.T) {
	n := stage.NewShape("box")
	n.X, n.Y = 5, 5
	n.SetBounds(stage.Rect{Width: 10, Height: 10})

	local, _ := resolveBounds(n)
	global := globalRect(n, local)
	a := synthesize(n, local, global, 5, 5, DefaultNestColors[0], DefaultProperties())
	b := synthesize(n, local, global, 5, 5, DefaultNestColors[0], DefaultProperties())
	assert.Equal(t, a, b)
}
