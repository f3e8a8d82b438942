package stage

import (
	"errors"
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ErrNoBounds is returned by LocalBounds for nodes with no intrinsic bounds
// and no explicit override. This is an expected condition for containers,
// not a failure.
var ErrNoBounds = errors.New("stage: node has no bounds")

// ErrFrameOverrun is returned by LocalBounds when a sprite's current frame
// index lies outside its frame bounds table.
var ErrFrameOverrun = errors.New("stage: sprite frame index outside bounds table")

// SetBounds installs an explicit local bounds rectangle that overrides the
// node's intrinsic bounds.
func (n *Node) SetBounds(r Rect) {
	n.setBounds = &r
}

// ClearBounds removes an explicit bounds override.
func (n *Node) ClearBounds() {
	n.setBounds = nil
}

// LocalBounds returns the node's bounds in its own coordinate space.
//
// An explicit SetBounds override wins for every node type. Otherwise shapes
// report their recorded graphics extents, text nodes their measured string
// size, and sprites the current entry of their frame bounds table. Containers
// have no intrinsic bounds and return ErrNoBounds; use AggregateBounds for a
// child union.
func (n *Node) LocalBounds() (Rect, error) {
	if n.setBounds != nil {
		return *n.setBounds, nil
	}
	switch n.Type {
	case TypeShape:
		if n.Graphics == nil || !n.Graphics.hasExtent {
			return Rect{}, ErrNoBounds
		}
		return n.Graphics.extent(), nil
	case TypeText:
		if n.Text == "" {
			return Rect{}, ErrNoBounds
		}
		w, h := MeasureText(n.Text)
		return Rect{Width: w, Height: h}, nil
	case TypeSprite:
		if len(n.FrameBounds) == 0 {
			if n.Image != nil {
				b := n.Image.Bounds()
				return Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
			}
			return Rect{}, ErrNoBounds
		}
		if n.CurrentFrame < 0 || n.CurrentFrame >= len(n.FrameBounds) {
			return Rect{}, fmt.Errorf("%w: frame %d of %d",
				ErrFrameOverrun, n.CurrentFrame, len(n.FrameBounds))
		}
		return n.FrameBounds[n.CurrentFrame], nil
	default:
		return Rect{}, ErrNoBounds
	}
}

// AggregateBounds returns the union of the children's bounds expressed in
// this node's local space, mapping each child's bounds corners through the
// child's local matrix. Children without bounds are skipped; returns
// ErrNoBounds if no child contributed.
func (n *Node) AggregateBounds() (Rect, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false

	for _, child := range n.children {
		b, err := child.LocalBounds()
		if err != nil {
			continue
		}
		m := child.localMatrix()
		corners := [4][2]float64{
			{b.X, b.Y},
			{b.X + b.Width, b.Y},
			{b.X, b.Y + b.Height},
			{b.X + b.Width, b.Y + b.Height},
		}
		for _, c := range corners {
			x, y := m.Apply(c[0], c[1])
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
		any = true
	}
	if !any {
		return Rect{}, ErrNoBounds
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, nil
}
