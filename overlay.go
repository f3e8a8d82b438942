package spyglass

import (
	"math"

	"github.com/phanxgames/spyglass/stage"
)

// DefaultNestColors is the initial nesting color table: depth 0 is the
// stage's direct children; depths past the end clamp to the last entry.
var DefaultNestColors = []stage.Color{
	{R: 0.4, G: 1, B: 0.4, A: 1},
	{R: 0.4, G: 0.75, B: 1, A: 1},
	{R: 1, G: 0.75, B: 0.4, A: 1},
	{R: 1, G: 0.5, B: 1, A: 1},
	{R: 0.7, G: 0.7, B: 0.7, A: 1},
}

// nestColorFor maps a nesting depth to its color: table[min(d, len-1)].
// An empty table is a caller contract violation and panics naturally.
func nestColorFor(colors []stage.Color, depth int) stage.Color {
	if depth >= len(colors) {
		depth = len(colors) - 1
	}
	return colors[depth]
}

// buildOverlay walks the tree depth-first with children visited before their
// parent, so parent annotations are appended after, and painted over, their
// descendants'. Nodes in exclude (the inspector's own layers) are skipped by
// identity, subtrees included. Unmatched and boundless nodes contribute
// nothing but their children are still visited.
func buildOverlay(root *stage.Node, filters []Filter,
	props PropertySet, colors []stage.Color, exclude ...*stage.Node) []primitive {

	var prims []primitive
	var walk func(n *stage.Node, depth int)
	walk = func(n *stage.Node, depth int) {
		for _, ex := range exclude {
			if n == ex {
				return
			}
		}
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
		if !matchAny(n, filters) {
			return
		}
		local, ok := resolveBounds(n)
		if !ok {
			return
		}
		global := globalRect(n, local)
		posX, posY := globalPosition(n)
		color := nestColorFor(colors, max(depth, 0))
		prims = append(prims, synthesize(n, local, global, posX, posY, color, props)...)
	}
	// The root's direct children sit at depth 0; the root itself clamps to 0
	// if it carries renderable bounds.
	walk(root, -1)
	return prims
}

// materialize rebuilds the overlay layer's contents from descriptors in
// order: consecutive geometry descriptors share one shape node, and every
// label becomes a text node that breaks the run, so a descriptor appearing
// later always paints over everything before it. The layer is emptied first,
// so a rebuild never accumulates stale annotations.
func materialize(prims []primitive, layer *stage.Node) {
	layer.RemoveChildren()

	var g *stage.Graphics
	marks := func() *stage.Graphics {
		if g == nil {
			shape := stage.NewShape("spyglass-marks")
			shape.MouseEnabled = false
			layer.AddChild(shape)
			g = shape.Graphics
		}
		return g
	}

	for _, p := range prims {
		switch p.kind {
		case primRect:
			marks().BeginFill(stage.Color{}).
				SetStrokeStyle(1).BeginStroke(p.color).
				Rect(p.rect.X, p.rect.Y, p.rect.Width, p.rect.Height)
		case primBackdrop:
			marks().BeginFill(backdropFill).
				SetStrokeStyle(1).BeginStroke(p.color).
				Rect(p.rect.X, p.rect.Y, p.rect.Width, p.rect.Height)
		case primCross:
			marks().BeginFill(stage.Color{}).
				SetStrokeStyle(1).BeginStroke(p.color).
				MoveTo(p.x-crossSize, p.y).LineTo(p.x+crossSize, p.y).
				MoveTo(p.x, p.y-crossSize).LineTo(p.x, p.y+crossSize)
		case primLabel:
			label := stage.NewText("spyglass-label", p.text)
			label.X, label.Y = p.x, p.y
			label.TextColor = p.color
			label.MouseEnabled = false
			if p.rotated {
				label.Rotation = math.Pi / 2
			}
			layer.AddChild(label)
			g = nil
		}
	}
}
