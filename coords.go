package spyglass

import "github.com/phanxgames/spyglass/stage"

// resolveBounds returns the node's local bounds, tolerating nodes for which
// no bounds are defined. Accessor errors are an expected condition (many
// container-only nodes have no intrinsic bounds) and yield ok=false rather
// than propagating.
//
// One compensation is applied before calling the accessor: a sprite whose
// current frame index sits exactly one past the end of its frame bounds
// table (the host's off-by-one after an unthrottled frame advance) resolves
// to the last table entry instead of tripping the overrun error.
func resolveBounds(n *stage.Node) (stage.Rect, bool) {
	if n.Type == stage.TypeSprite &&
		len(n.FrameBounds) > 0 && n.CurrentFrame == len(n.FrameBounds) {
		return n.FrameBounds[len(n.FrameBounds)-1], true
	}
	b, err := n.LocalBounds()
	if err != nil {
		return stage.Rect{}, false
	}
	return b, true
}

// globalRect maps local bounds into stage space by projecting the local
// top-left and bottom-right corners through the node's global transform.
// Width and height are the corner deltas.
func globalRect(n *stage.Node, local stage.Rect) stage.Rect {
	x0, y0 := n.LocalToGlobal(local.X, local.Y)
	x1, y1 := n.LocalToGlobal(local.X+local.Width, local.Y+local.Height)
	return stage.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// globalPosition returns the node's anchor point (X, Y) in stage space,
// independent of its bounds. The stage root maps through identity.
func globalPosition(n *stage.Node) (x, y float64) {
	if n.Parent == nil {
		return n.X, n.Y
	}
	return n.Parent.LocalToGlobal(n.X, n.Y)
}
