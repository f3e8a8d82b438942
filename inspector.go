package spyglass

import (
	"io"
	"os"

	"github.com/phanxgames/spyglass/stage"
)

// Inspector binds the debugging overlay and dump engine to one stage.
//
// The overlay layer is created once at construction, emptied and repopulated
// on every refresh, and detached (but not destroyed) on Hide. While showing
// it is always the stage's last child.
type Inspector struct {
	stage   *stage.Stage
	layer   *stage.Node
	effects *stage.Node

	filters []Filter
	props   PropertySet
	colors  []stage.Color
	live    bool

	subscribed bool
	drawHandle stage.DrawHandle

	out io.Writer

	clickToDump bool
	clickHandle stage.CaptureHandle
	downHandle  stage.CaptureHandle

	flashes     []*flash
	flashTicker stage.DrawHandle
}

// New creates an inspector bound to st. Live refresh is enabled by default;
// dumps go to stdout until SetOutput.
func New(st *stage.Stage) *Inspector {
	layer := stage.NewContainer("spyglass-overlay")
	layer.MouseEnabled = false
	effects := stage.NewContainer("spyglass-effects")
	effects.MouseEnabled = false
	return &Inspector{
		stage:   st,
		layer:   layer,
		effects: effects,
		props:   DefaultProperties(),
		colors:  DefaultNestColors,
		live:    true,
		out:     os.Stdout,
	}
}

// Show attaches the overlay and restricts annotations to nodes matching the
// given filters (none = annotate everything). With live refresh enabled the
// overlay rebuilds on every stage redraw; otherwise it is built once and
// stays fixed until the next Show or Refresh.
func (in *Inspector) Show(filters ...Filter) {
	in.unsubscribe()
	in.filters = filters
	// Re-adding moves the layer to the end, keeping it the last child.
	in.stage.AddChild(in.layer)
	if in.live {
		in.subscribe()
	} else {
		in.Refresh()
	}
}

// Hide clears the overlay and detaches it from the stage. Calling Hide while
// already hidden is a no-op.
func (in *Inspector) Hide() {
	in.unsubscribe()
	in.layer.RemoveChildren()
	if in.layer.Parent != nil {
		in.layer.Parent.RemoveChild(in.layer)
	}
}

// Showing reports whether the overlay layer is currently the stage's last
// child.
func (in *Inspector) Showing() bool {
	nc := in.stage.NumChildren()
	return nc > 0 && in.stage.ChildAt(nc-1) == in.layer
}

// Refresh rebuilds the overlay once from the scene's current state.
func (in *Inspector) Refresh() {
	prims := buildOverlay(in.stage.Node, in.filters, in.props, in.colors,
		in.layer, in.effects)
	materialize(prims, in.layer)
}

// SetLiveRefresh toggles rebuild-on-redraw. Toggling while showing
// subscribes or unsubscribes in place without otherwise altering the
// displayed state; toggling while hidden only affects the next Show.
func (in *Inspector) SetLiveRefresh(on bool) {
	if in.live == on {
		return
	}
	in.live = on
	if !in.Showing() {
		return
	}
	if on {
		in.subscribe()
	} else {
		in.unsubscribe()
	}
}

// LiveRefresh reports whether rebuild-on-redraw is enabled.
func (in *Inspector) LiveRefresh() bool {
	return in.live
}

// SetProperty enables or disables one property filter key.
func (in *Inspector) SetProperty(key string, on bool) {
	in.props[key] = on
}

// SetProperties replaces the whole property filter set.
func (in *Inspector) SetProperties(props PropertySet) {
	in.props = props
}

// SetNestColors replaces the nesting color table. The table must not be
// empty; depth lookups clamp to its last entry.
func (in *Inspector) SetNestColors(colors []stage.Color) {
	in.colors = colors
}

// SetOutput redirects dump reports to w.
func (in *Inspector) SetOutput(w io.Writer) {
	in.out = w
}

func (in *Inspector) subscribe() {
	if in.subscribed {
		return
	}
	// Exactly one rebuild per redraw notification; the rebuild itself never
	// triggers a render pass, so there is no feedback loop.
	in.drawHandle = in.stage.OnDrawStart(in.Refresh)
	in.subscribed = true
}

func (in *Inspector) unsubscribe() {
	if !in.subscribed {
		return
	}
	in.drawHandle.Remove()
	in.subscribed = false
}

// ownsNode reports whether n lives inside the overlay or effects layer (or
// is one of them), so interaction and traversal can exclude the inspector's
// own display objects.
func (in *Inspector) ownsNode(n *stage.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == in.layer || p == in.effects {
			return true
		}
	}
	return false
}
