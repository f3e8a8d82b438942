package spyglass

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/spyglass/stage"
)

var highlightColor = stage.Color{R: 1, G: 1, B: 0.2, A: 1}

// flash is one active highlight: a stroked rectangle over the target's
// global bounds whose alpha tweens to zero.
type flash struct {
	node  *stage.Node
	tween *gween.Tween
	last  time.Time
}

// Highlight flashes a fading rectangle over n's global bounds for the given
// duration, then removes it. Nodes without resolvable bounds flash nothing.
// The flash is advanced by the stage's redraw notification, so it only
// animates while the host is drawing.
func (in *Inspector) Highlight(n *stage.Node, d time.Duration) {
	local, ok := resolveBounds(n)
	if !ok {
		return
	}
	global := globalRect(n, local)

	shape := stage.NewShape("spyglass-flash")
	shape.MouseEnabled = false
	shape.Graphics.SetStrokeStyle(2).BeginStroke(highlightColor).
		Rect(global.X, global.Y, global.Width, global.Height)
	in.attachEffects()
	in.effects.AddChild(shape)

	in.flashes = append(in.flashes, &flash{
		node:  shape,
		tween: gween.New(1, 0, float32(d.Seconds()), ease.OutQuad),
		last:  time.Now(),
	})
	if len(in.flashes) == 1 {
		in.flashTicker = in.stage.OnDrawStart(in.stepFlashes)
	}
}

// attachEffects parents the effects container on the stage, beneath the
// overlay layer so that layer stays the stage's last child while showing.
// Flashes live in this container rather than on the stage directly, keeping
// them inside ownsNode's exclusion.
func (in *Inspector) attachEffects() {
	if in.effects.Parent != nil {
		return
	}
	if in.Showing() {
		in.stage.AddChildAt(in.effects, in.stage.NumChildren()-1)
	} else {
		in.stage.AddChild(in.effects)
	}
}

// stepFlashes advances every active flash and removes finished ones,
// unsubscribing from the redraw notification once none remain.
func (in *Inspector) stepFlashes() {
	now := time.Now()
	alive := in.flashes[:0]
	for _, f := range in.flashes {
		dt := float32(now.Sub(f.last).Seconds())
		f.last = now
		alpha, done := f.tween.Update(dt)
		f.node.Alpha = float64(alpha)
		if done {
			if f.node.Parent != nil {
				f.node.Parent.RemoveChild(f.node)
			}
			continue
		}
		alive = append(alive, f)
	}
	in.flashes = alive
	if len(in.flashes) == 0 {
		in.flashTicker.Remove()
		if in.effects.Parent != nil {
			in.effects.Parent.RemoveChild(in.effects)
		}
	}
}
