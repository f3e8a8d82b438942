package stage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// renderNode draws n and its children in painter order (parent first).
func renderNode(n *Node, parent Matrix, parentAlpha float64, dst *ebiten.Image) {
	if !n.Visible || n.Alpha <= 0 {
		return
	}
	m := parent.Mul(n.localMatrix())
	alpha := parentAlpha * n.Alpha

	switch n.Type {
	case TypeShape:
		if n.Graphics != nil {
			drawGraphics(n.Graphics, dst, m, alpha)
		}
	case TypeText:
		drawText(n, dst, m, alpha)
	case TypeSprite:
		drawSprite(n, dst, m, alpha)
	}

	for _, child := range n.children {
		renderNode(child, m, alpha, dst)
	}
}

// drawGraphics replays a command list through the ebiten vector API.
// Geometry is transformed point-by-point. Filled rectangles use the
// transformed corners' axis-aligned extent, which is exact under translation
// and scale; the overlay layer sits untransformed on the stage.
func drawGraphics(g *Graphics, dst *ebiten.Image, m Matrix, alpha float64) {
	strokeWidth := float32(1)
	var strokeColor color.RGBA
	var fillColor color.RGBA
	hasStroke := false
	hasFill := false
	var curX, curY float64

	for _, cmd := range g.commands {
		switch cmd.op {
		case opStrokeStyle:
			strokeWidth = float32(cmd.width)
		case opBeginStroke:
			strokeColor = cmd.color.rgba(alpha)
			hasStroke = cmd.color.A > 0
		case opBeginFill:
			fillColor = cmd.color.rgba(alpha)
			hasFill = cmd.color.A > 0
		case opRect:
			x0, y0 := m.Apply(cmd.x, cmd.y)
			x1, y1 := m.Apply(cmd.x+cmd.w, cmd.y+cmd.h)
			if x1 < x0 {
				x0, x1 = x1, x0
			}
			if y1 < y0 {
				y0, y1 = y1, y0
			}
			if hasFill {
				vector.DrawFilledRect(dst,
					float32(x0), float32(y0),
					float32(x1-x0), float32(y1-y0),
					fillColor, false)
			}
			if hasStroke {
				vector.StrokeRect(dst,
					float32(x0), float32(y0),
					float32(x1-x0), float32(y1-y0),
					strokeWidth, strokeColor, false)
			}
		case opMoveTo:
			curX, curY = cmd.x, cmd.y
		case opLineTo:
			x0, y0 := m.Apply(curX, curY)
			x1, y1 := m.Apply(cmd.x, cmd.y)
			if hasStroke {
				vector.StrokeLine(dst,
					float32(x0), float32(y0),
					float32(x1), float32(y1),
					strokeWidth, strokeColor, false)
			}
			curX, curY = cmd.x, cmd.y
		}
	}
}

func drawText(n *Node, dst *ebiten.Image, m Matrix, alpha float64) {
	if n.Text == "" {
		return
	}
	face := measuringFace()
	op := &text.DrawOptions{}
	op.GeoM = geoM(m)
	op.ColorScale.Scale(
		float32(n.TextColor.R),
		float32(n.TextColor.G),
		float32(n.TextColor.B),
		float32(n.TextColor.A*alpha),
	)
	op.LineSpacing = fontLineHeight
	text.Draw(dst, n.Text, face, op)
}

func drawSprite(n *Node, dst *ebiten.Image, m Matrix, alpha float64) {
	if n.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(m)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(n.Image, op)
}

// geoM converts a Matrix to an ebiten.GeoM.
func geoM(m Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.TX)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.TY)
	return g
}
