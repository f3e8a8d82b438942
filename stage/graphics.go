package stage

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text tint.
var ColorWhite = Color{1, 1, 1, 1}

// rgba converts to a premultiplied image/color value with an extra alpha factor.
func (c Color) rgba(alpha float64) color.RGBA {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(math.Round(c.R * a * 255)),
		G: uint8(math.Round(c.G * a * 255)),
		B: uint8(math.Round(c.B * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

type gfxOp uint8

const (
	opStrokeStyle gfxOp = iota
	opBeginStroke
	opBeginFill
	opRect
	opMoveTo
	opLineTo
)

type gfxCommand struct {
	op         gfxOp
	x, y, w, h float64
	width      float64
	color      Color
}

// Graphics records drawing commands for a shape node. Commands are replayed
// in order at draw time and tracked for local bounds.
type Graphics struct {
	commands []gfxCommand

	hasExtent              bool
	minX, minY, maxX, maxY float64
}

// NewGraphics creates an empty command list.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// Clear drops all recorded commands and the tracked extent.
func (g *Graphics) Clear() {
	g.commands = g.commands[:0]
	g.hasExtent = false
}

// SetStrokeStyle sets the stroke width for subsequent stroked commands.
func (g *Graphics) SetStrokeStyle(width float64) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opStrokeStyle, width: width})
	return g
}

// BeginStroke sets the stroke color for subsequent commands.
func (g *Graphics) BeginStroke(c Color) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opBeginStroke, color: c})
	return g
}

// BeginFill sets the fill color for subsequent commands. Pass a zero-alpha
// color to disable filling.
func (g *Graphics) BeginFill(c Color) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opBeginFill, color: c})
	return g
}

// Rect records a rectangle, drawn with the active fill and/or stroke.
func (g *Graphics) Rect(x, y, w, h float64) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opRect, x: x, y: y, w: w, h: h})
	g.grow(x, y)
	g.grow(x+w, y+h)
	return g
}

// MoveTo moves the current point without drawing.
func (g *Graphics) MoveTo(x, y float64) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opMoveTo, x: x, y: y})
	g.grow(x, y)
	return g
}

// LineTo records a stroked line from the current point.
func (g *Graphics) LineTo(x, y float64) *Graphics {
	g.commands = append(g.commands, gfxCommand{op: opLineTo, x: x, y: y})
	g.grow(x, y)
	return g
}

// extent returns the axis-aligned bounds of all recorded geometry.
func (g *Graphics) extent() Rect {
	return Rect{
		X:      g.minX,
		Y:      g.minY,
		Width:  g.maxX - g.minX,
		Height: g.maxY - g.minY,
	}
}

func (g *Graphics) grow(x, y float64) {
	if !g.hasExtent {
		g.hasExtent = true
		g.minX, g.maxX = x, x
		g.minY, g.maxY = y, y
		return
	}
	g.minX = math.Min(g.minX, x)
	g.minY = math.Min(g.minY, y)
	g.maxX = math.Max(g.maxX, x)
	g.maxY = math.Max(g.maxY, y)
}
