package stage

import "testing"

func TestGraphicsChaining(t *testing.T) {
	g := NewGraphics()
	g.SetStrokeStyle(2).BeginStroke(Color{1, 0, 0, 1}).Rect(0, 0, 10, 10).
		MoveTo(0, 0).LineTo(10, 10)
	if len(g.commands) != 5 {
		t.Errorf("commands = %d, want 5", len(g.commands))
	}
}

func TestGraphicsExtentTracking(t *testing.T) {
	g := NewGraphics()
	g.Rect(0, 0, 10, 10)
	g.LineTo(20, -5)
	e := g.extent()
	if e != (Rect{X: 0, Y: -5, Width: 20, Height: 15}) {
		t.Errorf("extent = %+v", e)
	}
}

func TestGraphicsClear(t *testing.T) {
	g := NewGraphics()
	g.Rect(0, 0, 10, 10)
	g.Clear()
	if len(g.commands) != 0 || g.hasExtent {
		t.Error("Clear should drop commands and extent")
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	c := Color{1, 1, 1, 0.5}
	got := c.rgba(1)
	if got.A != 128 || got.R != 128 {
		t.Errorf("rgba = %+v, want premultiplied half white", got)
	}
	got = c.rgba(0.5)
	if got.A != 64 {
		t.Errorf("alpha = %d, want 64", got.A)
	}
}
