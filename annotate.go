package spyglass

import (
	"fmt"
	"math"
	"strconv"

	"github.com/phanxgames/spyglass/stage"
)

// Property filter keys. The structural keys each trigger a dedicated
// annotation; every other recognized key renders as a line in the info panel.
const (
	PropBounds   = "bounds"
	PropPos      = "pos"
	PropRegPos   = "regPos"
	PropWidth    = "width"
	PropHeight   = "height"
	PropParentID = "parentId"
	PropID       = "id"
	PropName     = "name"
)

// PropertySet maps property keys to enablement. Keys absent from the map are
// disabled.
type PropertySet map[string]bool

// DefaultProperties returns the initial property filter set: bounds and
// position annotations plus id and name in the info panel.
func DefaultProperties() PropertySet {
	return PropertySet{
		PropBounds: true,
		PropPos:    true,
		PropID:     true,
		PropName:   true,
	}
}

// propertyEntry is one row of the fixed property registry: a key checked
// against the property filter set, an optional applicability test, and a
// formatter. The registry replaces open-ended field reflection with an
// explicit, extensible table.
type propertyEntry struct {
	key     string
	applies func(*stage.Node) bool
	format  func(*stage.Node) string
}

var propertyRegistry = []propertyEntry{
	{key: "x", format: func(n *stage.Node) string { return fmtNum(n.X) }},
	{key: "y", format: func(n *stage.Node) string { return fmtNum(n.Y) }},
	{key: "regX", format: func(n *stage.Node) string { return fmtNum(n.RegX) }},
	{key: "regY", format: func(n *stage.Node) string { return fmtNum(n.RegY) }},
	{key: "scaleX", format: func(n *stage.Node) string { return fmtNum(n.ScaleX) }},
	{key: "scaleY", format: func(n *stage.Node) string { return fmtNum(n.ScaleY) }},
	{key: "rotation", format: func(n *stage.Node) string { return fmtNum(n.Rotation) }},
	{key: "skewX", format: func(n *stage.Node) string { return fmtNum(n.SkewX) }},
	{key: "skewY", format: func(n *stage.Node) string { return fmtNum(n.SkewY) }},
	{key: "alpha", format: func(n *stage.Node) string { return fmtNum(n.Alpha) }},
	{key: "visible", format: func(n *stage.Node) string { return strconv.FormatBool(n.Visible) }},
	{key: "mouseEnabled", format: func(n *stage.Node) string { return strconv.FormatBool(n.MouseEnabled) }},
	{
		key:     "currentFrame",
		applies: func(n *stage.Node) bool { return n.Type == stage.TypeSprite },
		format:  func(n *stage.Node) string { return strconv.Itoa(n.CurrentFrame) },
	},
	{
		key:     "text",
		applies: func(n *stage.Node) bool { return n.Type == stage.TypeText },
		format:  func(n *stage.Node) string { return n.Text },
	},
}

// fmtNum formats integral values without decimals and everything else with
// three decimal places.
func fmtNum(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// --- Annotation primitives ---

type primitiveKind uint8

const (
	primRect     primitiveKind = iota // stroked rectangle at rect
	primCross                         // cross marker centered at (x, y)
	primLabel                         // text at (x, y); rotated runs downward
	primBackdrop                      // translucent bordered panel backdrop at rect
)

// primitive is one drawable annotation descriptor. Synthesis emits pure
// descriptors; materialization turns them into display objects.
type primitive struct {
	kind    primitiveKind
	rect    stage.Rect
	x, y    float64
	text    string
	color   stage.Color
	rotated bool
}

const (
	crossSize   = 4.0
	labelPad    = 2.0
	panelMargin = 4.0
)

var (
	posColor       = stage.Color{R: 1, G: 0.25, B: 0.25, A: 1}
	regColor       = stage.Color{R: 0.25, G: 0.65, B: 1, A: 1}
	dimColor       = stage.Color{R: 1, G: 0.9, B: 0.3, A: 1}
	panelTextColor = stage.ColorWhite
	backdropFill   = stage.Color{R: 0, G: 0, B: 0, A: 0.7}
	backdropBorder = stage.Color{R: 1, G: 1, B: 1, A: 0.85}
)

// synthesize builds the annotation descriptors for a single matched, bounded
// node. It is a pure function of its inputs; nothing in the inspected scene
// is touched. Drawn primitives come first, the info panel last.
func synthesize(n *stage.Node, local, global stage.Rect, posX, posY float64,
	nestColor stage.Color, props PropertySet) []primitive {

	var out []primitive
	lh := stage.TextLineHeight()

	if props[PropBounds] {
		out = append(out, primitive{kind: primRect, rect: global, color: nestColor})
		out = append(out, primitive{
			kind:  primLabel,
			x:     global.X,
			y:     global.Y - lh - labelPad,
			text:  fmt.Sprintf("%.3f,%.3f", local.X, local.Y),
			color: nestColor,
		})
	}
	if props[PropPos] {
		out = append(out, primitive{kind: primCross, x: posX, y: posY, color: posColor})
		out = append(out, primitive{
			kind:  primLabel,
			x:     posX + crossSize + labelPad,
			y:     posY + crossSize + labelPad,
			text:  fmt.Sprintf("%.3f,%.3f", n.X, n.Y),
			color: posColor,
		})
	}
	if props[PropRegPos] {
		// Duplicated independently of pos so either marker can show alone.
		out = append(out, primitive{kind: primCross, x: posX, y: posY, color: regColor})
		out = append(out, primitive{
			kind:  primLabel,
			x:     posX + crossSize + labelPad,
			y:     posY - crossSize - labelPad - lh,
			text:  fmt.Sprintf("%.3f,%.3f", n.RegX, n.RegY),
			color: regColor,
		})
	}
	if props[PropWidth] {
		txt := fmt.Sprintf("%.3f", global.Width)
		w, _ := stage.MeasureText(txt)
		out = append(out, primitive{
			kind:  primLabel,
			x:     global.X + (global.Width-w)/2,
			y:     global.Y + labelPad,
			text:  txt,
			color: dimColor,
		})
	}
	if props[PropHeight] {
		txt := fmt.Sprintf("%.3f", global.Height)
		w, _ := stage.MeasureText(txt)
		// Rotating about the text origin puts the glyph box left of the
		// anchor, so offset by a line height to land inside the rect.
		out = append(out, primitive{
			kind:    primLabel,
			x:       global.X + labelPad + lh,
			y:       global.Y + (global.Height-w)/2,
			text:    txt,
			color:   dimColor,
			rotated: true,
		})
	}

	// Info panel: id and name first, in that order, then parent id, then the
	// remaining enabled registry keys in table order.
	var lines []string
	if props[PropID] {
		lines = append(lines, fmt.Sprintf("id: %d", n.ID))
	}
	if props[PropName] {
		lines = append(lines, "name: "+n.Name)
	}
	if props[PropParentID] && n.Parent != nil {
		lines = append(lines, fmt.Sprintf("Parent ID: %d", n.Parent.ID))
	}
	for _, entry := range propertyRegistry {
		if !props[entry.key] {
			continue
		}
		if entry.applies != nil && !entry.applies(n) {
			continue
		}
		lines = append(lines, entry.key+": "+entry.format(n))
	}
	if len(lines) == 0 {
		return out
	}

	// Stack lines by measured height, size the backdrop to the panel plus a
	// margin, and center the whole panel over the node's global rectangle.
	type placedLine struct {
		text string
		dy   float64
	}
	placed := make([]placedLine, 0, len(lines))
	var panelW, panelH float64
	for _, line := range lines {
		w, h := stage.MeasureText(line)
		placed = append(placed, placedLine{text: line, dy: panelH})
		panelH += h
		panelW = math.Max(panelW, w)
	}
	originX := global.X + (global.Width-panelW)/2
	originY := global.Y + (global.Height-panelH)/2

	out = append(out, primitive{
		kind: primBackdrop,
		rect: stage.Rect{
			X:      originX - panelMargin,
			Y:      originY - panelMargin,
			Width:  panelW + 2*panelMargin,
			Height: panelH + 2*panelMargin,
		},
		color: backdropBorder,
	})
	for _, p := range placed {
		out = append(out, primitive{
			kind:  primLabel,
			x:     originX,
			y:     originY + p.dy,
			text:  p.text,
			color: panelTextColor,
		})
	}
	return out
}
