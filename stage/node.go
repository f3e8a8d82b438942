// Package stage implements a minimal retained-mode 2D display list: a tree of
// display objects with affine transforms, per-type local bounds, vector
// graphics and text primitives, and a Stage that owns the draw cycle and
// pointer events. It is the host surface the spyglass inspector binds to.
package stage

import "github.com/hajimehoshi/ebiten/v2"

// NodeType distinguishes rendering and bounds behavior for a Node.
type NodeType uint8

const (
	TypeContainer NodeType = iota // group node with no intrinsic bounds
	TypeShape                     // renders recorded Graphics commands
	TypeText                      // renders a measured text string
	TypeSprite                    // renders an image with frame-indexed bounds
)

// nodeIDCounter is a plain counter; the stage is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental display object. A single flat struct is used for
// all node types to avoid interface dispatch during traversal.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation and skew are in radians. RegX/RegY shift
	// the registration point: the node draws its local origin at (X, Y) and
	// its content offset by (-RegX, -RegY).
	X, Y           float64
	RegX, RegY     float64
	ScaleX, ScaleY float64
	Rotation       float64
	SkewX, SkewY   float64

	// Visibility & interaction
	Visible      bool
	Alpha        float64
	MouseEnabled bool

	// Explicit bounds override (any type). Set via SetBounds.
	setBounds *Rect

	// Shape fields (TypeShape)
	Graphics *Graphics

	// Text fields (TypeText)
	Text      string
	TextColor Color

	// Sprite fields (TypeSprite)
	Image        *ebiten.Image
	FrameBounds  []Rect // per-frame local bounds table
	CurrentFrame int

	// Cached indicates the host application rasterized this node's subtree
	// to an offscreen surface. Diagnostic only; the stage itself never sets it.
	Cached bool

	// Per-node pointer callbacks (nil by default)
	OnMouseDown func(*PointerEvent)
	OnClick     func(*PointerEvent)
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
	n.MouseEnabled = true
	n.TextColor = ColorWhite
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: TypeContainer}
	nodeDefaults(n)
	return n
}

// NewShape creates a shape node with an empty Graphics command list.
func NewShape(name string) *Node {
	n := &Node{Name: name, Type: TypeShape, Graphics: NewGraphics()}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content.
func NewText(name, content string) *Node {
	n := &Node{Name: name, Type: TypeText, Text: content}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node with a frame-indexed bounds table.
// The image may be nil for layout-only sprites.
func NewSprite(name string, img *ebiten.Image, frames []Rect) *Node {
	n := &Node{Name: name, Type: TypeSprite, Image: img, FrameBounds: frames}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. If child already has a
// parent (including this node), it is removed from that parent first, so
// re-adding an existing child moves it to the end of the child list.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("stage: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("stage: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("stage: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("stage: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("stage: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("stage: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller. A nil/empty slice signals a leaf.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
