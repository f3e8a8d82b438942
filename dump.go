package spyglass

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/phanxgames/spyglass/stage"
)

// FindFirst returns the first node in depth-first pre-order (self before
// children) for which pred holds, or nil. Children are only searched when
// the current node itself fails the predicate.
func FindFirst(root *stage.Node, pred func(*stage.Node) bool) *stage.Node {
	if pred(root) {
		return root
	}
	for _, child := range root.Children() {
		if found := FindFirst(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in depth-first pre-order for which pred holds.
// A matching node's children are not searched: matches are mutually
// exclusive along a path, mirroring one find per branch. The traversal uses
// an explicit stack, so arbitrarily deep trees cannot overflow.
func FindAll(root *stage.Node, pred func(*stage.Node) bool) []*stage.Node {
	var out []*stage.Node
	stack := []*stage.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pred(n) {
			out = append(out, n)
			continue
		}
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return out
}

// ObjectByName returns the first node named name, or nil.
func (in *Inspector) ObjectByName(name string) *stage.Node {
	return FindFirst(in.stage.Node, func(n *stage.Node) bool { return n.Name == name })
}

// ObjectByID returns the node with the given id, or nil.
func (in *Inspector) ObjectByID(id uint32) *stage.Node {
	return FindFirst(in.stage.Node, func(n *stage.Node) bool { return n.ID == id })
}

// ObjectsBySearch returns every node matching pred, in depth-first pre-order.
func (in *Inspector) ObjectsBySearch(pred func(*stage.Node) bool) []*stage.Node {
	return FindAll(in.stage.Node, pred)
}

// Dump prints structured reports to the inspector's output. With filters it
// emits one expanded report per matched node, or an absent-marker report
// for entries that match nothing. Without filters it emits a single expanded
// report rooted at the stage.
func (in *Inspector) Dump(filters ...Filter) {
	if len(filters) == 0 {
		in.DumpNode(in.stage.Node, "stage", true)
		return
	}
	for _, f := range filters {
		matched := FindAll(in.stage.Node, f.matchNode)
		if len(matched) == 0 {
			in.render(pterm.TreeNode{
				Text:     "dump " + describeFilter(f),
				Children: []pterm.TreeNode{{Text: "object: <none>"}},
			})
			continue
		}
		for _, n := range matched {
			in.DumpNode(n, "dump "+describeFilter(f), true)
		}
	}
}

// DumpNode prints a labeled report for one node. Expanded reports include
// the full diagnostic field group and one collapsed (single-line) sub-report
// per child; collapsed reports are the summary line alone.
func (in *Inspector) DumpNode(n *stage.Node, label string, expanded bool) {
	root := pterm.TreeNode{Text: label + ": " + nodeRef(n)}
	if expanded {
		root.Children = nodeReport(n)
	}
	in.render(root)
}

func (in *Inspector) render(root pterm.TreeNode) {
	rendered, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		fmt.Fprintf(in.out, "spyglass: render dump: %v\n", err)
		return
	}
	fmt.Fprint(in.out, rendered)
}

// nodeReport builds the fixed, ordered diagnostic field group plus child
// summaries.
func nodeReport(n *stage.Node) []pterm.TreeNode {
	fields := []pterm.TreeNode{
		{Text: fmt.Sprintf("visible: %t", n.Visible)},
		{Text: "alpha: " + fmtNum(n.Alpha)},
		{Text: fmt.Sprintf("position: (%s, %s)", fmtNum(n.X), fmtNum(n.Y))},
	}

	// One node's bounds fault only costs that one field, never the dump.
	if b, err := n.LocalBounds(); err == nil {
		fields = append(fields, pterm.TreeNode{Text: fmt.Sprintf("bounds: %s", fmtRect(b))})
	} else if errors.Is(err, stage.ErrNoBounds) && n.NumChildren() > 0 {
		if agg, aggErr := n.AggregateBounds(); aggErr == nil {
			fields = append(fields, pterm.TreeNode{Text: fmt.Sprintf("bounds (children): %s", fmtRect(agg))})
		}
	}

	m := n.GlobalMatrix()
	fields = append(fields,
		pterm.TreeNode{Text: fmt.Sprintf("reg: (%s, %s)", fmtNum(n.RegX), fmtNum(n.RegY))},
		pterm.TreeNode{Text: fmt.Sprintf("scale: (%s, %s)", fmtNum(n.ScaleX), fmtNum(n.ScaleY))},
		pterm.TreeNode{Text: "rotation: " + fmtNum(n.Rotation)},
		pterm.TreeNode{Text: fmt.Sprintf("transform: [%s %s %s %s %s %s]",
			fmtNum(m.A), fmtNum(m.B), fmtNum(m.C), fmtNum(m.D), fmtNum(m.TX), fmtNum(m.TY))},
		pterm.TreeNode{Text: fmt.Sprintf("mouseEnabled: %t", n.MouseEnabled)},
		pterm.TreeNode{Text: fmt.Sprintf("cached: %t", n.Cached)},
	)

	if n.NumChildren() == 0 {
		fields = append(fields, pterm.TreeNode{Text: "no children"})
		return fields
	}
	group := pterm.TreeNode{Text: fmt.Sprintf("children (%d)", n.NumChildren())}
	for _, child := range n.Children() {
		group.Children = append(group.Children, pterm.TreeNode{Text: childSummary(child)})
	}
	return append(fields, group)
}

func childSummary(n *stage.Node) string {
	if n.NumChildren() == 0 {
		return nodeRef(n)
	}
	return fmt.Sprintf("%s — %d children", nodeRef(n), n.NumChildren())
}

// nodeRef is the stable reference line for a node: type, name, id.
func nodeRef(n *stage.Node) string {
	if n.Name == "" {
		return fmt.Sprintf("%s (id %d)", typeName(n.Type), n.ID)
	}
	return fmt.Sprintf("%s %q (id %d)", typeName(n.Type), n.Name, n.ID)
}

func typeName(t stage.NodeType) string {
	switch t {
	case stage.TypeContainer:
		return "Container"
	case stage.TypeShape:
		return "Shape"
	case stage.TypeText:
		return "Text"
	case stage.TypeSprite:
		return "Sprite"
	default:
		return "Node"
	}
}

func describeFilter(f Filter) string {
	switch v := f.(type) {
	case idFilter:
		return fmt.Sprintf("id %d", uint32(v))
	case nameFilter:
		return fmt.Sprintf("name %q", string(v))
	case refFilter:
		return nodeRef(v.node)
	default:
		return "filter"
	}
}

func fmtRect(r stage.Rect) string {
	return fmt.Sprintf("{x: %s, y: %s, w: %s, h: %s}",
		fmtNum(r.X), fmtNum(r.Y), fmtNum(r.Width), fmtNum(r.Height))
}
