package spyglass

import "github.com/phanxgames/spyglass/stage"

// Filter selects display objects for the overlay and for dumps. An empty
// filter list matches everything; a non-empty list matches a node when any
// entry does (logical OR).
type Filter interface {
	matchNode(n *stage.Node) bool
}

type idFilter uint32

func (f idFilter) matchNode(n *stage.Node) bool {
	return n.ID == uint32(f)
}

type nameFilter string

func (f nameFilter) matchNode(n *stage.Node) bool {
	return n.Name == string(f)
}

type refFilter struct {
	node *stage.Node
}

func (f refFilter) matchNode(n *stage.Node) bool {
	return n == f.node
}

// ByID selects the node with the given id.
func ByID(id uint32) Filter {
	return idFilter(id)
}

// ByName selects nodes whose name equals name exactly (case-sensitive).
// Names are not unique; a name filter can match several nodes.
func ByName(name string) Filter {
	return nameFilter(name)
}

// ByRef selects exactly the given node, by identity.
func ByRef(n *stage.Node) Filter {
	return refFilter{node: n}
}

// matchAny reports whether n passes the filter list. A nil or empty list
// matches unconditionally; otherwise the first matching entry short-circuits.
func matchAny(n *stage.Node, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f.matchNode(n) {
			return true
		}
	}
	return false
}
