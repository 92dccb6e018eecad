package semantics

import (
	"sort"

	"github.com/pureui/highlight/pkg/graphics"
)

// SemanticsUpdate is the set of changes to send to the platform.
type SemanticsUpdate struct {
	// Nodes were added or changed.
	Nodes []*SemanticsNode
	// Removed lists IDs of nodes that no longer exist.
	Removed []int64
}

// IsEmpty returns true if the update has no changes.
func (u SemanticsUpdate) IsEmpty() bool {
	return len(u.Nodes) == 0 && len(u.Removed) == 0
}

// SemanticsOwner holds the current accessibility elements of one view and
// tracks which of them the platform has not seen yet.
type SemanticsOwner struct {
	nodesByID  map[int64]*SemanticsNode
	order      []int64
	dirtyNodes map[int64]struct{}
	removed    map[int64]struct{}
}

// NewSemanticsOwner creates an empty owner.
func NewSemanticsOwner() *SemanticsOwner {
	return &SemanticsOwner{
		nodesByID:  make(map[int64]*SemanticsNode),
		dirtyNodes: make(map[int64]struct{}),
		removed:    make(map[int64]struct{}),
	}
}

// Replace makes nodes the complete element list. New or changed nodes are
// marked dirty and nodes missing from the list are recorded as removed.
func (o *SemanticsOwner) Replace(nodes []*SemanticsNode) {
	next := make(map[int64]*SemanticsNode, len(nodes))
	o.order = o.order[:0]
	for _, n := range nodes {
		next[n.ID] = n
		o.order = append(o.order, n.ID)
		prev, ok := o.nodesByID[n.ID]
		if !ok || !prev.sameAs(n) {
			o.dirtyNodes[n.ID] = struct{}{}
		}
		delete(o.removed, n.ID)
	}
	for id := range o.nodesByID {
		if _, ok := next[id]; !ok {
			o.removed[id] = struct{}{}
			delete(o.dirtyNodes, id)
		}
	}
	o.nodesByID = next
}

// Nodes returns the current elements in the order they were supplied.
func (o *SemanticsOwner) Nodes() []*SemanticsNode {
	nodes := make([]*SemanticsNode, 0, len(o.order))
	for _, id := range o.order {
		nodes = append(nodes, o.nodesByID[id])
	}
	return nodes
}

// FindNodeByID finds a semantics node by its ID.
func (o *SemanticsOwner) FindNodeByID(id int64) *SemanticsNode {
	return o.nodesByID[id]
}

// HitTest returns the topmost element containing p. Later elements are on top.
func (o *SemanticsOwner) HitTest(p graphics.Offset) *SemanticsNode {
	for i := len(o.order) - 1; i >= 0; i-- {
		n := o.nodesByID[o.order[i]]
		if n.Contains(p) {
			return n
		}
	}
	return nil
}

// PerformAction runs action on the node with the given ID.
func (o *SemanticsOwner) PerformAction(id int64, action SemanticsAction, args any) bool {
	n, ok := o.nodesByID[id]
	if !ok {
		return false
	}
	return n.Actions.Perform(action, args)
}

// TakeUpdate returns the pending changes and clears them.
func (o *SemanticsOwner) TakeUpdate() SemanticsUpdate {
	var u SemanticsUpdate
	for _, id := range o.order {
		if _, ok := o.dirtyNodes[id]; ok {
			u.Nodes = append(u.Nodes, o.nodesByID[id])
		}
	}
	for id := range o.removed {
		u.Removed = append(u.Removed, id)
	}
	sort.Slice(u.Removed, func(i, j int) bool { return u.Removed[i] < u.Removed[j] })
	clear(o.dirtyNodes)
	clear(o.removed)
	return u
}
