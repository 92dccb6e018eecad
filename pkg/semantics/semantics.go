// Package semantics describes accessibility elements exposed to assistive
// technologies: a bounding rectangle, a label, flags and actions.
package semantics

import "github.com/pureui/highlight/pkg/graphics"

// SemanticsFlag is a bit in a SemanticsFlags set.
type SemanticsFlag uint64

const (
	// SemanticsIsLink marks a node that navigates or triggers an action like a hyperlink.
	SemanticsIsLink SemanticsFlag = 1 << iota
	// SemanticsIsFocusable marks a node assistive technologies can focus.
	SemanticsIsFocusable
)

// SemanticsFlags is a set of SemanticsFlag values.
type SemanticsFlags uint64

// Has reports whether f contains flag.
func (f SemanticsFlags) Has(flag SemanticsFlag) bool {
	return uint64(f)&uint64(flag) != 0
}

// Set returns f with flag added.
func (f SemanticsFlags) Set(flag SemanticsFlag) SemanticsFlags {
	return SemanticsFlags(uint64(f) | uint64(flag))
}

// Clear returns f with flag removed.
func (f SemanticsFlags) Clear(flag SemanticsFlag) SemanticsFlags {
	return SemanticsFlags(uint64(f) &^ uint64(flag))
}

// SemanticsProperties holds the descriptive part of a node.
type SemanticsProperties struct {
	// Label is the text read out for the node.
	Label string
	Flags SemanticsFlags
}

// SemanticsAction identifies something assistive technology can ask a node to do.
type SemanticsAction int

const (
	// SemanticsActionTap activates the node.
	SemanticsActionTap SemanticsAction = iota
)

func (a SemanticsAction) String() string {
	switch a {
	case SemanticsActionTap:
		return "tap"
	default:
		return "unknown"
	}
}

// SemanticsActions maps actions to handlers.
type SemanticsActions struct {
	handlers map[SemanticsAction]func(args any)
}

// NewSemanticsActions creates an empty action set.
func NewSemanticsActions() *SemanticsActions {
	return &SemanticsActions{handlers: make(map[SemanticsAction]func(args any))}
}

// SetHandler installs handler for action. A nil handler removes the action.
func (a *SemanticsActions) SetHandler(action SemanticsAction, handler func(args any)) {
	if handler == nil {
		delete(a.handlers, action)
		return
	}
	a.handlers[action] = handler
}

// HasAction reports whether a handler is installed for action.
func (a *SemanticsActions) HasAction(action SemanticsAction) bool {
	if a == nil {
		return false
	}
	_, ok := a.handlers[action]
	return ok
}

// IsEmpty reports whether no actions are installed.
func (a *SemanticsActions) IsEmpty() bool {
	return a == nil || len(a.handlers) == 0
}

// Perform runs the handler for action and reports whether one ran.
func (a *SemanticsActions) Perform(action SemanticsAction, args any) bool {
	if a == nil {
		return false
	}
	h, ok := a.handlers[action]
	if !ok {
		return false
	}
	h(args)
	return true
}

// SemanticsNode is one accessibility element.
type SemanticsNode struct {
	// ID uniquely identifies this node for the lifetime of its owner.
	ID int64
	// Rect is the bounding rectangle in screen coordinates: the union of Rects.
	Rect graphics.Rect
	// Rects are the per-line rectangles when the element wraps.
	Rects      []graphics.Rect
	Properties SemanticsProperties
	Actions    *SemanticsActions
}

// NewSemanticsNode creates a node from per-line rectangles.
func NewSemanticsNode(id int64, rects []graphics.Rect, props SemanticsProperties, actions *SemanticsActions) *SemanticsNode {
	n := &SemanticsNode{ID: id, Properties: props, Actions: actions}
	n.SetRects(rects)
	return n
}

// SetRects replaces the node's rectangles and recomputes Rect.
func (n *SemanticsNode) SetRects(rects []graphics.Rect) {
	n.Rects = append(n.Rects[:0], rects...)
	n.Rect = graphics.Rect{}
	for i, r := range rects {
		if i == 0 {
			n.Rect = r
			continue
		}
		n.Rect = n.Rect.Union(r)
	}
}

// Contains reports whether p is inside any of the node's rectangles.
func (n *SemanticsNode) Contains(p graphics.Offset) bool {
	for _, r := range n.Rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// sameAs reports whether n and other would look identical to the platform.
func (n *SemanticsNode) sameAs(other *SemanticsNode) bool {
	if n.Properties != other.Properties || len(n.Rects) != len(other.Rects) {
		return false
	}
	for i := range n.Rects {
		if !n.Rects[i].ApproxEqual(other.Rects[i]) {
			return false
		}
	}
	return true
}
