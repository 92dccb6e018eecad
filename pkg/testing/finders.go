package testing

import (
	"fmt"

	"github.com/pureui/highlight/pkg/semantics"
)

// Finder selects accessibility elements.
type Finder interface {
	Matches(node *semantics.SemanticsNode) bool
	Description() string
}

type linkFinder struct{ label string }

func (f linkFinder) Matches(n *semantics.SemanticsNode) bool {
	return n.Properties.Flags.Has(semantics.SemanticsIsLink) && n.Properties.Label == f.label
}

func (f linkFinder) Description() string { return fmt.Sprintf("link %q", f.label) }

// ByLink matches link elements whose label equals text.
func ByLink(text string) Finder {
	return linkFinder{label: text}
}

type idFinder struct{ id int64 }

func (f idFinder) Matches(n *semantics.SemanticsNode) bool { return n.ID == f.id }

func (f idFinder) Description() string { return fmt.Sprintf("element #%d", f.id) }

// ByID matches the element with the given ID.
func ByID(id int64) Finder {
	return idFinder{id: id}
}

// FindResult holds the elements a finder matched, in tree order.
type FindResult struct {
	Nodes []*semantics.SemanticsNode
}

// Exists reports whether anything matched.
func (r FindResult) Exists() bool { return len(r.Nodes) > 0 }

// Count returns the number of matches.
func (r FindResult) Count() int { return len(r.Nodes) }

// First returns the first match or nil.
func (r FindResult) First() *semantics.SemanticsNode {
	if len(r.Nodes) == 0 {
		return nil
	}
	return r.Nodes[0]
}
