package validation

import (
	"fmt"
	"slices"
)

// Leaf is one flattened field-level failure, ready for formatting.
// Prefix is the name of the immediately enclosing association, or empty for
// failures on the root record.
type Leaf struct {
	Prefix   string
	Field    string
	Template string
	Bindings Bindings
}

// Flatten walks the tree and returns one leaf per field-level failure.
//
// Direct field errors of a node come first, labelled with the node's
// enclosing association name, followed by the leaves of each association.
// Entering an association replaces the enclosing name with that association's
// name, so a leaf k levels deep is still labelled with its direct parent
// only, never a path of ancestor names.
//
// Maps are traversed in sorted key order, so the returned sequence is fully
// deterministic for a given tree. Callers must not rely on this order as an
// output contract; the final error list is sorted downstream.
func Flatten(n *Node) []Leaf {
	return flatten(n, "")
}

func flatten(n *Node, enclosing string) []Leaf {
	if n == nil {
		return nil
	}

	var leaves []Leaf
	fields := make([]string, 0, len(n.FieldErrors))
	for field := range n.FieldErrors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		for _, detail := range n.FieldErrors[field] {
			leaves = append(leaves, Leaf{
				Prefix:   enclosing,
				Field:    field,
				Template: detail.Template,
				Bindings: detail.Bindings,
			})
		}
	}

	names := make([]string, 0, len(n.Associations))
	for name := range n.Associations {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		switch assoc := n.Associations[name].(type) {
		case Single:
			leaves = append(leaves, flatten(assoc.Node, name)...)
		case Many:
			for _, child := range assoc {
				leaves = append(leaves, flatten(child, name)...)
			}
		default:
			// An unknown Association implementation is a bug in the
			// producer, not a runtime condition to absorb.
			panic(fmt.Sprintf("validation: unsupported association type %T", assoc))
		}
	}

	return leaves
}
