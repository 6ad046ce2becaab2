package validation

// Bindings maps placeholder names to the values substituted into an error
// template. Values are primitives: numbers, strings, or anything with a
// sensible string form.
type Bindings map[string]any

// Detail describes a single validation failure on one field.
// Template may contain named placeholders in the form %{name} whose names
// match the keys of Bindings.
type Detail struct {
	Template string
	Bindings Bindings
}

// Association is a validated child record attached to a node under a name.
// It is a sealed sum: either a Single nested record or Many of them.
type Association interface {
	isAssociation()
}

// Single wraps one nested validated record (has-one association).
type Single struct {
	Node *Node
}

// Many wraps an ordered list of nested validated records (has-many
// association).
type Many []*Node

func (Single) isAssociation() {}
func (Many) isAssociation()   {}

// Node is one level of a validation result tree: the field failures of a
// single record plus the results of its validated associations.
//
// A Node is built once by the upstream validator and treated as read-only
// afterwards. It must be a finite tree; acyclicity is the producer's
// responsibility and is not re-checked here.
type Node struct {
	FieldErrors  map[string][]Detail
	Associations map[string]Association
}

// NewNode returns an empty node ready for the builder methods.
func NewNode() *Node {
	return &Node{
		FieldErrors:  make(map[string][]Detail),
		Associations: make(map[string]Association),
	}
}

// AddError records one failure on a field and returns the node for chaining.
func (n *Node) AddError(field, template string, bindings Bindings) *Node {
	if n.FieldErrors == nil {
		n.FieldErrors = make(map[string][]Detail)
	}
	n.FieldErrors[field] = append(n.FieldErrors[field], Detail{
		Template: template,
		Bindings: bindings,
	})
	return n
}

// SetAssociation attaches a validated child record under the given name and
// returns the node for chaining.
func (n *Node) SetAssociation(name string, assoc Association) *Node {
	if n.Associations == nil {
		n.Associations = make(map[string]Association)
	}
	n.Associations[name] = assoc
	return n
}

// IsValid reports whether the node and every nested node carry no failures.
// A valid node contributes nothing to the flattened output.
func (n *Node) IsValid() bool {
	if n == nil {
		return true
	}
	if len(n.FieldErrors) > 0 {
		return false
	}
	for _, assoc := range n.Associations {
		switch a := assoc.(type) {
		case Single:
			if !a.Node.IsValid() {
				return false
			}
		case Many:
			for _, child := range a {
				if !child.IsValid() {
					return false
				}
			}
		}
	}
	return true
}
