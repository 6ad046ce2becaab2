// Package validation models the result of validating a record together with
// its nested associated records, and flattens that result into field-level
// failures ready for formatting.
//
// The package does not validate anything itself. An upstream validator builds
// a Node per failed validation attempt; this package only describes and walks
// the outcome.
//
// # Architecture
//
// A Node holds the failures of one record level: a map of field errors plus a
// map of named associations, each tagged as either a Single nested record or
// Many of them. Association and the error entries are explicit sum types so
// traversal can match exhaustively instead of sniffing dynamic shapes.
//
// Flatten walks a tree recursively and produces one Leaf per field failure.
// A leaf is labelled with the name of its immediately enclosing association
// only; ancestor association names are not carried forward, regardless of
// nesting depth.
//
// # Usage
//
//	node := validation.NewNode().
//		AddError("username", "can't be blank", nil).
//		SetAssociation("posts", validation.Many{
//			validation.NewNode().AddError("title", "can't be blank", nil),
//		})
//
//	for _, leaf := range validation.Flatten(node) {
//		// leaf.Prefix, leaf.Field, leaf.Template, leaf.Bindings
//	}
//
// Flattening is a pure function: the same tree always yields the same
// sequence of leaves.
package validation
