package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resolvekit/pkg/validation"
)

func TestNodeIsValid(t *testing.T) {
	t.Run("empty node is valid", func(t *testing.T) {
		assert.True(t, validation.NewNode().IsValid())
	})

	t.Run("nil node is valid", func(t *testing.T) {
		var n *validation.Node
		assert.True(t, n.IsValid())
	})

	t.Run("node with field error is invalid", func(t *testing.T) {
		node := validation.NewNode().AddError("title", "can't be blank", nil)
		assert.False(t, node.IsValid())
	})

	t.Run("clean node with invalid single association is invalid", func(t *testing.T) {
		node := validation.NewNode().SetAssociation("comment", validation.Single{
			Node: validation.NewNode().AddError("content", "can't be blank", nil),
		})
		assert.False(t, node.IsValid())
	})

	t.Run("clean node with invalid many association is invalid", func(t *testing.T) {
		node := validation.NewNode().SetAssociation("posts", validation.Many{
			validation.NewNode(),
			validation.NewNode().AddError("title", "can't be blank", nil),
		})
		assert.False(t, node.IsValid())
	})

	t.Run("node with only valid associations is valid", func(t *testing.T) {
		node := validation.NewNode().
			SetAssociation("comment", validation.Single{Node: validation.NewNode()}).
			SetAssociation("posts", validation.Many{validation.NewNode()})
		assert.True(t, node.IsValid())
	})

	t.Run("validity checks arbitrary depth", func(t *testing.T) {
		inner := validation.NewNode().AddError("content", "can't be blank", nil)
		middle := validation.NewNode().SetAssociation("comment", validation.Single{Node: inner})
		root := validation.NewNode().SetAssociation("posts", validation.Many{middle})
		assert.False(t, root.IsValid())
	})
}

func TestNodeBuilders(t *testing.T) {
	t.Run("AddError appends in order", func(t *testing.T) {
		node := validation.NewNode().
			AddError("username", "can't be blank", nil).
			AddError("username", "should be at least %{count} character(s)", validation.Bindings{"count": 2})

		details := node.FieldErrors["username"]
		assert.Len(t, details, 2)
		assert.Equal(t, "can't be blank", details[0].Template)
		assert.Equal(t, "should be at least %{count} character(s)", details[1].Template)
		assert.Equal(t, validation.Bindings{"count": 2}, details[1].Bindings)
	})

	t.Run("builders work on a zero-value node", func(t *testing.T) {
		var node validation.Node
		node.AddError("title", "can't be blank", nil)
		node.SetAssociation("posts", validation.Many{})
		assert.Len(t, node.FieldErrors, 1)
		assert.Len(t, node.Associations, 1)
	})
}
