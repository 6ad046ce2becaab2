package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resolvekit/pkg/validation"
)

func TestFlatten(t *testing.T) {
	t.Run("nil and empty nodes produce no leaves", func(t *testing.T) {
		assert.Empty(t, validation.Flatten(nil))
		assert.Empty(t, validation.Flatten(validation.NewNode()))
	})

	t.Run("root field errors carry no prefix", func(t *testing.T) {
		node := validation.NewNode().
			AddError("title", "can't be blank", nil).
			AddError("user_id", "can't be blank", nil)

		leaves := validation.Flatten(node)
		require.Len(t, leaves, 2)
		assert.Equal(t, validation.Leaf{Field: "title", Template: "can't be blank"}, leaves[0])
		assert.Equal(t, validation.Leaf{Field: "user_id", Template: "can't be blank"}, leaves[1])
	})

	t.Run("association leaves carry the association name", func(t *testing.T) {
		node := validation.NewNode().
			AddError("username", "can't be blank", nil).
			SetAssociation("posts", validation.Many{
				validation.NewNode().AddError("title", "can't be blank", nil),
			})

		leaves := validation.Flatten(node)
		require.Len(t, leaves, 2)
		assert.Equal(t, "", leaves[0].Prefix)
		assert.Equal(t, "username", leaves[0].Field)
		assert.Equal(t, "posts", leaves[1].Prefix)
		assert.Equal(t, "title", leaves[1].Field)
	})

	t.Run("prefix is the immediate parent association only", func(t *testing.T) {
		// comment nested two levels deep inside posts
		comment := validation.NewNode().AddError("content", "can't be blank", nil)
		post := validation.NewNode().SetAssociation("comment", validation.Single{Node: comment})
		root := validation.NewNode().SetAssociation("posts", validation.Many{post})

		leaves := validation.Flatten(root)
		require.Len(t, leaves, 1)
		assert.Equal(t, "comment", leaves[0].Prefix)
		assert.Equal(t, "content", leaves[0].Field)
	})

	t.Run("bindings pass through untouched", func(t *testing.T) {
		node := validation.NewNode().
			AddError("username", "should be at least %{count} character(s)", validation.Bindings{"count": 2})

		leaves := validation.Flatten(node)
		require.Len(t, leaves, 1)
		assert.Equal(t, validation.Bindings{"count": 2}, leaves[0].Bindings)
	})

	t.Run("duplicate children are not deduplicated", func(t *testing.T) {
		child := validation.NewNode().AddError("title", "can't be blank", nil)
		node := validation.NewNode().SetAssociation("posts", validation.Many{child, child})

		leaves := validation.Flatten(node)
		require.Len(t, leaves, 2)
		assert.Equal(t, leaves[0], leaves[1])
	})

	t.Run("node with only associations recurses correctly", func(t *testing.T) {
		node := validation.NewNode().
			SetAssociation("comments", validation.Many{
				validation.NewNode().AddError("content", "can't be blank", nil),
				validation.NewNode(),
			}).
			SetAssociation("author", validation.Single{
				Node: validation.NewNode().AddError("name", "can't be blank", nil),
			})

		leaves := validation.Flatten(node)
		require.Len(t, leaves, 2)
		// associations are visited in sorted name order
		assert.Equal(t, "author", leaves[0].Prefix)
		assert.Equal(t, "comments", leaves[1].Prefix)
	})

	t.Run("flattening is pure", func(t *testing.T) {
		comment := validation.NewNode().AddError("content", "can't be blank", nil)
		post := validation.NewNode().
			AddError("title", "can't be blank", nil).
			SetAssociation("comment", validation.Single{Node: comment})
		root := validation.NewNode().
			AddError("username", "can't be blank", nil).
			AddError("email", "is invalid", nil).
			SetAssociation("posts", validation.Many{post, post})

		first := validation.Flatten(root)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, validation.Flatten(root))
		}
	})

	t.Run("leaf count equals detail count of the whole tree", func(t *testing.T) {
		post := validation.NewNode().
			AddError("title", "can't be blank", nil).
			AddError("title", "is too short", nil).
			AddError("body", "can't be blank", nil)
		root := validation.NewNode().
			AddError("username", "can't be blank", nil).
			SetAssociation("posts", validation.Many{post, post})

		assert.Len(t, validation.Flatten(root), 7)
	})

	t.Run("unknown association type panics", func(t *testing.T) {
		node := validation.NewNode()
		node.Associations["broken"] = badAssociation{}
		assert.Panics(t, func() { validation.Flatten(node) })
	})
}

type badAssociation struct{ validation.Association }
