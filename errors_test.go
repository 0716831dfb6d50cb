package loom_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomdb/loom"
)

func TestDuplicateLinkLabelError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := loom.NewDuplicateLinkLabelError("posts", "tags")
		assert.Equal(t, `loom: duplicate link label "tags" on entity "posts"`, err.Error())
		assert.Equal(t, "posts", err.Entity())
		assert.Equal(t, "tags", err.Label())
	})

	t.Run("Is", func(t *testing.T) {
		err := loom.NewDuplicateLinkLabelError("posts", "tags")
		assert.True(t, errors.Is(err, loom.ErrDuplicateLinkLabel))
	})

	t.Run("IsDuplicateLinkLabel", func(t *testing.T) {
		err := loom.NewDuplicateLinkLabelError("posts", "tags")
		assert.True(t, loom.IsDuplicateLinkLabel(err))

		// Wrapped error
		wrapped := fmt.Errorf("building graph: %w", err)
		assert.True(t, loom.IsDuplicateLinkLabel(wrapped))

		// Sentinel error
		assert.True(t, loom.IsDuplicateLinkLabel(loom.ErrDuplicateLinkLabel))

		// Non-matching error
		assert.False(t, loom.IsDuplicateLinkLabel(errors.New("other error")))
		assert.False(t, loom.IsDuplicateLinkLabel(nil))
	})
}

func TestUnknownEntityError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := loom.NewUnknownEntityError("authors", "authorPosts")
		assert.Equal(t, `loom: unknown entity "authors" referenced by link "authorPosts"`, err.Error())
		assert.Equal(t, "authors", err.Entity())
		assert.Equal(t, "authorPosts", err.Link())
	})

	t.Run("ErrorWithPath", func(t *testing.T) {
		err := loom.NewUnknownEntityPathError("ghosts", "ghosts")
		assert.Equal(t, `loom: unknown entity "ghosts" at ghosts`, err.Error())
		assert.Equal(t, []string{"ghosts"}, err.Path())
	})

	t.Run("Is", func(t *testing.T) {
		err := loom.NewUnknownEntityError("authors", "authorPosts")
		assert.True(t, errors.Is(err, loom.ErrUnknownEntity))
	})

	t.Run("IsUnknownEntity", func(t *testing.T) {
		err := loom.NewUnknownEntityError("authors", "authorPosts")
		assert.True(t, loom.IsUnknownEntity(err))

		wrapped := fmt.Errorf("building graph: %w", err)
		assert.True(t, loom.IsUnknownEntity(wrapped))

		assert.True(t, loom.IsUnknownEntity(loom.ErrUnknownEntity))
		assert.False(t, loom.IsUnknownEntity(errors.New("other error")))
		assert.False(t, loom.IsUnknownEntity(nil))
	})
}

func TestUnknownLinkError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := loom.NewUnknownLinkError("posts", "nonexistentLink", "posts", "nonexistentLink")
		assert.Equal(t, `loom: unknown link "nonexistentLink" on entity "posts" at posts.nonexistentLink`, err.Error())
		assert.Equal(t, "posts", err.Entity())
		assert.Equal(t, "nonexistentLink", err.Label())
		assert.Equal(t, []string{"posts", "nonexistentLink"}, err.Path())
	})

	t.Run("ErrorWithoutPath", func(t *testing.T) {
		err := loom.NewUnknownLinkError("posts", "author")
		assert.Equal(t, `loom: unknown link "author" on entity "posts"`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := loom.NewUnknownLinkError("posts", "author")
		assert.True(t, errors.Is(err, loom.ErrUnknownLink))
	})

	t.Run("IsUnknownLink", func(t *testing.T) {
		err := loom.NewUnknownLinkError("posts", "author")
		assert.True(t, loom.IsUnknownLink(err))

		wrapped := fmt.Errorf("resolving shape: %w", err)
		assert.True(t, loom.IsUnknownLink(wrapped))

		assert.True(t, loom.IsUnknownLink(loom.ErrUnknownLink))
		assert.False(t, loom.IsUnknownLink(errors.New("other error")))
		assert.False(t, loom.IsUnknownLink(nil))
	})
}

func TestUnknownAttributeError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := loom.NewUnknownAttributeError("authors", "age", "authors")
		assert.Equal(t, `loom: unknown attribute "age" on entity "authors" at authors`, err.Error())
		assert.Equal(t, "authors", err.Entity())
		assert.Equal(t, "age", err.Attr())
	})

	t.Run("Is", func(t *testing.T) {
		err := loom.NewUnknownAttributeError("authors", "age")
		assert.True(t, errors.Is(err, loom.ErrUnknownAttribute))
	})

	t.Run("IsUnknownAttribute", func(t *testing.T) {
		err := loom.NewUnknownAttributeError("authors", "age")
		assert.True(t, loom.IsUnknownAttribute(err))

		wrapped := fmt.Errorf("resolving shape: %w", err)
		assert.True(t, loom.IsUnknownAttribute(wrapped))

		assert.True(t, loom.IsUnknownAttribute(loom.ErrUnknownAttribute))
		assert.False(t, loom.IsUnknownAttribute(errors.New("other error")))
		assert.False(t, loom.IsUnknownAttribute(nil))
	})
}

func TestCardinality(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.True(t, loom.One.Valid())
		assert.True(t, loom.Many.Valid())
		assert.False(t, loom.Cardinality("").Valid())
		assert.False(t, loom.Cardinality("some").Valid())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "one", loom.One.String())
		assert.Equal(t, "many", loom.Many.String())
	})
}
