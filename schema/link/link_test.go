package link_test

import (
	"testing"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/schema/link"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the link builder with various configurations.
func TestBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func() link.Descriptor
		validate func(t *testing.T, desc link.Descriptor)
	}{
		{
			name: "basic_link",
			build: func() link.Descriptor {
				return link.Forward("authors", loom.Many, "posts").
					Reverse("posts", loom.One, "author").
					Descriptor()
			},
			validate: func(t *testing.T, desc link.Descriptor) {
				require.NoError(t, desc.Err)
				assert.Equal(t, link.Direction{On: "authors", Has: loom.Many, Label: "posts"}, desc.Forward)
				assert.Equal(t, link.Direction{On: "posts", Has: loom.One, Label: "author"}, desc.Reverse)
				assert.Empty(t, desc.Comment)
			},
		},
		{
			name: "one_to_one",
			build: func() link.Descriptor {
				return link.Forward("users", loom.One, "profile").
					Reverse("profiles", loom.One, "user").
					Descriptor()
			},
			validate: func(t *testing.T, desc link.Descriptor) {
				require.NoError(t, desc.Err)
				assert.Equal(t, loom.One, desc.Forward.Has)
				assert.Equal(t, loom.One, desc.Reverse.Has)
			},
		},
		{
			name: "many_to_many",
			build: func() link.Descriptor {
				return link.Forward("posts", loom.Many, "tags").
					Reverse("tags", loom.Many, "posts").
					Descriptor()
			},
			validate: func(t *testing.T, desc link.Descriptor) {
				require.NoError(t, desc.Err)
				assert.Equal(t, loom.Many, desc.Forward.Has)
				assert.Equal(t, loom.Many, desc.Reverse.Has)
			},
		},
		{
			name: "self_link",
			build: func() link.Descriptor {
				return link.Forward("posts", loom.Many, "replies").
					Reverse("posts", loom.One, "parent").
					Descriptor()
			},
			validate: func(t *testing.T, desc link.Descriptor) {
				require.NoError(t, desc.Err)
				assert.Equal(t, desc.Forward.On, desc.Reverse.On)
			},
		},
		{
			name: "with_comment",
			build: func() link.Descriptor {
				return link.Forward("authors", loom.Many, "posts").
					Reverse("posts", loom.One, "author").
					Comment("authorship").
					Descriptor()
			},
			validate: func(t *testing.T, desc link.Descriptor) {
				require.NoError(t, desc.Err)
				assert.Equal(t, "authorship", desc.Comment)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			desc := tt.build()
			tt.validate(t, desc)
		})
	}
}

// TestValidation tests definitions rejected at Descriptor time.
func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() link.Descriptor
	}{
		{
			name: "missing_reverse",
			build: func() link.Descriptor {
				return link.Forward("authors", loom.Many, "posts").Descriptor()
			},
		},
		{
			name: "missing_forward_entity",
			build: func() link.Descriptor {
				return link.Forward("", loom.Many, "posts").
					Reverse("posts", loom.One, "author").
					Descriptor()
			},
		},
		{
			name: "missing_forward_label",
			build: func() link.Descriptor {
				return link.Forward("authors", loom.Many, "").
					Reverse("posts", loom.One, "author").
					Descriptor()
			},
		},
		{
			name: "invalid_cardinality",
			build: func() link.Descriptor {
				return link.Forward("authors", loom.Cardinality("some"), "posts").
					Reverse("posts", loom.One, "author").
					Descriptor()
			},
		},
		{
			name: "self_link_same_label",
			build: func() link.Descriptor {
				return link.Forward("posts", loom.Many, "related").
					Reverse("posts", loom.Many, "related").
					Descriptor()
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			desc := tt.build()
			assert.Error(t, desc.Err)
		})
	}
}

// TestCopyOnWrite tests that chain steps never affect previously-held
// builders.
func TestCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := link.Forward("authors", loom.Many, "posts")
	withReverse := base.Reverse("posts", loom.One, "author")

	assert.Error(t, base.Descriptor().Err, "base builder still has no reverse direction")
	require.NoError(t, withReverse.Descriptor().Err)

	commented := withReverse.Comment("authorship")
	assert.Empty(t, withReverse.Descriptor().Comment)
	assert.Equal(t, "authorship", commented.Descriptor().Comment)
}

// BenchmarkBuilder benchmarks link builder chains.
func BenchmarkBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		link.Forward("authors", loom.Many, "posts").
			Reverse("posts", loom.One, "author").
			Descriptor()
	}
}
