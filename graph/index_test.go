package graph_test

import (
	"testing"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/schema/link"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildIndex tests forward/reverse entry placement.
func TestBuildIndex(t *testing.T) {
	t.Parallel()

	links := map[string]link.Descriptor{
		"authorPosts": link.Forward("authors", loom.Many, "posts").
			Reverse("posts", loom.One, "author").
			Descriptor(),
		"postComments": link.Forward("posts", loom.Many, "comments").
			Reverse("comments", loom.One, "post").
			Descriptor(),
	}

	idx, err := graph.BuildIndex(links)
	require.NoError(t, err)

	assert.Equal(t, graph.Target{Entity: "posts", Cardinality: loom.Many}, idx.Fwd["authors"]["posts"])
	assert.Equal(t, graph.Target{Entity: "authors", Cardinality: loom.One}, idx.Rev["posts"]["author"])
	assert.Equal(t, graph.Target{Entity: "comments", Cardinality: loom.Many}, idx.Fwd["posts"]["comments"])
	assert.Equal(t, graph.Target{Entity: "posts", Cardinality: loom.One}, idx.Rev["comments"]["post"])

	// One fwd entry and one rev entry per link, nothing else.
	assert.Len(t, idx.Fwd["authors"], 1)
	assert.Len(t, idx.Fwd["posts"], 1)
	assert.Len(t, idx.Rev["posts"], 1)
	assert.Len(t, idx.Rev["comments"], 1)
	assert.NotContains(t, idx.Fwd, "comments")
	assert.NotContains(t, idx.Rev, "authors")
}

// TestBuildIndexOrderIndependence tests that the index is a pure function of
// the link set: link sets that differ only in name (and thus in iteration
// order) yield identical entries.
func TestBuildIndexOrderIndependence(t *testing.T) {
	t.Parallel()

	a := link.Forward("authors", loom.Many, "posts").
		Reverse("posts", loom.One, "author").
		Descriptor()
	b := link.Forward("posts", loom.Many, "tags").
		Reverse("tags", loom.Many, "posts").
		Descriptor()

	first, err := graph.BuildIndex(map[string]link.Descriptor{"aaa": a, "zzz": b})
	require.NoError(t, err)
	second, err := graph.BuildIndex(map[string]link.Descriptor{"zzz": a, "aaa": b})
	require.NoError(t, err)

	assert.Equal(t, first.Fwd, second.Fwd)
	assert.Equal(t, first.Rev, second.Rev)
}

// TestBuildIndexDuplicateLabel tests that colliding (entity, label) cells
// fail instead of silently overwriting, regardless of which definition is
// processed first.
func TestBuildIndexDuplicateLabel(t *testing.T) {
	t.Parallel()

	postTags := link.Forward("posts", loom.Many, "tags").
		Reverse("tags", loom.Many, "posts").
		Descriptor()
	// Same forward label on posts, different target entity.
	postTopics := link.Forward("posts", loom.Many, "tags").
		Reverse("topics", loom.Many, "posts").
		Descriptor()

	for name, links := range map[string]map[string]link.Descriptor{
		"first_wins_order":  {"aaa": postTags, "zzz": postTopics},
		"second_wins_order": {"zzz": postTags, "aaa": postTopics},
	} {
		links := links
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := graph.BuildIndex(links)
			require.Error(t, err)
			assert.True(t, loom.IsDuplicateLinkLabel(err))
			var dup *loom.DuplicateLinkLabelError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "posts", dup.Entity())
			assert.Equal(t, "tags", dup.Label())
		})
	}
}

// TestBuildIndexReverseCollision tests duplicate detection on the reverse
// mapping.
func TestBuildIndexReverseCollision(t *testing.T) {
	t.Parallel()

	links := map[string]link.Descriptor{
		"authorPosts": link.Forward("authors", loom.Many, "posts").
			Reverse("posts", loom.One, "author").
			Descriptor(),
		"editorPosts": link.Forward("editors", loom.Many, "posts").
			Reverse("posts", loom.One, "author"). // collides on posts.author
			Descriptor(),
	}
	_, err := graph.BuildIndex(links)
	require.Error(t, err)
	var dup *loom.DuplicateLinkLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "posts", dup.Entity())
	assert.Equal(t, "author", dup.Label())
}

// TestBuildIndexInvalidDescriptor tests that descriptor construction errors
// surface at index time.
func TestBuildIndexInvalidDescriptor(t *testing.T) {
	t.Parallel()

	links := map[string]link.Descriptor{
		"broken": link.Forward("authors", loom.Many, "posts").Descriptor(),
	}
	_, err := graph.BuildIndex(links)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `link "broken"`)
}

// TestBuildIndexEmpty tests indexing an empty link set.
func TestBuildIndexEmpty(t *testing.T) {
	t.Parallel()

	idx, err := graph.BuildIndex(nil)
	require.NoError(t, err)
	assert.Empty(t, idx.Fwd)
	assert.Empty(t, idx.Rev)
}

// BenchmarkBuildIndex benchmarks indexing a small link set.
func BenchmarkBuildIndex(b *testing.B) {
	links := map[string]link.Descriptor{
		"authorPosts": link.Forward("authors", loom.Many, "posts").
			Reverse("posts", loom.One, "author").
			Descriptor(),
		"postComments": link.Forward("posts", loom.Many, "comments").
			Reverse("comments", loom.One, "post").
			Descriptor(),
		"postTags": link.Forward("posts", loom.Many, "tags").
			Reverse("tags", loom.Many, "posts").
			Descriptor(),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := graph.BuildIndex(links); err != nil {
			b.Fatal(err)
		}
	}
}
