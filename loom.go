// Package loom holds the core vocabulary shared by the schema, graph and
// shape packages: link cardinalities and the typed errors surfaced when a
// schema or a query document is malformed.
//
// A schema is declared with the builders in [schema/attr] and [schema/link],
// assembled into an immutable graph by [graph.New], and consumed by the
// shape resolver in [shape]:
//
//	entities := map[string]graph.EntityDef{
//	    "authors": {Attrs: map[string]attr.Descriptor{"name": attr.String().Descriptor()}},
//	    "posts":   {Attrs: map[string]attr.Descriptor{"title": attr.String().Descriptor()}},
//	}
//	links := map[string]link.Descriptor{
//	    "authorPosts": link.Forward("authors", loom.Many, "posts").
//	        Reverse("posts", loom.One, "author").
//	        Descriptor(),
//	}
//	g, err := graph.New(appID, entities, links)
package loom

// Cardinality reports how many related records a link direction yields.
type Cardinality string

// Cardinality values.
const (
	// One yields a single related record.
	One Cardinality = "one"
	// Many yields a collection of related records.
	Many Cardinality = "many"
)

// Valid reports whether c is a known cardinality.
func (c Cardinality) Valid() bool {
	return c == One || c == Many
}

// String returns the cardinality name.
func (c Cardinality) String() string {
	return string(c)
}
