// Package link provides fluent builders for defining relationships between
// entities.
//
// A link is a pair of directions. The forward direction lives on the entity
// that declares the relationship, the reverse direction on the entity it
// points at. Each direction carries its own label and cardinality:
//
//	// authors have many posts; a post has one author.
//	link.Forward("authors", loom.Many, "posts").
//	    Reverse("posts", loom.One, "author").
//	    Descriptor()
//
// After graph construction, the forward label resolves from the forward
// entity to the reverse entity and vice versa:
//
//	authors.Links["posts"]  // {Entity: "posts", Cardinality: many}
//	posts.Links["author"]   // {Entity: "authors", Cardinality: one}
//
// # Self-links
//
// Both directions may name the same entity, as long as the labels differ:
//
//	link.Forward("posts", loom.Many, "replies").
//	    Reverse("posts", loom.One, "parent").
//	    Descriptor()
//
// # Label uniqueness
//
// A label must be unique among the labels and attribute names of the entity
// it is attached to. Collisions are rejected by the graph builder, not here;
// the builder only validates the shape of a single definition.
//
// Builders have value semantics: every chain step returns a copy. Invalid
// definitions are reported through the Err field of the resulting
// Descriptor, checked by the graph builder.
package link
