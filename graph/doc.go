// Package graph assembles entity and link declarations into the immutable
// schema graph consumed at query time.
//
// # Building
//
// The builder takes an application identifier, the entity set and the link
// set, resolves every link into per-entity label maps, and returns a Graph:
//
//	g, err := graph.New(appID, entities, links)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	authors := g.Entities["authors"]
//	authors.Links["posts"] // {Entity: "posts", Cardinality: many}
//
// Construction fails fast: a duplicate link label, a label shadowing an
// attribute name, or a link referencing an undeclared entity refuses to
// produce a Graph rather than leaving a partially-consistent index behind.
// The referential-integrity check can be relaxed for staged schema
// construction with WithPartialSchema.
//
// # Link index
//
// BuildIndex exposes the intermediate bidirectional index: two mappings,
// forward and reverse, keyed by entity name, each resolving a link label to
// its target entity and cardinality. It is a pure function of the link set
// and independent of iteration order.
//
// # Immutability
//
// All input maps are copied during construction; a built Graph shares no
// state with its inputs and is never modified afterwards, so it may be read
// concurrently without synchronization. Schema evolution is modeled as
// building a new Graph value.
package graph
