// Package shape resolves query documents against a graph into result
// shapes: for every node of the document it determines which entity the
// node addresses, whether the result is a single record or a collection,
// and which attributes and link traversals it carries.
//
// Resolution is a pure function of the graph and the document:
//
//	result, err := shape.Resolve(g, doc)
//	if err != nil {
//		// loom.IsUnknownLink(err) etc. report the failing path.
//	}
//	result["posts"].Kind // shape.Many
//
// For repeated resolution of the same documents, a Resolver memoizes
// results keyed by the document fingerprint:
//
//	r := shape.NewResolver(g)
//	result, err := r.Resolve(doc)
package shape
