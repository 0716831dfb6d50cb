// Package query models the query documents whose result shapes are
// resolved against a schema graph.
//
// A document is a tree of nested objects. Top-level keys name entities,
// nested keys name link traversals on the current entity. Two reserved
// control keys refine a node:
//
//   - "$first" degrades a collection result into a single record.
//   - "$fields" selects a subset of the entity's attributes; absent, every
//     attribute is included.
//
// The canonical form is a JSON object:
//
//	{"posts": {"$first": true, "author": {"$fields": ["name"]}}}
//
// parsed with ParseJSON. A GraphQL selection set is accepted as an
// alternate syntax with ParseGraphQL:
//
//	{ posts @first { author { name } } }
//
// where leaf fields select attributes, fields with sub-selections are link
// traversals, and the @first directive maps to "$first".
//
// Documents are plain values and may also be constructed literally:
//
//	query.Doc{"posts": {Links: query.Doc{"author": {}}}}
//
// Fingerprint returns a canonical encoding of a document, stable across
// map iteration order, used to key memoized shape resolutions.
package query
