// Package schema provides the building blocks for declaring Loom entity
// schemas.
//
// This package serves as the entry point for schema definition, together
// with the builders in its subpackages:
//
//   - [attr]: Attribute builders for entity scalar fields
//   - [link]: Link builders for entity relationships
//
// # Quick Start
//
// Declare entities as named sets of attributes, and relate them with links:
//
//	entities := map[string]schema.Entity{
//	    "authors": {Attrs: map[string]attr.Descriptor{
//	        "name":  attr.String().Descriptor(),
//	        "email": attr.String().Unique().Indexed().Descriptor(),
//	    }},
//	    "posts": {Attrs: map[string]attr.Descriptor{
//	        "title": attr.String().Descriptor(),
//	        "draft": attr.Boolean().Optional().Descriptor(),
//	    }},
//	}
//
//	links := map[string]link.Descriptor{
//	    "authorPosts": link.Forward("authors", loom.Many, "posts").
//	        Reverse("posts", loom.One, "author").
//	        Descriptor(),
//	}
//
// The declarations are assembled into an immutable graph by graph.New,
// which resolves every link into a per-entity label map usable at query
// time. Entities carry no links before that resolution step.
package schema
