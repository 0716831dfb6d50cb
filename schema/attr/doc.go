// Package attr provides fluent builders for defining entity attributes.
//
// Attributes are the scalar fields of an entity. Four value types are
// supported:
//
//	attr.String()   // text values
//	attr.Number()   // numeric values
//	attr.Boolean()  // true/false values
//	attr.JSON()     // arbitrary structured values
//
// # Modifiers
//
// Builders are plain values. Every modifier returns a new builder and never
// mutates the receiver, so a builder held in a variable can be reused as a
// base for several attributes:
//
//	base := attr.String().Indexed()
//	name := base.Descriptor()            // indexed
//	slug := base.Unique().Descriptor()   // indexed and unique
//	// base is still only indexed.
//
// Available modifiers:
//
//	attr.String().
//	    Optional().             // Not required on create
//	    Unique().               // Unique across the entity
//	    Indexed().              // Indexed for lookups
//	    Comment("display name") // Description
//
// Attributes are required unless marked Optional. The attribute name is not
// part of the definition; it is the key under which the descriptor is stored
// in the entity's attribute map.
package attr
