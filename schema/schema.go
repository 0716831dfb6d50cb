package schema

import (
	"github.com/loomdb/loom/schema/attr"
)

// Entity describes a named record type prior to link resolution: a mapping
// of attribute names to their definitions. Links are attached by the graph
// builder, never declared on the entity itself.
type Entity struct {
	// Attrs maps attribute names to their definitions.
	Attrs map[string]attr.Descriptor

	// Comment is an optional description of the entity.
	Comment string
}

// Attr returns the attribute definition for the given name.
func (e Entity) Attr(name string) (attr.Descriptor, bool) {
	d, ok := e.Attrs[name]
	return d, ok
}
