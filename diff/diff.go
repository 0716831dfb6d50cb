package diff

import (
	"fmt"
	"sort"

	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/schema/attr"
	"github.com/loomdb/loom/schema/link"
)

// Kind is the type of a schema operation.
type Kind uint8

const (
	// AddEntity introduces a new entity.
	AddEntity Kind = iota + 1
	// UpdateEntity changes entity metadata.
	UpdateEntity
	// AddAttr introduces an attribute on an existing entity.
	AddAttr
	// UpdateAttr changes an attribute definition.
	UpdateAttr
	// AddLink introduces a new link.
	AddLink
	// UpdateLink changes a link definition.
	UpdateLink
)

var kindNames = [...]string{
	AddEntity:    "add entity",
	UpdateEntity: "update entity",
	AddAttr:      "add attr",
	UpdateAttr:   "update attr",
	AddLink:      "add link",
	UpdateLink:   "update link",
}

// String returns the textual representation of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "invalid"
}

// Op is one schema operation. Entity is set for entity and attribute
// operations, Name for attribute and link operations, and the Attr and
// Link fields carry the desired definitions for the respective kinds.
type Op struct {
	Kind   Kind
	Entity string
	Name   string
	Attr   attr.Descriptor
	Link   link.Descriptor
}

// String returns a one-line summary of the operation.
func (op Op) String() string {
	switch op.Kind {
	case AddEntity, UpdateEntity:
		return fmt.Sprintf("%s %s", op.Kind, op.Entity)
	case AddAttr, UpdateAttr:
		return fmt.Sprintf("%s %s.%s", op.Kind, op.Entity, op.Name)
	case AddLink, UpdateLink:
		return fmt.Sprintf("%s %s", op.Kind, op.Name)
	default:
		return "invalid"
	}
}

// Graphs computes the operations that, applied to the current graph's
// schema, produce the desired one. Entities and attributes are compared by
// name, links by their declared name. The schema model is additive:
// entities, attributes, and links present only in the current graph
// produce no operations. The result is deterministic: operations are
// ordered entity-by-entity, names sorted, with link operations last.
func Graphs(current, desired *graph.Graph) []Op {
	var ops []Op
	for _, name := range desired.EntityNames() {
		de, _ := desired.Entity(name)
		ce, err := current.Entity(name)
		if err != nil {
			ops = append(ops, Op{Kind: AddEntity, Entity: name})
			ops = append(ops, attrOps(name, de, nil)...)
			continue
		}
		if de.Comment != ce.Comment {
			ops = append(ops, Op{Kind: UpdateEntity, Entity: name})
		}
		ops = append(ops, attrOps(name, de, ce)...)
	}
	for _, name := range linkNames(desired.Links) {
		dl := desired.Links[name]
		cl, ok := current.Links[name]
		if !ok {
			ops = append(ops, Op{Kind: AddLink, Name: name, Link: dl})
			continue
		}
		if !linkEqual(dl, cl) {
			ops = append(ops, Op{Kind: UpdateLink, Name: name, Link: dl})
		}
	}
	return ops
}

// attrOps diffs the attributes of one entity. A nil current entity means
// the entity itself is new and every attribute is an addition.
func attrOps(entity string, desired, current *graph.Entity) []Op {
	var ops []Op
	for _, name := range desired.AttrNames() {
		d := desired.Attrs[name]
		if current == nil {
			ops = append(ops, Op{Kind: AddAttr, Entity: entity, Name: name, Attr: d})
			continue
		}
		c, ok := current.Attrs[name]
		switch {
		case !ok:
			ops = append(ops, Op{Kind: AddAttr, Entity: entity, Name: name, Attr: d})
		case d != c:
			ops = append(ops, Op{Kind: UpdateAttr, Entity: entity, Name: name, Attr: d})
		}
	}
	return ops
}

func linkEqual(a, b link.Descriptor) bool {
	return a.Forward == b.Forward && a.Reverse == b.Reverse && a.Comment == b.Comment
}

func linkNames(links map[string]link.Descriptor) []string {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
