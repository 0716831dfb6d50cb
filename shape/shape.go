package shape

import (
	"sort"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/query"
	"github.com/loomdb/loom/schema/attr"
)

// Kind reports whether a shape node yields a single record or a
// collection of records.
type Kind uint8

const (
	// One is a single (possibly absent) record.
	One Kind = iota + 1
	// Many is a collection of records.
	Many
)

// String returns the textual representation of the kind.
func (k Kind) String() string {
	switch k {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "invalid"
	}
}

// Attr describes one attribute carried by a shape node.
type Attr struct {
	Type     attr.Type
	Optional bool
}

// Shape describes the result of one node of a query document: the entity
// it addresses, its record kind, the attributes selected on it, and the
// shapes of its link traversals.
type Shape struct {
	Entity string
	Kind   Kind
	Attrs  map[string]Attr
	Links  map[string]*Shape
}

// AttrNames returns the selected attribute names in sorted order.
func (s *Shape) AttrNames() []string {
	names := make([]string, 0, len(s.Attrs))
	for name := range s.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result maps each top-level document key to its resolved shape.
type Result map[string]*Shape

// Resolve resolves a query document against a graph. Top-level keys name
// entities and yield collections unless the node is marked $first. Nested
// keys name link labels on the enclosing entity; their kind follows the
// link cardinality, again degraded to a single record by $first. Errors
// report the full document path at which resolution failed.
func Resolve(g *graph.Graph, doc query.Doc) (Result, error) {
	result := make(Result, len(doc))
	for _, name := range docKeys(doc) {
		e, err := g.Entity(name)
		if err != nil {
			return nil, loom.NewUnknownEntityPathError(name, name)
		}
		s, err := resolve(g, e, doc[name], []string{name})
		if err != nil {
			return nil, err
		}
		result[name] = s
	}
	return result, nil
}

func resolve(g *graph.Graph, e *graph.Entity, n *query.Node, path []string) (*Shape, error) {
	if n == nil {
		n = &query.Node{}
	}
	s := &Shape{
		Entity: e.Name,
		Kind:   Many,
		Attrs:  make(map[string]Attr),
		Links:  make(map[string]*Shape, len(n.Links)),
	}
	if n.First {
		s.Kind = One
	}
	if err := selectAttrs(s, e, n, path); err != nil {
		return nil, err
	}
	for _, label := range docKeys(n.Links) {
		target, ok := e.Links[label]
		if !ok {
			return nil, loom.NewUnknownLinkError(e.Name, label, append(path, label)...)
		}
		next, err := g.Entity(target.Entity)
		if err != nil {
			return nil, loom.NewUnknownEntityPathError(target.Entity, append(path, label)...)
		}
		child, err := resolve(g, next, n.Links[label], append(path, label))
		if err != nil {
			return nil, err
		}
		if target.Cardinality == loom.One {
			child.Kind = One
		}
		s.Links[label] = child
	}
	return s, nil
}

// selectAttrs fills the shape's attribute set: the $fields subset when one
// is given, every declared attribute otherwise.
func selectAttrs(s *Shape, e *graph.Entity, n *query.Node, path []string) error {
	if n.Fields == nil {
		for name, d := range e.Attrs {
			s.Attrs[name] = Attr{Type: d.Type, Optional: d.Optional}
		}
		return nil
	}
	for _, name := range n.Fields {
		d, ok := e.Attrs[name]
		if !ok {
			return loom.NewUnknownAttributeError(e.Name, name, append(path, name)...)
		}
		s.Attrs[name] = Attr{Type: d.Type, Optional: d.Optional}
	}
	return nil
}

func docKeys(d query.Doc) []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
