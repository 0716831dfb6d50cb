package graph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/schema"
	"github.com/loomdb/loom/schema/attr"
	"github.com/loomdb/loom/schema/link"
)

// EntityDef is an alias for the pre-index entity declaration. Links are
// attached during graph construction only.
type EntityDef = schema.Entity

// Entity is an enriched entity: its attributes plus the merged forward and
// reverse link labels resolved from the link set.
type Entity struct {
	// Name is the entity name.
	Name string
	// Attrs maps attribute names to their definitions.
	Attrs map[string]attr.Descriptor
	// Links maps link labels to their resolved targets. Never nil; empty
	// for entities without links.
	Links map[string]Target
	// Comment is an optional description of the entity.
	Comment string
}

// Attr returns the attribute definition for the given name, or an
// UnknownAttributeError.
func (e *Entity) Attr(name string) (attr.Descriptor, error) {
	d, ok := e.Attrs[name]
	if !ok {
		return attr.Descriptor{}, loom.NewUnknownAttributeError(e.Name, name)
	}
	return d, nil
}

// Link returns the resolved target for the given label, or an
// UnknownLinkError.
func (e *Entity) Link(label string) (Target, error) {
	t, ok := e.Links[label]
	if !ok {
		return Target{}, loom.NewUnknownLinkError(e.Name, label)
	}
	return t, nil
}

// AttrNames returns the attribute names of the entity in sorted order.
func (e *Entity) AttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkLabels returns the link labels of the entity in sorted order.
func (e *Entity) LinkLabels() []string {
	labels := make([]string, 0, len(e.Links))
	for label := range e.Links {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Graph is the fully enriched, immutable schema value: the owning
// application identifier, the entity set with resolved links, and the
// original link definitions. It is constructed once at schema-load time
// and must not be modified afterwards.
type Graph struct {
	// AppID identifies the owning application.
	AppID string
	// Entities maps entity names to their enriched definitions.
	Entities map[string]*Entity
	// Links holds the original link definitions the graph was built from.
	Links map[string]link.Descriptor
}

// Entity returns the enriched entity for the given name, or an
// UnknownEntityError.
func (g *Graph) Entity(name string) (*Entity, error) {
	e, ok := g.Entities[name]
	if !ok {
		return nil, loom.NewUnknownEntityPathError(name)
	}
	return e, nil
}

// EntityNames returns the entity names of the graph in sorted order.
func (g *Graph) EntityNames() []string {
	names := make([]string, 0, len(g.Entities))
	for name := range g.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAppID returns a fresh application identifier.
func NewAppID() string {
	return uuid.NewString()
}

// config holds the build options.
type config struct {
	partial bool
}

// Option configures graph construction.
type Option func(*config) error

// WithPartialSchema relaxes referential integrity: links may reference
// entities absent from the entity set. Index entries for undeclared
// entities are dropped from the built graph since there is no entity to
// attach them to. Intended for staged schema construction only; queries
// against a partial graph cannot reach the undeclared side of such links.
func WithPartialSchema() Option {
	return func(c *config) error {
		c.partial = true
		return nil
	}
}

// New builds the immutable graph for the given application identifier,
// entity set and link set. It indexes the links, enriches every entity
// with the union of its forward and reverse labels, and validates that
// no label collides with another label or an attribute name and — unless
// WithPartialSchema is set — that every link direction names a declared
// entity. It either returns a fully-consistent graph or an error, never a
// partial value.
func New(appID string, entities map[string]EntityDef, links map[string]link.Descriptor, opts ...Option) (*Graph, error) {
	if appID == "" {
		return nil, fmt.Errorf("loom: missing app id")
	}
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	idx, err := BuildIndex(links)
	if err != nil {
		return nil, err
	}
	if !cfg.partial {
		if err := checkReferences(entities, links); err != nil {
			return nil, err
		}
	}
	g := &Graph{
		AppID:    appID,
		Entities: make(map[string]*Entity, len(entities)),
		Links:    make(map[string]link.Descriptor, len(links)),
	}
	for name, def := range entities {
		e := &Entity{
			Name:    name,
			Attrs:   make(map[string]attr.Descriptor, len(def.Attrs)),
			Links:   make(map[string]Target),
			Comment: def.Comment,
		}
		for attrName, d := range def.Attrs {
			if !d.Type.Valid() {
				return nil, fmt.Errorf("loom: entity %q: attribute %q has invalid value type", name, attrName)
			}
			e.Attrs[attrName] = d
		}
		if err := e.mergeLinks(idx.Fwd[name]); err != nil {
			return nil, err
		}
		if err := e.mergeLinks(idx.Rev[name]); err != nil {
			return nil, err
		}
		g.Entities[name] = e
	}
	for name, d := range links {
		g.Links[name] = d
	}
	return g, nil
}

// mergeLinks copies the indexed labels into the entity, rejecting labels
// that collide with attribute names or previously merged labels.
func (e *Entity) mergeLinks(labels map[string]Target) error {
	sorted := make([]string, 0, len(labels))
	for label := range labels {
		sorted = append(sorted, label)
	}
	sort.Strings(sorted)
	for _, label := range sorted {
		target := labels[label]
		if _, ok := e.Attrs[label]; ok {
			return loom.NewDuplicateLinkLabelError(e.Name, label)
		}
		if _, ok := e.Links[label]; ok {
			return loom.NewDuplicateLinkLabelError(e.Name, label)
		}
		e.Links[label] = target
	}
	return nil
}

// checkReferences verifies every link direction names a declared entity.
func checkReferences(entities map[string]EntityDef, links map[string]link.Descriptor) error {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := links[name]
		for _, on := range []string{d.Forward.On, d.Reverse.On} {
			if _, ok := entities[on]; !ok {
				return loom.NewUnknownEntityError(on, name)
			}
		}
	}
	return nil
}
