package graph

import (
	"fmt"
	"sort"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/schema/link"
)

// Target is one resolved traversal: the entity a link label points at and
// the cardinality of the step.
type Target struct {
	// Entity is the name of the entity the traversal reaches.
	Entity string
	// Cardinality reports whether the traversal yields one record or many.
	Cardinality loom.Cardinality
}

// Index is the bidirectional link index: for every entity, the outgoing
// (forward) and incoming (reverse) link labels with their targets.
type Index struct {
	// Fwd maps entity name to its forward labels.
	Fwd map[string]map[string]Target
	// Rev maps entity name to its reverse labels.
	Rev map[string]map[string]Target
}

// BuildIndex folds the link set into a fully-formed bidirectional index.
// For every link, exactly one entry is written to the forward mapping of
// its forward entity and one to the reverse mapping of its reverse entity.
//
// The fold is a pure function of the link set: links are processed in
// sorted name order, and two links writing the same (entity, label) cell
// fail with a DuplicateLinkLabelError instead of overwriting each other,
// so the result never depends on iteration order.
func BuildIndex(links map[string]link.Descriptor) (*Index, error) {
	idx := &Index{
		Fwd: make(map[string]map[string]Target),
		Rev: make(map[string]map[string]Target),
	}
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := links[name]
		if d.Err != nil {
			return nil, fmt.Errorf("loom: link %q: %w", name, d.Err)
		}
		if err := idx.insert(idx.Fwd, d.Forward, d.Reverse); err != nil {
			return nil, err
		}
		if err := idx.insert(idx.Rev, d.Reverse, d.Forward); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// insert writes the traversal declared by dir into the given mapping,
// pointing at the opposite direction's entity.
func (idx *Index) insert(m map[string]map[string]Target, dir, opposite link.Direction) error {
	labels, ok := m[dir.On]
	if !ok {
		labels = make(map[string]Target)
		m[dir.On] = labels
	}
	if _, ok := labels[dir.Label]; ok {
		return loom.NewDuplicateLinkLabelError(dir.On, dir.Label)
	}
	labels[dir.Label] = Target{Entity: opposite.On, Cardinality: dir.Has}
	return nil
}
