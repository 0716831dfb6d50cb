package link

import (
	"fmt"

	"github.com/loomdb/loom"
)

// Direction is one half of a link: the entity it is attached to, the label
// it resolves under, and the cardinality of the traversal.
type Direction struct {
	// On names the entity this direction is attached to.
	On string
	// Has is the cardinality of the traversal from On.
	Has loom.Cardinality
	// Label is the key under which the traversal resolves on On.
	Label string
}

// Descriptor is the immutable definition of one link: a forward and a
// reverse direction. Err holds a construction error, checked by the graph
// builder before indexing.
type Descriptor struct {
	// Forward is the direction on the declaring entity.
	Forward Direction
	// Reverse is the direction on the referenced entity.
	Reverse Direction
	// Comment is an optional description of the link.
	Comment string
	// Err holds the first error observed while building the definition.
	Err error
}

// Builder constructs link descriptors. It has value semantics: every chain
// step returns a copy, so previously-held builders are unaffected.
type Builder struct {
	desc Descriptor
}

// Forward starts a link definition with its forward direction: the entity
// it is declared on, the cardinality of the traversal, and the label it
// resolves under.
func Forward(on string, has loom.Cardinality, label string) Builder {
	return Builder{desc: Descriptor{Forward: Direction{On: on, Has: has, Label: label}}}
}

// Reverse sets the reverse direction of the link.
func (b Builder) Reverse(on string, has loom.Cardinality, label string) Builder {
	b.desc.Reverse = Direction{On: on, Has: has, Label: label}
	return b
}

// Comment sets the link description.
func (b Builder) Comment(text string) Builder {
	b.desc.Comment = text
	return b
}

// Descriptor validates and returns the link definition. Validation errors
// are reported through the Err field.
func (b Builder) Descriptor() Descriptor {
	desc := b.desc
	desc.Err = validate(desc)
	return desc
}

func validate(d Descriptor) error {
	for _, dir := range []struct {
		name string
		Direction
	}{
		{"forward", d.Forward},
		{"reverse", d.Reverse},
	} {
		switch {
		case dir.On == "":
			return fmt.Errorf("loom: missing entity for %s direction", dir.name)
		case dir.Label == "":
			return fmt.Errorf("loom: missing label for %s direction on entity %q", dir.name, dir.On)
		case !dir.Has.Valid():
			return fmt.Errorf("loom: invalid cardinality %q for %s direction on entity %q", dir.Has, dir.name, dir.On)
		}
	}
	// A self-link reusing one label would collide with itself in the index.
	if d.Forward.On == d.Reverse.On && d.Forward.Label == d.Reverse.Label {
		return fmt.Errorf("loom: self-link on entity %q uses label %q for both directions", d.Forward.On, d.Forward.Label)
	}
	return nil
}
