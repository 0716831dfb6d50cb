package attr

import "fmt"

// A Type represents the value type of an attribute.
type Type uint8

// List of attribute value types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeNumber
	TypeBoolean
	TypeJSON
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeNumber:  "number",
	TypeBoolean: "boolean",
	TypeJSON:    "json",
}

// String returns the name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", t)
}

// Valid reports whether t is a known value type.
func (t Type) Valid() bool {
	return t > TypeInvalid && int(t) < len(typeNames)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("loom: invalid type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	typ, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

// ParseType returns the Type named by s.
func ParseType(s string) (Type, error) {
	for t := TypeString; int(t) < len(typeNames); t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("loom: unknown value type %q", s)
}

// Descriptor is the immutable definition of one attribute. Once obtained
// from a builder it is never modified; deriving a variant goes through a
// builder again.
type Descriptor struct {
	// Type is the value type of the attribute.
	Type Type
	// Optional indicates the attribute is not required on create, and is
	// absent from query results when unset.
	Optional bool
	// Unique indicates values are unique across the entity.
	Unique bool
	// Indexed indicates the attribute is indexed for lookups.
	Indexed bool
	// Comment is an optional description of the attribute.
	Comment string
}

// Builder constructs attribute descriptors. It has value semantics: every
// modifier returns a copy, so previously-held builders are unaffected.
type Builder struct {
	desc Descriptor
}

// String returns a builder for a string attribute.
func String() Builder {
	return Builder{desc: Descriptor{Type: TypeString}}
}

// Number returns a builder for a numeric attribute.
func Number() Builder {
	return Builder{desc: Descriptor{Type: TypeNumber}}
}

// Boolean returns a builder for a boolean attribute.
func Boolean() Builder {
	return Builder{desc: Descriptor{Type: TypeBoolean}}
}

// JSON returns a builder for an attribute holding arbitrary structured
// values.
func JSON() Builder {
	return Builder{desc: Descriptor{Type: TypeJSON}}
}

// Optional marks the attribute as not required.
func (b Builder) Optional() Builder {
	b.desc.Optional = true
	return b
}

// Unique marks the attribute values as unique across the entity.
func (b Builder) Unique() Builder {
	b.desc.Unique = true
	return b
}

// Indexed marks the attribute as indexed for lookups.
func (b Builder) Indexed() Builder {
	b.desc.Indexed = true
	return b
}

// Comment sets the attribute description.
func (b Builder) Comment(text string) Builder {
	b.desc.Comment = text
	return b
}

// Descriptor returns the attribute definition.
func (b Builder) Descriptor() Descriptor {
	return b.desc
}
