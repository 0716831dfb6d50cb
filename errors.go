package loom

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for schema construction and shape resolution.
var (
	// ErrDuplicateLinkLabel is returned when two links collide on the same
	// entity and label, or when a link label shadows an attribute name.
	ErrDuplicateLinkLabel = errors.New("loom: duplicate link label")

	// ErrUnknownEntity is returned when a link or a query document references
	// an entity that is not part of the entity set.
	ErrUnknownEntity = errors.New("loom: unknown entity")

	// ErrUnknownLink is returned when a query document traverses a link label
	// that is not defined on the target entity.
	ErrUnknownLink = errors.New("loom: unknown link")

	// ErrUnknownAttribute is returned when a query document or a validator
	// references an attribute that is not defined on the target entity.
	ErrUnknownAttribute = errors.New("loom: unknown attribute")
)

// DuplicateLinkLabelError reports two link definitions writing the same
// (entity, label) cell of the link index, or a link label colliding with an
// attribute name. Schema construction fails fast on the first collision
// instead of letting a later definition silently win.
type DuplicateLinkLabelError struct {
	entity string
	label  string
}

// Error returns the error string.
func (e *DuplicateLinkLabelError) Error() string {
	return fmt.Sprintf("loom: duplicate link label %q on entity %q", e.label, e.entity)
}

// Is reports whether the target error matches DuplicateLinkLabelError.
// This allows errors.Is(err, ErrDuplicateLinkLabel) to return true.
func (e *DuplicateLinkLabelError) Is(err error) bool {
	return err == ErrDuplicateLinkLabel
}

// Entity returns the entity carrying the colliding label.
func (e *DuplicateLinkLabelError) Entity() string {
	return e.entity
}

// Label returns the colliding label.
func (e *DuplicateLinkLabelError) Label() string {
	return e.label
}

// NewDuplicateLinkLabelError returns a new DuplicateLinkLabelError for the
// given entity and label.
func NewDuplicateLinkLabelError(entity, label string) *DuplicateLinkLabelError {
	return &DuplicateLinkLabelError{entity: entity, label: label}
}

// IsDuplicateLinkLabel returns true if the error is a DuplicateLinkLabelError.
func IsDuplicateLinkLabel(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateLinkLabelError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateLinkLabel)
}

// UnknownEntityError reports a reference to an entity that is absent from
// the entity set. The reference comes either from a link definition at build
// time, or from a top-level query key at resolve time.
type UnknownEntityError struct {
	entity string
	link   string   // Optional: the link whose direction named the entity.
	path   []string // Optional: the query path that named the entity.
}

// Error returns the error string.
func (e *UnknownEntityError) Error() string {
	switch {
	case e.link != "":
		return fmt.Sprintf("loom: unknown entity %q referenced by link %q", e.entity, e.link)
	case len(e.path) > 0:
		return fmt.Sprintf("loom: unknown entity %q at %s", e.entity, strings.Join(e.path, "."))
	}
	return fmt.Sprintf("loom: unknown entity %q", e.entity)
}

// Is reports whether the target error matches UnknownEntityError.
func (e *UnknownEntityError) Is(err error) bool {
	return err == ErrUnknownEntity
}

// Entity returns the unknown entity name.
func (e *UnknownEntityError) Entity() string {
	return e.entity
}

// Link returns the link that referenced the entity, if any.
func (e *UnknownEntityError) Link() string {
	return e.link
}

// Path returns the query path that referenced the entity, if any.
func (e *UnknownEntityError) Path() []string {
	return e.path
}

// NewUnknownEntityError returns a new UnknownEntityError for an entity
// referenced by the given link definition.
func NewUnknownEntityError(entity, link string) *UnknownEntityError {
	return &UnknownEntityError{entity: entity, link: link}
}

// NewUnknownEntityPathError returns a new UnknownEntityError for an entity
// referenced at the given query path.
func NewUnknownEntityPathError(entity string, path ...string) *UnknownEntityError {
	return &UnknownEntityError{entity: entity, path: path}
}

// IsUnknownEntity returns true if the error is an UnknownEntityError.
func IsUnknownEntity(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownEntityError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownEntity)
}

// UnknownLinkError reports a query key naming a link label that is absent
// from the links map of the entity under resolution. The path pins the exact
// nesting level where the mismatch occurred.
type UnknownLinkError struct {
	entity string
	label  string
	path   []string
}

// Error returns the error string.
func (e *UnknownLinkError) Error() string {
	if len(e.path) > 0 {
		return fmt.Sprintf("loom: unknown link %q on entity %q at %s", e.label, e.entity, strings.Join(e.path, "."))
	}
	return fmt.Sprintf("loom: unknown link %q on entity %q", e.label, e.entity)
}

// Is reports whether the target error matches UnknownLinkError.
func (e *UnknownLinkError) Is(err error) bool {
	return err == ErrUnknownLink
}

// Entity returns the entity the label was resolved against.
func (e *UnknownLinkError) Entity() string {
	return e.entity
}

// Label returns the unresolved link label.
func (e *UnknownLinkError) Label() string {
	return e.label
}

// Path returns the query path of the unresolved key.
func (e *UnknownLinkError) Path() []string {
	return e.path
}

// NewUnknownLinkError returns a new UnknownLinkError for the given entity,
// label and query path.
func NewUnknownLinkError(entity, label string, path ...string) *UnknownLinkError {
	return &UnknownLinkError{entity: entity, label: label, path: path}
}

// IsUnknownLink returns true if the error is an UnknownLinkError.
func IsUnknownLink(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownLinkError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownLink)
}

// UnknownAttributeError reports a reference to an attribute that is absent
// from the entity under resolution.
type UnknownAttributeError struct {
	entity string
	attr   string
	path   []string
}

// Error returns the error string.
func (e *UnknownAttributeError) Error() string {
	if len(e.path) > 0 {
		return fmt.Sprintf("loom: unknown attribute %q on entity %q at %s", e.attr, e.entity, strings.Join(e.path, "."))
	}
	return fmt.Sprintf("loom: unknown attribute %q on entity %q", e.attr, e.entity)
}

// Is reports whether the target error matches UnknownAttributeError.
func (e *UnknownAttributeError) Is(err error) bool {
	return err == ErrUnknownAttribute
}

// Entity returns the entity the attribute was resolved against.
func (e *UnknownAttributeError) Entity() string {
	return e.entity
}

// Attr returns the unresolved attribute name.
func (e *UnknownAttributeError) Attr() string {
	return e.attr
}

// Path returns the query path of the unresolved reference.
func (e *UnknownAttributeError) Path() []string {
	return e.path
}

// NewUnknownAttributeError returns a new UnknownAttributeError for the given
// entity, attribute and query path.
func NewUnknownAttributeError(entity, attr string, path ...string) *UnknownAttributeError {
	return &UnknownAttributeError{entity: entity, attr: attr, path: path}
}

// IsUnknownAttribute returns true if the error is an UnknownAttributeError.
func IsUnknownAttribute(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownAttributeError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownAttribute)
}
