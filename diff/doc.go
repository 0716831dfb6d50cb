// Package diff computes the schema operations that turn one graph into
// another. The result is a deterministic, sorted list of add and update
// operations over entities, attributes, and links, suitable for driving a
// schema push.
package diff
