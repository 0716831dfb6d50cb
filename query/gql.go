package query

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// directiveFirst is the GraphQL spelling of the KeyFirst control key.
const directiveFirst = "first"

// ParseGraphQL parses a GraphQL selection set as a query document. Leaf
// fields select attributes, fields with sub-selections are link traversals,
// and the @first directive requests first-match-only semantics:
//
//	{ posts @first { title author { name } } }
//
// Fragments and multiple operations are not supported.
func ParseGraphQL(src string) (Doc, error) {
	qd, err := parser.ParseQuery(&ast.Source{Name: "query", Input: src})
	if err != nil {
		return nil, fmt.Errorf("loom: parse query: %w", err)
	}
	if len(qd.Operations) != 1 {
		return nil, fmt.Errorf("loom: expected a single operation, got %d", len(qd.Operations))
	}
	op := qd.Operations[0]
	if op.Operation != ast.Query {
		return nil, fmt.Errorf("loom: unsupported operation %q", op.Operation)
	}
	return gqlDoc(op.SelectionSet, nil)
}

// gqlDoc converts a selection set where every field carries a sub-selection
// (entity keys at the top level, link traversals below).
func gqlDoc(set ast.SelectionSet, path []string) (Doc, error) {
	doc := make(Doc, len(set))
	for _, sel := range set {
		field, ok := sel.(*ast.Field)
		if !ok {
			return nil, fmt.Errorf("loom: %s: fragments are not supported", strings.Join(path, "."))
		}
		node, err := gqlNode(field, append(path, field.Name))
		if err != nil {
			return nil, err
		}
		doc[field.Name] = node
	}
	return doc, nil
}

func gqlNode(field *ast.Field, path []string) (*Node, error) {
	node := &Node{}
	for _, d := range field.Directives {
		if d.Name != directiveFirst {
			return nil, fmt.Errorf("loom: %s: unsupported directive @%s", strings.Join(path, "."), d.Name)
		}
		node.First = true
	}
	for _, sel := range field.SelectionSet {
		child, ok := sel.(*ast.Field)
		if !ok {
			return nil, fmt.Errorf("loom: %s: fragments are not supported", strings.Join(path, "."))
		}
		if len(child.SelectionSet) == 0 && len(child.Directives) == 0 {
			// Leaf field: attribute selection.
			node.Fields = append(node.Fields, child.Name)
			continue
		}
		sub, err := gqlNode(child, append(path, child.Name))
		if err != nil {
			return nil, err
		}
		if node.Links == nil {
			node.Links = make(Doc)
		}
		node.Links[child.Name] = sub
	}
	return node, nil
}
