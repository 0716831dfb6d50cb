package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Reserved control keys.
const (
	// KeyFirst requests first-match-only semantics: the node resolves to a
	// single record instead of a collection.
	KeyFirst = "$first"
	// KeyFields selects a subset of the entity's attributes.
	KeyFields = "$fields"
)

// Doc is a query document: a mapping from entity names (top level) or link
// labels (nested levels) to their query nodes.
type Doc map[string]*Node

// Node is one level of a query document.
type Node struct {
	// First requests a single record where the node would otherwise
	// resolve to a collection.
	First bool
	// Fields selects a subset of the entity's attributes. Nil selects all.
	Fields []string
	// Links holds the nested traversals, keyed by link label.
	Links Doc
}

// ParseJSON parses the canonical JSON object form of a query document.
func ParseJSON(data []byte) (Doc, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("loom: parse query: %w", err)
	}
	return parseDoc(raw, nil)
}

func parseDoc(raw map[string]any, path []string) (Doc, error) {
	doc := make(Doc, len(raw))
	for key, value := range raw {
		node, err := parseNode(key, value, append(path, key))
		if err != nil {
			return nil, err
		}
		doc[key] = node
	}
	return doc, nil
}

func parseNode(key string, value any, path []string) (*Node, error) {
	node := &Node{}
	if value == nil {
		return node, nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("loom: %s: expected an object, got %T", strings.Join(path, "."), value)
	}
	for k, v := range obj {
		switch k {
		case KeyFirst:
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("loom: %s: %s must be a boolean", strings.Join(path, "."), KeyFirst)
			}
			node.First = b
		case KeyFields:
			fields, err := parseFields(v, path)
			if err != nil {
				return nil, err
			}
			node.Fields = fields
		default:
			child, err := parseNode(k, v, append(path, k))
			if err != nil {
				return nil, err
			}
			if node.Links == nil {
				node.Links = make(Doc)
			}
			node.Links[k] = child
		}
	}
	return node, nil
}

func parseFields(v any, path []string) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("loom: %s: %s must be an array of strings", strings.Join(path, "."), KeyFields)
	}
	fields := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("loom: %s: %s must be an array of strings", strings.Join(path, "."), KeyFields)
		}
		fields = append(fields, s)
	}
	return fields, nil
}
