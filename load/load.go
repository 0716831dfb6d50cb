package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/schema/attr"
	"github.com/loomdb/loom/schema/link"
)

// file is the YAML document layout.
type file struct {
	AppID    string                `yaml:"app_id"`
	Entities map[string]entityDecl `yaml:"entities"`
	Links    map[string]linkDecl   `yaml:"links"`
}

type entityDecl struct {
	Comment string              `yaml:"comment"`
	Attrs   map[string]attrDecl `yaml:"attrs"`
}

type attrDecl struct {
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Unique   bool   `yaml:"unique"`
	Indexed  bool   `yaml:"indexed"`
	Comment  string `yaml:"comment"`
}

type linkDecl struct {
	Comment string        `yaml:"comment"`
	Forward directionDecl `yaml:"forward"`
	Reverse directionDecl `yaml:"reverse"`
}

type directionDecl struct {
	On    string `yaml:"on"`
	Has   string `yaml:"has"`
	Label string `yaml:"label"`
}

// Parse builds a graph from a YAML schema document. Graph options are
// passed through to the builder.
func Parse(data []byte, opts ...graph.Option) (*graph.Graph, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("loom: parse schema file: %w", err)
	}

	entities := make(map[string]graph.EntityDef, len(f.Entities))
	for name, decl := range f.Entities {
		attrs := make(map[string]attr.Descriptor, len(decl.Attrs))
		for attrName, a := range decl.Attrs {
			typ, err := attr.ParseType(a.Type)
			if err != nil {
				return nil, fmt.Errorf("loom: entity %q attr %q: %w", name, attrName, err)
			}
			attrs[attrName] = attr.Descriptor{
				Type:     typ,
				Optional: a.Optional,
				Unique:   a.Unique,
				Indexed:  a.Indexed,
				Comment:  a.Comment,
			}
		}
		entities[name] = graph.EntityDef{Attrs: attrs, Comment: decl.Comment}
	}

	links := make(map[string]link.Descriptor, len(f.Links))
	for name, decl := range f.Links {
		links[name] = link.
			Forward(decl.Forward.On, loom.Cardinality(decl.Forward.Has), decl.Forward.Label).
			Reverse(decl.Reverse.On, loom.Cardinality(decl.Reverse.Has), decl.Reverse.Label).
			Comment(decl.Comment).
			Descriptor()
	}

	return graph.New(f.AppID, entities, links, opts...)
}

// File builds a graph from the YAML schema file at path.
func File(path string, opts ...graph.Option) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loom: read schema file: %w", err)
	}
	return Parse(data, opts...)
}
