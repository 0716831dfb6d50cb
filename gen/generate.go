package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/loomdb/loom"
	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/schema/attr"
)

// Generate writes one Go file per entity of the graph into the target
// directory. Files are rendered with jennifer, run through goimports, and
// written in parallel.
func Generate(g *graph.Graph, cfg Config) error {
	if cfg.Target == "" {
		return NewConfigError("Target", cfg.Target, "missing target directory")
	}
	if cfg.Package == "" {
		cfg.Package = filepath.Base(cfg.Target)
	}
	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}
	if err := os.MkdirAll(cfg.Target, 0o755); err != nil {
		return fmt.Errorf("loom: create target directory: %w", err)
	}

	var eg errgroup.Group
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}
	for _, name := range g.EntityNames() {
		e, err := g.Entity(name)
		if err != nil {
			return err
		}
		eg.Go(func() error {
			return generateEntity(cfg, e)
		})
	}
	return eg.Wait()
}

// generateEntity renders and writes the model file of one entity.
func generateEntity(cfg Config, e *graph.Entity) error {
	f := jen.NewFile(cfg.Package)
	f.HeaderComment(cfg.Header)

	name := TypeName(e.Name)
	doc := fmt.Sprintf("%s is the model for the %q entity.", name, e.Name)
	if e.Comment != "" {
		doc += " " + e.Comment
	}
	f.Comment(doc)
	f.Type().Id(name).Struct(structFields(e)...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("loom: render %s: %w", e.Name, err)
	}
	path := filepath.Join(cfg.Target, FileName(e.Name))
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("loom: format %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("loom: write %s: %w", path, err)
	}
	return nil
}

// structFields builds the field list of an entity struct: the record ID,
// one field per attribute, one field per link traversal.
func structFields(e *graph.Entity) []jen.Code {
	fields := []jen.Code{
		jen.Id("ID").String().Tag(map[string]string{"json": "id"}),
	}
	for _, name := range e.AttrNames() {
		d := e.Attrs[name]
		tag := name
		if d.Optional {
			tag += ",omitempty"
		}
		fields = append(fields, jen.Id(pascal(name)).
			Add(attrType(d)).
			Tag(map[string]string{"json": tag}))
	}
	for _, label := range e.LinkLabels() {
		target := e.Links[label]
		field := jen.Id(pascal(label))
		if target.Cardinality == loom.Many {
			field.Index()
		}
		fields = append(fields, field.
			Op("*").Id(TypeName(target.Entity)).
			Tag(map[string]string{"json": label + ",omitempty"}))
	}
	return fields
}

// attrType returns the Go type of an attribute. Optional attributes are
// pointers so absence survives a round-trip.
func attrType(d attr.Descriptor) jen.Code {
	var base *jen.Statement
	switch d.Type {
	case attr.TypeString:
		base = jen.String()
	case attr.TypeNumber:
		base = jen.Float64()
	case attr.TypeBoolean:
		base = jen.Bool()
	case attr.TypeJSON:
		base = jen.Qual("encoding/json", "RawMessage")
	default:
		base = jen.Any()
	}
	if d.Optional && d.Type != attr.TypeJSON {
		return jen.Op("*").Add(base)
	}
	return base
}

// TypeName returns the generated struct name of an entity: the
// singularized, exported form of the entity name.
func TypeName(entity string) string {
	return pascal(inflect.Singularize(entity))
}

// FileName returns the generated file name of an entity.
func FileName(entity string) string {
	return snake(inflect.Singularize(entity)) + ".go"
}

// pascal converts a name to an exported Go identifier.
func pascal(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// snake converts a camel-case name to snake case.
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.ReplaceAll(b.String(), "-", "_")
}
