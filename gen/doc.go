// Package gen generates a typed Go client from a graph: one file per
// entity containing a struct whose fields mirror the entity's attributes
// and link traversals. Optional attributes become pointers; links with
// cardinality one become pointers to the target type and links with
// cardinality many become slices.
//
//	cfg, err := gen.NewConfig("./loomgen")
//	if err != nil {
//		return err
//	}
//	if err := gen.Generate(g, cfg); err != nil {
//		return err
//	}
package gen
