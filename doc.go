// Package goshape checks arbitrary Go values against declarative shapes and
// explains every violation in plain English.
//
// A shape is a graph of *Matcher nodes (literal, union, intersection, negate,
// arrayOf, tuple, keyed, custom, typeOf, instanceOf and reference):
//
//   - IsValid(m, v) answers whether v conforms to m.
//   - GetErrors(m, v) returns located Issues, one per violation, e.g.
//     `Value.items[2] must be of type "number"`.
//   - Resolve(defs) closes a bundle of definitions that reference each other
//     by name into a single, possibly cyclic, graph.
//
// Design policy:
//   - Keep the matcher model and the algorithms in the root package; the
//     literal-based builder lives in dsl/, input drivers in source/, terminal
//     rendering in report/ and the CLI in cmd/goshape.
//   - Matchers are mutated only while being built and resolved; afterwards
//     they are read-only and may be shared across goroutines.
//
// Typical usage:
//
//	point := goshape.Keyed(
//	    goshape.F("x", goshape.TypeOf(goshape.TypeNumber)),
//	    goshape.F("y", goshape.TypeOf(goshape.TypeNumber)),
//	)
//	for _, is := range goshape.GetErrors(point, map[string]any{"x": 1, "y": "2"}) {
//	    fmt.Println(is.Message) // Value.y must be of type "number"
//	}
package goshape
