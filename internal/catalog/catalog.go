// Package catalog holds the named specs shipped with the goshape CLI.
package catalog

import (
	"sort"
	"sync"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/dsl"
)

// Entry is one named spec.
type Entry struct {
	Name    string
	Summary string
	Spec    *goshape.Spec
}

var entries = sync.OnceValue(build)

// All returns every entry sorted by name.
func All() []Entry { return entries() }

// Lookup returns the entry called name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func build() []Entry {
	matrix := dsl.MustCreateSpec(func(dsl.Lib) any {
		return []any{[]any{dsl.Number}}
	})

	text := dsl.MustCreateSpec(func(l dsl.Lib) any {
		return dsl.Fields{
			dsl.F("type", l.Is("text")),
			dsl.F("content", dsl.String),
		}
	})
	html := dsl.MustCreateDependentSpecs(func(l dsl.Lib) map[string]any {
		return map[string]any{
			"Node": l.Or(l.Ref("Element"), l.Ref("Comment"), text),
			"Element": dsl.Fields{
				dsl.F("type", l.Is("element")),
				dsl.F("tagName", dsl.String),
				dsl.F("children", []any{l.Ref("Node")}),
				dsl.F("attributes", []any{dsl.Fields{
					dsl.F("key", dsl.String),
					dsl.F("value", l.Nullable(dsl.String)),
				}}),
			},
			"Comment": dsl.Fields{
				dsl.F("type", l.Is("comment")),
				dsl.F("content", dsl.String),
			},
		}
	})

	out := []Entry{
		{Name: "matrix", Summary: "array of arrays of numbers", Spec: matrix},
		{Name: "html/text", Summary: "HTML AST text node", Spec: text},
		{Name: "html/node", Summary: "HTML AST node (element, comment or text)", Spec: html["Node"]},
		{Name: "html/element", Summary: "HTML AST element node", Spec: html["Element"]},
		{Name: "html/comment", Summary: "HTML AST comment node", Spec: html["Comment"]},
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
