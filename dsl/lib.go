package dsl

import (
	"errors"
	"sort"

	goshape "github.com/reoring/goshape"
)

// Lib is the builder library handed to CreateSpec and CreateDependentSpecs.
// Its methods accept schema expressions (see Of) and panic with
// *UnrecognizedSchemaError on bad input; the Create functions turn that panic
// back into an error.
type Lib struct{}

// Is matches values strictly equal to v.
func (Lib) Is(v any) *goshape.Matcher { return goshape.Is(v) }

// Or matches values accepted by any of the schemas.
func (Lib) Or(schemas ...any) *goshape.Matcher { return goshape.Or(mustAll(schemas)...) }

// And matches values accepted by all of the schemas.
func (Lib) And(schemas ...any) *goshape.Matcher { return goshape.And(mustAll(schemas)...) }

// Not matches values rejected by schema.
func (Lib) Not(schema any) *goshape.Matcher { return goshape.Not(MustOf(schema)) }

// Maybe matches schema or nil.
func (Lib) Maybe(schema any) *goshape.Matcher { return goshape.Maybe(MustOf(schema)) }

// Nullable matches schema or nil.
func (Lib) Nullable(schema any) *goshape.Matcher { return goshape.Nullable(MustOf(schema)) }

// Voidable matches schema or nil.
func (Lib) Voidable(schema any) *goshape.Matcher { return goshape.Voidable(MustOf(schema)) }

// Tuple matches fixed-length sequences position by position.
func (Lib) Tuple(schemas ...any) *goshape.Matcher { return goshape.Tuple(mustAll(schemas)...) }

// ArrayOf matches sequences whose every element matches schema.
func (Lib) ArrayOf(schema any) *goshape.Matcher { return goshape.ArrayOf(MustOf(schema)) }

// Ref names another definition of a CreateDependentSpecs bundle.
func (Lib) Ref(name string) *goshape.Matcher { return goshape.Ref(name) }

func mustAll(schemas []any) []*goshape.Matcher {
	ms := make([]*goshape.Matcher, len(schemas))
	for i, s := range schemas {
		ms[i] = MustOf(s)
	}
	return ms
}

// CreateSpec builds a schema expression with the library and closes it into
// a Spec.
func CreateSpec(build func(Lib) any) (spec *goshape.Spec, err error) {
	defer recoverSchemaError(&err)
	m, err := Of(build(Lib{}))
	if err != nil {
		return nil, err
	}
	return goshape.NewSpec(m)
}

// MustCreateSpec is like CreateSpec but panics on error.
func MustCreateSpec(build func(Lib) any) *goshape.Spec {
	s, err := CreateSpec(build)
	if err != nil {
		panic(err)
	}
	return s
}

// CreateDependentSpecs builds named schema expressions that may reference each
// other with Lib.Ref, resolves the references and returns one Spec per name.
func CreateDependentSpecs(build func(Lib) map[string]any) (specs map[string]*goshape.Spec, err error) {
	defer recoverSchemaError(&err)
	exprs := build(Lib{})
	names := make([]string, 0, len(exprs))
	for name := range exprs {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make(map[string]*goshape.Matcher, len(exprs))
	for _, name := range names {
		m, err := of(exprs[name], name)
		if err != nil {
			return nil, err
		}
		defs[name] = m
	}
	return goshape.NewDependentSpecs(defs)
}

// MustCreateDependentSpecs is like CreateDependentSpecs but panics on error.
func MustCreateDependentSpecs(build func(Lib) map[string]any) map[string]*goshape.Spec {
	specs, err := CreateDependentSpecs(build)
	if err != nil {
		panic(err)
	}
	return specs
}

func recoverSchemaError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		var use *UnrecognizedSchemaError
		if errors.As(e, &use) {
			*err = e
			return
		}
	}
	panic(r)
}
