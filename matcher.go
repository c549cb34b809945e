package goshape

import (
	"reflect"
	"sort"
)

// Matcher is one node of a schema graph. The populated fields depend on Kind:
//
//	literal       Value
//	union         Children
//	intersection  Children
//	negate        Elem
//	arrayOf       Elem
//	tuple         Children
//	keyed         Fields, Keys, Unknown
//	custom        Descriptor, Predicate
//	typeOf        Type
//	instanceOf    Descriptor, Class
//	reference     Ref
//
// Matchers are built once and treated as read-only afterwards, except for the
// in-place splicing performed by Resolve. After resolution a graph may contain
// cycles; Terminal marks the nodes where graph walkers must stop.
type Matcher struct {
	Kind Kind

	Value      any
	Children   []*Matcher
	Elem       *Matcher
	Keys       []string // Description order; Fields entries missing here follow, sorted.
	Fields     map[string]*Matcher
	Unknown    UnknownPolicy
	Descriptor string
	Predicate  func(any) bool
	Type       TypeTag
	Class      reflect.Type
	Ref        string

	Terminal bool
}

// Field pairs a key with its matcher for Keyed.
type Field struct {
	Name    string
	Matcher *Matcher
}

// F is shorthand for Field{Name: name, Matcher: m}.
func F(name string, m *Matcher) Field { return Field{Name: name, Matcher: m} }

// Is matches values strictly equal to v.
func Is(v any) *Matcher { return &Matcher{Kind: KindLiteral, Value: v} }

// Or matches values accepted by any of ms. Or() matches nothing.
func Or(ms ...*Matcher) *Matcher { return &Matcher{Kind: KindUnion, Children: ms} }

// And matches values accepted by all of ms. And() matches anything.
func And(ms ...*Matcher) *Matcher { return &Matcher{Kind: KindIntersection, Children: ms} }

// Not matches values rejected by m.
func Not(m *Matcher) *Matcher { return &Matcher{Kind: KindNegate, Elem: m} }

// ArrayOf matches sequences whose every element matches m.
func ArrayOf(m *Matcher) *Matcher { return &Matcher{Kind: KindArrayOf, Elem: m} }

// Tuple matches sequences of exactly len(ms) elements, position by position.
func Tuple(ms ...*Matcher) *Matcher { return &Matcher{Kind: KindTuple, Children: ms} }

// Keyed matches objects whose keys match the given fields. Field order is kept
// for descriptions. Undeclared keys are rejected unless Passthrough is called.
func Keyed(fields ...Field) *Matcher {
	m := &Matcher{Kind: KindKeyed, Keys: make([]string, 0, len(fields)), Fields: make(map[string]*Matcher, len(fields))}
	for _, f := range fields {
		if _, dup := m.Fields[f.Name]; !dup {
			m.Keys = append(m.Keys, f.Name)
		}
		m.Fields[f.Name] = f.Matcher
	}
	return m
}

// KeyedMap is Keyed over a map; keys are ordered lexicographically.
func KeyedMap(fields map[string]*Matcher) *Matcher {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	fs := make([]Field, 0, len(names))
	for _, k := range names {
		fs = append(fs, F(k, fields[k]))
	}
	return Keyed(fs...)
}

// keyOrder lists the declared keys of a keyed matcher: the Keys entries present
// in Fields, then the remaining Fields keys sorted. Fields is authoritative;
// Keys only orders descriptions.
func (m *Matcher) keyOrder() []string {
	out := make([]string, 0, len(m.Fields))
	listed := make(map[string]bool, len(m.Fields))
	for _, k := range m.Keys {
		if _, ok := m.Fields[k]; ok && !listed[k] {
			listed[k] = true
			out = append(out, k)
		}
	}
	if len(out) == len(m.Fields) {
		return out
	}
	rest := make([]string, 0, len(m.Fields)-len(out))
	for k := range m.Fields {
		if !listed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Passthrough makes a keyed matcher accept undeclared keys. It returns m.
func (m *Matcher) Passthrough() *Matcher {
	m.Unknown = UnknownPassthrough
	return m
}

// Custom matches values accepted by fn; descriptor is used verbatim in
// messages ("Value must be {descriptor}").
func Custom(descriptor string, fn func(any) bool) *Matcher {
	if fn == nil {
		panic("goshape: Custom requires a predicate")
	}
	return &Matcher{Kind: KindCustom, Descriptor: descriptor, Predicate: fn}
}

// TypeOf matches values whose TypeTagOf equals tag.
func TypeOf(tag TypeTag) *Matcher { return &Matcher{Kind: KindTypeOf, Type: tag} }

// InstanceOf matches values whose dynamic type is t or *t, or which implement
// t when t is an interface type.
func InstanceOf(descriptor string, t reflect.Type) *Matcher {
	if t == nil {
		panic("goshape: InstanceOf requires a type")
	}
	return &Matcher{Kind: KindInstanceOf, Descriptor: descriptor, Class: t}
}

// InstanceOfType is InstanceOf for T, described by T's name.
func InstanceOfType[T any]() *Matcher {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return InstanceOf(t.String(), t)
}

// Ref names another matcher of the same definition bundle. It must be
// eliminated with Resolve before checking.
func Ref(name string) *Matcher { return &Matcher{Kind: KindReference, Ref: name} }

// Maybe matches m or nil.
func Maybe(m *Matcher) *Matcher { return Or(m, Is(nil)) }

// Nullable matches m or nil.
func Nullable(m *Matcher) *Matcher { return Or(m, Is(nil)) }

// Voidable matches m or nil. Go has a single nil, so Voidable, Nullable and
// Maybe accept the same values.
func Voidable(m *Matcher) *Matcher { return Or(m, Is(nil)) }
