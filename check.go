package goshape

import "fmt"

// IsValid reports whether v conforms to m.
//
// m must be closed: a reference node reached during the check means Resolve
// was not run, and IsValid panics with *UnresolvedReferenceError.
func IsValid(m *Matcher, v any) bool {
	if m == nil {
		panic(ErrNilMatcher)
	}
	switch m.Kind {
	case KindLiteral:
		return strictEqual(v, m.Value)
	case KindUnion:
		for _, c := range m.Children {
			if IsValid(c, v) {
				return true
			}
		}
		return false
	case KindIntersection:
		for _, c := range m.Children {
			if !IsValid(c, v) {
				return false
			}
		}
		return true
	case KindNegate:
		return !IsValid(m.Elem, v)
	case KindArrayOf:
		seq, ok := asSequence(v)
		if !ok {
			return false
		}
		for i, n := 0, seq.Len(); i < n; i++ {
			if !IsValid(m.Elem, seq.At(i)) {
				return false
			}
		}
		return true
	case KindTuple:
		seq, ok := asSequence(v)
		if !ok || seq.Len() != len(m.Children) {
			return false
		}
		for i, c := range m.Children {
			if !IsValid(c, seq.At(i)) {
				return false
			}
		}
		return true
	case KindKeyed:
		obj, ok := asObject(v)
		if !ok {
			return false
		}
		for _, mem := range obj {
			child, declared := m.Fields[mem.Key]
			if !declared {
				if m.Unknown == UnknownPassthrough {
					continue
				}
				return false
			}
			if !IsValid(child, mem.Value) {
				return false
			}
		}
		return true
	case KindCustom:
		return m.Predicate(v)
	case KindTypeOf:
		return TypeTagOf(v) == m.Type
	case KindInstanceOf:
		return instanceOf(v, m.Class)
	case KindReference:
		panic(&UnresolvedReferenceError{Name: m.Ref})
	default:
		panic(fmt.Sprintf("goshape: unknown matcher kind %d", int(m.Kind)))
	}
}
