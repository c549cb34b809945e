package goshape

import (
	"fmt"
	"sort"
)

// Walk calls fn for m and its descendants in pre-order. Terminal nodes are
// neither visited nor descended into, and a node that fn marks Terminal is not
// descended into either.
func Walk(m *Matcher, fn func(*Matcher)) {
	if m == nil || m.Terminal {
		return
	}
	fn(m)
	if m.Terminal {
		return
	}
	switch m.Kind {
	case KindUnion, KindIntersection, KindTuple:
		for _, c := range m.Children {
			Walk(c, fn)
		}
	case KindNegate, KindArrayOf:
		Walk(m.Elem, fn)
	case KindKeyed:
		for _, k := range m.keyOrder() {
			Walk(m.Fields[k], fn)
		}
	}
}

// Replace calls fn for every node of the given kind reachable by Walk.
func Replace(m *Matcher, kind Kind, fn func(*Matcher)) {
	Walk(m, func(n *Matcher) {
		if n.Kind == kind {
			fn(n)
		}
	})
}

// Resolve closes a bundle of mutually referencing definitions in place.
//
// Every reference node is overwritten with the fields of the definition it
// names and marked Terminal; children are shared, not copied, so recursive
// definitions become cyclic graphs. The node keeps the definition name in Ref
// for descriptions.
//
// Resolve fails with *UnknownReferenceError when a name is missing and with
// *ReferenceCycleError when a definition can reach itself without passing
// through an arrayOf, tuple or keyed matcher. Nothing is modified on failure.
// A bundle must be resolved once, before any check runs against it.
func Resolve(defs map[string]*Matcher) error {
	names := make([]string, 0, len(defs))
	for name, m := range defs {
		if m == nil {
			return fmt.Errorf("definition %q: %w", name, ErrNilMatcher)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var err error
		Replace(defs[name], KindReference, func(n *Matcher) {
			if _, ok := defs[n.Ref]; !ok && err == nil {
				err = &UnknownReferenceError{Name: n.Ref, Definition: name}
			}
		})
		if err != nil {
			return err
		}
	}
	if err := checkProductive(defs, names); err != nil {
		return err
	}

	for _, name := range names {
		Replace(defs[name], KindReference, func(n *Matcher) {
			ref := n.Ref
			target := defs[ref]
			for target.Kind == KindReference {
				target = defs[target.Ref]
			}
			*n = *target
			n.Ref = ref
			n.Terminal = true
		})
	}
	return nil
}

// checkProductive rejects definitions that reach a definition on the current
// chain through union, intersection, negate and reference edges only.
func checkProductive(defs map[string]*Matcher, names []string) error {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(names))
	var chain []string
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case active:
			start := 0
			for i, n := range chain {
				if n == name {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, chain[start:]...), name)
			return &ReferenceCycleError{Cycle: cycle}
		}
		state[name] = active
		chain = append(chain, name)
		for _, next := range headRefs(defs[name], nil) {
			if err := visit(next); err != nil {
				return err
			}
		}
		chain = chain[:len(chain)-1]
		state[name] = done
		return nil
	}
	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// headRefs lists the reference names m reaches without a structural step.
func headRefs(m *Matcher, acc []string) []string {
	if m == nil || m.Terminal {
		return acc
	}
	switch m.Kind {
	case KindReference:
		return append(acc, m.Ref)
	case KindUnion, KindIntersection:
		for _, c := range m.Children {
			acc = headRefs(c, acc)
		}
	case KindNegate:
		acc = headRefs(m.Elem, acc)
	}
	return acc
}

// Closed reports the first reference node reachable from m, or nil when the
// graph is ready for checking. It follows cycles closed by Resolve.
func Closed(m *Matcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	seen := map[*Matcher]bool{}
	var visit func(n *Matcher) error
	visit = func(n *Matcher) error {
		if n == nil {
			return ErrNilMatcher
		}
		if seen[n] {
			return nil
		}
		seen[n] = true
		switch n.Kind {
		case KindReference:
			return &UnresolvedReferenceError{Name: n.Ref}
		case KindUnion, KindIntersection, KindTuple:
			for _, c := range n.Children {
				if err := visit(c); err != nil {
					return err
				}
			}
		case KindNegate, KindArrayOf:
			return visit(n.Elem)
		case KindKeyed:
			for _, k := range n.keyOrder() {
				if err := visit(n.Fields[k]); err != nil {
					return err
				}
			}
		case KindCustom:
			if n.Predicate == nil {
				return fmt.Errorf("goshape: custom matcher %q has no predicate", n.Descriptor)
			}
		}
		return nil
	}
	return visit(m)
}
