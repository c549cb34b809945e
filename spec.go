package goshape

import (
	"fmt"
	"sort"
)

// Spec is a closed matcher ready to check values. It is immutable and safe for
// concurrent use.
type Spec struct {
	matcher *Matcher
}

// NewSpec wraps m. It fails when m still contains reference nodes.
func NewSpec(m *Matcher) (*Spec, error) {
	if err := Closed(m); err != nil {
		return nil, err
	}
	return &Spec{matcher: m}, nil
}

// MustSpec is like NewSpec but panics on error.
func MustSpec(m *Matcher) *Spec {
	s, err := NewSpec(m)
	if err != nil {
		panic(err)
	}
	return s
}

// NewDependentSpecs resolves defs with Resolve and wraps every definition.
// defs is modified in place and must not be used for anything else afterwards.
func NewDependentSpecs(defs map[string]*Matcher) (map[string]*Spec, error) {
	if err := Resolve(defs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	specs := make(map[string]*Spec, len(defs))
	for _, name := range names {
		s, err := NewSpec(defs[name])
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", name, err)
		}
		specs[name] = s
	}
	return specs, nil
}

// Matcher returns the closed matcher graph.
func (s *Spec) Matcher() *Matcher { return s.matcher }

// IsValid reports whether v conforms.
func (s *Spec) IsValid(v any) bool { return IsValid(s.matcher, v) }

// GetErrors returns the issues of v; see GetErrors.
func (s *Spec) GetErrors(v any, opts ...ErrorsOpt) Issues { return GetErrors(s.matcher, v, opts...) }

// Validate returns nil when v conforms and the Issues otherwise.
func (s *Spec) Validate(v any, opts ...ErrorsOpt) error {
	if iss := s.GetErrors(v, opts...); len(iss) > 0 {
		return iss
	}
	return nil
}

// Describe renders the condition the spec imposes on DefaultSubject.
func (s *Spec) Describe() string { return Describe(s.matcher, DefaultSubject, false) }
