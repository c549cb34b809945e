package dsl_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/dsl"
)

func TestOf_Normalizes(t *testing.T) {
	cases := []struct {
		name string
		x    any
		kind goshape.Kind
		desc string
	}{
		{"primitive", dsl.Number, goshape.KindTypeOf, `of type "number"`},
		{"type tag", goshape.TypeBoolean, goshape.KindTypeOf, `of type "boolean"`},
		{"matcher", goshape.Is(1), goshape.KindLiteral, "1"},
		{"array literal", []any{dsl.String}, goshape.KindArrayOf, `an array where every element is of type "string"`},
		{"map literal sorted", map[string]any{"b": dsl.Null, "a": dsl.Array}, goshape.KindKeyed,
			`an object where key a is of type "array" and key b is of type "null"`},
		{"fields keep order", dsl.Fields{dsl.F("b", dsl.Null), dsl.F("a", dsl.Array)}, goshape.KindKeyed,
			`an object where key b is of type "null" and key a is of type "array"`},
		{"reflect type", reflect.TypeOf((*time.Duration)(nil)).Elem(), goshape.KindInstanceOf, "an instance of time.Duration"},
		{"check", dsl.CustomCheck("even", func(any) bool { return true }), goshape.KindCustom, "even"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := dsl.Of(tc.x)
			if err != nil {
				t.Fatalf("Of: %v", err)
			}
			if m.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", m.Kind, tc.kind)
			}
			if got := goshape.Describe(m, "", false); got != tc.desc {
				t.Fatalf("describe = %q, want %q", got, tc.desc)
			}
		})
	}
}

func TestOf_Unrecognized(t *testing.T) {
	cases := []struct {
		name string
		x    any
		path string
	}{
		{"number", 42, ""},
		{"two element array", []any{dsl.Number, dsl.String}, ""},
		{"nested", map[string]any{"items": []any{3.5}}, ".items[0]"},
		{"nil matcher", (*goshape.Matcher)(nil), ""},
		{"check without predicate", dsl.Check{Descriptor: "x"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dsl.Of(tc.x)
			var use *dsl.UnrecognizedSchemaError
			if !errors.As(err, &use) {
				t.Fatalf("expected UnrecognizedSchemaError, got %v", err)
			}
			if use.Path != tc.path {
				t.Fatalf("path = %q, want %q", use.Path, tc.path)
			}
		})
	}
}

func TestMustOf_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dsl.MustOf("not a schema")
}
