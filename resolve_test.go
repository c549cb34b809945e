package goshape_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	goshape "github.com/reoring/goshape"
)

func fooBar() map[string]*goshape.Matcher {
	return map[string]*goshape.Matcher{
		"Foo": goshape.Keyed(goshape.F("barList", goshape.ArrayOf(goshape.Ref("Bar")))),
		"Bar": goshape.Keyed(goshape.F("fooList", goshape.ArrayOf(goshape.Ref("Foo")))),
	}
}

func TestResolve_MutualRecursion(t *testing.T) {
	defs := fooBar()
	if err := goshape.Resolve(defs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for name, m := range defs {
		if err := goshape.Closed(m); err != nil {
			t.Fatalf("%s not closed: %v", name, err)
		}
	}

	ok := map[string]any{
		"barList": []any{
			map[string]any{"fooList": []any{
				map[string]any{"barList": []any{}},
			}},
		},
	}
	if !goshape.IsValid(defs["Foo"], ok) {
		t.Fatalf("expected nested value to conform")
	}

	bad := map[string]any{
		"barList": []any{
			map[string]any{"fooList": []any{
				map[string]any{"barList": "x"},
			}},
		},
	}
	got := goshape.GetErrors(defs["Foo"], bad).Messages()
	want := []string{"Value.barList[0].fooList[0].barList must be an array where every element is Bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_DescribeStaysFinite(t *testing.T) {
	defs := fooBar()
	if err := goshape.Resolve(defs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := goshape.Describe(defs["Foo"], "Value", false)
	want := "Value must be an object where key barList is an array where every element is Bar"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_Alias(t *testing.T) {
	defs := map[string]*goshape.Matcher{
		"A": goshape.Ref("B"),
		"B": number,
		"C": goshape.ArrayOf(goshape.Ref("A")),
	}
	if err := goshape.Resolve(defs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if defs["A"].Kind != goshape.KindTypeOf {
		t.Fatalf("alias should take the target's kind, got %v", defs["A"].Kind)
	}
	if !goshape.IsValid(defs["C"], []any{1, 2}) || goshape.IsValid(defs["C"], []any{"x"}) {
		t.Fatalf("alias did not resolve to number")
	}
}

func TestResolve_KeyedWithoutKeyOrder(t *testing.T) {
	node := &goshape.Matcher{
		Kind: goshape.KindKeyed,
		Fields: map[string]*goshape.Matcher{
			"next": goshape.Maybe(goshape.Ref("Node")),
			"id":   number,
		},
	}
	if err := goshape.Closed(node); err == nil {
		t.Fatalf("expected Closed to report the reference reached through Fields")
	}
	defs := map[string]*goshape.Matcher{"Node": node}
	if err := goshape.Resolve(defs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := goshape.Closed(defs["Node"]); err != nil {
		t.Fatalf("not closed: %v", err)
	}
	v := map[string]any{"id": 1, "next": map[string]any{"id": 2, "next": nil}}
	if !goshape.IsValid(defs["Node"], v) {
		t.Fatalf("expected linked list to conform")
	}
	want := `Value must be an object where key id is of type "number" and key next is Node or null`
	if got := goshape.Describe(defs["Node"], "Value", false); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_UnknownReference(t *testing.T) {
	defs := map[string]*goshape.Matcher{"A": goshape.ArrayOf(goshape.Ref("Z"))}
	err := goshape.Resolve(defs)
	var ure *goshape.UnknownReferenceError
	if !errors.As(err, &ure) {
		t.Fatalf("expected UnknownReferenceError, got %v", err)
	}
	if ure.Name != "Z" || ure.Definition != "A" {
		t.Fatalf("unexpected error fields %+v", ure)
	}
	if defs["A"].Elem.Kind != goshape.KindReference {
		t.Fatalf("failed Resolve must not modify the bundle")
	}
}

func TestResolve_NonProductiveCycles(t *testing.T) {
	cases := []struct {
		name string
		defs map[string]*goshape.Matcher
		want []string
	}{
		{
			name: "alias cycle",
			defs: map[string]*goshape.Matcher{"A": goshape.Ref("B"), "B": goshape.Ref("A")},
			want: []string{"A", "B", "A"},
		},
		{
			name: "self through intersection",
			defs: map[string]*goshape.Matcher{"A": goshape.And(goshape.Ref("A"))},
			want: []string{"A", "A"},
		},
		{
			name: "through union and negation",
			defs: map[string]*goshape.Matcher{
				"A": goshape.Or(goshape.Ref("B"), goshape.Is(1)),
				"B": goshape.Not(goshape.Ref("A")),
			},
			want: []string{"A", "B", "A"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := goshape.Resolve(tc.defs)
			var rce *goshape.ReferenceCycleError
			if !errors.As(err, &rce) {
				t.Fatalf("expected ReferenceCycleError, got %v", err)
			}
			if diff := cmp.Diff(tc.want, rce.Cycle); diff != "" {
				t.Fatalf("cycle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_NilDefinition(t *testing.T) {
	err := goshape.Resolve(map[string]*goshape.Matcher{"A": nil})
	if !errors.Is(err, goshape.ErrNilMatcher) {
		t.Fatalf("expected ErrNilMatcher, got %v", err)
	}
}

func TestClosed(t *testing.T) {
	err := goshape.Closed(goshape.Keyed(goshape.F("a", goshape.Ref("x"))))
	var ure *goshape.UnresolvedReferenceError
	if !errors.As(err, &ure) || ure.Name != "x" {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}
	if err := goshape.Closed(goshape.Tuple(number, goshape.Not(goshape.Is(1)))); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestWalk_VisitsEveryNodeOnce(t *testing.T) {
	m := goshape.Or(goshape.Is(1), goshape.Not(goshape.ArrayOf(goshape.Keyed(goshape.F("a", number)))))
	var kinds []goshape.Kind
	goshape.Walk(m, func(n *goshape.Matcher) { kinds = append(kinds, n.Kind) })
	want := []goshape.Kind{
		goshape.KindUnion, goshape.KindLiteral, goshape.KindNegate,
		goshape.KindArrayOf, goshape.KindKeyed, goshape.KindTypeOf,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestSpec(t *testing.T) {
	if _, err := goshape.NewSpec(goshape.Ref("x")); err == nil {
		t.Fatalf("expected NewSpec to reject an open graph")
	}

	specs, err := goshape.NewDependentSpecs(fooBar())
	if err != nil {
		t.Fatalf("NewDependentSpecs: %v", err)
	}
	foo := specs["Foo"]
	if err := foo.Validate(map[string]any{"barList": []any{}}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	err = foo.Validate(map[string]any{"barList": 1})
	iss, ok := goshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/barList" {
		t.Fatalf("unexpected validation result %v", err)
	}
	if got := specs["Bar"].Describe(); got != "Value must be an object where key fooList is an array where every element is Foo" {
		t.Fatalf("unexpected description %q", got)
	}
}
