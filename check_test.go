package goshape_test

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	goshape "github.com/reoring/goshape"
)

var number = goshape.TypeOf(goshape.TypeNumber)

type point struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Note string `json:"-"`
}

func TestIsValid_Kinds(t *testing.T) {
	lowercase := goshape.Custom("lowercase", func(v any) bool {
		s, ok := v.(string)
		return ok && s == "lower"
	})
	cases := []struct {
		name string
		m    *goshape.Matcher
		v    any
		want bool
	}{
		{"literal int", goshape.Is(8), 8, true},
		{"literal float from json", goshape.Is(8), float64(8), true},
		{"literal json.Number", goshape.Is(8), json.Number("8"), true},
		{"literal no coercion", goshape.Is(8), "8", false},
		{"literal string", goshape.Is("a"), "a", true},
		{"literal bool vs number", goshape.Is(true), 1, false},
		{"literal nil", goshape.Is(nil), nil, true},
		{"literal nil vs zero", goshape.Is(nil), 0, false},
		{"literal NaN", goshape.Is(math.NaN()), math.NaN(), false},
		{"literal large int64 exact", goshape.Is(int64(1<<53 + 1)), int64(1 << 53), false},
		{"literal large int64 equal", goshape.Is(int64(1<<53 + 1)), int64(1<<53 + 1), true},
		{"literal max uint64", goshape.Is(^uint64(0)), ^uint64(0) - 1, false},
		{"literal uint vs int", goshape.Is(uint8(5)), 5, true},
		{"literal negative vs uint", goshape.Is(-1), ^uint64(0), false},
		{"literal json.Number exact", goshape.Is(json.Number("9007199254740993")), json.Number("9007199254740992"), false},
		{"literal json.Number same value", goshape.Is(json.Number("1.50")), json.Number("1.5"), true},
		{"literal json.Number vs int64", goshape.Is(int64(1<<53 + 1)), json.Number("9007199254740993"), true},
		{"literal float vs large int", goshape.Is(float64(1 << 53)), int64(1<<53 + 1), false},
		{"literal float vs json.Number", goshape.Is(0.1), json.Number("0.1"), true},
		{"literal malformed json.Number", goshape.Is(json.Number("x")), json.Number("x"), false},
		{"union empty", goshape.Or(), 1, false},
		{"union hit", goshape.Or(goshape.Is(1), goshape.Is(2)), 2, true},
		{"intersection empty", goshape.And(), "anything", true},
		{"intersection miss", goshape.And(number, goshape.Is(8)), 9, false},
		{"negate", goshape.Not(goshape.Is(9)), 8, true},
		{"arrayOf []any", goshape.ArrayOf(number), []any{1, 2.5}, true},
		{"arrayOf typed slice", goshape.ArrayOf(number), []int{1, 2}, true},
		{"arrayOf array", goshape.ArrayOf(goshape.TypeOf(goshape.TypeString)), [2]string{"a", "b"}, true},
		{"arrayOf empty", goshape.ArrayOf(number), []any{}, true},
		{"arrayOf element miss", goshape.ArrayOf(number), []any{1, "x"}, false},
		{"arrayOf not array", goshape.ArrayOf(number), "abc", false},
		{"arrayOf nil", goshape.ArrayOf(number), nil, false},
		{"tuple exact", goshape.Tuple(goshape.Is(1), goshape.Is(2)), []any{1, 2}, true},
		{"tuple too long", goshape.Tuple(goshape.Is(1), goshape.Is(2)), []any{1, 2, 3}, false},
		{"tuple position miss", goshape.Tuple(goshape.Is(1), goshape.Is(2)), []any{2, 1}, false},
		{"keyed map", goshape.Keyed(goshape.F("x", number)), map[string]any{"x": 1}, true},
		{"keyed missing key ok", goshape.Keyed(goshape.F("x", number), goshape.F("y", number)), map[string]any{"x": 1}, true},
		{"keyed unknown key", goshape.Keyed(goshape.F("x", number)), map[string]any{"x": 1, "z": 2}, false},
		{"keyed passthrough", goshape.Keyed(goshape.F("x", number)).Passthrough(), map[string]any{"x": 1, "z": 2}, true},
		{"keyed struct", goshape.Keyed(goshape.F("x", number), goshape.F("y", number)), point{X: 1, Y: 2, Note: "hidden"}, true},
		{"keyed struct pointer", goshape.Keyed(goshape.F("x", goshape.Is(1)), goshape.F("y", number)), &point{X: 1}, true},
		{"keyed object", goshape.Keyed(goshape.F("a", number)), goshape.Object{{Key: "a", Value: 1}}, true},
		{"keyed not object", goshape.Keyed(goshape.F("x", number)), []any{1}, false},
		{"custom", lowercase, "lower", true},
		{"custom miss", lowercase, "Lower", false},
		{"typeOf", goshape.TypeOf(goshape.TypeString), "s", true},
		{"typeOf miss", goshape.TypeOf(goshape.TypeString), 1, false},
		{"instanceOf value", goshape.InstanceOfType[time.Time](), time.Now(), true},
		{"instanceOf pointer", goshape.InstanceOfType[time.Time](), &time.Time{}, true},
		{"instanceOf miss", goshape.InstanceOfType[time.Time](), "2024-01-01", false},
		{"instanceOf nil", goshape.InstanceOfType[time.Time](), nil, false},
		{"instanceOf interface", goshape.InstanceOf("error", reflect.TypeOf((*error)(nil)).Elem()), errors.New("x"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := goshape.IsValid(tc.m, tc.v); got != tc.want {
				t.Fatalf("IsValid = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValid_NegationInvolution(t *testing.T) {
	ms := []*goshape.Matcher{
		goshape.Is(1),
		goshape.Or(),
		goshape.And(),
		goshape.ArrayOf(number),
		goshape.Keyed(goshape.F("a", number)),
	}
	vs := []any{1, "1", nil, []any{1}, map[string]any{"a": 1}, map[string]any{"b": 1}}
	for i, m := range ms {
		for j, v := range vs {
			if goshape.IsValid(goshape.Not(goshape.Not(m)), v) != goshape.IsValid(m, v) {
				t.Fatalf("not(not(m%d)) differs from m%d on v%d", i, i, j)
			}
		}
	}
}

func TestIsValid_UnresolvedReferencePanics(t *testing.T) {
	defer func() {
		r := recover()
		var ure *goshape.UnresolvedReferenceError
		err, _ := r.(error)
		if !errors.As(err, &ure) || ure.Name != "Missing" {
			t.Fatalf("expected UnresolvedReferenceError panic, got %v", r)
		}
	}()
	goshape.IsValid(goshape.ArrayOf(goshape.Ref("Missing")), []any{1})
}

func TestTypeTagOf(t *testing.T) {
	var nilPtr *point
	cases := []struct {
		v    any
		want goshape.TypeTag
	}{
		{1, goshape.TypeNumber},
		{uint8(1), goshape.TypeNumber},
		{float32(1), goshape.TypeNumber},
		{json.Number("1"), goshape.TypeNumber},
		{"s", goshape.TypeString},
		{true, goshape.TypeBoolean},
		{map[string]int{}, goshape.TypeObject},
		{point{}, goshape.TypeObject},
		{&point{}, goshape.TypeObject},
		{goshape.Object{}, goshape.TypeObject},
		{[]any{}, goshape.TypeArray},
		{[3]int{}, goshape.TypeArray},
		{func() {}, goshape.TypeFunction},
		{nil, goshape.TypeNull},
		{nilPtr, goshape.TypeNull},
	}
	for _, tc := range cases {
		if got := goshape.TypeTagOf(tc.v); got != tc.want {
			t.Fatalf("TypeTagOf(%#v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if got := goshape.KindArrayOf.String(); got != "arrayOf" {
		t.Fatalf("got %q", got)
	}
	if got := goshape.Kind(99).String(); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}
