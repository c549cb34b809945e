package goshape

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an object value that keeps its keys in input order. The JSON and
// YAML drivers decode objects into Object so diagnostics follow document order.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for i := range o {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (o Object) Keys() []string {
	ks := make([]string, len(o))
	for i := range o {
		ks[i] = o[i].Key
	}
	return ks
}

// TypeTagOf reports the runtime type category of v.
//
// All Go integer, float and complex kinds and json.Number are numbers. Maps,
// structs and Object are objects; slices and arrays are arrays. Untyped nil
// and nil pointers, funcs and interfaces are null. Pointers are followed.
func TypeTagOf(v any) TypeTag {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case json.Number, float64, int:
		return TypeNumber
	case Object, map[string]any:
		return TypeObject
	case []any:
		return TypeArray
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return TypeNull
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Func:
		if rv.IsNil() {
			return TypeNull
		}
		return TypeFunction
	default:
		return TypeObject
	}
}

func isNull(v any) bool { return TypeTagOf(v) == TypeNull }

// numKind is the representation a number was found in.
type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
	numDecimal
)

// number holds a numeric value without losing precision: integers stay
// integers and json.Number keeps its decimal text.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
	d    string
}

// numberOf returns the numeric value of v when v is a number. Complex numbers
// are left to plain comparison.
func numberOf(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{kind: numInt, i: int64(n)}, true
	case float64:
		return number{kind: numFloat, f: n}, true
	case json.Number:
		return number{kind: numDecimal, d: string(n)}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

// rat returns the exact value of n; NaN, infinities and malformed decimals
// have none.
func (n number) rat() (*big.Rat, bool) {
	switch n.kind {
	case numInt:
		return new(big.Rat).SetInt64(n.i), true
	case numUint:
		return new(big.Rat).SetUint64(n.u), true
	case numFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(n.f), true
	default:
		return new(big.Rat).SetString(n.d)
	}
}

// numbersEqual compares exactly. A decimal meeting a float is read as the
// float64 it denotes, the way a JSON number is.
func numbersEqual(a, b number) bool {
	switch {
	case a.kind == numInt && b.kind == numInt:
		return a.i == b.i
	case a.kind == numUint && b.kind == numUint:
		return a.u == b.u
	case a.kind == numInt && b.kind == numUint:
		return a.i >= 0 && uint64(a.i) == b.u
	case a.kind == numUint && b.kind == numInt:
		return b.i >= 0 && a.u == uint64(b.i)
	case a.kind == numFloat && b.kind == numFloat:
		return a.f == b.f
	case a.kind == numDecimal && b.kind == numDecimal && a.d == b.d:
		_, ok := a.rat()
		return ok
	case a.kind == numFloat && b.kind == numDecimal:
		f, err := strconv.ParseFloat(b.d, 64)
		return err == nil && f == a.f
	case a.kind == numDecimal && b.kind == numFloat:
		f, err := strconv.ParseFloat(a.d, 64)
		return err == nil && f == b.f
	}
	x, ok := a.rat()
	if !ok {
		return false
	}
	y, ok := b.rat()
	return ok && x.Cmp(y) == 0
}

// strictEqual compares without coercion across categories. Numbers share a
// single numeric domain compared exactly, NaN equals nothing, and maps, slices
// and funcs compare by identity.
func strictEqual(a, b any) bool {
	if isNull(a) || isNull(b) {
		return isNull(a) && isNull(b)
	}
	if x, ok := numberOf(a); ok {
		y, ok := numberOf(b)
		return ok && numbersEqual(x, y)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// sequence is a read-only view over a slice or array value.
type sequence struct {
	list []any
	rv   reflect.Value
}

func asSequence(v any) (sequence, bool) {
	if list, ok := v.([]any); ok {
		return sequence{list: list}, true
	}
	if v == nil {
		return sequence{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sequence{rv: rv}, true
	}
	return sequence{}, false
}

func (s sequence) Len() int {
	if s.list != nil || !s.rv.IsValid() {
		return len(s.list)
	}
	return s.rv.Len()
}

func (s sequence) At(i int) any {
	if s.list != nil || !s.rv.IsValid() {
		return s.list[i]
	}
	return s.rv.Index(i).Interface()
}

// asObject lists the enumerable members of v in enumeration order: Object in
// its own order, maps with string keys sorted by key, structs by exported
// field declaration order.
func asObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		return o, true
	case map[string]any:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(Object, len(keys))
		for i, k := range keys {
			out[i] = Member{Key: k, Value: o[k]}
		}
		return out, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := make(Object, len(keys))
		for i, k := range keys {
			out[i] = Member{Key: k.String(), Value: rv.MapIndex(k).Interface()}
		}
		return out, true
	case reflect.Struct:
		t := rv.Type()
		out := make(Object, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			key := ResolveStructKey(sf)
			if key == "-" {
				continue
			}
			out = append(out, Member{Key: key, Value: rv.Field(i).Interface()})
		}
		return out, true
	}
	return nil, false
}

// instanceOf reports whether v's dynamic type is t, a pointer to t, or
// implements t when t is an interface.
func instanceOf(v any, t reflect.Type) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	if vt == t {
		return true
	}
	return vt.Kind() == reflect.Pointer && vt.Elem() == t && !reflect.ValueOf(v).IsNil()
}
