package dsl

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	goshape "github.com/reoring/goshape"
)

// Check is a custom condition usable anywhere a schema is expected. Descriptor
// completes the sentence "Value must be ...".
type Check struct {
	Descriptor string
	IsValid    func(any) bool
}

// CustomCheck returns a Check with the given descriptor and predicate.
func CustomCheck(descriptor string, isValid func(any) bool) Check {
	return Check{Descriptor: descriptor, IsValid: isValid}
}

// Expr compiles an expr-lang boolean expression into a Check. The checked
// value is bound to the identifier `value`; numbers arrive as float64 and
// objects as map[string]any. A runtime error during evaluation means the value
// does not pass.
//
//	lower, _ := dsl.Expr("lowercase", `value == lower(value)`)
func Expr(descriptor, source string) (Check, error) {
	program, err := expr.Compile(source, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return Check{}, fmt.Errorf("dsl: compiling %q: %w", descriptor, err)
	}
	return Check{Descriptor: descriptor, IsValid: func(v any) bool { return runBool(program, v) }}, nil
}

// MustExpr is like Expr but panics on error.
func MustExpr(descriptor, source string) Check {
	c, err := Expr(descriptor, source)
	if err != nil {
		panic(err)
	}
	return c
}

type exprEnv struct {
	Value any `expr:"value"`
}

func runBool(program *vm.Program, v any) bool {
	out, err := expr.Run(program, exprEnv{Value: exprValue(v)})
	if err != nil {
		return false
	}
	b, _ := out.(bool)
	return b
}

// exprValue maps decoded input onto types expr operators understand.
func exprValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case goshape.Object:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			m[mem.Key] = exprValue(mem.Value)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = exprValue(t[i])
		}
		return out
	}
	return v
}
