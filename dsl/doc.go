// Package dsl lets schemas be written as Go literals instead of explicit
// goshape matcher calls.
//
// Overview
//   - Of(x): normalize a schema expression (primitive token, []any{elem},
//     map[string]any, Fields, reflect.Type, Check, *goshape.Spec or
//     *goshape.Matcher) into a *goshape.Matcher.
//   - Lib: Is/Or/And/Not/Maybe/Nullable/Voidable/Tuple/ArrayOf/Ref over schema
//     expressions.
//   - CreateSpec / CreateDependentSpecs: build with Lib and close the result
//     into specs; dependent specs may reference each other by name.
//   - CustomCheck / Expr: custom conditions from a Go predicate or an
//     expr-lang expression.
//
// Example
//
//	matrix := dsl.MustCreateSpec(func(dsl.Lib) any {
//	    return []any{[]any{dsl.Number}}
//	})
//	iss := matrix.GetErrors([]any{[]any{1, 2, 3}, []any{4, 5, "wrong"}})
//	// iss[0].Message == `Value[1][2] must be of type "number"`
//
// Example (recursive definitions)
//
//	specs := dsl.MustCreateDependentSpecs(func(l dsl.Lib) map[string]any {
//	    return map[string]any{
//	        "Foo": map[string]any{"barList": []any{l.Ref("Bar")}},
//	        "Bar": map[string]any{"fooList": []any{l.Ref("Foo")}},
//	    }
//	})
//	_ = specs["Foo"].IsValid(map[string]any{"barList": []any{}})
package dsl
