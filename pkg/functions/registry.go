// Package functions provides types for registering custom calculator functions.
//
// Custom functions take exactly one argument, like the built-in scientific
// functions, and are called by name inside expressions.
//
// # Example
//
//	result, err := goscicalc.Eval("double(21)",
//	    goscicalc.WithCustomFunction("double", func(ctx context.Context, x float64) (float64, error) {
//	        return 2 * x, nil
//	    }),
//	)
//	// result == "42"
package functions

import "context"

// CustomFunc is the signature for user-defined custom functions.
// x is the evaluated argument. Returning an error aborts the evaluation.
type CustomFunc func(ctx context.Context, x float64) (float64, error)

// CustomFunctionDef describes a user-defined function.
type CustomFunctionDef struct {
	// Name is the function name as it will appear inside expressions.
	// It must consist of letters only and must not shadow a constant.
	Name string
	// Fn is the implementation.
	Fn CustomFunc
}
