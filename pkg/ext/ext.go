// Package ext provides optional extension functions for goscicalc beyond the
// keypad's built-in set.
//
// The extension functions live in sub-packages grouped by category:
//   - extnumeric – exp, cbrt, sign, trunc, floor, ceil, round
//   - exttrig    – asin, acos, atan (results in degrees), sinh, cosh, tanh
//
// Extension functions are reachable from typed expressions (Eval, the CLI's
// -e and -json modes); the keypad vocabulary is fixed and does not list them.
//
// # Integration – all extensions at once
//
//	import "github.com/sandrolain/goscicalc/pkg/ext"
//
//	result, err := goscicalc.Eval("asin(0.5)+cbrt(27)", ext.WithAll())
//
// # Integration – by category
//
//	result, err := goscicalc.Eval("floor(2.7)", ext.WithNumeric())
//
// # Integration – single function from a sub-package
//
//	import "github.com/sandrolain/goscicalc/pkg/ext/exttrig"
//
//	result, err := goscicalc.Eval("sinh(1)",
//	    evaluator.WithFunctions(exttrig.Sinh()),
//	)
package ext

import (
	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/ext/extnumeric"
	"github.com/sandrolain/goscicalc/pkg/ext/exttrig"
	"github.com/sandrolain/goscicalc/pkg/functions"
)

// All returns every extension function definition.
func All() []functions.CustomFunctionDef {
	var all []functions.CustomFunctionDef
	all = append(all, extnumeric.All()...)
	all = append(all, exttrig.All()...)
	return all
}

// WithAll returns an EvalOption that registers all extension functions.
func WithAll() evaluator.EvalOption {
	return evaluator.WithFunctions(All()...)
}

// WithNumeric returns an EvalOption for the extended numeric functions.
func WithNumeric() evaluator.EvalOption {
	return evaluator.WithFunctions(extnumeric.All()...)
}

// WithTrig returns an EvalOption for the inverse and hyperbolic trigonometric functions.
func WithTrig() evaluator.EvalOption {
	return evaluator.WithFunctions(exttrig.All()...)
}
