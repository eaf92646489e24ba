// Package goscicalc provides a scientific calculator engine for Go.
//
// The engine has two halves:
//   - a Calculator (expression builder) that turns keypad tokens such as
//     "7", "×", "sin", "π" or "+/-" into an expression string, rejecting
//     keypresses that would make the expression invalid;
//   - an evaluator that parses the finished string with a recursive descent
//     parser and reduces it to a float64.
//
// # Quick Start
//
//	// Evaluate an expression directly
//	result, err := goscicalc.Eval("2^3^2")  // "512"
//
//	// Drive it like a keypad
//	calc := goscicalc.NewCalculator()
//	calc.Input("2")
//	calc.Input("sin")   // "2*sin("
//	calc.Input("30")
//	calc.Input(")")
//	result, err = calc.Evaluate() // "1"
//
// # Numbers
//
// All arithmetic is float64. Trigonometric functions take degrees. Results
// are displayed as integers when within 1e-10 of one, otherwise with at most
// ten decimals. Non-finite results are reported as errors and display as
// "Error".
//
// # More Information
//
//   - Builder: github.com/sandrolain/goscicalc/pkg/calculator
//   - Parser: github.com/sandrolain/goscicalc/pkg/parser
//   - Evaluator: github.com/sandrolain/goscicalc/pkg/evaluator
//   - Types: github.com/sandrolain/goscicalc/pkg/types
package goscicalc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sandrolain/goscicalc/pkg/calculator"
	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/functions"
	"github.com/sandrolain/goscicalc/pkg/parser"
	"github.com/sandrolain/goscicalc/pkg/types"
)

// Version returns the current version of goscicalc.
func Version() string {
	return "v0.1.0-dev"
}

// Calculator is the keypad expression builder.
type Calculator = calculator.Builder

// Compile compiles an expression for repeated evaluation.
//
// The compiled expression is safe for concurrent use.
func Compile(query string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(query, opts...)
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(query string) *types.Expression {
	expr, err := Compile(query)
	if err != nil {
		panic(fmt.Sprintf("goscicalc: Compile(%q): %v", query, err))
	}
	return expr
}

// Eval evaluates query and returns the display text of the result.
//
// Blank input yields "0". On failure the text is "Error" and err describes
// the problem.
func Eval(query string, opts ...evaluator.EvalOption) (string, error) {
	return EvalWithContext(context.Background(), query, opts...)
}

// EvalWithContext is Eval with a caller-supplied context.
func EvalWithContext(ctx context.Context, query string, opts ...evaluator.EvalOption) (string, error) {
	return evaluator.New(opts...).Calculate(ctx, query)
}

// EvalValue evaluates query and returns the raw float64 result, which may be
// ±Inf or NaN.
func EvalValue(query string, opts ...evaluator.EvalOption) (float64, error) {
	return evaluator.New(opts...).EvalString(context.Background(), query)
}

// NewCalculator returns an empty Calculator whose evaluations use the given
// evaluator options.
func NewCalculator(opts ...evaluator.EvalOption) *Calculator {
	ev := evaluator.New(opts...)
	return calculator.New(calculator.WithEngine(ev))
}

// WithCaching enables caching of compiled expressions.
func WithCaching(enabled bool) evaluator.EvalOption {
	return evaluator.WithCaching(enabled)
}

// WithLogger sets the logger used by the evaluator.
func WithLogger(logger *slog.Logger) evaluator.EvalOption {
	return evaluator.WithLogger(logger)
}

// WithDebug enables per-node debug logging.
func WithDebug(enabled bool) evaluator.EvalOption {
	return evaluator.WithDebug(enabled)
}

// WithCustomFunction registers a single-argument function callable by name.
func WithCustomFunction(name string, fn functions.CustomFunc) evaluator.EvalOption {
	return evaluator.WithCustomFunction(name, fn)
}
