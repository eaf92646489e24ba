package evaluator

import (
	"context"
	"sync"
)

// FunctionDef defines a single-argument function callable from expressions.
type FunctionDef struct {
	Name string
	Impl FunctionImpl
}

// FunctionImpl is the implementation of a function.
type FunctionImpl func(ctx context.Context, x float64) (float64, error)

var (
	builtinFunctions     map[string]*FunctionDef
	builtinFunctionsOnce sync.Once
)

// initBuiltinFunctions initializes the built-in function registry.
func initBuiltinFunctions() {
	builtinFunctionsOnce.Do(func() {
		builtinFunctions = map[string]*FunctionDef{
			// Trigonometric functions, arguments in degrees
			"sin": {Name: "sin", Impl: fnSin},
			"cos": {Name: "cos", Impl: fnCos},
			"tan": {Name: "tan", Impl: fnTan},

			// Logarithms
			"ln":  {Name: "ln", Impl: fnLn},
			"log": {Name: "log", Impl: fnLog},

			// Misc
			"sqrt": {Name: "sqrt", Impl: fnSqrt},
			"abs":  {Name: "abs", Impl: fnAbs},
		}
	})
}

// GetFunction returns a built-in function definition by name.
func GetFunction(name string) (*FunctionDef, bool) {
	initBuiltinFunctions()
	fn, ok := builtinFunctions[name]
	return fn, ok
}

// BuiltinNames returns the names of all built-in functions.
func BuiltinNames() []string {
	initBuiltinFunctions()
	names := make([]string, 0, len(builtinFunctions))
	for name := range builtinFunctions {
		names = append(names, name)
	}
	return names
}
