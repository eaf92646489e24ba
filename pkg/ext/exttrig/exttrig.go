// Package exttrig provides inverse and hyperbolic trigonometric functions for
// goscicalc. Like the built-in sin, cos and tan, angles are in degrees: the
// inverse functions return degrees.
package exttrig

import (
	"context"
	"math"

	"github.com/sandrolain/goscicalc/pkg/functions"
)

// All returns all trigonometric extension definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Asin(),
		Acos(),
		Atan(),
		Sinh(),
		Cosh(),
		Tanh(),
	}
}

// Asin returns the definition for asin(x), in degrees.
// Arguments outside [-1, 1] yield NaN, which the evaluator reports as an error.
func Asin() functions.CustomFunctionDef {
	return degrees("asin", math.Asin)
}

// Acos returns the definition for acos(x), in degrees.
func Acos() functions.CustomFunctionDef {
	return degrees("acos", math.Acos)
}

// Atan returns the definition for atan(x), in degrees.
func Atan() functions.CustomFunctionDef {
	return degrees("atan", math.Atan)
}

// Sinh returns the definition for sinh(x).
func Sinh() functions.CustomFunctionDef {
	return plain("sinh", math.Sinh)
}

// Cosh returns the definition for cosh(x).
func Cosh() functions.CustomFunctionDef {
	return plain("cosh", math.Cosh)
}

// Tanh returns the definition for tanh(x).
func Tanh() functions.CustomFunctionDef {
	return plain("tanh", math.Tanh)
}

func degrees(name string, fn func(float64) float64) functions.CustomFunctionDef {
	return plain(name, func(x float64) float64 {
		return fn(x) * 180 / math.Pi
	})
}

func plain(name string, fn func(float64) float64) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name: name,
		Fn: func(_ context.Context, x float64) (float64, error) {
			return fn(x), nil
		},
	}
}
