// Package extnumeric provides extended numeric functions for goscicalc.
package extnumeric

import (
	"context"
	"math"

	"github.com/sandrolain/goscicalc/pkg/functions"
)

// All returns all extended numeric function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Exp(),
		Cbrt(),
		Sign(),
		Trunc(),
		Floor(),
		Ceil(),
		Round(),
	}
}

// Exp returns the definition for exp(x), e raised to x.
func Exp() functions.CustomFunctionDef {
	return mathFunc1("exp", math.Exp)
}

// Cbrt returns the definition for cbrt(x).
func Cbrt() functions.CustomFunctionDef {
	return mathFunc1("cbrt", math.Cbrt)
}

// Sign returns the definition for sign(x).
// Returns -1, 0, or 1.
func Sign() functions.CustomFunctionDef {
	return mathFunc1("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Trunc returns the definition for trunc(x), rounding toward zero.
func Trunc() functions.CustomFunctionDef {
	return mathFunc1("trunc", math.Trunc)
}

// Floor returns the definition for floor(x).
func Floor() functions.CustomFunctionDef {
	return mathFunc1("floor", math.Floor)
}

// Ceil returns the definition for ceil(x).
func Ceil() functions.CustomFunctionDef {
	return mathFunc1("ceil", math.Ceil)
}

// Round returns the definition for round(x). Halves round away from zero.
func Round() functions.CustomFunctionDef {
	return mathFunc1("round", math.Round)
}

func mathFunc1(name string, fn func(float64) float64) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name: name,
		Fn: func(_ context.Context, x float64) (float64, error) {
			return fn(x), nil
		},
	}
}
