package evaluator

import (
	"context"
	"fmt"
	"math"

	"github.com/sandrolain/goscicalc/pkg/types"
)

// integerTolerance is the largest distance from an integer that still counts
// as that integer, both for factorial operands and for result formatting.
const integerTolerance = 1e-10

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func fnSin(_ context.Context, x float64) (float64, error) {
	return math.Sin(toRadians(x)), nil
}

func fnCos(_ context.Context, x float64) (float64, error) {
	return math.Cos(toRadians(x)), nil
}

func fnTan(_ context.Context, x float64) (float64, error) {
	return math.Tan(toRadians(x)), nil
}

func fnLn(_ context.Context, x float64) (float64, error) {
	return math.Log(x), nil
}

func fnLog(_ context.Context, x float64) (float64, error) {
	return math.Log10(x), nil
}

func fnSqrt(_ context.Context, x float64) (float64, error) {
	return math.Sqrt(x), nil
}

func fnAbs(_ context.Context, x float64) (float64, error) {
	return math.Abs(x), nil
}

// Factorial returns x! for non-negative integral x.
//
// x is rounded half up to n. It fails with ErrFactorialDomain when x is not
// finite, n is negative or x is further than 1e-10 from n. The product stops
// growing once it overflows to +Inf.
func Factorial(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, types.NewError(types.ErrFactorialDomain, fmt.Sprintf("factorial of %v", x), -1)
	}
	n := math.Floor(x + 0.5)
	if math.Abs(x-n) > integerTolerance || n < 0 {
		return 0, types.NewError(types.ErrFactorialDomain, fmt.Sprintf("factorial domain: %v", x), -1)
	}
	result := 1.0
	for i := 2.0; i <= n && !math.IsInf(result, 1); i++ {
		result *= i
	}
	return result, nil
}
