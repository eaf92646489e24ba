package evaluator

import (
	"math"
	"strconv"
	"strings"
)

// ErrorDisplay is the text shown in place of a result that cannot be displayed.
const ErrorDisplay = "Error"

// maxExactInt bounds the values whose truncation fits in an int64.
const maxExactInt = 1 << 63

// FormatNumber renders a result for display.
//
//   - NaN and ±Inf render as "Error".
//   - Values within 1e-10 of their truncated integer render as that integer.
//   - Everything else is rounded half up to 10 decimals, then trailing zeros
//     and a dangling "." are removed.
//
// Rounding works on the shortest decimal form of v, so 1/2048
// (0.00048828125) renders as 0.0004882813. The output always uses "." as
// decimal separator.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorDisplay
	}

	if math.Abs(v) < maxExactInt {
		truncated := int64(v)
		if math.Abs(v-float64(truncated)) < integerTolerance {
			return strconv.FormatInt(truncated, 10)
		}
	}

	s := roundHalfUp(v, displayDecimals)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// displayDecimals is the number of decimals shown for non-integral results.
const displayDecimals = 10

// roundHalfUp formats v with exactly decimals fractional digits, rounding
// ties away from zero.
func roundHalfUp(v float64, decimals int) string {
	intPart, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), ".")

	carry := len(frac) > decimals && frac[decimals] >= '5'
	if len(frac) > decimals {
		frac = frac[:decimals]
	} else {
		frac += strings.Repeat("0", decimals-len(frac))
	}

	digits := []byte(intPart + frac)
	for i := len(digits) - 1; carry && i >= 0; i-- {
		if digits[i] == '9' {
			digits[i] = '0'
			continue
		}
		digits[i]++
		carry = false
	}
	if carry {
		digits = append([]byte{'1'}, digits...)
	}

	split := len(digits) - decimals
	out := string(digits[:split]) + "." + string(digits[split:])
	if math.Signbit(v) && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}
