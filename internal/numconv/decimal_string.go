package numconv

import (
	"math"
	"strconv"
)

// ToDecimalString implements the abstract ECMAScript Number::toString
// algorithm for radix 10: given a shortest round-trip significant-digit
// string and decimal exponent, it picks fixed or exponential notation using
// the same -5/21 envelope ECMA-262 defines, and appends the output to the
// buffer front to back, most significant digit first.
//
// The shortest-round-trip significand and exponent come from Go's
// strconv.AppendFloat in 'e' mode with -1 precision, which implements the
// same shortest-decimal-that-round-trips guarantee as the Dragonbox-style
// generator this algorithm was originally paired with; reimplementing that
// digit generator from scratch would just be a slower, unverified copy of
// what strconv already provides correctly.
func ToDecimalString(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case value == 0:
		return "0"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	sign := math.Signbit(value)
	significantDigits, repExponent := shortestDecimal(math.Abs(value))

	significant := make([]byte, len(significantDigits))
	copy(significant, significantDigits)
	digitCount := len(significant)
	exponent := digitCount + repExponent

	buf := make([]byte, 0, 32)

	switch {
	case exponent >= -5 && exponent <= 21:
		switch {
		case exponent >= digitCount:
			// k digits, then n-k trailing zeros (ECMA-262 Number::toString,
			// the k ≤ n ≤ 21 case).
			buf = append(buf, significant...)
			for z := 0; z < exponent-digitCount; z++ {
				buf = append(buf, '0')
			}
		case exponent > 0:
			// first n digits, ".", remaining k-n digits (0 < n < k case).
			buf = appendFixedWithPoint(buf, significant, exponent)
		default:
			// "0.", -n zeros, then all k digits (-6 < n ≤ 0 case).
			buf = append(buf, '0', '.')
			for z := 0; z < -exponent; z++ {
				buf = append(buf, '0')
			}
			buf = append(buf, significant...)
		}
	default:
		buf = append(buf, significant[0])
		if digitCount > 1 {
			buf = append(buf, '.')
			buf = append(buf, significant[1:]...)
		}

		buf = append(buf, 'e')
		expValue := exponent - 1
		if expValue >= 0 {
			buf = append(buf, '+')
		} else {
			buf = append(buf, '-')
			expValue = -expValue
		}
		buf = strconv.AppendInt(buf, int64(expValue), 10)
	}

	if sign {
		return "-" + string(buf)
	}
	return string(buf)
}

func appendFixedWithPoint(buf []byte, significant []byte, exponent int) []byte {
	buf = append(buf, significant[:exponent]...)
	buf = append(buf, '.')
	buf = append(buf, significant[exponent:]...)
	return buf
}

// shortestDecimal returns the shortest decimal significant-digit string (no
// leading/trailing zeros, most significant digit first) and the power-of-ten
// exponent such that value == 0.<digits> * 10^(len(digits)+exponent), i.e.
// the same (significand, exponent) pair the ECMAScript algorithm's
// pseudocode consumes.
func shortestDecimal(value float64) ([]byte, int) {
	formatted := strconv.AppendFloat(nil, value, 'e', -1, 64)

	eIdx := -1
	for i, c := range formatted {
		if c == 'e' {
			eIdx = i
			break
		}
	}

	mantissa := formatted[:eIdx]
	exp, _ := strconv.Atoi(string(formatted[eIdx+1:]))

	digits := make([]byte, 0, len(mantissa))
	for _, c := range mantissa {
		if c >= '0' && c <= '9' {
			digits = append(digits, byte(c))
		}
	}

	// strconv's exponent is the power of ten for the single leading digit
	// (d.ddd), so the exponent for the digits read as an integer
	// significand (value == digits * 10^e) is exp - len(digits) + 1.
	return digits, exp - len(digits) + 1
}
