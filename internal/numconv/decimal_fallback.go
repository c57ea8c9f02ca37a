package numconv

import "strconv"

// parseDecimalString is the long-digit-run fallback for ParseDecimal. Go's
// strconv.ParseFloat performs the same correctly-rounded decimal-to-binary64
// conversion Rust's str::parse::<f64> does, so there is no need to hand-roll
// a big-decimal-to-float routine here.
func parseDecimalString(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
