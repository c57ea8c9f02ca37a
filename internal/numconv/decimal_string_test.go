package numconv

import (
	"math"
	"testing"
)

func TestToDecimalString(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"one", 1, "1"},
		{"negative one", -1, "-1"},
		{"trailing zeros in fixed notation", 100000, "100000"},
		{"plain fraction", 123.456, "123.456"},
		{"leading zero fraction", 0.001, "0.001"},
		{"boundary of exponential notation", 1e21, "1e+21"},
		{"past the fixed-notation boundary", 1e22, "1e+22"},
		{"negative exponent notation", 1.5e-7, "1.5e-7"},
		{"large integer part with fraction", 123456789.123456, "123456789.123456"},
		{"smallest denormal", 5e-324, "5e-324"},
		{"largest finite value", math.MaxFloat64, "1.7976931348623157e+308"},
		{"tenth", 0.1, "0.1"},
		{"hundred", 100, "100"},
		{"half step", 1234.5, "1234.5"},
		{"fixed notation small exponent", 1e-5, "0.00001"},
		{"fixed notation at lower boundary", 1e-6, "0.000001"},
		{"large fixed notation", 1e20, "100000000000000000000"},
		{"negative exponent boundary", 1e-7, "1e-7"},
		{"negative value with trailing zeros", -100000, "-100000"},
		{"not a number", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDecimalString(tt.value)
			if got != tt.want {
				t.Errorf("ToDecimalString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
