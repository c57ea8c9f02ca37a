package numconv

import "testing"

func TestParseHexadecimal(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   float64
	}{
		{"short run", "ff", 255},
		{"single digit", "a", 10},
		{"zero", "0", 0},
		{"exact 16 digits", "ffffffffffffffff", 1.8446744073709552e+19},
		{"over 16 digits falls back to fma", "fffffffffffffffff", 2.9514790517935283e+20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHexadecimal([]rune(tt.digits))
			if got != tt.want {
				t.Errorf("ParseHexadecimal(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestParseOctal(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   float64
	}{
		{"short run", "17", 15},
		{"zero", "0", 0},
		{"longer run", "777", 511},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOctal([]rune(tt.digits))
			if got != tt.want {
				t.Errorf("ParseOctal(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestParseBinary(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   float64
	}{
		{"short run", "1010", 10},
		{"zero", "0", 0},
		{"all ones 8 bits", "11111111", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBinary([]rune(tt.digits))
			if got != tt.want {
				t.Errorf("ParseBinary(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   float64
	}{
		{"short run", "12345", 12345},
		{"zero", "0", 0},
		{"exact 19 digits", "9223372036854775807", 9.223372036854776e+18},
		{"over 19 digits falls back to strconv", "123456789012345678901", 1.2345678901234568e+20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDecimal([]rune(tt.digits))
			if got != tt.want {
				t.Errorf("ParseDecimal(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}
