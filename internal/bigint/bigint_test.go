package bigint

import "testing"

func TestFromDecimalDigits_DecimalString(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
	}{
		{"single digit", "5", "5"},
		{"zero", "0", "0"},
		{"fits in one limb", "12345", "12345"},
		{"exceeds one limb", "12345678901234567890", "12345678901234567890"},
		{"many limbs", "123456789012345678901234567890123456789012345678901234567890", "123456789012345678901234567890123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromDecimalDigits([]rune(tt.digits))
			got := b.DecimalString()
			if got != tt.want {
				t.Errorf("FromDecimalDigits(%q).DecimalString() = %q, want %q", tt.digits, got, tt.want)
			}
		})
	}
}

func TestZero(t *testing.T) {
	got := Zero().DecimalString()
	if got != "0" {
		t.Errorf("Zero().DecimalString() = %q, want \"0\"", got)
	}
}

func TestFromRadixDigits_DecimalString(t *testing.T) {
	tests := []struct {
		name         string
		digits       string
		bitsPerDigit uint
		want         string
	}{
		{"hex ff", "ff", 4, "255"},
		{"hex larger", "deadbeefdeadbeef", 4, "16045690984833335023"},
		{"binary", "11111111", 1, "255"},
		{"octal", "777", 3, "511"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromRadixDigits([]rune(tt.digits), tt.bitsPerDigit)
			got := b.DecimalString()
			if got != tt.want {
				t.Errorf("FromRadixDigits(%q).DecimalString() = %q, want %q", tt.digits, got, tt.want)
			}
		})
	}
}
