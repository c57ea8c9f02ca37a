package unicodeid

import "testing"

func TestIsIDStart(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ascii letter", 'a', true},
		{"ascii uppercase", 'Z', true},
		{"dollar sign", '$', true},
		{"underscore", '_', true},
		{"digit is not a start", '0', false},
		{"ascii punctuation", '!', false},
		{"greek letter", 'Σ', true},
		{"combining mark is not a start", '́', false},
		{"other id start codepoint", 'ᢅ', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIDStart(tt.r); got != tt.want {
				t.Errorf("IsIDStart(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsIDContinue(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ascii letter", 'a', true},
		{"digit", '5', true},
		{"dollar sign", '$', true},
		{"underscore", '_', true},
		{"connector punctuation", '_', true},
		{"combining mark", '́', true},
		{"zero width non-joiner", '‌', true},
		{"zero width joiner", '‍', true},
		{"ascii punctuation", '!', false},
		{"whitespace", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIDContinue(tt.r); got != tt.want {
				t.Errorf("IsIDContinue(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
