// Package unicodeid classifies runes against the ECMAScript IdentifierStart
// and IdentifierPart grammar productions, built on the standard unicode
// package's character-property tables.
package unicodeid

import "unicode"

// IsIDStart reports whether r can begin an identifier: a Unicode character
// with the ID_Start property, or one of the two characters the grammar
// always admits regardless of ID_Start ($ and _).
func IsIDStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	if r > unicode.MaxASCII {
		if r == otherIDStart1 || r == otherIDStart2 {
			return true
		}
	}
	return unicode.IsOneOf(idStartCategories, r)
}

// IsIDContinue reports whether r can appear after the first character of an
// identifier: everything IsIDStart admits, plus combining marks, digits,
// connector punctuation, and the zero-width joiner/non-joiner the grammar
// special-cases for script continuity.
func IsIDContinue(r rune) bool {
	if r == zeroWidthNonJoiner || r == zeroWidthJoiner {
		return true
	}
	if IsIDStart(r) {
		return true
	}
	return unicode.IsOneOf(idContinueCategories, r)
}

const (
	zeroWidthNonJoiner = '‌'
	zeroWidthJoiner    = '‍'
	// otherIDStart1/2 are the two characters Unicode's Other_ID_Start
	// property adds back on top of the general ID_Start derivation, for
	// scripts whose canonical start character would otherwise be excluded.
	otherIDStart1 = 'ᢅ'
	otherIDStart2 = 'ᢆ'
)

var idStartCategories = []*unicode.RangeTable{
	unicode.L,  // Letter (Lu, Ll, Lt, Lm, Lo)
	unicode.Nl, // Letter Number
}

var idContinueCategories = []*unicode.RangeTable{
	unicode.Mn, // Nonspacing Mark
	unicode.Mc, // Spacing Combining Mark
	unicode.Nd, // Decimal Number
	unicode.Pc, // Connector Punctuation
}
