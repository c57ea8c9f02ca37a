package lexer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-esparse/internal/bigint"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/numconv"
	"github.com/cwbudde/go-esparse/internal/token"
	"github.com/cwbudde/go-esparse/internal/unicodeid"
)

func isDecimalDigit(c rune) bool { return c >= '0' && c <= '9' }
func isOctalDigit(c rune) bool   { return c >= '0' && c <= '7' }
func isBinaryDigit(c rune) bool  { return c == '0' || c == '1' }

// digitRun scans a run of digits satisfying isDigit, with "_" separators
// allowed only strictly between two digits: no leading, trailing, or
// consecutive underscore. A zero-length run is not an error (the caller
// decides whether that's acceptable - required after a radix prefix,
// optional in a fraction part).
func (l *Lexer) digitRun(st *State, isDigit func(rune) bool) ([]rune, error) {
	startPos := l.pos(st)
	var digits []rune
	sawDigit := false
	lastWasUnderscore := false

	for {
		c, ok := l.at(st, 0)
		if !ok {
			break
		}
		switch {
		case isDigit(c):
			digits = append(digits, c)
			l.advance(st)
			sawDigit = true
			lastWasUnderscore = false
		case c == '_':
			if !sawDigit || lastWasUnderscore {
				return nil, l.errAt(errors.SyntaxError, startPos, "numeric separator must be between two digits")
			}
			l.advance(st)
			lastWasUnderscore = true
		default:
			if lastWasUnderscore {
				return nil, l.errAt(errors.SyntaxError, startPos, "numeric separator must be between two digits")
			}
			return digits, nil
		}
	}
	if lastWasUnderscore {
		return nil, l.errAt(errors.SyntaxError, startPos, "numeric separator must be between two digits")
	}
	return digits, nil
}

// checkEndOfNumericLiteral enforces that a numeric literal is not
// immediately followed by a decimal digit or an IdentifierStart character
// ("3in x" is a syntax error, not "3 in x" with an implicit space).
func (l *Lexer) checkEndOfNumericLiteral(st *State, startPos token.Position) error {
	c, ok := l.at(st, 0)
	if !ok {
		return nil
	}
	if (c >= '0' && c <= '9') || unicodeid.IsIDStart(c) {
		return l.errAt(errors.SyntaxError, startPos, "identifier starts immediately after numeric literal")
	}
	return nil
}

// readZeroStartingLiteral dispatches every numeric literal form that
// begins with a "0" digit: radix-prefixed integers (0x/0o/0b), BigInt zero
// ("0n"), legacy octal/decimal-with-leading-zero, and plain "0" itself
// (possibly continuing into a fraction or exponent, "0.5", "0e1").
func (l *Lexer) readZeroStartingLiteral(st *State, startPos token.Position) (token.Token, error) {
	l.advance(st) // consume "0"

	if c, ok := l.at(st, 0); ok {
		switch c {
		case 'x', 'X':
			l.advance(st)
			return l.readRadixLiteral(st, startPos, 16, isHexDigit)
		case 'o', 'O':
			l.advance(st)
			return l.readRadixLiteral(st, startPos, 8, isOctalDigit)
		case 'b', 'B':
			l.advance(st)
			return l.readRadixLiteral(st, startPos, 2, isBinaryDigit)
		case 'n':
			l.advance(st)
			if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
				return token.Token{}, err
			}
			return token.Token{Kind: token.BigIntLiteral, BigIntValue: bigint.Zero(), Radix: 10}, nil
		case '.', 'e', 'E':
			return l.readDecimalLiteralContinuation(st, startPos, []rune{'0'})
		}
		if c >= '0' && c <= '9' {
			return l.readLegacyOctalOrDecimal(st, startPos)
		}
	}

	if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: token.NumberLiteral, NumberValue: 0, Radix: 10}, nil
}

// readRadixLiteral scans the digit run following a 0x/0o/0b prefix
// (radix already implied by isDigit) and produces either a BigInt literal
// (digits followed by "n") or a Number literal.
func (l *Lexer) readRadixLiteral(st *State, startPos token.Position, radix int, isDigit func(rune) bool) (token.Token, error) {
	digits, err := l.digitRun(st, isDigit)
	if err != nil {
		return token.Token{}, err
	}
	if len(digits) == 0 {
		return token.Token{}, l.errAt(errors.SyntaxError, startPos, "missing digits after radix prefix")
	}

	if c, ok := l.at(st, 0); ok && c == 'n' {
		l.advance(st)
		if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
			return token.Token{}, err
		}
		var bitsPerDigit uint
		switch radix {
		case 16:
			bitsPerDigit = 4
		case 8:
			bitsPerDigit = 3
		case 2:
			bitsPerDigit = 1
		}
		return token.Token{Kind: token.BigIntLiteral, BigIntValue: bigint.FromRadixDigits(digits, bitsPerDigit), Radix: radix}, nil
	}

	if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
		return token.Token{}, err
	}
	var value float64
	switch radix {
	case 16:
		value = numconv.ParseHexadecimal(digits)
	case 8:
		value = numconv.ParseOctal(digits)
	case 2:
		value = numconv.ParseBinary(digits)
	}
	return token.Token{Kind: token.NumberLiteral, NumberValue: value, Radix: radix}, nil
}

// readLegacyOctalOrDecimal handles a "0" immediately followed by another
// decimal digit. If every digit is octal (0-7) and no decimal point or
// exponent follows, this is Annex B's legacy octal literal (a syntax error
// in strict mode). A "8"/"9" digit, or a following "." or exponent, rules
// out legacy octal entirely and falls back to an ordinary decimal literal
// (NonOctalDecimalIntegerLiteral), which is legal in strict mode too.
func (l *Lexer) readLegacyOctalOrDecimal(st *State, startPos token.Position) (token.Token, error) {
	var digits []rune
	allOctal := true
	for {
		c, ok := l.at(st, 0)
		if !ok || c < '0' || c > '9' {
			break
		}
		if c > '7' {
			allOctal = false
		}
		digits = append(digits, c)
		l.advance(st)
	}

	if c, ok := l.at(st, 0); ok && (c == '.' || c == 'e' || c == 'E') {
		return l.readDecimalLiteralContinuation(st, startPos, append([]rune{'0'}, digits...))
	}

	if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
		return token.Token{}, err
	}

	if allOctal {
		if l.strictMode {
			return token.Token{}, l.errAt(errors.StrictOctalLiteral, startPos, "octal literals are not allowed in strict mode")
		}
		return token.Token{Kind: token.NumberLiteral, NumberValue: numconv.ParseOctal(digits), Radix: 8}, nil
	}
	return token.Token{Kind: token.NumberLiteral, NumberValue: numconv.ParseDecimal(append([]rune{'0'}, digits...)), Radix: 10}, nil
}

// readNonZeroStartingLiteral scans a decimal literal beginning with a
// "1".."9" digit, continuing into a BigInt suffix, a fraction, or an
// exponent.
func (l *Lexer) readNonZeroStartingLiteral(st *State, startPos token.Position) (token.Token, error) {
	digits, err := l.digitRun(st, isDecimalDigit)
	if err != nil {
		return token.Token{}, err
	}

	if c, ok := l.at(st, 0); ok && c == 'n' {
		l.advance(st)
		if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: token.BigIntLiteral, BigIntValue: bigint.FromDecimalDigits(digits), Radix: 10}, nil
	}

	if c, ok := l.at(st, 0); ok && (c == '.' || c == 'e' || c == 'E') {
		return l.readDecimalLiteralContinuation(st, startPos, digits)
	}

	if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: token.NumberLiteral, NumberValue: numconv.ParseDecimal(digits), Radix: 10}, nil
}

// readDecimalLiteralContinuation scans the optional fraction and exponent
// parts of a decimal literal given its already-scanned integer digits
// (which may be empty, for ".5"), and converts the assembled text with
// Go's correctly-rounded string-to-float64 parser - the same guarantee
// the original relies on its own decimal parser for.
func (l *Lexer) readDecimalLiteralContinuation(st *State, startPos token.Position, intDigits []rune) (token.Token, error) {
	var fracDigits []rune
	hasFrac := false
	if c, ok := l.at(st, 0); ok && c == '.' {
		hasFrac = true
		l.advance(st)
		digits, err := l.digitRun(st, isDecimalDigit)
		if err != nil {
			return token.Token{}, err
		}
		fracDigits = digits
	}

	hasExp := false
	expSign := byte('+')
	var expDigits []rune
	if c, ok := l.at(st, 0); ok && (c == 'e' || c == 'E') {
		hasExp = true
		l.advance(st)
		if sc, ok2 := l.at(st, 0); ok2 && (sc == '+' || sc == '-') {
			expSign = byte(sc)
			l.advance(st)
		}
		digits, err := l.digitRun(st, isDecimalDigit)
		if err != nil {
			return token.Token{}, err
		}
		if len(digits) == 0 {
			return token.Token{}, l.errAt(errors.SyntaxError, startPos, "missing exponent digits")
		}
		expDigits = digits
	}

	if err := l.checkEndOfNumericLiteral(st, startPos); err != nil {
		return token.Token{}, err
	}

	var sb strings.Builder
	if len(intDigits) == 0 {
		sb.WriteByte('0')
	} else {
		sb.WriteString(string(intDigits))
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(string(fracDigits))
	}
	if hasExp {
		sb.WriteByte('e')
		sb.WriteByte(expSign)
		sb.WriteString(string(expDigits))
	}

	value, _ := strconv.ParseFloat(sb.String(), 64)
	return token.Token{Kind: token.NumberLiteral, NumberValue: value, Radix: 10}, nil
}
