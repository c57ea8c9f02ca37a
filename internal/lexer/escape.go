package lexer

import (
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c rune) uint32 {
	switch {
	case c >= 'a':
		return uint32(c-'a') + 10
	case c >= 'A':
		return uint32(c-'A') + 10
	default:
		return uint32(c - '0')
	}
}

// readFixedHexDigits reads exactly count hex digits, used for both "\x"
// (count == 2) and the short "\uHHHH" form (count == 4).
func (l *Lexer) readFixedHexDigits(st *State, count int, startPos token.Position) (uint32, error) {
	var value uint32
	for i := 0; i < count; i++ {
		c, ok := l.at(st, 0)
		if !ok || !isHexDigit(c) {
			return 0, l.errAt(errors.InvalidUnicode, startPos, "invalid hexadecimal escape sequence")
		}
		value = value*16 + hexValue(c)
		l.advance(st)
	}
	return value, nil
}

// readUnicodeEscapeValue reads the body of a "\u" escape (the "\u" itself
// already consumed): either the fixed 4-digit form or the braced
// "{" hex-digits "}" code-point form.
func (l *Lexer) readUnicodeEscapeValue(st *State, startPos token.Position) (uint32, error) {
	if c, ok := l.at(st, 0); ok && c == '{' {
		l.advance(st)
		var value uint32
		count := 0
		for {
			c, ok := l.at(st, 0)
			if !ok {
				return 0, l.errAt(errors.InvalidUnicode, startPos, "unterminated unicode escape sequence")
			}
			if c == '}' {
				l.advance(st)
				break
			}
			if !isHexDigit(c) {
				return 0, l.errAt(errors.InvalidUnicode, startPos, "invalid unicode escape sequence")
			}
			value = value*16 + hexValue(c)
			if value > 0x10FFFF {
				return 0, l.errAt(errors.InvalidUnicode, startPos, "unicode code point escape out of range")
			}
			l.advance(st)
			count++
		}
		if count == 0 {
			return 0, l.errAt(errors.InvalidUnicode, startPos, "empty unicode escape sequence")
		}
		return value, nil
	}
	return l.readFixedHexDigits(st, 4, startPos)
}

// escapeResult is the decoded outcome of a single backslash escape: present
// is false only for a line-continuation escape, which consumes source text
// but contributes no character to the cooked value.
type escapeResult struct {
	r       rune
	present bool
}

// readEscapeSequence decodes one backslash escape starting at the
// backslash itself. In tolerant mode (only ever true for template literal
// bodies, which cannot know at lex time whether they will end up tagged or
// untagged) an invalid escape is reported via cookFailed rather than err:
// the caller keeps scanning raw text and simply stops building a cooked
// value. In non-tolerant mode (ordinary string literals, which have no
// such ambiguity) an invalid escape is always a hard error.
func (l *Lexer) readEscapeSequence(st *State, tolerant bool) (escapeResult, bool, error) {
	startPos := l.pos(st)
	l.advance(st) // consume backslash

	c, ok := l.at(st, 0)
	if !ok {
		return escapeResult{}, false, l.errAt(errors.SyntaxError, startPos, "unterminated escape sequence")
	}

	switch c {
	case 'n':
		l.advance(st)
		return escapeResult{r: '\n', present: true}, false, nil
	case 't':
		l.advance(st)
		return escapeResult{r: '\t', present: true}, false, nil
	case 'r':
		l.advance(st)
		return escapeResult{r: '\r', present: true}, false, nil
	case 'b':
		l.advance(st)
		return escapeResult{r: '\b', present: true}, false, nil
	case 'f':
		l.advance(st)
		return escapeResult{r: '\f', present: true}, false, nil
	case 'v':
		l.advance(st)
		return escapeResult{r: '\v', present: true}, false, nil
	case '\n':
		l.advance(st)
		return escapeResult{}, false, nil
	case '\r':
		l.advance(st)
		if nx, ok2 := l.at(st, 0); ok2 && nx == '\n' {
			l.advance(st)
		}
		return escapeResult{}, false, nil
	case lineSeparator, paragraphSeparator:
		l.advance(st)
		return escapeResult{}, false, nil
	case 'x':
		l.advance(st)
		value, err := l.readFixedHexDigits(st, 2, startPos)
		if err != nil {
			if tolerant {
				return escapeResult{}, true, nil
			}
			return escapeResult{}, false, err
		}
		return escapeResult{r: rune(value), present: true}, false, nil
	case 'u':
		l.advance(st)
		value, err := l.readUnicodeEscapeValue(st, startPos)
		if err != nil {
			if tolerant {
				return escapeResult{}, true, nil
			}
			return escapeResult{}, false, err
		}
		return escapeResult{r: rune(value), present: true}, false, nil
	case '0':
		if nx, ok2 := l.at(st, 1); ok2 && nx >= '0' && nx <= '9' {
			return l.readLegacyOctalEscape(st, startPos, tolerant)
		}
		l.advance(st)
		return escapeResult{r: 0, present: true}, false, nil
	case '1', '2', '3', '4', '5', '6', '7':
		return l.readLegacyOctalEscape(st, startPos, tolerant)
	case '8', '9':
		// NonOctalDecimalEscapeSequence: legal as a literal digit in
		// non-strict code (and always invalid inside a template, which
		// forbids every octal-family escape outright), a syntax error in
		// strict-mode string literals.
		if tolerant {
			l.advance(st)
			return escapeResult{}, true, nil
		}
		if l.strictMode {
			return escapeResult{}, false, l.errAt(errors.StrictOctalEscape, startPos, "\\8 and \\9 are not allowed in strict mode")
		}
		l.advance(st)
		return escapeResult{r: c, present: true}, false, nil
	default:
		l.advance(st)
		return escapeResult{r: c, present: true}, false, nil
	}
}

// readLegacyOctalEscape decodes a "\1".."\377"-style legacy octal escape.
// Template literals forbid octal escapes unconditionally (ECMA-262 has no
// legacy-Annex-B carve-out for templates), so tolerant mode always reports
// cookFailed here regardless of strict mode; ordinary strings apply the
// usual strict-mode ban.
func (l *Lexer) readLegacyOctalEscape(st *State, startPos token.Position, tolerant bool) (escapeResult, bool, error) {
	if tolerant {
		l.consumeOctalEscapeDigits(st)
		return escapeResult{}, true, nil
	}
	if l.strictMode {
		return escapeResult{}, false, l.errAt(errors.StrictOctalEscape, startPos, "octal escape sequences are not allowed in strict mode")
	}

	value := l.consumeOctalEscapeDigits(st)
	return escapeResult{r: rune(value), present: true}, false, nil
}

// consumeOctalEscapeDigits consumes up to three octal digits (two if the
// first digit is "4".."7", since that would otherwise overflow a single
// byte) and returns their accumulated value.
func (l *Lexer) consumeOctalEscapeDigits(st *State) int {
	maxCount := 3
	if first, ok := l.at(st, 0); ok && first >= '4' && first <= '7' {
		maxCount = 2
	}
	value := 0
	for count := 0; count < maxCount; count++ {
		c, ok := l.at(st, 0)
		if !ok || c < '0' || c > '7' {
			break
		}
		value = value*8 + int(c-'0')
		l.advance(st)
	}
	return value
}
