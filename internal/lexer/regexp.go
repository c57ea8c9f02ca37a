package lexer

import (
	"strings"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
	"github.com/cwbudde/go-esparse/internal/unicodeid"
)

// readRegExpLiteral scans "/pattern/flags" once Next has already decided
// (via st.divisionContext) that a leading "/" opens a regular expression
// rather than a division operator. The pattern body is carried as raw
// source text - validating it against the regular-expression grammar is
// out of scope for a source parser, so this only needs to find where the
// literal ends: a "[...]" character class can hide an unescaped "/" that
// would otherwise look like the closing delimiter.
func (l *Lexer) readRegExpLiteral(st *State, startPos token.Position) (token.Token, error) {
	l.advance(st) // consume leading "/"

	var body strings.Builder
	inClass := false

readLoop:
	for {
		c, ok := l.at(st, 0)
		if !ok || isLineTerminator(c) {
			return token.Token{}, l.errAt(errors.SyntaxError, startPos, "unterminated regular expression literal")
		}
		switch {
		case c == '\\':
			body.WriteRune(c)
			l.advance(st)
			nc, ok2 := l.at(st, 0)
			if !ok2 || isLineTerminator(nc) {
				return token.Token{}, l.errAt(errors.SyntaxError, startPos, "unterminated regular expression literal")
			}
			body.WriteRune(nc)
			l.advance(st)
		case c == '[':
			inClass = true
			body.WriteRune(c)
			l.advance(st)
		case c == ']':
			inClass = false
			body.WriteRune(c)
			l.advance(st)
		case c == '/' && !inClass:
			l.advance(st)
			break readLoop
		default:
			body.WriteRune(c)
			l.advance(st)
		}
	}

	var flags strings.Builder
	for {
		c, ok := l.at(st, 0)
		if !ok || !unicodeid.IsIDContinue(c) {
			break
		}
		flags.WriteRune(c)
		l.advance(st)
	}

	return token.Token{Kind: token.RegExpLiteral, RegExpBody: body.String(), RegExpFlags: flags.String()}, nil
}
