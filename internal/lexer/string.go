package lexer

import (
	"strings"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// readStringLiteral scans a single- or double-quoted string literal,
// cooking escape sequences as it goes. Unlike a template body, a plain
// string literal is never ambiguous between tagged and untagged use, so
// every escape failure here is a hard error.
func (l *Lexer) readStringLiteral(st *State, startPos token.Position) (token.Token, error) {
	quote, _ := l.at(st, 0)
	l.advance(st)

	var sb strings.Builder
	for {
		c, ok := l.at(st, 0)
		if !ok {
			return token.Token{}, l.errAt(errors.SyntaxError, startPos, "unterminated string literal")
		}
		if c == quote {
			l.advance(st)
			return token.Token{Kind: token.StringLiteral, StringValue: sb.String()}, nil
		}
		if c == '\n' || c == '\r' {
			return token.Token{}, l.errAt(errors.SyntaxError, startPos, "unterminated string literal")
		}
		if c == '\\' {
			res, _, err := l.readEscapeSequence(st, false)
			if err != nil {
				return token.Token{}, err
			}
			if res.present {
				sb.WriteRune(res.r)
			}
			continue
		}
		sb.WriteRune(c)
		l.advance(st)
	}
}

// readTemplateStart consumes the opening backtick and scans the template's
// first segment.
func (l *Lexer) readTemplateStart(st *State, startPos token.Position) (token.Token, error) {
	l.advance(st)
	return l.readTemplateCharacters(st, startPos, true)
}

// readTemplateCharacters scans template text up to the next "${"
// substitution start or closing backtick. head is true for the segment
// following the opening backtick (producing NoSubstitutionTemplate or
// TemplateHead); false for a segment resuming after a "}" that closed a
// substitution (producing TemplateMiddle or TemplateTail).
//
// Raw always reflects the literal source text (escape sequences included
// verbatim); Cooked is the escape-processed value, or nil once any escape
// in this segment failed to decode - the parser rejects a nil Cooked on an
// untagged template and falls back to Raw for a tagged one.
func (l *Lexer) readTemplateCharacters(st *State, startPos token.Position, head bool) (token.Token, error) {
	var raw strings.Builder
	var cooked strings.Builder
	cookedOK := true

	finish := func(tailKind, headKind token.Kind) token.Token {
		kind := tailKind
		if head {
			kind = headKind
		}
		tok := token.Token{Kind: kind, Raw: raw.String()}
		if cookedOK {
			s := cooked.String()
			tok.Cooked = &s
		}
		return tok
	}

	for {
		c, ok := l.at(st, 0)
		if !ok {
			return token.Token{}, l.errAt(errors.InvalidTemplateString, startPos, "unterminated template literal")
		}

		switch {
		case c == '`':
			l.advance(st)
			return finish(token.TemplateTail, token.NoSubstitutionTemplate), nil
		case c == '$' && peekIs(l, st, 1, '{'):
			l.advanceN(st, 2)
			st.templateDepths = append(st.templateDepths, st.braceDepth)
			return finish(token.TemplateMiddle, token.TemplateHead), nil
		case c == '\\':
			before := st.Position
			res, cookFailed, err := l.readEscapeSequence(st, true)
			raw.WriteString(string(l.source[before:st.Position]))
			if err != nil {
				return token.Token{}, err
			}
			if cookFailed {
				cookedOK = false
				continue
			}
			if res.present {
				cooked.WriteRune(res.r)
			}
		case c == '\r':
			l.advance(st)
			if nx, ok2 := l.at(st, 0); ok2 && nx == '\n' {
				l.advance(st)
			}
			raw.WriteByte('\n')
			cooked.WriteByte('\n')
		default:
			raw.WriteRune(c)
			cooked.WriteRune(c)
			l.advance(st)
		}
	}
}
