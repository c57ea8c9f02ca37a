package lexer

import (
	"fmt"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

func tok1(kind token.Kind) (token.Token, error) {
	return token.Token{Kind: kind}, nil
}

// readPunctuator scans the longest-matching punctuator starting at
// st.Position. Next resolves "}" and "/" against goal-mode state before
// dispatching: "}" goes through readRightCurlyOrTemplateContinuation, and
// "/" reaches here only in division context (otherwise it starts a
// regular-expression literal).
func (l *Lexer) readPunctuator(st *State, startPos token.Position) (token.Token, error) {
	c, _ := l.at(st, 0)
	switch c {
	case '(':
		l.advance(st)
		return tok1(token.LeftParenthesis)
	case ')':
		l.advance(st)
		return tok1(token.RightParenthesis)
	case '[':
		l.advance(st)
		return tok1(token.LeftSquareBracket)
	case ']':
		l.advance(st)
		return tok1(token.RightSquareBracket)
	case '{':
		st.braceDepth++
		l.advance(st)
		return tok1(token.LeftCurlyBracket)
	case ';':
		l.advance(st)
		return tok1(token.Semicolon)
	case ',':
		l.advance(st)
		return tok1(token.Comma)
	case ':':
		l.advance(st)
		return tok1(token.Colon)
	case '#':
		l.advance(st)
		return tok1(token.NumberSign)
	case '~':
		l.advance(st)
		return tok1(token.Tilde)

	case '.':
		if peekIs(l, st, 1, '.') && peekIs(l, st, 2, '.') {
			l.advanceN(st, 3)
			return tok1(token.TripleStop)
		}
		l.advance(st)
		return tok1(token.FullStop)

	case '<':
		if peekIs(l, st, 1, '<') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleLessThanEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleLessThan)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.LessThanEquals)
		}
		l.advance(st)
		return tok1(token.LessThan)

	case '>':
		if peekIs(l, st, 1, '>') {
			if peekIs(l, st, 2, '>') {
				if peekIs(l, st, 3, '=') {
					l.advanceN(st, 4)
					return tok1(token.TripleGreaterThanEquals)
				}
				l.advanceN(st, 3)
				return tok1(token.TripleGreaterThan)
			}
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleGreaterThanEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleGreaterThan)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.GreaterThanEquals)
		}
		l.advance(st)
		return tok1(token.GreaterThan)

	case '=':
		if peekIs(l, st, 1, '=') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.TripleEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleEquals)
		}
		if peekIs(l, st, 1, '>') {
			l.advanceN(st, 2)
			return tok1(token.FatArrow)
		}
		l.advance(st)
		return tok1(token.Equals)

	case '!':
		if peekIs(l, st, 1, '=') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.ExclamationDoubleEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.ExclamationEquals)
		}
		l.advance(st)
		return tok1(token.Exclamation)

	case '+':
		if peekIs(l, st, 1, '+') {
			l.advanceN(st, 2)
			return tok1(token.DoublePlus)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.PlusEquals)
		}
		l.advance(st)
		return tok1(token.Plus)

	case '-':
		if peekIs(l, st, 1, '-') {
			l.advanceN(st, 2)
			return tok1(token.DoubleMinus)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.MinusEquals)
		}
		l.advance(st)
		return tok1(token.Minus)

	case '*':
		if peekIs(l, st, 1, '*') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleAsteriskEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleAsterisk)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.AsteriskEquals)
		}
		l.advance(st)
		return tok1(token.Asterisk)

	case '%':
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.PercentEquals)
		}
		l.advance(st)
		return tok1(token.Percent)

	case '/':
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.SolidusEquals)
		}
		l.advance(st)
		return tok1(token.Solidus)

	case '&':
		if peekIs(l, st, 1, '&') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleAmpersandEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleAmpersand)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.AmpersandEquals)
		}
		l.advance(st)
		return tok1(token.Ampersand)

	case '|':
		if peekIs(l, st, 1, '|') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleVerticalLineEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleVerticalLine)
		}
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.VerticalLineEquals)
		}
		l.advance(st)
		return tok1(token.VerticalLine)

	case '^':
		if peekIs(l, st, 1, '=') {
			l.advanceN(st, 2)
			return tok1(token.CircumflexEquals)
		}
		l.advance(st)
		return tok1(token.Circumflex)

	case '?':
		if peekIs(l, st, 1, '?') {
			if peekIs(l, st, 2, '=') {
				l.advanceN(st, 3)
				return tok1(token.DoubleQuestionMarkEquals)
			}
			l.advanceN(st, 2)
			return tok1(token.DoubleQuestionMark)
		}
		if peekIs(l, st, 1, '.') {
			// "?." followed by a digit is the conditional operator next to
			// a numeric member index cover ("a ? .5 : b"), not optional
			// chaining into a numeric property.
			if nx, ok2 := l.at(st, 2); !ok2 || nx < '0' || nx > '9' {
				l.advanceN(st, 2)
				return tok1(token.QuestionMarkStop)
			}
		}
		l.advance(st)
		return tok1(token.QuestionMark)
	}

	return token.Token{}, l.errAt(errors.SyntaxError, startPos, fmt.Sprintf("unexpected character %q", c))
}
