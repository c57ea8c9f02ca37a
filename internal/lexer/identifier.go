package lexer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
	"github.com/cwbudde/go-esparse/internal/unicodeid"
)

// readWordToken scans an identifier or keyword starting at st.Position,
// which may begin with either an ordinary IdentifierStart character or a
// "\u" escape. Escaped names are always force-classified Unclassified per
// token.Token's Escaped field: a keyword spelled with an escape is not the
// keyword.
func (l *Lexer) readWordToken(st *State, startPos token.Position) (token.Token, error) {
	var sb strings.Builder
	escaped := false
	firstChar := true

	for {
		c, ok := l.at(st, 0)
		if !ok {
			break
		}
		if c == '\\' {
			nx, ok2 := l.at(st, 1)
			if !ok2 || nx != 'u' {
				break
			}
			escaped = true
			l.advanceN(st, 2)
			value, err := l.readUnicodeEscapeValue(st, startPos)
			if err != nil {
				return token.Token{}, err
			}
			r := rune(value)
			valid := unicodeid.IsIDContinue(r)
			if firstChar {
				valid = unicodeid.IsIDStart(r)
			}
			if !valid {
				return token.Token{}, l.errAt(errors.InvalidUnicode, startPos, "escaped character is not a valid identifier character")
			}
			sb.WriteRune(r)
			firstChar = false
			continue
		}

		valid := unicodeid.IsIDContinue(c)
		if firstChar {
			valid = unicodeid.IsIDStart(c)
		}
		if !valid {
			break
		}
		sb.WriteRune(c)
		l.advance(st)
		firstChar = false
	}

	text := sb.String()
	if text == "" {
		c, _ := l.at(st, 0)
		return token.Token{}, l.errAt(errors.SyntaxError, startPos, fmt.Sprintf("unexpected character %q", c))
	}

	nameValue := token.Unclassified
	if !escaped {
		nameValue = token.LookupName(text)
	}
	return token.Token{Kind: token.NameToken, NameValue: nameValue, Text: text, Escaped: escaped}, nil
}
