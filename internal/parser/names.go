package parser

import (
	"strconv"

	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parsePropertyName parses the shared PropertyName grammar used by object
// literals, object/array binding patterns, and class elements: an
// identifier name, a string or numeric literal, or a computed
// "[expression]" key. A BigInt literal key is legal too (class fields and
// methods can be named by an arbitrarily large integer) and is rendered
// through its decimal string form, the same text a numeric key of that
// value would have.
func (p *Parser) parsePropertyName() (ast.Name, error) {
	switch {
	case p.at(token.LeftSquareBracket):
		if err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		savedIn := p.paramIn
		p.paramIn = true
		expr, err := p.parseAssignmentExpression()
		p.paramIn = savedIn
		if err != nil {
			return ast.Name{}, err
		}
		if err := p.expect(token.RightSquareBracket, "']'"); err != nil {
			return ast.Name{}, err
		}
		return ast.Name{Kind: ast.ComputedName, Expression: expr}, nil
	case p.at(token.StringLiteral):
		text := p.intern(p.tok.StringValue)
		if err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		return ast.Name{Kind: ast.StaticName, Text: text}, nil
	case p.at(token.NumberLiteral):
		text := p.intern(numberLiteralPropertyText(p.tok.NumberValue))
		if err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		return ast.Name{Kind: ast.StaticName, Text: text}, nil
	case p.at(token.BigIntLiteral):
		text := p.intern(p.tok.BigIntValue.DecimalString())
		if err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		return ast.Name{Kind: ast.StaticName, Text: text}, nil
	case p.tok.Kind == token.NameToken:
		text := p.intern(p.tok.Text)
		if err := p.advance(); err != nil {
			return ast.Name{}, err
		}
		return ast.Name{Kind: ast.StaticName, Text: text}, nil
	}
	return ast.Name{}, p.errf(errors.SyntaxError, "expected property name")
}

// parsePrivateName parses a class private member name, "#" followed
// immediately by an identifier with no intervening space.
func (p *Parser) parsePrivateName() (ast.Name, error) {
	if !p.at(token.NumberSign) {
		return ast.Name{}, p.errf(errors.SyntaxError, "expected '#'")
	}
	if err := p.advance(); err != nil {
		return ast.Name{}, err
	}
	if p.tok.Kind != token.NameToken {
		return ast.Name{}, p.errf(errors.SyntaxError, "expected private name after '#'")
	}
	text := p.intern(p.tok.Text)
	if err := p.advance(); err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Kind: ast.PrivateName, Text: text}, nil
}

// numberLiteralPropertyText renders a numeric property key the same way
// the language's own implicit ToString coercion would: the shortest
// decimal string that round-trips, with no exponent for ordinary integer
// indices.
func numberLiteralPropertyText(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
