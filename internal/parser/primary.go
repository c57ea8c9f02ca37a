package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	startPos := p.pos()

	switch {
	case p.atName(token.This):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewThisExpression(startPos), nil
	case p.atName(token.Super):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewSuperExpression(startPos), nil
	case p.atName(token.Null):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewNullLiteral(startPos), nil
	case p.atName(token.True):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBooleanLiteral(startPos, true), nil
	case p.atName(token.False):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBooleanLiteral(startPos, false), nil
	case p.at(token.NumberLiteral):
		value := p.tok.NumberValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewNumberLiteral(startPos, value), nil
	case p.at(token.BigIntLiteral):
		value := p.tok.BigIntValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBigIntLiteral(startPos, value), nil
	case p.at(token.StringLiteral):
		value := p.tok.StringValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringLiteral(startPos, value), nil
	case p.at(token.RegExpLiteral):
		body, flags := p.tok.RegExpBody, p.tok.RegExpFlags
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewRegExpLiteral(startPos, body, flags), nil
	case p.at(token.NoSubstitutionTemplate) || p.at(token.TemplateHead):
		return p.parseTemplateLiteral()
	case p.at(token.LeftSquareBracket):
		return p.parseArrayExpression()
	case p.at(token.LeftCurlyBracket):
		return p.parseObjectExpression()
	case p.at(token.LeftParenthesis):
		return p.parseGroupExpression()
	case p.atName(token.Function):
		return p.parseFunctionExpression(false)
	case p.atName(token.Class):
		def, err := p.parseClassDefinition()
		if err != nil {
			return nil, err
		}
		return def, nil
	case p.atName(token.Import):
		return p.parseImportExpressionOrMeta(startPos)
	case p.atName(token.Async) && p.peekAhead(true, func(t token.Token) bool {
		return t.Kind == token.NameToken && t.NameValue == token.Function
	}):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseFunctionExpression(true)
	}

	if p.isIdentifierReference() {
		name, err := p.parseIdentifierReference()
		if err != nil {
			return nil, err
		}
		return ast.NewIdentifier(startPos, name), nil
	}

	return nil, p.errf(errors.SyntaxError, "unexpected token")
}

func (p *Parser) parseGroupExpression() (ast.Expression, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	savedIn := p.paramIn
	p.paramIn = true
	expr, err := p.parseExpression()
	p.paramIn = savedIn
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	return ast.NewGroupExpression(startPos, expr), nil
}

// parseImportExpressionOrMeta resolves "import(...)" (the dynamic import
// expression) against "import.meta" - the only two productions where
// "import" appears outside a module's import declaration.
func (p *Parser) parseImportExpressionOrMeta(startPos token.Position) (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume "import"
		return nil, err
	}
	if p.at(token.FullStop) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != token.NameToken || p.tok.Text != "meta" {
			return nil, p.errf(errors.SyntaxError, "expected 'meta' after 'import.'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewImportMetaExpression(startPos), nil
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	argument, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if p.at(token.Comma) { // trailing comma in the single-argument call form
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	return ast.NewImportExpression(startPos, argument), nil
}

func (p *Parser) parseArrayExpression() (ast.Expression, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil { // consume "["
		return nil, err
	}
	var elements []ast.ArrayElement
	for !p.at(token.RightSquareBracket) {
		if p.at(token.Comma) {
			elements = append(elements, ast.ArrayElement{Elision: true})
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		spread := false
		if p.at(token.TripleStop) {
			spread = true
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		expr, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, ast.ArrayElement{Spread: spread, Expression: expr})
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightSquareBracket, "']'"); err != nil {
		return nil, err
	}
	return ast.NewArrayExpression(startPos, elements), nil
}
