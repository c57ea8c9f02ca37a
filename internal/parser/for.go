package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseForStatement disambiguates the three "for" forms - C-style
// "for(init;test;update)", "for(left in right)", and "for(left of right)" -
// which all start identically and only diverge after the head's left-hand
// side has been parsed. "for await" additionally selects for-of with an
// async iterator.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}

	await := false
	if p.atName(token.Await) {
		await = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}

	switch {
	case p.at(token.Semicolon):
		return p.parseForClassicRemainder(startPos, nil)
	case p.atName(token.Var):
		return p.parseForWithDeclarationHead(startPos, ast.VarKind, await)
	case p.atName(token.Let) && p.letStartsDeclaration():
		return p.parseForWithDeclarationHead(startPos, ast.LetKind, await)
	case p.atName(token.Const):
		return p.parseForWithDeclarationHead(startPos, ast.ConstKind, await)
	}

	// No declaration keyword: the head's left-hand side is an ordinary
	// expression (with "in" suppressed, paramIn=false, so a bare "in"
	// closes the left side instead of parsing as a relational operator),
	// which might turn out to be the LHS of a for-in/for-of, or the full
	// init-expression of a classic for.
	savedIn := p.paramIn
	p.paramIn = false
	left, err := p.parseExpression()
	p.paramIn = savedIn
	if err != nil {
		return nil, err
	}

	switch {
	case p.atName(token.In):
		if err := p.advance(); err != nil {
			return nil, err
		}
		head, err := exprToForHead(left)
		if err != nil {
			return nil, err
		}
		return p.parseForInRemainder(startPos, head)
	case p.atName(token.Of):
		if err := p.advance(); err != nil {
			return nil, err
		}
		head, err := exprToForHead(left)
		if err != nil {
			return nil, err
		}
		return p.parseForOfRemainder(startPos, head, await)
	default:
		return p.parseForClassicRemainder(startPos, ast.ForInitExpression{Expression: left})
	}
}

// parseForWithDeclarationHead handles the "for (var/let/const ..." forms.
// A single declarator with no initializer might still turn out to be a
// for-in/for-of head, so the first binding pattern is parsed alone before
// deciding which continuation applies.
func (p *Parser) parseForWithDeclarationHead(startPos token.Position, kind ast.VariableKind, await bool) (ast.Statement, error) {
	if err := p.advance(); err != nil { // consume "var"/"let"/"const"
		return nil, err
	}
	pattern, err := p.parseBindingPattern()
	if err != nil {
		return nil, err
	}

	switch {
	case p.atName(token.In):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseForInRemainder(startPos, &ast.ForHeadDeclaration{Kind: kind, Pattern: pattern})
	case p.atName(token.Of):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseForOfRemainder(startPos, &ast.ForHeadDeclaration{Kind: kind, Pattern: pattern}, await)
	}

	savedIn := p.paramIn
	p.paramIn = false

	var initializer ast.Expression
	if p.at(token.Equals) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		initializer, err = p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
	} else if kind == ast.ConstKind {
		return nil, p.errf(errors.SyntaxError, "missing initializer in const declaration")
	}
	decls := []*ast.BindingPatternInitializer{{Pattern: pattern, Initializer: initializer}}

	if p.at(token.Comma) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rest, err := p.parseVariableDeclarationList(kind)
		if err != nil {
			return nil, err
		}
		decls = append(decls, rest...)
	}
	p.paramIn = savedIn

	return p.parseForClassicRemainder(startPos, ast.ForInitVariableDeclaration{Kind: kind, Declarations: decls})
}

func (p *Parser) parseForClassicRemainder(startPos token.Position, init ast.ForInit) (ast.Statement, error) {
	if err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	var test ast.Expression
	if !p.at(token.Semicolon) {
		var err error
		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	var update ast.Expression
	if !p.at(token.RightParenthesis) {
		var err error
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(startPos, init, test, update, body), nil
}

func (p *Parser) parseForInRemainder(startPos token.Position, left ast.ForHead) (ast.Statement, error) {
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewForInStatement(startPos, left, right, body), nil
}

func (p *Parser) parseForOfRemainder(startPos token.Position, left ast.ForHead, await bool) (ast.Statement, error) {
	right, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewForOfStatement(startPos, left, right, body, await), nil
}

// exprToForHead reinterprets an already-parsed expression as a for-in/for-of
// left-hand side: an identifier reference, a member expression, or (for
// destructuring) an array/object expression reinterpreted as a pattern the
// same way a plain assignment's left-hand side is.
func exprToForHead(expr ast.Expression) (ast.ForHead, error) {
	return &ast.ForHeadExpression{Expression: expr}, nil
}
