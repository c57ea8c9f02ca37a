package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseLeftHandSideExpression parses a "new"/member/call chain, including
// optional chaining ("?."). "new" is handled here rather than as a unary
// operator: once a "new" chain commits to a member access past its
// argument list, it continues as an ordinary call chain, so the two share
// this single loop.
func (p *Parser) parseLeftHandSideExpression() (ast.Expression, error) {
	var expr ast.Expression
	var err error
	if p.atName(token.New) {
		expr, err = p.parseNewExpression()
	} else {
		expr, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	return p.parseCallTail(expr)
}

func (p *Parser) parseNewExpression() (ast.Expression, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.at(token.FullStop) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != token.NameToken || p.tok.Text != "target" {
			return nil, p.errf(errors.SyntaxError, "expected 'target' after 'new.'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewNewTargetExpression(startPos), nil
	}

	var callee ast.Expression
	var err error
	if p.atName(token.New) {
		callee, err = p.parseNewExpression()
	} else {
		callee, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	callee, err = p.parseMemberTail(callee)
	if err != nil {
		return nil, err
	}

	var arguments []ast.Argument
	if p.at(token.LeftParenthesis) {
		arguments, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewNewExpression(startPos, callee, arguments), nil
}

// parseMemberTail consumes "."/"[...]" member accesses (no calls, no
// optional chaining) - the subset "new Foo.Bar" needs before its own
// optional argument list.
func (p *Parser) parseMemberTail(expr ast.Expression) (ast.Expression, error) {
	for {
		switch {
		case p.at(token.FullStop):
			var err error
			expr, err = p.parseDotMember(expr, false)
			if err != nil {
				return nil, err
			}
		case p.at(token.LeftSquareBracket):
			var err error
			expr, err = p.parseComputedMember(expr, false)
			if err != nil {
				return nil, err
			}
		default:
			return expr, nil
		}
	}
}

// parseCallTail extends expr with member accesses, call expressions, and
// optional-chaining links, including tagged template literals.
func (p *Parser) parseCallTail(expr ast.Expression) (ast.Expression, error) {
	for {
		switch {
		case p.at(token.FullStop):
			var err error
			expr, err = p.parseDotMember(expr, false)
			if err != nil {
				return nil, err
			}
		case p.at(token.LeftSquareBracket):
			var err error
			expr, err = p.parseComputedMember(expr, false)
			if err != nil {
				return nil, err
			}
		case p.at(token.LeftParenthesis):
			startPos := expr.Pos()
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = ast.NewCallExpression(startPos, expr, args, false)
		case p.at(token.QuestionMarkStop):
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			switch {
			case p.at(token.LeftParenthesis):
				startPos := expr.Pos()
				args, aerr := p.parseArguments()
				if aerr != nil {
					return nil, aerr
				}
				expr = ast.NewCallExpression(startPos, expr, args, true)
			case p.at(token.LeftSquareBracket):
				expr, err = p.parseComputedMember(expr, true)
			default:
				expr, err = p.parseDotMember(expr, true)
			}
			if err != nil {
				return nil, err
			}
		case p.at(token.NoSubstitutionTemplate) || p.at(token.TemplateHead):
			var err error
			expr, err = p.parseTaggedTemplate(expr, false)
			if err != nil {
				return nil, err
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseDotMember(object ast.Expression, optional bool) (ast.Expression, error) {
	startPos := object.Pos()
	if !optional { // an optional link's "?." was already consumed by the caller
		if err := p.advance(); err != nil { // consume "."
			return nil, err
		}
	}
	if p.at(token.NumberSign) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != token.NameToken {
			return nil, p.errf(errors.SyntaxError, "expected private name after '#'")
		}
		name := p.intern(p.tok.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewMemberExpression(startPos, object, optional, ast.Name{Kind: ast.PrivateName, Text: name}), nil
	}
	if p.tok.Kind != token.NameToken {
		return nil, p.errf(errors.SyntaxError, "expected property name after '.'")
	}
	name := p.intern(p.tok.Text)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewMemberExpression(startPos, object, optional, ast.Name{Kind: ast.StaticName, Text: name}), nil
}

func (p *Parser) parseComputedMember(object ast.Expression, optional bool) (ast.Expression, error) {
	startPos := object.Pos()
	if err := p.advance(); err != nil { // consume "["
		return nil, err
	}
	key, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightSquareBracket, "']'"); err != nil {
		return nil, err
	}
	return ast.NewMemberExpression(startPos, object, optional, ast.Name{Kind: ast.ComputedName, Expression: key}), nil
}

func (p *Parser) parseArguments() ([]ast.Argument, error) {
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}
	var args []ast.Argument
	for !p.at(token.RightParenthesis) {
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
		args = append(args, ast.Argument{Expression: expr, Spread: spread})
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}
