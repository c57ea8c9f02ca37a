package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/token"
)

// tryParseArrowFunction attempts the three shapes an arrow function can
// start with - a bare identifier, "async" followed by either a bare
// identifier or a parenthesized list, and a parenthesized list on its own -
// each requiring a "=>" lookahead (or, for the parenthesized forms, a
// tentative parse of the whole parameter list) to confirm. Any shape that
// doesn't pan out restores the snapshot it started from and returns
// ok=false so the caller falls through to ordinary expression parsing.
func (p *Parser) tryParseArrowFunction() (ast.Expression, bool, error) {
	startPos := p.pos()

	if p.isIdentifierReference() {
		if p.peekAhead(true, func(t token.Token) bool { return t.Kind == token.FatArrow }) {
			name, err := p.parseBindingIdentifier()
			if err != nil {
				return nil, false, err
			}
			if err := p.expect(token.FatArrow, "'=>'"); err != nil {
				return nil, false, err
			}
			params := &ast.FormalParameters{
				Bindings: []*ast.BindingPatternInitializer{{Pattern: ast.NewIdentifierBindingPattern(startPos, name)}},
			}
			body, err := p.parseArrowBody(false)
			if err != nil {
				return nil, false, err
			}
			return ast.NewArrowFunctionDefinition(startPos, false, params, body), true, nil
		}
		if !p.atName(token.Async) {
			return nil, false, nil
		}
	}

	if p.atName(token.Async) {
		snap := p.snapshot()
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		if !p.tok.LineTerminatorBefore {
			if p.isIdentifierReference() && p.peekAhead(true, func(t token.Token) bool { return t.Kind == token.FatArrow }) {
				name, err := p.parseBindingIdentifier()
				if err != nil {
					return nil, false, err
				}
				if err := p.expect(token.FatArrow, "'=>'"); err != nil {
					return nil, false, err
				}
				params := &ast.FormalParameters{
					Bindings: []*ast.BindingPatternInitializer{{Pattern: ast.NewIdentifierBindingPattern(startPos, name)}},
				}
				body, err := p.parseArrowBody(true)
				if err != nil {
					return nil, false, err
				}
				return ast.NewArrowFunctionDefinition(startPos, true, params, body), true, nil
			}
			if p.at(token.LeftParenthesis) {
				if arrow, ok, err := p.tryParseParenArrow(startPos, true); err != nil {
					return nil, false, err
				} else if ok {
					return arrow, true, nil
				}
			}
		}
		p.restore(snap)
		return nil, false, nil
	}

	if p.at(token.LeftParenthesis) {
		return p.tryParseParenArrow(startPos, false)
	}

	return nil, false, nil
}

// tryParseParenArrow tentatively parses a parenthesized parameter list and
// commits only if "=>" immediately follows on the same line; any failure,
// parse error included, restores the pre-attempt snapshot so the caller can
// reparse the same tokens as a parenthesized expression instead.
func (p *Parser) tryParseParenArrow(startPos token.Position, async bool) (ast.Expression, bool, error) {
	snap := p.snapshot()
	params, err := p.parseFormalParameters()
	if err == nil && p.at(token.FatArrow) && !p.tok.LineTerminatorBefore {
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		body, err := p.parseArrowBody(async)
		if err != nil {
			return nil, false, err
		}
		return ast.NewArrowFunctionDefinition(startPos, async, params, body), true, nil
	}
	p.restore(snap)
	return nil, false, nil
}

// parseArrowBody parses either a block body or a concise body, normalizing
// the concise form ("x => x+1") into a single implicit ReturnStatement so
// every ArrowFunctionDefinition.Body is a plain statement list regardless
// of which source form produced it.
func (p *Parser) parseArrowBody(async bool) ([]ast.Statement, error) {
	savedAwait := p.paramAwait
	savedYield := p.paramYield
	p.paramAwait = async
	p.paramYield = false
	defer func() {
		p.paramAwait = savedAwait
		p.paramYield = savedYield
	}()

	if p.at(token.LeftCurlyBracket) {
		block, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		return block.Body, nil
	}
	startPos := p.pos()
	savedIn := p.paramIn
	p.paramIn = true
	expr, err := p.parseAssignmentExpression()
	p.paramIn = savedIn
	if err != nil {
		return nil, err
	}
	return []ast.Statement{ast.NewReturnStatement(startPos, expr)}, nil
}

// parseFormalParameters parses a parenthesized parameter list: zero or
// more bindings, each with an optional default, followed by an optional
// rest parameter that must be last.
func (p *Parser) parseFormalParameters() (*ast.FormalParameters, error) {
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	params := &ast.FormalParameters{}
	for !p.at(token.RightParenthesis) {
		if p.at(token.TripleStop) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			rest, err := p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
			params.Rest = rest
			break
		}
		pattern, err := p.parseBindingPattern()
		if err != nil {
			return nil, err
		}
		var initializer ast.Expression
		if p.at(token.Equals) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			initializer, err = p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
		}
		params.Bindings = append(params.Bindings, &ast.BindingPatternInitializer{Pattern: pattern, Initializer: initializer})
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
	return params, nil
}

// parseFunctionBody parses an ordinary "{ ... }" function body.
func (p *Parser) parseFunctionBody() ([]ast.Statement, error) {
	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return block.Body, nil
}

// parseFunctionDefinition parses a function declaration or expression
// starting at "function", the caller having already consumed a leading
// "async" if present.
func (p *Parser) parseFunctionDefinition(async bool) (*ast.FunctionDefinition, error) {
	startPos := p.pos()
	if err := p.expectName(token.Function, "'function'"); err != nil {
		return nil, err
	}
	generator := false
	if p.at(token.Asterisk) {
		generator = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	var identifier *string
	if p.isIdentifierReference() {
		name, err := p.parseBindingIdentifier()
		if err != nil {
			return nil, err
		}
		identifier = &name
	}

	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}

	savedYield, savedAwait := p.paramYield, p.paramAwait
	p.paramYield = generator
	p.paramAwait = async
	body, err := p.parseFunctionBody()
	p.paramYield, p.paramAwait = savedYield, savedAwait
	if err != nil {
		return nil, err
	}

	return ast.NewFunctionDefinition(startPos, identifier, async, generator, params, body), nil
}

func (p *Parser) parseFunctionExpression(async bool) (ast.Expression, error) {
	def, err := p.parseFunctionDefinition(async)
	if err != nil {
		return nil, err
	}
	return def, nil
}
