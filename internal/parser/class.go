package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseClassDefinition parses a class declaration or expression body,
// starting at "class".
func (p *Parser) parseClassDefinition() (*ast.ClassDefinition, error) {
	startPos := p.pos()
	if err := p.expectName(token.Class, "'class'"); err != nil {
		return nil, err
	}

	var identifier *string
	if p.isIdentifierReference() && !p.atName(token.Extends) {
		name, err := p.parseBindingIdentifier()
		if err != nil {
			return nil, err
		}
		identifier = &name
	}

	var heritage ast.Expression
	if p.atName(token.Extends) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		heritage, err = p.parseLeftHandSideExpression()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.LeftCurlyBracket, "'{'"); err != nil {
		return nil, err
	}
	var body []ast.ClassElement
	for !p.at(token.RightCurlyBracket) {
		if p.at(token.Semicolon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		element, err := p.parseClassElement()
		if err != nil {
			return nil, err
		}
		body = append(body, element)
	}
	if err := p.expect(token.RightCurlyBracket, "'}'"); err != nil {
		return nil, err
	}

	return ast.NewClassDefinition(startPos, identifier, heritage, body), nil
}

// parseClassElement parses one member of a class body: a static block, a
// field, a method, or a get/set accessor, each optionally "static" and
// (for methods) "async" and/or a generator "*".
func (p *Parser) parseClassElement() (ast.ClassElement, error) {
	startPos := p.pos()

	static := false
	if p.atName(token.Static) && !p.peekAhead(false, func(t token.Token) bool {
		return t.Kind == token.LeftParenthesis || t.Kind == token.Equals || t.Kind == token.Semicolon
	}) {
		static = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		if static && p.at(token.LeftCurlyBracket) {
			savedYield, savedAwait := p.paramYield, p.paramAwait
			p.paramYield, p.paramAwait = false, false
			block, err := p.parseBlockStatement()
			p.paramYield, p.paramAwait = savedYield, savedAwait
			if err != nil {
				return nil, err
			}
			return ast.NewClassStaticBlock(startPos, block.Body), nil
		}
	}

	async := false
	if p.atName(token.Async) && !p.peekAhead(true, func(t token.Token) bool {
		return t.Kind == token.LeftParenthesis || t.Kind == token.Equals || t.Kind == token.Semicolon
	}) {
		async = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	generator := false
	if p.at(token.Asterisk) {
		generator = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if !async && !generator && p.atName(token.Get) && !p.peekAhead(false, func(t token.Token) bool {
		return t.Kind == token.LeftParenthesis || t.Kind == token.Equals || t.Kind == token.Semicolon
	}) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseClassElementName()
		if err != nil {
			return nil, err
		}
		params, err := p.parseFormalParameters()
		if err != nil {
			return nil, err
		}
		if len(params.Bindings) != 0 || params.Rest != nil {
			return nil, p.errf(errors.SyntaxError, "getter must have no parameters")
		}
		body, err := p.parseFunctionBody()
		if err != nil {
			return nil, err
		}
		return ast.NewClassGetter(startPos, name, static, body), nil
	}

	if !async && !generator && p.atName(token.Set) && !p.peekAhead(false, func(t token.Token) bool {
		return t.Kind == token.LeftParenthesis || t.Kind == token.Equals || t.Kind == token.Semicolon
	}) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseClassElementName()
		if err != nil {
			return nil, err
		}
		params, err := p.parseFormalParameters()
		if err != nil {
			return nil, err
		}
		if len(params.Bindings) != 1 || params.Rest != nil {
			return nil, p.errf(errors.SyntaxError, "setter must have exactly one parameter")
		}
		body, err := p.parseFunctionBody()
		if err != nil {
			return nil, err
		}
		return ast.NewClassSetter(startPos, name, static, *params.Bindings[0], body), nil
	}

	name, err := p.parseClassElementName()
	if err != nil {
		return nil, err
	}

	if p.at(token.LeftParenthesis) {
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
		return ast.NewClassMethod(startPos, name, async, generator, static, params, body), nil
	}

	var value ast.Expression
	if p.at(token.Equals) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err = p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewClassField(startPos, name, static, value), nil
}

// parseClassElementName parses a class element's key: the shared
// PropertyName grammar plus the private-name form ("#x").
func (p *Parser) parseClassElementName() (ast.Name, error) {
	if p.at(token.NumberSign) {
		return p.parsePrivateName()
	}
	return p.parsePropertyName()
}
