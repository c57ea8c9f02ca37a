package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseObjectExpression parses an object literal: key/value pairs,
// shorthand names, methods, get/set accessors, and spreads, in any
// combination and order.
func (p *Parser) parseObjectExpression() (ast.Expression, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil { // consume "{"
		return nil, err
	}
	var properties []ast.ObjectProperty
	for !p.at(token.RightCurlyBracket) {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		properties = append(properties, prop)
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RightCurlyBracket, "'}'"); err != nil {
		return nil, err
	}
	return ast.NewObjectExpression(startPos, properties), nil
}

func (p *Parser) parseObjectProperty() (ast.ObjectProperty, error) {
	startPos := p.pos()

	if p.at(token.TripleStop) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		argument, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewObjectSpread(startPos, argument), nil
	}

	async := false
	if p.atName(token.Async) && !p.peekAhead(true, func(t token.Token) bool {
		return t.Kind == token.Colon || t.Kind == token.LeftParenthesis || t.Kind == token.Comma || t.Kind == token.RightCurlyBracket
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
		return t.Kind == token.Colon || t.Kind == token.LeftParenthesis || t.Kind == token.Comma || t.Kind == token.RightCurlyBracket
	}) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parsePropertyName()
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
		return ast.NewObjectGetter(startPos, name, body), nil
	}

	if !async && !generator && p.atName(token.Set) && !p.peekAhead(false, func(t token.Token) bool {
		return t.Kind == token.Colon || t.Kind == token.LeftParenthesis || t.Kind == token.Comma || t.Kind == token.RightCurlyBracket
	}) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parsePropertyName()
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
		return ast.NewObjectSetter(startPos, name, *params.Bindings[0], body), nil
	}

	shorthandOK := p.isIdentifierReference()
	name, err := p.parsePropertyName()
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
		return ast.NewObjectMethod(startPos, async, generator, name, params, body), nil
	}

	if p.at(token.Colon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewObjectPropertyDefinition(startPos, name, value), nil
	}

	if name.Kind != ast.StaticName {
		return nil, p.errf(errors.SyntaxError, "expected ':' after computed property name")
	}
	if !shorthandOK {
		return nil, p.errf(errors.SyntaxError, "shorthand property must be an identifier reference")
	}
	return ast.NewObjectShorthand(startPos, name.Text), nil
}
