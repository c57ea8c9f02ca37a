package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseBindingPattern parses a single binding target: a plain identifier,
// or an array/object destructuring pattern.
func (p *Parser) parseBindingPattern() (ast.BindingPattern, error) {
	switch {
	case p.at(token.LeftSquareBracket):
		return p.parseArrayBindingPattern()
	case p.at(token.LeftCurlyBracket):
		return p.parseObjectBindingPattern()
	}
	name, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.NewIdentifierBindingPattern(p.tok.Pos, name), nil
}

func (p *Parser) parseArrayBindingPattern() (ast.BindingPattern, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil { // consume "["
		return nil, err
	}
	var elements []*ast.BindingPatternInitializer
	var rest ast.BindingPattern
	for !p.at(token.RightSquareBracket) {
		if p.at(token.Comma) {
			elements = append(elements, nil)
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.at(token.TripleStop) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			rest, err = p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
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
		elements = append(elements, &ast.BindingPatternInitializer{Pattern: pattern, Initializer: initializer})
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
	return ast.NewArrayBindingPattern(startPos, elements, rest), nil
}

func (p *Parser) parseObjectBindingPattern() (ast.BindingPattern, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil { // consume "{"
		return nil, err
	}
	var properties []*ast.ObjectBindingProperty
	var rest ast.BindingPattern
	for !p.at(token.RightCurlyBracket) {
		if p.at(token.TripleStop) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.parseBindingIdentifier()
			if err != nil {
				return nil, err
			}
			rest = ast.NewIdentifierBindingPattern(p.tok.Pos, name)
			break
		}

		shorthandOK := p.isIdentifierReference()
		name, err := p.parsePropertyName()
		if err != nil {
			return nil, err
		}

		var binding ast.BindingPattern
		if p.at(token.Colon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			binding, err = p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
		} else {
			if name.Kind != ast.StaticName || !shorthandOK {
				return nil, p.errf(errors.SyntaxError, "shorthand property must be a plain identifier")
			}
			binding = ast.NewIdentifierBindingPattern(startPos, name.Text)
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

		properties = append(properties, &ast.ObjectBindingProperty{
			Property: name,
			Binding:  ast.BindingPatternInitializer{Pattern: binding, Initializer: initializer},
		})

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
	return ast.NewObjectBindingPattern(startPos, properties, rest), nil
}
