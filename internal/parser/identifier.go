package parser

import (
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// isIdentifierReference reports whether the current token can stand for an
// identifier reference in the current grammar parameterization:
// "yield"/"await" are keywords (not identifiers) exactly when paramYield/
// paramAwait is set, and a reserved word escaped with "\u" still counts as
// an ordinary identifier (token.Token.Escaped forces that at the lexer
// level already).
func (p *Parser) isIdentifierReference() bool {
	if p.tok.Kind != token.NameToken {
		return false
	}
	if p.tok.Escaped {
		return true
	}
	switch p.tok.NameValue {
	case token.Unclassified:
		return true
	case token.Yield:
		return !p.paramYield
	case token.Await:
		return !p.paramAwait
	case token.Async, token.Let, token.Static, token.Get, token.Set, token.Of:
		// Contextual keywords remain valid identifiers outside the
		// constructs that give them special meaning.
		return true
	default:
		return false
	}
}

// parseIdentifierReference consumes an identifier reference and returns its
// interned spelling.
func (p *Parser) parseIdentifierReference() (string, error) {
	if !p.isIdentifierReference() {
		return "", p.errf(errors.SyntaxError, "expected identifier")
	}
	if !p.tok.Escaped && token.IsReservedWord(p.tok.Text, p.strictMode) {
		return "", p.errf(errors.SyntaxError, "%q is a reserved word", p.tok.Text)
	}
	name := p.intern(p.tok.Text)
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseBindingIdentifier consumes a binding identifier - the target of a
// declaration, parameter, or catch clause - which follows the same rules
// as an identifier reference.
func (p *Parser) parseBindingIdentifier() (string, error) {
	return p.parseIdentifierReference()
}

// parseLabelIdentifier consumes a label name, following the same rules as
// an identifier reference.
func (p *Parser) parseLabelIdentifier() (string, error) {
	return p.parseIdentifierReference()
}
