package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseTemplateLiteral parses an untagged template: every segment's Cooked
// value must be present, since an untagged template has no Raw fallback
// for an invalid escape sequence.
func (p *Parser) parseTemplateLiteral() (ast.Expression, error) {
	startPos := p.pos()
	strings, substitutions, err := p.parseTemplateSegments()
	if err != nil {
		return nil, err
	}
	return ast.NewTemplateLiteral(startPos, strings, substitutions), nil
}

// parseTemplateSegments walks the TemplateHead/Middle/Tail chain, parsing
// each "${...}" substitution as a full expression, and requires every
// segment's Cooked value to be present (the untagged-template rule).
func (p *Parser) parseTemplateSegments() ([]string, []ast.Expression, error) {
	var strs []string
	var subs []ast.Expression

	cooked, err := p.cookedTemplateSegment()
	if err != nil {
		return nil, nil, err
	}
	strs = append(strs, cooked)
	wasHead := p.tok.Kind == token.TemplateHead
	if err := p.advance(); err != nil {
		return nil, nil, err
	}

	for wasHead {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		subs = append(subs, expr)

		// The lexer scans the "}" closing a substitution as the
		// TemplateMiddle/TemplateTail token itself, so it is current here.
		if !p.at(token.TemplateMiddle) && !p.at(token.TemplateTail) {
			return nil, nil, p.errf(errors.SyntaxError, "expected '}' to close template substitution")
		}

		cooked, err = p.cookedTemplateSegment()
		if err != nil {
			return nil, nil, err
		}
		strs = append(strs, cooked)
		wasHead = p.tok.Kind == token.TemplateMiddle
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
	}

	return strs, subs, nil
}

func (p *Parser) cookedTemplateSegment() (string, error) {
	switch p.tok.Kind {
	case token.NoSubstitutionTemplate, token.TemplateHead, token.TemplateMiddle, token.TemplateTail:
	default:
		return "", p.errf(errors.SyntaxError, "expected template literal segment")
	}
	if p.tok.Cooked == nil {
		return "", p.errf(errors.InvalidTemplateString, "invalid escape sequence in template literal")
	}
	return *p.tok.Cooked, nil
}

// parseTaggedTemplate parses a tag immediately followed by a template
// literal. Unlike an untagged template, a missing Cooked value is legal
// here: the tag function receives nil for that segment and Raw always
// carries the verbatim source text.
func (p *Parser) parseTaggedTemplate(tag ast.Expression, optional bool) (ast.Expression, error) {
	startPos := tag.Pos()
	var raws []string
	var cookeds []*string
	var subs []ast.Expression

	raws = append(raws, p.tok.Raw)
	cookeds = append(cookeds, p.tok.Cooked)
	wasHead := p.tok.Kind == token.TemplateHead
	if err := p.advance(); err != nil {
		return nil, err
	}

	for wasHead {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		subs = append(subs, expr)

		if !p.at(token.TemplateMiddle) && !p.at(token.TemplateTail) {
			return nil, p.errf(errors.SyntaxError, "expected '}' to close template substitution")
		}

		raws = append(raws, p.tok.Raw)
		cookeds = append(cookeds, p.tok.Cooked)
		wasHead = p.tok.Kind == token.TemplateMiddle
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return ast.NewTaggedTemplateLiteral(startPos, tag, optional, raws, cookeds, subs), nil
}
