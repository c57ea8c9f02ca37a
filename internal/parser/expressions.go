package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseExpression parses a comma-separated expression list, producing a
// SequenceExpression when more than one element is present.
func (p *Parser) parseExpression() (ast.Expression, error) {
	startPos := p.pos()
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		return first, nil
	}
	exprs := []ast.Expression{first}
	for p.at(token.Comma) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return ast.NewSequenceExpression(startPos, exprs), nil
}

// parseAssignmentExpression is the parser's central disambiguation point:
// an arrow function, a conditional expression, a yield expression, and a
// plain or compound assignment all start the same way. Arrow functions are
// tried first (tryParseArrowFunction parses a tentative parameter list from
// a snapshot and restores it unless "=>" follows); everything else resolves
// by parsing a conditional expression and checking what token comes after
// it.
func (p *Parser) parseAssignmentExpression() (ast.Expression, error) {
	if p.atName(token.Yield) && p.paramYield {
		return p.parseYieldExpression()
	}

	if arrow, ok, err := p.tryParseArrowFunction(); err != nil {
		return nil, err
	} else if ok {
		return arrow, nil
	}

	left, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}

	op, ok := assignmentOperatorFor(p.tok.Kind)
	if !ok {
		return left, nil
	}
	startPos := left.Pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	// left is reinterpreted as the assignment target as-is: an
	// ArrayExpression/ObjectExpression standing as a destructuring pattern
	// is indistinguishable from an ordinary expression until this point,
	// the same deferred disambiguation every ECMAScript grammar uses.
	right, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignmentOpExpression(startPos, op, left, right), nil
}

func assignmentOperatorFor(kind token.Kind) (ast.AssignmentOp, bool) {
	switch kind {
	case token.Equals:
		return ast.Assignment, true
	case token.PlusEquals:
		return ast.AdditionAssign, true
	case token.MinusEquals:
		return ast.SubtractionAssign, true
	case token.AsteriskEquals:
		return ast.MultiplicationAssign, true
	case token.SolidusEquals:
		return ast.DivisionAssign, true
	case token.PercentEquals:
		return ast.RemainderAssign, true
	case token.DoubleAsteriskEquals:
		return ast.ExponentiationAssign, true
	case token.DoubleLessThanEquals:
		return ast.LeftShiftAssign, true
	case token.DoubleGreaterThanEquals:
		return ast.RightShiftAssign, true
	case token.TripleGreaterThanEquals:
		return ast.UnsignedRightShiftAssign, true
	case token.AmpersandEquals:
		return ast.BitwiseAndAssign, true
	case token.VerticalLineEquals:
		return ast.BitwiseOrAssign, true
	case token.CircumflexEquals:
		return ast.BitwiseXorAssign, true
	case token.DoubleAmpersandEquals:
		return ast.LogicalAndAssign, true
	case token.DoubleVerticalLineEquals:
		return ast.LogicalOrAssign, true
	case token.DoubleQuestionMarkEquals:
		return ast.CoalesceAssign, true
	}
	return 0, false
}

func (p *Parser) parseYieldExpression() (ast.Expression, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	delegate := false
	if p.at(token.Asterisk) {
		delegate = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	var argument ast.Expression
	if !p.tok.LineTerminatorBefore && canStartExpression(p.tok) {
		var err error
		argument, err = p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewYieldExpression(startPos, delegate, argument), nil
}

// canStartExpression is a conservative check used where the grammar allows
// an expression to be entirely absent ("yield;", "return;"): it only needs
// to rule out the tokens that definitely cannot begin one.
func canStartExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.Semicolon, token.RightParenthesis, token.RightCurlyBracket,
		token.RightSquareBracket, token.Comma, token.Colon, token.EndOfInput:
		return false
	}
	return true
}
