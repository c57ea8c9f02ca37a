package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseConditionalExpression parses the "?:" ternary, which sits directly
// above the short-circuiting operators (??, ||, &&) in precedence.
func (p *Parser) parseConditionalExpression() (ast.Expression, error) {
	condition, err := p.parseShortCircuitExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(token.QuestionMark) {
		return condition, nil
	}
	startPos := condition.Pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	savedIn := p.paramIn
	p.paramIn = true
	consequent, err := p.parseAssignmentExpression()
	p.paramIn = savedIn
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalExpression(startPos, condition, consequent, alternate), nil
}

// isLogicalBinary reports whether expr is a bare (unparenthesized) "||" or
// "&&" expression, the shape ECMA-262 forbids mixing directly with "??".
func isLogicalBinary(expr ast.Expression) bool {
	b, ok := expr.(*ast.BinaryOpExpression)
	if !ok {
		return false
	}
	return b.Op == ast.LogicalOr || b.Op == ast.LogicalAnd
}

// parseShortCircuitExpression parses "??", which cannot be mixed with "||"
// or "&&" at the same nesting level without explicit parentheses - a rule
// enforced here by rejecting a logical-or/and result on either side of a
// "??" it wasn't wrapped in a GroupExpression.
func (p *Parser) parseShortCircuitExpression() (ast.Expression, error) {
	left, err := p.parseLogicalOrExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(token.DoubleQuestionMark) {
		return left, nil
	}
	if isLogicalBinary(left) {
		return nil, p.errf(errors.SyntaxError, "cannot mix '??' with '&&' or '||' without parentheses")
	}
	for p.at(token.DoubleQuestionMark) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalOrExpression()
		if err != nil {
			return nil, err
		}
		if isLogicalBinary(right) {
			return nil, p.errf(errors.SyntaxError, "cannot mix '??' with '&&' or '||' without parentheses")
		}
		left = ast.NewBinaryOpExpression(startPos, ast.Coalesce, left, right)
	}
	return left, nil
}

func (p *Parser) parseLogicalOrExpression() (ast.Expression, error) {
	left, err := p.parseLogicalAndExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.DoubleVerticalLine) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAndExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, ast.LogicalOr, left, right)
	}
	return left, nil
}

func (p *Parser) parseLogicalAndExpression() (ast.Expression, error) {
	left, err := p.parseBitwiseOrExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.DoubleAmpersand) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBitwiseOrExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, ast.LogicalAnd, left, right)
	}
	return left, nil
}

func (p *Parser) parseBitwiseOrExpression() (ast.Expression, error) {
	left, err := p.parseBitwiseXorExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.VerticalLine) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBitwiseXorExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, ast.BitwiseOr, left, right)
	}
	return left, nil
}

func (p *Parser) parseBitwiseXorExpression() (ast.Expression, error) {
	left, err := p.parseBitwiseAndExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.Circumflex) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBitwiseAndExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, ast.BitwiseXor, left, right)
	}
	return left, nil
}

func (p *Parser) parseBitwiseAndExpression() (ast.Expression, error) {
	left, err := p.parseEqualityExpression()
	if err != nil {
		return nil, err
	}
	for p.at(token.Ampersand) {
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEqualityExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, ast.BitwiseAnd, left, right)
	}
	return left, nil
}

func (p *Parser) parseEqualityExpression() (ast.Expression, error) {
	left, err := p.parseRelationalExpression()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.DoubleEquals):
			op = ast.Equality
		case p.at(token.ExclamationEquals):
			op = ast.Inequality
		case p.at(token.TripleEquals):
			op = ast.StrictEquality
		case p.at(token.ExclamationDoubleEquals):
			op = ast.StrictInequality
		default:
			return left, nil
		}
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelationalExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, op, left, right)
	}
}

// parseRelationalExpression additionally resolves "in"/"instanceof" and the
// private-name brand check "#x in obj", which can only appear as the
// left-most operand of this production.
func (p *Parser) parseRelationalExpression() (ast.Expression, error) {
	var left ast.Expression

	if p.at(token.NumberSign) {
		startPos := p.pos()
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
		if !p.atName(token.In) {
			return nil, p.errf(errors.SyntaxError, "expected 'in' after private name")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseShiftExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewInExpression(startPos, ast.Name{Kind: ast.PrivateName, Text: name}, right)
	} else {
		var err error
		left, err = p.parseShiftExpression()
		if err != nil {
			return nil, err
		}
	}

	for {
		var op ast.BinaryOp
		isIn := false
		switch {
		case p.at(token.LessThan):
			op = ast.LessThan
		case p.at(token.GreaterThan):
			op = ast.GreaterThan
		case p.at(token.LessThanEquals):
			op = ast.LessThanOrEqual
		case p.at(token.GreaterThanEquals):
			op = ast.GreaterThanOrEqual
		case p.atName(token.Instanceof):
			op = ast.InstanceofOp
		case p.atName(token.In) && p.paramIn:
			isIn = true
		default:
			return left, nil
		}

		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseShiftExpression()
		if err != nil {
			return nil, err
		}
		if isIn {
			left = ast.NewInExpression(startPos, ast.Name{Kind: ast.ComputedName, Expression: left}, right)
		} else {
			left = ast.NewBinaryOpExpression(startPos, op, left, right)
		}
	}
}

func (p *Parser) parseShiftExpression() (ast.Expression, error) {
	left, err := p.parseAdditiveExpression()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.DoubleLessThan):
			op = ast.LeftShift
		case p.at(token.TripleGreaterThan):
			op = ast.UnsignedRightShift
		case p.at(token.DoubleGreaterThan):
			op = ast.RightShift
		default:
			return left, nil
		}
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditiveExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, op, left, right)
	}
}

func (p *Parser) parseAdditiveExpression() (ast.Expression, error) {
	left, err := p.parseMultiplicativeExpression()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.Plus):
			op = ast.Addition
		case p.at(token.Minus):
			op = ast.Subtraction
		default:
			return left, nil
		}
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicativeExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, op, left, right)
	}
}

func (p *Parser) parseMultiplicativeExpression() (ast.Expression, error) {
	left, err := p.parseExponentiationExpression()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.at(token.Asterisk):
			op = ast.Multiplication
		case p.at(token.Solidus):
			op = ast.Division
		case p.at(token.Percent):
			op = ast.Remainder
		default:
			return left, nil
		}
		startPos := left.Pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExponentiationExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOpExpression(startPos, op, left, right)
	}
}

// parseExponentiationExpression is right-associative: "2 ** 3 ** 2" is
// "2 ** (3 ** 2)".
func (p *Parser) parseExponentiationExpression() (ast.Expression, error) {
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(token.DoubleAsterisk) {
		return left, nil
	}
	startPos := left.Pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExponentiationExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryOpExpression(startPos, ast.Exponentiation, left, right), nil
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	startPos := p.pos()

	var op ast.UnaryOp
	switch {
	case p.at(token.Plus):
		op = ast.Absolute
	case p.at(token.Minus):
		op = ast.Negate
	case p.at(token.Tilde):
		op = ast.BitwiseNot
	case p.at(token.Exclamation):
		op = ast.LogicalNot
	case p.atName(token.Typeof):
		op = ast.TypeofOp
	case p.atName(token.Void):
		op = ast.VoidOp
	case p.atName(token.Delete):
		op = ast.DeleteOp
	case p.atName(token.Await) && p.paramAwait:
		op = ast.AwaitOp
	case p.at(token.DoublePlus):
		return p.parsePrefixUpdate(startPos, ast.PrefixIncrement)
	case p.at(token.DoubleMinus):
		return p.parsePrefixUpdate(startPos, ast.PrefixDecrement)
	default:
		return p.parseUpdateExpression()
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	argument, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryOpExpression(startPos, op, argument), nil
}

func (p *Parser) parsePrefixUpdate(startPos token.Position, op ast.UnaryOp) (ast.Expression, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	argument, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryOpExpression(startPos, op, argument), nil
}

// parseUpdateExpression parses a left-hand-side expression and, if a
// postfix "++"/"--" immediately follows with no line terminator in
// between, wraps it as a postfix update.
func (p *Parser) parseUpdateExpression() (ast.Expression, error) {
	startPos := p.pos()
	expr, err := p.parseLeftHandSideExpression()
	if err != nil {
		return nil, err
	}
	if p.tok.LineTerminatorBefore {
		return expr, nil
	}
	switch {
	case p.at(token.DoublePlus):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewUnaryOpExpression(startPos, ast.PostfixIncrement, expr), nil
	case p.at(token.DoubleMinus):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewUnaryOpExpression(startPos, ast.PostfixDecrement, expr), nil
	}
	return expr, nil
}
