package parser

import (
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
)

// parseStatementListItem parses one element of a statement list: either a
// declaration (function, class, let, const) or an ordinary statement.
// ECMA-262 keeps these as separate productions because only declarations
// hoist; this parser does not model hoisting, so the two collapse into one
// dispatch.
func (p *Parser) parseStatementListItem() (ast.Statement, error) {
	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	startPos := p.pos()

	switch {
	case p.at(token.LeftCurlyBracket):
		return p.parseBlockStatement()
	case p.atName(token.Var):
		p.advance()
		return p.parseVariableStatement(startPos, ast.VarKind)
	case p.atName(token.Let) && p.letStartsDeclaration():
		p.advance()
		return p.parseVariableStatement(startPos, ast.LetKind)
	case p.atName(token.Const):
		p.advance()
		return p.parseVariableStatement(startPos, ast.ConstKind)
	case p.at(token.Semicolon):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewEmptyStatement(startPos), nil
	case p.atName(token.If):
		return p.parseIfStatement()
	case p.atName(token.Do):
		return p.parseDoWhileStatement()
	case p.atName(token.While):
		return p.parseWhileStatement()
	case p.atName(token.For):
		return p.parseForStatement()
	case p.atName(token.Switch):
		return p.parseSwitchStatement()
	case p.atName(token.Continue):
		return p.parseContinueOrBreak(startPos, true)
	case p.atName(token.Break):
		return p.parseContinueOrBreak(startPos, false)
	case p.atName(token.Return):
		return p.parseReturnStatement()
	case p.atName(token.With):
		return p.parseWithStatement()
	case p.atName(token.Throw):
		return p.parseThrowStatement()
	case p.atName(token.Try):
		return p.parseTryStatement()
	case p.atName(token.Debugger):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewDebuggerStatement(startPos), nil
	case p.atName(token.Function):
		def, err := p.parseFunctionDefinition(false)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclarationStatement{Definition: def}, nil
	case p.atName(token.Async) && p.peekAhead(true, func(t token.Token) bool {
		return t.Kind == token.NameToken && t.NameValue == token.Function
	}):
		if err := p.advance(); err != nil { // consume "async"
			return nil, err
		}
		def, err := p.parseFunctionDefinition(true)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclarationStatement{Definition: def}, nil
	case p.atName(token.Class):
		def, err := p.parseClassDefinition()
		if err != nil {
			return nil, err
		}
		return &ast.ClassDeclarationStatement{Definition: def}, nil
	}

	if p.tok.Kind == token.NameToken && p.tok.NameValue == token.Unclassified {
		if p.peekAhead(false, func(t token.Token) bool { return t.Kind == token.Colon }) {
			return p.parseLabelStatement(startPos)
		}
	}

	return p.parseExpressionStatement(startPos)
}

// letStartsDeclaration decides whether a "let" token begins a
// VariableStatement rather than standing for the (legal, if unusual)
// identifier "let" used as an expression: "let" is a declaration only when
// followed by an identifier, "[", or "{".
func (p *Parser) letStartsDeclaration() bool {
	return p.peekAhead(false, func(t token.Token) bool {
		if t.Kind == token.LeftSquareBracket || t.Kind == token.LeftCurlyBracket {
			return true
		}
		return t.Kind == token.NameToken
	})
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil { // consume "{"
		return nil, err
	}
	var body []ast.Statement
	for !p.at(token.RightCurlyBracket) && !p.at(token.EndOfInput) {
		stmt, err := p.parseStatementListItem()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if err := p.expect(token.RightCurlyBracket, "'}'"); err != nil {
		return nil, err
	}
	return ast.NewBlockStatement(startPos, body), nil
}

// parseVariableStatement parses the declarator list following a
// "var"/"let"/"const" keyword, which the caller has already consumed, and
// the closing ";" (or an automatically inserted one). The "for" head does
// not come through here; it parses its own declarators.
func (p *Parser) parseVariableStatement(startPos token.Position, kind ast.VariableKind) (*ast.VariableStatement, error) {
	decls, err := p.parseVariableDeclarationList(kind)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewVariableStatement(startPos, kind, decls), nil
}

func (p *Parser) parseVariableDeclarationList(kind ast.VariableKind) ([]*ast.BindingPatternInitializer, error) {
	var decls []*ast.BindingPatternInitializer
	for {
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
		} else if kind == ast.ConstKind {
			return nil, p.errf(errors.SyntaxError, "missing initializer in const declaration")
		} else if _, ok := pattern.(*ast.IdentifierBindingPattern); !ok {
			return nil, p.errf(errors.SyntaxError, "missing initializer in destructuring declaration")
		}
		decls = append(decls, &ast.BindingPatternInitializer{Pattern: pattern, Initializer: initializer})
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alternate ast.Statement
	if p.atName(token.Else) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(startPos, condition, consequent, alternate), nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectName(token.While, "'while'"); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	// A "do...while" statement is always terminated, whether or not a
	// semicolon follows, per ECMA-262's special-cased ASI rule for it.
	if p.at(token.Semicolon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return ast.NewDoWhileStatement(startPos, body, condition), nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
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
	return ast.NewWhileStatement(startPos, condition, body), nil
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	discriminant, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RightParenthesis, "')'"); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftCurlyBracket, "'{'"); err != nil {
		return nil, err
	}

	var cases []*ast.SwitchCase
	for !p.at(token.RightCurlyBracket) {
		var test ast.Expression
		if p.atName(token.Case) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			test, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		} else if p.atName(token.Default) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			return nil, p.errf(errors.SyntaxError, "expected 'case' or 'default'")
		}
		if err := p.expect(token.Colon, "':'"); err != nil {
			return nil, err
		}
		var body []ast.Statement
		for !p.at(token.RightCurlyBracket) && !p.atName(token.Case) && !p.atName(token.Default) {
			stmt, err := p.parseStatementListItem()
			if err != nil {
				return nil, err
			}
			body = append(body, stmt)
		}
		cases = append(cases, &ast.SwitchCase{Test: test, Body: body})
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	return ast.NewSwitchStatement(startPos, discriminant, cases), nil
}

func (p *Parser) parseContinueOrBreak(startPos token.Position, isContinue bool) (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var label *string
	if p.tok.Kind == token.NameToken && p.tok.NameValue == token.Unclassified && !p.tok.LineTerminatorBefore {
		name := p.intern(p.tok.Text)
		label = &name
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	if isContinue {
		return ast.NewContinueStatement(startPos, label), nil
	}
	return ast.NewBreakStatement(startPos, label), nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	var argument ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.RightCurlyBracket) && !p.at(token.EndOfInput) && !p.tok.LineTerminatorBefore {
		var err error
		argument, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(startPos, argument), nil
}

func (p *Parser) parseWithStatement() (ast.Statement, error) {
	startPos := p.pos()
	if p.strictMode {
		return nil, p.errf(errors.SyntaxError, "'with' statements are not allowed in strict mode")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LeftParenthesis, "'('"); err != nil {
		return nil, err
	}
	object, err := p.parseExpression()
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
	return ast.NewWithStatement(startPos, object, body), nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.LineTerminatorBefore {
		return nil, p.errf(errors.SyntaxError, "no line terminator allowed between 'throw' and its argument")
	}
	argument, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewThrowStatement(startPos, argument), nil
}

func (p *Parser) parseTryStatement() (ast.Statement, error) {
	startPos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	var handler *ast.CatchClause
	if p.atName(token.Catch) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var parameter ast.BindingPattern
		if p.at(token.LeftParenthesis) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			parameter, err = p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RightParenthesis, "')'"); err != nil {
				return nil, err
			}
		}
		catchBody, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		handler = &ast.CatchClause{Parameter: parameter, Body: catchBody.Body}
	}

	var finalizer []ast.Statement
	if p.atName(token.Finally) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		finallyBody, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		finalizer = finallyBody.Body
	}

	if handler == nil && finalizer == nil {
		return nil, p.errf(errors.SyntaxError, "missing catch or finally after try block")
	}
	return ast.NewTryStatement(startPos, body.Body, handler, finalizer), nil
}

func (p *Parser) parseLabelStatement(startPos token.Position) (ast.Statement, error) {
	label := p.intern(p.tok.Text)
	if err := p.advance(); err != nil { // consume the identifier
		return nil, err
	}
	if err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewLabelStatement(startPos, label, body), nil
}

func (p *Parser) parseExpressionStatement(startPos token.Position) (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(startPos, expr), nil
}
