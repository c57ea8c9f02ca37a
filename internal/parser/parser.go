// Package parser implements a recursive-descent ECMAScript parser over the
// token.Token vocabulary internal/lexer produces, building the internal/ast
// tree. It is single-pass: no lookahead
// buffer beyond "the current token" is kept, so disambiguation that needs
// more than one token of lookahead (arrow-function parameter covers,
// destructuring-vs-expression, "async function" vs. "async" as a plain
// identifier) is done with snapshot/restore over the lexer's State rather
// than a token buffer - cloning a State is a cheap struct copy, so a
// tentative parse that turns out wrong costs a restore, not a re-lex.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/lexer"
	"github.com/cwbudde/go-esparse/internal/token"
)

// Option configures a Parser at construction time, the same functional-
// options style internal/lexer uses for its own Option type.
type Option func(*Parser)

// WithSourceType selects the Script or Module parse goal. Defaults to
// ScriptSource.
func WithSourceType(t ast.SourceType) Option {
	return func(p *Parser) { p.sourceType = t }
}

// WithStrictMode starts the parser (and its lexer) in strict mode.
func WithStrictMode(strict bool) Option {
	return func(p *Parser) { p.strictMode = strict }
}

// WithFile attaches a file name to diagnostics.
func WithFile(file string) Option {
	return func(p *Parser) { p.file = file }
}

// Parser holds the single current token plus the parameterized-grammar
// flags (paramIn/paramYield/paramAwait) ECMA-262 threads through
// productions to resolve context-sensitive grammar: whether "in" binds as
// a relational operator (false inside a for-head's init clause), whether
// "yield"/"await" are keywords or plain identifiers (true inside a
// generator/async function body).
type Parser struct {
	lex        *lexer.Lexer
	st         lexer.State
	tok        token.Token
	arena      *ast.Arena
	source     string
	file       string
	strictMode bool
	sourceType ast.SourceType

	paramIn    bool
	paramYield bool
	paramAwait bool
}

// Parse parses source as a complete program and returns its root node, or
// the first error encountered. There is no error recovery: parsing stops
// at the first syntax error.
func Parse(source string, opts ...Option) (*ast.Program, error) {
	p := &Parser{
		arena:   ast.NewArena(),
		source:  source,
		paramIn: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sourceType == ast.ModuleSource {
		// A Module is always strict, and "await" is reserved at its top
		// level (it introduces the top-level-await grammar rather than
		// naming an identifier), matching the external-interfaces contract.
		p.strictMode = true
		p.paramAwait = true
	}
	p.lex = lexer.New(source, lexer.WithStrictMode(p.strictMode), lexer.WithFile(p.file))
	p.st = lexer.NewState()

	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next(&p.st)
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

type snapshot struct {
	st  lexer.State
	tok token.Token
}

func (p *Parser) snapshot() snapshot {
	return snapshot{st: p.st.Clone(), tok: p.tok}
}

func (p *Parser) restore(s snapshot) {
	p.st = s.st
	p.tok = s.tok
}

func (p *Parser) pos() token.Position { return p.tok.Pos }

func (p *Parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

func (p *Parser) atName(name token.Name) bool {
	return p.tok.Kind == token.NameToken && p.tok.NameValue == name && !p.tok.Escaped
}

// intern deduplicates s through the parser's arena.
func (p *Parser) intern(s string) string { return p.arena.Intern(s) }

func (p *Parser) errf(code errors.Code, format string, args ...interface{}) error {
	return errors.New(code, p.tok.Pos, fmt.Sprintf(format, args...), p.source, p.file)
}

func (p *Parser) errAt(code errors.Code, pos token.Position, format string, args ...interface{}) error {
	return errors.New(code, pos, fmt.Sprintf(format, args...), p.source, p.file)
}

// expect checks the current token's kind, consumes it, and reports what
// error otherwise.
func (p *Parser) expect(kind token.Kind, what string) error {
	if p.tok.Kind != kind {
		return p.errf(errors.SyntaxError, "expected %s", what)
	}
	return p.advance()
}

func (p *Parser) expectName(name token.Name, what string) error {
	if !p.atName(name) {
		return p.errf(errors.SyntaxError, "expected %s", what)
	}
	return p.advance()
}

// peekAhead snapshots state, advances once, reports whether the resulting
// token satisfies pred (and, if requireSameLine, that no line terminator
// separates it from the current token), and restores regardless. It is
// the parser's only form of two-token lookahead, used where the grammar's
// ambiguity genuinely needs it ("async" before "function", "let" before a
// binding pattern, a bare identifier before ":").
func (p *Parser) peekAhead(requireSameLine bool, pred func(token.Token) bool) bool {
	snap := p.snapshot()
	defer p.restore(snap)
	if err := p.advance(); err != nil {
		return false
	}
	if requireSameLine && p.tok.LineTerminatorBefore {
		return false
	}
	return pred(p.tok)
}

// parseProgram parses the entire token stream as a list of statements
// under the parser's configured source type.
func (p *Parser) parseProgram() (*ast.Program, error) {
	var body []ast.Statement
	for !p.at(token.EndOfInput) {
		stmt, err := p.parseStatementListItem()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Program{SourceType: p.sourceType, Body: body}, nil
}

// consumeSemicolon implements Automatic Semicolon Insertion: an explicit ";"
// is always accepted; otherwise a semicolon is inserted for free before a
// "}", before end-of-input, or after a line terminator - three
// independent alternatives, any one of which is sufficient.
func (p *Parser) consumeSemicolon() error {
	if p.at(token.Semicolon) {
		return p.advance()
	}
	if p.at(token.RightCurlyBracket) || p.at(token.EndOfInput) || p.tok.LineTerminatorBefore {
		return nil
	}
	return p.errf(errors.SyntaxError, "expected semicolon")
}
