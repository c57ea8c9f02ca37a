// Package lexer tokenizes ECMAScript source text into the token.Token
// vocabulary. Unlike a context-free tokenizer, this one is goal-driven: the
// same "/" and "}" characters lex differently depending on what came
// before, so the scanner threads a small mutable State through every call
// rather than holding position as lexer-internal state. That split is what
// lets the parser snapshot and restore a cover grammar: cloning a State is
// a plain struct copy, no lexer re-construction involved.
package lexer

import (
	"unicode"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/token"
	"github.com/cwbudde/go-esparse/internal/unicodeid"
)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithStrictMode starts the lexer in strict mode, where legacy octal
// literals and octal escape sequences are syntax errors rather than
// accepted extensions.
func WithStrictMode(strict bool) Option {
	return func(l *Lexer) { l.strictMode = strict }
}

// WithFile attaches a file name to diagnostics the lexer produces.
func WithFile(file string) Option {
	return func(l *Lexer) { l.file = file }
}

// Lexer is an immutable view over a source text: the rune slice and the
// file name used for diagnostics. All cursor state lives in State, which
// the caller threads through successive Next calls.
type Lexer struct {
	source     []rune
	sourceText string
	file       string
	strictMode bool
}

// New returns a Lexer over source, applying the given options.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{source: []rune(source), sourceText: source}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State is the lexer's cursor: a rune position, the goal-mode bookkeeping
// that resolves "/" and "}" ambiguity, and the line/column counters used to
// stamp tokens. A State is cheap to copy by value, which is exactly what
// the parser's cover-grammar snapshot/restore needs.
type State struct {
	Position int
	Line     int
	Column   int

	// divisionContext is true when the previous token can end an
	// expression, so a following "/" begins a division punctuator rather
	// than a regular-expression literal. Set automatically after every
	// token, mirroring the "goal_regexp" flag the original grammar expects
	// the caller to manage by hand.
	divisionContext bool

	// templateDepths tracks, for each currently-open template
	// substitution, the brace-nesting depth active when it was opened. A
	// "}" closes a template substitution (resuming TemplateMiddle/Tail
	// scanning) exactly when braceDepth equals the top of this stack;
	// otherwise it is an ordinary block/object closer.
	templateDepths []int
	braceDepth     int
}

// NewState returns the initial State for the start of a source text.
func NewState() State {
	return State{Line: 1, Column: 1}
}

// Clone returns an independent copy of s: the slice-backed templateDepths
// stack is deep-copied so that mutating the clone (entering or leaving a
// template substitution while a cover grammar is tentatively parsed) never
// aliases the original.
func (s State) Clone() State {
	out := s
	if len(s.templateDepths) > 0 {
		out.templateDepths = append([]int(nil), s.templateDepths...)
	}
	return out
}

func (l *Lexer) errAt(code errors.Code, pos token.Position, message string) *errors.ParseError {
	return errors.New(code, pos, message, l.sourceText, l.file)
}

func (l *Lexer) at(st *State, offset int) (rune, bool) {
	idx := st.Position + offset
	if idx < 0 || idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance(st *State) {
	if st.Position >= len(l.source) {
		return
	}
	c := l.source[st.Position]
	st.Position++
	if isLineTerminator(c) {
		st.Line++
		st.Column = 1
	} else {
		st.Column++
	}
}

func (l *Lexer) advanceN(st *State, n int) {
	for i := 0; i < n; i++ {
		l.advance(st)
	}
}

func (l *Lexer) pos(st *State) token.Position {
	return token.Position{Line: st.Line, Column: st.Column}
}

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
	byteOrderMark      = '\ufeff'
)

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == lineSeparator || c == paragraphSeparator
}

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\xa0', byteOrderMark:
		return true
	}
	return unicode.Is(unicode.Zs, c)
}

// Next scans and returns the next token starting at st.Position, advancing
// st past it. Whether a "}" resumes template scanning instead of going
// through the ordinary dispatch is decided inside Next via st.templateDepths,
// so callers never need to call anything but Next in a loop.
func (l *Lexer) Next(st *State) (token.Token, error) {
	lineTerminator, err := l.skipTrivia(st)
	if err != nil {
		return token.Token{}, err
	}

	startPos := l.pos(st)
	c, ok := l.at(st, 0)
	if !ok {
		tok := token.Token{Kind: token.EndOfInput, Pos: startPos, LineTerminatorBefore: lineTerminator}
		st.divisionContext = false
		return tok, nil
	}

	var tok token.Token
	switch {
	case c == '\\' || unicodeid.IsIDStart(c):
		tok, err = l.readWordToken(st, startPos)
	case c == '"' || c == '\'':
		tok, err = l.readStringLiteral(st, startPos)
	case c == '`':
		tok, err = l.readTemplateStart(st, startPos)
	case c == '0':
		tok, err = l.readZeroStartingLiteral(st, startPos)
	case c >= '1' && c <= '9':
		tok, err = l.readNonZeroStartingLiteral(st, startPos)
	case c == '.':
		if next, ok := l.at(st, 1); ok && next >= '0' && next <= '9' {
			tok, err = l.readDecimalLiteralContinuation(st, startPos, nil)
		} else {
			tok, err = l.readPunctuator(st, startPos)
		}
	case c == '}':
		tok, err = l.readRightCurlyOrTemplateContinuation(st, startPos)
	case c == '/':
		if st.divisionContext {
			tok, err = l.readPunctuator(st, startPos)
		} else {
			tok, err = l.readRegExpLiteral(st, startPos)
		}
	default:
		tok, err = l.readPunctuator(st, startPos)
	}
	if err != nil {
		return token.Token{}, err
	}

	tok.Pos = startPos
	tok.LineTerminatorBefore = lineTerminator
	st.divisionContext = endsExpression(tok)
	return tok, nil
}

// endsExpression reports whether tok can be the last token of a complete
// expression, which is what determines whether a following "/" is a
// division operator (true) or the start of a regular-expression literal
// (false). This replaces the original grammar's caller-managed
// "goal_regexp" flag with a token-driven heuristic computed right here.
func endsExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.NumberLiteral, token.BigIntLiteral, token.StringLiteral,
		token.RegExpLiteral, token.NoSubstitutionTemplate, token.TemplateTail,
		token.RightParenthesis, token.RightSquareBracket, token.RightCurlyBracket,
		token.DoublePlus, token.DoubleMinus:
		return true
	case token.NameToken:
		switch tok.NameValue {
		case token.Unclassified, token.This, token.Super, token.Null, token.True, token.False:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// skipTrivia advances past whitespace, line terminators, comments, and a
// leading shebang line, reporting whether any line terminator was crossed.
func (l *Lexer) skipTrivia(st *State) (bool, error) {
	lineTerminator := false
	if st.Position == 0 {
		if c, ok := l.at(st, 0); ok && c == '#' {
			if next, ok := l.at(st, 1); ok && next == '!' {
				l.advanceN(st, 2)
				l.skipToLineEnd(st)
			}
		}
	}
	for {
		c, ok := l.at(st, 0)
		if !ok {
			return lineTerminator, nil
		}
		switch {
		case isLineTerminator(c):
			lineTerminator = true
			l.advance(st)
		case isWhitespace(c):
			l.advance(st)
		case c == '/' && peekIs(l, st, 1, '/'):
			l.advanceN(st, 2)
			l.skipToLineEnd(st)
		case c == '/' && peekIs(l, st, 1, '*'):
			crossed, err := l.skipBlockComment(st)
			if err != nil {
				return false, err
			}
			lineTerminator = lineTerminator || crossed
		default:
			return lineTerminator, nil
		}
	}
}

func peekIs(l *Lexer, st *State, offset int, want rune) bool {
	c, ok := l.at(st, offset)
	return ok && c == want
}

func (l *Lexer) skipToLineEnd(st *State) {
	for {
		c, ok := l.at(st, 0)
		if !ok || isLineTerminator(c) {
			return
		}
		l.advance(st)
	}
}

func (l *Lexer) skipBlockComment(st *State) (bool, error) {
	startPos := l.pos(st)
	l.advanceN(st, 2)
	crossed := false
	for {
		c, ok := l.at(st, 0)
		if !ok {
			return crossed, l.errAt(errors.SyntaxError, startPos, "unterminated block comment")
		}
		if isLineTerminator(c) {
			crossed = true
		}
		if c == '*' && peekIs(l, st, 1, '/') {
			l.advanceN(st, 2)
			return crossed, nil
		}
		l.advance(st)
	}
}

// readRightCurlyOrTemplateContinuation resolves "}" against the template
// substitution stack: if the current brace depth matches the depth
// recorded when the innermost open substitution began, this "}" closes
// that substitution and resumes scanning template characters (producing a
// TemplateMiddle or TemplateTail token). Otherwise it is an ordinary
// block/object closer.
func (l *Lexer) readRightCurlyOrTemplateContinuation(st *State, startPos token.Position) (token.Token, error) {
	n := len(st.templateDepths)
	if n > 0 && st.templateDepths[n-1] == st.braceDepth {
		st.templateDepths = st.templateDepths[:n-1]
		l.advance(st)
		return l.readTemplateCharacters(st, startPos, false)
	}
	if st.braceDepth > 0 {
		st.braceDepth--
	}
	l.advance(st)
	return token.Token{Kind: token.RightCurlyBracket}, nil
}
