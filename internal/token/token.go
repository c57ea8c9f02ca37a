// Package token defines the lexical tokens produced by the ECMAScript
// tokenizer: punctuator kinds, the keyword/identifier name vocabulary, and
// the literal payloads (strings, templates, numbers, BigInts, regular
// expressions) a Token can carry.
package token

import "github.com/cwbudde/go-esparse/internal/bigint"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kind constants, organized by category the way the lexer groups them.
const (
	Illegal Kind = iota
	EndOfInput

	// Name carries an identifier or keyword; which one is recorded in the
	// Token's Name field.
	NameToken

	// Literals
	NumberLiteral
	BigIntLiteral
	StringLiteral
	NoSubstitutionTemplate
	TemplateHead
	TemplateMiddle
	TemplateTail
	RegExpLiteral

	// Punctuators - brackets and separators
	LeftParenthesis
	RightParenthesis
	LeftSquareBracket
	RightSquareBracket
	LeftCurlyBracket
	RightCurlyBracket
	Semicolon
	Comma
	Colon
	FullStop
	TripleStop // "..."
	NumberSign // "#", private class member names

	// Punctuators - relational and equality
	LessThan
	GreaterThan
	LessThanEquals
	GreaterThanEquals
	DoubleEquals
	ExclamationEquals
	TripleEquals
	ExclamationDoubleEquals

	// Punctuators - arithmetic
	Plus
	Minus
	Asterisk
	Percent
	DoubleAsterisk
	DoublePlus
	DoubleMinus
	Solidus

	// Punctuators - bitwise and shift
	Ampersand
	VerticalLine
	Circumflex
	Tilde
	DoubleLessThan
	DoubleGreaterThan
	TripleGreaterThan

	// Punctuators - logical
	Exclamation
	DoubleAmpersand
	DoubleVerticalLine
	DoubleQuestionMark
	QuestionMark
	QuestionMarkStop // "?.", optional chaining

	// Punctuators - assignment
	Equals
	PlusEquals
	MinusEquals
	AsteriskEquals
	PercentEquals
	DoubleAsteriskEquals
	SolidusEquals
	DoubleLessThanEquals
	DoubleGreaterThanEquals
	TripleGreaterThanEquals
	AmpersandEquals
	VerticalLineEquals
	CircumflexEquals
	DoubleAmpersandEquals
	DoubleVerticalLineEquals
	DoubleQuestionMarkEquals

	FatArrow
)

// kindNames holds one entry per Kind constant, in declaration order, for
// diagnostic rendering (the lex command's token dump, error messages).
var kindNames = [...]string{
	"Illegal", "EndOfInput", "Name",
	"NumberLiteral", "BigIntLiteral", "StringLiteral",
	"NoSubstitutionTemplate", "TemplateHead", "TemplateMiddle", "TemplateTail",
	"RegExpLiteral",
	"(", ")", "[", "]", "{", "}", ";", ",", ":", ".", "...", "#",
	"<", ">", "<=", ">=", "==", "!=", "===", "!==",
	"+", "-", "*", "%", "**", "++", "--", "/",
	"&", "|", "^", "~", "<<", ">>", ">>>",
	"!", "&&", "||", "??", "?", "?.",
	"=", "+=", "-=", "*=", "%=", "**=", "/=", "<<=", ">>=", ">>>=",
	"&=", "|=", "^=", "&&=", "||=", "??=",
	"=>",
}

// String renders the Kind's canonical name or punctuator spelling.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Name identifies a reserved word or contextual keyword an identifier-shaped
// token resolved to; Unclassified carries an ordinary identifier whose text
// lives in the Token's Text field.
type Name int

const (
	Unclassified Name = iota

	Var
	If
	Else
	Do
	While
	For
	Switch
	Continue
	Break
	Return
	With
	Throw
	Try
	Debugger
	Function
	Class
	Async
	Let
	Const
	Yield
	Await
	This
	Null
	True
	False
	New
	Super
	Import
	Meta
	Target
	Instanceof
	In
	Delete
	Void
	Typeof
	Catch
	Finally
	Case
	Default
	Get
	Set
	Of
	Static
	Extends
)

// Position identifies a source location by 1-based line and column, both
// counted in runes for UTF-8-aware diagnostics.
type Position struct {
	Line   int
	Column int
}

// Token is the single concrete type returned by the lexer for every lexical
// category. Only the fields relevant to Kind are populated; the rest stay
// at their zero value.
type Token struct {
	Kind Kind
	Pos  Position

	// NameValue and Text are meaningful when Kind == NameToken: NameValue
	// is Unclassified for an ordinary identifier, in which case Text holds
	// its source spelling. For reserved words, Text still holds the
	// spelling (useful for error messages and for strict-mode checks on
	// contextual keywords used as identifiers).
	NameValue Name
	Text      string

	// Escaped records whether the identifier's spelling contained a \u
	// escape. An escaped name is always force-classified Unclassified: its
	// spelling can equal a keyword's without being treated as that keyword
	// (so if never parses as the keyword "if").
	Escaped bool

	// NumberValue and Radix are meaningful when Kind == NumberLiteral.
	NumberValue float64
	Radix       int

	// BigIntValue is meaningful when Kind == BigIntLiteral.
	BigIntValue *bigint.BigInt

	// StringValue is the cooked value of a StringLiteral.
	StringValue string

	// Raw is the unprocessed source text of a template token; Cooked is its
	// escape-processed value, or nil if the template contained an invalid
	// escape sequence (legal only inside a tagged template).
	Raw    string
	Cooked *string

	// RegExpBody and RegExpFlags are meaningful when Kind == RegExpLiteral.
	RegExpBody  string
	RegExpFlags string

	// LineTerminatorBefore records whether a line terminator appeared in
	// the whitespace preceding this token, which automatic semicolon
	// insertion and several no-line-terminator-here grammar restrictions
	// depend on.
	LineTerminatorBefore bool
}

// keywords maps reserved and contextual keyword spellings to their Name.
// Identifiers not present here tokenize as NameToken with NameValue
// Unclassified.
var keywords = map[string]Name{
	"var": Var, "if": If, "else": Else, "do": Do, "while": While, "for": For,
	"switch": Switch, "continue": Continue, "break": Break, "return": Return,
	"with": With, "throw": Throw, "try": Try, "debugger": Debugger,
	"function": Function, "class": Class, "async": Async, "let": Let,
	"const": Const, "yield": Yield, "await": Await, "this": This,
	"null": Null, "true": True, "false": False, "new": New, "super": Super,
	"import": Import, "instanceof": Instanceof, "in": In, "delete": Delete,
	"void": Void, "typeof": Typeof, "catch": Catch, "finally": Finally,
	"case": Case, "default": Default, "get": Get, "set": Set, "of": Of,
	"static": Static, "extends": Extends,
}

// LookupName classifies an identifier's spelling as a reserved/contextual
// keyword Name, or Unclassified if it is an ordinary identifier.
func LookupName(text string) Name {
	if name, ok := keywords[text]; ok {
		return name
	}
	return Unclassified
}

// alwaysReserved lists words ECMAScript reserves in every mode; these can
// never be used as a binding identifier.
var alwaysReserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

// strictReserved lists words reserved only in strict mode.
var strictReserved = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

// IsReservedWord reports whether text cannot be used as a binding
// identifier, given whether the current context is in strict mode.
func IsReservedWord(text string, strict bool) bool {
	if alwaysReserved[text] {
		return true
	}
	return strict && strictReserved[text]
}
