package ast

import (
	"github.com/cwbudde/go-esparse/internal/bigint"
	"github.com/cwbudde/go-esparse/internal/token"
)

// ArrayElement is one slot of an array literal: a value, a spread, or an
// elision (a skipped slot, as in "[1, , 3]"). Expression is nil for an
// elision.
type ArrayElement struct {
	Elision    bool
	Spread     bool
	Expression Expression
}

// ArrayExpression is an array literal: "[1, 2, ...rest]".
type ArrayExpression struct {
	position token.Position
	Elements []ArrayElement
}

func NewArrayExpression(pos token.Position, elements []ArrayElement) *ArrayExpression {
	return &ArrayExpression{position: pos, Elements: elements}
}

func (e *ArrayExpression) Pos() token.Position { return e.position }
func (e *ArrayExpression) expressionNode()     {}

// BigIntLiteral is a BigInt literal: "123n".
type BigIntLiteral struct {
	position token.Position
	Value    *bigint.BigInt
}

func NewBigIntLiteral(pos token.Position, value *bigint.BigInt) *BigIntLiteral {
	return &BigIntLiteral{position: pos, Value: value}
}

func (e *BigIntLiteral) Pos() token.Position { return e.position }
func (e *BigIntLiteral) expressionNode()     {}

// BooleanLiteral is "true" or "false".
type BooleanLiteral struct {
	position token.Position
	Value    bool
}

func NewBooleanLiteral(pos token.Position, value bool) *BooleanLiteral {
	return &BooleanLiteral{position: pos, Value: value}
}

func (e *BooleanLiteral) Pos() token.Position { return e.position }
func (e *BooleanLiteral) expressionNode()     {}

// CallExpression is a function or method call: "f(a, b)", "obj?.m(a)".
type CallExpression struct {
	position  token.Position
	Callee    Expression
	Arguments []Argument
	Optional  bool
}

func NewCallExpression(pos token.Position, callee Expression, arguments []Argument, optional bool) *CallExpression {
	return &CallExpression{position: pos, Callee: callee, Arguments: arguments, Optional: optional}
}

func (e *CallExpression) Pos() token.Position { return e.position }
func (e *CallExpression) expressionNode()     {}

// ConditionalExpression is the ternary "condition ? consequent : alternate".
type ConditionalExpression struct {
	position   token.Position
	Condition  Expression
	Consequent Expression
	Alternate  Expression
}

func NewConditionalExpression(pos token.Position, condition, consequent, alternate Expression) *ConditionalExpression {
	return &ConditionalExpression{position: pos, Condition: condition, Consequent: consequent, Alternate: alternate}
}

func (e *ConditionalExpression) Pos() token.Position { return e.position }
func (e *ConditionalExpression) expressionNode()     {}

// GroupExpression is a parenthesized expression: "(x)". Keeping the
// grouping as its own node (rather than discarding the parentheses once
// precedence is resolved) preserves enough information to tell a
// parenthesized arrow-function cover grammar apart from a bare one, and to
// reject "(x) = 1" as an invalid assignment target without re-parsing.
type GroupExpression struct {
	position   token.Position
	Expression Expression
}

func NewGroupExpression(pos token.Position, expression Expression) *GroupExpression {
	return &GroupExpression{position: pos, Expression: expression}
}

func (e *GroupExpression) Pos() token.Position { return e.position }
func (e *GroupExpression) expressionNode()     {}

// Identifier is a bare identifier reference.
type Identifier struct {
	position token.Position
	Name     string
}

func NewIdentifier(pos token.Position, name string) *Identifier {
	return &Identifier{position: pos, Name: name}
}

func (e *Identifier) Pos() token.Position { return e.position }
func (e *Identifier) expressionNode()     {}

// ImportExpression is a dynamic import call: "import(specifier)".
type ImportExpression struct {
	position token.Position
	Argument Expression
}

func NewImportExpression(pos token.Position, argument Expression) *ImportExpression {
	return &ImportExpression{position: pos, Argument: argument}
}

func (e *ImportExpression) Pos() token.Position { return e.position }
func (e *ImportExpression) expressionNode()     {}

// ImportMetaExpression is the "import.meta" meta-property.
type ImportMetaExpression struct {
	position token.Position
}

func NewImportMetaExpression(pos token.Position) *ImportMetaExpression {
	return &ImportMetaExpression{position: pos}
}

func (e *ImportMetaExpression) Pos() token.Position { return e.position }
func (e *ImportMetaExpression) expressionNode()     {}

// InExpression is a relational "in": both the private-field brand check
// "#name in obj" (Name is a PrivateName) and ordinary "a in b" (Name is a
// ComputedName whose Expression is the left operand). "in" has no
// BinaryOp member.
type InExpression struct {
	position token.Position
	Name     Name
	Argument Expression
}

func NewInExpression(pos token.Position, name Name, argument Expression) *InExpression {
	return &InExpression{position: pos, Name: name, Argument: argument}
}

func (e *InExpression) Pos() token.Position { return e.position }
func (e *InExpression) expressionNode()     {}

// SequenceExpression is the comma operator: "a, b, c" evaluates each in
// order and yields the last.
type SequenceExpression struct {
	position    token.Position
	Expressions []Expression
}

func NewSequenceExpression(pos token.Position, expressions []Expression) *SequenceExpression {
	return &SequenceExpression{position: pos, Expressions: expressions}
}

func (e *SequenceExpression) Pos() token.Position { return e.position }
func (e *SequenceExpression) expressionNode()     {}

// MemberExpression is a property access: "obj.x", "obj[x]", "obj?.x",
// "obj.#x".
type MemberExpression struct {
	position token.Position
	Object   Expression
	Optional bool
	Property Name
}

func NewMemberExpression(pos token.Position, object Expression, optional bool, property Name) *MemberExpression {
	return &MemberExpression{position: pos, Object: object, Optional: optional, Property: property}
}

func (e *MemberExpression) Pos() token.Position { return e.position }
func (e *MemberExpression) expressionNode()     {}

// NewTargetExpression is the "new.target" meta-property.
type NewTargetExpression struct {
	position token.Position
}

func NewNewTargetExpression(pos token.Position) *NewTargetExpression {
	return &NewTargetExpression{position: pos}
}

func (e *NewTargetExpression) Pos() token.Position { return e.position }
func (e *NewTargetExpression) expressionNode()     {}

// NewExpression is a "new" construction. Arguments is nil for the
// no-parentheses form ("new Foo"), and a (possibly empty) non-nil slice
// once an argument list is present ("new Foo()").
type NewExpression struct {
	position  token.Position
	Callee    Expression
	Arguments []Argument
}

func NewNewExpression(pos token.Position, callee Expression, arguments []Argument) *NewExpression {
	return &NewExpression{position: pos, Callee: callee, Arguments: arguments}
}

func (e *NewExpression) Pos() token.Position { return e.position }
func (e *NewExpression) expressionNode()     {}

// NullLiteral is "null".
type NullLiteral struct {
	position token.Position
}

func NewNullLiteral(pos token.Position) *NullLiteral {
	return &NullLiteral{position: pos}
}

func (e *NullLiteral) Pos() token.Position { return e.position }
func (e *NullLiteral) expressionNode()     {}

// NumberLiteral is a Number literal of any radix; Radix/source spelling
// have already been resolved into Value by the lexer's numeric conversion.
type NumberLiteral struct {
	position token.Position
	Value    float64
}

func NewNumberLiteral(pos token.Position, value float64) *NumberLiteral {
	return &NumberLiteral{position: pos, Value: value}
}

func (e *NumberLiteral) Pos() token.Position { return e.position }
func (e *NumberLiteral) expressionNode()     {}

// ObjectExpression is an object literal: "{a: 1, ...rest}".
type ObjectExpression struct {
	position   token.Position
	Properties []ObjectProperty
}

func NewObjectExpression(pos token.Position, properties []ObjectProperty) *ObjectExpression {
	return &ObjectExpression{position: pos, Properties: properties}
}

func (e *ObjectExpression) Pos() token.Position { return e.position }
func (e *ObjectExpression) expressionNode()     {}

// RegExpLiteral is a regular expression literal: "/pattern/flags". The
// pattern and flags are carried as their raw source text; validating the
// pattern against the regular-expression grammar is out of scope for a
// source parser.
type RegExpLiteral struct {
	position token.Position
	Pattern  string
	Flags    string
}

func NewRegExpLiteral(pos token.Position, pattern, flags string) *RegExpLiteral {
	return &RegExpLiteral{position: pos, Pattern: pattern, Flags: flags}
}

func (e *RegExpLiteral) Pos() token.Position { return e.position }
func (e *RegExpLiteral) expressionNode()     {}

// StringLiteral is a string literal, already escape-processed to its
// cooked value.
type StringLiteral struct {
	position token.Position
	Value    string
}

func NewStringLiteral(pos token.Position, value string) *StringLiteral {
	return &StringLiteral{position: pos, Value: value}
}

func (e *StringLiteral) Pos() token.Position { return e.position }
func (e *StringLiteral) expressionNode()     {}

// SuperExpression is the bare "super" keyword, legal as a call
// ("super(...)") or member ("super.x") base.
type SuperExpression struct {
	position token.Position
}

func NewSuperExpression(pos token.Position) *SuperExpression {
	return &SuperExpression{position: pos}
}

func (e *SuperExpression) Pos() token.Position { return e.position }
func (e *SuperExpression) expressionNode()     {}

// TemplateLiteral is an untagged template: "`a${b}c`". Strings holds the
// cooked text between substitutions (len(Strings) == len(Substitutions)+1);
// an untagged template with an invalid escape sequence is a syntax error at
// parse time, so no raw/cooked distinction is needed here the way it is
// for TaggedTemplateLiteral.
type TemplateLiteral struct {
	position      token.Position
	Strings       []string
	Substitutions []Expression
}

func NewTemplateLiteral(pos token.Position, strings []string, substitutions []Expression) *TemplateLiteral {
	return &TemplateLiteral{position: pos, Strings: strings, Substitutions: substitutions}
}

func (e *TemplateLiteral) Pos() token.Position { return e.position }
func (e *TemplateLiteral) expressionNode()     {}

// TaggedTemplateLiteral is a tagged template: "tag`a${b}c`". Unlike a bare
// template, an invalid escape sequence here is not a syntax error: the
// corresponding Strings entry is nil and the tag function receives the raw
// text instead, so Strings holds *string rather than string.
type TaggedTemplateLiteral struct {
	position      token.Position
	Tag           Expression
	Optional      bool
	RawStrings    []string
	Strings       []*string
	Substitutions []Expression
}

func NewTaggedTemplateLiteral(pos token.Position, tag Expression, optional bool, rawStrings []string, strings []*string, substitutions []Expression) *TaggedTemplateLiteral {
	return &TaggedTemplateLiteral{position: pos, Tag: tag, Optional: optional, RawStrings: rawStrings, Strings: strings, Substitutions: substitutions}
}

func (e *TaggedTemplateLiteral) Pos() token.Position { return e.position }
func (e *TaggedTemplateLiteral) expressionNode()     {}

// ThisExpression is the bare "this" keyword.
type ThisExpression struct {
	position token.Position
}

func NewThisExpression(pos token.Position) *ThisExpression {
	return &ThisExpression{position: pos}
}

func (e *ThisExpression) Pos() token.Position { return e.position }
func (e *ThisExpression) expressionNode()     {}

// YieldExpression is "yield", "yield expr", or the delegating "yield*
// expr" form used inside a generator body.
type YieldExpression struct {
	position token.Position
	Delegate bool
	Argument Expression
}

func NewYieldExpression(pos token.Position, delegate bool, argument Expression) *YieldExpression {
	return &YieldExpression{position: pos, Delegate: delegate, Argument: argument}
}

func (e *YieldExpression) Pos() token.Position { return e.position }
func (e *YieldExpression) expressionNode()     {}
