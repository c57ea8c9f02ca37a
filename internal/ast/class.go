package ast

import "github.com/cwbudde/go-esparse/internal/token"

// ClassDefinition is a class body: an optional name, an optional
// "extends" heritage expression, and its elements in source order.
type ClassDefinition struct {
	position   token.Position
	Identifier *string
	Heritage   Expression
	Body       []ClassElement
}

func NewClassDefinition(pos token.Position, identifier *string, heritage Expression, body []ClassElement) *ClassDefinition {
	return &ClassDefinition{position: pos, Identifier: identifier, Heritage: heritage, Body: body}
}

func (c *ClassDefinition) Pos() token.Position { return c.position }
func (c *ClassDefinition) expressionNode()     {}

// ClassElement is one member of a class body: a field, accessor, method,
// or static initialization block.
type ClassElement interface {
	Node
	classElementNode()
}

// ClassField is a class field declaration, with or without an initializer:
// "x = 1;", "#x;", "static count = 0;".
type ClassField struct {
	position token.Position
	Name     Name
	Static   bool
	Value    Expression
}

func NewClassField(pos token.Position, name Name, static bool, value Expression) *ClassField {
	return &ClassField{position: pos, Name: name, Static: static, Value: value}
}

func (f *ClassField) Pos() token.Position { return f.position }
func (f *ClassField) classElementNode()   {}

// ClassMethod is an ordinary, async, generator, or static method.
type ClassMethod struct {
	position   token.Position
	Name       Name
	Async      bool
	Generator  bool
	Static     bool
	Parameters *FormalParameters
	Body       []Statement
}

func NewClassMethod(pos token.Position, name Name, async, generator, static bool, parameters *FormalParameters, body []Statement) *ClassMethod {
	return &ClassMethod{position: pos, Name: name, Async: async, Generator: generator, Static: static, Parameters: parameters, Body: body}
}

func (m *ClassMethod) Pos() token.Position { return m.position }
func (m *ClassMethod) classElementNode()   {}

// ClassGetter is a "get key() { ... }" accessor member.
type ClassGetter struct {
	position token.Position
	Name     Name
	Static   bool
	Body     []Statement
}

func NewClassGetter(pos token.Position, name Name, static bool, body []Statement) *ClassGetter {
	return &ClassGetter{position: pos, Name: name, Static: static, Body: body}
}

func (g *ClassGetter) Pos() token.Position { return g.position }
func (g *ClassGetter) classElementNode()   {}

// ClassSetter is a "set key(value) { ... }" accessor member.
type ClassSetter struct {
	position  token.Position
	Name      Name
	Static    bool
	Parameter BindingPatternInitializer
	Body      []Statement
}

func NewClassSetter(pos token.Position, name Name, static bool, parameter BindingPatternInitializer, body []Statement) *ClassSetter {
	return &ClassSetter{position: pos, Name: name, Static: static, Parameter: parameter, Body: body}
}

func (s *ClassSetter) Pos() token.Position { return s.position }
func (s *ClassSetter) classElementNode()   {}

// ClassStaticBlock is a "static { ... }" initialization block, run once
// when the class is defined with "this" bound to the class itself.
type ClassStaticBlock struct {
	position token.Position
	Body     []Statement
}

func NewClassStaticBlock(pos token.Position, body []Statement) *ClassStaticBlock {
	return &ClassStaticBlock{position: pos, Body: body}
}

func (b *ClassStaticBlock) Pos() token.Position { return b.position }
func (b *ClassStaticBlock) classElementNode()   {}
