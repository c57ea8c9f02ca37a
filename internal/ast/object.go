package ast

import "github.com/cwbudde/go-esparse/internal/token"

// ObjectProperty is one element of an object literal: a key/value pair,
// an accessor, a method, a shorthand name, or a spread.
type ObjectProperty interface {
	Node
	objectPropertyNode()
}

// ObjectPropertyDefinition is an ordinary "key: value" entry.
type ObjectPropertyDefinition struct {
	position   token.Position
	Property   Name
	Expression Expression
}

func NewObjectPropertyDefinition(pos token.Position, property Name, expression Expression) *ObjectPropertyDefinition {
	return &ObjectPropertyDefinition{position: pos, Property: property, Expression: expression}
}

func (p *ObjectPropertyDefinition) Pos() token.Position { return p.position }
func (p *ObjectPropertyDefinition) objectPropertyNode() {}

// ObjectMethod is a method shorthand entry: "key(...) { ... }".
type ObjectMethod struct {
	position   token.Position
	Async      bool
	Generator  bool
	Property   Name
	Parameters *FormalParameters
	Body       []Statement
}

func NewObjectMethod(pos token.Position, async, generator bool, property Name, parameters *FormalParameters, body []Statement) *ObjectMethod {
	return &ObjectMethod{position: pos, Async: async, Generator: generator, Property: property, Parameters: parameters, Body: body}
}

func (m *ObjectMethod) Pos() token.Position { return m.position }
func (m *ObjectMethod) objectPropertyNode() {}

// ObjectGetter is a "get key() { ... }" accessor entry.
type ObjectGetter struct {
	position token.Position
	Property Name
	Body     []Statement
}

func NewObjectGetter(pos token.Position, property Name, body []Statement) *ObjectGetter {
	return &ObjectGetter{position: pos, Property: property, Body: body}
}

func (g *ObjectGetter) Pos() token.Position { return g.position }
func (g *ObjectGetter) objectPropertyNode() {}

// ObjectSetter is a "set key(value) { ... }" accessor entry.
type ObjectSetter struct {
	position  token.Position
	Property  Name
	Parameter BindingPatternInitializer
	Body      []Statement
}

func NewObjectSetter(pos token.Position, property Name, parameter BindingPatternInitializer, body []Statement) *ObjectSetter {
	return &ObjectSetter{position: pos, Property: property, Parameter: parameter, Body: body}
}

func (s *ObjectSetter) Pos() token.Position { return s.position }
func (s *ObjectSetter) objectPropertyNode() {}

// ObjectShorthand is a "{x}" shorthand entry, equivalent to "{x: x}".
type ObjectShorthand struct {
	position token.Position
	Name     string
}

func NewObjectShorthand(pos token.Position, name string) *ObjectShorthand {
	return &ObjectShorthand{position: pos, Name: name}
}

func (s *ObjectShorthand) Pos() token.Position { return s.position }
func (s *ObjectShorthand) objectPropertyNode() {}

// ObjectSpread is a "...expr" entry inside an object literal, copying the
// argument's own enumerable properties into the object being built.
type ObjectSpread struct {
	position token.Position
	Argument Expression
}

func NewObjectSpread(pos token.Position, argument Expression) *ObjectSpread {
	return &ObjectSpread{position: pos, Argument: argument}
}

func (s *ObjectSpread) Pos() token.Position { return s.position }
func (s *ObjectSpread) objectPropertyNode() {}
