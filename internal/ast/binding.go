package ast

import "github.com/cwbudde/go-esparse/internal/token"

// BindingPattern is the left-hand shape a declaration, parameter, or
// destructuring assignment binds into: a plain name, or an array/object
// pattern that recurses into further patterns.
type BindingPattern interface {
	Node
	bindingPatternNode()
}

// IdentifierBindingPattern binds a single name.
type IdentifierBindingPattern struct {
	position token.Position
	Name     string
}

func NewIdentifierBindingPattern(pos token.Position, name string) *IdentifierBindingPattern {
	return &IdentifierBindingPattern{position: pos, Name: name}
}

func (b *IdentifierBindingPattern) Pos() token.Position { return b.position }
func (b *IdentifierBindingPattern) bindingPatternNode() {}

// BindingPatternInitializer pairs a pattern with its optional default
// value, the unit a binding list (declaration, parameter, array/object
// pattern element) is built from.
type BindingPatternInitializer struct {
	Pattern     BindingPattern
	Initializer Expression
}

// ArrayBindingPattern destructures an iterable: "[a, , b = 1, ...rest]".
// A nil element in Elements records an elision (a skipped slot).
type ArrayBindingPattern struct {
	position token.Position
	Elements []*BindingPatternInitializer
	Rest     BindingPattern
}

func NewArrayBindingPattern(pos token.Position, elements []*BindingPatternInitializer, rest BindingPattern) *ArrayBindingPattern {
	return &ArrayBindingPattern{position: pos, Elements: elements, Rest: rest}
}

func (b *ArrayBindingPattern) Pos() token.Position { return b.position }
func (b *ArrayBindingPattern) bindingPatternNode() {}

// ObjectBindingProperty is one "key: pattern" (or shorthand "key") entry
// inside an object binding pattern.
type ObjectBindingProperty struct {
	Property Name
	Binding  BindingPatternInitializer
}

// ObjectBindingPattern destructures an object: "{a, b: [c], ...rest}".
type ObjectBindingPattern struct {
	position   token.Position
	Properties []*ObjectBindingProperty
	Rest       BindingPattern
}

func NewObjectBindingPattern(pos token.Position, properties []*ObjectBindingProperty, rest BindingPattern) *ObjectBindingPattern {
	return &ObjectBindingPattern{position: pos, Properties: properties, Rest: rest}
}

func (b *ObjectBindingPattern) Pos() token.Position { return b.position }
func (b *ObjectBindingPattern) bindingPatternNode() {}
