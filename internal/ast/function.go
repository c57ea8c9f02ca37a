package ast

import "github.com/cwbudde/go-esparse/internal/token"

// FormalParameters is a parameter list shared by functions, methods, and
// arrow functions: zero or more bindings, each with an optional default,
// followed by an optional rest parameter.
type FormalParameters struct {
	Bindings []*BindingPatternInitializer
	Rest     BindingPattern
}

// FunctionDefinition is a function, async function, generator, or
// async-generator: the four variants share one shape, distinguished by the
// Async/Generator flags. Identifier is nil for a function expression with
// no name.
type FunctionDefinition struct {
	position   token.Position
	Identifier *string
	Async      bool
	Generator  bool
	Parameters *FormalParameters
	Body       []Statement
}

func NewFunctionDefinition(pos token.Position, identifier *string, async, generator bool, parameters *FormalParameters, body []Statement) *FunctionDefinition {
	return &FunctionDefinition{position: pos, Identifier: identifier, Async: async, Generator: generator, Parameters: parameters, Body: body}
}

func (f *FunctionDefinition) Pos() token.Position { return f.position }
func (f *FunctionDefinition) expressionNode()     {}

// Argument is one entry in a call or new expression's argument list:
// either a positional expression or a spread ("...expr").
type Argument struct {
	Expression Expression
	Spread     bool
}

// ArrowFunctionDefinition is an arrow function. Concise bodies ("x => x+1")
// are normalized at parse time into a single-statement Body holding an
// implicit ReturnStatement, so Body is always a statement list regardless
// of which source form produced it.
type ArrowFunctionDefinition struct {
	position   token.Position
	Async      bool
	Parameters *FormalParameters
	Body       []Statement
}

func NewArrowFunctionDefinition(pos token.Position, async bool, parameters *FormalParameters, body []Statement) *ArrowFunctionDefinition {
	return &ArrowFunctionDefinition{position: pos, Async: async, Parameters: parameters, Body: body}
}

func (f *ArrowFunctionDefinition) Pos() token.Position { return f.position }
func (f *ArrowFunctionDefinition) expressionNode()     {}
