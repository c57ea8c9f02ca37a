// Package ast defines the Abstract Syntax Tree produced by parsing
// ECMAScript source: the Program root, the Statement and Expression sum
// types and their concrete node kinds, and the supporting binding, class,
// function, and object-literal shapes each production builds.
//
// The tree is built from ordinary garbage-collected Go values rather than
// an arena-allocated bump allocator: a parser targeting a GC'd language has
// no manual-lifetime problem to solve, so the only piece worth carrying
// over from an arena is its string deduplication, provided here by Arena.
package ast

import "github.com/cwbudde/go-esparse/internal/token"

// Node is the base interface every AST node implements. Pos reports the
// source position recorded for diagnostics; it is not a parse-tree span,
// just the position of the node's leading token.
type Node interface {
	Pos() token.Position
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// SourceType distinguishes the two ECMAScript parse goals: Script and
// Module grammars differ in import/export support and in their default
// strictness.
type SourceType int

const (
	ScriptSource SourceType = iota
	ModuleSource
)

// Program is the root of the tree: every top-level statement in source
// order under the parse goal that produced them.
type Program struct {
	SourceType SourceType
	Body       []Statement
}

// Arena deduplicates strings produced while building a tree, the one piece
// of the bump-allocator idiom worth keeping once allocation lifetime is
// handed to the garbage collector: repeated identifiers and property names
// share a single backing string instead of each occurrence owning its own
// copy.
type Arena struct {
	strings map[string]string
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{strings: make(map[string]string)}
}

// Intern returns a canonical copy of s, reusing a previously interned
// value with the same content when one exists.
func (a *Arena) Intern(s string) string {
	if existing, ok := a.strings[s]; ok {
		return existing
	}
	a.strings[s] = s
	return s
}

// NameKind classifies a Name, the shared representation for a member,
// property, or class element's key. The lexer/parser pipeline collapses
// three near-identical enums from the ported grammar (member names,
// object-literal property names, class element names) into this one type:
// they differ only in which variants a given grammar position allows
// (object-literal keys never carry PrivateName), not in shape.
type NameKind int

const (
	// StaticName is an ordinary identifier or string/numeric key: Text
	// holds its spelling.
	StaticName NameKind = iota
	// PrivateName is a class private member name ("#x"): Text holds the
	// name without the leading "#".
	PrivateName
	// ComputedName is a bracketed key ("[expr]"): Expression holds the
	// key expression.
	ComputedName
)

// Name is the key of a member access, object property, or class element.
type Name struct {
	Kind       NameKind
	Text       string
	Expression Expression
}
