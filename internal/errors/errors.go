// Package errors defines the parser's error vocabulary and renders parse
// failures with source context, line/column information, and a caret
// pointing at the offending position.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-esparse/internal/token"
)

// Code classifies a parse failure. SyntaxError is the catch-all; the rest
// name a specific lexical misstep callers may need to distinguish
// (escape sequences, strict-mode octal literals).
type Code int

const (
	SyntaxError Code = iota
	InvalidEscape
	InvalidUnicode
	InvalidTemplateString
	StrictOctalLiteral
	StrictOctalEscape
)

// String renders the code's name, used in diagnostic output.
func (c Code) String() string {
	switch c {
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidUnicode:
		return "InvalidUnicode"
	case InvalidTemplateString:
		return "InvalidTemplateString"
	case StrictOctalLiteral:
		return "StrictOctalLiteral"
	case StrictOctalEscape:
		return "StrictOctalEscape"
	default:
		return "SyntaxError"
	}
}

// ParseError is the single error type the parser ever returns: a code, the
// source position where the production gave up, and enough of the original
// source text to render a caret diagnostic.
type ParseError struct {
	Code    Code
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// New constructs a ParseError at pos with the given code and message.
func New(code Code, pos token.Position, message, source, file string) *ParseError {
	return &ParseError{Code: code, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Format(false)
}

// Format renders the error with a one-line source excerpt and a caret under
// the offending column. If color is true, ANSI color codes are used.
func (e *ParseError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Code, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Code, e.Pos.Line, e.Pos.Column)
	}

	if sourceLine := e.sourceLine(e.Pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *ParseError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// FormatErrors renders a batch of parse errors, one per line of context.
// The parser never actually accumulates more than one (the first failure
// aborts), but a driver aggregating errors from multiple files can use this
// to format them together.
func FormatErrors(errs []*ParseError, color bool) string {
	if len(errs) == 0 {
		return ""
	}

	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "parsing failed with %d error(s):\n\n", len(errs))

	for i, err := range errs {
		fmt.Fprintf(&sb, "[error %d of %d]\n", i+1, len(errs))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
