package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-esparse/internal/token"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{SyntaxError, "SyntaxError"},
		{InvalidEscape, "InvalidEscape"},
		{InvalidUnicode, "InvalidUnicode"},
		{InvalidTemplateString, "InvalidTemplateString"},
		{StrictOctalLiteral, "StrictOctalLiteral"},
		{StrictOctalEscape, "StrictOctalEscape"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	source := "let x = ;\n"
	err := New(SyntaxError, token.Position{Line: 1, Column: 9}, "unexpected ';'", source, "script.js")

	out := err.Format(false)
	if !strings.Contains(out, "script.js:1:9") {
		t.Errorf("missing file:line:col header, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = ;") {
		t.Errorf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret, got:\n%s", out)
	}
	if !strings.Contains(out, "unexpected ';'") {
		t.Errorf("missing message, got:\n%s", out)
	}
}

func TestFormatWithoutFileOmitsFileHeader(t *testing.T) {
	err := New(SyntaxError, token.Position{Line: 2, Column: 1}, "oops", "a\nb", "")
	out := err.Format(false)
	if strings.Contains(out, " in ") {
		t.Errorf("expected no file clause, got:\n%s", out)
	}
	if !strings.Contains(out, "at line 2:1") {
		t.Errorf("expected line-only header, got:\n%s", out)
	}
}

func TestFormatColorWrapsCaretAndMessage(t *testing.T) {
	err := New(SyntaxError, token.Position{Line: 1, Column: 1}, "bad", "x", "f.js")
	out := err.Format(true)
	if !strings.Contains(out, "\033[1;31m^\033[0m") {
		t.Errorf("expected colored caret, got:\n%s", out)
	}
	if !strings.Contains(out, "\033[1mbad\033[0m") {
		t.Errorf("expected colored message, got:\n%s", out)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(SyntaxError, token.Position{Line: 1, Column: 1}, "bad", "x", "")
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("Error() should include the message, got %q", err.Error())
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestFormatErrorsSingle(t *testing.T) {
	err := New(SyntaxError, token.Position{Line: 1, Column: 1}, "bad", "x", "")
	got := FormatErrors([]*ParseError{err}, false)
	want := err.Format(false)
	if got != want {
		t.Errorf("single-error FormatErrors should delegate to Format, got %q want %q", got, want)
	}
}

func TestFormatErrorsBatch(t *testing.T) {
	e1 := New(SyntaxError, token.Position{Line: 1, Column: 1}, "first", "x", "a.js")
	e2 := New(InvalidEscape, token.Position{Line: 2, Column: 3}, "second", "y\nz", "b.js")
	got := FormatErrors([]*ParseError{e1, e2}, false)
	if !strings.Contains(got, "2 error(s)") {
		t.Errorf("expected an error count header, got:\n%s", got)
	}
	if !strings.Contains(got, "[error 1 of 2]") || !strings.Contains(got, "[error 2 of 2]") {
		t.Errorf("expected per-error headers, got:\n%s", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("expected both messages present, got:\n%s", got)
	}
}

func TestSourceLineOutOfRange(t *testing.T) {
	err := New(SyntaxError, token.Position{Line: 99, Column: 1}, "bad", "a\nb", "f.js")
	out := err.Format(false)
	// No source line or caret should be emitted when the line is out of range.
	if strings.Contains(out, "|") {
		t.Errorf("did not expect a source-line excerpt, got:\n%s", out)
	}
}
