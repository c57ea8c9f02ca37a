package lexer

import (
	"testing"

	"github.com/cwbudde/go-esparse/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	st := NewState()
	var toks []token.Token
	for {
		tok, err := l.Next(&st)
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EndOfInput {
			break
		}
	}
	return toks
}

func TestPunctuatorsLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
	}{
		{"=", []token.Kind{token.Equals, token.EndOfInput}},
		{"==", []token.Kind{token.DoubleEquals, token.EndOfInput}},
		{"===", []token.Kind{token.TripleEquals, token.EndOfInput}},
		{">>>=", []token.Kind{token.TripleGreaterThanEquals, token.EndOfInput}},
		{"??=", []token.Kind{token.DoubleQuestionMarkEquals, token.EndOfInput}},
		{"**=", []token.Kind{token.DoubleAsteriskEquals, token.EndOfInput}},
		{"?.", []token.Kind{token.QuestionMarkStop, token.EndOfInput}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tt.kinds))
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
				}
			}
		})
	}
}

// "?." followed by a decimal digit must NOT be treated as the optional
// chaining punctuator: "x?.5" needs "?" then the number ".5" so it can
// parse as a conditional whose consequent is a numeric literal.
func TestOptionalChainVsTernaryDigit(t *testing.T) {
	toks := lexAll(t, "x?.5:1")
	want := []token.Kind{
		token.NameToken, token.QuestionMark, token.NumberLiteral, token.Colon, token.NumberLiteral, token.EndOfInput,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d", len(toks), toks, len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestDivisionVsRegexpGoal(t *testing.T) {
	// After an identifier (an expression-ending token), "/" is division.
	toks := lexAll(t, "a / b")
	if toks[1].Kind != token.Solidus {
		t.Fatalf("expected division Solidus, got %s", toks[1].Kind)
	}

	// At the start of an expression, "/" begins a regexp literal.
	toks = lexAll(t, "/abc/g")
	if toks[0].Kind != token.RegExpLiteral {
		t.Fatalf("expected RegExpLiteral, got %s", toks[0].Kind)
	}
	if toks[0].RegExpBody != "abc" || toks[0].RegExpFlags != "g" {
		t.Errorf("got body=%q flags=%q, want body=%q flags=%q", toks[0].RegExpBody, toks[0].RegExpFlags, "abc", "g")
	}
}

func TestKeywordClassification(t *testing.T) {
	toks := lexAll(t, "if while class")
	want := []token.Name{token.If, token.While, token.Class}
	for i, n := range want {
		if toks[i].Kind != token.NameToken {
			t.Fatalf("token %d: got kind %s, want NameToken", i, toks[i].Kind)
		}
		if toks[i].NameValue != n {
			t.Errorf("token %d: got name %v, want %v", i, toks[i].NameValue, n)
		}
	}
}

// An identifier containing a \u escape can never classify as a keyword,
// even when its spelling matches one exactly.
func TestEscapedIdentifierNeverKeyword(t *testing.T) {
	toks := lexAll(t, "\\u0069f")
	if toks[0].Kind != token.NameToken {
		t.Fatalf("got kind %s, want NameToken", toks[0].Kind)
	}
	if toks[0].NameValue != token.Unclassified {
		t.Errorf("got name %v, want Unclassified", toks[0].NameValue)
	}
	if !toks[0].Escaped {
		t.Errorf("expected Escaped=true")
	}
	if toks[0].Text != "if" {
		t.Errorf("got text %q, want %q", toks[0].Text, "if")
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"a\
b"`, "ab"}, // line continuation removes the newline
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if toks[0].Kind != token.StringLiteral {
				t.Fatalf("got kind %s, want StringLiteral", toks[0].Kind)
			}
			if toks[0].StringValue != tt.want {
				t.Errorf("got %q, want %q", toks[0].StringValue, tt.want)
			}
		})
	}
}

func TestStringRejectsRawLineTerminator(t *testing.T) {
	l := New("\"a\nb\"")
	st := NewState()
	if _, err := l.Next(&st); err == nil {
		t.Fatal("expected a syntax error for a raw newline in a string")
	}
}

func TestInvalidUnicodeEscapeOutOfRange(t *testing.T) {
	l := New(`"\u{110000}"`)
	st := NewState()
	if _, err := l.Next(&st); err == nil {
		t.Fatal("expected InvalidUnicode error for out-of-range code point")
	}
}

func TestTemplateNoSubstitution(t *testing.T) {
	toks := lexAll(t, "`hello`")
	if toks[0].Kind != token.NoSubstitutionTemplate {
		t.Fatalf("got kind %s, want NoSubstitutionTemplate", toks[0].Kind)
	}
	if toks[0].Cooked == nil || *toks[0].Cooked != "hello" {
		t.Errorf("got cooked %v, want hello", toks[0].Cooked)
	}
}

func TestTemplateHeadMiddleTail(t *testing.T) {
	l := New("`a${1}b${2}c`")
	st := NewState()

	head, err := l.Next(&st)
	if err != nil || head.Kind != token.TemplateHead {
		t.Fatalf("got %v, err %v, want TemplateHead", head.Kind, err)
	}

	num, err := l.Next(&st)
	if err != nil || num.Kind != token.NumberLiteral {
		t.Fatalf("got %v, err %v, want NumberLiteral", num.Kind, err)
	}

	middle, err := l.Next(&st)
	if err != nil || middle.Kind != token.TemplateMiddle {
		t.Fatalf("got %v, err %v, want TemplateMiddle", middle.Kind, err)
	}

	num2, err := l.Next(&st)
	if err != nil || num2.Kind != token.NumberLiteral {
		t.Fatalf("got %v, err %v, want NumberLiteral", num2.Kind, err)
	}

	tail, err := l.Next(&st)
	if err != nil || tail.Kind != token.TemplateTail {
		t.Fatalf("got %v, err %v, want TemplateTail", tail.Kind, err)
	}
}

// A "}" closing a nested block inside a template substitution must not be
// mistaken for the substitution's own closing brace.
func TestTemplateSubstitutionNestedBraces(t *testing.T) {
	l := New("`x${ {a:1}.a }y`")
	st := NewState()

	var kinds []token.Kind
	for {
		tok, err := l.Next(&st)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EndOfInput {
			break
		}
	}

	want := []token.Kind{
		token.TemplateHead,
		token.LeftCurlyBracket, token.NameToken, token.Colon, token.NumberLiteral, token.RightCurlyBracket,
		token.FullStop, token.NameToken,
		token.TemplateTail,
		token.EndOfInput,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d", len(kinds), kinds, len(want))
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], k)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		radix int
	}{
		{"0", 0, 10},
		{"123", 123, 10},
		{"0b101", 5, 2},
		{"0o17", 15, 8},
		{"0x1F", 31, 16},
		{"1_000_000", 1000000, 10},
		{"3.14", 3.14, 10},
		{"1e3", 1000, 10},
		{"1.5e-2", 0.015, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if toks[0].Kind != token.NumberLiteral {
				t.Fatalf("got kind %s, want NumberLiteral", toks[0].Kind)
			}
			if toks[0].NumberValue != tt.want {
				t.Errorf("got %v, want %v", toks[0].NumberValue, tt.want)
			}
		})
	}
}

func TestBigIntLiteral(t *testing.T) {
	toks := lexAll(t, "123n")
	if toks[0].Kind != token.BigIntLiteral {
		t.Fatalf("got kind %s, want BigIntLiteral", toks[0].Kind)
	}
	if toks[0].BigIntValue.DecimalString() != "123" {
		t.Errorf("got %s, want 123", toks[0].BigIntValue.DecimalString())
	}
}

func TestConsecutiveUnderscoreRejected(t *testing.T) {
	l := New("1__0")
	st := NewState()
	if _, err := l.Next(&st); err == nil {
		t.Fatal("expected a syntax error for a consecutive numeric-literal underscore")
	}
}

func TestNumberFollowedByIdentifierIsSyntaxError(t *testing.T) {
	l := New("3in")
	st := NewState()
	if _, err := l.Next(&st); err == nil {
		t.Fatal("expected a syntax error for a digit immediately followed by an identifier-start")
	}
}

func TestLegacyOctalLiteral(t *testing.T) {
	l := New("010")
	st := NewState()
	tok, err := l.Next(&st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.NumberValue != 8 {
		t.Errorf("got %v, want 8", tok.NumberValue)
	}
}

func TestLegacyOctalLiteralRejectedInStrictMode(t *testing.T) {
	l := New("010", WithStrictMode(true))
	st := NewState()
	if _, err := l.Next(&st); err == nil {
		t.Fatal("expected StrictOctalLiteral error")
	}
}

func TestLineTerminatorFlag(t *testing.T) {
	l := New("a\nb")
	st := NewState()

	first, err := l.Next(&st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.LineTerminatorBefore {
		t.Errorf("first token should not have LineTerminatorBefore set")
	}

	second, err := l.Next(&st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.LineTerminatorBefore {
		t.Errorf("second token should have LineTerminatorBefore set")
	}
}

func TestHashbangOnlyAtStart(t *testing.T) {
	toks := lexAll(t, "#!/usr/bin/env node\nlet x")
	if toks[0].Kind != token.NameToken || toks[0].NameValue != token.Let {
		t.Fatalf("expected hashbang line skipped, got first token %s", toks[0].Kind)
	}
}

func TestPrivateNameHash(t *testing.T) {
	toks := lexAll(t, "#x")
	if toks[0].Kind != token.NumberSign {
		t.Fatalf("got kind %s, want NumberSign", toks[0].Kind)
	}
	if toks[1].Kind != token.NameToken || toks[1].Text != "x" {
		t.Fatalf("got %v %q, want NameToken x", toks[1].Kind, toks[1].Text)
	}
}
