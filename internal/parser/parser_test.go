package parser

import (
	"testing"

	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
)

func mustParse(t *testing.T, src string, opts ...Option) *ast.Program {
	t.Helper()
	program, err := Parse(src, opts...)
	if err != nil {
		t.Fatalf("parsing %q: unexpected error: %v", src, err)
	}
	return program
}

func mustFail(t *testing.T, src string, opts ...Option) *errors.ParseError {
	t.Helper()
	_, err := Parse(src, opts...)
	if err == nil {
		t.Fatalf("parsing %q: expected an error, got none", src)
	}
	parseErr, ok := err.(*errors.ParseError)
	if !ok {
		t.Fatalf("parsing %q: error is %T, want *errors.ParseError", src, err)
	}
	return parseErr
}

func singleExprStatement(t *testing.T, program *ast.Program) ast.Expression {
	t.Helper()
	if len(program.Body) != 1 {
		t.Fatalf("program has %d statements, want 1", len(program.Body))
	}
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Body[0])
	}
	return stmt.Expression
}

func TestIntegerAndFloatLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5;", 5},
		{"0;", 0},
		{"3.14;", 3.14},
		{"0x2A;", 42},
		{"1_000_000;", 1000000},
		{"0.1;", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			expr := singleExprStatement(t, program)
			lit, ok := expr.(*ast.NumberLiteral)
			if !ok {
				t.Fatalf("expression is %T, want *ast.NumberLiteral", expr)
			}
			if lit.Value != tt.want {
				t.Errorf("got %v, want %v", lit.Value, tt.want)
			}
		})
	}
}

func TestBigIntLiteralExpression(t *testing.T) {
	program := mustParse(t, "1_000_000_000n;")
	expr := singleExprStatement(t, program)
	lit, ok := expr.(*ast.BigIntLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.BigIntLiteral", expr)
	}
	if lit.Value.DecimalString() != "1000000000" {
		t.Errorf("got %s, want 1000000000", lit.Value.DecimalString())
	}
}

func TestBinaryPrecedence(t *testing.T) {
	program := mustParse(t, "1 + 2 * 3;")
	expr := singleExprStatement(t, program)
	add, ok := expr.(*ast.BinaryOpExpression)
	if !ok || add.Op != ast.Addition {
		t.Fatalf("top node is %#v, want Addition", expr)
	}
	left, ok := add.Left.(*ast.NumberLiteral)
	if !ok || left.Value != 1 {
		t.Fatalf("left is %#v, want NumberLiteral(1)", add.Left)
	}
	right, ok := add.Right.(*ast.BinaryOpExpression)
	if !ok || right.Op != ast.Multiplication {
		t.Fatalf("right is %#v, want Multiplication", add.Right)
	}
}

func TestExponentiationRightAssociative(t *testing.T) {
	program := mustParse(t, "2 ** 3 ** 2;")
	expr := singleExprStatement(t, program)
	top, ok := expr.(*ast.BinaryOpExpression)
	if !ok || top.Op != ast.Exponentiation {
		t.Fatalf("top is %#v, want Exponentiation", expr)
	}
	left, ok := top.Left.(*ast.NumberLiteral)
	if !ok || left.Value != 2 {
		t.Fatalf("left should be the literal 2, got %#v", top.Left)
	}
	if _, ok := top.Right.(*ast.BinaryOpExpression); !ok {
		t.Fatalf("right should itself be an exponentiation, got %#v", top.Right)
	}
}

func TestAssignmentOperators(t *testing.T) {
	tests := []struct {
		input string
		op    ast.AssignmentOp
	}{
		{"a = b;", ast.Assignment},
		{"a += b;", ast.AdditionAssign},
		{"a **= b;", ast.ExponentiationAssign},
		{"a ??= b;", ast.CoalesceAssign},
		{"a >>>= b;", ast.UnsignedRightShiftAssign},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			expr := singleExprStatement(t, program)
			assign, ok := expr.(*ast.AssignmentOpExpression)
			if !ok {
				t.Fatalf("expression is %T, want *ast.AssignmentOpExpression", expr)
			}
			if assign.Op != tt.op {
				t.Errorf("got op %v, want %v", assign.Op, tt.op)
			}
		})
	}
}

func TestConditionalExpression(t *testing.T) {
	program := mustParse(t, "a ? b : c;")
	expr := singleExprStatement(t, program)
	cond, ok := expr.(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.ConditionalExpression", expr)
	}
	if _, ok := cond.Consequent.(*ast.Identifier); !ok {
		t.Errorf("consequent is %T, want *ast.Identifier", cond.Consequent)
	}
}

func TestArrowFunctionVariants(t *testing.T) {
	tests := []struct {
		input string
		async bool
	}{
		{"(a, b) => a + b;", false},
		{"async (a, b) => a + b;", true},
		{"x => x;", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			expr := singleExprStatement(t, program)
			arrow, ok := expr.(*ast.ArrowFunctionDefinition)
			if !ok {
				t.Fatalf("expression is %T, want *ast.ArrowFunctionDefinition", expr)
			}
			if arrow.Async != tt.async {
				t.Errorf("got Async=%v, want %v", arrow.Async, tt.async)
			}
		})
	}
}

// A line terminator between the arrow function's parameter list and "=>"
// makes "=>" an illegal continuation: no-line-terminator-here applies.
func TestArrowFunctionRejectsLineTerminatorBeforeArrow(t *testing.T) {
	mustFail(t, "(a, b)\n=> a + b;")
}

func TestArrowConciseBodyIsImplicitReturn(t *testing.T) {
	program := mustParse(t, "x => x + 1;")
	expr := singleExprStatement(t, program)
	arrow := expr.(*ast.ArrowFunctionDefinition)
	if len(arrow.Body) != 1 {
		t.Fatalf("arrow body has %d statements, want 1", len(arrow.Body))
	}
	ret, ok := arrow.Body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("arrow body statement is %T, want *ast.ReturnStatement", arrow.Body[0])
	}
	if ret.Argument == nil {
		t.Errorf("implicit return should carry the concise body expression")
	}
}

func TestTemplateLiteralStructure(t *testing.T) {
	program := mustParse(t, "`a${1}b${2}c`;")
	expr := singleExprStatement(t, program)
	tmpl, ok := expr.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.TemplateLiteral", expr)
	}
	wantStrings := []string{"a", "b", "c"}
	if len(tmpl.Strings) != len(wantStrings) {
		t.Fatalf("got %d strings, want %d", len(tmpl.Strings), len(wantStrings))
	}
	for i, s := range wantStrings {
		if tmpl.Strings[i] != s {
			t.Errorf("strings[%d] = %q, want %q", i, tmpl.Strings[i], s)
		}
	}
	if len(tmpl.Substitutions) != 2 {
		t.Fatalf("got %d substitutions, want 2", len(tmpl.Substitutions))
	}
}

// A tagged template tolerates an invalid escape in a cooked segment (it
// surfaces as a nil Strings entry); the same escape in an untagged
// template is a hard parse error.
func TestTaggedTemplateToleratesInvalidEscape(t *testing.T) {
	program := mustParse(t, "tag`a\\unicode`;")
	expr := singleExprStatement(t, program)
	tagged, ok := expr.(*ast.TaggedTemplateLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.TaggedTemplateLiteral", expr)
	}
	if tagged.Strings[0] != nil {
		t.Errorf("expected a nil cooked string for the invalid escape, got %q", *tagged.Strings[0])
	}
}

func TestUntaggedTemplateInvalidEscapeIsError(t *testing.T) {
	mustFail(t, "`a\\unicode`;")
}

func TestNewExpressionCover(t *testing.T) {
	program := mustParse(t, "new Foo.Bar(1, 2).baz;")
	expr := singleExprStatement(t, program)
	if _, ok := expr.(*ast.MemberExpression); !ok {
		t.Fatalf("expression is %T, want *ast.MemberExpression (new with call becomes a MemberExpression)", expr)
	}
}

func TestNewWithoutParenthesesForbidsPostfix(t *testing.T) {
	program := mustParse(t, "new Foo.Bar;")
	expr := singleExprStatement(t, program)
	if _, ok := expr.(*ast.NewExpression); !ok {
		t.Fatalf("expression is %T, want *ast.NewExpression", expr)
	}
}

func TestOptionalChaining(t *testing.T) {
	program := mustParse(t, "a?.b?.[c]?.(d);")
	expr := singleExprStatement(t, program)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("top expression is %T, want *ast.CallExpression", expr)
	}
	if !call.Optional {
		t.Errorf("call should be optional")
	}
}

func TestNewTargetAndImportMeta(t *testing.T) {
	mustParse(t, "function f() { return new.target; }")
	mustParse(t, "import.meta;", WithSourceType(ast.ModuleSource))
}

func TestPrivateNameInExpression(t *testing.T) {
	program := mustParse(t, "class C { #x = 1; static #y() { return this.#x; } }")
	stmt, ok := program.Body[0].(*ast.ClassDeclarationStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ClassDeclarationStatement", program.Body[0])
	}
	if len(stmt.Definition.Body) != 2 {
		t.Fatalf("class has %d elements, want 2", len(stmt.Definition.Body))
	}
	field, ok := stmt.Definition.Body[0].(*ast.ClassField)
	if !ok {
		t.Fatalf("first element is %T, want *ast.ClassField", stmt.Definition.Body[0])
	}
	if field.Name.Kind != ast.PrivateName || field.Name.Text != "x" {
		t.Errorf("got name %#v, want private x", field.Name)
	}
	method, ok := stmt.Definition.Body[1].(*ast.ClassMethod)
	if !ok {
		t.Fatalf("second element is %T, want *ast.ClassMethod", stmt.Definition.Body[1])
	}
	if !method.Static || method.Name.Kind != ast.PrivateName || method.Name.Text != "y" {
		t.Errorf("got %#v, want static private y", method)
	}
}

func TestPrivateInRelational(t *testing.T) {
	mustParse(t, "class C { #x; m(o) { return #x in o; } }")
}

func TestClassWithHeritage(t *testing.T) {
	program := mustParse(t, "class C extends B {}")
	stmt := program.Body[0].(*ast.ClassDeclarationStatement)
	if _, ok := stmt.Definition.Heritage.(*ast.Identifier); !ok {
		t.Fatalf("heritage is %T, want *ast.Identifier", stmt.Definition.Heritage)
	}
}

func TestClassStaticBlock(t *testing.T) {
	program := mustParse(t, "class C { static { x = 1; } }")
	stmt := program.Body[0].(*ast.ClassDeclarationStatement)
	if _, ok := stmt.Definition.Body[0].(*ast.ClassStaticBlock); !ok {
		t.Fatalf("element is %T, want *ast.ClassStaticBlock", stmt.Definition.Body[0])
	}
}

func TestObjectLiteralVariants(t *testing.T) {
	program := mustParse(t, `({a, b: 1, [c]: 2, m() {}, get g() { return 1; }, ...rest});`)
	expr := singleExprStatement(t, program)
	group, ok := expr.(*ast.GroupExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.GroupExpression", expr)
	}
	obj, ok := group.Expression.(*ast.ObjectExpression)
	if !ok {
		t.Fatalf("group contents is %T, want *ast.ObjectExpression", group.Expression)
	}
	if len(obj.Properties) != 6 {
		t.Fatalf("got %d properties, want 6", len(obj.Properties))
	}
}

func TestArrayLiteralElisionAndSpread(t *testing.T) {
	program := mustParse(t, "[1, , ...rest];")
	expr := singleExprStatement(t, program)
	arr, ok := expr.(*ast.ArrayExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.ArrayExpression", expr)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr.Elements))
	}
	if !arr.Elements[1].Elision {
		t.Errorf("element 1 should be an elision")
	}
	if !arr.Elements[2].Spread {
		t.Errorf("element 2 should be a spread")
	}
}

func TestVariableDeclarationKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.VariableKind
	}{
		{"var x;", ast.VarKind},
		{"let x;", ast.LetKind},
		{"const x = 1;", ast.ConstKind},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			stmt, ok := program.Body[0].(*ast.VariableStatement)
			if !ok {
				t.Fatalf("statement is %T, want *ast.VariableStatement", program.Body[0])
			}
			if stmt.Kind != tt.kind {
				t.Errorf("got kind %v, want %v", stmt.Kind, tt.kind)
			}
		})
	}
}

func TestConstWithoutInitializerIsError(t *testing.T) {
	mustFail(t, "const x;")
}

func TestVarDestructuringRequiresInitializer(t *testing.T) {
	mustFail(t, "var [a];")
	mustParse(t, "var [a] = [1];")
}

// A bare "let" (not followed by an identifier/"["/"{") is an identifier
// reference, not the start of a lexical declaration.
func TestBareLetIsIdentifierReference(t *testing.T) {
	program := mustParse(t, "let;")
	expr := singleExprStatement(t, program)
	if _, ok := expr.(*ast.Identifier); !ok {
		t.Fatalf("expression is %T, want *ast.Identifier", expr)
	}
}

func TestIfElseStatement(t *testing.T) {
	program := mustParse(t, "if (a) b; else c;")
	stmt := program.Body[0].(*ast.IfStatement)
	if stmt.Alternate == nil {
		t.Fatalf("expected an alternate branch")
	}
}

func TestWhileAndDoWhile(t *testing.T) {
	mustParse(t, "while (a) b;")
	mustParse(t, "do a; while (b)")
	mustParse(t, "do a; while (b);")
}

func TestClassicForStatement(t *testing.T) {
	program := mustParse(t, "for (let i = 0; i < 10; i++) { x; }")
	stmt, ok := program.Body[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForStatement", program.Body[0])
	}
	if _, ok := stmt.Init.(ast.ForInitVariableDeclaration); !ok {
		t.Fatalf("init is %#v, want ForInitVariableDeclaration", stmt.Init)
	}
}

func TestForInStatement(t *testing.T) {
	program := mustParse(t, "for (const k in obj) { x; }")
	if _, ok := program.Body[0].(*ast.ForInStatement); !ok {
		t.Fatalf("statement is %T, want *ast.ForInStatement", program.Body[0])
	}
}

func TestForOfStatement(t *testing.T) {
	program := mustParse(t, "for (const v of iterable) { x; }")
	stmt, ok := program.Body[0].(*ast.ForOfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForOfStatement", program.Body[0])
	}
	if stmt.Await {
		t.Errorf("plain for-of should not be await")
	}
}

func TestForAwaitOf(t *testing.T) {
	program := mustParse(t, "async function f() { for await (const v of iterable) { x; } }")
	fn := program.Body[0].(*ast.FunctionDeclarationStatement)
	forOf := fn.Definition.Body[0].(*ast.ForOfStatement)
	if !forOf.Await {
		t.Errorf("expected Await=true for \"for await\"")
	}
}

func TestForEmptyClauses(t *testing.T) {
	mustParse(t, "for (;;) { break; }")
}

func TestTryStatementVariants(t *testing.T) {
	mustParse(t, "try { a; } catch (e) { b; }")
	mustParse(t, "try { a; } catch { b; }")
	mustParse(t, "try { a; } finally { b; }")
	mustParse(t, "try { a; } catch (e) { b; } finally { c; }")
}

func TestTryRequiresCatchOrFinally(t *testing.T) {
	mustFail(t, "try { a; }")
}

func TestSwitchStatement(t *testing.T) {
	program := mustParse(t, "switch (x) { case 1: a; break; default: b; }")
	stmt := program.Body[0].(*ast.SwitchStatement)
	if len(stmt.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(stmt.Cases))
	}
	if stmt.Cases[1].Test != nil {
		t.Errorf("default case should have a nil Test")
	}
}

func TestLabelledStatementAndBreak(t *testing.T) {
	program := mustParse(t, "outer: while (a) { break outer; }")
	label, ok := program.Body[0].(*ast.LabelStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LabelStatement", program.Body[0])
	}
	if label.Label != "outer" {
		t.Errorf("got label %q, want outer", label.Label)
	}
}

// continue/break read a label only when it sits on the same line; a line
// terminator before the next token means the label is absent (ASI boundary).
func TestBreakLabelAbsentAcrossLineTerminator(t *testing.T) {
	program := mustParse(t, "while (a) {\n  break\n  outer;\n}")
	whileStmt := program.Body[0].(*ast.WhileStatement)
	block := whileStmt.Body.(*ast.BlockStatement)
	brk, ok := block.Body[0].(*ast.BreakStatement)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.BreakStatement", block.Body[0])
	}
	if brk.Label != nil {
		t.Errorf("expected no label across the line terminator, got %q", *brk.Label)
	}
}

func TestReturnNoLineTerminator(t *testing.T) {
	program := mustParse(t, "function f() { return\n1; }")
	fn := program.Body[0].(*ast.FunctionDeclarationStatement)
	ret := fn.Definition.Body[0].(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Errorf("a line terminator after return should yield a bare return")
	}
}

func TestThrowWithLineTerminatorIsError(t *testing.T) {
	mustFail(t, "throw\n1;")
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	// No semicolon before "}" or EOF is fine.
	mustParse(t, "{ a }")
	mustParse(t, "a")
	// A newline before the next statement also inserts one.
	mustParse(t, "a\nb")
}

func TestWithStatementNonStrict(t *testing.T) {
	mustParse(t, "with (obj) { x; }")
}

func TestWithStatementRejectedInStrictMode(t *testing.T) {
	mustFail(t, "with (obj) { x; }", WithStrictMode(true))
	mustFail(t, "with (obj) { x; }", WithSourceType(ast.ModuleSource))
}

func TestFunctionDeclarationVariants(t *testing.T) {
	mustParse(t, "function f() {}")
	mustParse(t, "function* g() {}")
	mustParse(t, "async function f() {}")
	mustParse(t, "async function* g() {}")
}

func TestRestAndDefaultParameters(t *testing.T) {
	program := mustParse(t, "function f(a, b = 1, ...rest) {}")
	fn := program.Body[0].(*ast.FunctionDeclarationStatement)
	params := fn.Definition.Parameters
	if len(params.Bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(params.Bindings))
	}
	if params.Rest == nil {
		t.Fatalf("expected a rest parameter")
	}
}

func TestYieldAndAwaitCovers(t *testing.T) {
	mustParse(t, "function* g() { yield 1; }")
	mustParse(t, "function* g() { yield; }")
	mustParse(t, "async function f() { await x; }")
	// Outside of a generator/async function, "yield"/"await" are plain
	// identifiers.
	mustParse(t, "var yield = 1;")
	mustParse(t, "var await = 1;")
}

func TestModuleTopLevelAwaitReserved(t *testing.T) {
	mustFail(t, "var await = 1;", WithSourceType(ast.ModuleSource))
}

func TestContextualKeywordsAsIdentifiers(t *testing.T) {
	names := []string{"async", "get", "set", "static", "of", "let", "target", "meta"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			mustParse(t, name+" = 1;")
		})
	}
}

func TestSequenceExpression(t *testing.T) {
	program := mustParse(t, "a, b, c;")
	expr := singleExprStatement(t, program)
	seq, ok := expr.(*ast.SequenceExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.SequenceExpression", expr)
	}
	if len(seq.Expressions) != 3 {
		t.Fatalf("got %d expressions, want 3", len(seq.Expressions))
	}
}

func TestGroupedExpressionExample(t *testing.T) {
	program := mustParse(t, "(0.1 + 0.2).toString();")
	expr := singleExprStatement(t, program)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("top expression is %T, want *ast.CallExpression", expr)
	}
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("callee is %T, want *ast.MemberExpression", call.Callee)
	}
	group, ok := member.Object.(*ast.GroupExpression)
	if !ok {
		t.Fatalf("member object is %T, want *ast.GroupExpression", member.Object)
	}
	binary, ok := group.Expression.(*ast.BinaryOpExpression)
	if !ok || binary.Op != ast.Addition {
		t.Fatalf("group contents is %#v, want an Addition", group.Expression)
	}
	left := binary.Left.(*ast.NumberLiteral)
	if left.Value != 0.1 {
		t.Errorf("left literal round-trips to %v, want exactly 0.1", left.Value)
	}
}

func TestHexFloatIsSyntaxError(t *testing.T) {
	mustFail(t, "var x = 0x1p3;")
}

func TestBindingPatterns(t *testing.T) {
	mustParse(t, "var [a, , b = 1, ...rest] = arr;")
	mustParse(t, "var {a, b: c, ...rest} = obj;")
	mustParse(t, "function f({a, b = 1}, [c, d]) {}")
}

func TestShorthandPropertyMustBeIdentifier(t *testing.T) {
	mustParse(t, "({a});")
	mustFail(t, `({"a"});`)
}

func TestSuperInClassMethod(t *testing.T) {
	mustParse(t, "class C extends B { m() { return super.m(); } }")
}

func TestComputedMemberAndCall(t *testing.T) {
	program := mustParse(t, "a[b](c, ...d);")
	expr := singleExprStatement(t, program)
	call := expr.(*ast.CallExpression)
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(call.Arguments))
	}
	if !call.Arguments[1].Spread {
		t.Errorf("second argument should be a spread")
	}
}

func TestErrorCarriesPositionAndCode(t *testing.T) {
	err := mustFail(t, "const x;")
	if err.Code != errors.SyntaxError {
		t.Errorf("got code %v, want SyntaxError", err.Code)
	}
	if err.Pos.Line == 0 {
		t.Errorf("expected a non-zero line number")
	}
}

func TestStrictModeOctalLiteralRejected(t *testing.T) {
	mustFail(t, "010;", WithStrictMode(true))
	mustParse(t, "010;")
}

func TestUnaryAndUpdateExpressions(t *testing.T) {
	program := mustParse(t, "typeof x;")
	expr := singleExprStatement(t, program)
	un, ok := expr.(*ast.UnaryOpExpression)
	if !ok || un.Op != ast.TypeofOp {
		t.Fatalf("got %#v, want UnaryOpExpression(TypeofOp)", expr)
	}

	program = mustParse(t, "x++;")
	expr = singleExprStatement(t, program)
	if _, ok := expr.(*ast.UnaryOpExpression); !ok {
		t.Fatalf("postfix update is %T, want *ast.UnaryOpExpression", expr)
	}
}

func TestNullishCoalescingCover(t *testing.T) {
	program := mustParse(t, "a ?? b;")
	expr := singleExprStatement(t, program)
	bin, ok := expr.(*ast.BinaryOpExpression)
	if !ok || bin.Op != ast.Coalesce {
		t.Fatalf("got %#v, want BinaryOpExpression(NullishCoalescing)", expr)
	}
}

// Mixing "??" directly with "&&"/"||" without parentheses is disallowed by
// the grammar's logical-or-with-coalesce cover.
func TestNullishCoalescingCannotMixWithLogical(t *testing.T) {
	mustFail(t, "a ?? b || c;")
	mustParse(t, "(a ?? b) || c;")
}
