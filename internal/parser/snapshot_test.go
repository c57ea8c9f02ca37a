package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// dumpNode renders a node as an indented outline for snapshotting: pin the
// shape of a parse once and let future changes show up as a diff instead of
// a rewritten assertion.
func dumpNode(sb *strings.Builder, indent int, label string, n any) {
	pad := strings.Repeat("  ", indent)
	switch v := n.(type) {
	case nil:
		fmt.Fprintf(sb, "%s%s: nil\n", pad, label)
	case ast.Statement:
		dumpStatement(sb, indent, label, v)
	case ast.Expression:
		dumpExpression(sb, indent, label, v)
	default:
		fmt.Fprintf(sb, "%s%s: %T\n", pad, label, v)
	}
}

func dumpStatement(sb *strings.Builder, indent int, label string, stmt ast.Statement) {
	pad := strings.Repeat("  ", indent)
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		fmt.Fprintf(sb, "%s%s: ExpressionStatement\n", pad, label)
		dumpNode(sb, indent+1, "Expression", s.Expression)
	case *ast.VariableStatement:
		fmt.Fprintf(sb, "%s%s: VariableStatement(kind=%v, n=%d)\n", pad, label, s.Kind, len(s.Declarations))
	case *ast.IfStatement:
		fmt.Fprintf(sb, "%s%s: IfStatement\n", pad, label)
		dumpNode(sb, indent+1, "Condition", s.Condition)
		dumpNode(sb, indent+1, "Consequent", s.Consequent)
		if s.Alternate != nil {
			dumpNode(sb, indent+1, "Alternate", s.Alternate)
		}
	case *ast.BlockStatement:
		fmt.Fprintf(sb, "%s%s: BlockStatement(n=%d)\n", pad, label, len(s.Body))
		for i, child := range s.Body {
			dumpNode(sb, indent+1, fmt.Sprintf("Body[%d]", i), child)
		}
	case *ast.ReturnStatement:
		fmt.Fprintf(sb, "%s%s: ReturnStatement\n", pad, label)
		if s.Argument != nil {
			dumpNode(sb, indent+1, "Argument", s.Argument)
		}
	case *ast.FunctionDeclarationStatement:
		name := "<anonymous>"
		if s.Definition.Identifier != nil {
			name = *s.Definition.Identifier
		}
		fmt.Fprintf(sb, "%s%s: FunctionDeclarationStatement(name=%s, async=%v, generator=%v)\n",
			pad, label, name, s.Definition.Async, s.Definition.Generator)
	default:
		fmt.Fprintf(sb, "%s%s: %T\n", pad, label, s)
	}
}

func dumpExpression(sb *strings.Builder, indent int, label string, expr ast.Expression) {
	pad := strings.Repeat("  ", indent)
	switch e := expr.(type) {
	case *ast.Identifier:
		fmt.Fprintf(sb, "%s%s: Identifier(%s)\n", pad, label, e.Name)
	case *ast.NumberLiteral:
		fmt.Fprintf(sb, "%s%s: NumberLiteral(%v)\n", pad, label, e.Value)
	case *ast.StringLiteral:
		fmt.Fprintf(sb, "%s%s: StringLiteral(%q)\n", pad, label, e.Value)
	case *ast.BinaryOpExpression:
		fmt.Fprintf(sb, "%s%s: BinaryOpExpression(%v)\n", pad, label, e.Op)
		dumpNode(sb, indent+1, "Left", e.Left)
		dumpNode(sb, indent+1, "Right", e.Right)
	case *ast.AssignmentOpExpression:
		fmt.Fprintf(sb, "%s%s: AssignmentOpExpression(%v)\n", pad, label, e.Op)
		dumpNode(sb, indent+1, "Left", e.Left)
		dumpNode(sb, indent+1, "Right", e.Right)
	case *ast.ConditionalExpression:
		fmt.Fprintf(sb, "%s%s: ConditionalExpression\n", pad, label)
		dumpNode(sb, indent+1, "Condition", e.Condition)
		dumpNode(sb, indent+1, "Consequent", e.Consequent)
		dumpNode(sb, indent+1, "Alternate", e.Alternate)
	case *ast.CallExpression:
		fmt.Fprintf(sb, "%s%s: CallExpression(optional=%v, args=%d)\n", pad, label, e.Optional, len(e.Arguments))
		dumpNode(sb, indent+1, "Callee", e.Callee)
	case *ast.MemberExpression:
		fmt.Fprintf(sb, "%s%s: MemberExpression(computed=%v, optional=%v)\n", pad, label, e.Property.Kind == ast.ComputedName, e.Optional)
		dumpNode(sb, indent+1, "Object", e.Object)
	default:
		fmt.Fprintf(sb, "%s%s: %T\n", pad, label, e)
	}
}

func dumpProgram(t *testing.T, src string) string {
	t.Helper()
	program := mustParse(t, src)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Program(sourceType=%v, n=%d)\n", program.SourceType, len(program.Body))
	for i, stmt := range program.Body {
		dumpNode(&sb, 1, fmt.Sprintf("Body[%d]", i), stmt)
	}
	return sb.String()
}

func TestParseSnapshots(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"binary_precedence", "1 + 2 * 3 - 4 / 2;"},
		{"if_else", "if (a > b) { return a; } else { return b; }"},
		{"conditional_chain", "a ? b : c ? d : e;"},
		{"call_and_member", "obj.method(1, 2).field;"},
		{"function_declaration", "async function* f(a, b) { return a + b; }"},
		{"assignment_chain", "a = b = c + 1;"},
		{"decimal_rounding_example", "(0.1 + 0.2).toString();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, tt.name, dumpProgram(t, tt.src))
		})
	}
}
