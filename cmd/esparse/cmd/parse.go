package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ECMAScript source code and report the result",
	Long: `Parse ECMAScript source code into an abstract syntax tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression or statement from the command line.
Use --dump-ast to show the full tree structure; otherwise only the
statement count is reported on success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse source from the command line instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, file, err := readParseInput(cmd, args)
	if err != nil {
		return err
	}

	module, _ := cmd.Flags().GetBool("module")
	strict, _ := cmd.Flags().GetBool("strict")

	sourceType := ast.ScriptSource
	if module {
		sourceType = ast.ModuleSource
	}

	program, err := parser.Parse(input,
		parser.WithSourceType(sourceType),
		parser.WithStrictMode(strict),
		parser.WithFile(file),
	)
	if err != nil {
		if parseErr, ok := err.(*errors.ParseError); ok {
			fmt.Fprintln(os.Stderr, parseErr.Format(!color.NoColor))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
		return nil
	}

	fmt.Printf("parsed %d top-level statement(s)\n", len(program.Body))
	return nil
}

func readParseInput(cmd *cobra.Command, args []string) (input, file string, err error) {
	if parseExpression {
		if len(args) == 0 {
			return "", "", fmt.Errorf("no expression provided")
		}
		return args[0], "<expression>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// dumpASTNode prints a readable indented rendering of the most common node
// kinds; less common nodes fall back to their Go type name so the dumper
// never has to track down every variant as the grammar grows.
func dumpASTNode(node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%s, %d statements)\n", pad, sourceTypeName(n.SourceType), len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", pad, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", pad)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Consequent, indent+1)
		if n.Alternate != nil {
			dumpASTNode(n.Alternate, indent+1)
		}
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", pad)
		if n.Argument != nil {
			dumpASTNode(n.Argument, indent+1)
		}
	case *ast.VariableStatement:
		fmt.Printf("%sVariableStatement (%s, %d declarations)\n", pad, n.Kind, len(n.Declarations))
	case *ast.BinaryOpExpression:
		fmt.Printf("%sBinaryOpExpression (%s)\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.AssignmentOpExpression:
		fmt.Printf("%sAssignmentOpExpression (%s)\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOpExpression:
		fmt.Printf("%sUnaryOpExpression (%s)\n", pad, n.Op)
		dumpASTNode(n.Argument, indent+1)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %v\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", pad, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", pad)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}

func sourceTypeName(t ast.SourceType) string {
	if t == ast.ModuleSource {
		return "Module"
	}
	return "Script"
}
