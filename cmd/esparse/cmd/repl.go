package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cwbudde/go-esparse/internal/ast"
	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	replColor   = color.New(color.FgCyan)
	replError   = color.New(color.FgRed)
	replSuccess = color.New(color.FgGreen)

	replModule bool
	replStrict bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse ECMAScript expressions and statements",
	Long: `Start an interactive read-parse-print loop.

Each line entered is parsed independently; on success the top-level
statement count is reported, on failure the parse error is printed and
the loop continues.

Type ".exit" or press Ctrl-D to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replModule, "module", false, "parse each line as a Module")
	replCmd.Flags().BoolVar(&replStrict, "strict", false, "parse each line in strict mode")
}

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("esparse> ")
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	replColor.Println("esparse interactive parser. Type \".exit\" or Ctrl-D to quit.")

	sourceType := ast.ScriptSource
	if replModule {
		sourceType = ast.ModuleSource
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("bye")
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			break
		}

		rl.SaveHistory(line)
		evalReplLine(line, sourceType, replStrict)
	}

	return nil
}

func evalReplLine(line string, sourceType ast.SourceType, strict bool) {
	program, err := parser.Parse(line,
		parser.WithSourceType(sourceType),
		parser.WithStrictMode(strict),
		parser.WithFile("<repl>"),
	)
	if err != nil {
		if parseErr, ok := err.(*errors.ParseError); ok {
			replError.Println(parseErr.Format(!color.NoColor))
		} else {
			replError.Println(err)
		}
		return
	}

	replSuccess.Printf("ok: %d top-level statement(s)\n", len(program.Body))
}
