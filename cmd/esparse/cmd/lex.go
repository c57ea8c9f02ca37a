package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-esparse/internal/errors"
	"github.com/cwbudde/go-esparse/internal/lexer"
	"github.com/cwbudde/go-esparse/internal/token"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	lexEval     string
	lexShowPos  bool
	lexShowKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize ECMAScript source and print the resulting tokens",
	Long: `Tokenize ECMAScript source and print the resulting tokens.

This command is useful for debugging the lexer and understanding how a
source text is tokenized, including goal-mode decisions (division vs.
regexp, template-continuation vs. block-close) that depend on the
preceding tokens.

Examples:
  esparse lex script.js
  esparse lex -e "let x = 1 / 2"
  esparse lex --show-kind --show-pos script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string

	if lexEval != "" {
		input = lexEval
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	strict, _ := cmd.Flags().GetBool("strict")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input, lexer.WithStrictMode(strict), lexer.WithFile(filename))
	st := lexer.NewState()

	count := 0
	for {
		tok, err := l.Next(&st)
		if err != nil {
			if parseErr, ok := err.(*errors.ParseError); ok {
				fmt.Fprintln(os.Stderr, parseErr.Format(!color.NoColor))
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return fmt.Errorf("lexing failed after %d token(s)", count)
		}

		printToken(tok)
		count++

		if tok.Kind == token.EndOfInput {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
	}

	return nil
}

func printToken(tok token.Token) {
	var out string

	if lexShowKind {
		out = fmt.Sprintf("[%-22s]", tok.Kind)
	}

	switch tok.Kind {
	case token.EndOfInput:
		out += " EOF"
	case token.NameToken:
		out += fmt.Sprintf(" %s", tok.Text)
	case token.NumberLiteral:
		out += fmt.Sprintf(" %v", tok.NumberValue)
	case token.StringLiteral:
		out += fmt.Sprintf(" %q", tok.StringValue)
	default:
		out += fmt.Sprintf(" %s", tok.Kind)
	}

	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(out)
}
