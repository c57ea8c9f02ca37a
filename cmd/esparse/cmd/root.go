// Package cmd implements the esparse command-line driver: a thin wrapper
// around internal/parser and internal/lexer that reads source text and
// reports the parsed tree or the first error.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "esparse",
	Short: "ECMAScript source parser",
	Long: `esparse parses ECMAScript source text into an abstract syntax tree.

It implements the tokenizer and recursive-descent grammar engine for the
core expression and statement grammar, binding patterns, classes and
functions, template literals, and the numeric-literal pipeline (binary,
octal, hex, decimal, BigInt, and radix-aware float-to-string rendering).

It is a parser only: no semantic analysis, evaluation, or code generation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("module", false, "parse as a Module (implies strict mode) instead of a Script")
	rootCmd.PersistentFlags().Bool("strict", false, "parse in strict mode")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
