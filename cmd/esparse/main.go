// Command esparse is the command-line driver for the ECMAScript core
// parser: it reads source text and invokes internal/parser, leaving file
// I/O, CLI plumbing, and diagnostic formatting to this package as the
// spec's scope requires.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-esparse/cmd/esparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
