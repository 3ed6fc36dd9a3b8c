// Command plinterp runs scripts written in the toy language implemented by
// this module: lexer, parser, and tree-walking evaluator wired behind a
// small cobra CLI.
package main

import (
	"fmt"
	"os"

	"github.com/LandaMm/PL-interpreter/cmd/plinterp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
