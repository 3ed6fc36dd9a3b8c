package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/LandaMm/PL-interpreter/internal/builtins"
	srcerrors "github.com/LandaMm/PL-interpreter/internal/errors"
	"github.com/LandaMm/PL-interpreter/internal/evaluator"
	"github.com/LandaMm/PL-interpreter/internal/lexer"
	"github.com/LandaMm/PL-interpreter/internal/parser"
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/spf13/cobra"
)

const defaultScript = "test/main.amr"

var dumpAST bool

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a script file",
	Long: `Execute a script file. If no path is given, runs test/main.amr relative
to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before evaluating")
}

func runScript(_ *cobra.Command, args []string) error {
	path := defaultScript
	if len(args) == 1 {
		path = args[0]
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fatalf("reading %s: %w", path, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", path)
	}

	prog, err := parser.New(lexer.New(string(src))).ParseProgram()
	if err != nil {
		return formatSourceError(err, string(src), path)
	}

	if dumpAST {
		fmt.Println(prog.String())
	}

	store, root := runtime.NewStore()
	if err := builtins.Bootstrap(store, root, os.Stdout); err != nil {
		return fatalf("bootstrapping builtins: %w", err)
	}

	if _, err := evaluator.New(store).RunProgram(prog, root); err != nil {
		return fatalf("%s: %w", path, err)
	}
	return nil
}

// formatSourceError renders a parser.SyntaxError with source context via
// internal/errors, falling back to the plain error for any other error
// type.
func formatSourceError(err error, src, path string) error {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fatalf("%s", srcerrors.New(syntaxErr.Pos, src, path, syntaxErr.Msg).Format())
	}
	return fatalf("%s: %w", path, err)
}
