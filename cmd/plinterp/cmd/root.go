package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plinterp",
	Short: "A tree-walking interpreter for the language implemented by this module",
	Long: `plinterp runs scripts in a small dynamically-typed language:
closures with lexical scope, single-inheritance classes, and a handful of
primitive builtins (print, math, string/array/number methods).`,
	Version: "0.1.0-dev",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

func fatalf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
