package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

// NewPrint returns the `print` NativeFn, writing to w (the driver passes
// os.Stdout; tests pass a buffer). Arguments are stringified per Display,
// space-joined, written with a trailing newline, and the call itself always
// resolves to Null.
func NewPrint(w io.Writer) *runtime.NativeFn {
	return runtime.NewNativeFn("print", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, Display(a))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return runtime.NullValue, nil
	})
}
