package builtins

import (
	"io"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

// Bootstrap seeds root with the bindings every program starts with (§3):
// true, false, null, print, time, type_of, math, all constant. out is the
// writer `print` sends its output to (os.Stdout for the CLI, a buffer in
// tests).
func Bootstrap(store *runtime.Store, root runtime.EnvId, out io.Writer) error {
	bindings := []struct {
		name  string
		value runtime.Value
	}{
		{"true", runtime.Boolean(true)},
		{"false", runtime.Boolean(false)},
		{"null", runtime.NullValue},
		{"print", NewPrint(out)},
		{"time", NewTime()},
		{"type_of", NewTypeOf()},
		{"math", NewMath()},
	}
	for _, b := range bindings {
		if err := store.Declare(root, b.name, b.value, true); err != nil {
			return err
		}
	}
	return nil
}
