package builtins

import (
	"time"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

// NewTime returns the `time` NativeFn: current Unix time in milliseconds as
// an Integer, ignoring any arguments.
func NewTime() *runtime.NativeFn {
	return runtime.NewNativeFn("time", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Integer(time.Now().UnixMilli()), nil
	})
}
