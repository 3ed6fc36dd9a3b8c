package builtins

import "github.com/LandaMm/PL-interpreter/internal/runtime"

// NewTypeOf returns the `type_of` NativeFn: a total function over every
// value kind, returning one of the closed set of type-name strings (§4.6).
func NewTypeOf() *runtime.NativeFn {
	return runtime.NewNativeFn("type_of", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.String(runtime.KindNull.TypeOfName()), nil
		}
		return runtime.String(args[0].Kind().TypeOfName()), nil
	})
}
