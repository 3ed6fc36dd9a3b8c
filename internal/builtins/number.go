package builtins

import "github.com/LandaMm/PL-interpreter/internal/runtime"

// NumberMethods synthesizes the method object member access returns for an
// Integer or Decimal receiver (§4.5): abs(). A fresh object is built per
// access; these wrappers are stateless and never cached.
func NumberMethods(v runtime.Value) *runtime.Object {
	obj := runtime.NewObject()
	obj.Set("abs", runtime.NewNativeFn("abs", func(args []runtime.Value) (runtime.Value, error) {
		switch n := v.(type) {
		case runtime.Integer:
			if n < 0 {
				return -n, nil
			}
			return n, nil
		case runtime.Decimal:
			if n < 0 {
				return -n, nil
			}
			return n, nil
		default:
			return nil, runtime.NewError(runtime.UnsupportedValue, "abs() on non-numeric receiver")
		}
	}))
	return obj
}
