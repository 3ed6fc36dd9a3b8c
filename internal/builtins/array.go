package builtins

import "github.com/LandaMm/PL-interpreter/internal/runtime"

// ArrayMethods synthesizes the method object member access returns for an
// Array receiver (§4.5): get(i), merge(…), and the length field. Instance
// methods declared on a user-visible `Array` class (§4.5.1) are merged onto
// the returned object by the caller, not here — this function only builds
// the primitive surface.
func ArrayMethods(arr *runtime.Array) *runtime.Object {
	obj := runtime.NewObject()
	obj.Set("length", runtime.Integer(arr.Len()))
	obj.Set("get", runtime.NewNativeFn("get", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NullValue, nil
		}
		idx, ok := args[0].(runtime.Integer)
		if !ok {
			return runtime.NullValue, nil
		}
		v, ok := arr.Get(int(idx))
		if !ok {
			return runtime.NullValue, nil
		}
		return v, nil
	}))
	obj.Set("merge", runtime.NewNativeFn("merge", func(args []runtime.Value) (runtime.Value, error) {
		merged := make([]runtime.Value, 0, arr.Len())
		merged = append(merged, arr.Items...)
		for _, a := range args {
			if other, ok := a.(*runtime.Array); ok {
				merged = append(merged, other.Items...)
				continue
			}
			merged = append(merged, a)
		}
		return runtime.NewArray(merged), nil
	}))
	return obj
}
