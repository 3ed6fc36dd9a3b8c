package builtins

import (
	"math"
	"math/rand"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

// NewMath returns the `math` Object: PI, random(), floor, ceil, trunc,
// round, pow(base, exp), sqrt (§4.6). Unary rounding operations preserve
// Integer when the input already is one (rounding an integer is a no-op);
// sqrt always produces Decimal.
func NewMath() *runtime.Object {
	m := runtime.NewObject()
	m.Set("PI", runtime.Decimal(math.Pi))
	m.Set("random", runtime.NewNativeFn("math.random", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Decimal(rand.Float64()), nil
	}))
	m.Set("floor", unaryRound("math.floor", math.Floor))
	m.Set("ceil", unaryRound("math.ceil", math.Ceil))
	m.Set("trunc", unaryRound("math.trunc", math.Trunc))
	m.Set("round", unaryRound("math.round", math.Round))
	m.Set("sqrt", runtime.NewNativeFn("math.sqrt", func(args []runtime.Value) (runtime.Value, error) {
		f, err := numericArg(args, 0, "math.sqrt")
		if err != nil {
			return nil, err
		}
		return runtime.Decimal(math.Sqrt(f)), nil
	}))
	m.Set("pow", runtime.NewNativeFn("math.pow", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 {
			return nil, runtime.NewError(runtime.InvalidParameterCount, "math.pow expects 2 arguments, got %d", len(args))
		}
		base, exp := args[0], args[1]
		if bi, ok := base.(runtime.Integer); ok {
			if ei, ok := exp.(runtime.Integer); ok && ei >= 0 {
				return runtime.Integer(integerPow(int64(bi), int64(ei))), nil
			}
		}
		bf, err := numericArg(args, 0, "math.pow")
		if err != nil {
			return nil, err
		}
		ef, err := numericArg(args, 1, "math.pow")
		if err != nil {
			return nil, err
		}
		return runtime.Decimal(math.Pow(bf, ef)), nil
	}))
	return m
}

func integerPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func unaryRound(name string, f func(float64) float64) *runtime.NativeFn {
	return runtime.NewNativeFn(name, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, runtime.NewError(runtime.InvalidParameterCount, "%s expects 1 argument, got 0", name)
		}
		if i, ok := args[0].(runtime.Integer); ok {
			return i, nil
		}
		v, err := numericArg(args, 0, name)
		if err != nil {
			return nil, err
		}
		return runtime.Decimal(f(v)), nil
	})
}

// numericArg reads args[i] as a float64, accepting both Integer and
// Decimal, failing ValueCastError otherwise.
func numericArg(args []runtime.Value, i int, who string) (float64, error) {
	if i >= len(args) {
		return 0, runtime.NewError(runtime.InvalidParameterCount, "%s expects at least %d argument(s)", who, i+1)
	}
	switch v := args[i].(type) {
	case runtime.Integer:
		return float64(v), nil
	case runtime.Decimal:
		return float64(v), nil
	default:
		return 0, runtime.NewError(runtime.ValueCastError, "%s: expected number, got %s", who, v.Kind())
	}
}
