package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// StringMethods synthesizes the method object member access returns for a
// String receiver (§4.5): get, concat, substr, upper, lower, trim family,
// replace, split, join, and the length field. Indexing and length operate
// on code points (runes), not bytes, satisfying invariant 7. upper/lower
// use golang.org/x/text/cases instead of strings.ToUpper/ToLower so that
// scripts outside ASCII fold correctly; trim/replace normalize to NFC via
// golang.org/x/text/unicode/norm first so visually-identical but
// differently-composed inputs compare and match as expected.
func StringMethods(s runtime.String) *runtime.Object {
	raw := string(s)
	runes := []rune(raw)
	obj := runtime.NewObject()
	obj.Set("length", runtime.Integer(len(runes)))

	obj.Set("get", runtime.NewNativeFn("get", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NullValue, nil
		}
		idx, ok := args[0].(runtime.Integer)
		if !ok || idx < 0 || int(idx) >= len(runes) {
			return runtime.NullValue, nil
		}
		return runtime.String(string(runes[idx])), nil
	}))

	obj.Set("concat", runtime.NewNativeFn("concat", func(args []runtime.Value) (runtime.Value, error) {
		var buf strings.Builder
		buf.WriteString(raw)
		for _, a := range args {
			as, ok := a.(runtime.String)
			if !ok {
				return nil, runtime.NewError(runtime.UnsupportedValue, "concat: expected string argument, got %s", a.Kind())
			}
			buf.WriteString(string(as))
		}
		return runtime.String(buf.String()), nil
	}))

	obj.Set("substr", runtime.NewNativeFn("substr", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NullValue, nil
		}
		skip, ok := args[0].(runtime.Integer)
		if !ok {
			return runtime.NullValue, nil
		}
		start := int(skip)
		if start < 0 || start > len(runes) {
			return runtime.NullValue, nil
		}
		end := len(runes)
		if len(args) > 1 {
			take, ok := args[1].(runtime.Integer)
			if !ok {
				return runtime.NullValue, nil
			}
			if take < 0 {
				end = len(runes) + int(take)
			} else {
				end = start + int(take)
			}
			if end > len(runes) {
				end = len(runes)
			}
			if end < start {
				end = start
			}
		}
		return runtime.String(string(runes[start:end])), nil
	}))

	obj.Set("upper", runtime.NewNativeFn("upper", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.String(upperCaser.String(raw)), nil
	}))
	obj.Set("lower", runtime.NewNativeFn("lower", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.String(lowerCaser.String(raw)), nil
	}))

	obj.Set("trim", runtime.NewNativeFn("trim", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.TrimSpace(norm.NFC.String(raw))), nil
	}))
	obj.Set("trim_start", runtime.NewNativeFn("trim_start", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.TrimLeft(norm.NFC.String(raw), " \t\n\r")), nil
	}))
	obj.Set("trim_end", runtime.NewNativeFn("trim_end", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.TrimRight(norm.NFC.String(raw), " \t\n\r")), nil
	}))

	obj.Set("replace", runtime.NewNativeFn("replace", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 {
			return nil, runtime.NewError(runtime.InvalidParameterCount, "replace expects 2 arguments, got %d", len(args))
		}
		find, ok1 := args[0].(runtime.String)
		rep, ok2 := args[1].(runtime.String)
		if !ok1 || !ok2 {
			return nil, runtime.NewError(runtime.UnsupportedValue, "replace expects string arguments")
		}
		normalized := norm.NFC.String(raw)
		return runtime.String(strings.ReplaceAll(normalized, norm.NFC.String(string(find)), string(rep))), nil
	}))

	obj.Set("split", runtime.NewNativeFn("split", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, runtime.NewError(runtime.InvalidParameterCount, "split expects 1 argument, got 0")
		}
		sep, ok := args[0].(runtime.String)
		if !ok {
			return nil, runtime.NewError(runtime.UnsupportedValue, "split expects a string separator")
		}
		parts := strings.Split(raw, string(sep))
		items := make([]runtime.Value, 0, len(parts))
		for _, p := range parts {
			items = append(items, runtime.String(p))
		}
		return runtime.NewArray(items), nil
	}))

	obj.Set("join", runtime.NewNativeFn("join", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, runtime.NewError(runtime.InvalidParameterCount, "join expects 1 argument, got 0")
		}
		arr, ok := args[0].(*runtime.Array)
		if !ok {
			return nil, runtime.NewError(runtime.UnsupportedValue, "join expects an array")
		}
		parts := make([]string, arr.Len())
		for i := range parts {
			v, _ := arr.Get(i)
			parts[i] = Display(v)
		}
		return runtime.String(strings.Join(parts, raw)), nil
	}))

	return obj
}
