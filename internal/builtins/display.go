// Package builtins implements the native-function bridge and the standard
// library bound into the root environment: print, time, type_of, math, and
// the per-primitive method objects returned by member access on strings,
// numbers, and arrays (§4.6).
package builtins

import (
	"strconv"
	"strings"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

const (
	arrayDisplayLimit  = 10
	objectDisplayLimit = 30
)

// Display renders v the way `print` stringifies it (§6): null/true/false,
// natural decimal text for numerics, verbatim strings, bracketed arrays and
// braced objects with a truncation tail past their display limit, and the
// angle-bracket forms for classes/functions/natives.
func Display(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.Null:
		return "null"
	case runtime.Boolean, runtime.Integer, runtime.Decimal:
		return val.String()
	case runtime.String:
		return string(val)
	case *runtime.Array:
		return displayArray(val)
	case *runtime.Object:
		return displayObject(val)
	case *runtime.Class:
		return val.String()
	case *runtime.Function:
		return val.String()
	case *runtime.NativeFn:
		return val.String()
	default:
		if v == nil {
			return "null"
		}
		return v.String()
	}
}

func displayArray(arr *runtime.Array) string {
	var buf strings.Builder
	buf.WriteByte('[')
	n := arr.Len()
	shown := n
	if shown > arrayDisplayLimit {
		shown = arrayDisplayLimit
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		item, _ := arr.Get(i)
		writeQuoted(&buf, item)
	}
	if n > arrayDisplayLimit {
		buf.WriteString(", ...more ")
		buf.WriteString(strconv.Itoa(n - arrayDisplayLimit))
		buf.WriteString(" items")
	}
	buf.WriteByte(']')
	return buf.String()
}

func displayObject(obj *runtime.Object) string {
	var buf strings.Builder
	buf.WriteByte('{')
	keys := obj.Keys()
	shown := len(keys)
	if shown > objectDisplayLimit {
		shown = objectDisplayLimit
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		k := keys[i]
		v, _ := obj.Get(k)
		buf.WriteString(strconv.Quote(k))
		buf.WriteString(": ")
		writeQuoted(&buf, v)
	}
	if len(keys) > objectDisplayLimit {
		buf.WriteString(", \"...\": \"more ")
		buf.WriteString(strconv.Itoa(len(keys) - objectDisplayLimit))
		buf.WriteString(" fields\"")
	}
	buf.WriteByte('}')
	return buf.String()
}

// writeQuoted renders a nested value for array/object display, quoting
// strings the way the top-level Display does not (print's own top-level
// argument is verbatim, but nested strings inside an array/object literal
// are quoted so the structure is unambiguous).
func writeQuoted(buf *strings.Builder, v runtime.Value) {
	if s, ok := v.(runtime.String); ok {
		buf.WriteString(strconv.Quote(string(s)))
		return
	}
	buf.WriteString(Display(v))
}
