package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

func TestBootstrapDeclaresConstants(t *testing.T) {
	store, root := runtime.NewStore()
	var buf bytes.Buffer
	if err := Bootstrap(store, root, &buf); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	for _, name := range []string{"true", "false", "null", "print", "time", "type_of", "math"} {
		if !store.IsConstant(root, name) {
			t.Fatalf("expected %s to be constant", name)
		}
	}
}

func TestPrintJoinsAndStringifies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrint(&buf)
	if _, err := p.Call([]runtime.Value{runtime.Integer(1), runtime.String("a"), runtime.NullValue}); err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := buf.String(); got != "1 a null\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeOfCoversEveryKind(t *testing.T) {
	typeOf := NewTypeOf()
	cases := []struct {
		v    runtime.Value
		want string
	}{
		{runtime.NullValue, "null"},
		{runtime.Boolean(true), "boolean"},
		{runtime.Integer(1), "number"},
		{runtime.Decimal(1.5), "number"},
		{runtime.String("x"), "string"},
		{runtime.NewArray(nil), "array"},
		{runtime.NewObject(), "object"},
		{runtime.NewClass("C", nil), "class"},
		{&runtime.Function{Name: "f"}, "function"},
		{runtime.NewNativeFn("n", nil), "function"},
	}
	for _, c := range cases {
		got, err := typeOf.Call([]runtime.Value{c.v})
		if err != nil {
			t.Fatalf("type_of(%v): %v", c.v, err)
		}
		if got != runtime.String(c.want) {
			t.Fatalf("type_of(%v) = %v, want %s", c.v, got, c.want)
		}
	}
}

func TestStringGetBounds(t *testing.T) {
	methods := StringMethods("hi")
	get, _ := methods.Get("get")
	fn := get.(*runtime.NativeFn)

	v, _ := fn.Call([]runtime.Value{runtime.Integer(0)})
	if v != runtime.String("h") {
		t.Fatalf("get(0) = %v", v)
	}
	v, _ = fn.Call([]runtime.Value{runtime.Integer(5)})
	if v != runtime.NullValue {
		t.Fatalf("expected null out of range, got %v", v)
	}
	v, _ = fn.Call([]runtime.Value{runtime.Integer(-1)})
	if v != runtime.NullValue {
		t.Fatalf("expected null for negative index, got %v", v)
	}
}

func TestStringSubstrNegativeTake(t *testing.T) {
	methods := StringMethods("hello")
	substr, _ := methods.Get("substr")
	fn := substr.(*runtime.NativeFn)
	v, err := fn.Call([]runtime.Value{runtime.Integer(0), runtime.Integer(-2)})
	if err != nil {
		t.Fatalf("substr: %v", err)
	}
	if v != runtime.String("hel") {
		t.Fatalf("got %v, want hel", v)
	}
}

func TestArrayMethods(t *testing.T) {
	arr := runtime.NewArray([]runtime.Value{runtime.Integer(1), runtime.Integer(2)})
	methods := ArrayMethods(arr)
	length, _ := methods.Get("length")
	if length != runtime.Integer(2) {
		t.Fatalf("length = %v", length)
	}
	mergeVal, _ := methods.Get("merge")
	merge := mergeVal.(*runtime.NativeFn)
	other := runtime.NewArray([]runtime.Value{runtime.Integer(3)})
	merged, err := merge.Call([]runtime.Value{other})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	mergedArr := merged.(*runtime.Array)
	if mergedArr.Len() != 3 {
		t.Fatalf("expected merged length 3, got %d", mergedArr.Len())
	}
}

func TestDisplayArrayTruncation(t *testing.T) {
	items := make([]runtime.Value, 12)
	for i := range items {
		items[i] = runtime.Integer(i)
	}
	out := Display(runtime.NewArray(items))
	if !strings.Contains(out, "...more 2 items") {
		t.Fatalf("expected truncation tail, got %q", out)
	}
}

func TestMathPowPreservesInteger(t *testing.T) {
	m := NewMath()
	powVal, _ := m.Get("pow")
	pow := powVal.(*runtime.NativeFn)
	v, err := pow.Call([]runtime.Value{runtime.Integer(2), runtime.Integer(10)})
	if err != nil {
		t.Fatalf("pow: %v", err)
	}
	if v != runtime.Integer(1024) {
		t.Fatalf("got %v, want 1024", v)
	}
}

func TestMathSqrtAlwaysDecimal(t *testing.T) {
	m := NewMath()
	sqrtVal, _ := m.Get("sqrt")
	sqrt := sqrtVal.(*runtime.NativeFn)
	v, err := sqrt.Call([]runtime.Value{runtime.Integer(4)})
	if err != nil {
		t.Fatalf("sqrt: %v", err)
	}
	if _, ok := v.(runtime.Decimal); !ok {
		t.Fatalf("expected Decimal, got %T", v)
	}
}
