package runtime

import (
	"strings"

	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// Param is a function/method parameter at the runtime level: its name and
// an optional default value. Unlike ast.Param (whose Default is an
// unevaluated expression), the default here has already been evaluated —
// once, at declaration time, in the declaring scope — matching the
// source's pre-evaluated-default behavior for parameters (§4.3).
type Param struct {
	Name       string
	Default    Value
	HasDefault bool
}

// Function is a user-defined function or method value: its parameter list,
// body AST, and the environment it closed over at declaration time. The
// declaration environment — not the call site — is the parent scope used
// on every invocation, giving lexical scoping.
type Function struct {
	Name    string
	Params  []Param
	Body    *ast.BlockStatement
	DeclEnv EnvId
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	names := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		names = append(names, p.Name)
	}
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return "<function " + name + "(" + strings.Join(names, ", ") + ")>"
}

// NativeFunc is the host callable signature a NativeFn wraps: an ordered
// argument list in, a value-or-error out.
type NativeFunc func(args []Value) (Value, error)

// NativeFn wraps a host-language callable as a runtime value, the bridge
// used by every builtin (print, time, type_of, math.*, and the per-primitive
// method objects).
type NativeFn struct {
	Name string
	Fn   NativeFunc
}

func NewNativeFn(name string, fn NativeFunc) *NativeFn {
	return &NativeFn{Name: name, Fn: fn}
}

func (n *NativeFn) Kind() Kind { return KindNativeFn }

func (n *NativeFn) String() string { return "<native-function " + n.Name + ">" }

// Call invokes the wrapped host callable.
func (n *NativeFn) Call(args []Value) (Value, error) {
	return n.Fn(args)
}
