package runtime

import "github.com/LandaMm/PL-interpreter/pkg/ast"

// PropertyDef is a class property declaration. Value is the initializer
// expression's result, evaluated once at class-declaration time (matching
// the language's pre-evaluated-default behavior for function parameters,
// §4.3) and then shared by every instance created from this class — a
// mutable Array/Object default is therefore genuinely shared across
// instances, not copied.
type PropertyDef struct {
	Name  string
	Value Value
}

// MethodDef is a class method declaration: its parameters and body. Unlike
// a top-level FunctionDeclaration, a method's Function value is synthesized
// fresh at each instantiation or access site (§4.4, §4.5), so MethodDef
// carries no declaration environment of its own.
type MethodDef struct {
	Name   string
	Params []ast.Param
	Body   *ast.BlockStatement
}

// Class is the runtime value produced by a class declaration: its name, an
// optional early-bound superclass, the instance property/method tables
// (already including shallow-inherited members, §4.4), and independently
// tracked static members.
type Class struct {
	Name  string
	Super *Class

	Properties []PropertyDef
	Methods    map[string]MethodDef // excludes __new__
	Constructor *MethodDef          // __new__, nil if the class has none

	StaticFields  map[string]Value
	StaticMethods map[string]MethodDef
}

// NewClass returns an empty Class named name.
func NewClass(name string, super *Class) *Class {
	return &Class{
		Name:          name,
		Super:         super,
		Methods:       make(map[string]MethodDef),
		StaticFields:  make(map[string]Value),
		StaticMethods: make(map[string]MethodDef),
	}
}

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) String() string { return "<class " + c.Name + ">" }

// Method looks up a non-static method by name, including inherited ones
// (already copied in at declaration time).
func (c *Class) Method(name string) (MethodDef, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// StaticField reads a static property, searching the class only (statics
// are not inherited, §4.4).
func (c *Class) StaticField(name string) (Value, bool) {
	v, ok := c.StaticFields[name]
	return v, ok
}
