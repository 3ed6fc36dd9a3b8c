package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// declareClass evaluates a class declaration and binds the resulting Class
// as a constant under its own name (§4.4), the class-level analogue of
// declareFunction.
func (e *Evaluator) declareClass(s *ast.ClassDeclaration, env runtime.EnvId) error {
	cls, err := e.buildClass(s.Name, s.Superclass, s.Properties, s.Methods, env)
	if err != nil {
		return err
	}
	return e.Store.Declare(env, s.Name, cls, true)
}

// buildClass constructs a Class from a declaration or literal's property
// and method lists, shared by ClassDeclaration and ClassLiteral (§4.4).
// Superclass, if given, must already resolve to a Class value in env — the
// language early-binds superclasses at class-construction time rather than
// deferring resolution to instantiation. Non-static properties and methods
// are shallow-copied in from the superclass first, so that same-named
// members declared here override the inherited ones; static members are
// never inherited.
func (e *Evaluator) buildClass(name string, superclass *ast.Identifier, properties []ast.PropertyDefinition, methods []ast.MethodDefinition, env runtime.EnvId) (*runtime.Class, error) {
	var super *runtime.Class
	if superclass != nil {
		v, err := e.Store.Lookup(env, superclass.Name)
		if err != nil {
			return nil, err
		}
		s, ok := v.(*runtime.Class)
		if !ok {
			return nil, runtime.NewError(runtime.UnexpectedValue, "superclass %q is not a class", superclass.Name)
		}
		super = s
	}

	cls := runtime.NewClass(name, super)

	if super != nil {
		cls.Properties = append(cls.Properties, super.Properties...)
		for k, m := range super.Methods {
			cls.Methods[k] = m
		}
	}

	propOverride := make(map[string]int, len(cls.Properties))
	for i, p := range cls.Properties {
		propOverride[p.Name] = i
	}

	for _, p := range properties {
		value := runtime.Value(runtime.NullValue)
		if p.Value != nil {
			v, err := e.Resolve(p.Value, env)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if p.IsStatic {
			cls.StaticFields[p.Name] = value
			continue
		}
		if i, exists := propOverride[p.Name]; exists {
			cls.Properties[i].Value = value
			continue
		}
		propOverride[p.Name] = len(cls.Properties)
		cls.Properties = append(cls.Properties, runtime.PropertyDef{Name: p.Name, Value: value})
	}

	for _, m := range methods {
		def := runtime.MethodDef{Name: m.Name, Params: m.Params, Body: m.Body}
		switch {
		case m.Name == "__new__":
			ctor := def
			cls.Constructor = &ctor
		case m.IsStatic:
			cls.StaticMethods[m.Name] = def
		default:
			cls.Methods[m.Name] = def
		}
	}

	return cls, nil
}

// instantiate builds a new instance of cls: its shared property values,
// synthesized method Functions closing over env, and — if cls declares a
// constructor — runs it, returning whatever the receiver parameter resolves
// to at the end of the constructor's scope (§4.4). Without a constructor,
// the freshly populated instance is returned directly.
func (e *Evaluator) instantiate(cls *runtime.Class, args []runtime.Value, env runtime.EnvId) (runtime.Value, error) {
	instance := runtime.NewObject()
	for _, p := range cls.Properties {
		instance.Set(p.Name, p.Value)
	}
	for name, m := range cls.Methods {
		params, err := e.resolveParams(m.Params, env)
		if err != nil {
			return nil, err
		}
		instance.Set(name, &runtime.Function{Name: m.Name, Params: params, Body: m.Body, DeclEnv: env})
	}

	if cls.Constructor == nil {
		return instance, nil
	}
	return e.runConstructor(cls, instance, args, env)
}

// runConstructor runs cls's __new__ in a fresh scope parented to env. Its
// first declared parameter is the conventional receiver slot — there is no
// hidden `self` (§9): bindReceiver binds it directly to instance
// (reassignable — a constructor may rebind it wholesale) instead of
// consuming an argument, then binds the remaining parameters positionally.
// When cls has a superclass with its own constructor, `super(...)` is bound
// to a native wrapping that constructor against the same instance. The
// final value of the receiver parameter when the body finishes is the
// constructor's result — matching a plain function's implicit tail value
// (§4.3, §4.4).
func (e *Evaluator) runConstructor(cls *runtime.Class, instance *runtime.Object, args []runtime.Value, env runtime.EnvId) (runtime.Value, error) {
	ctor := cls.Constructor
	params, err := e.resolveConstructorParams(ctor.Params, env)
	if err != nil {
		return nil, err
	}

	ctorEnv := e.Store.CreateChild(env)
	if err := e.bindReceiver(params, instance, args, ctorEnv); err != nil {
		return nil, err
	}
	selfName := params[0].Name
	if cls.Super != nil && cls.Super.Constructor != nil {
		super := cls.Super
		superNative := runtime.NewNativeFn("super", func(superArgs []runtime.Value) (runtime.Value, error) {
			return e.runConstructor(super, instance, superArgs, ctorEnv)
		})
		if err := e.Store.Declare(ctorEnv, "super", superNative, true); err != nil {
			return nil, err
		}
	}

	if _, _, err := e.RunBlock(ctor.Body, ctorEnv); err != nil {
		return nil, err
	}
	return e.Store.Lookup(ctorEnv, selfName)
}

// resolveConstructorParams is resolveParams plus §4.4's constructor-only
// rule: at most one default-valued parameter, not just trailing defaults
// (a plain function or method may have several trailing defaults; a
// constructor may not).
func (e *Evaluator) resolveConstructorParams(params []ast.Param, env runtime.EnvId) ([]runtime.Param, error) {
	resolved, err := e.resolveParams(params, env)
	if err != nil {
		return nil, err
	}
	defaults := 0
	for _, p := range resolved {
		if p.HasDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, runtime.NewError(runtime.InvalidDefaultParameter, "constructor may declare at most one default-valued parameter")
	}
	return resolved, nil
}
