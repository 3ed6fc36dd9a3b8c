package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// resolveParams converts a parameter list's default expressions into
// pre-evaluated values, evaluated once in env — the declaration (or
// access-site, for methods) scope, never the call scope (§4.3). Defaults
// may only be trailing — the source enforces this only for class
// constructors, but the design notes resolve the open question by applying
// the rule uniformly to every parameter list.
func (e *Evaluator) resolveParams(params []ast.Param, env runtime.EnvId) ([]runtime.Param, error) {
	seenDefault := false
	out := make([]runtime.Param, len(params))
	for i, p := range params {
		if p.Default == nil {
			if seenDefault {
				return nil, runtime.NewError(runtime.InvalidDefaultParameter, "parameter %q without a default follows one with a default", p.Name)
			}
			out[i] = runtime.Param{Name: p.Name}
			continue
		}
		seenDefault = true
		v, err := e.Resolve(p.Default, env)
		if err != nil {
			return nil, err
		}
		out[i] = runtime.Param{Name: p.Name, Default: v, HasDefault: true}
	}
	return out, nil
}

// declareFunction builds a Function value capturing env as its declaration
// scope and binds it as a constant under name in env (§4.3).
func (e *Evaluator) declareFunction(name string, params []ast.Param, body *ast.BlockStatement, env runtime.EnvId) error {
	resolved, err := e.resolveParams(params, env)
	if err != nil {
		return err
	}
	fn := &runtime.Function{Name: name, Params: resolved, Body: body, DeclEnv: env}
	return e.Store.Declare(env, name, fn, true)
}

// evalCall evaluates a call expression: the callee, then arguments
// left-to-right, then dispatches on the callee's kind (§4.3). A callee
// that is a member expression resolving to an Object method gets the
// method-call fast path, binding `self` and writing back its final value.
func (e *Evaluator) evalCall(n *ast.CallExpression, env runtime.EnvId) (runtime.Value, error) {
	if member, ok := n.Callee.(*ast.MemberExpression); ok {
		if handled, v, err := e.tryMethodCall(member, n.Args, env); handled {
			return v, err
		}
	}

	callee, err := e.Resolve(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args, err := e.resolveArgs(n.Args, env)
	if err != nil {
		return nil, err
	}
	return e.apply(callee, args, env)
}

func (e *Evaluator) resolveArgs(exprs []ast.Expr, env runtime.EnvId) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for i, a := range exprs {
		v, err := e.Resolve(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// apply invokes callee with args already evaluated.
func (e *Evaluator) apply(callee runtime.Value, args []runtime.Value, env runtime.EnvId) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.NativeFn:
		return fn.Call(args)

	case *runtime.Function:
		return e.callFunction(fn, args)

	case *runtime.Class:
		return e.instantiate(fn, args, env)

	default:
		return nil, runtime.NewError(runtime.InvalidFunctionCallee, "%s", callee.Kind())
	}
}

// callFunction creates a fresh environment parented to fn's declaration
// scope, binds parameters (falling back to pre-evaluated defaults, failing
// InvalidParameterCount if a required parameter has no argument), and
// evaluates the body.
func (e *Evaluator) callFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	callEnv := e.Store.CreateChild(fn.DeclEnv)
	if err := e.bindParams(fn.Params, args, callEnv); err != nil {
		return nil, err
	}
	v, _, err := e.RunBlock(fn.Body, callEnv)
	return v, err
}

// bindReceiver binds params[0] — the method's conventional `self` slot,
// whatever it is literally named — directly to receiver (not constant, so
// a method/constructor body may reassign it wholesale), then binds the
// remaining parameters positionally against args. There is no hidden
// receiver in this language (§9): `self` is an ordinary first parameter
// that the method-call fast path and class instantiation bind specially
// instead of consuming an argument for it.
func (e *Evaluator) bindReceiver(params []runtime.Param, receiver runtime.Value, args []runtime.Value, env runtime.EnvId) error {
	if len(params) == 0 {
		return runtime.NewError(runtime.InvalidFunctionParameter, "method has no self parameter")
	}
	if err := e.Store.Declare(env, params[0].Name, receiver, false); err != nil {
		return err
	}
	return e.bindParams(params[1:], args, env)
}

// bindParams binds each parameter to its corresponding argument (or
// default) in env, as a constant — mirroring the source's
// `declare_variable(..., true)` for call parameters.
func (e *Evaluator) bindParams(params []runtime.Param, args []runtime.Value, env runtime.EnvId) error {
	for i, p := range params {
		var value runtime.Value
		if i < len(args) {
			value = args[i]
		} else if p.HasDefault {
			value = p.Default
		} else {
			return runtime.NewError(runtime.InvalidParameterCount, "missing argument for parameter %q", p.Name)
		}
		if err := e.Store.Declare(env, p.Name, value, true); err != nil {
			return err
		}
	}
	return nil
}

// tryMethodCall implements the method-call fast path (§4.3, §4.5):
// callee.prop(…) where the object resolves to an Object (or, via a
// synthesized method object, an Array) whose named field is a Function.
// handled is false when the fast path does not apply (any other shape), in
// which case the caller falls back to plain member-read + apply. Only
// Object targets get their receiver written back after the call — an Array
// target's extension methods have no binding to write into.
func (e *Evaluator) tryMethodCall(member *ast.MemberExpression, argExprs []ast.Expr, env runtime.EnvId) (handled bool, value runtime.Value, err error) {
	objVal, err := e.Resolve(member.Obj, env)
	if err != nil {
		return true, nil, err
	}

	switch target := objVal.(type) {
	case *runtime.Object:
		name, err := e.fieldKey(member, env)
		if err != nil {
			return true, nil, err
		}
		fv, ok := target.Get(name)
		if !ok {
			return true, nil, runtime.NewError(runtime.UnresolvedProperty, "%s", name)
		}
		result, finalReceiver, hasReceiver, err := e.invokeMethodLike(fv, objVal, argExprs, env)
		if err != nil {
			return true, nil, err
		}
		// Write back whatever the receiver parameter ended up bound to — not
		// into `member` itself (that slot holds the method, keyed by
		// `method`, not the receiver), but into whatever binding
		// member.Obj (the receiver expression, e.g. `obj` in `obj.method()`)
		// was read from. Methods may reassign `self` wholesale, not just
		// mutate fields through the shared handle.
		if hasReceiver {
			if err := e.writeBackReceiver(member.Obj, finalReceiver, env); err != nil {
				return true, nil, err
			}
		}
		return true, result, nil

	case *runtime.Array:
		name, err := e.fieldKey(member, env)
		if err != nil {
			return true, nil, err
		}
		fv, ok := e.arrayMethods(target, env).Get(name)
		if !ok {
			return true, nil, runtime.NewError(runtime.UnresolvedProperty, "%s", name)
		}
		// An Array's extension methods have no binding to write a
		// reassigned receiver back into — the array value itself was
		// already evaluated, not addressed by member.Obj the way an
		// Object field is.
		result, _, _, err := e.invokeMethodLike(fv, objVal, argExprs, env)
		return true, result, err

	default:
		return false, nil, nil
	}
}

// invokeMethodLike calls fv (a field/method value already resolved off some
// receiver) with the given argument expressions. A *runtime.Function gets
// receiver bound to its first parameter (§4.3's "bind self to the object in
// the new scope"), and hasReceiver reports the final value that parameter
// resolved to after the call, for the caller to write back if it can.
// Anything else (NativeFn, or a plain value the normal call path would
// reject) is resolved and applied directly, with hasReceiver false.
func (e *Evaluator) invokeMethodLike(fv runtime.Value, receiver runtime.Value, argExprs []ast.Expr, env runtime.EnvId) (result runtime.Value, finalReceiver runtime.Value, hasReceiver bool, err error) {
	args, err := e.resolveArgs(argExprs, env)
	if err != nil {
		return nil, nil, false, err
	}
	fn, ok := fv.(*runtime.Function)
	if !ok {
		v, err := e.apply(fv, args, env)
		return v, nil, false, err
	}
	callEnv := e.Store.CreateChild(fn.DeclEnv)
	if err := e.bindReceiver(fn.Params, receiver, args, callEnv); err != nil {
		return nil, nil, false, err
	}
	result, _, err = e.RunBlock(fn.Body, callEnv)
	if err != nil {
		return nil, nil, false, err
	}
	finalReceiver, lookupErr := e.Store.Lookup(callEnv, fn.Params[0].Name)
	if lookupErr != nil {
		return result, nil, false, nil
	}
	return result, finalReceiver, true, nil
}

// writeBackReceiver stores newVal into whatever binding target (the
// receiver expression a method was called on, e.g. `obj` or `a.b` in
// `obj.method()` / `a.b.method()`) was read from — following the member
// chain back to its root the way §4.3's "write back the potentially-
// mutated self into the original member chain" describes, with
// ignore_constant=true (a const-bound receiver variable may still have its
// pointee's binding rewritten, matching Scenario C's const-object-fields-
// are-mutable rule extended to whole-receiver reassignment).
func (e *Evaluator) writeBackReceiver(target ast.Expr, newVal runtime.Value, env runtime.EnvId) error {
	switch t := target.(type) {
	case *ast.Identifier:
		return e.Store.Assign(env, t.Name, newVal, true)

	case *ast.MemberExpression:
		objVal, err := e.Resolve(t.Obj, env)
		if err != nil {
			return err
		}
		switch container := objVal.(type) {
		case *runtime.Object:
			key, err := e.fieldKey(t, env)
			if err != nil {
				return err
			}
			container.Set(key, newVal)
			return nil
		case *runtime.Class:
			key, err := e.fieldKey(t, env)
			if err != nil {
				return err
			}
			container.StaticFields[key] = newVal
			return nil
		default:
			return nil
		}

	default:
		// Not an addressable chain (e.g. the receiver came from a call or
		// index expression) — nothing to write back into.
		return nil
	}
}
