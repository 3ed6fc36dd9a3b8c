package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/builtins"
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// resolveMember evaluates a member expression, returning the accessed
// value, the evaluated object it was read from (so assignment/write-back
// can reuse the same object resolution), and the resolved field/index key
// (meaningful for Object/Class targets; empty for Array/String index
// access). obj is nil when the access targets an Array/String element
// directly, since those are not mutable through member assignment.
func (e *Evaluator) resolveMember(n *ast.MemberExpression, env runtime.EnvId) (value runtime.Value, obj runtime.Value, key string, err error) {
	objVal, err := e.Resolve(n.Obj, env)
	if err != nil {
		return nil, nil, "", err
	}

	switch target := objVal.(type) {
	case *runtime.Object:
		key, err = e.fieldKey(n, env)
		if err != nil {
			return nil, nil, "", err
		}
		v, ok := target.Get(key)
		if !ok {
			return nil, nil, "", runtime.NewError(runtime.UnresolvedProperty, "%s", key)
		}
		return v, objVal, key, nil

	case *runtime.Class:
		key, err = e.fieldKey(n, env)
		if err != nil {
			return nil, nil, "", err
		}
		if v, ok := target.StaticField(key); ok {
			return v, objVal, key, nil
		}
		if m, ok := target.StaticMethods[key]; ok {
			params, perr := e.resolveParams(m.Params, env)
			if perr != nil {
				return nil, nil, "", perr
			}
			return &runtime.Function{Name: m.Name, Params: params, Body: m.Body, DeclEnv: env}, objVal, key, nil
		}
		return nil, nil, "", runtime.NewError(runtime.UnresolvedProperty, "%s", key)

	case *runtime.Array:
		if n.Computed {
			idx, ierr := e.indexKey(n, env)
			if ierr != nil {
				return nil, nil, "", ierr
			}
			v, ok := target.Get(idx)
			if !ok {
				return runtime.NullValue, nil, "", nil
			}
			return v, nil, "", nil
		}
		name, nerr := identKey(n)
		if nerr != nil {
			return nil, nil, "", nerr
		}
		methods := e.arrayMethods(target, env)
		v, ok := methods.Get(name)
		if !ok {
			return nil, nil, "", runtime.NewError(runtime.UnresolvedProperty, "%s", name)
		}
		return v, nil, "", nil

	case runtime.String:
		if n.Computed {
			idx, ierr := e.indexKey(n, env)
			if ierr != nil {
				return nil, nil, "", ierr
			}
			runes := []rune(string(target))
			if idx < 0 || idx >= len(runes) {
				return runtime.NullValue, nil, "", nil
			}
			return runtime.String(string(runes[idx])), nil, "", nil
		}
		name, nerr := identKey(n)
		if nerr != nil {
			return nil, nil, "", nerr
		}
		methods := builtins.StringMethods(target)
		v, ok := methods.Get(name)
		if !ok {
			return nil, nil, "", runtime.NewError(runtime.UnresolvedProperty, "%s", name)
		}
		return v, nil, "", nil

	case runtime.Integer, runtime.Decimal:
		if n.Computed {
			return nil, nil, "", runtime.NewError(runtime.UnsupportedValue, "cannot index a number")
		}
		name, nerr := identKey(n)
		if nerr != nil {
			return nil, nil, "", nerr
		}
		methods := builtins.NumberMethods(target)
		v, ok := methods.Get(name)
		if !ok {
			return nil, nil, "", runtime.NewError(runtime.UnresolvedProperty, "%s", name)
		}
		return v, nil, "", nil

	default:
		return nil, nil, "", runtime.NewError(runtime.UnsupportedValue, "member access on %s", objVal.Kind())
	}
}

// arrayMethods builds the base primitive method object for arr and merges
// in any non-static methods declared on a user-visible `Array` class
// reachable from env (§4.5.1).
func (e *Evaluator) arrayMethods(arr *runtime.Array, env runtime.EnvId) *runtime.Object {
	methods := builtins.ArrayMethods(arr)
	if v, ok := e.Store.LookupSafe(env, "Array"); ok {
		if cls, ok := v.(*runtime.Class); ok {
			for name, m := range cls.Methods {
				if params, perr := e.resolveParams(m.Params, env); perr == nil {
					methods.Set(name, &runtime.Function{Name: m.Name, Params: params, Body: m.Body, DeclEnv: env})
				}
			}
		}
	}
	return methods
}

func (e *Evaluator) fieldKey(n *ast.MemberExpression, env runtime.EnvId) (string, error) {
	if !n.Computed {
		return identKey(n)
	}
	v, err := e.Resolve(n.Prop, env)
	if err != nil {
		return "", err
	}
	s, ok := v.(runtime.String)
	if !ok {
		return "", runtime.NewError(runtime.UnexpectedValue, "computed member key must be a string, got %s", v.Kind())
	}
	return string(s), nil
}

func (e *Evaluator) indexKey(n *ast.MemberExpression, env runtime.EnvId) (int, error) {
	v, err := e.Resolve(n.Prop, env)
	if err != nil {
		return 0, err
	}
	i, ok := v.(runtime.Integer)
	if !ok {
		return 0, runtime.NewError(runtime.UnexpectedValue, "index must be an integer, got %s", v.Kind())
	}
	return int(i), nil
}

func identKey(n *ast.MemberExpression) (string, error) {
	id, ok := n.Prop.(*ast.Identifier)
	if !ok {
		return "", runtime.NewError(runtime.UnexpectedNode, "member property must be an identifier")
	}
	return id.Name, nil
}
