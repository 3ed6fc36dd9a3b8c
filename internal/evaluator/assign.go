package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

var compoundToBinary = map[ast.AssignmentOperator]ast.BinaryOperator{
	ast.OpAddAssign: ast.Plus,
	ast.OpSubAssign: ast.Minus,
	ast.OpMulAssign: ast.Multiply,
	ast.OpDivAssign: ast.Divide,
	ast.OpModAssign: ast.Modulo,
}

// evalAssignment implements `target = expr` and `target op= expr` for an
// identifier or member-expression target (§4.3).
func (e *Evaluator) evalAssignment(n *ast.AssignmentExpression, env runtime.EnvId) (runtime.Value, error) {
	switch target := n.Left.(type) {
	case *ast.Identifier:
		return e.assignIdentifier(target, n.Op, n.Right, env)
	case *ast.MemberExpression:
		return e.assignMember(target, n.Op, n.Right, env)
	default:
		return nil, runtime.NewError(runtime.InvalidAssignFactor, "%T", n.Left)
	}
}

func (e *Evaluator) assignIdentifier(target *ast.Identifier, op ast.AssignmentOperator, rhs ast.Expr, env runtime.EnvId) (runtime.Value, error) {
	right, err := e.Resolve(rhs, env)
	if err != nil {
		return nil, err
	}
	if op == ast.OpAssign {
		if err := e.Store.Assign(env, target.Name, right, false); err != nil {
			return nil, err
		}
		return right, nil
	}
	binOp, ok := compoundToBinary[op]
	if !ok {
		return nil, runtime.NewError(runtime.InvalidAssignFactor, "unknown assignment operator")
	}
	current, err := e.Store.Lookup(env, target.Name)
	if err != nil {
		return nil, err
	}
	result, err := e.binaryOp(binOp, current, right)
	if err != nil {
		return nil, err
	}
	if err := e.Store.Assign(env, target.Name, result, false); err != nil {
		return nil, err
	}
	return result, nil
}

// assignMember implements `target.prop = expr` / `target[key] = expr` and
// their compound forms. Object and Class are pointer-handle types in this
// implementation (§5's shared-mutability model), so mutating a field
// through target's evaluated pointer is immediately visible through every
// other alias — there is no separate "write the object back into its
// original binding" step to perform, unlike a value-oriented host where
// cloning a handle could lose the aliasing. This also means constant
// protection on the root binding is never consulted for a member write,
// exactly matching the effect the source's explicit ignore_constant
// write-back exists to produce (Scenario C).
func (e *Evaluator) assignMember(target *ast.MemberExpression, op ast.AssignmentOperator, rhs ast.Expr, env runtime.EnvId) (runtime.Value, error) {
	objVal, err := e.Resolve(target.Obj, env)
	if err != nil {
		return nil, err
	}

	switch container := objVal.(type) {
	case *runtime.Object:
		key, err := e.fieldKey(target, env)
		if err != nil {
			return nil, err
		}
		return e.storeMember(container.Get, container.Set, key, op, rhs, env)

	case *runtime.Class:
		key, err := e.fieldKey(target, env)
		if err != nil {
			return nil, err
		}
		get := func(name string) (runtime.Value, bool) { return container.StaticField(name) }
		set := func(name string, v runtime.Value) { container.StaticFields[name] = v }
		return e.storeMember(get, set, key, op, rhs, env)

	default:
		return nil, runtime.NewError(runtime.InvalidAssignFactor, "cannot assign a member on %s", objVal.Kind())
	}
}

// storeMember applies a simple or compound member assignment given generic
// get/set accessors over the underlying field table, so the Object and
// Class cases above share one implementation.
func (e *Evaluator) storeMember(
	get func(string) (runtime.Value, bool),
	set func(string, runtime.Value),
	key string,
	op ast.AssignmentOperator,
	rhs ast.Expr,
	env runtime.EnvId,
) (runtime.Value, error) {
	right, err := e.Resolve(rhs, env)
	if err != nil {
		return nil, err
	}
	if op == ast.OpAssign {
		set(key, right)
		return right, nil
	}
	binOp, ok := compoundToBinary[op]
	if !ok {
		return nil, runtime.NewError(runtime.InvalidAssignFactor, "unknown assignment operator")
	}
	current, ok := get(key)
	if !ok {
		return nil, runtime.NewError(runtime.UnresolvedProperty, "%s", key)
	}
	result, err := e.binaryOp(binOp, current, right)
	if err != nil {
		return nil, err
	}
	set(key, result)
	return result, nil
}
