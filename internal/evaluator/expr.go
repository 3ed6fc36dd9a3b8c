package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// Resolve evaluates an expression node to a value in env.
func (e *Evaluator) Resolve(expr ast.Expr, env runtime.EnvId) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.Integer(n.Value), nil
	case *ast.DecimalLiteral:
		return runtime.Decimal(n.Value), nil
	case *ast.StringLiteral:
		return runtime.String(n.Value), nil
	case *ast.NullLiteral:
		return runtime.NullValue, nil
	case *ast.BooleanLiteral:
		return runtime.Boolean(n.Value), nil

	case *ast.Identifier:
		return e.Store.Lookup(env, n.Name)

	case *ast.ArrayExpression:
		items := make([]runtime.Value, len(n.Items))
		for i, it := range n.Items {
			v, err := e.Resolve(it, env)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return runtime.NewArray(items), nil

	case *ast.ObjectExpression:
		obj := runtime.NewObject()
		for i, k := range n.Keys {
			v, err := e.Resolve(n.Values[i], env)
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil

	case *ast.BinaryExpression:
		return e.evalBinary(n, env)

	case *ast.UnaryExpression:
		return e.evalUnary(n, env)

	case *ast.LogicalExpression:
		return e.evalLogical(n, env)

	case *ast.AssignmentExpression:
		return e.evalAssignment(n, env)

	case *ast.CallExpression:
		return e.evalCall(n, env)

	case *ast.MemberExpression:
		v, _, _, err := e.resolveMember(n, env)
		return v, err

	case *ast.FuncExpression:
		params, err := e.resolveParams(n.Params, env)
		if err != nil {
			return nil, err
		}
		return &runtime.Function{Params: params, Body: n.Body, DeclEnv: env}, nil

	case *ast.ClassLiteral:
		return e.buildClass("", n.Superclass, n.Properties, n.Methods, env)

	default:
		return nil, runtime.NewError(runtime.UnsupportedNode, "%T", expr)
	}
}

func (e *Evaluator) evalBinary(n *ast.BinaryExpression, env runtime.EnvId) (runtime.Value, error) {
	left, err := e.Resolve(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Resolve(n.Right, env)
	if err != nil {
		return nil, err
	}
	return e.binaryOp(n.Op, left, right)
}

// binaryOp implements the binary operator semantics of §4.3: numeric
// coercion per §4.1 for arithmetic and ordering, tag-then-payload equality
// for ==/!=, Null for any other operand-kind combination. It is shared by
// BinaryExpression evaluation and by compound assignment (`x op= e`
// desugars to `x = x op e`, evaluated via this same path).
func (e *Evaluator) binaryOp(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.IsEquals:
		return runtime.Boolean(runtime.Equals(left, right)), nil
	case ast.NotEquals:
		return runtime.Boolean(!runtime.Equals(left, right)), nil
	}

	lf, lok := numericOf(left)
	rf, rok := numericOf(right)
	if !lok || !rok {
		// Mixed string/numeric, or any other non-numeric combination: the
		// operator is unspecified for these operands (§4.3).
		return runtime.NullValue, nil
	}
	decimal := isDecimal(left) || isDecimal(right)

	switch op {
	case ast.LessThan:
		return runtime.Boolean(lf < rf), nil
	case ast.GreaterThan:
		return runtime.Boolean(lf > rf), nil
	case ast.Plus, ast.Minus, ast.Multiply, ast.Divide, ast.Modulo:
		if (op == ast.Divide || op == ast.Modulo) && rf == 0 {
			return nil, runtime.NewError(runtime.DivisionByZero, "%v by zero", op)
		}
		if decimal {
			return runtime.Decimal(applyArith(op, lf, rf)), nil
		}
		li, ri := int64(lf), int64(rf)
		switch op {
		case ast.Plus:
			return runtime.Integer(li + ri), nil
		case ast.Minus:
			return runtime.Integer(li - ri), nil
		case ast.Multiply:
			return runtime.Integer(li * ri), nil
		case ast.Divide:
			return runtime.Integer(li / ri), nil
		case ast.Modulo:
			return runtime.Integer(li % ri), nil
		}
	}
	return nil, runtime.NewError(runtime.UnsupportedBinaryOperator, "%v", op)
}

func applyArith(op ast.BinaryOperator, l, r float64) float64 {
	switch op {
	case ast.Plus:
		return l + r
	case ast.Minus:
		return l - r
	case ast.Multiply:
		return l * r
	case ast.Divide:
		return l / r
	case ast.Modulo:
		return float64(int64(l) % int64(r))
	}
	return 0
}

func numericOf(v runtime.Value) (float64, bool) {
	switch n := v.(type) {
	case runtime.Integer:
		return float64(n), true
	case runtime.Decimal:
		return float64(n), true
	default:
		return 0, false
	}
}

func isDecimal(v runtime.Value) bool {
	_, ok := v.(runtime.Decimal)
	return ok
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpression, env runtime.EnvId) (runtime.Value, error) {
	v, err := e.Resolve(n.Expr, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.UnaryPlus:
		if _, ok := numericOf(v); !ok {
			return nil, runtime.NewError(runtime.UnsupportedUnaryOperator, "unary + on %s", v.Kind())
		}
		return v, nil
	case ast.UnaryMinus:
		switch nv := v.(type) {
		case runtime.Integer:
			return -nv, nil
		case runtime.Decimal:
			return -nv, nil
		default:
			return nil, runtime.NewError(runtime.UnsupportedUnaryOperator, "unary - on %s", v.Kind())
		}
	case ast.Negation:
		b, ok := runtime.Truthy(v)
		if !ok {
			return nil, runtime.NewError(runtime.UnsupportedUnaryOperator, "! on %s", v.Kind())
		}
		return runtime.Boolean(!b), nil
	default:
		return nil, runtime.NewError(runtime.UnsupportedUnaryOperator, "%v", n.Op)
	}
}

// evalLogical evaluates both operands unconditionally — `and`/`or` do not
// short-circuit in this language (§4.3, §9), a deliberate quirk preserved
// from the source. Both operands must be Boolean.
func (e *Evaluator) evalLogical(n *ast.LogicalExpression, env runtime.EnvId) (runtime.Value, error) {
	left, err := e.Resolve(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Resolve(n.Right, env)
	if err != nil {
		return nil, err
	}
	lb, lok := runtime.Truthy(left)
	rb, rok := runtime.Truthy(right)
	if !lok || !rok {
		return nil, runtime.NewError(runtime.InvalidValue, "boolean")
	}
	switch n.Op {
	case ast.LogicalAnd:
		return runtime.Boolean(lb && rb), nil
	case ast.LogicalOr:
		return runtime.Boolean(lb || rb), nil
	default:
		return nil, runtime.NewError(runtime.UnsupportedBinaryOperator, "%v", n.Op)
	}
}
