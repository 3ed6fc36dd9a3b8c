package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// Run executes a single statement in env. It returns the statement's own
// value (needed so a block's tail statement can surface a real value, not a
// hardcoded Null — see RunBlock) and a returning flag that, once set by a
// ReturnStatement, propagates unchanged through every enclosing block/if/
// while until it reaches the call frame that started execution.
func (e *Evaluator) Run(stmt ast.Stmt, env runtime.EnvId) (runtime.Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		v, err := e.Resolve(s.Expr, env)
		return v, false, err

	case *ast.VariableDeclaration:
		return e.runVariableDeclaration(s, env)

	case *ast.FunctionDeclaration:
		if err := e.declareFunction(s.Name, s.Params, s.Body, env); err != nil {
			return nil, false, err
		}
		return runtime.NullValue, false, nil

	case *ast.ClassDeclaration:
		if err := e.declareClass(s, env); err != nil {
			return nil, false, err
		}
		return runtime.NullValue, false, nil

	case *ast.IfStatement:
		return e.runIf(s, env)

	case *ast.WhileStatement:
		return e.runWhile(s, env)

	case *ast.ReturnStatement:
		if s.Expr == nil {
			return runtime.NullValue, true, nil
		}
		v, err := e.Resolve(s.Expr, env)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil

	case *ast.BlockStatement:
		return e.RunBlock(s, env)

	default:
		return nil, false, runtime.NewError(runtime.UnsupportedNode, "%T", stmt)
	}
}

// RunBlock iterates a block's statements in the given scope (a block never
// introduces its own child scope, §4.3). The block's value is whatever its
// last-executed statement produced — not a hardcoded Null — so that a
// tail-position `if`/`else` inside a function body (no explicit `return`)
// surfaces the active branch's value as the function's result. If a
// ReturnStatement is encountered, its value becomes the block's value and
// remaining statements are skipped.
func (e *Evaluator) RunBlock(block *ast.BlockStatement, env runtime.EnvId) (runtime.Value, bool, error) {
	var last runtime.Value = runtime.NullValue
	for _, stmt := range block.Stmts {
		v, returning, err := e.Run(stmt, env)
		if err != nil {
			return nil, false, err
		}
		last = v
		if returning {
			return last, true, nil
		}
	}
	return last, false, nil
}

func (e *Evaluator) runVariableDeclaration(s *ast.VariableDeclaration, env runtime.EnvId) (runtime.Value, bool, error) {
	var value runtime.Value = runtime.NullValue
	if s.Init != nil {
		v, err := e.Resolve(s.Init, env)
		if err != nil {
			return nil, false, err
		}
		value = v
	}
	if err := e.Store.Declare(env, s.Name, value, s.IsConst); err != nil {
		return nil, false, err
	}
	return runtime.NullValue, false, nil
}

// runIf evaluates the condition (must be Boolean, else InvalidCondition)
// and runs the taken branch. Its result — value and returning flag — is
// propagated directly rather than discarded, so if/else composes correctly
// in tail position; an untaken if with no else yields Null, matching the
// "yields no useful value" framing for a statement whose branch body never
// ran.
func (e *Evaluator) runIf(s *ast.IfStatement, env runtime.EnvId) (runtime.Value, bool, error) {
	cond, err := e.Resolve(s.Cond, env)
	if err != nil {
		return nil, false, err
	}
	b, ok := runtime.Truthy(cond)
	if !ok {
		return nil, false, runtime.NewError(runtime.InvalidCondition, "if condition must be boolean, got %s", cond.Kind())
	}
	if b {
		return e.RunBlock(s.Body, env)
	}
	switch alt := s.Alt.(type) {
	case nil:
		return runtime.NullValue, false, nil
	case *ast.BlockStatement:
		return e.RunBlock(alt, env)
	case *ast.IfStatement:
		return e.runIf(alt, env)
	default:
		return nil, false, runtime.NewError(runtime.UnsupportedNode, "%T", s.Alt)
	}
}

// runWhile re-evaluates Cond before each iteration; the body shares env (no
// block scope introduced). A `return` inside the body propagates
// immediately, stopping the loop. A loop that runs to completion (condition
// becomes false) yields Null — matching §4.3's "if/while... still return
// Null" framing, since unlike if/else a while loop's last-iteration value
// is not meaningfully "the" result of the statement.
func (e *Evaluator) runWhile(s *ast.WhileStatement, env runtime.EnvId) (runtime.Value, bool, error) {
	for {
		cond, err := e.Resolve(s.Cond, env)
		if err != nil {
			return nil, false, err
		}
		b, ok := runtime.Truthy(cond)
		if !ok {
			return nil, false, runtime.NewError(runtime.InvalidCondition, "while condition must be boolean, got %s", cond.Kind())
		}
		if !b {
			return runtime.NullValue, false, nil
		}
		v, returning, err := e.RunBlock(s.Body, env)
		if err != nil {
			return nil, false, err
		}
		if returning {
			return v, true, nil
		}
	}
}
