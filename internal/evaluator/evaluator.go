// Package evaluator walks the AST against a runtime.Store, implementing
// expression and statement semantics, class instantiation and method
// dispatch, member access on primitives, and compound-assignment
// desugaring (§4.3–§4.5).
package evaluator

import (
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

// Evaluator consumes AST nodes and produces values against a current scope
// id. It carries the environment arena as an explicit field rather than
// reaching for a process global (§5, §9).
type Evaluator struct {
	Store *runtime.Store
}

// New returns an Evaluator backed by store.
func New(store *runtime.Store) *Evaluator {
	return &Evaluator{Store: store}
}

// RunProgram executes every top-level statement in order and returns the
// last statement's value, the same rule a block statement follows. A bare
// `return` at the top level is an error (§4.3).
func (e *Evaluator) RunProgram(prog *ast.Program, env runtime.EnvId) (runtime.Value, error) {
	var last runtime.Value = runtime.NullValue
	for _, stmt := range prog.Stmts {
		v, returning, err := e.Run(stmt, env)
		if err != nil {
			return nil, err
		}
		if returning {
			return nil, runtime.NewError(runtime.UnexpectedNode, "return statement outside of function body")
		}
		last = v
	}
	return last, nil
}
