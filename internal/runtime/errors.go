package runtime

import "fmt"

// ErrorKind enumerates the exhaustive set of error kinds the evaluator, its
// environment store, and the native bridge can raise (§7). Propagation is
// first-error-wins: no local recovery, no error is ever converted to Null.
type ErrorKind int

const (
	UnsupportedNode ErrorKind = iota
	UnexpectedNode
	UnsupportedBinaryOperator
	UnsupportedUnaryOperator
	UnsupportedValue
	UnexpectedValue
	ValueCastError
	VariableDeclarationExist
	UnresolvedVariable
	UnresolvedProperty
	ReassignConstant
	InvalidAssignFactor
	InvalidFunctionCallee
	InvalidFunctionParameter
	InvalidCondition
	InvalidValue
	InvalidDefaultParameter
	InvalidParameterCount
	UnresolvedEnvironment
	DivisionByZero
)

var kindLabels = [...]string{
	UnsupportedNode:           "UnsupportedNode",
	UnexpectedNode:            "UnexpectedNode",
	UnsupportedBinaryOperator: "UnsupportedBinaryOperator",
	UnsupportedUnaryOperator:  "UnsupportedUnaryOperator",
	UnsupportedValue:          "UnsupportedValue",
	UnexpectedValue:           "UnexpectedValue",
	ValueCastError:            "ValueCastError",
	VariableDeclarationExist:  "VariableDeclarationExist",
	UnresolvedVariable:        "UnresolvedVariable",
	UnresolvedProperty:        "UnresolvedProperty",
	ReassignConstant:          "ReassignConstant",
	InvalidAssignFactor:       "InvalidAssignFactor",
	InvalidFunctionCallee:     "InvalidFunctionCallee",
	InvalidFunctionParameter:  "InvalidFunctionParameter",
	InvalidCondition:          "InvalidCondition",
	InvalidValue:              "InvalidValue",
	InvalidDefaultParameter:   "InvalidDefaultParameter",
	InvalidParameterCount:     "InvalidParameterCount",
	UnresolvedEnvironment:     "UnresolvedEnvironment",
	DivisionByZero:            "DivisionByZero",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return "UnknownError"
}

// EvalError is the single tagged error type propagated through every
// evaluator operation (§7). Detail is a kind-specific payload (usually the
// offending name), rendered into Error() but also inspectable by callers
// that want to branch on Kind.
type EvalError struct {
	Kind   ErrorKind
	Detail string
}

func NewError(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *EvalError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// IsKind reports whether err is an *EvalError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ee, ok := err.(*EvalError)
	return ok && ee.Kind == kind
}
