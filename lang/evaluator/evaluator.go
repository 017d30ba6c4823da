// Package evaluator implements the recursive AST walker that produces
// values and side effects: expression evaluation, statement execution,
// class construction, method binding with implicit receiver, and
// superclass method dispatch.
package evaluator

import (
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/values"
)

// Evaluator holds the state shared across a single run: the global
// environment and the stream `print` writes to.
type Evaluator struct {
	Global *environment.Env
	Out    io.Writer
}

// New creates an Evaluator with a fresh global environment.
func New(out io.Writer) *Evaluator {
	return &Evaluator{Global: environment.Root(), Out: out}
}

var _ values.Executor = (*Evaluator)(nil)

// interruption is what propagates out of statement execution: either a
// Return(value) non-local control-flow signal or a RuntimeError. A nil
// *interruption means the statement (or block) ran to completion normally.
type interruption struct {
	isReturn bool
	retValue values.Value
	err      *values.RuntimeError
}

// Run executes every top-level statement of prog against the global
// environment. Runtime errors propagate; earlier prints already written to
// Out are kept, per the interruption model.
func (ev *Evaluator) Run(prog *ast.Program) *values.RuntimeError {
	for _, s := range prog.Stmts {
		if it := ev.execStmt(s, ev.Global); it != nil && it.err != nil {
			return it.err
		}
	}
	return nil
}

// EvalExpr evaluates a single expression against the global environment, as
// used by the `evaluate` CLI subcommand.
func (ev *Evaluator) EvalExpr(e ast.Expr) (values.Value, *values.RuntimeError) {
	return ev.evalExpr(e, ev.Global)
}
