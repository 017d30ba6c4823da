package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
)

func (c *Cmd) Evaluate(_ context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	return EvaluateFile(stdio, args[0])
}

// EvaluateFile parses filename as a single expression, evaluates it against
// a fresh global environment, and prints its display form.
func EvaluateFile(stdio mainer.Stdio, filename string) mainer.ExitCode {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.ExitCode(65)
	}

	expr, perr := parser.ParseExpr(src)
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return mainer.ExitCode(65)
	}

	ev := evaluator.New(stdio.Stdout)
	v, rerr := ev.EvalExpr(expr)
	if rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return mainer.ExitCode(70)
	}
	fmt.Fprintln(stdio.Stdout, v.Display())
	return mainer.ExitCode(0)
}
