package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
)

// RunREPL reads lines from stdio.Stdin until EOF, evaluating each against a
// single evaluator whose global environment persists across lines so that
// variables and functions declared on one line are visible on the next. A
// line that parses as a bare expression has its value printed directly;
// otherwise the line is parsed and resolved as a full statement list and
// run for its side effects. Errors on one line are reported to stderr and
// do not stop the REPL.
func RunREPL(_ context.Context, stdio mainer.Stdio) mainer.ExitCode {
	ev := evaluator.New(stdio.Stdout)
	sc := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		replLine(ev, stdio, line)
	}
	return mainer.ExitCode(0)
}

func replLine(ev *evaluator.Evaluator, stdio mainer.Stdio, line string) {
	if expr, err := parser.ParseExpr([]byte(strings.TrimSuffix(line, ";"))); err == nil {
		v, rerr := ev.EvalExpr(expr)
		if rerr != nil {
			fmt.Fprintln(stdio.Stderr, rerr)
			return
		}
		fmt.Fprintln(stdio.Stdout, v.Display())
		return
	}

	prog, perr := parser.Parse([]byte(line))
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return
	}
	if rerr := resolver.Resolve(prog); rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return
	}
	if rtErr := ev.Run(prog); rtErr != nil {
		fmt.Fprintln(stdio.Stderr, rtErr)
	}
}
