package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
)

func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	return RunFile(stdio, args[0])
}

// RunFile parses filename as a full program, runs the resolver, and
// evaluates it. Parse and resolver errors exit 65; runtime errors exit 70.
func RunFile(stdio mainer.Stdio, filename string) mainer.ExitCode {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.ExitCode(65)
	}

	prog, perr := parser.Parse(src)
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return mainer.ExitCode(65)
	}
	if rerr := resolver.Resolve(prog); rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return mainer.ExitCode(65)
	}

	ev := evaluator.New(stdio.Stdout)
	if rtErr := ev.Run(prog); rtErr != nil {
		fmt.Fprintln(stdio.Stderr, rtErr)
		return mainer.ExitCode(70)
	}
	return mainer.ExitCode(0)
}
