package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
)

func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	return ParseFile(stdio, args[0])
}

// ParseFile parses filename as a single expression and prints its
// parenthesized prefix form.
func ParseFile(stdio mainer.Stdio, filename string) mainer.ExitCode {
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
	fmt.Fprintln(stdio.Stdout, ast.Print(expr))
	return mainer.ExitCode(0)
}
