package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	return TokenizeFile(stdio, args[0])
}

// TokenizeFile scans filename and prints one line per token (KIND LEXEME
// LITERAL). On a scanner error, every token collected so far is still
// printed before returning the static-error exit code.
func TokenizeFile(stdio mainer.Stdio, filename string) mainer.ExitCode {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.ExitCode(65)
	}

	toks, scanErr := scanner.ScanSource(src)
	for _, t := range toks {
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", t.Type.KindName(), t.Lexeme, literalText(t))
	}
	if scanErr != nil {
		fmt.Fprintln(stdio.Stderr, scanErr)
		return mainer.ExitCode(65)
	}
	return mainer.ExitCode(0)
}

func literalText(t token.Tok) string {
	switch v := t.Literal.(type) {
	case string:
		return v
	case float64:
		return formatNumberLiteral(v)
	default:
		return "null"
	}
}
