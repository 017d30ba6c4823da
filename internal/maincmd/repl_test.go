package maincmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/internal/maincmd"
)

func TestRunREPLExpressionAndPersistence(t *testing.T) {
	in := strings.NewReader("1 + 2\nvar x = 10;\nx + 1\n")
	var out, eout bytes.Buffer
	stdio := mainer.Stdio{Stdin: in, Stdout: &out, Stderr: &eout}

	code := maincmd.RunREPL(context.Background(), stdio)
	assert.Equal(t, mainer.ExitCode(0), code)
	assert.Equal(t, "", eout.String())
	assert.Contains(t, out.String(), "3\n")
	assert.Contains(t, out.String(), "11\n")
}

func TestRunREPLPrintStatement(t *testing.T) {
	in := strings.NewReader(`print "hi";` + "\n")
	var out, eout bytes.Buffer
	stdio := mainer.Stdio{Stdin: in, Stdout: &out, Stderr: &eout}

	maincmd.RunREPL(context.Background(), stdio)
	assert.Contains(t, out.String(), "hi\n")
	assert.Equal(t, "", eout.String())
}

func TestRunREPLErrorDoesNotStopLoop(t *testing.T) {
	in := strings.NewReader("var;\nprint 1;\n")
	var out, eout bytes.Buffer
	stdio := mainer.Stdio{Stdin: in, Stdout: &out, Stderr: &eout}

	maincmd.RunREPL(context.Background(), stdio)
	assert.Contains(t, out.String(), "1\n")
	assert.NotEqual(t, "", eout.String())
}
