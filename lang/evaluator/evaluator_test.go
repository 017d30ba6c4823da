package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
)

func evalExpr(t *testing.T, src string) string {
	t.Helper()
	expr, err := parser.ParseExpr([]byte(src))
	require.NoError(t, err)
	ev := evaluator.New(&bytes.Buffer{})
	v, rerr := ev.EvalExpr(expr)
	require.Nil(t, rerr)
	return v.Display()
}

func TestEvalArithmeticAndEquality(t *testing.T) {
	cases := map[string]string{
		`1 + 2`:          "3",
		`"foo" + "bar"`:  "foobar",
		`10 / 4`:         "2.5",
		`2 * (3 + 4)`:    "14",
		`1 == 1.0`:       "true",
		`1 == "1"`:       "false",
		`nil == nil`:     "true",
		`"a" != "b"`:     "true",
		`!false`:         "true",
		`!nil`:           "true",
		`!0`:             "false",
		`-5`:             "-5",
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			assert.Equal(t, want, evalExpr(t, src))
		})
	}
}

func evalExprErr(t *testing.T, src string) string {
	t.Helper()
	expr, err := parser.ParseExpr([]byte(src))
	require.NoError(t, err)
	ev := evaluator.New(&bytes.Buffer{})
	_, rerr := ev.EvalExpr(expr)
	require.NotNil(t, rerr)
	return rerr.Error()
}

func TestEvalRuntimeErrors(t *testing.T) {
	cases := map[string]string{
		`"foo" + 1`:   "Operands must be two numbers or two strings.",
		`-"x"`:        "Operand must be a number.",
		`1 < "a"`:     "Operands must be numbers.",
		`!"x"`:        "Operand must be a boolean, nil, or number.",
		`undefined_x`: "Undefined variable 'undefined_x'.",
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			assert.Contains(t, evalExprErr(t, src), want)
		})
	}
}

func runProgram(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := evaluator.New(&buf)
	rerr := ev.Run(prog)
	require.Nil(t, rerr)
	return buf.String()
}

func TestRunClosureCapture(t *testing.T) {
	out := runProgram(t, `
fun makeCounter() {
  var c = 0;
  fun f() {
    c = c + 1;
    print c;
  }
  return f;
}
var g = makeCounter();
g();
g();
`)
	assert.Equal(t, "1\n2\n", out)
}

func TestRunMethodThis(t *testing.T) {
	out := runProgram(t, `
class C { m() { return this; } }
var c = C();
print c.m() == c;
`)
	assert.Equal(t, "true\n", out)
}

func TestRunInheritanceResolutionOrder(t *testing.T) {
	out := runProgram(t, `
class A { greet() { print "hi"; } }
class B < A {}
B().greet();
`)
	assert.Equal(t, "hi\n", out)
}

func TestRunSuperDispatch(t *testing.T) {
	out := runProgram(t, `
class A { m() { print "A"; } }
class B < A { m() { super.m(); print "B"; } }
B().m();
`)
	assert.Equal(t, "A\nB\n", out)
}

func TestRunConstructorReturnValue(t *testing.T) {
	out := runProgram(t, `class C { init() { return; } } print C();`)
	assert.Equal(t, "C instance\n", out)
}

func TestRunArityEnforcement(t *testing.T) {
	prog, err := parser.Parse([]byte(`fun f(a, b) { return a + b; } f(1);`))
	require.NoError(t, err)
	var buf bytes.Buffer
	ev := evaluator.New(&buf)
	rerr := ev.Run(prog)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Expected 2 arguments but got 1.")
}

func TestRunTruthiness(t *testing.T) {
	out := runProgram(t, `if (0) print "y"; else print "n";`)
	assert.Equal(t, "y\n", out)

	out = runProgram(t, `if (nil) print "y"; else print "n";`)
	assert.Equal(t, "n\n", out)

	out = runProgram(t, `if (false) print "y"; else print "n";`)
	assert.Equal(t, "n\n", out)
}

func TestRunShortCircuitValue(t *testing.T) {
	assert.Equal(t, "x\n", runProgram(t, `print nil or "x";`))
	assert.Equal(t, "b\n", runProgram(t, `print "a" and "b";`))
	assert.Equal(t, "0\n", runProgram(t, `print false or 0;`))
}

func TestRunBareReturnYieldsNil(t *testing.T) {
	out := runProgram(t, `fun f() { return; } print f();`)
	assert.Equal(t, "nil\n", out)
}

func TestRunFieldMasksMethod(t *testing.T) {
	out := runProgram(t, `
class C { m() { return "method"; } }
var c = C();
c.m = "field";
print c.m;
`)
	assert.Equal(t, "field\n", out)
}

func TestRunUndefinedProperty(t *testing.T) {
	prog, err := parser.Parse([]byte(`class C {} print C().nope;`))
	require.NoError(t, err)
	var buf bytes.Buffer
	ev := evaluator.New(&buf)
	rerr := ev.Run(prog)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Undefined property 'nope'.")
}
