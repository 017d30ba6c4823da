package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/token"
)

func TestParseExprPrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"-1 + 2", "(+ (- 1) 2)"},
		{"!true == false", "(== (! true) false)"},
		{"a = b = 3", "(= a (= b 3))"},
		{"a.b.c", "(get c (get b a))"},
		{"a.b = 1", "(set b a 1)"},
		{"foo(1, 2)(3)", "(fn (fn foo 1 2) 3)"},
		{"this", "this"},
		{"super.m", "(super m)"},
		{"nil", "nil"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			expr, err := parser.ParseExpr([]byte(c.src))
			require.NoError(t, err)
			assert.Equal(t, c.want, ast.Print(expr))
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		src     string
		wantErr string
	}{
		{"(1 + 2", "Expect ')' after expression."},
		{"1 +", "Expect expression."},
		{"1 = 2", "Invalid assignment target."},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := parser.ParseExpr([]byte(c.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestParseForDesugaring(t *testing.T) {
	prog, err := parser.Parse([]byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	block, ok := prog.Stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarDecl)
	assert.True(t, ok, "initializer should be a VarDecl")

	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
	_, ok = body.Stmts[1].(*ast.ExpressionStmt)
	assert.True(t, ok, "increment should be appended as an expression statement")
}

func TestParseForOmittedClauses(t *testing.T) {
	prog, err := parser.Parse([]byte(`for (;;) print "x";`))
	require.NoError(t, err)
	block := prog.Stmts[0].(*ast.BlockStmt)
	while := block.Stmts[1].(*ast.WhileStmt)
	lit, ok := while.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParseReturnTracksHasValue(t *testing.T) {
	prog, err := parser.Parse([]byte(`fun f() { return; } fun g() { return 1; }`))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)

	f := prog.Stmts[0].(*ast.FunctionDecl)
	ret := f.Body.Stmts[0].(*ast.ReturnStmt)
	assert.False(t, ret.HasValue)

	g := prog.Stmts[1].(*ast.FunctionDecl)
	ret = g.Body.Stmts[0].(*ast.ReturnStmt)
	assert.True(t, ret.HasValue)
}

func TestParseClassDecl(t *testing.T) {
	prog, err := parser.Parse([]byte(`class B < A { init(x) { this.x = x; } greet() { print "hi"; } }`))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	cls := prog.Stmts[0].(*ast.ClassDecl)
	assert.Equal(t, "B", cls.Name.Lexeme)
	require.NotNil(t, cls.Super)
	assert.Equal(t, "A", cls.Super.Name.Lexeme)
	require.Len(t, cls.Methods, 2)
	assert.Equal(t, "init", cls.Methods[0].Name.Lexeme)
	assert.Equal(t, []string{"x"}, lexemes(cls.Methods[0].Params))
}

func lexemes(toks []token.Tok) []string {
	names := make([]string, len(toks))
	for i, t := range toks {
		names[i] = t.Lexeme
	}
	return names
}
