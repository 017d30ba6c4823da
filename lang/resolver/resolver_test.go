package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
)

func resolveSrc(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return resolver.Resolve(prog)
}

func TestResolverOK(t *testing.T) {
	cases := []string{
		`var a = 1; { var a = 2; print a; } print a;`,
		`var a = "outer"; fun f() { print a; } f();`,
		`fun f() { return 1; } print f();`,
		`class A {} class B < A {} print B().greet;`,
		`class A { init() { return; } }`,
		`class A { m() { return this; } }`,
		`class A { m() { return; } } class B < A { m() { super.m(); } }`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			err := resolveSrc(t, src)
			assert.NoError(t, err)
		})
	}
}

func TestResolverErrors(t *testing.T) {
	cases := []struct {
		src     string
		wantErr string
	}{
		{`var a = "outer"; { var a = a; }`, "Can't read local variable in its own initializer."},
		{`{ var a = 1; var a = 2; }`, "Already a variable with this name in this scope."},
		{`return 1;`, "Can't return from top-level code."},
		{`print this;`, "Can't use 'this' outside of a class."},
		{`class A { init() { return 1; } }`, "Can't return a value from an initializer."},
		{`class A < A {}`, "A class can't inherit from itself."},
		{`print super.m;`, "Can't use 'super' outside of a class."},
		{`class A { m() { super.m(); } }`, "Can't use 'super' in a class with no superclass."},
	}
	for _, c := range cases {
		t.Run(c.wantErr, func(t *testing.T) {
			err := resolveSrc(t, c.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestResolverGlobalRedeclarationAllowed(t *testing.T) {
	err := resolveSrc(t, `var a = 1; var a = 2; print a;`)
	assert.NoError(t, err)
}
