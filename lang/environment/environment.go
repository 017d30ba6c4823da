// Package environment implements the lexical scope chain used for variable
// lookup, closure capture, and class-scope method dispatch.
package environment

import (
	"time"

	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/values"
)

// Env is one scope in the chain: a map of locally-declared names, an
// optional parent, and (root scope only) the table of native bindings.
type Env struct {
	vars    *swiss.Map[string, values.Value]
	natives map[string]*values.NativeFunction
	parent  *Env
	root    bool
}

var _ values.Env = (*Env)(nil)

// Root produces a fresh global environment pre-populated with native
// bindings: the sole native is clock, arity 0, returning the number of
// whole seconds since the Unix epoch.
func Root() *Env {
	e := &Env{
		vars: swiss.NewMap[string, values.Value](uint32(8)),
		root: true,
		natives: map[string]*values.NativeFunction{
			"clock": {
				Name:   "clock",
				ArityN: 0,
				Builtin: func([]values.Value) (values.Value, *values.RuntimeError) {
					return values.Number(time.Now().Unix()), nil
				},
			},
		},
	}
	return e
}

// child produces a new nested environment whose enclosing scope is e.
func (e *Env) child() *Env {
	return &Env{vars: swiss.NewMap[string, values.Value](uint32(4)), parent: e}
}

// Child implements values.Env, so that values.Function.Closure can hold an
// *Env without this package depending on the evaluator and vice versa.
func (e *Env) Child() values.Env { return e.child() }

// NewChild is Child with the concrete return type, for callers (the
// evaluator) that need environment-specific methods like Assign and Lookup
// rather than just the values.Env surface.
func (e *Env) NewChild() *Env { return e.child() }

// Define sets name in the current scope, overwriting unconditionally.
func (e *Env) Define(name string, v values.Value) { e.vars.Put(name, v) }

// Assign overwrites name in the nearest scope (starting at e) that already
// contains it. If name is not found anywhere in the chain, Assign is a
// silent no-op: Lox does not treat assignment to an undefined variable as
// a runtime error.
func (e *Env) Assign(name string, v values.Value) {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars.Get(name); ok {
			s.vars.Put(name, v)
			return
		}
	}
}

// Lookup searches the current scope's variables, then its native bindings,
// then recurses into the enclosing scope, returning the first hit.
func (e *Env) Lookup(name string) (values.Value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars.Get(name); ok {
			return v, true
		}
		if s.natives != nil {
			if nf, ok := s.natives[name]; ok {
				return nf, true
			}
		}
	}
	return nil, false
}

// Capture implements the closure-capture policy: if enclosing is the global
// scope, the capture shares it by reference; otherwise it is a snapshot
// copy of the enclosing chain taken now, isolating the closure from any
// assignment the enclosing scope sees after this point.
func Capture(enclosing *Env) *Env {
	if enclosing.root {
		return enclosing
	}
	return enclosing.snapshot()
}

// snapshot deep-copies e and every non-root ancestor, stopping (and sharing
// by reference) once it reaches the global scope.
func (e *Env) snapshot() *Env {
	if e.root {
		return e
	}
	clone := &Env{vars: swiss.NewMap[string, values.Value](uint32(4)), parent: e.parent.snapshot()}
	e.vars.Iter(func(k string, v values.Value) bool {
		clone.vars.Put(k, v)
		return false
	})
	return clone
}
