package values

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// RuntimeError is a Lox runtime error: an interruption that unwinds to the
// top-level runner and maps to exit code 70.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string { return (&token.Error{Line: e.Line, Msg: e.Msg}).Error() }

// NewRuntimeError builds a *RuntimeError with a formatted message.
func NewRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Executor runs the body of a user-defined function, method, or
// constructor. It is implemented by the evaluator so that Callable values
// can be invoked without this package depending on the evaluator package.
type Executor interface {
	CallFunction(fn *Function, args []Value) (Value, *RuntimeError)
	CallMethod(bm *BoundMethod, args []Value) (Value, *RuntimeError)
	Construct(cls *Class, args []Value) (Value, *RuntimeError)
}

// Callable is any Value that can appear as the callee of a Call expression.
type Callable interface {
	Value
	Arity() int
	Call(ex Executor, args []Value) (Value, *RuntimeError)
}

// Function is a user-defined closure: a named or anonymous function or
// method declaration paired with the environment captured at the point of
// declaration (see the environment package's capture policy).
type Function struct {
	Name    string
	Params  []string
	Body    *ast.FuncBody
	Closure Env
}

// Env is the minimal surface of *environment.Env that values needs, kept
// here as an interface to avoid an import cycle between values and
// environment (environment.Env holds values.Value entries).
type Env interface {
	Child() Env
	Define(name string, v Value)
}

var (
	_ Value    = (*Function)(nil)
	_ Callable = (*Function)(nil)
)

func (fn *Function) TypeName() string { return "function" }
func (fn *Function) Display() string  { return fmt.Sprintf("<fn %s>", fn.Name) }
func (fn *Function) Arity() int       { return len(fn.Params) }
func (fn *Function) Call(ex Executor, args []Value) (Value, *RuntimeError) {
	return ex.CallFunction(fn, args)
}

// NativeFunction is a built-in such as clock, implemented directly in Go.
type NativeFunction struct {
	Name    string
	ArityN  int
	Builtin func(args []Value) (Value, *RuntimeError)
}

var (
	_ Value    = (*NativeFunction)(nil)
	_ Callable = (*NativeFunction)(nil)
)

func (n *NativeFunction) TypeName() string { return "function" }
func (n *NativeFunction) Display() string  { return fmt.Sprintf("<fn %s>", n.Name) }
func (n *NativeFunction) Arity() int       { return n.ArityN }
func (n *NativeFunction) Call(_ Executor, args []Value) (Value, *RuntimeError) {
	return n.Builtin(args)
}

// BoundMethod bundles a method's Function together with the receiver it was
// looked up on. Fn.Closure is the class-environment of the class that
// declared the method (not necessarily the receiver's own class), which is
// what makes `super` inside the method resolve relative to the declaring
// class.
type BoundMethod struct {
	Fn       *Function
	Receiver *Instance
}

var (
	_ Value    = (*BoundMethod)(nil)
	_ Callable = (*BoundMethod)(nil)
)

func (m *BoundMethod) TypeName() string { return "method" }
func (m *BoundMethod) Display() string  { return fmt.Sprintf("<method %s>", m.Fn.Name) }
func (m *BoundMethod) Arity() int       { return m.Fn.Arity() }
func (m *BoundMethod) Call(ex Executor, args []Value) (Value, *RuntimeError) {
	return ex.CallMethod(m, args)
}
