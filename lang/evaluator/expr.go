package evaluator

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/token"
	"github.com/mna/lox/lang/values"
)

func (ev *Evaluator) evalExpr(e ast.Expr, env *environment.Env) (values.Value, *values.RuntimeError) {
	switch e := e.(type) {
	case *ast.NilExpr:
		return values.Nil, nil
	case *ast.LiteralExpr:
		return literalValue(e), nil
	case *ast.VariableExpr:
		v, ok := env.Lookup(e.Name.Lexeme)
		if !ok {
			return nil, values.NewRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil
	case *ast.GroupingExpr:
		return ev.evalExpr(e.Inner, env)
	case *ast.UnaryExpr:
		return ev.evalUnary(e, env)
	case *ast.BinaryExpr:
		return ev.evalBinary(e, env)
	case *ast.LogicalExpr:
		return ev.evalLogical(e, env)
	case *ast.AssignExpr:
		v, err := ev.evalExpr(e.Value, env)
		if err != nil {
			return nil, err
		}
		env.Assign(e.Name.Lexeme, v)
		return v, nil
	case *ast.CallExpr:
		return ev.evalCall(e, env)
	case *ast.GetExpr:
		return ev.evalGet(e, env)
	case *ast.SetExpr:
		return ev.evalSet(e, env)
	case *ast.ThisExpr:
		v, ok := env.Lookup("this")
		if !ok {
			return nil, values.NewRuntimeError(e.Keyword.Line, "Undefined variable 'this'.")
		}
		return v, nil
	case *ast.SuperExpr:
		return ev.evalSuper(e, env)
	default:
		panic(fmt.Sprintf("evaluator: unhandled expression type %T", e))
	}
}

func literalValue(e *ast.LiteralExpr) values.Value {
	switch e.Type {
	case token.NUMBER:
		return values.Number(e.Value.(float64))
	case token.STRING:
		return values.String(e.Value.(string))
	case token.TRUE:
		return values.Boolean(true)
	case token.FALSE:
		return values.Boolean(false)
	default:
		panic(fmt.Sprintf("evaluator: unhandled literal token %v", e.Type))
	}
}

func (ev *Evaluator) evalUnary(e *ast.UnaryExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(values.Number)
		if !ok {
			return nil, values.NewRuntimeError(e.Op.Line, "Operand must be a number. Got %s.", right.TypeName())
		}
		return -n, nil
	case token.BANG:
		switch right.(type) {
		case values.Boolean, values.Number:
			return values.Boolean(!values.Truthy(right)), nil
		default:
			if values.IsNil(right) {
				return values.Boolean(true), nil
			}
			return nil, values.NewRuntimeError(e.Op.Line,
				"Operand must be a boolean, nil, or number. Got %s.", right.TypeName())
		}
	default:
		panic(fmt.Sprintf("evaluator: unhandled unary operator %v", e.Op.Type))
	}
}

func (ev *Evaluator) evalBinary(e *ast.BinaryExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		if ln, ok := left.(values.Number); ok {
			if rn, ok := right.(values.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(values.String); ok {
			if rs, ok := right.(values.String); ok {
				return ls + rs, nil
			}
		}
		return nil, values.NewRuntimeError(e.Op.Line,
			"Operands must be two numbers or two strings. Got %s and %s.", left.TypeName(), right.TypeName())
	case token.MINUS:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return ln / rn, nil
	case token.GT:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(ln > rn), nil
	case token.GT_EQ:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(ln >= rn), nil
	case token.LT:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(ln < rn), nil
	case token.LT_EQ:
		ln, rn, rerr := requireNumbers(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return values.Boolean(ln <= rn), nil
	case token.EQ_EQ:
		return values.Boolean(values.Equal(left, right)), nil
	case token.BANG_EQ:
		return values.Boolean(!values.Equal(left, right)), nil
	default:
		panic(fmt.Sprintf("evaluator: unhandled binary operator %v", e.Op.Type))
	}
}

func requireNumbers(op token.Tok, left, right values.Value) (values.Number, values.Number, *values.RuntimeError) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return 0, 0, values.NewRuntimeError(op.Line,
			"Operands must be numbers. Got %s and %s.", left.TypeName(), right.TypeName())
	}
	return ln, rn, nil
}

func (ev *Evaluator) evalLogical(e *ast.LogicalExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	left, err := ev.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.OR:
		if values.Truthy(left) {
			return left, nil
		}
	case token.AND:
		if !values.Truthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("evaluator: unhandled logical operator %v", e.Op.Type))
	}
	return ev.evalExpr(e.Right, env)
}

func (ev *Evaluator) evalCall(e *ast.CallExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	callee, err := ev.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(values.Callable)
	if !ok {
		return nil, values.NewRuntimeError(e.Paren.Line,
			"Can only call functions and classes. Got %s.", callee.TypeName())
	}
	if len(args) != callable.Arity() {
		return nil, values.NewRuntimeError(e.Paren.Line,
			"Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(ev, args)
}

func (ev *Evaluator) evalGet(e *ast.GetExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	obj, err := ev.evalExpr(e.Obj, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*values.Instance)
	if !ok {
		return nil, values.NewRuntimeError(e.Name.Line, "Only instances have properties. Got %s.", obj.TypeName())
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, values.NewRuntimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (ev *Evaluator) evalSet(e *ast.SetExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	obj, err := ev.evalExpr(e.Obj, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*values.Instance)
	if !ok {
		return nil, values.NewRuntimeError(e.Name.Line, "Only instances have properties. Got %s.", obj.TypeName())
	}
	val, err := ev.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, val)
	return val, nil
}

func (ev *Evaluator) evalSuper(e *ast.SuperExpr, env *environment.Env) (values.Value, *values.RuntimeError) {
	classVal, ok := env.Lookup("class")
	if !ok {
		return nil, values.NewRuntimeError(e.Keyword.Line, "Undefined variable 'class'.")
	}
	cls := classVal.(*values.Class)
	if cls.Super == nil {
		return nil, values.NewRuntimeError(e.Keyword.Line, "Missing superclass.")
	}
	thisVal, ok := env.Lookup("this")
	if !ok {
		return nil, values.NewRuntimeError(e.Keyword.Line, "Undefined variable 'this'.")
	}
	inst := thisVal.(*values.Instance)

	fn := cls.Super.FindMethod(e.Method.Lexeme)
	if fn == nil {
		return nil, values.NewRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return &values.BoundMethod{Fn: fn, Receiver: inst}, nil
}
