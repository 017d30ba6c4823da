package evaluator

import (
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/values"
)

// CallFunction implements values.Executor for a plain closure: bind
// parameters in a fresh child of the function's captured environment and
// run the body. A Return interruption yields its value; falling off the
// end yields nil.
func (ev *Evaluator) CallFunction(fn *values.Function, args []values.Value) (values.Value, *values.RuntimeError) {
	closure := closureEnv(fn.Closure)
	callEnv := closure.NewChild()
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}
	return ev.runBody(fn, callEnv)
}

// CallMethod implements values.Executor for a bound method: the same as
// CallFunction, except a scope holding "this" is interposed between the
// method's class-environment and the parameter scope.
func (ev *Evaluator) CallMethod(bm *values.BoundMethod, args []values.Value) (values.Value, *values.RuntimeError) {
	closure := closureEnv(bm.Fn.Closure)
	thisEnv := closure.NewChild()
	thisEnv.Define("this", bm.Receiver)
	callEnv := thisEnv.NewChild()
	for i, p := range bm.Fn.Params {
		callEnv.Define(p, args[i])
	}
	return ev.runBody(bm.Fn, callEnv)
}

// Construct implements values.Executor for calling a Class: build a fresh
// instance, run its init method (if any) for side effects, and always
// produce the instance regardless of what init returns.
func (ev *Evaluator) Construct(cls *values.Class, args []values.Value) (values.Value, *values.RuntimeError) {
	inst := values.NewInstance(cls)
	if init := cls.FindMethod("init"); init != nil {
		bm := &values.BoundMethod{Fn: init, Receiver: inst}
		if _, err := ev.CallMethod(bm, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (ev *Evaluator) runBody(fn *values.Function, callEnv *environment.Env) (values.Value, *values.RuntimeError) {
	it := ev.execBlock(fn.Body.Stmts, callEnv)
	if it == nil {
		return values.Nil, nil
	}
	if it.err != nil {
		return nil, it.err
	}
	return it.retValue, nil
}

func closureEnv(e values.Env) *environment.Env {
	env, ok := e.(*environment.Env)
	if !ok {
		panic("evaluator: function closure is not *environment.Env")
	}
	return env
}
