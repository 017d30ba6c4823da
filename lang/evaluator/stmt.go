package evaluator

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/token"
	"github.com/mna/lox/lang/values"
)

func paramNames(toks []token.Tok) []string {
	names := make([]string, len(toks))
	for i, t := range toks {
		names[i] = t.Lexeme
	}
	return names
}

// execBlock runs stmts in env in order, stopping at the first interruption.
func (ev *Evaluator) execBlock(stmts []ast.Stmt, env *environment.Env) *interruption {
	for _, s := range stmts {
		if it := ev.execStmt(s, env); it != nil {
			return it
		}
	}
	return nil
}

func (ev *Evaluator) execStmt(s ast.Stmt, env *environment.Env) *interruption {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return nil
	case *ast.VarDecl:
		return ev.execVarDecl(s, env)
	case *ast.FunctionDecl:
		fn := &values.Function{
			Name:    s.Name.Lexeme,
			Params:  paramNames(s.Params),
			Body:    s.Body,
			Closure: environment.Capture(env),
		}
		env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ClassDecl:
		return ev.execClassDecl(s, env)
	case *ast.PrintStmt:
		v, err := ev.evalExpr(s.Expr, env)
		if err != nil {
			return &interruption{err: err}
		}
		fmt.Fprintln(ev.Out, v.Display())
		return nil
	case *ast.BlockStmt:
		return ev.execBlock(s.Stmts, env.NewChild())
	case *ast.IfStmt:
		return ev.execIfStmt(s, env)
	case *ast.WhileStmt:
		return ev.execWhileStmt(s, env)
	case *ast.ExpressionStmt:
		_, err := ev.evalExpr(s.Expr, env)
		if err != nil {
			return &interruption{err: err}
		}
		return nil
	case *ast.ReturnStmt:
		v, err := ev.evalExpr(s.Expr, env)
		if err != nil {
			return &interruption{err: err}
		}
		return &interruption{isReturn: true, retValue: v}
	default:
		panic(fmt.Sprintf("evaluator: unhandled statement type %T", s))
	}
}

func (ev *Evaluator) execVarDecl(s *ast.VarDecl, env *environment.Env) *interruption {
	val := values.Nil
	if s.Init != nil {
		v, err := ev.evalExpr(s.Init, env)
		if err != nil {
			return &interruption{err: err}
		}
		val = v
	}
	env.Define(s.Name.Lexeme, val)
	return nil
}

func (ev *Evaluator) execIfStmt(s *ast.IfStmt, env *environment.Env) *interruption {
	cond, err := ev.evalExpr(s.Cond, env)
	if err != nil {
		return &interruption{err: err}
	}
	if values.Truthy(cond) {
		return ev.execStmt(s.Then, env)
	}
	if s.Else != nil {
		return ev.execStmt(s.Else, env)
	}
	return nil
}

func (ev *Evaluator) execWhileStmt(s *ast.WhileStmt, env *environment.Env) *interruption {
	for {
		cond, err := ev.evalExpr(s.Cond, env)
		if err != nil {
			return &interruption{err: err}
		}
		if !values.Truthy(cond) {
			return nil
		}
		if it := ev.execStmt(s.Body, env); it != nil {
			return it
		}
	}
}

// execClassDecl implements the six-step class construction sequence:
// resolve the optional superclass, build the class-environment with its
// "class" self-entry, populate methods (captured by classEnv itself, not a
// snapshot), then bind the class value in the enclosing scope.
func (ev *Evaluator) execClassDecl(s *ast.ClassDecl, env *environment.Env) *interruption {
	var super *values.Class
	if s.Super != nil {
		v, ok := env.Lookup(s.Super.Name.Lexeme)
		if !ok {
			return &interruption{err: values.NewRuntimeError(s.Super.Name.Line,
				"Undefined variable '%s'.", s.Super.Name.Lexeme)}
		}
		cls, ok := v.(*values.Class)
		if !ok {
			return &interruption{err: values.NewRuntimeError(s.Super.Name.Line,
				"Superclass must be a class.")}
		}
		super = cls
	}

	classEnv := env.NewChild()
	cls := values.NewClass(s.Name.Lexeme, super)
	classEnv.Define("class", cls)

	for _, m := range s.Methods {
		cls.AddMethod(m.Name.Lexeme, &values.Function{
			Name:    m.Name.Lexeme,
			Params:  paramNames(m.Params),
			Body:    m.Body,
			Closure: classEnv,
		})
	}

	env.Define(s.Name.Lexeme, cls)
	return nil
}
