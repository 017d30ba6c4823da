// Package resolver implements the static validation pass that runs between
// parsing and evaluation. It walks the AST once, tracking lexical scopes,
// enclosing functions and enclosing classes, and flags the handful of
// structural errors that don't need a running program to detect: reading a
// local variable from its own initializer, redeclaring a name twice in the
// same block, returning outside a function, and misusing `this`/`super`.
//
// It does not resolve variable references to storage slots; that happens
// dynamically through the environment chain at evaluation time.
package resolver

import "github.com/mna/lox/lang/ast"
import "github.com/mna/lox/lang/token"

type errKind int

const (
	errSelfInit errKind = iota
	errAlreadyDeclared
	errReturnTopLevel
	errThisOutsideClass
	errReturnValueInit
	errClassInheritsSelf
	errSuperOutsideClass
	errSuperNoSuperclass
	numErrKinds
)

var errMessages = [numErrKinds]string{
	errSelfInit:          "Can't read local variable in its own initializer.",
	errAlreadyDeclared:   "Already a variable with this name in this scope.",
	errReturnTopLevel:    "Can't return from top-level code.",
	errThisOutsideClass:  "Can't use 'this' outside of a class.",
	errReturnValueInit:   "Can't return a value from an initializer.",
	errClassInheritsSelf: "A class can't inherit from itself.",
	errSuperOutsideClass: "Can't use 'super' outside of a class.",
	errSuperNoSuperclass: "Can't use 'super' in a class with no superclass.",
}

type classInfo struct {
	hasSuper bool
}

// Resolver runs the static pass over a single program.
type Resolver struct {
	scopes    []map[string]bool
	functions []string
	classes   []classInfo

	initializing *string

	found [numErrKinds]int
}

// Resolve validates prog and returns the highest-priority error found, if
// any. A nil error means prog is free of the errors this pass detects.
func Resolve(prog *ast.Program) error {
	var r Resolver
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	return r.result()
}

func (r *Resolver) result() error {
	for k := errKind(0); k < numErrKinds; k++ {
		if line := r.found[k]; line != 0 {
			var errs token.ErrorList
			errs.Add(line, "%s", errMessages[k])
			return errs.Err()
		}
	}
	return nil
}

func (r *Resolver) reportFirst(kind errKind, line int) {
	if r.found[kind] == 0 {
		r.found[kind] = line
	}
}

func (r *Resolver) pushScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) popScope()  { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare records name in the innermost scope, flagging a redeclaration. At
// global scope (no scopes pushed) there is no duplicate check: top-level
// names may be redeclared freely.
func (r *Resolver) declare(name token.Tok) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if scope[name.Lexeme] {
		r.reportFirst(errAlreadyDeclared, name.Line)
		return
	}
	scope[name.Lexeme] = true
}

// use checks a variable read against the in-progress initializer slot.
func (r *Resolver) use(name token.Tok) {
	if r.initializing != nil && *r.initializing == name.Lexeme && len(r.scopes) > 0 {
		r.reportFirst(errSelfInit, name.Line)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
	case *ast.VarDecl:
		r.resolveVarDecl(s)
	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.resolveFunction(s.Params, s.Body, s.Name.Lexeme)
	case *ast.ClassDecl:
		r.resolveClassDecl(s)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)
	case *ast.BlockStmt:
		r.pushScope()
		for _, st := range s.Stmts {
			r.resolveStmt(st)
		}
		r.popScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)
	case *ast.ReturnStmt:
		r.resolveReturnStmt(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveVarDecl(s *ast.VarDecl) {
	if s.Init != nil {
		prev := r.initializing
		name := s.Name.Lexeme
		r.initializing = &name
		r.resolveExpr(s.Init)
		r.initializing = prev
	}
	r.declare(s.Name)
}

// resolveFunction pushes a single scope shared by the parameter list and the
// body: the body is not a BlockStmt and does not push a scope of its own.
func (r *Resolver) resolveFunction(params []token.Tok, body *ast.FuncBody, name string) {
	r.functions = append(r.functions, name)
	r.pushScope()
	for _, p := range params {
		r.declare(p)
	}
	for _, st := range body.Stmts {
		r.resolveStmt(st)
	}
	r.popScope()
	r.functions = r.functions[:len(r.functions)-1]
}

func (r *Resolver) resolveClassDecl(s *ast.ClassDecl) {
	hasSuper := s.Super != nil
	if hasSuper && s.Super.Name.Lexeme == s.Name.Lexeme {
		r.reportFirst(errClassInheritsSelf, s.Super.Name.Line)
	}
	r.declare(s.Name)

	r.classes = append(r.classes, classInfo{hasSuper: hasSuper})
	for _, m := range s.Methods {
		r.resolveFunction(m.Params, m.Body, m.Name.Lexeme)
	}
	r.classes = r.classes[:len(r.classes)-1]
}

func (r *Resolver) resolveReturnStmt(s *ast.ReturnStmt) {
	if len(r.functions) == 0 {
		r.reportFirst(errReturnTopLevel, s.Keyword.Line)
	} else if s.HasValue && r.functions[len(r.functions)-1] == "init" {
		r.reportFirst(errReturnValueInit, s.Keyword.Line)
	}
	r.resolveExpr(s.Expr)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.NilExpr, *ast.LiteralExpr:
	case *ast.VariableExpr:
		r.use(e.Name)
	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Obj)
	case *ast.SetExpr:
		r.resolveExpr(e.Obj)
		r.resolveExpr(e.Value)
	case *ast.ThisExpr:
		if len(r.classes) == 0 {
			r.reportFirst(errThisOutsideClass, e.Keyword.Line)
		}
	case *ast.SuperExpr:
		if len(r.classes) == 0 {
			r.reportFirst(errSuperOutsideClass, e.Keyword.Line)
		} else if !r.classes[len(r.classes)-1].hasSuper {
			r.reportFirst(errSuperNoSuperclass, e.Keyword.Line)
		}
	default:
		panic("resolver: unhandled expression type")
	}
}
