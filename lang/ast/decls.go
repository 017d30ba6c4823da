package ast

import "github.com/mna/lox/lang/token"

type (
	// VarDecl represents a `var name [= init];` declaration.
	VarDecl struct {
		Keyword token.Tok
		Name    token.Tok
		Init    Expr // may be nil
	}

	// FunctionDecl represents a free `fun name(params) { body }` declaration.
	// Class methods use ClassMethodDecl below, which has the same shape
	// without the leading keyword.
	FunctionDecl struct {
		Keyword token.Tok // the `fun` keyword
		Name    token.Tok
		Params  []token.Tok
		Body    *FuncBody
	}

	// ClassMethodDecl represents a single method definition inside a class
	// body. It shares FunctionDecl's fields but is kept as a distinct node so
	// the resolver and evaluator can treat method declaration (which captures
	// the class environment) differently from a free FunctionDecl (which
	// captures the lexical environment).
	ClassMethodDecl struct {
		Name   token.Tok
		Params []token.Tok
		Body   *FuncBody
	}

	// SuperClassDecl names the optional superclass of a ClassDecl.
	SuperClassDecl struct {
		Name token.Tok
	}

	// ClassDecl represents a `class Name [< Super] { methods }` declaration.
	ClassDecl struct {
		Keyword token.Tok
		Name    token.Tok
		Super   *SuperClassDecl // may be nil
		Methods []*ClassMethodDecl
	}
)

func (n *VarDecl) String() string { return "var " + n.Name.Lexeme }
func (n *VarDecl) Line() int      { return n.Keyword.Line }
func (n *VarDecl) stmtNode()      {}

func (n *FunctionDecl) String() string { return "fun " + n.Name.Lexeme }
func (n *FunctionDecl) Line() int      { return n.Name.Line }
func (n *FunctionDecl) stmtNode()      {}

func (n *ClassMethodDecl) String() string { return "method " + n.Name.Lexeme }
func (n *ClassMethodDecl) Line() int      { return n.Name.Line }
func (n *ClassMethodDecl) stmtNode()      {}

func (n *SuperClassDecl) String() string { return "super " + n.Name.Lexeme }
func (n *SuperClassDecl) Line() int      { return n.Name.Line }
func (n *SuperClassDecl) stmtNode()      {}

func (n *ClassDecl) String() string { return "class " + n.Name.Lexeme }
func (n *ClassDecl) Line() int      { return n.Keyword.Line }
func (n *ClassDecl) stmtNode()      {}
