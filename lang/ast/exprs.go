package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

type (
	// NilExpr represents the literal `nil`.
	NilExpr struct {
		TokLine int
	}

	// LiteralExpr represents a number, string, true or false literal.
	LiteralExpr struct {
		Type    token.Token // NUMBER, STRING, TRUE or FALSE
		TokLine int
		Value   interface{} // float64 | string | bool
	}

	// VariableExpr represents a bare identifier used as an expression, e.g.
	// the `x` in `print x;`.
	VariableExpr struct {
		Name token.Tok
	}

	// GroupingExpr represents a parenthesized expression, e.g. (1 + 2).
	GroupingExpr struct {
		Paren token.Tok
		Inner Expr
	}

	// UnaryExpr represents a unary operator expression, e.g. -4 or !done.
	UnaryExpr struct {
		Op    token.Tok
		Right Expr
	}

	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Tok
		Right Expr
	}

	// LogicalExpr represents a short-circuiting `and`/`or` expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Tok
		Right Expr
	}

	// AssignExpr represents an assignment to a variable, e.g. x = 1.
	AssignExpr struct {
		Name  token.Tok
		Value Expr
	}

	// CallExpr represents a function or class call, e.g. f(1, 2).
	CallExpr struct {
		Callee Expr
		Paren  token.Tok // closing paren, used for error line reporting
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. obj.field.
	GetExpr struct {
		Obj  Expr
		Name token.Tok
	}

	// SetExpr represents a property assignment, e.g. obj.field = v. The
	// parser builds this directly out of a GetExpr target rather than wrapping
	// one, since the target's Obj/Name are all that is needed.
	SetExpr struct {
		Obj   Expr
		Name  token.Tok
		Value Expr
	}

	// ThisExpr represents the `this` keyword inside a method body.
	ThisExpr struct {
		Keyword token.Tok
	}

	// SuperExpr represents a `super.method` expression.
	SuperExpr struct {
		Keyword token.Tok
		Method  token.Tok
	}
)

func (n *NilExpr) String() string { return "nil" }
func (n *NilExpr) Line() int      { return n.TokLine }
func (n *NilExpr) exprNode()      {}

func (n *LiteralExpr) String() string {
	switch v := n.Value.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
func (n *LiteralExpr) Line() int { return n.TokLine }
func (n *LiteralExpr) exprNode() {}

func (n *VariableExpr) String() string { return n.Name.Lexeme }
func (n *VariableExpr) Line() int      { return n.Name.Line }
func (n *VariableExpr) exprNode()      {}

func (n *GroupingExpr) String() string { return "(group)" }
func (n *GroupingExpr) Line() int      { return n.Paren.Line }
func (n *GroupingExpr) exprNode()      {}

func (n *UnaryExpr) String() string { return "unary " + n.Op.Type.GoString() }
func (n *UnaryExpr) Line() int      { return n.Op.Line }
func (n *UnaryExpr) exprNode()      {}

func (n *BinaryExpr) String() string { return "binary " + n.Op.Type.GoString() }
func (n *BinaryExpr) Line() int      { return n.Op.Line }
func (n *BinaryExpr) exprNode()      {}

func (n *LogicalExpr) String() string { return "logical " + n.Op.Type.GoString() }
func (n *LogicalExpr) Line() int      { return n.Op.Line }
func (n *LogicalExpr) exprNode()      {}

func (n *AssignExpr) String() string { return "assign " + n.Name.Lexeme }
func (n *AssignExpr) Line() int      { return n.Name.Line }
func (n *AssignExpr) exprNode()      {}

func (n *CallExpr) String() string { return "call" }
func (n *CallExpr) Line() int      { return n.Paren.Line }
func (n *CallExpr) exprNode()      {}

func (n *GetExpr) String() string { return "get " + n.Name.Lexeme }
func (n *GetExpr) Line() int      { return n.Name.Line }
func (n *GetExpr) exprNode()      {}

func (n *SetExpr) String() string { return "set " + n.Name.Lexeme }
func (n *SetExpr) Line() int      { return n.Name.Line }
func (n *SetExpr) exprNode()      {}

func (n *ThisExpr) String() string { return "this" }
func (n *ThisExpr) Line() int      { return n.Keyword.Line }
func (n *ThisExpr) exprNode()      {}

func (n *SuperExpr) String() string { return "super." + n.Method.Lexeme }
func (n *SuperExpr) Line() int      { return n.Keyword.Line }
func (n *SuperExpr) exprNode()      {}
