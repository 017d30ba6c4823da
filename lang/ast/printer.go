package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders e in the parenthesized prefix form used by the `parse`
// subcommand: the operator (or a descriptive tag) comes first, followed by
// the operands as an s-expression. It is used only for debugging; callers
// that need exact byte-for-byte output should not change this format
// casually.
func Print(e Expr) string {
	switch e := e.(type) {
	case *NilExpr:
		return "nil"
	case *LiteralExpr:
		return printLiteral(e)
	case *VariableExpr:
		return e.Name.Lexeme
	case *GroupingExpr:
		return parenthesize("group", e.Inner)
	case *UnaryExpr:
		return parenthesize(e.Op.Type.String(), e.Right)
	case *BinaryExpr:
		return parenthesize(e.Op.Type.String(), e.Left, e.Right)
	case *LogicalExpr:
		return parenthesize(e.Op.Type.String(), e.Left, e.Right)
	case *AssignExpr:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *CallExpr:
		args := append([]Expr{e.Callee}, e.Args...)
		return parenthesize("fn", args...)
	case *GetExpr:
		return parenthesize("get "+e.Name.Lexeme, e.Obj)
	case *SetExpr:
		return parenthesize("set "+e.Name.Lexeme, e.Obj, e.Value)
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "(super " + e.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printLiteral(e *LiteralExpr) string {
	switch v := e.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return "nil"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
