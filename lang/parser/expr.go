package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// expression -> assignment
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> ( call "." )? IDENT "=" assignment | logic_or
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.check(token.EQ) {
		eq := p.advance()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Obj: target.Obj, Name: target.Name, Value: value}
		default:
			p.error(eq.Line, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logic_or -> logic_and ( "or" logic_and )*
func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.check(token.OR) {
		op := p.advance()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and -> equality ( "and" equality )*
func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.BANG_EQ) || p.check(token.EQ_EQ) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.GT) || p.check(token.GT_EQ) || p.check(token.LT) || p.check(token.LT_EQ) {
		op := p.advance()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term -> factor ( ( "-" | "+" ) factor )*
func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.advance()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor -> unary ( ( "/" | "*" ) unary )*
func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.advance()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | call
func (p *parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." IDENT )*
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			name := p.expect(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{Obj: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= 255 {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary -> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//          | IDENT | "super" "." IDENT | "this"
func (p *parser) primary() ast.Expr {
	switch {
	case p.check(token.FALSE):
		t := p.advance()
		return &ast.LiteralExpr{Type: token.FALSE, TokLine: t.Line, Value: false}
	case p.check(token.TRUE):
		t := p.advance()
		return &ast.LiteralExpr{Type: token.TRUE, TokLine: t.Line, Value: true}
	case p.check(token.NIL):
		t := p.advance()
		return &ast.NilExpr{TokLine: t.Line}
	case p.check(token.NUMBER):
		t := p.advance()
		return &ast.LiteralExpr{Type: token.NUMBER, TokLine: t.Line, Value: t.Literal}
	case p.check(token.STRING):
		t := p.advance()
		return &ast.LiteralExpr{Type: token.STRING, TokLine: t.Line, Value: t.Literal}
	case p.check(token.SUPER):
		kw := p.advance()
		p.expect(token.DOT, "Expect '.' after 'super'.")
		method := p.expect(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: kw, Method: method}
	case p.check(token.THIS):
		kw := p.advance()
		return &ast.ThisExpr{Keyword: kw}
	case p.check(token.IDENT):
		return &ast.VariableExpr{Name: p.advance()}
	case p.check(token.LPAREN):
		paren := p.advance()
		inner := p.expression()
		p.expect(token.RPAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Paren: paren, Inner: inner}
	default:
		p.errorAtCurrent("Expect expression.")
		panic(parseError{})
	}
}
