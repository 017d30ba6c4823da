package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// statement -> exprStmt | forStmt | ifStmt | printStmt | returnStmt |
//              whileStmt | block
func (p *parser) statement() ast.Stmt {
	switch {
	case p.check(token.FOR):
		return p.forStmt()
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.PRINT):
		return p.printStmt()
	case p.check(token.RETURN):
		return p.returnStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.LBRACE):
		lbrace := p.advance()
		return &ast.BlockStmt{LBrace: lbrace, Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

// blockStmts parses declarations until the closing '}', which it consumes.
func (p *parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if s := p.declarationRecover(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "Expect '}' after block.")
	return stmts
}

// printStmt -> "print" expression ";"
func (p *parser) printStmt() ast.Stmt {
	kw := p.advance()
	e := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: kw, Expr: e}
}

// returnStmt -> "return" expression? ";"
func (p *parser) returnStmt() ast.Stmt {
	kw := p.advance()
	var e ast.Expr
	hasValue := false
	if !p.check(token.SEMICOLON) {
		e = p.expression()
		hasValue = true
	} else {
		e = &ast.NilExpr{TokLine: kw.Line}
	}
	p.expect(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: kw, Expr: e, HasValue: hasValue}
}

// exprStmt -> expression ";"
func (p *parser) exprStmt() ast.Stmt {
	e := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: e}
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *parser) ifStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.matchAny(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Keyword: kw, Cond: cond, Then: then, Else: els}
}

// whileStmt -> "while" "(" expression ")" statement
func (p *parser) whileStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Keyword: kw, Cond: cond, Body: body}
}

// forStmt -> "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugars to a block containing the (possibly empty) initializer followed
// by a while loop whose body is the original body followed by the
// (possibly empty) increment, per spec's desugaring rule.
func (p *parser) forStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.matchAny(token.SEMICOLON):
		init = &ast.EmptyStmt{TokLine: kw.Line}
	case p.check(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	} else {
		cond = &ast.LiteralExpr{Type: token.TRUE, TokLine: kw.Line, Value: true}
	}
	p.expect(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Stmt = &ast.EmptyStmt{TokLine: kw.Line}
	if !p.check(token.RPAREN) {
		incr = &ast.ExpressionStmt{Expr: p.expression()}
	}
	p.expect(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()
	loopBody := &ast.BlockStmt{LBrace: kw, Stmts: []ast.Stmt{body, incr}}
	whileLoop := &ast.WhileStmt{Keyword: kw, Cond: cond, Body: loopBody}
	return &ast.BlockStmt{LBrace: kw, Stmts: []ast.Stmt{init, whileLoop}}
}
