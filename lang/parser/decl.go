package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// declaration -> classDecl | funDecl | varDecl | statement
func (p *parser) declaration() ast.Stmt {
	switch {
	case p.check(token.CLASS):
		return p.classDecl()
	case p.check(token.FUN):
		return p.funDecl()
	case p.check(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// classDecl -> "class" IDENT ( "<" IDENT )? "{" method* "}"
func (p *parser) classDecl() ast.Stmt {
	kw := p.advance() // 'class'
	name := p.expect(token.IDENT, "Expect class name.")

	var super *ast.SuperClassDecl
	if p.matchAny(token.LT) {
		superName := p.expect(token.IDENT, "Expect superclass name.")
		super = &ast.SuperClassDecl{Name: superName}
	}

	p.expect(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.ClassMethodDecl
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		methods = append(methods, p.methodDecl())
	}
	p.expect(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassDecl{Keyword: kw, Name: name, Super: super, Methods: methods}
}

func (p *parser) methodDecl() *ast.ClassMethodDecl {
	name := p.expect(token.IDENT, "Expect method name.")
	params, body := p.functionRest("method")
	return &ast.ClassMethodDecl{Name: name, Params: params, Body: body}
}

// funDecl -> "fun" IDENT "(" parameters? ")" block
func (p *parser) funDecl() ast.Stmt {
	kw := p.advance() // 'fun'
	name := p.expect(token.IDENT, "Expect function name.")
	params, body := p.functionRest("function")
	return &ast.FunctionDecl{Keyword: kw, Name: name, Params: params, Body: body}
}

// functionRest parses the "(params) { body }" part shared by function and
// method declarations, given a descriptive kind used in error messages.
func (p *parser) functionRest(kind string) ([]token.Tok, *ast.FuncBody) {
	p.expect(token.LPAREN, "Expect '(' after "+kind+" name.")
	var params []token.Tok
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= 255 {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "Expect parameter name."))
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "Expect ')' after parameters.")

	lbrace := p.expect(token.LBRACE, "Expect '{' before "+kind+" body.")
	stmts := p.blockStmts()
	return params, &ast.FuncBody{TokLine: lbrace.Line, Stmts: stmts}
}

// varDecl -> "var" IDENT ( "=" expression )? ";"
func (p *parser) varDecl() ast.Stmt {
	kw := p.advance() // 'var'
	name := p.expect(token.IDENT, "Expect variable name.")

	var init ast.Expr
	if p.matchAny(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarDecl{Keyword: kw, Name: name, Init: init}
}
