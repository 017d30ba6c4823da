// Package parser implements the recursive-descent parser that turns a Lox
// token stream into an *ast.Program.
package parser

import (
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// ParseFile reads and parses filename, returning the resulting program and
// any error encountered. A failure to read filename is returned as is; any
// other non-nil error is the result of a *token.ErrorList's Err().
func ParseFile(filename string) (*ast.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// Parse parses src as a full Lox program (a sequence of declarations).
func Parse(src []byte) (*ast.Program, error) {
	toks, scanErr := scanner.ScanSource(src)
	var p parser
	p.init(toks)
	prog := p.parseProgram()
	if scanErr != nil {
		return prog, scanErr
	}
	return prog, p.errs.Err()
}

// ParseExpr parses src as a single expression, as used by the `parse` and
// `evaluate` CLI subcommands.
func ParseExpr(src []byte) (ast.Expr, error) {
	toks, scanErr := scanner.ScanSource(src)
	var p parser
	p.init(toks)
	e := p.parseSingleExpr()
	if scanErr != nil {
		return e, scanErr
	}
	return e, p.errs.Err()
}

type parser struct {
	toks []token.Tok
	pos  int
	errs token.ErrorList
}

func (p *parser) init(toks []token.Tok) {
	p.toks = toks
	p.pos = 0
}

func (p *parser) cur() token.Tok  { return p.toks[p.pos] }
func (p *parser) curType() token.Token { return p.toks[p.pos].Type }

func (p *parser) advance() token.Tok {
	t := p.toks[p.pos]
	if t.Type != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) check(t token.Token) bool { return p.curType() == t }

// matchAny advances and returns true if the current token is one of types.
func (p *parser) matchAny(types ...token.Token) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

type parseError struct{}

// expect consumes the current token if it has type t, otherwise records an
// error and panics with parseError{}, to be recovered at the statement
// boundary (see synchronize).
func (p *parser) expect(t token.Token, msg string) token.Tok {
	if p.check(t) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(parseError{})
}

func (p *parser) errorAtCurrent(msg string) {
	cur := p.cur()
	if cur.Type == token.EOF {
		p.errs.Add(cur.Line, "%s at end", msg)
	} else {
		p.errs.Add(cur.Line, "%s at '%s'", msg, cur.Lexeme)
	}
}

func (p *parser) error(line int, msg string) {
	p.errs.Add(line, "%s", msg)
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so that a single parse error doesn't cascade into a flood of
// spurious ones.
func (p *parser) synchronize() {
	for !p.check(token.EOF) {
		if p.pos > 0 && p.toks[p.pos-1].Type == token.SEMICOLON {
			return
		}
		switch p.curType() {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		if s := p.declarationRecover(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}
	return prog
}

func (p *parser) parseSingleExpr() ast.Expr {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
		}
	}()
	e := p.expression()
	if !p.check(token.EOF) {
		p.errorAtCurrent("Expect end of expression.")
	}
	return e
}

// declarationRecover parses one top-level declaration, recovering from a
// parse error by synchronizing to the next statement boundary and returning
// nil for the failed declaration.
func (p *parser) declarationRecover() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}
