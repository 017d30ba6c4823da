// Package scanner implements the lexical scanner that turns Lox source text
// into a sequence of tokens for the parser to consume.
package scanner

import (
	"os"
	"strconv"

	"github.com/mna/lox/lang/token"
)

// Scanner tokenizes a single source file. The zero value is not usable;
// construct one with Init.
type Scanner struct {
	src  []byte
	errs *token.ErrorList

	start   int // byte offset of the start of the current lexeme
	current int // byte offset of the next unread byte
	line    int // 1-based line of the current lexeme's start
	curLine int // 1-based line of s.current
}

// Init prepares s to scan src, reporting errors (if any) to errs.
func (s *Scanner) Init(src []byte, errs *token.ErrorList) {
	s.src = src
	s.errs = errs
	s.start = 0
	s.current = 0
	s.line = 1
	s.curLine = 1
}

// ScanFile reads filename and scans it to completion, returning every token
// (EOF included) along with any scanning error encountered. A failure to read
// filename is returned as is; any other non-nil error is a
// *token.ErrorList's Err() result.
func ScanFile(filename string) ([]token.Tok, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ScanSource(src)
}

// ScanSource scans src to completion, returning every token (EOF included)
// along with any scanning error encountered.
func ScanSource(src []byte) ([]token.Tok, error) {
	var errs token.ErrorList
	var s Scanner
	s.Init(src, &errs)

	var toks []token.Tok
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, errs.Err()
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.current]
	s.current++
	if b == '\n' {
		s.curLine++
	}
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match advances and returns true if the current byte equals want.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errs.Add(s.line, format, args...)
}

func (s *Scanner) make(typ token.Token) token.Tok {
	return token.Tok{Type: typ, Value: token.Value{Line: s.line, Lexeme: string(s.src[s.start:s.current])}}
}

func (s *Scanner) makeLiteral(typ token.Token, lit interface{}) token.Tok {
	t := s.make(typ)
	t.Literal = lit
	return t
}

// Scan returns the next token in the source. Once EOF is reached, every
// subsequent call returns EOF again.
func (s *Scanner) Scan() token.Tok {
	s.skipWhitespaceAndComments()

	s.start = s.current
	s.line = s.curLine
	if s.atEnd() {
		return s.make(token.EOF)
	}

	c := s.advance()
	switch {
	case isAlpha(c):
		return s.identifier()
	case isDigit(c):
		return s.number()
	}

	switch c {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case ';':
		return s.make(token.SEMICOLON)
	case '*':
		return s.make(token.STAR)
	case '/':
		return s.make(token.SLASH)
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQ)
		}
		return s.make(token.BANG)
	case '=':
		if s.match('=') {
			return s.make(token.EQ_EQ)
		}
		return s.make(token.EQ)
	case '<':
		if s.match('=') {
			return s.make(token.LT_EQ)
		}
		return s.make(token.LT)
	case '>':
		if s.match('=') {
			return s.make(token.GT_EQ)
		}
		return s.make(token.GT)
	case '"':
		return s.string()
	}

	s.errorf("Unexpected character.")
	return s.make(token.ILLEGAL)
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns,
// newlines and "//" line comments, leaving s.current at the start of the
// next token (or at EOF).
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		if s.atEnd() {
			return
		}
		switch s.src[s.current] {
		case ' ', '\r', '\t', '\n':
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) string() token.Tok {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		s.advance() // newlines inside strings are literal and count lines
	}
	if s.atEnd() {
		s.line = startLine
		s.errorf("Unterminated string.")
		return s.make(token.ILLEGAL)
	}
	s.advance() // closing quote
	val := string(s.src[s.start+1 : s.current-1])
	t := s.makeLiteral(token.STRING, val)
	t.Line = startLine
	return t
}

func (s *Scanner) number() token.Tok {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lit := string(s.src[s.start:s.current])
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf("invalid number literal: %s", lit)
	}
	return s.makeLiteral(token.NUMBER, f)
}

func (s *Scanner) identifier() token.Tok {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lit := string(s.src[s.start:s.current])
	return s.make(token.LookupIdent(lit))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
