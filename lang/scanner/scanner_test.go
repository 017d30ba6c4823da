package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

func kinds(toks []token.Tok) []token.Token {
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanSourcePunctuationAndKeywords(t *testing.T) {
	toks, err := scanner.ScanSource([]byte(`(){},.-+;/*! != = == > >= < <= and class`))
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.SLASH,
		token.STAR, token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ,
		token.GT, token.GT_EQ, token.LT, token.LT_EQ, token.AND, token.CLASS,
		token.EOF,
	}, kinds(toks))
}

func TestScanSourceComment(t *testing.T) {
	toks, err := scanner.ScanSource([]byte("1 // a comment\n2"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanSourceString(t *testing.T) {
	toks, err := scanner.ScanSource([]byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanSourceStringSpansLines(t *testing.T) {
	toks, err := scanner.ScanSource([]byte("\"a\nb\"\nfoo"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb", toks[0].Literal)
	assert.Equal(t, 3, toks[1].Line)
}

func TestScanSourceUnterminatedString(t *testing.T) {
	_, err := scanner.ScanSource([]byte(`"unterminated`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string.")
}

func TestScanSourceNumber(t *testing.T) {
	toks, err := scanner.ScanSource([]byte("123 45.67 89."))
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
	// a trailing '.' with no fractional digit is its own DOT token.
	assert.Equal(t, 89.0, toks[2].Literal)
	assert.Equal(t, token.DOT, toks[3].Type)
}

func TestScanSourceIdentifier(t *testing.T) {
	toks, err := scanner.ScanSource([]byte("_foo bar123 orchid"))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	for _, tt := range toks[:3] {
		assert.Equal(t, token.IDENT, tt.Type)
	}
	assert.Equal(t, "orchid", toks[2].Lexeme)
}

func TestScanSourceUnexpectedCharacter(t *testing.T) {
	_, err := scanner.ScanSource([]byte("var a = @;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character.")
}
