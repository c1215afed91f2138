package parser

import (
	"strings"

	"github.com/lilac-lang/lilac/internal/lexer"
)

// Token is one entry of the parser's input stream, read back from the
// lexer's textual output. Value is set only for kinds that carry a payload.
// Index is the token's 0-based position in the stream and appears verbatim
// in error messages.
type Token struct {
	Type  lexer.TokenType
	Value string
	Index int
}

// ReadTokens converts one line of the textual token format into tokens.
// Kinds printed with a parenthesized payload, such as Id(x) or Num(42),
// yield kind plus value; bare kinds yield kind only.
func ReadTokens(line string) []Token {
	var tokens []Token
	for _, field := range strings.Fields(line) {
		tok := Token{Index: len(tokens)}
		if open := strings.IndexByte(field, '('); open >= 0 && strings.HasSuffix(field, ")") {
			tok.Type = lexer.TokenType(field[:open])
			tok.Value = field[open+1 : len(field)-1]
		} else {
			tok.Type = lexer.TokenType(field)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
