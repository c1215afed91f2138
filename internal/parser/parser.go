// Package parser builds the Lilac AST from a token stream. The parser is a
// classical recursive-descent implementation with one function per grammar
// non-terminal and a single token of lookahead. It aborts on the first
// error: no partial AST is ever returned.
package parser

import (
	"fmt"

	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/diag"
	"github.com/lilac-lang/lilac/internal/lexer"
)

// ParseError is the single diagnostic a failed parse produces. Message is
// one of the fixed parse error forms. Index is the offending token's
// position, or -1 when the stream ended early.
type ParseError struct {
	Message string
	Code    diag.Code
	Index   int
}

func (e *ParseError) Error() string {
	return e.Message
}

// ToDiagnostic converts the error into a shared diagnostic structure.
func (e *ParseError) ToDiagnostic() diag.Diagnostic {
	var span diag.Span
	if e.Index >= 0 {
		span = diag.Span{Start: e.Index, End: e.Index + 1}
	}
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     e.Code,
		Message:  e.Message,
		Span:     span,
	}
}

// Parser consumes a token stream with one token of lookahead. A Parser is
// used for a single Parse call and then discarded.
type Parser struct {
	tokens []Token
	pos    int
}

// New returns a parser over the given token stream.
func New(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole program. On failure it returns the first error
// encountered and no AST.
func (p *Parser) Parse() (*ast.Program, error) {
	return p.parseProgram()
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (Token, error) {
	if p.isAtEnd() {
		return Token{}, p.errEndOfStream()
	}
	return p.tokens[p.pos], nil
}

// advance consumes and returns the current token. Call sites guard with
// check or peek first.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// check reports whether the current token has the given type. It is false
// at end of input.
func (p *Parser) check(tt lexer.TokenType) bool {
	return !p.isAtEnd() && p.tokens[p.pos].Type == tt
}

// checkAny reports whether the current token has one of the given types.
func (p *Parser) checkAny(tts ...lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	cur := p.tokens[p.pos].Type
	for _, tt := range tts {
		if cur == tt {
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected type and
// fails otherwise.
func (p *Parser) consume(tt lexer.TokenType) (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != tt {
		return Token{}, p.errUnexpected(tok)
	}
	return p.advance(), nil
}

// parseList parses LIST(X): zero or more comma-separated items, ending
// before closing. The closing token is left for the caller to consume.
func parseList[T any](p *Parser, closing lexer.TokenType, parse func() (T, error)) ([]T, error) {
	var items []T
	if p.check(closing) {
		return items, nil
	}
	for {
		item, err := parse()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.check(lexer.Comma) {
			return items, nil
		}
		p.advance()
	}
}

func (p *Parser) errEndOfStream() error {
	return &ParseError{
		Message: "parse error: unexpected end of token stream",
		Code:    diag.CodeParseUnexpectedEnd,
		Index:   -1,
	}
}

func (p *Parser) errUnexpected(tok Token) error {
	return &ParseError{
		Message: fmt.Sprintf("parse error: unexpected token at token %d", tok.Index),
		Code:    diag.CodeParseUnexpectedToken,
		Index:   tok.Index,
	}
}

func errNotPlace(index int) error {
	return &ParseError{
		Message: fmt.Sprintf("parse error: left-hand side of assignment must be a place, starting at token %d", index),
		Code:    diag.CodeParseNonPlaceAssign,
		Index:   index,
	}
}

func errNotCall(index int) error {
	return &ParseError{
		Message: fmt.Sprintf("parse error: standalone expressions must be function calls, starting at token %d", index),
		Code:    diag.CodeParseNonCallStmt,
		Index:   index,
	}
}

func errBadNumber(text string, index int) error {
	return &ParseError{
		Message: fmt.Sprintf("parse error: invalid i64 number %s at token %d", text, index),
		Code:    diag.CodeParseBadNumber,
		Index:   index,
	}
}
