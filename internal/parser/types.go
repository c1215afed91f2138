package parser

import (
	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/lexer"
)

// type ::= 'int' | Id | '&' type | '[' type ']' | funtype
func (p *Parser) parseType() (ast.Type, error) {
	switch {
	case p.check(lexer.Int):
		p.advance()
		return &ast.IntType{}, nil
	case p.check(lexer.Id):
		tok := p.advance()
		return &ast.StructType{Name: tok.Value}, nil
	case p.check(lexer.Ampersand):
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.PtrType{Inner: inner}, nil
	case p.check(lexer.OpenBracket):
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.CloseBracket); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Inner: inner}, nil
	default:
		return p.parseFunType()
	}
}

// funtype ::= '(' LIST(type) ')' '->' type
func (p *Parser) parseFunType() (ast.Type, error) {
	if _, err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}
	params, err := parseList(p, lexer.CloseParen, p.parseType)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Arrow); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.FnType{Params: params, Ret: ret}, nil
}
