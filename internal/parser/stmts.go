package parser

import (
	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/lexer"
)

// stmt ::= 'if' exp block ('else' block)?
//        | 'while' exp block
//        | 'break' ';'
//        | 'continue' ';'
//        | 'return' exp ';'
//        | exp '=' exp ';'
//        | exp ';'
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.check(lexer.If):
		return p.parseIfStmt()
	case p.check(lexer.While):
		return p.parseWhileStmt()
	case p.check(lexer.Return):
		return p.parseReturnStmt()
	case p.check(lexer.Break):
		p.advance()
		if _, err := p.consume(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Break{}, nil
	case p.check(lexer.Continue):
		p.advance()
		if _, err := p.consume(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Continue{}, nil
	}

	// The statement starts with an expression; its shape decides between
	// assignment and a standalone call after the fact.
	first, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := first.Index

	left, err := p.parseExp()
	if err != nil {
		return nil, err
	}

	if p.check(lexer.Gets) {
		p.advance()
		right, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Semicolon); err != nil {
			return nil, err
		}
		val, ok := left.(*ast.Val)
		if !ok {
			return nil, errNotPlace(start)
		}
		return &ast.Assign{Place: val.Place, Exp: right}, nil
	}

	if _, err := p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	call, ok := left.(*ast.CallExp)
	if !ok {
		return nil, errNotCall(start)
	}
	return &ast.CallStmt{Call: call.Call}, nil
}

// 'if' exp block ('else' block)?
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	if _, err := p.consume(lexer.If); err != nil {
		return nil, err
	}
	guard, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	tt, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var ff []ast.Stmt
	if p.check(lexer.Else) {
		p.advance()
		if ff, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return &ast.If{Guard: guard, TT: tt, FF: ff}, nil
}

// 'while' exp block
func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	if _, err := p.consume(lexer.While); err != nil {
		return nil, err
	}
	guard, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Guard: guard, Body: body}, nil
}

// 'return' exp ';'
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	if _, err := p.consume(lexer.Return); err != nil {
		return nil, err
	}
	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Return{Exp: exp}, nil
}

// block ::= '{' stmt* '}'
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.consume(lexer.OpenBrace); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.check(lexer.CloseBrace) && !p.isAtEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(lexer.CloseBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}
