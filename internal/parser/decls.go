package parser

import (
	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/lexer"
)

// program ::= (struct | extern | function)+
func (p *Parser) parseProgram() (*ast.Program, error) {
	if p.isAtEnd() {
		return nil, p.errEndOfStream()
	}

	prog := &ast.Program{}
	for !p.isAtEnd() {
		switch {
		case p.check(lexer.Struct):
			s, err := p.parseStructDef()
			if err != nil {
				return nil, err
			}
			prog.Structs = append(prog.Structs, s)
		case p.check(lexer.Extern):
			e, err := p.parseExternDef()
			if err != nil {
				return nil, err
			}
			prog.Externs = append(prog.Externs, e)
		case p.check(lexer.Fn):
			f, err := p.parseFunctionDef()
			if err != nil {
				return nil, err
			}
			prog.Functions = append(prog.Functions, f)
		default:
			return nil, p.errUnexpected(p.tokens[p.pos])
		}
	}
	return prog, nil
}

// struct ::= 'struct' Id '{' LIST(decl) '}'
func (p *Parser) parseStructDef() (*ast.StructDef, error) {
	if _, err := p.consume(lexer.Struct); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.Id)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.OpenBrace); err != nil {
		return nil, err
	}
	fields, err := parseList(p, lexer.CloseBrace, p.parseDecl)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.CloseBrace); err != nil {
		return nil, err
	}
	return &ast.StructDef{Name: name.Value, Fields: fields}, nil
}

// extern ::= 'extern' Id ':' funtype ';'
func (p *Parser) parseExternDef() (*ast.Decl, error) {
	if _, err := p.consume(lexer.Extern); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.Id)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon); err != nil {
		return nil, err
	}
	funtype, err := p.parseFunType()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Decl{Name: name.Value, Type: funtype}, nil
}

// function ::= 'fn' Id '(' LIST(decl) ')' '->' type '{' let* stmt* '}'
func (p *Parser) parseFunctionDef() (*ast.FunctionDef, error) {
	if _, err := p.consume(lexer.Fn); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.Id)
	if err != nil {
		return nil, err
	}

	fn := &ast.FunctionDef{Name: name.Value}

	if _, err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}
	if fn.Params, err = parseList(p, lexer.CloseParen, p.parseDecl); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.Arrow); err != nil {
		return nil, err
	}
	if fn.RetType, err = p.parseType(); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.OpenBrace); err != nil {
		return nil, err
	}

	// let ::= 'let' LIST(decl) ';'
	for p.check(lexer.Let) {
		p.advance()
		locals, err := parseList(p, lexer.Semicolon, p.parseDecl)
		if err != nil {
			return nil, err
		}
		fn.Locals = append(fn.Locals, locals...)
		if _, err := p.consume(lexer.Semicolon); err != nil {
			return nil, err
		}
	}

	for !p.check(lexer.CloseBrace) && !p.isAtEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		fn.Stmts = append(fn.Stmts, stmt)
	}

	if _, err := p.consume(lexer.CloseBrace); err != nil {
		return nil, err
	}
	return fn, nil
}

// decl ::= Id ':' type
func (p *Parser) parseDecl() (*ast.Decl, error) {
	name, err := p.consume(lexer.Id)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Decl{Name: name.Value, Type: typ}, nil
}
