package parser

import (
	"strconv"

	"github.com/lilac-lang/lilac/internal/ast"
	"github.com/lilac-lang/lilac/internal/lexer"
)

var cmpOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.Equal: ast.Eq,
	lexer.NotEq: ast.NotEq,
	lexer.Lt:    ast.Lt,
	lexer.Lte:   ast.Lte,
	lexer.Gt:    ast.Gt,
	lexer.Gte:   ast.Gte,
}

// exp ::= exp1 ('?' exp ':' exp1)*
//
// The true arm recurses at exp, the false arm parses at exp1, and the loop
// chains the resulting Select nodes left to right. a ? b ? c : d : e thus
// folds the inner conditional into the true arm.
func (p *Parser) parseExp() (ast.Exp, error) {
	left, err := p.parseExp1()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.QuestionMark) {
		p.advance()
		tt, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Colon); err != nil {
			return nil, err
		}
		ff, err := p.parseExp1()
		if err != nil {
			return nil, err
		}
		left = &ast.Select{Guard: left, TT: tt, FF: ff}
	}
	return left, nil
}

// exp1 ::= exp2 (('and'|'or') exp2)*, right-associative: after one operator
// the rest of the level parses recursively.
func (p *Parser) parseExp1() (ast.Exp, error) {
	left, err := p.parseExp2()
	if err != nil {
		return nil, err
	}
	if p.checkAny(lexer.And, lexer.Or) {
		op := p.advance()
		right, err := p.parseExp1()
		if err != nil {
			return nil, err
		}
		binop := ast.Or
		if op.Type == lexer.And {
			binop = ast.And
		}
		return &ast.BinOp{Op: binop, Left: left, Right: right}, nil
	}
	return left, nil
}

// exp2 ::= exp3 (('=='|'!='|'<'|'<='|'>'|'>=') exp3)*, left-associative.
func (p *Parser) parseExp2() (ast.Exp, error) {
	left, err := p.parseExp3()
	if err != nil {
		return nil, err
	}
	for !p.isAtEnd() {
		op, ok := cmpOps[p.tokens[p.pos].Type]
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseExp3()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// exp3 ::= exp4 (('+'|'-') exp4)*, left-associative.
func (p *Parser) parseExp3() (ast.Exp, error) {
	left, err := p.parseExp4()
	if err != nil {
		return nil, err
	}
	for p.checkAny(lexer.Plus, lexer.Dash) {
		op := p.advance()
		right, err := p.parseExp4()
		if err != nil {
			return nil, err
		}
		binop := ast.Sub
		if op.Type == lexer.Plus {
			binop = ast.Add
		}
		left = &ast.BinOp{Op: binop, Left: left, Right: right}
	}
	return left, nil
}

// exp4 ::= exp5 (('*'|'/') exp5)*, left-associative.
func (p *Parser) parseExp4() (ast.Exp, error) {
	left, err := p.parseExp5()
	if err != nil {
		return nil, err
	}
	for p.checkAny(lexer.Star, lexer.Slash) {
		op := p.advance()
		right, err := p.parseExp5()
		if err != nil {
			return nil, err
		}
		binop := ast.Div
		if op.Type == lexer.Star {
			binop = ast.Mul
		}
		left = &ast.BinOp{Op: binop, Left: left, Right: right}
	}
	return left, nil
}

// exp5 ::= ('-'|'not')* exp6; unary operators stack right-associatively.
func (p *Parser) parseExp5() (ast.Exp, error) {
	if p.checkAny(lexer.Dash, lexer.Not) {
		op := p.advance()
		exp, err := p.parseExp5()
		if err != nil {
			return nil, err
		}
		unop := ast.Neg
		if op.Type == lexer.Not {
			unop = ast.Not
		}
		return &ast.UnOp{Op: unop, Exp: exp}, nil
	}
	return p.parseExp6()
}

// exp6 ::= exp7 call_or_access*
// call_or_access ::= '[' exp ']' | '.' (Id | '*') | '(' LIST(exp) ')'
//
// Each access yields a place which is immediately re-wrapped as Val so the
// chain can keep extending; a call wraps the whole prefix as the callee.
func (p *Parser) parseExp6() (ast.Exp, error) {
	exp, err := p.parseExp7()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(lexer.OpenBracket):
			p.advance()
			index, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.CloseBracket); err != nil {
				return nil, err
			}
			exp = &ast.Val{Place: &ast.ArrayAccess{Array: exp, Index: index}}

		case p.check(lexer.Dot):
			p.advance()
			switch {
			case p.check(lexer.Id):
				field := p.advance()
				exp = &ast.Val{Place: &ast.FieldAccess{Ptr: exp, Field: field.Value}}
			case p.check(lexer.Star):
				p.advance()
				exp = &ast.Val{Place: &ast.Deref{Inner: exp}}
			default:
				tok, err := p.peek()
				if err != nil {
					return nil, err
				}
				return nil, p.errUnexpected(tok)
			}

		case p.check(lexer.OpenParen):
			p.advance()
			args, err := parseList(p, lexer.CloseParen, p.parseExp)
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.CloseParen); err != nil {
				return nil, err
			}
			exp = &ast.CallExp{Call: &ast.FunCall{Callee: exp, Args: args}}

		default:
			return exp, nil
		}
	}
}

// exp7 ::= Id | Num | 'nil' | 'new' type | '[' type ';' exp ']' | '(' exp ')'
func (p *Parser) parseExp7() (ast.Exp, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case lexer.Id:
		p.advance()
		return &ast.Val{Place: &ast.Id{Name: tok.Value}}, nil

	case lexer.Num:
		p.advance()
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, errBadNumber(tok.Value, tok.Index)
		}
		return &ast.Num{Value: value}, nil

	case lexer.Nil:
		p.advance()
		return &ast.NilExp{}, nil

	case lexer.NewKw:
		p.advance()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.NewSingle{Type: typ}, nil

	case lexer.OpenBracket:
		p.advance()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Semicolon); err != nil {
			return nil, err
		}
		size, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.CloseBracket); err != nil {
			return nil, err
		}
		return &ast.NewArray{Type: typ, Size: size}, nil

	case lexer.OpenParen:
		p.advance()
		exp, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return exp, nil

	default:
		return nil, p.errUnexpected(tok)
	}
}
