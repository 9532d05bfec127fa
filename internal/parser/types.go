package parser

import (
	"toxc/internal/ast"
	"toxc/internal/source"
	"toxc/internal/token"
)

// parseType parses a type expression: an identifier (optionally generic),
// a parenthesized tuple, an array, or a function type.
func (p *Parser) parseType() ast.TypeID {
	switch p.peek().Kind {
	case token.Ident, token.KwSelfType:
		return p.parseIdentType()
	case token.LBracket:
		return p.parseArrayType()
	case token.LParen:
		return p.parseParenType()
	case token.KwFn:
		return p.parseFnType()
	default:
		p.errUnexpected("a type")
		return ast.NoTypeID
	}
}

func (p *Parser) parseIdentType() ast.TypeID {
	startTok := p.peek()
	var name source.StringID
	if p.at(token.KwSelfType) {
		p.advance()
		name = p.interner.Intern("Self")
	} else {
		id, _, ok := p.parseIdent()
		if !ok {
			return ast.NoTypeID
		}
		name = id
	}

	if !p.at(token.Lt) {
		return p.tree.Types.New(ast.TypeSyn{
			Kind:     ast.TypeSynIdent,
			Name:     name,
			NameSpan: startTok.Span,
			Span:     p.span(startTok),
		})
	}

	p.advance() // '<'
	var args []ast.TypeID
	for !p.at(token.EOF) && !p.at(token.Gt) {
		args = append(args, p.parseType())
		if !p.at(token.Gt) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.Gt, "'>'")

	return p.tree.Types.New(ast.TypeSyn{
		Kind:     ast.TypeSynPoly,
		Name:     name,
		NameSpan: startTok.Span,
		TypeArgs: args,
		Span:     p.span(startTok),
	})
}

func (p *Parser) parseArrayType() ast.TypeID {
	startTok := p.peek()
	p.advance() // '['
	elem := p.parseType()
	hasSize := false
	var sizeExpr ast.ExprID
	if p.at(token.Semicolon) {
		p.advance()
		hasSize = true
		sizeExpr = p.parseExpr(precAssignment)
	}
	p.expect(token.RBracket, "']'")
	return p.tree.Types.New(ast.TypeSyn{
		Kind:     ast.TypeSynArray,
		Elem:     elem,
		HasSize:  hasSize,
		SizeExpr: sizeExpr,
		Span:     p.span(startTok),
	})
}

func (p *Parser) parseParenType() ast.TypeID {
	startTok := p.peek()
	p.advance() // '('
	var elems []ast.TypeID
	for !p.at(token.EOF) && !p.at(token.RParen) {
		elems = append(elems, p.parseType())
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')'")
	return p.tree.Types.New(ast.TypeSyn{
		Kind:  ast.TypeSynParen,
		Elems: elems,
		Span:  p.span(startTok),
	})
}

func (p *Parser) parseFnType() ast.TypeID {
	startTok := p.peek()
	p.advance() // 'fn'
	p.expect(token.LParen, "'('")
	var params []ast.TypeID
	for !p.at(token.EOF) && !p.at(token.RParen) {
		params = append(params, p.parseType())
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')'")
	var ret ast.TypeID
	if p.at(token.Arrow) {
		p.advance()
		ret = p.parseType()
	}
	return p.tree.Types.New(ast.TypeSyn{
		Kind:   ast.TypeSynFn,
		Params: params,
		Ret:    ret,
		Span:   p.span(startTok),
	})
}

// parseTypeParams parses `<T, U, ...>`.
func (p *Parser) parseTypeParams() []ast.TypeParamID {
	if !p.at(token.Lt) {
		return nil
	}
	p.advance()
	var params []ast.TypeParamID
	for !p.at(token.EOF) && !p.at(token.Gt) {
		id, span, ok := p.parseIdent()
		if !ok {
			break
		}
		params = append(params, p.tree.Fns.NewTypeParam(ast.TypeParamSyn{Name: id, Span: span}))
		if !p.at(token.Gt) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.Gt, "'>'")
	return params
}
