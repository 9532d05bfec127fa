package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parsePattern parses a let/param pattern: a tuple, a binding, a
// placeholder `_`, or — when allowLiteral is set — a literal pattern used
// inside match arms (spec §4.5: literal patterns reuse expression
// parsing at Primary precedence).
func (p *Parser) parsePattern(allowLiteral bool) ast.PatID {
	startTok := p.peek()
	switch startTok.Kind {
	case token.LParen:
		return p.parseTuplePattern(allowLiteral)
	case token.Ident:
		id, span, ok := p.parseIdent()
		if !ok {
			return ast.NoPatID
		}
		return p.tree.Patterns.New(ast.PatSyn{Kind: ast.PatSynBind, Name: id, Span: span})
	case token.Underscore:
		p.advance()
		return p.tree.Patterns.New(ast.PatSyn{Kind: ast.PatSynPlaceholder, Span: startTok.Span})
	default:
		if allowLiteral {
			lit := p.parseExpr(precPrimary)
			return p.tree.Patterns.New(ast.PatSyn{Kind: ast.PatSynLiteral, Literal: lit, Span: p.span(startTok)})
		}
		p.errUnexpected("a pattern")
		return ast.NoPatID
	}
}

func (p *Parser) parseTuplePattern(allowLiteral bool) ast.PatID {
	startTok := p.peek()
	p.advance() // '('
	var elems []ast.PatID
	for !p.at(token.EOF) && !p.at(token.RParen) {
		elems = append(elems, p.parsePattern(allowLiteral))
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')'")
	return p.tree.Patterns.New(ast.PatSyn{Kind: ast.PatSynTuple, Elems: elems, Span: p.span(startTok)})
}
