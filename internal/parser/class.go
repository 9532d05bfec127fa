package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseClassDecl parses `class Name<T, ...> { field: Ty, ... fn method()... }`.
// Fields and methods may appear in any order; each member may carry its own
// `pub`.
func (p *Parser) parseClassDecl(exported bool) (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'class'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "'{'")

	var fields []ast.FieldID
	var methods []ast.ItemID
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		memberExported := false
		if p.at(token.KwPub) {
			p.advance()
			memberExported = true
		}
		if p.at(token.KwFn) {
			fnID, okFn := p.parseFnDecl(memberExported)
			if okFn {
				methods = append(methods, fnID)
			} else {
				p.resyncClassMember()
			}
			continue
		}
		fstart := p.peek()
		fname, fnameSpan, okName := p.parseIdent()
		if !okName {
			p.resyncClassMember()
			continue
		}
		p.expect(token.Colon, "':'")
		ty := p.parseType()
		fields = append(fields, p.tree.Classes.NewField(ast.FieldSyn{
			Name: fname, NameSpan: fnameSpan, Ty: ty, Span: p.span(fstart),
		}))
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")

	item := ast.ClassItem{
		Name:       name,
		NameSpan:   nameSpan,
		Exported:   exported,
		TypeParams: typeParams,
		Fields:     fields,
		Methods:    methods,
		Span:       p.span(startTok),
	}
	id := p.tree.Items.New(ast.ItemClass, p.tree.Classes.New(item), item.Span)
	return id, true
}

func (p *Parser) resyncClassMember() {
	for !p.at(token.EOF) && !p.at(token.RBrace) && !p.at(token.Comma) && !p.at(token.KwFn) && !p.at(token.KwPub) {
		p.advance()
	}
	if p.at(token.Comma) {
		p.advance()
	}
}
