package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseEnumDecl parses `enum Name<T, ...> { Variant(Ty, ...), Bare, ... }`.
// Variants are tuple-style only — a variant with no parenthesized fields
// is a zero-field tuple variant (SPEC_FULL §3, resolved Open Question).
func (p *Parser) parseEnumDecl(exported bool) (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'enum'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	typeParams := p.parseTypeParams()
	p.expect(token.LBrace, "'{'")

	var variants []ast.VariantID
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		vstart := p.peek()
		vname, vnameSpan, okName := p.parseIdent()
		if !okName {
			p.resyncEnumVariant()
			continue
		}
		var fields []ast.TypeID
		if p.at(token.LParen) {
			p.advance()
			for !p.at(token.EOF) && !p.at(token.RParen) {
				fields = append(fields, p.parseType())
				if !p.at(token.RParen) {
					if _, okComma := p.expect(token.Comma, "','"); !okComma {
						break
					}
				}
			}
			p.expect(token.RParen, "')'")
		}
		variants = append(variants, p.tree.Enums.NewVariant(ast.VariantSyn{
			Name: vname, NameSpan: vnameSpan, Fields: fields, Span: p.span(vstart),
		}))
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")

	item := ast.EnumItem{
		Name:       name,
		NameSpan:   nameSpan,
		Exported:   exported,
		TypeParams: typeParams,
		Variants:   variants,
		Span:       p.span(startTok),
	}
	id := p.tree.Items.New(ast.ItemEnum, p.tree.Enums.New(item), item.Span)
	return id, true
}

func (p *Parser) resyncEnumVariant() {
	for !p.at(token.EOF) && !p.at(token.RBrace) && !p.at(token.Comma) {
		p.advance()
	}
	if p.at(token.Comma) {
		p.advance()
	}
}
