package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseTypeAliasDecl parses `type Name<T, ...> = Ty;`.
func (p *Parser) parseTypeAliasDecl(exported bool) (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'type'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	typeParams := p.parseTypeParams()
	p.expect(token.Assign, "'='")
	ty := p.parseType()
	p.expect(token.Semicolon, "';'")
	item := ast.TypeAliasItem{
		Name:       name,
		NameSpan:   nameSpan,
		Exported:   exported,
		TypeParams: typeParams,
		Ty:         ty,
		Span:       p.span(startTok),
	}
	id := p.tree.Items.New(ast.ItemType, p.tree.TypeAliases.New(item), item.Span)
	return id, true
}
