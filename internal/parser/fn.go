package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseFnDecl parses `fn name<T, ...>(pat: Ty, ...) -> Ret { ... }` or the
// bodyless form `fn name(...) -> Ret;` (a declaration, spec §4.5 "function
// without a body stores body: None").
func (p *Parser) parseFnDecl(exported bool) (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'fn'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	typeParams := p.parseTypeParams()
	params := p.parseParamList()

	var returns ast.TypeID
	if p.at(token.Arrow) {
		p.advance()
		returns = p.parseType()
	}

	var body ast.BlockID
	if p.at(token.Semicolon) {
		p.advance()
	} else {
		body = p.parseBlock()
	}

	item := ast.FnItem{
		Name:       name,
		NameSpan:   nameSpan,
		Exported:   exported,
		TypeParams: typeParams,
		Params:     params,
		Returns:    returns,
		Body:       body,
		Span:       p.span(startTok),
	}
	id := p.tree.Items.New(ast.ItemFn, p.tree.Fns.New(item), item.Span)
	return id, true
}

// parseParamList parses `(name: Type, ...)`.
func (p *Parser) parseParamList() []ast.ParamID {
	p.expect(token.LParen, "'('")
	var params []ast.ParamID
	for !p.at(token.EOF) && !p.at(token.RParen) {
		pstart := p.peek()
		pat := p.parsePattern(false)
		p.expect(token.Colon, "':'")
		ty := p.parseType()
		params = append(params, p.tree.Fns.NewParam(ast.ParamSyn{Pat: pat, Ty: ty, Span: p.span(pstart)}))
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')'")
	return params
}
