package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseModDecl parses `mod name;`.
func (p *Parser) parseModDecl() (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'mod'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	p.expect(token.Semicolon, "';'")
	item := ast.ModItem{Name: name, NameSpan: nameSpan, Span: p.span(startTok)}
	id := p.tree.Items.New(ast.ItemMod, p.tree.Modules.NewMod(item), item.Span)
	return id, true
}

// parseUseDecl parses `use a::b::{c, d};` — a linear chain of simple
// segments, optionally terminated by a brace group of leaf names (spec
// §4.5 "imports decompose a use a::b::{c,d} into a linear segment list").
// Only the final segment may carry a nested brace group; tox's grammar
// has no nested braces mid-path.
func (p *Parser) parseUseDecl() (ast.ItemID, bool) {
	startTok := p.peek()
	p.advance() // 'use'
	var segments []ast.SegmentID
	for {
		segStart := p.peek()
		if p.at(token.LBrace) {
			p.errUnexpected("a path segment")
			break
		}
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			break
		}
		var nested []ast.SegmentID
		if p.at(token.ColonColon) {
			p.advance()
			if p.at(token.LBrace) {
				nested = p.parseUseBraceGroup()
				segments = append(segments, p.tree.Modules.NewSegment(ast.SegmentSyn{
					Name: name, NameSpan: nameSpan, Nested: nested, Span: p.span(segStart),
				}))
				break
			}
			segments = append(segments, p.tree.Modules.NewSegment(ast.SegmentSyn{
				Name: name, NameSpan: nameSpan, Span: p.span(segStart),
			}))
			continue
		}
		segments = append(segments, p.tree.Modules.NewSegment(ast.SegmentSyn{
			Name: name, NameSpan: nameSpan, Span: p.span(segStart),
		}))
		break
	}
	p.expect(token.Semicolon, "';'")
	item := ast.UseItem{Segments: segments, Span: p.span(startTok)}
	id := p.tree.Items.New(ast.ItemUse, p.tree.Modules.NewUse(item), item.Span)
	return id, true
}

// parseUseBraceGroup parses the `{c, d}` leaf-name group terminating a use
// path. Each leaf is stored as a zero-nested segment.
func (p *Parser) parseUseBraceGroup() []ast.SegmentID {
	p.advance() // '{'
	var leaves []ast.SegmentID
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		leafStart := p.peek()
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			break
		}
		leaves = append(leaves, p.tree.Modules.NewSegment(ast.SegmentSyn{
			Name: name, NameSpan: nameSpan, Span: p.span(leafStart),
		}))
		if !p.at(token.RBrace) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RBrace, "'}'")
	return leaves
}
