package parser

import (
	"toxc/internal/ast"
	"toxc/internal/token"
)

// parseBlock parses a `{ stmt* }` block. A bare expression immediately
// followed by '}' needs no semicolon; every other statement does. Neither
// the parser nor the lowerer marks a block's last statement as its value;
// tox has no further implicit-tail-expression sugar to track here (spec §4.5 silent on it, grammar kept minimal per SPEC_FULL §1).
func (p *Parser) parseBlock() ast.BlockID {
	startTok := p.peek()
	p.expect(token.LBrace, "'{'")
	var stmts []ast.StmtID
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		before := p.peek()
		id, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, id)
		}
		if !p.at(token.EOF) {
			after := p.peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	p.expect(token.RBrace, "'}'")
	return p.tree.Stmts.NewBlock(ast.BlockSyn{Stmts: stmts, Span: p.span(startTok)})
}

// parseStmt parses one statement: `let pattern = expr;` or a bare
// expression statement, each terminated by ';'.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	startTok := p.peek()
	if p.at(token.KwLet) {
		p.advance()
		pat := p.parsePattern(false)
		p.expect(token.Assign, "'='")
		init := p.parseExpr(precAssignment)
		p.expect(token.Semicolon, "';'")
		return p.tree.Stmts.New(ast.StmtSyn{
			Kind:        ast.StmtSynLet,
			Pat:         pat,
			Initializer: init,
			Span:        p.span(startTok),
		}), true
	}

	expr := p.parseExpr(precAssignment)
	if expr == ast.NoExprID {
		return ast.NoStmtID, false
	}
	// A tail expression closing out a block needs no semicolon (spec.md's
	// own §8 example: `fn id<T>(x:T) -> T { x }`); anywhere else the
	// terminator is required.
	if !p.at(token.RBrace) {
		p.expect(token.Semicolon, "';'")
	}
	return p.tree.Stmts.New(ast.StmtSyn{
		Kind: ast.StmtSynExpr,
		Expr: expr,
		Span: p.span(startTok),
	}), true
}
