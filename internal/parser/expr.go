package parser

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
	"toxc/internal/token"
)

// Precedence levels, lowest to highest. Higher binds tighter. Trimmed
// from a bitwise-operator table down to what tox actually has: no
// shifts, no bitwise and/or/xor.
const (
	precNone           = 0
	precAssignment     = 1
	precLogicalOr      = 2
	precLogicalAnd     = 3
	precEquality       = 4
	precComparison     = 5
	precAdditive       = 6
	precMultiplicative = 7
	precPrimary        = 8
)

func binOpPrec(k token.Kind) (int, ir.BinOp, bool) {
	switch k {
	case token.OrOr:
		return precLogicalOr, ir.OpOr, true
	case token.AndAnd:
		return precLogicalAnd, ir.OpAnd, true
	case token.EqEq:
		return precEquality, ir.OpEqualEqual, true
	case token.BangEq:
		return precEquality, ir.OpNotEqual, true
	case token.Lt:
		return precComparison, ir.OpLessThan, true
	case token.LtEq:
		return precComparison, ir.OpLessThanEqual, true
	case token.Gt:
		return precComparison, ir.OpGreaterThan, true
	case token.GtEq:
		return precComparison, ir.OpGreaterThanEqual, true
	case token.Plus:
		return precAdditive, ir.OpPlus, true
	case token.Minus:
		return precAdditive, ir.OpMinus, true
	case token.Star:
		return precMultiplicative, ir.OpMult, true
	case token.Slash:
		return precMultiplicative, ir.OpDiv, true
	case token.Assign:
		return precAssignment, ir.OpEqual, true
	case token.PlusAssign:
		return precAssignment, ir.OpPlusEqual, true
	case token.MinusAssign:
		return precAssignment, ir.OpMinusEqual, true
	case token.StarAssign:
		return precAssignment, ir.OpMultEqual, true
	case token.SlashAssign:
		return precAssignment, ir.OpDivEqual, true
	default:
		return precNone, 0, false
	}
}

// isRightAssoc reports whether operators at prec associate right-to-left.
// Only assignment forms do; everything else is left-associative.
func isRightAssoc(prec int) bool { return prec == precAssignment }

// parseExpr parses an expression via precedence climbing, stopping once
// the next operator binds looser than minPrec.
func (p *Parser) parseExpr(minPrec int) ast.ExprID {
	lhs := p.parseUnary()

	for {
		prec, op, ok := binOpPrec(p.peek().Kind)
		if !ok || prec < minPrec {
			return lhs
		}
		p.advance()
		nextMin := prec + 1
		if isRightAssoc(prec) {
			nextMin = prec
		}
		rhs := p.parseExpr(nextMin)
		lhsSpan := p.tree.Exprs.Get(lhs).Span
		lhs = p.tree.Exprs.New(ast.ExprSyn{
			Kind: ast.ExprSynBinary,
			Lhs:  lhs,
			Rhs:  rhs,
			Bin:  op,
			Span: lhsSpan.Cover(p.lastSpan),
		})
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	startTok := p.peek()
	switch startTok.Kind {
	case token.Minus:
		p.advance()
		sub := p.parseUnary()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynUnary, UnOp: ir.UnaryMinus, Sub: sub, Span: startTok.Span.Cover(p.lastSpan)})
	case token.Bang:
		p.advance()
		sub := p.parseUnary()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynUnary, UnOp: ir.UnaryExcl, Sub: sub, Span: startTok.Span.Cover(p.lastSpan)})
	default:
		return p.parseCast()
	}
}

func (p *Parser) parseCast() ast.ExprID {
	expr := p.parsePostfix()
	for p.at(token.KwAs) {
		startSpan := p.tree.Exprs.Get(expr).Span
		p.advance()
		ty := p.parseType()
		expr = p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynCast, Sub: expr, CastTy: ty, Span: startSpan.Cover(p.lastSpan)})
	}
	return expr
}

func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case token.LParen:
			expr = p.parseCallTail(expr, nil)
		case token.LBracket:
			expr = p.parseIndexTail(expr)
		case token.Lt:
			// A generic call `name<T, U>(...)` only ever applies to a bare
			// identifier callee (spec §9 "non-ident callees' generic arity
			// is unspecified"); anything else means '<' is the comparison
			// operator, left to parseExpr's precedence climb.
			if p.tree.Exprs.Get(expr).Kind != ast.ExprSynIdent {
				return expr
			}
			typeArgs, ok := p.tryParseCallTypeArgs()
			if !ok {
				return expr
			}
			expr = p.parseCallTail(expr, typeArgs)
		default:
			return expr
		}
	}
}

// tryParseCallTypeArgs speculatively parses `<T, U, ...>` and reports
// success only if it is immediately followed by '(' — otherwise it was a
// comparison expression, and the attempt is rolled back without emitting
// any diagnostics.
func (p *Parser) tryParseCallTypeArgs() ([]ast.TypeID, bool) {
	mark := p.snapshot()
	p.quiet++
	p.advance() // '<'
	var args []ast.TypeID
	ok := true
	for !p.at(token.EOF) && !p.at(token.Gt) {
		if !p.at(token.Ident) && !p.at(token.KwSelfType) && !p.at(token.LBracket) && !p.at(token.LParen) && !p.at(token.KwFn) {
			ok = false
			break
		}
		args = append(args, p.parseType())
		if !p.at(token.Gt) {
			if _, good := p.expect(token.Comma, "','"); !good {
				ok = false
				break
			}
		}
	}
	if ok && p.at(token.Gt) {
		p.advance()
		ok = p.at(token.LParen)
	} else {
		ok = false
	}
	p.quiet--
	if !ok {
		p.restore(mark)
		return nil, false
	}
	return args, true
}

func (p *Parser) parseCallTail(callee ast.ExprID, typeArgs []ast.TypeID) ast.ExprID {
	startSpan := p.tree.Exprs.Get(callee).Span
	p.advance() // '('
	var args []ast.ExprID
	for !p.at(token.EOF) && !p.at(token.RParen) {
		args = append(args, p.parseExpr(precAssignment))
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RParen, "')'")
	return p.tree.Exprs.New(ast.ExprSyn{
		Kind:     ast.ExprSynCall,
		Callee:   callee,
		Args:     args,
		TypeArgs: typeArgs,
		Span:     startSpan.Cover(p.lastSpan),
	})
}

func (p *Parser) parseIndexTail(base ast.ExprID) ast.ExprID {
	startSpan := p.tree.Exprs.Get(base).Span
	p.advance() // '['
	idx := p.parseExpr(precAssignment)
	p.expect(token.RBracket, "']'")
	return p.tree.Exprs.New(ast.ExprSyn{
		Kind:  ast.ExprSynIndex,
		Base:  base,
		Index: idx,
		Span:  startSpan.Cover(p.lastSpan),
	})
}

func (p *Parser) parsePrimary() ast.ExprID {
	startTok := p.peek()
	switch startTok.Kind {
	case token.IntLit:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitInt, LitText: startTok.Text, Span: startTok.Span})
	case token.FloatLit:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitFloat, LitText: startTok.Text, Span: startTok.Span})
	case token.StringLit:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitString, LitText: startTok.Text, Span: startTok.Span})
	case token.KwTrue:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitTrue, Span: startTok.Span})
	case token.KwFalse:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitFalse, Span: startTok.Span})
	case token.KwNil:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynLiteral, LitKind: ir.LitNil, Span: startTok.Span})
	case token.Ident:
		id, span, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID
		}
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynIdent, Name: id, NameSpan: span, Span: span})
	case token.KwSelf:
		p.advance()
		name := p.interner.Intern("self")
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynIdent, Name: name, NameSpan: startTok.Span, Span: startTok.Span})
	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		blk := p.parseBlock()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynBlock, Block: blk, Span: startTok.Span.Cover(p.lastSpan)})
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwWhile:
		return p.parseWhileExpr()
	case token.KwMatch:
		return p.parseMatchExpr()
	case token.KwReturn:
		return p.parseReturnExpr()
	case token.KwBreak:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynBreak, Span: startTok.Span})
	case token.KwContinue:
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynContinue, Span: startTok.Span})
	default:
		p.errUnexpected("an expression")
		p.advance()
		return ast.NoExprID
	}
}

// parseParenOrTuple disambiguates `(expr)` from `(e1, e2, ...)`: a single
// element with no trailing comma is a parenthesized expression, anything
// else (including `()`) is a tuple.
func (p *Parser) parseParenOrTuple() ast.ExprID {
	startTok := p.peek()
	p.advance() // '('
	if p.at(token.RParen) {
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynTuple, Span: startTok.Span.Cover(p.lastSpan)})
	}

	first := p.parseExpr(precAssignment)
	if p.at(token.RParen) {
		p.advance()
		return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynParen, Sub: first, Span: startTok.Span.Cover(p.lastSpan)})
	}

	elems := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break
		}
		elems = append(elems, p.parseExpr(precAssignment))
	}
	p.expect(token.RParen, "')'")
	return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynTuple, Elems: elems, Span: startTok.Span.Cover(p.lastSpan)})
}

func (p *Parser) parseArrayLit() ast.ExprID {
	startTok := p.peek()
	p.advance() // '['
	var elems []ast.ExprID
	for !p.at(token.EOF) && !p.at(token.RBracket) {
		elems = append(elems, p.parseExpr(precAssignment))
		if !p.at(token.RBracket) {
			if _, ok := p.expect(token.Comma, "','"); !ok {
				break
			}
		}
	}
	p.expect(token.RBracket, "']'")
	return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynArray, Elems: elems, Span: startTok.Span.Cover(p.lastSpan)})
}

func (p *Parser) parseIfExpr() ast.ExprID {
	startTok := p.peek()
	p.advance() // 'if'
	cond := p.parseExpr(precAssignment)
	thenBlk := p.parseBlock()
	then := p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynBlock, Block: thenBlk, Span: p.tree.Stmts.GetBlock(thenBlk).Span})
	elseExpr := ast.NoExprID
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseExpr = p.parseIfExpr()
		} else {
			elseBlk := p.parseBlock()
			elseExpr = p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynBlock, Block: elseBlk, Span: p.tree.Stmts.GetBlock(elseBlk).Span})
		}
	}
	return p.tree.Exprs.New(ast.ExprSyn{
		Kind: ast.ExprSynIf,
		Cond: cond,
		Then: then,
		Else: elseExpr,
		Span: startTok.Span.Cover(p.lastSpan),
	})
}

func (p *Parser) parseWhileExpr() ast.ExprID {
	startTok := p.peek()
	p.advance() // 'while'
	cond := p.parseExpr(precAssignment)
	bodyBlk := p.parseBlock()
	body := p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynBlock, Block: bodyBlk, Span: p.tree.Stmts.GetBlock(bodyBlk).Span})
	return p.tree.Exprs.New(ast.ExprSyn{
		Kind: ast.ExprSynWhile,
		Cond: cond,
		Then: body,
		Span: startTok.Span.Cover(p.lastSpan),
	})
}

func (p *Parser) parseMatchExpr() ast.ExprID {
	startTok := p.peek()
	p.advance() // 'match'
	scrutinee := p.parseExpr(precAssignment)
	p.expect(token.LBrace, "'{'")
	var arms []ast.MatchArmSyn
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		var pats []ast.PatID
		pats = append(pats, p.parsePattern(true))
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.FatArrow) {
				break
			}
			pats = append(pats, p.parsePattern(true))
		}
		p.expect(token.FatArrow, "'=>'")
		armExpr := p.parseExpr(precAssignment)
		arms = append(arms, ast.MatchArmSyn{Pats: pats, Expr: armExpr})
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	return p.tree.Exprs.New(ast.ExprSyn{
		Kind:  ast.ExprSynMatch,
		Match: scrutinee,
		Arms:  arms,
		Span:  startTok.Span.Cover(p.lastSpan),
	})
}

func (p *Parser) parseReturnExpr() ast.ExprID {
	startTok := p.peek()
	p.advance() // 'return'
	ret := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		ret = p.parseExpr(precAssignment)
	}
	return p.tree.Exprs.New(ast.ExprSyn{Kind: ast.ExprSynReturn, Return: ret, Span: startTok.Span.Cover(p.lastSpan)})
}
