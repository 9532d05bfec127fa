package lower

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
)

// lowerExpr lowers one expression bottom-up: every child is lowered (and
// thus already present in the FunctionAstMap) before the parent node is
// appended, so any ExprId referenced by a later node is always a node
// that's already in the map (spec §3 invariant, spec §4.5 "lowered
// bottom-up").
func (fl *fnLowerer) lowerExpr(id ast.ExprID) ir.ExprId {
	if !id.IsValid() {
		return 0
	}
	syn := fl.tree.Exprs.Get(id)

	switch syn.Kind {
	case ast.ExprSynArray:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprArray, Elems: fl.lowerExprList(syn.Elems)}, syn.Span)

	case ast.ExprSynTuple:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprTuple, Elems: fl.lowerExprList(syn.Elems)}, syn.Span)

	case ast.ExprSynBinary:
		lhs := fl.lowerExpr(syn.Lhs)
		rhs := fl.lowerExpr(syn.Rhs)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprBinary, Lhs: lhs, Rhs: rhs, Bin: syn.Bin}, syn.Span)

	case ast.ExprSynUnary:
		sub := fl.lowerExpr(syn.Sub)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprUnary, UnOp: syn.UnOp, Sub: sub}, syn.Span)

	case ast.ExprSynBlock:
		blk := fl.lowerBlock(syn.Block)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprBlock, Block: blk}, syn.Span)

	case ast.ExprSynBreak:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprBreak}, syn.Span)

	case ast.ExprSynContinue:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprContinue}, syn.Span)

	case ast.ExprSynCall:
		callee := fl.lowerExpr(syn.Callee)
		args := fl.lowerExprList(syn.Args)
		typeArgs := make([]ir.Spanned[ir.TypeId], 0, len(syn.TypeArgs))
		for _, t := range syn.TypeArgs {
			tSyn := fl.tree.Types.Get(t)
			typeArgs = append(typeArgs, ir.NewSpanned(fl.lowerType(t), tSyn.Span))
		}
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprCall, Callee: callee, Args: args, TypeArgs: typeArgs}, syn.Span)

	case ast.ExprSynCast:
		sub := fl.lowerExpr(syn.Sub)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprCast, Sub: sub, CastTy: fl.lowerType(syn.CastTy)}, syn.Span)

	case ast.ExprSynIf:
		cond := fl.lowerExpr(syn.Cond)
		then := fl.lowerExpr(syn.Then)
		var elseID *ir.ExprId
		if syn.Else.IsValid() {
			e := fl.lowerExpr(syn.Else)
			elseID = &e
		}
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprIf, Cond: cond, Then: then, Else: elseID}, syn.Span)

	case ast.ExprSynIdent:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprIdent, Ident: fl.spanned(syn.Name, syn.NameSpan)}, syn.Span)

	case ast.ExprSynIndex:
		base := fl.lowerExpr(syn.Base)
		index := fl.lowerExpr(syn.Index)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprIndex, Base: base, Index: index}, syn.Span)

	case ast.ExprSynWhile:
		cond := fl.lowerExpr(syn.Cond)
		// parser stores the while-body's block-wrapper expr in Then; unwrap
		// straight to the Block so ir.Expr{Kind: ExprWhile} carries a BlockId
		// as spec §3 requires, not a nested ExprBlock.
		bodyExprSyn := fl.tree.Exprs.Get(syn.Then)
		body := fl.lowerBlock(bodyExprSyn.Block)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprWhile, Cond: cond, Block: body}, syn.Span)

	case ast.ExprSynLiteral:
		lit := fl.irs.InternLiteral(ir.Literal{Kind: syn.LitKind, Text: syn.LitText})
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprLiteral, Literal: lit}, syn.Span)

	case ast.ExprSynParen:
		sub := fl.lowerExpr(syn.Sub)
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprParen, Sub: sub}, syn.Span)

	case ast.ExprSynReturn:
		var ret *ir.ExprId
		if syn.Return.IsValid() {
			r := fl.lowerExpr(syn.Return)
			ret = &r
		}
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprReturn, Return: ret}, syn.Span)

	case ast.ExprSynMatch:
		scrutinee := fl.lowerExpr(syn.Match)
		arms := make([]ir.MatchArm, 0, len(syn.Arms))
		for _, a := range syn.Arms {
			pats := make([]ir.PatId, 0, len(a.Pats))
			for _, p := range a.Pats {
				pats = append(pats, fl.lowerPattern(p))
			}
			arms = append(arms, ir.MatchArm{Pats: pats, Expr: fl.lowerExpr(a.Expr)})
		}
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprMatch, Match: scrutinee, Arms: arms}, syn.Span)

	default:
		return fl.astMap.AddExpr(ir.Expr{Kind: ir.ExprTuple}, syn.Span)
	}
}

func (fl *fnLowerer) lowerExprList(ids []ast.ExprID) []ir.ExprId {
	if len(ids) == 0 {
		return nil
	}
	out := make([]ir.ExprId, 0, len(ids))
	for _, id := range ids {
		out = append(out, fl.lowerExpr(id))
	}
	return out
}
