package lower

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
)

func (fl *fnLowerer) lowerStmt(id ast.StmtID) ir.StmtId {
	syn := fl.tree.Stmts.Get(id)
	switch syn.Kind {
	case ast.StmtSynLet:
		return fl.astMap.AddStmt(ir.Stmt{
			Kind:        ir.StmtLet,
			Pat:         fl.lowerPattern(syn.Pat),
			Initializer: fl.lowerExpr(syn.Initializer),
		}, syn.Span)
	case ast.StmtSynExpr:
		return fl.astMap.AddStmt(ir.Stmt{
			Kind: ir.StmtExpr,
			Expr: fl.lowerExpr(syn.Expr),
		}, syn.Span)
	default:
		return fl.astMap.AddStmt(ir.Stmt{Kind: ir.StmtExpr}, syn.Span)
	}
}
