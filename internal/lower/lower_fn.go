package lower

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// fnLowerer lowers the body of a single function/method into its own
// FunctionAstMap (spec §3 "FunctionAstMap is a side table ... per
// function"). It shares the file-scoped lowerer for interning and types.
type fnLowerer struct {
	*lowerer
	astMap *ir.FunctionAstMap
}

func (l *lowerer) lowerFunction(fn *ast.FnItem, span source.Span) ir.Function {
	fl := &fnLowerer{lowerer: l, astMap: ir.NewFunctionAstMap()}

	params := make([]ir.Param, 0, len(fn.Params))
	for _, pid := range fn.Params {
		p := l.tree.Fns.GetParam(pid)
		params = append(params, ir.Param{
			Pat:  fl.lowerPattern(p.Pat),
			Ty:   l.lowerType(p.Ty),
			Span: p.Span,
		})
	}

	var body ir.BlockId
	if fn.Body.IsValid() {
		body = fl.lowerBlock(fn.Body)
	}

	return ir.Function{
		ID:         l.irs.NewFunctionId(),
		Name:       l.internName(fn.Name),
		Exported:   fn.Exported,
		TypeParams: l.lowerTypeParams(fn.TypeParams),
		Params:     params,
		Returns:    l.lowerType(fn.Returns),
		Body:       body,
		AstMap:     fl.astMap,
		Span:       span,
	}
}

func (fl *fnLowerer) lowerBlock(id ast.BlockID) ir.BlockId {
	blk := fl.tree.Stmts.GetBlock(id)
	stmts := make([]ir.StmtId, 0, len(blk.Stmts))
	for _, sid := range blk.Stmts {
		stmts = append(stmts, fl.lowerStmt(sid))
	}
	return fl.astMap.AddBlock(ir.Block{Stmts: stmts})
}
