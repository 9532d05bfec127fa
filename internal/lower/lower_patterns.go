package lower

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
	"toxc/internal/source"
)

func (fl *fnLowerer) lowerPattern(id ast.PatID) ir.PatId {
	if !id.IsValid() {
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatPlaceholder}, source.Span{File: fl.fileID})
	}
	syn := fl.tree.Patterns.Get(id)
	switch syn.Kind {
	case ast.PatSynBind:
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatBind, Name: fl.internName(syn.Name)}, syn.Span)
	case ast.PatSynTuple:
		elems := make([]ir.Spanned[ir.PatId], 0, len(syn.Elems))
		for _, e := range syn.Elems {
			elemSyn := fl.tree.Patterns.Get(e)
			elems = append(elems, ir.NewSpanned(fl.lowerPattern(e), elemSyn.Span))
		}
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatTuple, Elems: elems}, syn.Span)
	case ast.PatSynLiteral:
		lit := fl.lowerLiteralExpr(syn.Literal)
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatLiteral, Literal: lit}, syn.Span)
	case ast.PatSynPlaceholder:
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatPlaceholder}, syn.Span)
	default:
		return fl.astMap.AddPattern(ir.Pattern{Kind: ir.PatPlaceholder}, syn.Span)
	}
}

// lowerLiteralExpr interns the literal payload of a parsed literal-pattern
// expression node (spec §4.5: "literal patterns reuse the expression
// literal id table").
func (fl *fnLowerer) lowerLiteralExpr(id ast.ExprID) ir.LiteralId {
	syn := fl.tree.Exprs.Get(id)
	return fl.irs.InternLiteral(ir.Literal{Kind: syn.LitKind, Text: syn.LitText})
}
