package lower

import (
	"strconv"

	"toxc/internal/ast"
	"toxc/internal/diag"
	"toxc/internal/ir"
)

// lowerType lowers one parsed type expression to a hash-consed ir.TypeId.
// ast.NoTypeID (parse recovery, or an omitted return type) lowers to the
// zero TypeId, which callers treat as "absent" exactly like ast.NoTypeID.
func (l *lowerer) lowerType(id ast.TypeID) ir.TypeId {
	if !id.IsValid() {
		return 0
	}
	syn := l.tree.Types.Get(id)
	switch syn.Kind {
	case ast.TypeSynParen:
		elems := make([]ir.TypeId, 0, len(syn.Elems))
		for _, e := range syn.Elems {
			elems = append(elems, l.lowerType(e))
		}
		return l.irs.InternType(ir.Type{Kind: ir.TypeParen, Elems: elems})

	case ast.TypeSynArray:
		elem := l.lowerType(syn.Elem)
		t := ir.Type{Kind: ir.TypeArray, Elem: elem, HasSize: syn.HasSize}
		if syn.HasSize {
			t.Size = l.evalConstArraySize(syn.SizeExpr)
		}
		return l.irs.InternType(t)

	case ast.TypeSynFn:
		params := make([]ir.TypeId, 0, len(syn.Params))
		for _, p := range syn.Params {
			params = append(params, l.lowerType(p))
		}
		ret := l.lowerType(syn.Ret)
		return l.irs.InternType(ir.Type{Kind: ir.TypeFn, Params: params, Ret: ret})

	case ast.TypeSynIdent:
		return l.irs.InternType(ir.Type{Kind: ir.TypeIdent, Name: l.internName(syn.Name)})

	case ast.TypeSynPoly:
		args := make([]ir.Spanned[ir.TypeId], 0, len(syn.TypeArgs))
		for _, a := range syn.TypeArgs {
			aSyn := l.tree.Types.Get(a)
			args = append(args, ir.NewSpanned(l.lowerType(a), aSyn.Span))
		}
		return l.irs.InternType(ir.Type{
			Kind:     ir.TypePoly,
			PolyName: l.internName(syn.Name),
			TypeArgs: ir.NewSpanned(args, syn.Span),
		})

	default:
		return 0
	}
}

// evalConstArraySize evaluates an array size expression to a literal
// integer. Anything other than a bare integer literal is a lowering
// error; the array is still produced, sized 0, so the rest of the file
// keeps being diagnosed (spec §7 "accumulate, don't abort").
func (l *lowerer) evalConstArraySize(id ast.ExprID) uint64 {
	if !id.IsValid() {
		return 0
	}
	syn := l.tree.Exprs.Get(id)
	if syn.Kind != ast.ExprSynLiteral || syn.LitKind != ir.LitInt {
		l.reporter.Error(diag.LowerUnsupportedToken, syn.Span, "array size must be a constant integer literal")
		return 0
	}
	n, err := strconv.ParseUint(syn.LitText, 10, 64)
	if err != nil {
		l.reporter.Error(diag.LowerUnsupportedToken, syn.Span, "invalid array size literal '"+syn.LitText+"'")
		return 0
	}
	return n
}

func (l *lowerer) lowerTypeParams(ids []ast.TypeParamID) []ir.TypeParam {
	if len(ids) == 0 {
		return nil
	}
	out := make([]ir.TypeParam, 0, len(ids))
	for _, id := range ids {
		tp := l.tree.Fns.GetTypeParam(id)
		out = append(out, ir.TypeParam{Name: l.internName(tp.Name), Span: tp.Span})
	}
	return out
}
