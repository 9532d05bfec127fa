package symbols

import (
	"strconv"

	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// resolveFunction resolves one function or method body: a parameter scope
// wrapping the body's own block scope, matching spec §4.8's "pushed on
// entry to a block or a function parameter list".
func (r *FileResolver) resolveFunction(fn *ir.Function) {
	savedTP := r.localTypeParams
	if len(fn.TypeParams) > 0 {
		tp := make(map[ir.NameId]bool, len(fn.TypeParams))
		for _, p := range fn.TypeParams {
			tp[p.Name] = true
		}
		r.localTypeParams = tp
	}
	defer func() { r.localTypeParams = savedTP }()

	r.scopes = newScopeStack(r.reporter, r.irs)
	r.scopes.push()
	for _, p := range fn.Params {
		r.resolveType(p.Ty, p.Span)
		r.declareAndDefinePattern(fn, p.Pat, p.Span)
	}
	r.resolveType(fn.Returns, fn.Span)

	if fn.AstMap != nil && len(fn.AstMap.Blocks) > 0 {
		r.resolveBlock(fn, fn.Body)
	}
	r.scopes.pop()
}

func (r *FileResolver) resolveBlock(fn *ir.Function, id ir.BlockId) {
	r.scopes.push()
	blk := fn.AstMap.BlockOf(id)
	for _, sid := range blk.Stmts {
		r.resolveStmt(fn, sid)
	}
	r.scopes.pop()
}

func (r *FileResolver) resolveStmt(fn *ir.Function, id ir.StmtId) {
	sp := fn.AstMap.Stmts[id]
	stmt := sp.Item
	switch stmt.Kind {
	case ir.StmtLet:
		// Let-statement protocol (spec §4.8): declare, then resolve the
		// initializer (so a self-reference is caught while still
		// Declared), then define.
		r.declarePattern(fn, stmt.Pat)
		r.resolveExpr(fn, stmt.Initializer)
		r.definePattern(fn, stmt.Pat)
	case ir.StmtExpr:
		r.resolveExpr(fn, stmt.Expr)
	}
}

func (r *FileResolver) resolveExpr(fn *ir.Function, id ir.ExprId) {
	if int(id) >= len(fn.AstMap.Exprs) {
		return
	}
	expr := fn.AstMap.Expr(id)
	switch expr.Kind {
	case ir.ExprArray, ir.ExprTuple:
		for _, e := range expr.Elems {
			r.resolveExpr(fn, e)
		}

	case ir.ExprBinary:
		r.resolveExpr(fn, expr.Lhs)
		r.resolveExpr(fn, expr.Rhs)

	case ir.ExprUnary:
		r.resolveExpr(fn, expr.Sub)

	case ir.ExprBlock:
		r.resolveBlock(fn, expr.Block)

	case ir.ExprBreak, ir.ExprContinue, ir.ExprLiteral:
		// no references to check

	case ir.ExprCall:
		r.resolveExpr(fn, expr.Callee)
		for _, a := range expr.Args {
			r.resolveExpr(fn, a)
		}
		for _, ta := range expr.TypeArgs {
			r.resolveType(ta.Item, ta.Span(r.fileID))
		}
		r.checkCallArity(fn, expr)

	case ir.ExprCast:
		r.resolveExpr(fn, expr.Sub)
		r.resolveType(expr.CastTy, fn.AstMap.Exprs[id].Span(r.fileID))

	case ir.ExprIf:
		r.resolveExpr(fn, expr.Cond)
		r.resolveExpr(fn, expr.Then)
		if expr.Else != nil {
			r.resolveExpr(fn, *expr.Else)
		}

	case ir.ExprIdent:
		r.resolveIdent(expr.Ident)

	case ir.ExprIndex:
		r.resolveExpr(fn, expr.Base)
		r.resolveExpr(fn, expr.Index)

	case ir.ExprWhile:
		r.resolveExpr(fn, expr.Cond)
		r.resolveBlock(fn, expr.Block)

	case ir.ExprParen:
		r.resolveExpr(fn, expr.Sub)

	case ir.ExprReturn:
		if expr.Return != nil {
			r.resolveExpr(fn, *expr.Return)
		}

	case ir.ExprMatch:
		r.resolveExpr(fn, expr.Match)
		for _, arm := range expr.Arms {
			r.scopes.push()
			for _, p := range arm.Pats {
				r.declareAndDefinePattern(fn, p, fn.AstMap.Pats[p].Span(r.fileID))
			}
			r.resolveExpr(fn, arm.Expr)
			r.scopes.pop()
		}
	}
}

// resolveIdent resolves a bare identifier reference against the local
// scope stack first, then the file universe, then (inside a class method)
// `Self` (spec §4.8 resolve_local, lookupUniverse).
func (r *FileResolver) resolveIdent(ident ir.Spanned[ir.NameId]) {
	name := ident.Item
	span := r.span(ident)

	if b, ok := r.scopes.resolveLocal(name, false); ok {
		if b.state == Declared {
			r.reporter.Error(diag.ResolveSelfReferentialInit, span,
				"cannot read local name "+r.text(name)+" in its own initializer")
		}
		r.scopes.resolveLocal(name, true)
		return
	}
	if _, _, ok := r.lookupUniverse(name); ok {
		return
	}
	if r.classCtx != nil && name == r.selfName {
		return
	}
	r.reporter.Error(diag.ResolveUndefinedVariable, span, "use of undefined variable "+r.text(name))
}

// checkCallArity enforces spec §4.8's "Call type-argument arity": only
// Ident callees are checked, since anything else (a call through an
// expression, e.g. a field or index) has no statically known type-
// parameter count in this grammar.
func (r *FileResolver) checkCallArity(fn *ir.Function, call ir.Expr) {
	if int(call.Callee) >= len(fn.AstMap.Exprs) {
		return
	}
	callee := fn.AstMap.Expr(call.Callee)
	if callee.Kind != ir.ExprIdent {
		return
	}
	name := callee.Ident.Item
	kind, typeParams, ok := r.lookupUniverse(name)
	if !ok || kind != KindFunction {
		return
	}
	if len(call.TypeArgs) != typeParams {
		span := r.span(callee.Ident)
		r.reporter.Error(diag.ResolveCallArityMismatch, span,
			"wrong number of type arguments for "+r.text(name)+": expected "+
				strconv.Itoa(typeParams)+", got "+strconv.Itoa(len(call.TypeArgs)))
	}
}

func (r *FileResolver) declarePattern(fn *ir.Function, id ir.PatId) {
	sp := fn.AstMap.Pats[id]
	switch sp.Item.Kind {
	case ir.PatBind:
		r.scopes.declare(sp.Item.Name, sp.Span(r.fileID))
	case ir.PatTuple:
		for _, e := range sp.Item.Elems {
			r.declarePattern(fn, e.Item)
		}
	}
}

func (r *FileResolver) definePattern(fn *ir.Function, id ir.PatId) {
	sp := fn.AstMap.Pats[id]
	switch sp.Item.Kind {
	case ir.PatBind:
		r.scopes.define(sp.Item.Name)
	case ir.PatTuple:
		for _, e := range sp.Item.Elems {
			r.definePattern(fn, e.Item)
		}
	}
}

// declareAndDefinePattern binds a pattern's names immediately — used for
// function parameters and match-arm patterns, neither of which has a
// separate initializer expression that could self-reference them (unlike
// `let`, spec §4.8's two-phase protocol does not apply here).
func (r *FileResolver) declareAndDefinePattern(fn *ir.Function, id ir.PatId, _ source.Span) {
	r.declarePattern(fn, id)
	r.definePattern(fn, id)
}
