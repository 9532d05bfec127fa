package symbols

import (
	"strconv"

	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// resolveType checks one type reference against the local type-parameter
// scope and the file universe, per spec §4.8's "resolve_type rejects
// unknown Ident/Poly names" and the polymorphic arity rule. span is the
// position to blame — Type itself carries none, being hash-consed and
// possibly shared across many occurrences.
func (r *FileResolver) resolveType(id ir.TypeId, span source.Span) {
	if id == 0 {
		return
	}
	ty := r.irs.LookupType(id)
	switch ty.Kind {
	case ir.TypeIdent:
		r.resolveTypeName(ty.Name, nil, span)

	case ir.TypePoly:
		args := ty.TypeArgs.Item
		for _, a := range args {
			r.resolveType(a.Item, a.Span(r.fileID))
		}
		r.resolveTypeName(ty.PolyName, args, span)

	case ir.TypeArray:
		r.resolveType(ty.Elem, span)

	case ir.TypeFn:
		for _, p := range ty.Params {
			r.resolveType(p, span)
		}
		r.resolveType(ty.Ret, span)

	case ir.TypeParen:
		for _, e := range ty.Elems {
			r.resolveType(e, span)
		}
	}
}

// resolveTypeName checks one named type occurrence (bare Ident when args
// is nil, or the head of a Poly application otherwise) against the
// current scope, reporting undefined-type and arity-mismatch diagnostics.
func (r *FileResolver) resolveTypeName(name ir.NameId, args []ir.Spanned[ir.TypeId], span source.Span) {
	if r.isLocalTypeParam(name) {
		if len(args) != 0 {
			r.reporter.Error(diag.ResolveTypeArityMismatch, span,
				"type parameter "+r.text(name)+" does not take type arguments")
		}
		return
	}
	if r.classCtx != nil && name == r.selfName {
		return
	}

	typeParams, ok := r.builtins[name]
	if !ok {
		_, typeParams, ok = r.lookupUniverse(name)
	}
	if !ok {
		r.reporter.Error(diag.ResolveUndefinedType, span, "use of undefined type "+r.text(name))
		return
	}

	if len(args) != typeParams {
		note := "too few type arguments"
		if len(args) > typeParams {
			note = "too many type arguments"
		}
		r.reporter.Error(diag.ResolveTypeArityMismatch, span,
			note+" for "+r.text(name)+": expected "+strconv.Itoa(typeParams)+", got "+strconv.Itoa(len(args)))
	}
}
