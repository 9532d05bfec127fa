package symbols

import (
	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// ImportedSymbol is what the import resolver (C9) hands the name resolver
// for each leaf name a `use` declaration brings into scope: just enough to
// answer membership and arity questions, without the resolver needing to
// reach across files itself.
type ImportedSymbol struct {
	Kind       Kind
	TypeParams int
	Span       source.Span
}

// FileResolver implements C8 for one file: a Declared/Defined/Read scope
// stack per function, plus the file-wide universe of names a reference can
// resolve against (this file's own top-level declarations, merged with
// whatever C9 successfully imported).
type FileResolver struct {
	irs      *ir.Interners
	reporter diag.Reporter
	fileID   source.FileID
	table    *FileTable
	imported map[ir.NameId]ImportedSymbol

	selfName ir.NameId

	// builtins maps every primitive/stdlib type name to its type-parameter
	// arity (SPEC_FULL/builtins.go), consulted by resolveTypeName before a
	// name is reported undefined.
	builtins map[ir.NameId]int

	// classCtx, set while resolving a class's fields/methods, names the
	// enclosing class and its type parameters so `Self` and bare type
	// params resolve inside it (spec §4.8 class/enum extension).
	classCtx *classContext

	// localTypeParams is the current function/class type-parameter scope;
	// a bare Ident type whose name is a member resolves without
	// consulting the file universe at all.
	localTypeParams map[ir.NameId]bool

	scopes *scopeStack
}

type classContext struct {
	Name       ir.NameId
	TypeParams map[ir.NameId]bool
}

// NewFileResolver creates a resolver for one file's SourceFile, given its
// own FileTable and the symbols its imports successfully resolved.
func NewFileResolver(irs *ir.Interners, reporter diag.Reporter, fileID source.FileID, table *FileTable, imported map[ir.NameId]ImportedSymbol) *FileResolver {
	return &FileResolver{
		irs:      irs,
		reporter: reporter,
		fileID:   fileID,
		table:    table,
		imported: imported,
		selfName: irs.InternName("Self"),
		builtins: internBuiltinTypes(irs),
	}
}

// lookupUniverse answers whether name denotes a top-level symbol visible
// in this file, either declared locally or brought in by a successful
// import.
func (r *FileResolver) lookupUniverse(name ir.NameId) (Kind, int, bool) {
	if tl, ok := r.table.Symbols[name]; ok {
		return tl.Kind, tl.TypeParams, true
	}
	if im, ok := r.imported[name]; ok {
		return im.Kind, im.TypeParams, true
	}
	return 0, 0, false
}

func (r *FileResolver) isLocalTypeParam(name ir.NameId) bool {
	if r.localTypeParams != nil && r.localTypeParams[name] {
		return true
	}
	if r.classCtx != nil && r.classCtx.TypeParams[name] {
		return true
	}
	return false
}

func (r *FileResolver) text(name ir.NameId) string {
	return string(r.irs.LookupName(name))
}

func (r *FileResolver) span(s ir.Spanned[ir.NameId]) source.Span { return s.Span(r.fileID) }

// ResolveFile walks every function, class, enum, and type alias in sf,
// reporting every diagnostic through reporter (spec §4.10 "walk each
// function body through the resolver").
func ResolveFile(irs *ir.Interners, reporter diag.Reporter, fileID source.FileID, table *FileTable, imported map[ir.NameId]ImportedSymbol, sf *ir.SourceFile) {
	r := NewFileResolver(irs, reporter, fileID, table, imported)

	funcByID := make(map[ir.FunctionId]*ir.Function, len(sf.Functions))
	for i := range sf.Functions {
		funcByID[sf.Functions[i].ID] = &sf.Functions[i]
	}

	methodClass := make(map[ir.FunctionId]*classContext)
	for _, c := range sf.Classes {
		r.resolveClass(&c)
		tp := make(map[ir.NameId]bool, len(c.TypeParams))
		for _, p := range c.TypeParams {
			tp[p.Name] = true
		}
		ctx := &classContext{Name: c.Name, TypeParams: tp}
		seenMethods := make(map[ir.NameId]bool, len(c.Methods))
		for _, mid := range c.Methods {
			if fn := funcByID[mid]; fn != nil {
				if seenMethods[fn.Name] {
					r.reporter.Error(diag.ResolveDuplicateClassMethod, fn.Span,
						"duplicate method "+r.text(fn.Name)+" in class "+r.text(c.Name))
				}
				seenMethods[fn.Name] = true
			}
			methodClass[mid] = ctx
		}
	}
	for _, e := range sf.Enums {
		r.resolveEnum(&e)
	}
	for _, a := range sf.TypeAlias {
		tp := make(map[ir.NameId]bool, len(a.TypeParams))
		for _, p := range a.TypeParams {
			tp[p.Name] = true
		}
		r.localTypeParams = tp
		r.resolveType(a.Ty, a.Span)
		r.localTypeParams = nil
	}

	for _, fn := range sf.Functions {
		r.classCtx = methodClass[fn.ID]
		r.resolveFunction(&fn)
		r.classCtx = nil
	}
}
