package symbols

import (
	"toxc/internal/diag"
	"toxc/internal/ir"
)

// resolveClass opens the class's type-parameter scope, resolves each
// field type, and diagnoses duplicate field names — methods are resolved
// separately as ordinary functions once classCtx routes `Self` and the
// class's type parameters into scope for them (spec §4.8 class/enum
// extension; SPEC_FULL §3).
func (r *FileResolver) resolveClass(c *ir.Class) {
	tp := make(map[ir.NameId]bool, len(c.TypeParams))
	for _, p := range c.TypeParams {
		tp[p.Name] = true
	}
	saved := r.localTypeParams
	savedCtx := r.classCtx
	r.localTypeParams = tp
	r.classCtx = &classContext{Name: c.Name, TypeParams: tp}
	defer func() { r.localTypeParams = saved; r.classCtx = savedCtx }()

	seen := make(map[ir.NameId]bool, len(c.Fields))
	for _, f := range c.Fields {
		if seen[f.Name] {
			r.reporter.Error(diag.ResolveDuplicateField, f.Span,
				"duplicate field "+r.text(f.Name)+" in class "+r.text(c.Name))
			continue
		}
		seen[f.Name] = true
		r.resolveType(f.Ty, f.Span)
	}
}

// resolveEnum opens the enum's type-parameter scope, resolves each
// variant's field types, and diagnoses duplicate variant names.
func (r *FileResolver) resolveEnum(e *ir.Enum) {
	tp := make(map[ir.NameId]bool, len(e.TypeParams))
	for _, p := range e.TypeParams {
		tp[p.Name] = true
	}
	saved := r.localTypeParams
	r.localTypeParams = tp
	defer func() { r.localTypeParams = saved }()

	seen := make(map[ir.NameId]bool, len(e.Variants))
	for _, v := range e.Variants {
		if seen[v.Name] {
			r.reporter.Error(diag.ResolveDuplicateVariant, v.Span,
				"duplicate variant "+r.text(v.Name)+" in enum "+r.text(e.Name))
			continue
		}
		seen[v.Name] = true
		for _, fty := range v.Fields {
			r.resolveType(fty, v.Span)
		}
	}
}
