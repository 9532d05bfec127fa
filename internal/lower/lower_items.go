package lower

import (
	"toxc/internal/ast"
	"toxc/internal/ir"
	"toxc/internal/source"
)

func (l *lowerer) lowerModule(m *ast.ModItem, span source.Span) ir.Module {
	return ir.Module{
		ID:   l.irs.NewModuleId(),
		Name: l.internName(m.Name),
		File: l.fileID,
		Span: span,
	}
}

func (l *lowerer) lowerImport(u *ast.UseItem, span source.Span) ir.Import {
	segs := make([]ir.Segment, 0, len(u.Segments))
	for _, sid := range u.Segments {
		segs = append(segs, l.lowerSegment(sid))
	}
	return ir.Import{
		ID:       l.irs.NewImportId(),
		Segments: segs,
		File:     l.fileID,
		Span:     span,
	}
}

func (l *lowerer) lowerSegment(id ast.SegmentID) ir.Segment {
	s := l.tree.Modules.GetSegment(id)
	nested := make([]ir.Segment, 0, len(s.Nested))
	for _, nid := range s.Nested {
		nested = append(nested, l.lowerSegment(nid))
	}
	return ir.Segment{Name: l.internName(s.Name), Nested: nested, Span: s.Span}
}

func (l *lowerer) lowerTypeAlias(t *ast.TypeAliasItem, span source.Span) ir.TypeAlias {
	return ir.TypeAlias{
		ID:         l.irs.NewTypeAliasId(),
		Name:       l.internName(t.Name),
		Exported:   t.Exported,
		TypeParams: l.lowerTypeParams(t.TypeParams),
		Ty:         l.lowerType(t.Ty),
		Span:       span,
	}
}

// lowerClass lowers a class declaration; its methods are lowered as
// ordinary Functions with no class information attached. `Self` stays a
// plain Ident type named "Self"; the resolver accepts it only inside the
// class (SPEC_FULL §3).
func (l *lowerer) lowerClass(c *ast.ClassItem, span source.Span) ir.Class {
	fields := make([]ir.Field, 0, len(c.Fields))
	for _, fid := range c.Fields {
		f := l.tree.Classes.GetField(fid)
		fields = append(fields, ir.Field{
			Name: l.internName(f.Name),
			Ty:   l.lowerType(f.Ty),
			Span: f.Span,
		})
	}

	classID := l.irs.NewClassId()
	methods := make([]ir.FunctionId, 0, len(c.Methods))
	for _, mid := range c.Methods {
		item := l.tree.Items.Get(mid)
		fn := l.tree.Fns.Get(item.Payload)
		lowered := l.lowerFunction(fn, item.Span)
		methods = append(methods, lowered.ID)
		l.pendingMethods = append(l.pendingMethods, lowered)
	}

	return ir.Class{
		ID:         classID,
		Name:       l.internName(c.Name),
		Exported:   c.Exported,
		TypeParams: l.lowerTypeParams(c.TypeParams),
		Fields:     fields,
		Methods:    methods,
		Span:       span,
	}
}

func (l *lowerer) lowerEnum(e *ast.EnumItem, span source.Span) ir.Enum {
	variants := make([]ir.EnumVariant, 0, len(e.Variants))
	for _, vid := range e.Variants {
		v := l.tree.Enums.GetVariant(vid)
		fields := make([]ir.TypeId, 0, len(v.Fields))
		for _, fty := range v.Fields {
			fields = append(fields, l.lowerType(fty))
		}
		variants = append(variants, ir.EnumVariant{
			Name:   l.internName(v.Name),
			Fields: fields,
			Span:   v.Span,
		})
	}
	return ir.Enum{
		ID:         l.irs.NewEnumId(),
		Name:       l.internName(e.Name),
		Exported:   e.Exported,
		TypeParams: l.lowerTypeParams(e.TypeParams),
		Variants:   variants,
		Span:       span,
	}
}
