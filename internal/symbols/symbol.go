// Package symbols implements C7 (export tables), C8 (the per-function
// name/type resolver), and C9 (import resolution): together they consume
// the ir.SourceFile values C5 produces and the project.Graph C6 builds,
// and report every diagnostic in spec §7's resolve/import/export bands.
// Grounded in the teacher's internal/symbols package (exports.go, scope.go,
// resolve*.go), trimmed to this grammar's much smaller symbol space.
package symbols

import (
	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// Kind discriminates what a top-level name denotes, for diagnostics and
// for arity checks (SPEC_FULL §3 "a class/enum is exported exactly like a
// function").
type Kind uint8

const (
	KindFunction Kind = iota
	KindClass
	KindEnum
	KindTypeAlias
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindTypeAlias:
		return "type alias"
	default:
		return "symbol"
	}
}

// TopLevel is one top-level declaration recorded in a FileTable: enough to
// answer "does this name exist, is it exported, how many type parameters
// does it take" without re-walking the SourceFile.
type TopLevel struct {
	Name       ir.NameId
	Kind       Kind
	Span       source.Span
	Exported   bool
	TypeParams int

	FunctionID  ir.FunctionId
	ClassID     ir.ClassId
	EnumID      ir.EnumId
	TypeAliasID ir.TypeAliasId
}

// FileTable is C7's output for one file: every top-level symbol it
// declares (symbol_level, spec §4.7) and the subset it exports
// (symbol_exports).
type FileTable struct {
	File    source.FileID
	Symbols map[ir.NameId]TopLevel
	Exports map[ir.NameId]TopLevel
}

// BuildFileTable walks sf's top-level declarations once, registering each
// under symbol_level and diagnosing any duplicate name as an error
// (spec §4.7: "Duplicate top-level names are errors").
func BuildFileTable(sf *ir.SourceFile) (*FileTable, []diag.Diagnostic) {
	t := &FileTable{
		File:    sf.File,
		Symbols: make(map[ir.NameId]TopLevel),
		Exports: make(map[ir.NameId]TopLevel),
	}
	var diags []diag.Diagnostic

	register := func(entry TopLevel) {
		if prev, ok := t.Symbols[entry.Name]; ok {
			diags = append(diags, diag.NewError(diag.ExportDuplicateName, entry.Span,
				"duplicate top-level declaration").WithNote(prev.Span, "previous declaration here"))
			return
		}
		t.Symbols[entry.Name] = entry
		if entry.Exported {
			t.Exports[entry.Name] = entry
		}
	}

	// Class methods live in sf.Functions alongside top-level functions
	// (lower.File flushes pendingMethods into the same slice), but they are
	// not top-level declarations themselves — only their enclosing class
	// is. Duplicate method names are checked per-class by the resolver
	// (SPEC_FULL §3), not here.
	methodIDs := make(map[ir.FunctionId]bool)
	for _, c := range sf.Classes {
		for _, id := range c.Methods {
			methodIDs[id] = true
		}
	}

	for _, fn := range sf.Functions {
		if methodIDs[fn.ID] {
			continue
		}
		register(TopLevel{
			Name: fn.Name, Kind: KindFunction, Span: fn.Span,
			Exported: fn.Exported, TypeParams: len(fn.TypeParams), FunctionID: fn.ID,
		})
	}
	for _, c := range sf.Classes {
		register(TopLevel{
			Name: c.Name, Kind: KindClass, Span: c.Span,
			Exported: c.Exported, TypeParams: len(c.TypeParams), ClassID: c.ID,
		})
	}
	for _, e := range sf.Enums {
		register(TopLevel{
			Name: e.Name, Kind: KindEnum, Span: e.Span,
			Exported: e.Exported, TypeParams: len(e.TypeParams), EnumID: e.ID,
		})
	}
	for _, a := range sf.TypeAlias {
		register(TopLevel{
			Name: a.Name, Kind: KindTypeAlias, Span: a.Span,
			Exported: a.Exported, TypeParams: len(a.TypeParams), TypeAliasID: a.ID,
		})
	}

	return t, diags
}
