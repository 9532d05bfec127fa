// Package lower implements C5, the AST→IR lowerer: it walks one parsed
// file's ast.Tree and produces an ir.SourceFile, allocating a fresh
// FunctionAstMap per function/method as it goes (spec §4.5).
package lower

import (
	"toxc/internal/ast"
	"toxc/internal/diag"
	"toxc/internal/ir"
	"toxc/internal/source"
)

// lowerer holds the state shared by every item in one file's lowering
// pass: the parsed tree being consumed, the compilation-wide interners
// being written into, and where diagnostics go.
type lowerer struct {
	tree     *ast.Tree
	strs     *source.Interner
	irs      *ir.Interners
	fileID   source.FileID
	reporter diag.Reporter

	// pendingMethods accumulates class method Functions as classes are
	// lowered; they are flushed into SourceFile.Functions alongside
	// top-level functions so every FunctionId in the file shares one
	// uniform Function storage (SourceFile carries no separate "methods"
	// list — spec §3 only names Class.Methods as a []FunctionId).
	pendingMethods []ir.Function
}

// File lowers one parsed file into an ir.SourceFile. irs is shared across
// every file in the compilation so names/types/literals hash-cons
// globally, not per file (spec §3).
func File(tree *ast.Tree, file *ast.File, fileID source.FileID, strs *source.Interner, irs *ir.Interners, reporter diag.Reporter) *ir.SourceFile {
	l := &lowerer{tree: tree, strs: strs, irs: irs, fileID: fileID, reporter: reporter}
	out := &ir.SourceFile{File: fileID}

	for _, itemID := range file.Items {
		item := tree.Items.Get(itemID)
		if item == nil {
			continue
		}
		switch item.Kind {
		case ast.ItemFn:
			fn := tree.Fns.Get(item.Payload)
			out.Functions = append(out.Functions, l.lowerFunction(fn, item.Span))
		case ast.ItemMod:
			out.Modules = append(out.Modules, l.lowerModule(tree.Modules.GetMod(item.Payload), item.Span))
		case ast.ItemUse:
			out.Imports = append(out.Imports, l.lowerImport(tree.Modules.GetUse(item.Payload), item.Span))
		case ast.ItemType:
			out.TypeAlias = append(out.TypeAlias, l.lowerTypeAlias(tree.TypeAliases.Get(item.Payload), item.Span))
		case ast.ItemClass:
			out.Classes = append(out.Classes, l.lowerClass(tree.Classes.Get(item.Payload), item.Span))
		case ast.ItemEnum:
			out.Enums = append(out.Enums, l.lowerEnum(tree.Enums.Get(item.Payload), item.Span))
		}
	}
	out.Functions = append(out.Functions, l.pendingMethods...)
	return out
}

// internName interns a parsed identifier's text as an ir.NameId, mapping
// the parser's recovery id (source.NoStringID) to the shared MissingName
// sentinel rather than interning an empty string (spec §4.5 "recovery").
func (l *lowerer) internName(sid source.StringID) ir.NameId {
	if sid == source.NoStringID {
		return l.irs.InternName(ir.MissingName)
	}
	text, ok := l.strs.Lookup(sid)
	if !ok {
		return l.irs.InternName(ir.MissingName)
	}
	return l.irs.InternName(ir.Name(text))
}

func (l *lowerer) spanned(sid source.StringID, sp source.Span) ir.Spanned[ir.NameId] {
	return ir.NewSpanned(l.internName(sid), sp)
}
