package ast

import "toxc/internal/source"

// File is the parsed form of one tox source file: an ordered list of
// top-level items. The lowerer (C5) consumes File plus the owning Tree's
// arenas to produce an ir.SourceFile.
type File struct {
	Items []ItemID
	Span  source.Span
}

// Tree bundles every arena a parse of one or more files allocates into.
// A Tree is typically scoped to a single file's parse, mirroring how
// ir.Interners is scoped to a whole compilation — the parser never needs
// cross-file sharing, unlike the lowerer's hash-consed ir tables.
type Tree struct {
	Items       *Items
	Fns         *Fns
	Classes     *Classes
	Enums       *Enums
	Modules     *Modules
	TypeAliases *TypeAliases
	Types       *Types
	Patterns    *Patterns
	Exprs       *Exprs
	Stmts       *Stmts
}

func NewTree() *Tree {
	const capHint = 1 << 6
	return &Tree{
		Items:       NewItems(capHint),
		Fns:         NewFns(capHint),
		Classes:     NewClasses(capHint),
		Enums:       NewEnums(capHint),
		Modules:     NewModules(capHint),
		TypeAliases: NewTypeAliases(capHint),
		Types:       NewTypes(capHint),
		Patterns:    NewPatterns(capHint),
		Exprs:       NewExprs(capHint),
		Stmts:       NewStmts(capHint),
	}
}
