package ir

import "toxc/internal/intern"

// Interners bundles one intern.Table per file-scoped id kind. A single
// Interners is shared across all files in a compilation so that identical
// names, types, and literals hash-cons to the same id regardless of which
// file introduced them first (spec §3 "hash-consing").
type Interners struct {
	Names    *intern.Table[Name, NameId]
	Types    *TypeArena
	Literals *intern.Table[Literal, LiteralId]

	nextFunction   uint32
	nextClass      uint32
	nextEnum       uint32
	nextTypeAlias  uint32
	nextModule     uint32
	nextImport     uint32
}

func NewInterners() *Interners {
	return &Interners{
		Names:    intern.New[Name, NameId](),
		Types:    NewTypeArena(),
		Literals: intern.New[Literal, LiteralId](),
	}
}

// NewFunctionId, NewClassId, ... allocate the next monotonic id for each
// declaration kind. Unlike Names/Types/Literals these are not hash-consed
// — every `fn`/`class`/`enum`/`type`/`mod`/`use` declaration is a distinct
// entity even if structurally identical to another, so there is nothing to
// deduplicate (spec §3: ids are "unique per process lifetime", not
// "unique per structural key" for these kinds).
func (ns *Interners) NewFunctionId() FunctionId { ns.nextFunction++; return FunctionId(ns.nextFunction) }
func (ns *Interners) NewClassId() ClassId       { ns.nextClass++; return ClassId(ns.nextClass) }
func (ns *Interners) NewEnumId() EnumId         { ns.nextEnum++; return EnumId(ns.nextEnum) }
func (ns *Interners) NewTypeAliasId() TypeAliasId {
	ns.nextTypeAlias++
	return TypeAliasId(ns.nextTypeAlias)
}
func (ns *Interners) NewModuleId() ModuleId { ns.nextModule++; return ModuleId(ns.nextModule) }
func (ns *Interners) NewImportId() ImportId { ns.nextImport++; return ImportId(ns.nextImport) }

// InternName interns a Name, returning MissingName's own id unchanged if
// asked to intern the sentinel itself (every recovery site shares one id).
func (ns *Interners) InternName(n Name) NameId {
	return ns.Names.Intern(n)
}

func (ns *Interners) LookupName(id NameId) Name {
	n, ok := ns.Names.Lookup(id)
	if !ok {
		return MissingName
	}
	return n
}

func (ns *Interners) InternType(t Type) TypeId {
	return ns.Types.Intern(t)
}

func (ns *Interners) LookupType(id TypeId) Type {
	return ns.Types.MustLookup(id)
}

func (ns *Interners) InternLiteral(l Literal) LiteralId {
	return ns.Literals.Intern(l)
}

func (ns *Interners) LookupLiteral(id LiteralId) Literal {
	return ns.Literals.MustLookup(id)
}
