// Package ir is the intermediate representation produced by lowering (C5):
// arena-indexed identifiers and side-tabled data rather than a pointer
// graph, so recursive/cyclic structures (a type alias referring to itself,
// mutually recursive functions) never need back-pointers or Rc-cycles —
// just another id (spec §9 "Cyclic graphs").
package ir

// File-scoped ids, shared across an entire compilation run and produced by
// the interners in Interners (C1). Two equal structural keys always yield
// the same id (spec §3 invariant).
type (
	NameId       uint32
	FunctionId   uint32
	ClassId      uint32
	EnumId       uint32
	TypeAliasId  uint32
	TypeId       uint32
	LiteralId    uint32
	ModuleId     uint32
	ImportId     uint32
)

// Function-local ids. These are only meaningful alongside the
// FunctionAstMap of the Function that allocated them — the same numeric
// value in two different functions denotes unrelated nodes.
type (
	ExprId      uint32
	StmtId      uint32
	PatId       uint32
	ParamId     uint32
	TypeParamId uint32
	BlockId     uint32
)
