package ir

import "toxc/internal/source"

// EnumVariant is one tuple-style variant of an Enum: a name plus the types
// of its positional fields. Struct-style (named-field) variants are not
// part of this grammar (SPEC_FULL §3, resolved Open Question).
type EnumVariant struct {
	Name   NameId
	Fields []TypeId
	Span   source.Span
}

// Enum is a lowered enum declaration.
type Enum struct {
	ID         EnumId
	Name       NameId
	Exported   bool
	TypeParams []TypeParam
	Variants   []EnumVariant
	Span       source.Span
}
