package ir

import "toxc/internal/source"

// Field is one class field: a name and declared type.
type Field struct {
	Name NameId
	Ty   TypeId
	Span source.Span
}

// Class is a lowered class declaration (SPEC_FULL §3 "Class/Enum design").
// Methods are lowered as ordinary Functions; Self lowers to an Ident type
// named "Self", which the resolver accepts only inside the class.
type Class struct {
	ID         ClassId
	Name       NameId
	Exported   bool
	TypeParams []TypeParam
	Fields     []Field
	Methods    []FunctionId
	Span       source.Span
}
