package ir

import "toxc/internal/source"

// TypeAlias is a lowered `type Name<...> = T;` declaration.
type TypeAlias struct {
	ID         TypeAliasId
	Name       NameId
	Exported   bool
	TypeParams []TypeParam
	Ty         TypeId
	Span       source.Span
}
