package ast

import "toxc/internal/source"

// TypeAliasItem is a parsed `type Name<...> = T;` declaration.
type TypeAliasItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Exported   bool
	TypeParams []TypeParamID
	Ty         TypeID
	Span       source.Span
}

type TypeAliases struct {
	Arena *Arena[TypeAliasItem]
}

func NewTypeAliases(capHint uint) *TypeAliases {
	return &TypeAliases{Arena: NewArena[TypeAliasItem](capHint)}
}

func (t *TypeAliases) New(item TypeAliasItem) PayloadID {
	return PayloadID(t.Arena.Allocate(item))
}

func (t *TypeAliases) Get(id PayloadID) *TypeAliasItem {
	return t.Arena.Get(uint32(id))
}
