package ast

import "toxc/internal/source"

// VariantSyn is one parsed tuple-style enum variant.
type VariantSyn struct {
	Name     source.StringID
	NameSpan source.Span
	Fields   []TypeID
	Span     source.Span
}

// EnumItem is a parsed enum declaration.
type EnumItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Exported   bool
	TypeParams []TypeParamID
	Variants   []VariantID
	Span       source.Span
}

type Enums struct {
	Arena    *Arena[EnumItem]
	Variants *Arena[VariantSyn]
}

func NewEnums(capHint uint) *Enums {
	return &Enums{Arena: NewArena[EnumItem](capHint), Variants: NewArena[VariantSyn](capHint)}
}

func (e *Enums) New(item EnumItem) PayloadID {
	return PayloadID(e.Arena.Allocate(item))
}

func (e *Enums) Get(id PayloadID) *EnumItem {
	return e.Arena.Get(uint32(id))
}

func (e *Enums) NewVariant(v VariantSyn) VariantID {
	return VariantID(e.Variants.Allocate(v))
}

func (e *Enums) GetVariant(id VariantID) *VariantSyn {
	return e.Variants.Get(uint32(id))
}
