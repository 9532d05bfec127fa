package ast

import "toxc/internal/source"

// FieldSyn is one parsed class field.
type FieldSyn struct {
	Name     source.StringID
	NameSpan source.Span
	Ty       TypeID
	Span     source.Span
}

// ClassItem is a parsed class declaration.
type ClassItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Exported   bool
	TypeParams []TypeParamID
	Fields     []FieldID
	Methods    []ItemID // ItemFn entries, parsed in declaration order
	Span       source.Span
}

type Classes struct {
	Arena  *Arena[ClassItem]
	Fields *Arena[FieldSyn]
}

func NewClasses(capHint uint) *Classes {
	return &Classes{Arena: NewArena[ClassItem](capHint), Fields: NewArena[FieldSyn](capHint)}
}

func (c *Classes) New(item ClassItem) PayloadID {
	return PayloadID(c.Arena.Allocate(item))
}

func (c *Classes) Get(id PayloadID) *ClassItem {
	return c.Arena.Get(uint32(id))
}

func (c *Classes) NewField(f FieldSyn) FieldID {
	return FieldID(c.Fields.Allocate(f))
}

func (c *Classes) GetField(id FieldID) *FieldSyn {
	return c.Fields.Get(uint32(id))
}
