package ast

import "toxc/internal/source"

// SegmentSyn is one path element of a parsed `use` declaration.
type SegmentSyn struct {
	Name     source.StringID
	NameSpan source.Span
	Nested   []SegmentID // non-empty for `use a::b::{c, d}` brace groups
	Span     source.Span
}

// ModItem is a parsed `mod Name;` declaration.
type ModItem struct {
	Name     source.StringID
	NameSpan source.Span
	Span     source.Span
}

// UseItem is a parsed `use ...;` declaration.
type UseItem struct {
	Segments []SegmentID
	Span     source.Span
}

type Modules struct {
	Mods     *Arena[ModItem]
	Uses     *Arena[UseItem]
	Segments *Arena[SegmentSyn]
}

func NewModules(capHint uint) *Modules {
	return &Modules{
		Mods:     NewArena[ModItem](capHint),
		Uses:     NewArena[UseItem](capHint),
		Segments: NewArena[SegmentSyn](capHint),
	}
}

func (m *Modules) NewMod(item ModItem) PayloadID {
	return PayloadID(m.Mods.Allocate(item))
}

func (m *Modules) GetMod(id PayloadID) *ModItem {
	return m.Mods.Get(uint32(id))
}

func (m *Modules) NewUse(item UseItem) PayloadID {
	return PayloadID(m.Uses.Allocate(item))
}

func (m *Modules) GetUse(id PayloadID) *UseItem {
	return m.Uses.Get(uint32(id))
}

func (m *Modules) NewSegment(s SegmentSyn) SegmentID {
	return SegmentID(m.Segments.Allocate(s))
}

func (m *Modules) GetSegment(id SegmentID) *SegmentSyn {
	return m.Segments.Get(uint32(id))
}
