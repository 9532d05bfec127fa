package ast

import "toxc/internal/source"

// ItemKind enumerates the top-level (and class-member) declaration kinds.
type ItemKind uint8

const (
	ItemFn ItemKind = iota
	ItemMod
	ItemUse
	ItemType
	ItemClass
	ItemEnum
)

// Item is a canonical top-level declaration: a kind tag plus the index of
// its payload in the matching per-kind arena (Fns, Classes, Enums,
// Modules, TypeAliases). One shared Item arena, rather than one ItemID
// space per kind, keeps File.Items a single ordered list regardless of
// which declaration kinds it mixes (spec §4.5: declaration order matters
// for duplicate-name diagnostics).
type Item struct {
	Kind    ItemKind
	Payload PayloadID
	Span    source.Span
}

type Items struct {
	Arena *Arena[Item]
}

func NewItems(capHint uint) *Items {
	return &Items{Arena: NewArena[Item](capHint)}
}

func (i *Items) New(kind ItemKind, payload PayloadID, span source.Span) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Payload: payload, Span: span}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}
