package ir

import (
	"strconv"
	"strings"
)

// TypeArena hash-conses Type values. Type itself holds slice fields
// (Elems, Params, TypeArgs) and so isn't a comparable map key, unlike Name
// and Literal — intern.Table can't be reused directly. TypeArena instead
// canonicalizes each Type to a string key, interns that key to a TypeId,
// and stores the actual struct in a parallel arena indexed by the id.
type TypeArena struct {
	byID  []Type
	index map[string]TypeId
}

func NewTypeArena() *TypeArena {
	return &TypeArena{
		byID:  []Type{{}},
		index: map[string]TypeId{"": 0},
	}
}

// Intern returns the TypeId for t, allocating a new one on first sight of
// its canonical key.
func (a *TypeArena) Intern(t Type) TypeId {
	key := typeKey(t)
	if id, ok := a.index[key]; ok {
		return id
	}
	id := TypeId(len(a.byID))
	a.byID = append(a.byID, t)
	a.index[key] = id
	return id
}

func (a *TypeArena) Lookup(id TypeId) (Type, bool) {
	if int(id) < 0 || int(id) >= len(a.byID) {
		return Type{}, false
	}
	return a.byID[id], true
}

func (a *TypeArena) MustLookup(id TypeId) Type {
	t, ok := a.Lookup(id)
	if !ok {
		panic("ir: invalid TypeId")
	}
	return t
}

func (a *TypeArena) Len() int { return len(a.byID) }

func typeKey(t Type) string {
	var b strings.Builder
	b.WriteByte(byte(t.Kind))
	b.WriteByte('|')
	writeTypeIds(&b, t.Elems)
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(uint64(t.Elem), 10))
	b.WriteByte('|')
	if t.HasSize {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(t.Size, 10))
	b.WriteByte('|')
	writeTypeIds(&b, t.Params)
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(uint64(t.Ret), 10))
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(uint64(t.Name), 10))
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(uint64(t.PolyName), 10))
	b.WriteByte('|')
	for _, arg := range t.TypeArgs.Item {
		b.WriteString(strconv.FormatUint(uint64(arg.Item), 10))
		b.WriteByte(',')
	}
	return b.String()
}

func writeTypeIds(b *strings.Builder, ids []TypeId) {
	for _, id := range ids {
		b.WriteString(strconv.FormatUint(uint64(id), 10))
		b.WriteByte(',')
	}
}
