package ir

// TypeKind discriminates the Type sum (spec §3).
type TypeKind uint8

const (
	TypeParen TypeKind = iota
	TypeArray
	TypeFn
	TypeIdent
	TypePoly
)

// Type is the hash-consed IR representation of a type expression. Only the
// fields relevant to Kind are populated; callers switch on Kind.
type Type struct {
	Kind TypeKind

	// TypeParen: a tuple type `(T1, T2, ...)`.
	Elems []TypeId

	// TypeArray: `[T; N]` or `[T]` for a dynamically sized array.
	Elem     TypeId
	HasSize  bool
	Size     uint64

	// TypeFn: `fn(T1, T2) -> R` (Ret is the zero TypeId when absent).
	Params []TypeId
	Ret    TypeId

	// TypeIdent: a simple named type, e.g. `i32` or a class/enum name.
	Name NameId

	// TypePoly: a generic instantiation, e.g. `Box<T>`.
	PolyName NameId
	TypeArgs Spanned[[]Spanned[TypeId]]
}
