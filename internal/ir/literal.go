package ir

// LiteralKind enumerates the literal forms lowered verbatim from tokens
// (spec §3: "text preserved verbatim for later parsing").
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitInt
	LitFloat
	LitTrue
	LitFalse
	LitNil
)

// Literal is a hash-consed literal value: LiteralKind plus the verbatim
// source text for String/Int/Float (empty for the three nullary kinds).
// Two syntactically identical literals intern to the same LiteralId.
type Literal struct {
	Kind LiteralKind
	Text string
}
