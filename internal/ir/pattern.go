package ir

// PatternKind discriminates the Pattern sum (spec §3).
type PatternKind uint8

const (
	PatBind PatternKind = iota
	PatTuple
	PatLiteral
	PatPlaceholder
)

// Pattern is a match/let pattern. Bind carries the bound name; Tuple
// nests further pattern ids; Literal reuses the expression-literal table
// (spec §4.5 "literal patterns reuse the expression literal id table").
type Pattern struct {
	Kind    PatternKind
	Name    NameId               // PatBind
	Elems   []Spanned[PatId]     // PatTuple
	Literal LiteralId            // PatLiteral
}
