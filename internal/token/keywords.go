package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"mod":      KwMod,
	"use":      KwUse,
	"as":       KwAs,
	"pub":      KwPub,
	"type":     KwType,
	"class":    KwClass,
	"enum":     KwEnum,
	"self":     KwSelf,
	"Self":     KwSelfType,
	"match":    KwMatch,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"true":     KwTrue,
	"false":    KwFalse,
	"nil":      KwNil,
}

// LookupKeyword returns the keyword Kind for ident, if any. Keywords are
// case-sensitive; "Self" and "self" are distinct keywords, everything else
// not in this table is an Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
