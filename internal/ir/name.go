package ir

// Name is a short owned string, interned as a NameId. Two Names are equal
// iff their text is equal (spec §3).
type Name string

// MissingName is the sentinel lowered in place of an identifier the parser
// couldn't recover (spec §4.5 "recovery"). Every recovery site in a file
// reuses the same interned NameId so a single malformed program doesn't
// explode into a diagnostic for every downstream reference.
const MissingName Name = "<missing name>"
