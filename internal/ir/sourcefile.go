package ir

import "toxc/internal/source"

// SourceFile is the lowered form of one tox source file: every top-level
// item it declares, plus the File it was lowered from. The query engine
// (C4) memoizes lowering keyed by source.FileID, so SourceFile values are
// cheap to recompute from scratch whenever the file's content revision
// changes rather than patched in place.
type SourceFile struct {
	File       source.FileID
	Imports    []Import
	Modules    []Module
	Functions  []Function
	TypeAlias  []TypeAlias
	Classes    []Class
	Enums      []Enum
}
