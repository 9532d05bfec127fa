// Package source owns the file store (C3): interned source files, their
// content, and byte-offset <-> line/column resolution.
package source

type (
	// FileID uniquely identifies a loaded source file within a FileSet.
	FileID uint32
	// FileFlags records how a file's bytes were normalized on load.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (tests, stdin) rather than disk.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file that carried a UTF-8 byte-order mark, since stripped.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
)

// File holds the content and derived metadata for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n', built eagerly on Add
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-facing, 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
