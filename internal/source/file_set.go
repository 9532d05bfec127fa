package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// FileSet implements C3, the File Store: it maps interned paths to source
// text, line-index metadata, and computes line/column positions for spans.
// Loads are read-through; once added, a file's bytes never change (the
// query engine models edits as a new FileID, not mutation — spec §3
// lifecycle).
type FileSet struct {
	files   []File
	index   map[string]FileID // normalized path -> most recent FileID
	baseDir string
}

// NewFileSet creates an empty file store rooted at the process's working
// directory.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0, 8),
		index: make(map[string]FileID),
	}
}

// SetBaseDir fixes the directory used to render relative paths.
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the configured base directory, defaulting to the current
// working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// Add stores content under path and returns a new FileID. Content is
// normalized to NFC (matching the teacher's Unicode-safety discipline) so
// span arithmetic over multi-byte identifiers is deterministic across
// platforms. Add always allocates a fresh id, even for a path seen before —
// the query engine is responsible for deciding which FileID is "current".
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	content = norm.NFC.Bytes(content)
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normPath := normalizePath(path)

	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: file set overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[normPath] = id
	return id
}

// Load reads path from disk, normalizes BOM/CRLF, and stores it via Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the driver/CLI, not untrusted input
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	var flags FileFlags
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (tests, stdin) tagged FileVirtual.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file record for id. id must have been returned by this
// FileSet.
func (fs *FileSet) Get(id FileID) *File { return &fs.files[id] }

// GetLatest returns the most recently added FileID for path, if any.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// Source returns the file's normalized text.
func (fs *FileSet) Source(id FileID) []byte { return fs.Get(id).Content }

// Path returns the file's stored (normalized) path.
func (fs *FileSet) Path(id FileID) string { return fs.Get(id).Path }

// Resolve converts a span's start and end byte offsets into line/column
// positions, per spec §4.3's `line_index`/`line_range` queries.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the 1-based source line, or "" if out of range.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lineCount := uint32(len(f.LineIdx))
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}

	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lineCount:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	end := contentLen
	if lineNum-1 < lineCount {
		end = f.LineIdx[lineNum-1]
	}
	if start >= contentLen {
		return ""
	}
	if end > contentLen {
		end = contentLen
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path under the given display mode: "absolute",
// "relative" (to baseDir), "basename", or "auto" (paths shorter than 40
// bytes as-is, the basename otherwise).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
