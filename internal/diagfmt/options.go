// Package diagfmt implements C12: turning a diag.Bag into terminal output
// (colorized, with source context) or a machine-readable encoding (JSON,
// MessagePack), grounded in the teacher's internal/diagfmt/pretty.go and
// json.go.
package diagfmt

// PathMode controls how a diagnostic's file path is rendered.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures the terminal renderer.
type PrettyOpts struct {
	Color    bool
	Context  uint32
	PathMode PathMode
}

// EncodeOpts configures the JSON/MessagePack renderers.
type EncodeOpts struct {
	PathMode PathMode
	Max      int
}
