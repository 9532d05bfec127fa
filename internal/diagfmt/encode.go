package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"toxc/internal/diag"
	"toxc/internal/source"
)

// diagnosticOutput is the wire shape shared by the JSON and MessagePack
// encoders (SPEC_FULL §4.10 `--format json|msgpack`).
type diagnosticOutput struct {
	Path      string `json:"path" msgpack:"path"`
	Line      uint32 `json:"line" msgpack:"line"`
	Col       uint32 `json:"col" msgpack:"col"`
	Severity  string `json:"severity" msgpack:"severity"`
	Code      string `json:"code" msgpack:"code"`
	Message   string `json:"message" msgpack:"message"`
	NoteMsg   string `json:"note,omitempty" msgpack:"note,omitempty"`
	NotePath  string `json:"note_path,omitempty" msgpack:"note_path,omitempty"`
	NoteLine  uint32 `json:"note_line,omitempty" msgpack:"note_line,omitempty"`
}

func toOutputs(bag *diag.Bag, fs *source.FileSet, opts EncodeOpts) []diagnosticOutput {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	out := make([]diagnosticOutput, 0, len(items))
	for _, d := range items {
		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		o := diagnosticOutput{
			Path:     formatPath(f, fs, opts.PathMode),
			Line:     start.Line,
			Col:      start.Col,
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
		}
		if d.Note != nil {
			noteLine, _ := fs.Resolve(d.Note.Span)
			o.NoteMsg = d.Note.Msg
			o.NotePath = formatPath(fs.Get(d.Note.Span.File), fs, opts.PathMode)
			o.NoteLine = noteLine.Line
		}
		out = append(out, o)
	}
	return out
}

// JSON writes bag as a JSON array of diagnostics.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts EncodeOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutputs(bag, fs, opts))
}

// Msgpack writes bag as a MessagePack-encoded array of diagnostics — the
// compact machine-readable format `toxc check --format msgpack` emits for
// tooling that doesn't want to parse JSON.
func Msgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts EncodeOpts) error {
	return msgpack.NewEncoder(w).Encode(toOutputs(bag, fs, opts))
}
