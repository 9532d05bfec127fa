package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"toxc/internal/source"
	"toxc/internal/token"
)

// TokenOutput is one token's JSON/MessagePack projection.
type TokenOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
}

// TokenOutputs projects a token stream into the wire shape.
func TokenOutputs(toks []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(toks))
	for _, t := range toks {
		start, _ := fs.Resolve(t.Span)
		out = append(out, TokenOutput{Kind: t.Kind.String(), Text: t.Text, Line: start.Line, Col: start.Col})
	}
	return out
}

// FormatTokensPretty prints one token per line as `line:col  KIND  text`.
func FormatTokensPretty(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	for _, t := range toks {
		start, _ := fs.Resolve(t.Span)
		if _, err := fmt.Fprintf(w, "%d:%-4d %-16s %s\n", start.Line, start.Col, t.Kind.String(), t.Text); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON prints a token stream as a JSON array.
func FormatTokensJSON(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokenOutputs(toks, fs))
}
