package diag

import "toxc/internal/source"

// Note attaches auxiliary context (a secondary span + message) to a
// Diagnostic, e.g. pointing at a previous declaration.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single structured error or warning (spec §4.2): severity,
// primary message, an optional secondary note, and the file+span it refers
// to.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Note     *Note
}

// New builds a Diagnostic with no note.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// NewError builds an error-severity Diagnostic.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning builds a warning-severity Diagnostic.
func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote attaches a secondary note and returns the updated value.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Note = &Note{Span: span, Msg: msg}
	return d
}
