package diag

import (
	"checkattr/internal/source"
)

// Note is a labelled secondary span ("not a function").
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Spans is set for aggregate reports that point at several locations at
	// once; Primary is then Spans[0].
	Spans []source.Span
	Notes []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithSpans turns d into a multi-span diagnostic. The first span becomes primary.
func (d Diagnostic) WithSpans(spans []source.Span) Diagnostic {
	if len(spans) == 0 {
		return d
	}
	d.Spans = append([]source.Span(nil), spans...)
	d.Primary = spans[0]
	return d
}

// Locations returns every span the diagnostic points at, primary first.
func (d Diagnostic) Locations() []source.Span {
	if len(d.Spans) > 0 {
		return d.Spans
	}
	return []source.Span{d.Primary}
}
