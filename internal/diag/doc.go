// Package diag defines the diagnostic model shared by every pass of checkattr.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable short ID (codes.go),
//     e.g. E0517 for misplaced representation hints.
//   - Message – the primary, human oriented text.
//   - Primary – the canonical source.Span of the finding.
//   - Spans – optional list of locations for aggregate findings such as
//     conflicting representation hints; Primary is the first of them.
//   - Notes – labelled secondary spans ("not a function").
//
// # Emitting diagnostics
//
// Passes emit through a Reporter and never stop on the first finding. The
// usual shape is
//
//	diag.ReportError(r, diag.AttrInlineTarget, attr.Span, "attribute should be applied to function").
//		WithNote(item.Span, "not a function").
//		Emit()
//
// BagReporter collects into a Bag, which keeps insertion order: consumers
// rely on diagnostics arriving in traversal order, so nothing in this package
// re-sorts them.
//
// Rendering lives in internal/diagfmt; this package performs no IO.
package diag
