package checkattr

import (
	"checkattr/internal/diag"
	"checkattr/internal/hir"
	"checkattr/internal/source"
)

// IsIntRepr reports whether name is one of the integer width hints.
func IsIntRepr(name string) bool {
	switch name {
	case "i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64", "isize", "usize":
		return true
	}
	return false
}

// reprHints flattens the arguments of every list-form repr attribute, in
// source order. `#[repr]` and `#[repr = ".."]` contribute nothing.
func (c *Checker) reprHints(attrs []hir.Attr) []hir.MetaItem {
	var hints []hir.MetaItem
	for _, a := range attrs {
		if c.crate.AttrName(a) != attrRepr {
			continue
		}
		if args, ok := a.MetaItemList(); ok {
			hints = append(hints, args...)
		}
	}
	return hints
}

func (c *Checker) checkRepr(t Target, cat Category) {
	hints := c.reprHints(t.Attrs())
	if len(hints) == 0 {
		return
	}

	intReprs := 0
	isC, isSimd, isTransparent := false, false, false

	for _, hint := range hints {
		name := c.crate.MetaName(hint)
		if name == "" {
			// repr(42) and friends are rejected before this pass.
			continue
		}

		var article, allowed string
		switch {
		case name == "C":
			isC = true
			if cat == CategoryStruct || cat == CategoryUnion || cat == CategoryEnum {
				continue
			}
			article, allowed = "a", "struct, enum or union"
		case name == "packed":
			if cat == CategoryStruct || cat == CategoryUnion {
				continue
			}
			article, allowed = "a", "struct or union"
		case name == "simd":
			isSimd = true
			if cat == CategoryStruct {
				continue
			}
			article, allowed = "a", "struct"
		case name == "align":
			if cat == CategoryStruct || cat == CategoryUnion {
				continue
			}
			article, allowed = "a", "struct or union"
		case name == "transparent":
			isTransparent = true
			if cat == CategoryStruct {
				continue
			}
			article, allowed = "a", "struct"
		case IsIntRepr(name):
			intReprs++
			if cat == CategoryEnum {
				continue
			}
			article, allowed = "an", "enum"
		default:
			continue
		}

		diag.ReportError(c.reporter, diag.AttrReprTarget, hint.Span, "attribute should be applied to "+allowed).
			WithNote(t.Span(), "not "+article+" "+allowed).
			Emit()
	}

	// Conflicts point at every hint; blaming a single one is not attempted.
	spans := make([]source.Span, 0, len(hints))
	for _, hint := range hints {
		spans = append(spans, hint.Span)
	}

	if isTransparent && len(hints) > 1 {
		diag.ReportError(c.reporter, diag.AttrReprTransparent, spans[0], "transparent struct cannot have other repr hints").
			WithSpans(spans).
			Emit()
	}
	if intReprs > 1 || (isSimd && isC) || (intReprs == 1 && isC && IsCLikeEnum(t)) {
		diag.ReportWarning(c.reporter, diag.AttrReprConflict, spans[0], "conflicting representation hints").
			WithSpans(spans).
			Emit()
	}
}
