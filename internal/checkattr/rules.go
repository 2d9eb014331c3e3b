package checkattr

import (
	"checkattr/internal/diag"
)

const (
	attrInline        = "inline"
	attrNonExhaustive = "non_exhaustive"
	attrRepr          = "repr"
	attrTargetFeature = "target_feature"
)

// CheckTarget runs every attribute rule on t.
//
// For function-like targets the function attributes are materialised through
// the FnAttrs provider first, exactly once per call and before any rule
// looks at attribute names. That provider validates target_feature itself,
// so the misplaced target_feature check only runs for other categories.
func (c *Checker) CheckTarget(t Target) {
	cat := Classify(t)
	attrs := t.Attrs()

	if cat == CategoryFn {
		c.fns.FnAttrs(t.ID())
		c.functions++
	} else {
		for _, a := range attrs {
			if c.crate.AttrName(a) == attrTargetFeature {
				diag.ReportError(c.reporter, diag.NoCode, a.Span, "attribute should be applied to a function").
					WithNote(t.Span(), "not a function").
					Emit()
				break
			}
		}
	}

	for _, a := range attrs {
		switch c.crate.AttrName(a) {
		case attrInline:
			if cat != CategoryFn {
				diag.ReportError(c.reporter, diag.AttrInlineTarget, a.Span, "attribute should be applied to function").
					WithNote(t.Span(), "not a function").
					Emit()
			}
		case attrNonExhaustive:
			if cat != CategoryStruct && cat != CategoryEnum {
				diag.ReportError(c.reporter, diag.AttrNonExhaustiveTarget, a.Span, "attribute should be applied to struct or enum definition").
					WithNote(t.Span(), "not a struct or enum definition").
					Emit()
			}
		}
	}

	c.checkRepr(t, cat)
}
