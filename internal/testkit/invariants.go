package testkit

import (
	"fmt"

	"checkattr/internal/hir"
	"checkattr/internal/source"
)

// CheckCrateSpans runs a minimal set of span invariants on a decoded crate:
// 1) every span points into file, is not inverted and ends within limit
// 2) every item and member span lies inside the span of its container
// 3) the crate span, when set, covers the union of top-level item spans
func CheckCrateSpans(c *hir.Crate, file source.FileID, limit uint32) error {
	if c == nil {
		return fmt.Errorf("nil crate")
	}
	chk := spanChecker{file: file, limit: limit}

	if err := chk.span("crate", c.Span); err != nil {
		return err
	}
	if err := chk.attrs("crate", c.Attrs); err != nil {
		return err
	}

	var union source.Span
	var haveItem bool
	for _, id := range c.Items {
		it := c.Item(id)
		if it == nil {
			return fmt.Errorf("nil item for id=%d", id)
		}
		if err := chk.item(c, it, c.Span); err != nil {
			return err
		}
		if !haveItem {
			union, haveItem = it.Span, true
		} else {
			union = union.Cover(it.Span)
		}
	}
	if haveItem && !c.Span.Empty() && !c.Span.Contains(union) {
		return fmt.Errorf("crate span %v does not cover union of items %v", c.Span, union)
	}

	for _, md := range c.MacroDefs {
		if err := chk.span("macro", md.Span); err != nil {
			return err
		}
		if err := chk.attrs("macro", md.Attrs); err != nil {
			return err
		}
	}
	return nil
}

type spanChecker struct {
	file  source.FileID
	limit uint32
}

func (sc spanChecker) span(what string, sp source.Span) error {
	if sp.File != sc.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sc.file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s span is inverted: %v", what, sp)
	}
	if sc.limit > 0 && sp.End > sc.limit {
		return fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, sc.limit)
	}
	return nil
}

func (sc spanChecker) within(what string, sp, parent source.Span) error {
	if err := sc.span(what, sp); err != nil {
		return err
	}
	if !parent.Empty() && !sp.Empty() && !parent.Contains(sp) {
		return fmt.Errorf("%s span %v is outside its container %v", what, sp, parent)
	}
	return nil
}

func (sc spanChecker) attrs(what string, attrs []hir.Attr) error {
	for _, a := range attrs {
		if err := sc.span(what+" attribute", a.Span); err != nil {
			return err
		}
		for _, m := range a.Args {
			if err := sc.within(what+" attribute argument", m.Span, a.Span); err != nil {
				return err
			}
		}
	}
	return nil
}

func (sc spanChecker) generics(what string, params []hir.GenericParam, parent source.Span) error {
	for _, gp := range params {
		if err := sc.within(what+" generic", gp.Span, parent); err != nil {
			return err
		}
		if err := sc.attrs(what+" generic", gp.Attrs); err != nil {
			return err
		}
	}
	return nil
}

func (sc spanChecker) item(c *hir.Crate, it *hir.Item, parent source.Span) error {
	what := it.Kind.String() + " " + c.Str(it.Name)
	if err := sc.within(what, it.Span, parent); err != nil {
		return err
	}
	if err := sc.attrs(what, it.Attrs); err != nil {
		return err
	}
	if err := sc.generics(what, it.Generics, it.Span); err != nil {
		return err
	}
	for _, id := range it.Items {
		if err := sc.item(c, c.Item(id), it.Span); err != nil {
			return err
		}
	}
	for _, id := range it.TraitItems {
		ti := c.TraitItem(id)
		if err := sc.member(what+" member", ti.Span, ti.Attrs, ti.Generics, it.Span); err != nil {
			return err
		}
	}
	for _, id := range it.ImplItems {
		ii := c.ImplItem(id)
		if err := sc.member(what+" member", ii.Span, ii.Attrs, ii.Generics, it.Span); err != nil {
			return err
		}
	}
	for _, id := range it.ForeignItems {
		fi := c.ForeignItem(id)
		if err := sc.member(what+" member", fi.Span, fi.Attrs, fi.Generics, it.Span); err != nil {
			return err
		}
	}
	for _, v := range it.Variants {
		if err := sc.within(what+" variant", v.Span, it.Span); err != nil {
			return err
		}
	}
	for _, bn := range it.Body {
		if err := sc.within(what+" body", bn.Span, it.Span); err != nil {
			return err
		}
		if err := sc.attrs(what+" body", bn.Attrs); err != nil {
			return err
		}
	}
	return nil
}

func (sc spanChecker) member(what string, sp source.Span, attrs []hir.Attr, generics []hir.GenericParam, parent source.Span) error {
	if err := sc.within(what, sp, parent); err != nil {
		return err
	}
	if err := sc.attrs(what, attrs); err != nil {
		return err
	}
	return sc.generics(what, generics, sp)
}
