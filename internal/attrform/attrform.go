// Package attrform validates the written form of attributes before the
// placement checks run. It never rewrites the tree: a malformed attribute is
// reported here and then skipped by later passes.
package attrform

import (
	"checkattr/internal/diag"
	"checkattr/internal/hir"
)

var knownReprHints = map[string]bool{
	"C": true, "packed": true, "simd": true, "align": true, "transparent": true,
	"i8": true, "u8": true, "i16": true, "u16": true, "i32": true, "u32": true,
	"i64": true, "u64": true, "i128": true, "u128": true, "isize": true, "usize": true,
}

// Check reports malformed non_exhaustive and repr attributes anywhere in
// crate, including the crate root, generic parameters, macro definitions and
// function bodies. It returns how many attributes it inspected.
func Check(crate *hir.Crate, r diag.Reporter) int {
	if r == nil {
		r = diag.NopReporter{}
	}
	g := &gate{crate: crate, r: r}
	g.attrs(crate.Attrs)
	crate.Walk(g)
	return g.seen
}

type gate struct {
	crate *hir.Crate
	r     diag.Reporter
	seen  int
}

func (g *gate) attrs(list []hir.Attr) {
	for _, a := range list {
		g.seen++
		switch g.crate.AttrName(a) {
		case "non_exhaustive":
			if a.Kind != hir.MetaWord {
				diag.ReportError(g.r, diag.AttrNonExhaustiveForm, a.Span, "malformed `non_exhaustive` attribute").
					WithNote(a.Span, "help: the correct form is `#[non_exhaustive]`").
					Emit()
			}
		case "repr":
			g.repr(a)
		}
	}
}

func (g *gate) repr(a hir.Attr) {
	hints, ok := a.MetaItemList()
	if !ok {
		return
	}
	for _, h := range hints {
		if !h.HasName() {
			diag.ReportError(g.r, diag.AttrLiteralUnsupported, h.Span, "meta item in `repr` must be an identifier").Emit()
			continue
		}
		if name := g.crate.MetaName(h); !knownReprHints[name] {
			diag.ReportError(g.r, diag.AttrReprUnknownHint, h.Span, "unrecognized representation hint").Emit()
		}
	}
}

func (g *gate) VisitItem(it *hir.Item) {
	g.attrs(it.Attrs)
	g.crate.WalkItem(g, it)
	for i := range it.Body {
		g.attrs(it.Body[i].Attrs)
	}
}

func (g *gate) VisitTraitItem(ti *hir.TraitItem) {
	g.attrs(ti.Attrs)
	g.crate.WalkTraitItem(g, ti)
}

func (g *gate) VisitImplItem(ii *hir.ImplItem) {
	g.attrs(ii.Attrs)
	g.crate.WalkImplItem(g, ii)
}

func (g *gate) VisitForeignItem(fi *hir.ForeignItem) {
	g.attrs(fi.Attrs)
	g.crate.WalkForeignItem(g, fi)
}

func (g *gate) VisitGenericParam(gp *hir.GenericParam) { g.attrs(gp.Attrs) }
func (g *gate) VisitMacroDef(md *hir.MacroDef)         { g.attrs(md.Attrs) }
