package codegen

import (
	"strings"

	"checkattr/internal/diag"
	"checkattr/internal/hir"
)

type fnNode struct {
	attrs []hir.Attr
}

// Context materialises FnAttrs for the function-like nodes of one crate.
// Results are memoised per NodeID, so diagnostics about function attributes
// are reported once no matter how often a node is queried.
type Context struct {
	crate    *hir.Crate
	reporter diag.Reporter
	fns      map[hir.NodeID]fnNode
	cache    map[hir.NodeID]FnAttrs
}

func NewContext(crate *hir.Crate, reporter diag.Reporter) *Context {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	ctx := &Context{
		crate:    crate,
		reporter: reporter,
		cache:    make(map[hir.NodeID]FnAttrs),
	}
	idx := &fnIndex{crate: crate, fns: make(map[hir.NodeID]fnNode)}
	crate.Walk(idx)
	ctx.fns = idx.fns
	return ctx
}

// FnAttrs returns the attribute record of function id, computing it on first
// request. Ids that do not name a function yield the zero record.
func (c *Context) FnAttrs(id hir.NodeID) FnAttrs {
	if attrs, ok := c.cache[id]; ok {
		return attrs
	}
	fn, ok := c.fns[id]
	if !ok {
		return FnAttrs{}
	}
	attrs := c.materialize(fn)
	c.cache[id] = attrs
	return attrs
}

// Materialized reports how many distinct functions have been computed.
func (c *Context) Materialized() int {
	return len(c.cache)
}

func (c *Context) materialize(fn fnNode) FnAttrs {
	var out FnAttrs
	for _, attr := range fn.attrs {
		switch c.crate.AttrName(attr) {
		case "cold":
			out.Flags |= FnCold
		case "naked":
			out.Flags |= FnNaked
		case "no_mangle":
			out.Flags |= FnNoMangle
		case "inline":
			out.Inline = c.inlineAttr(attr, out.Inline)
		case "export_name":
			if attr.Kind == hir.MetaNameValue && attr.Value != nil && attr.Value.Kind == hir.LitStr {
				out.ExportName = attr.Value.Value
			} else {
				diag.ReportError(c.reporter, diag.AttrExportNameFormat, attr.Span,
					"export_name attribute has invalid format").
					WithNote(attr.Span, "did you mean #[export_name=\"*\"]?").
					Emit()
			}
		case "target_feature":
			out.TargetFeatures = append(out.TargetFeatures, c.targetFeatures(attr)...)
		}
	}
	return out
}

func (c *Context) inlineAttr(attr hir.Attr, prev InlineAttr) InlineAttr {
	switch attr.Kind {
	case hir.MetaWord:
		return InlineHint
	case hir.MetaList:
		if len(attr.Args) != 1 {
			diag.ReportError(c.reporter, diag.AttrInlineArgCount, attr.Span, "expected one argument").Emit()
			return InlineNone
		}
		arg := attr.Args[0]
		if arg.Kind == hir.MetaWord {
			switch c.crate.MetaName(arg) {
			case "always":
				return InlineAlways
			case "never":
				return InlineNever
			}
		}
		diag.ReportError(c.reporter, diag.AttrInlineArgInvalid, arg.Span, "invalid argument").Emit()
		return InlineNone
	}
	return prev
}

func (c *Context) targetFeatures(attr hir.Attr) []string {
	const msg = "#[target_feature(..)] only accepts sub-keys of `enable` currently"
	args, ok := attr.MetaItemList()
	if !ok {
		diag.ReportError(c.reporter, diag.NoCode, attr.Span, msg).Emit()
		return nil
	}
	var features []string
	for _, arg := range args {
		if arg.Kind != hir.MetaNameValue || c.crate.MetaName(arg) != "enable" || arg.Lit == nil || arg.Lit.Kind != hir.LitStr {
			diag.ReportError(c.reporter, diag.NoCode, arg.Span, msg).Emit()
			continue
		}
		for _, feat := range strings.Split(arg.Lit.Value, ",") {
			if feat = strings.TrimSpace(feat); feat != "" {
				features = append(features, feat)
			}
		}
	}
	return features
}

// fnIndex collects every function-like node with its attributes.
type fnIndex struct {
	crate *hir.Crate
	fns   map[hir.NodeID]fnNode
}

func (x *fnIndex) VisitItem(it *hir.Item) {
	if it.Kind == hir.ItemFn {
		x.fns[it.ID] = fnNode{attrs: it.Attrs}
	}
	x.crate.WalkItem(x, it)
}

func (x *fnIndex) VisitTraitItem(ti *hir.TraitItem) {
	if ti.Kind == hir.TraitItemMethod {
		x.fns[ti.ID] = fnNode{attrs: ti.Attrs}
	}
}

func (x *fnIndex) VisitImplItem(ii *hir.ImplItem) {
	if ii.Kind == hir.ImplItemMethod {
		x.fns[ii.ID] = fnNode{attrs: ii.Attrs}
	}
}

func (x *fnIndex) VisitForeignItem(fi *hir.ForeignItem) {
	if fi.Kind == hir.ForeignItemFn {
		x.fns[fi.ID] = fnNode{attrs: fi.Attrs}
	}
}

func (x *fnIndex) VisitGenericParam(*hir.GenericParam) {}
func (x *fnIndex) VisitMacroDef(*hir.MacroDef)         {}
