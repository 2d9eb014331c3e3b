package hirdoc

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"checkattr/internal/hir"
	"checkattr/internal/source"
)

// BuildOptions tie a document to the file its spans point into.
type BuildOptions struct {
	File source.FileID
	// Limit bounds span ends when non-zero, usually the source length.
	Limit uint32
}

// Build validates doc and turns it into a crate. The error names the path
// of the first offending node, e.g. `items[1].members[0].kind`.
func Build(doc *Document, opts BuildOptions) (*hir.Crate, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	bd := &builder{opts: opts}
	span, err := bd.span("span", doc.Span)
	if err != nil {
		return nil, err
	}
	bd.b = hir.NewBuilder(bd.name(doc.Crate), span, hints(doc))

	attrs, err := bd.attrs("attrs", doc.Attrs)
	if err != nil {
		return nil, err
	}
	bd.b.SetCrateAttrs(attrs...)

	for i := range doc.Items {
		if err := bd.item(fmt.Sprintf("items[%d]", i), hir.NoItemID, &doc.Items[i]); err != nil {
			return nil, err
		}
	}
	for i, m := range doc.Macros {
		path := fmt.Sprintf("macros[%d]", i)
		sp, err := bd.span(path+".span", m.Span)
		if err != nil {
			return nil, err
		}
		attrs, err := bd.attrs(path+".attrs", m.Attrs)
		if err != nil {
			return nil, err
		}
		bd.b.AddMacroDef(bd.name(m.Name), sp, attrs...)
	}
	return bd.b.Crate(), nil
}

// hints sizes the arenas from a quick count of the document.
func hints(doc *Document) hir.Hints {
	var h hir.Hints
	var count func(items []Item)
	count = func(items []Item) {
		for i := range items {
			h.Items++
			switch items[i].Kind {
			case "trait":
				h.TraitItems += uint(len(items[i].Members))
			case "impl":
				h.ImplItems += uint(len(items[i].Members))
			case "foreign_mod":
				h.ForeignItems += uint(len(items[i].Members))
			}
			count(items[i].Items)
		}
	}
	count(doc.Items)
	return h
}

type builder struct {
	b    *hir.Builder
	opts BuildOptions
}

func (bd *builder) name(s string) string {
	return norm.NFC.String(s)
}

func (bd *builder) span(path string, raw []uint32) (source.Span, error) {
	if len(raw) == 0 {
		return source.Span{File: bd.opts.File}, nil
	}
	if len(raw) != 2 {
		return source.Span{}, fmt.Errorf("%s: span must be [start, end], got %d numbers", path, len(raw))
	}
	sp := source.Span{File: bd.opts.File, Start: raw[0], End: raw[1]}
	if sp.End < sp.Start {
		return source.Span{}, fmt.Errorf("%s: span end %d before start %d", path, sp.End, sp.Start)
	}
	if bd.opts.Limit > 0 && sp.End > bd.opts.Limit {
		return source.Span{}, fmt.Errorf("%s: span end %d beyond source length %d", path, sp.End, bd.opts.Limit)
	}
	return sp, nil
}

func (bd *builder) item(path string, parent hir.ItemID, it *Item) error {
	kind, ok := hir.ParseItemKind(it.Kind)
	if !ok {
		return fmt.Errorf("%s.kind: unknown item kind %q", path, it.Kind)
	}
	sp, err := bd.span(path+".span", it.Span)
	if err != nil {
		return err
	}
	attrs, err := bd.attrs(path+".attrs", it.Attrs)
	if err != nil {
		return err
	}
	if len(it.Items) > 0 && kind != hir.ItemMod {
		return fmt.Errorf("%s.items: only modules contain items, this is %s", path, kind)
	}
	if len(it.Variants) > 0 && kind != hir.ItemEnum {
		return fmt.Errorf("%s.variants: only enums have variants, this is %s", path, kind)
	}
	if len(it.Body) > 0 && kind != hir.ItemFn {
		return fmt.Errorf("%s.body: only functions have bodies, this is %s", path, kind)
	}
	if len(it.Members) > 0 && kind != hir.ItemTrait && kind != hir.ItemImpl && kind != hir.ItemForeignMod {
		return fmt.Errorf("%s.members: only traits, impls and foreign blocks have members, this is %s", path, kind)
	}

	id := bd.b.AddItem(parent, kind, bd.name(it.Name), sp, attrs...)
	generics, err := bd.generics(path+".generics", it.Generics)
	if err != nil {
		return err
	}
	bd.b.Crate().Item(id).Generics = generics

	for i := range it.Items {
		if err := bd.item(fmt.Sprintf("%s.items[%d]", path, i), id, &it.Items[i]); err != nil {
			return err
		}
	}
	for i := range it.Members {
		if err := bd.member(fmt.Sprintf("%s.members[%d]", path, i), id, kind, &it.Members[i]); err != nil {
			return err
		}
	}
	for i, v := range it.Variants {
		vpath := fmt.Sprintf("%s.variants[%d]", path, i)
		vsp, err := bd.span(vpath+".span", v.Span)
		if err != nil {
			return err
		}
		data, err := variantData(vpath, v.Data)
		if err != nil {
			return err
		}
		bd.b.AddVariant(id, bd.name(v.Name), vsp, data)
	}
	for i, n := range it.Body {
		bpath := fmt.Sprintf("%s.body[%d]", path, i)
		kind, err := bodyKind(bpath, n.Kind)
		if err != nil {
			return err
		}
		bsp, err := bd.span(bpath+".span", n.Span)
		if err != nil {
			return err
		}
		battrs, err := bd.attrs(bpath+".attrs", n.Attrs)
		if err != nil {
			return err
		}
		bd.b.AddBodyNode(id, kind, bsp, battrs...)
	}
	return nil
}

func (bd *builder) member(path string, parent hir.ItemID, parentKind hir.ItemKind, m *Member) error {
	sp, err := bd.span(path+".span", m.Span)
	if err != nil {
		return err
	}
	attrs, err := bd.attrs(path+".attrs", m.Attrs)
	if err != nil {
		return err
	}
	generics, err := bd.generics(path+".generics", m.Generics)
	if err != nil {
		return err
	}
	name := bd.name(m.Name)
	c := bd.b.Crate()

	switch parentKind {
	case hir.ItemTrait, hir.ItemImpl:
		var kind uint8
		switch m.Kind {
		case "const":
			kind = 0
		case "fn":
			kind = 1
		case "type":
			kind = 2
		default:
			return fmt.Errorf("%s.kind: unknown %s member kind %q (expected const, fn or type)", path, parentKind, m.Kind)
		}
		if parentKind == hir.ItemTrait {
			id := bd.b.AddTraitItem(parent, traitKinds[kind], name, sp, attrs...)
			c.TraitItem(id).Generics = generics
		} else {
			id := bd.b.AddImplItem(parent, implKinds[kind], name, sp, attrs...)
			c.ImplItem(id).Generics = generics
		}
	case hir.ItemForeignMod:
		var kind hir.ForeignItemKind
		switch m.Kind {
		case "fn":
			kind = hir.ForeignItemFn
		case "static":
			kind = hir.ForeignItemStatic
		case "type":
			kind = hir.ForeignItemType
		default:
			return fmt.Errorf("%s.kind: unknown foreign item kind %q (expected fn, static or type)", path, m.Kind)
		}
		id := bd.b.AddForeignItem(parent, kind, name, sp, attrs...)
		c.ForeignItem(id).Generics = generics
	}
	return nil
}

var (
	traitKinds = [...]hir.TraitItemKind{hir.TraitItemConst, hir.TraitItemMethod, hir.TraitItemType}
	implKinds  = [...]hir.ImplItemKind{hir.ImplItemConst, hir.ImplItemMethod, hir.ImplItemType}
)

func variantData(path, s string) (hir.VariantData, error) {
	switch s {
	case "", "unit":
		return hir.VariantUnit, nil
	case "tuple":
		return hir.VariantTuple, nil
	case "struct":
		return hir.VariantStruct, nil
	}
	return 0, fmt.Errorf("%s.data: unknown variant shape %q (expected unit, tuple or struct)", path, s)
}

func bodyKind(path, s string) (hir.BodyKind, error) {
	switch s {
	case "stmt":
		return hir.BodyStmt, nil
	case "expr":
		return hir.BodyExpr, nil
	case "arm":
		return hir.BodyArm, nil
	case "asm":
		return hir.BodyAsm, nil
	}
	return 0, fmt.Errorf("%s.kind: unknown body node kind %q (expected stmt, expr, arm or asm)", path, s)
}

func (bd *builder) generics(path string, gs []Generic) ([]hir.GenericParam, error) {
	if len(gs) == 0 {
		return nil, nil
	}
	out := make([]hir.GenericParam, 0, len(gs))
	for i, g := range gs {
		gpath := fmt.Sprintf("%s[%d]", path, i)
		sp, err := bd.span(gpath+".span", g.Span)
		if err != nil {
			return nil, err
		}
		attrs, err := bd.attrs(gpath+".attrs", g.Attrs)
		if err != nil {
			return nil, err
		}
		out = append(out, bd.b.NewGenericParam(bd.name(g.Name), sp, attrs...))
	}
	return out, nil
}

func (bd *builder) attrs(path string, in []Attr) ([]hir.Attr, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]hir.Attr, 0, len(in))
	for i := range in {
		a, err := bd.attr(fmt.Sprintf("%s[%d]", path, i), &in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (bd *builder) attr(path string, a *Attr) (hir.Attr, error) {
	sp, err := bd.span(path+".span", a.Span)
	if err != nil {
		return hir.Attr{}, err
	}
	kind, err := metaKind(path, a.Kind, a.Name != "", len(a.Args) > 0, a.Value != nil)
	if err != nil {
		return hir.Attr{}, err
	}
	if kind == hir.MetaLiteral {
		return hir.Attr{}, fmt.Errorf("%s: attributes cannot be bare literals", path)
	}
	out := hir.Attr{Name: bd.b.Intern(bd.name(a.Name)), Span: sp, Kind: kind}
	if a.Inner {
		out.Style = hir.AttrInner
	}
	if out.Args, err = bd.metas(path+".args", a.Args); err != nil {
		return hir.Attr{}, err
	}
	if a.Value != nil {
		lit, err := bd.lit(path+".value", a.Value)
		if err != nil {
			return hir.Attr{}, err
		}
		out.Value = &lit
	}
	return out, nil
}

func (bd *builder) metas(path string, in []Meta) ([]hir.MetaItem, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]hir.MetaItem, 0, len(in))
	for i := range in {
		m, err := bd.meta(fmt.Sprintf("%s[%d]", path, i), &in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (bd *builder) meta(path string, m *Meta) (hir.MetaItem, error) {
	sp, err := bd.span(path+".span", m.Span)
	if err != nil {
		return hir.MetaItem{}, err
	}
	kind, err := metaKind(path, m.Kind, m.Name != "", len(m.Args) > 0, m.Lit != nil)
	if err != nil {
		return hir.MetaItem{}, err
	}
	out := hir.MetaItem{Kind: kind, Span: sp}
	if kind != hir.MetaLiteral {
		out.Name = bd.b.Intern(bd.name(m.Name))
	}
	if out.Args, err = bd.metas(path+".args", m.Args); err != nil {
		return hir.MetaItem{}, err
	}
	if m.Lit != nil {
		lit, err := bd.lit(path+".lit", m.Lit)
		if err != nil {
			return hir.MetaItem{}, err
		}
		if len(m.Lit.Span) == 0 {
			lit.Span = sp
		}
		out.Lit = &lit
	}
	return out, nil
}

func (bd *builder) lit(path string, l *Lit) (hir.Lit, error) {
	sp, err := bd.span(path+".span", l.Span)
	if err != nil {
		return hir.Lit{}, err
	}
	out := hir.Lit{Value: l.Value, Span: sp}
	switch l.Kind {
	case "str":
		out.Kind = hir.LitStr
	case "int":
		if _, err := strconv.ParseInt(l.Value, 0, 64); err != nil {
			return hir.Lit{}, fmt.Errorf("%s.value: %q is not an integer", path, l.Value)
		}
		out.Kind = hir.LitInt
	case "bool":
		if l.Value != "true" && l.Value != "false" {
			return hir.Lit{}, fmt.Errorf("%s.value: %q is not a bool", path, l.Value)
		}
		out.Kind = hir.LitBool
	case "float":
		if _, err := strconv.ParseFloat(l.Value, 64); err != nil {
			return hir.Lit{}, fmt.Errorf("%s.value: %q is not a float", path, l.Value)
		}
		out.Kind = hir.LitFloat
	default:
		return hir.Lit{}, fmt.Errorf("%s.kind: unknown literal kind %q (expected str, int, bool or float)", path, l.Kind)
	}
	return out, nil
}

// metaKind resolves an explicit or inferred argument shape and checks that
// the fields present agree with it.
func metaKind(path, explicit string, named, hasArgs, hasLit bool) (hir.MetaKind, error) {
	var kind hir.MetaKind
	switch explicit {
	case "":
		switch {
		case !named && hasLit:
			kind = hir.MetaLiteral
		case hasLit:
			kind = hir.MetaNameValue
		case hasArgs:
			kind = hir.MetaList
		default:
			kind = hir.MetaWord
		}
	case "word":
		kind = hir.MetaWord
	case "list":
		kind = hir.MetaList
	case "name_value":
		kind = hir.MetaNameValue
	case "literal":
		kind = hir.MetaLiteral
	default:
		return 0, fmt.Errorf("%s.kind: unknown form %q (expected word, list, name_value or literal)", path, explicit)
	}

	switch {
	case kind != hir.MetaLiteral && !named:
		return 0, fmt.Errorf("%s: %s form needs a name", path, kind)
	case kind == hir.MetaLiteral && named:
		return 0, fmt.Errorf("%s: literal form has no name", path)
	case hasArgs && kind != hir.MetaList:
		return 0, fmt.Errorf("%s: only list form takes args", path)
	case hasLit && kind != hir.MetaNameValue && kind != hir.MetaLiteral:
		return 0, fmt.Errorf("%s: %s form takes no value", path, kind)
	case !hasLit && (kind == hir.MetaNameValue || kind == hir.MetaLiteral):
		return 0, fmt.Errorf("%s: %s form needs a value", path, kind)
	}
	return kind, nil
}
