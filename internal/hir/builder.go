package hir

import (
	"fmt"

	"checkattr/internal/source"
)

type Hints struct{ Items, TraitItems, ImplItems, ForeignItems uint }

// Builder assembles a Crate. Every attributable node receives the next NodeID
// at creation, so ids follow construction order.
type Builder struct {
	crate *Crate
}

func NewBuilder(name string, span source.Span, hints Hints) *Builder {
	if hints.Items == 0 {
		hints.Items = 1 << 6
	}
	if hints.TraitItems == 0 {
		hints.TraitItems = 1 << 4
	}
	if hints.ImplItems == 0 {
		hints.ImplItems = 1 << 4
	}
	if hints.ForeignItems == 0 {
		hints.ForeignItems = 1 << 4
	}
	c := &Crate{
		Name:         name,
		Span:         span,
		Strings:      source.NewInterner(),
		items:        NewArena[Item](hints.Items),
		traitItems:   NewArena[TraitItem](hints.TraitItems),
		implItems:    NewArena[ImplItem](hints.ImplItems),
		foreignItems: NewArena[ForeignItem](hints.ForeignItems),
	}
	b := &Builder{crate: c}
	c.ID = b.nextID()
	return b
}

// Crate returns the crate under construction.
func (b *Builder) Crate() *Crate {
	return b.crate
}

func (b *Builder) nextID() NodeID {
	b.crate.nodes++
	return NodeID(b.crate.nodes)
}

func (b *Builder) Intern(name string) source.StringID {
	if name == "" {
		return source.NoStringID
	}
	return b.crate.Strings.Intern(name)
}

// Word builds `#[name]`.
func (b *Builder) Word(name string, span source.Span) Attr {
	return Attr{Name: b.Intern(name), Span: span, Kind: MetaWord}
}

// List builds `#[name(args...)]`.
func (b *Builder) List(name string, span source.Span, args ...MetaItem) Attr {
	return Attr{Name: b.Intern(name), Span: span, Kind: MetaList, Args: args}
}

// NameValue builds `#[name = lit]`.
func (b *Builder) NameValue(name string, span source.Span, lit Lit) Attr {
	return Attr{Name: b.Intern(name), Span: span, Kind: MetaNameValue, Value: &lit}
}

func (b *Builder) MetaWord(name string, span source.Span) MetaItem {
	return MetaItem{Kind: MetaWord, Name: b.Intern(name), Span: span}
}

func (b *Builder) MetaList(name string, span source.Span, args ...MetaItem) MetaItem {
	return MetaItem{Kind: MetaList, Name: b.Intern(name), Span: span, Args: args}
}

func (b *Builder) MetaNameValue(name string, span source.Span, lit Lit) MetaItem {
	return MetaItem{Kind: MetaNameValue, Name: b.Intern(name), Span: span, Lit: &lit}
}

func (b *Builder) MetaLit(lit Lit) MetaItem {
	return MetaItem{Kind: MetaLiteral, Span: lit.Span, Lit: &lit}
}

// SetCrateAttrs records the crate-level `#![...]` attributes.
func (b *Builder) SetCrateAttrs(attrs ...Attr) {
	for i := range attrs {
		attrs[i].Style = AttrInner
	}
	b.crate.Attrs = attrs
}

// AddItem creates a free item inside parent, which must be a module. A zero
// parent adds the item to the crate root.
func (b *Builder) AddItem(parent ItemID, kind ItemKind, name string, span source.Span, attrs ...Attr) ItemID {
	id := ItemID(b.crate.items.Allocate(Item{
		ID:    b.nextID(),
		Kind:  kind,
		Name:  b.Intern(name),
		Span:  span,
		Attrs: attrs,
	}))
	if !parent.IsValid() {
		b.crate.Items = append(b.crate.Items, id)
		return id
	}
	p := b.mustItem(parent, ItemMod)
	p.Items = append(p.Items, id)
	return id
}

func (b *Builder) AddTraitItem(trait ItemID, kind TraitItemKind, name string, span source.Span, attrs ...Attr) TraitItemID {
	p := b.mustItem(trait, ItemTrait)
	id := TraitItemID(b.crate.traitItems.Allocate(TraitItem{
		ID:    b.nextID(),
		Kind:  kind,
		Name:  b.Intern(name),
		Span:  span,
		Attrs: attrs,
	}))
	p.TraitItems = append(p.TraitItems, id)
	return id
}

func (b *Builder) AddImplItem(impl ItemID, kind ImplItemKind, name string, span source.Span, attrs ...Attr) ImplItemID {
	p := b.mustItem(impl, ItemImpl)
	id := ImplItemID(b.crate.implItems.Allocate(ImplItem{
		ID:    b.nextID(),
		Kind:  kind,
		Name:  b.Intern(name),
		Span:  span,
		Attrs: attrs,
	}))
	p.ImplItems = append(p.ImplItems, id)
	return id
}

func (b *Builder) AddForeignItem(block ItemID, kind ForeignItemKind, name string, span source.Span, attrs ...Attr) ForeignItemID {
	p := b.mustItem(block, ItemForeignMod)
	id := ForeignItemID(b.crate.foreignItems.Allocate(ForeignItem{
		ID:    b.nextID(),
		Kind:  kind,
		Name:  b.Intern(name),
		Span:  span,
		Attrs: attrs,
	}))
	p.ForeignItems = append(p.ForeignItems, id)
	return id
}

func (b *Builder) AddVariant(enum ItemID, name string, span source.Span, data VariantData) {
	p := b.mustItem(enum, ItemEnum)
	p.Variants = append(p.Variants, Variant{Name: b.Intern(name), Span: span, Data: data})
}

// AddBodyNode records an attributed statement, expression, arm or asm
// invocation inside function fn.
func (b *Builder) AddBodyNode(fn ItemID, kind BodyKind, span source.Span, attrs ...Attr) NodeID {
	p := b.mustItem(fn, ItemFn)
	id := b.nextID()
	p.Body = append(p.Body, BodyNode{ID: id, Kind: kind, Span: span, Attrs: attrs})
	return id
}

// NewGenericParam creates a generic parameter; callers append it to the
// Generics of its owner.
func (b *Builder) NewGenericParam(name string, span source.Span, attrs ...Attr) GenericParam {
	return GenericParam{ID: b.nextID(), Name: b.Intern(name), Span: span, Attrs: attrs}
}

func (b *Builder) AddMacroDef(name string, span source.Span, attrs ...Attr) NodeID {
	id := b.nextID()
	b.crate.MacroDefs = append(b.crate.MacroDefs, MacroDef{ID: id, Name: b.Intern(name), Span: span, Attrs: attrs})
	return id
}

func (b *Builder) mustItem(id ItemID, kind ItemKind) *Item {
	it := b.crate.Item(id)
	if it == nil {
		panic(fmt.Errorf("hir: unknown item %d", id))
	}
	if it.Kind != kind {
		panic(fmt.Errorf("hir: item %d is %s, want %s", id, it.Kind, kind))
	}
	return it
}
