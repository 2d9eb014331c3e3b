package checkattr

import (
	"checkattr/internal/hir"
	"checkattr/internal/source"
)

// TargetKind tags which syntactic position a Target wraps.
type TargetKind uint8

const (
	TargetItem TargetKind = iota + 1
	TargetTraitItem
	TargetImplItem
	TargetForeignItem
	TargetCrate
	TargetMacroDef
	TargetBody
)

func (k TargetKind) String() string {
	switch k {
	case TargetItem:
		return "item"
	case TargetTraitItem:
		return "trait item"
	case TargetImplItem:
		return "impl item"
	case TargetForeignItem:
		return "foreign item"
	case TargetCrate:
		return "crate"
	case TargetMacroDef:
		return "macro"
	case TargetBody:
		return "body"
	}
	return "unknown"
}

// Target is anything an attribute may be written on. Exactly one of the
// pointers matches kind. Rules read a target only through ID, Span and Attrs.
type Target struct {
	kind    TargetKind
	item    *hir.Item
	trait   *hir.TraitItem
	impl    *hir.ImplItem
	foreign *hir.ForeignItem
	crate   *hir.Crate
	macro   *hir.MacroDef
	body    *hir.BodyNode
}

func ItemTarget(it *hir.Item) Target               { return Target{kind: TargetItem, item: it} }
func TraitItemTarget(ti *hir.TraitItem) Target     { return Target{kind: TargetTraitItem, trait: ti} }
func ImplItemTarget(ii *hir.ImplItem) Target       { return Target{kind: TargetImplItem, impl: ii} }
func ForeignItemTarget(fi *hir.ForeignItem) Target { return Target{kind: TargetForeignItem, foreign: fi} }
func CrateTarget(c *hir.Crate) Target              { return Target{kind: TargetCrate, crate: c} }
func MacroDefTarget(md *hir.MacroDef) Target       { return Target{kind: TargetMacroDef, macro: md} }
func BodyTarget(bn *hir.BodyNode) Target           { return Target{kind: TargetBody, body: bn} }

func (t Target) Kind() TargetKind { return t.kind }

func (t Target) ID() hir.NodeID {
	switch t.kind {
	case TargetItem:
		return t.item.ID
	case TargetTraitItem:
		return t.trait.ID
	case TargetImplItem:
		return t.impl.ID
	case TargetForeignItem:
		return t.foreign.ID
	case TargetCrate:
		return t.crate.ID
	case TargetMacroDef:
		return t.macro.ID
	case TargetBody:
		return t.body.ID
	}
	return hir.NoNodeID
}

func (t Target) Span() source.Span {
	switch t.kind {
	case TargetItem:
		return t.item.Span
	case TargetTraitItem:
		return t.trait.Span
	case TargetImplItem:
		return t.impl.Span
	case TargetForeignItem:
		return t.foreign.Span
	case TargetCrate:
		return t.crate.Span
	case TargetMacroDef:
		return t.macro.Span
	case TargetBody:
		return t.body.Span
	}
	return source.Span{}
}

// Attrs returns the attributes in source order. Callers must not modify them.
func (t Target) Attrs() []hir.Attr {
	switch t.kind {
	case TargetItem:
		return t.item.Attrs
	case TargetTraitItem:
		return t.trait.Attrs
	case TargetImplItem:
		return t.impl.Attrs
	case TargetForeignItem:
		return t.foreign.Attrs
	case TargetCrate:
		return t.crate.Attrs
	case TargetMacroDef:
		return t.macro.Attrs
	case TargetBody:
		return t.body.Attrs
	}
	return nil
}

// Describe names the construct for traces, e.g. "item fn" or "body arm".
func (t Target) Describe() string {
	switch t.kind {
	case TargetItem:
		return "item " + t.item.Kind.String()
	case TargetTraitItem:
		return "trait item " + t.trait.Kind.String()
	case TargetImplItem:
		return "impl item " + t.impl.Kind.String()
	case TargetForeignItem:
		return "foreign item " + t.foreign.Kind.String()
	case TargetBody:
		return "body " + t.body.Kind.String()
	}
	return t.kind.String()
}
