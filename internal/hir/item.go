package hir

import (
	"fmt"

	"checkattr/internal/source"
)

type ItemKind uint8

const (
	ItemExternCrate ItemKind = iota
	ItemUse
	ItemStatic
	ItemConst
	ItemFn
	ItemMod
	ItemForeignMod
	ItemGlobalAsm
	ItemTypeAlias
	ItemEnum
	ItemStruct
	ItemUnion
	ItemTrait
	ItemTraitAlias
	ItemImpl
)

var itemKindNames = [...]string{
	ItemExternCrate: "extern_crate",
	ItemUse:         "use",
	ItemStatic:      "static",
	ItemConst:       "const",
	ItemFn:          "fn",
	ItemMod:         "mod",
	ItemForeignMod:  "foreign_mod",
	ItemGlobalAsm:   "global_asm",
	ItemTypeAlias:   "type",
	ItemEnum:        "enum",
	ItemStruct:      "struct",
	ItemUnion:       "union",
	ItemTrait:       "trait",
	ItemTraitAlias:  "trait_alias",
	ItemImpl:        "impl",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return fmt.Sprintf("item(%d)", k)
}

// ParseItemKind is the inverse of ItemKind.String.
func ParseItemKind(s string) (ItemKind, bool) {
	for k, name := range itemKindNames {
		if name == s {
			return ItemKind(k), true
		}
	}
	return 0, false
}

type TraitItemKind uint8

const (
	TraitItemConst TraitItemKind = iota
	TraitItemMethod
	TraitItemType
)

type ImplItemKind uint8

const (
	ImplItemConst ImplItemKind = iota
	ImplItemMethod
	ImplItemType
)

// Trait and impl members share their document spelling.
func (k TraitItemKind) String() string { return assocKindName(uint8(k)) }
func (k ImplItemKind) String() string  { return assocKindName(uint8(k)) }

func assocKindName(k uint8) string {
	switch k {
	case 0:
		return "const"
	case 1:
		return "fn"
	case 2:
		return "type"
	}
	return fmt.Sprintf("assoc(%d)", k)
}

type ForeignItemKind uint8

const (
	ForeignItemFn ForeignItemKind = iota
	ForeignItemStatic
	ForeignItemType
)

func (k ForeignItemKind) String() string {
	switch k {
	case ForeignItemFn:
		return "fn"
	case ForeignItemStatic:
		return "static"
	case ForeignItemType:
		return "type"
	}
	return fmt.Sprintf("foreign(%d)", k)
}

// VariantData is the shape of an enum variant's payload.
type VariantData uint8

const (
	VariantUnit VariantData = iota
	VariantTuple
	VariantStruct
)

type Variant struct {
	Name source.StringID
	Span source.Span
	Data VariantData
}

type GenericParam struct {
	ID    NodeID
	Name  source.StringID
	Span  source.Span
	Attrs []Attr
}

// Item is a free-standing item. Only the member list matching Kind is used:
// Items for modules, ForeignItems for foreign blocks, TraitItems for traits,
// ImplItems for impl blocks, Variants for enums and Body for functions.
type Item struct {
	ID       NodeID
	Kind     ItemKind
	Name     source.StringID
	Span     source.Span
	Attrs    []Attr
	Generics []GenericParam

	Items        []ItemID
	ForeignItems []ForeignItemID
	TraitItems   []TraitItemID
	ImplItems    []ImplItemID
	Variants     []Variant
	Body         []BodyNode
}

type TraitItem struct {
	ID       NodeID
	Kind     TraitItemKind
	Name     source.StringID
	Span     source.Span
	Attrs    []Attr
	Generics []GenericParam
}

type ImplItem struct {
	ID       NodeID
	Kind     ImplItemKind
	Name     source.StringID
	Span     source.Span
	Attrs    []Attr
	Generics []GenericParam
}

type ForeignItem struct {
	ID       NodeID
	Kind     ForeignItemKind
	Name     source.StringID
	Span     source.Span
	Attrs    []Attr
	Generics []GenericParam
}

// MacroDef is an exported macro definition. Its body is opaque here.
type MacroDef struct {
	ID    NodeID
	Name  source.StringID
	Span  source.Span
	Attrs []Attr
}

// BodyKind names the positions inside a function body that may carry attributes.
type BodyKind uint8

const (
	BodyStmt BodyKind = iota
	BodyExpr
	BodyArm
	BodyAsm
)

func (k BodyKind) String() string {
	switch k {
	case BodyStmt:
		return "stmt"
	case BodyExpr:
		return "expr"
	case BodyArm:
		return "arm"
	case BodyAsm:
		return "asm"
	}
	return fmt.Sprintf("body(%d)", k)
}

type BodyNode struct {
	ID    NodeID
	Kind  BodyKind
	Span  source.Span
	Attrs []Attr
}
