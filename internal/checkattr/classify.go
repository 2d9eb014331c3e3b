package checkattr

import "checkattr/internal/hir"

// Category is the coarse class every attribute rule reasons about.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryFn
	CategoryStruct
	CategoryUnion
	CategoryEnum
)

func (c Category) String() string {
	switch c {
	case CategoryFn:
		return "fn"
	case CategoryStruct:
		return "struct"
	case CategoryUnion:
		return "union"
	case CategoryEnum:
		return "enum"
	}
	return "other"
}

// Classify maps a target to its Category. Free functions, trait and impl
// methods and foreign functions are function-like; structs, unions and enums
// map to themselves; everything else is Other.
func Classify(t Target) Category {
	switch t.kind {
	case TargetItem:
		switch t.item.Kind {
		case hir.ItemFn:
			return CategoryFn
		case hir.ItemStruct:
			return CategoryStruct
		case hir.ItemUnion:
			return CategoryUnion
		case hir.ItemEnum:
			return CategoryEnum
		}
	case TargetTraitItem:
		if t.trait.Kind == hir.TraitItemMethod {
			return CategoryFn
		}
	case TargetImplItem:
		if t.impl.Kind == hir.ImplItemMethod {
			return CategoryFn
		}
	case TargetForeignItem:
		if t.foreign.Kind == hir.ForeignItemFn {
			return CategoryFn
		}
	}
	return CategoryOther
}

// IsCLikeEnum reports whether t is an enum whose variants all carry no data.
// An enum without variants is C-like.
func IsCLikeEnum(t Target) bool {
	if t.kind != TargetItem || t.item.Kind != hir.ItemEnum {
		return false
	}
	for _, v := range t.item.Variants {
		if v.Data != hir.VariantUnit {
			return false
		}
	}
	return true
}
