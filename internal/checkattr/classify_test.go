package checkattr

import (
	"testing"

	"checkattr/internal/hir"
	"checkattr/internal/source"
)

func TestClassifyItems(t *testing.T) {
	want := map[hir.ItemKind]Category{
		hir.ItemFn:     CategoryFn,
		hir.ItemStruct: CategoryStruct,
		hir.ItemUnion:  CategoryUnion,
		hir.ItemEnum:   CategoryEnum,
	}
	for k := hir.ItemExternCrate; k <= hir.ItemImpl; k++ {
		got := Classify(ItemTarget(&hir.Item{Kind: k}))
		exp, ok := want[k]
		if !ok {
			exp = CategoryOther
		}
		if got != exp {
			t.Errorf("Classify(%s) = %s, want %s", k, got, exp)
		}
	}
}

func TestClassifyMembersAndOtherPositions(t *testing.T) {
	tests := []struct {
		name string
		t    Target
		want Category
	}{
		{"trait const", TraitItemTarget(&hir.TraitItem{Kind: hir.TraitItemConst}), CategoryOther},
		{"trait method", TraitItemTarget(&hir.TraitItem{Kind: hir.TraitItemMethod}), CategoryFn},
		{"trait type", TraitItemTarget(&hir.TraitItem{Kind: hir.TraitItemType}), CategoryOther},
		{"impl const", ImplItemTarget(&hir.ImplItem{Kind: hir.ImplItemConst}), CategoryOther},
		{"impl method", ImplItemTarget(&hir.ImplItem{Kind: hir.ImplItemMethod}), CategoryFn},
		{"impl type", ImplItemTarget(&hir.ImplItem{Kind: hir.ImplItemType}), CategoryOther},
		{"foreign fn", ForeignItemTarget(&hir.ForeignItem{Kind: hir.ForeignItemFn}), CategoryFn},
		{"foreign static", ForeignItemTarget(&hir.ForeignItem{Kind: hir.ForeignItemStatic}), CategoryOther},
		{"foreign type", ForeignItemTarget(&hir.ForeignItem{Kind: hir.ForeignItemType}), CategoryOther},
		{"crate", CrateTarget(&hir.Crate{}), CategoryOther},
		{"macro", MacroDefTarget(&hir.MacroDef{}), CategoryOther},
		{"arm", BodyTarget(&hir.BodyNode{Kind: hir.BodyArm}), CategoryOther},
		{"stmt", BodyTarget(&hir.BodyNode{Kind: hir.BodyStmt}), CategoryOther},
		{"expr", BodyTarget(&hir.BodyNode{Kind: hir.BodyExpr}), CategoryOther},
		{"asm", BodyTarget(&hir.BodyNode{Kind: hir.BodyAsm}), CategoryOther},
		{"zero", Target{}, CategoryOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.t); got != tt.want {
			t.Errorf("%s: Classify = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestIsCLikeEnum(t *testing.T) {
	unit := hir.Variant{Data: hir.VariantUnit}
	tests := []struct {
		name string
		t    Target
		want bool
	}{
		{"unit variants", ItemTarget(&hir.Item{Kind: hir.ItemEnum, Variants: []hir.Variant{unit, unit}}), true},
		{"no variants", ItemTarget(&hir.Item{Kind: hir.ItemEnum}), true},
		{"tuple variant", ItemTarget(&hir.Item{Kind: hir.ItemEnum, Variants: []hir.Variant{unit, {Data: hir.VariantTuple}}}), false},
		{"struct variant", ItemTarget(&hir.Item{Kind: hir.ItemEnum, Variants: []hir.Variant{{Data: hir.VariantStruct}}}), false},
		{"struct item", ItemTarget(&hir.Item{Kind: hir.ItemStruct}), false},
		{"trait member", TraitItemTarget(&hir.TraitItem{}), false},
	}
	for _, tt := range tests {
		if got := IsCLikeEnum(tt.t); got != tt.want {
			t.Errorf("%s: IsCLikeEnum = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTargetAccessors(t *testing.T) {
	attrs := []hir.Attr{{Span: source.Span{File: 1, Start: 0, End: 3}}}
	sp := source.Span{File: 1, Start: 4, End: 9}
	tests := []Target{
		ItemTarget(&hir.Item{ID: 7, Span: sp, Attrs: attrs}),
		TraitItemTarget(&hir.TraitItem{ID: 7, Span: sp, Attrs: attrs}),
		ImplItemTarget(&hir.ImplItem{ID: 7, Span: sp, Attrs: attrs}),
		ForeignItemTarget(&hir.ForeignItem{ID: 7, Span: sp, Attrs: attrs}),
		CrateTarget(&hir.Crate{ID: 7, Span: sp, Attrs: attrs}),
		MacroDefTarget(&hir.MacroDef{ID: 7, Span: sp, Attrs: attrs}),
		BodyTarget(&hir.BodyNode{ID: 7, Span: sp, Attrs: attrs}),
	}
	for _, tg := range tests {
		if tg.ID() != 7 || tg.Span() != sp || len(tg.Attrs()) != 1 {
			t.Errorf("%s: accessors returned %d %v %v", tg.Kind(), tg.ID(), tg.Span(), tg.Attrs())
		}
	}
	if (Target{}).ID() != hir.NoNodeID || (Target{}).Attrs() != nil {
		t.Errorf("zero target must be empty")
	}
}
