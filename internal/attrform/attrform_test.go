package attrform

import (
	"testing"

	"checkattr/internal/diag"
	"checkattr/internal/hir"
	"checkattr/internal/source"
)

func at(n uint32) source.Span { return source.Span{File: 1, Start: n, End: n + 1} }

func TestNonExhaustiveForms(t *testing.T) {
	b := hir.NewBuilder("c", source.Span{}, hir.Hints{})
	b.AddItem(hir.NoItemID, hir.ItemEnum, "BadEnum1", at(1), b.List("non_exhaustive", at(0), b.MetaWord("foo", at(0))))
	b.AddItem(hir.NoItemID, hir.ItemStruct, "BadStruct1", at(3), b.List("non_exhaustive", at(2), b.MetaWord("foo", at(2))))
	b.AddItem(hir.NoItemID, hir.ItemEnum, "BadEnum2", at(5), b.NameValue("non_exhaustive", at(4), hir.Lit{Kind: hir.LitStr, Value: "bar"}))
	b.AddItem(hir.NoItemID, hir.ItemStruct, "Good", at(7), b.Word("non_exhaustive", at(6)))

	bag := diag.NewBag(0)
	if n := Check(b.Crate(), diag.BagReporter{Bag: bag}); n != 4 {
		t.Errorf("inspected %d attributes, want 4", n)
	}
	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(items))
	}
	for i, d := range items {
		if d.Code != diag.AttrNonExhaustiveForm || d.Message != "malformed `non_exhaustive` attribute" {
			t.Errorf("diag %d = %s %q", i, d.Code.ID(), d.Message)
		}
		if d.Primary != at(uint32(2*i)) {
			t.Errorf("diag %d at %v", i, d.Primary)
		}
	}
}

func TestReprHints(t *testing.T) {
	b := hir.NewBuilder("c", source.Span{}, hir.Hints{})
	repr := b.List("repr", at(0),
		b.MetaWord("C", at(1)),
		b.MetaList("align", at(2), b.MetaLit(hir.Lit{Kind: hir.LitInt, Value: "8", Span: at(3)})),
		b.MetaWord("u128", at(4)),
		b.MetaWord("Rust2", at(5)),
		b.MetaLit(hir.Lit{Kind: hir.LitInt, Value: "42", Span: at(6)}),
	)
	b.AddItem(hir.NoItemID, hir.ItemStruct, "S", at(10), repr, b.Word("repr", at(11)))

	bag := diag.NewBag(0)
	Check(b.Crate(), diag.BagReporter{Bag: bag})
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(items), items)
	}
	if items[0].Code != diag.AttrReprUnknownHint || items[0].Primary != at(5) {
		t.Errorf("first = %s at %v", items[0].Code.ID(), items[0].Primary)
	}
	if items[1].Code != diag.AttrLiteralUnsupported || items[1].Primary != at(6) {
		t.Errorf("second = %s at %v", items[1].Code.ID(), items[1].Primary)
	}
}

func TestGateSeesEveryPosition(t *testing.T) {
	b := hir.NewBuilder("c", source.Span{}, hir.Hints{})
	bad := func(n uint32) hir.Attr {
		return b.List("non_exhaustive", at(n), b.MetaWord("x", at(n)))
	}
	b.SetCrateAttrs(bad(0))
	f := b.AddItem(hir.NoItemID, hir.ItemFn, "f", at(100))
	b.Crate().Item(f).Generics = []hir.GenericParam{b.NewGenericParam("T", at(101), bad(1))}
	b.AddBodyNode(f, hir.BodyExpr, at(102), bad(2))
	tr := b.AddItem(hir.NoItemID, hir.ItemTrait, "Tr", at(103))
	b.AddTraitItem(tr, hir.TraitItemType, "T", at(104), bad(3))
	b.AddMacroDef("m", at(105), bad(4))

	bag := diag.NewBag(0)
	Check(b.Crate(), diag.BagReporter{Bag: bag})
	if bag.Len() != 5 {
		t.Fatalf("got %d diagnostics, want 5", bag.Len())
	}
	for i, d := range bag.Items() {
		if d.Primary != at(uint32(i)) {
			t.Errorf("diag %d at %v, want %v", i, d.Primary, at(uint32(i)))
		}
	}
}
