package hirdoc

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"checkattr/internal/hir"
	"checkattr/internal/testkit"
)

func loadDoc(t *testing.T, path string) *Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return doc
}

func TestBuildPlacementFixture(t *testing.T) {
	doc := loadDoc(t, "testdata/placement.yaml")
	c, err := Build(doc, BuildOptions{File: 1, Limit: 501})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if c.Name != "placement" || len(c.Attrs) != 1 || c.Attrs[0].Style != hir.AttrInner {
		t.Fatalf("crate header = %q %+v", c.Name, c.Attrs)
	}
	if len(c.Items) != 5 || len(c.MacroDefs) != 1 {
		t.Fatalf("got %d items and %d macros", len(c.Items), len(c.MacroDefs))
	}
	if err := testkit.CheckCrateSpans(c, 1, 501); err != nil {
		t.Fatalf("span invariants: %v", err)
	}

	tr := c.Item(c.Items[1])
	if tr.Kind != hir.ItemTrait || len(tr.TraitItems) != 2 {
		t.Fatalf("trait = %s with %d members", tr.Kind, len(tr.TraitItems))
	}
	if got := c.TraitItem(tr.TraitItems[1]).Kind; got != hir.TraitItemMethod {
		t.Errorf("second trait member = %s", got)
	}

	im := c.Item(c.Items[2])
	inline := c.ImplItem(im.ImplItems[1]).Attrs[0]
	args, ok := inline.MetaItemList()
	if !ok || len(args) != 1 || c.MetaName(args[0]) != "always" {
		t.Errorf("inline(always) decoded as %+v", inline)
	}

	tf := c.ImplItem(im.ImplItems[0]).Attrs[0]
	if tf.Kind != hir.MetaList || tf.Args[0].Kind != hir.MetaNameValue || tf.Args[0].Lit.Value != "sse2" {
		t.Errorf("target_feature decoded as %+v", tf)
	}

	fast := c.Item(c.Items[4])
	if len(fast.Generics) != 1 || len(fast.Body) != 1 || fast.Body[0].Kind != hir.BodyStmt {
		t.Errorf("fn fast generics/body = %+v / %+v", fast.Generics, fast.Body)
	}
}

func TestFormatsRoundTrip(t *testing.T) {
	doc := loadDoc(t, "testdata/placement.yaml")
	for _, f := range []Format{FormatYAML, FormatJSON, FormatMsgpack} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(doc, f)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Decode(data, f)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(doc, back) {
				t.Fatalf("round trip through %s changed the document", f)
			}
		})
	}
}

func TestBuildReportsNodePath(t *testing.T) {
	doc := loadDoc(t, "testdata/bad_kind.yaml")
	_, err := Build(doc, BuildOptions{File: 1})
	if err == nil || !strings.HasPrefix(err.Error(), "items[0].members[1].kind:") {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	data, err := os.ReadFile("testdata/unknown_field.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data, FormatJSON); err == nil || !strings.Contains(err.Error(), "atrs") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"inverted span", Document{Crate: "c", Span: []uint32{5, 2}}, "span: span end 2 before start 5"},
		{"short span", Document{Crate: "c", Items: []Item{{Kind: "fn", Span: []uint32{1}}}}, "items[0].span: span must be [start, end]"},
		{"span past limit", Document{Crate: "c", Items: []Item{{Kind: "fn", Span: []uint32{1, 900}}}}, "beyond source length"},
		{"items in struct", Document{Crate: "c", Items: []Item{{Kind: "struct", Items: []Item{{Kind: "fn"}}}}}, "items[0].items: only modules"},
		{"variants on struct", Document{Crate: "c", Items: []Item{{Kind: "struct", Variants: []Variant{{Name: "A"}}}}}, "only enums"},
		{"body on const", Document{Crate: "c", Items: []Item{{Kind: "const", Body: []Body{{Kind: "stmt"}}}}}, "only functions"},
		{"members on mod", Document{Crate: "c", Items: []Item{{Kind: "mod", Members: []Member{{Kind: "fn"}}}}}, "only traits"},
		{"foreign const", Document{Crate: "c", Items: []Item{{Kind: "foreign_mod", Members: []Member{{Kind: "const"}}}}}, "unknown foreign item kind"},
		{"variant shape", Document{Crate: "c", Items: []Item{{Kind: "enum", Variants: []Variant{{Name: "A", Data: "record"}}}}}, "unknown variant shape"},
		{"nameless attr", Document{Crate: "c", Attrs: []Attr{{}}}, "attrs[0]: word form needs a name"},
		{"bare literal attr", Document{Crate: "c", Attrs: []Attr{{Kind: "literal", Value: &Lit{Kind: "int", Value: "1"}}}}, "cannot be bare literals"},
		{"args on word", Document{Crate: "c", Attrs: []Attr{{Name: "a", Kind: "word", Args: []Meta{{Name: "b"}}}}}, "only list form takes args"},
		{"bad int", Document{Crate: "c", Attrs: []Attr{{Name: "a", Value: &Lit{Kind: "int", Value: "x"}}}}, "is not an integer"},
		{"bad lit kind", Document{Crate: "c", Attrs: []Attr{{Name: "a", Value: &Lit{Kind: "char", Value: "x"}}}}, "unknown literal kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.doc
			_, err := Build(&doc, BuildOptions{File: 1, Limit: 100})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestMetaKindInference(t *testing.T) {
	doc := &Document{Crate: "c", Attrs: []Attr{
		{Name: "inline"},
		{Name: "inline", Kind: "list"},
		{Name: "repr", Args: []Meta{{Name: "C"}, {Lit: &Lit{Kind: "int", Value: "42"}}, {Name: "align", Args: []Meta{{Lit: &Lit{Kind: "int", Value: "8"}}}}}},
		{Name: "export_name", Value: &Lit{Kind: "str", Value: "x"}},
	}}
	c, err := Build(doc, BuildOptions{File: 1})
	if err != nil {
		t.Fatal(err)
	}
	kinds := []hir.MetaKind{c.Attrs[0].Kind, c.Attrs[1].Kind, c.Attrs[2].Kind, c.Attrs[3].Kind}
	want := []hir.MetaKind{hir.MetaWord, hir.MetaList, hir.MetaList, hir.MetaNameValue}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("attr kinds = %v, want %v", kinds, want)
	}
	args := c.Attrs[2].Args
	if args[0].Kind != hir.MetaWord || args[1].Kind != hir.MetaLiteral || args[1].HasName() || args[2].Kind != hir.MetaList {
		t.Errorf("repr args = %+v", args)
	}
}

func TestNamesAreNFCNormalised(t *testing.T) {
	decomposed := "cafe\u0301"
	doc := &Document{Crate: decomposed, Items: []Item{{Kind: "struct", Name: decomposed}}}
	c, err := Build(doc, BuildOptions{File: 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "caf\u00e9" || c.Str(c.Item(c.Items[0]).Name) != "caf\u00e9" {
		t.Errorf("names not normalised: %q %q", c.Name, c.Str(c.Item(c.Items[0]).Name))
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.yaml": FormatYAML, "b.YML": FormatYAML, "c.json": FormatJSON, "d.mp": FormatMsgpack, "e.msgpack": FormatMsgpack} {
		if got, err := FormatFromPath(path); err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %v, %v", path, got, err)
		}
	}
	if IsDocumentPath("lib.rs") {
		t.Errorf("lib.rs is not a document")
	}
}
