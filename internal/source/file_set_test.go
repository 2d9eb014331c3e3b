package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.rs", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.rs", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latest, ok := fs.GetLatest("test.rs")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(FileID(7)) != nil {
		t.Errorf("unknown id must resolve to nil")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.rs", []byte("#[inline]\nstruct S;\n\nfn f() {}"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{9, LineCol{Line: 1, Col: 10}},
		{10, LineCol{Line: 2, Col: 1}},
		{17, LineCol{Line: 2, Col: 8}},
		{21, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag not set")
	}
	if got := f.GetLine(2); got != "struct S;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q, want empty", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rs")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if got := f.FormatPath("relative", dir); got != "crlf.rs" {
		t.Errorf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "crlf.rs" {
		t.Errorf("basename = %q", got)
	}

	rawID, err := fs.LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	raw := fs.Get(rawID)
	if string(raw.Content) != string(data) || raw.Flags != FileRaw {
		t.Errorf("raw content = %q flags = %b", raw.Content, raw.Flags)
	}
	if latest, _ := fs.GetLatest(path); latest != rawID {
		t.Errorf("GetLatest = %d, want %d", latest, rawID)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("repr")
	b := in.Intern("repr")
	if a != b || a == NoStringID {
		t.Fatalf("Intern not stable: %d vs %d", a, b)
	}
	if s := in.MustLookup(a); s != "repr" {
		t.Errorf("MustLookup = %q", s)
	}
	if _, ok := in.Find("inline"); ok {
		t.Errorf("Find must not intern")
	}
	if in.Len() != 2 {
		t.Errorf("Len = %d, want 2", in.Len())
	}
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Errorf("Lookup of unknown id must fail")
	}
}
