package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"checkattr/internal/diag"
	"checkattr/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#[inline]\nconst K: u8 = 0;\n")
	fileID := fs.AddVirtual("/home/user/project/src/lib.rs", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.AttrInlineTarget,
		source.Span{File: fileID, Start: 0, End: 9},
		"attribute should be applied to function or closure",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/lib.rs:1:1"},
		{"Relative path", PathModeRelative, "src/lib.rs:1:1"},
		{"Basename only", PathModeBasename, "lib.rs:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "E0518") {
				t.Error("Expected E0518 code in output")
			}
			if !strings.Contains(output, "function or closure") {
				t.Error("Expected error message in output")
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "lib.rs", "lib.rs:"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/lib.rs", " lib.rs:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("#[non_exhaustive]\nfn f() {}\n"))

			bag := diag.NewBag(10)
			bag.Add(diag.New(
				diag.SevError,
				diag.AttrNonExhaustiveTarget,
				source.Span{File: fileID, Start: 0, End: 17},
				"attribute can only be applied to a struct or enum",
			))

			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto}); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			// prefix a space so the basename case cannot match inside the full path
			output := " " + buf.String()
			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPrettySnippetAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("lib.rs", []byte("#[repr(C)]\nfn f() {}\n"))

	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.AttrReprTarget,
		source.Span{File: fileID, Start: 7, End: 8},
		"attribute should be applied to struct, enum or union")
	d = d.WithNote(source.Span{File: fileID, Start: 11, End: 20}, "not a struct, enum or union")
	bag.Add(d)

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAsIs, ShowNotes: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	output := buf.String()

	want := []string{
		"lib.rs:1:8: ERROR E0517: attribute should be applied to struct, enum or union\n",
		"1 | #[repr(C)]\n",
		"  |        ^\n",
		"note: lib.rs:2:1: not a struct, enum or union\n",
		"2 | fn f() {}\n",
		"  | ---------\n",
	}
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Expected output to contain %q, got:\n%s", w, output)
		}
	}

	buf.Reset()
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAsIs}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes rendered with ShowNotes off:\n%s", buf.String())
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	// "日本" is 6 bytes but 4 columns wide.
	fileID := fs.AddVirtual("lib.rs", []byte("const 日本: u8 = 0;\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.NoCode, source.Span{File: fileID, Start: 14, End: 16}, "look here"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAsIs}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "lib.rs:1:15: WARNING: look here\n") {
		t.Errorf("header without code not rendered, got:\n%s", output)
	}
	if !strings.Contains(output, "  |             ^~\n") {
		t.Errorf("caret not aligned to display width, got:\n%s", output)
	}
}

func TestPrettyMultiSpanAndMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("lib.rs", []byte("#[repr(u8)]\n#[repr(i32)]\nenum E { A }\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.AttrReprConflict, source.Span{}, "conflicting representation hints").
		WithSpans([]source.Span{
			{File: fileID, Start: 7, End: 9},
			{File: fileID, Start: 19, End: 22},
		}))
	bag.Add(diag.New(diag.SevError, diag.AttrReprTarget, source.Span{File: fileID, Start: 7, End: 9}, "second"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAsIs, Max: 1}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	output := buf.String()
	for _, w := range []string{
		"lib.rs:1:8: WARNING E0566: conflicting representation hints\n",
		"1 | #[repr(u8)]\n",
		"2 | #[repr(i32)]\n",
		"  |        ^~~\n",
		"... 1 more diagnostics not shown\n",
	} {
		if !strings.Contains(output, w) {
			t.Errorf("Expected output to contain %q, got:\n%s", w, output)
		}
	}
	if strings.Contains(output, "second") {
		t.Errorf("Max not honoured:\n%s", output)
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"":         PathModeAuto,
		"auto":     PathModeAuto,
		"absolute": PathModeAbsolute,
		"relative": PathModeRelative,
		"basename": PathModeBasename,
		"as-is":    PathModeAsIs,
	} {
		got, ok := ParsePathMode(in)
		if !ok || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParsePathMode("nope"); ok {
		t.Error("ParsePathMode accepted an unknown mode")
	}
}
