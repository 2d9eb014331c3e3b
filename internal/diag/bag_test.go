package diag

import (
	"testing"

	"checkattr/internal/source"
)

func TestBagLimitAndSeverity(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}

	ReportWarning(r, AttrReprConflict, source.Span{}, "conflicting representation hints").Emit()
	if bag.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warning")
	}
	ReportError(r, AttrReprTarget, source.Span{}, "attribute should be applied to an enum").Emit()
	ReportError(r, AttrReprTarget, source.Span{}, "dropped").Emit()

	if bag.Len() != 2 {
		t.Fatalf("bag must stop at its cap, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected error")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, AttrInlineTarget, source.Span{Start: 1, End: 2}, "attribute should be applied to function").
		WithNote(source.Span{Start: 3, End: 9}, "not a function")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "not a function" {
		t.Fatalf("unexpected notes: %+v", d.Notes)
	}
}

func TestWithSpansSetsPrimary(t *testing.T) {
	spans := []source.Span{{Start: 5, End: 6}, {Start: 9, End: 12}}
	d := New(SevError, AttrReprTransparent, source.Span{}, "transparent struct cannot have other repr hints").WithSpans(spans)
	if d.Primary != spans[0] {
		t.Errorf("primary = %v, want %v", d.Primary, spans[0])
	}
	spans[1] = source.Span{}
	if d.Spans[1].End != 12 {
		t.Errorf("WithSpans must copy its input")
	}
	if got := len(d.Locations()); got != 2 {
		t.Errorf("Locations() len = %d", got)
	}
	if got := NewError(AttrReprTarget, source.Span{Start: 1}, "x").Locations(); len(got) != 1 || got[0].Start != 1 {
		t.Errorf("single-span Locations() = %v", got)
	}
}

func TestBagFilterTransformMerge(t *testing.T) {
	bag := NewBag(0)
	bag.Add(New(SevWarning, AttrReprConflict, source.Span{}, "w"))
	bag.Add(New(SevError, AttrReprTarget, source.Span{}, "e"))

	bag.Transform(func(d Diagnostic) Diagnostic {
		if d.Severity == SevWarning {
			d.Severity = SevError
		}
		return d
	})
	for _, d := range bag.Items() {
		if d.Severity != SevError {
			t.Fatalf("transform did not promote %q", d.Message)
		}
	}

	bag.Filter(func(d Diagnostic) bool { return d.Code != AttrReprConflict })
	if bag.Len() != 1 || bag.Items()[0].Message != "e" {
		t.Fatalf("filter kept %+v", bag.Items())
	}

	small := NewBag(1)
	small.Add(New(SevInfo, NoCode, source.Span{}, "first"))
	small.Merge(bag)
	if small.Len() != 2 || small.Cap() != 2 {
		t.Fatalf("merge: len=%d cap=%d", small.Len(), small.Cap())
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{AttrReprTarget, "E0517"},
		{AttrInlineTarget, "E0518"},
		{AttrReprConflict, "E0566"},
		{AttrReprTransparent, "E0692"},
		{AttrNonExhaustiveTarget, "E0698"},
		{AttrNonExhaustiveForm, "E0699"},
		{IOLoadFileError, "IO9001"},
		{CfgInvalidOption, "CFG9101"},
		{NoCode, ""},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
	for _, in := range []string{"E0566", "566", "0566"} {
		if c, ok := ParseCode(in); !ok || c != AttrReprConflict {
			t.Errorf("ParseCode(%q) = %v, %v", in, c, ok)
		}
	}
	if _, ok := ParseCode("E9999"); ok {
		t.Errorf("ParseCode accepted unknown code")
	}
}
