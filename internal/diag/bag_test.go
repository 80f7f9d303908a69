package diag

import (
	"testing"

	"numlit/internal/source"
)

func TestBagLimitAndOrder(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	ReportError(r, LexBadNumber, source.Span{Start: 9, End: 10}, "b")
	ReportError(r, LexBadNumber, source.Span{Start: 1, End: 2}, "a")
	ReportError(r, LexBadNumber, source.Span{Start: 5, End: 6}, "dropped")

	if bag.Len() != 2 || bag.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", bag.Len(), bag.Dropped())
	}
	bag.Sort()
	if bag.Items()[0].Message != "a" {
		t.Errorf("sort order: %+v", bag.Items())
	}
	if !bag.HasErrors() {
		t.Errorf("expected errors")
	}
}

func TestBagDedupAndMerge(t *testing.T) {
	a := NewBag(0)
	sp := source.Span{File: 1, Start: 3, End: 4}
	a.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: sp})
	a.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: sp})
	a.Dedup()
	if a.Len() != 1 {
		t.Fatalf("dedup left %d items", a.Len())
	}

	b := NewBag(1)
	b.Add(Diagnostic{Severity: SevWarning, Code: LexInfo})
	b.Merge(a)
	if b.Len() != 2 || b.Cap() < 2 {
		t.Errorf("merge: len=%d cap=%d", b.Len(), b.Cap())
	}
}

func TestCodeID(t *testing.T) {
	if LexBadNumber.ID() != "LEX1004" || IOLoadFileError.ID() != "IO4001" || CfgInvalidValue.ID() != "CFG5001" {
		t.Errorf("unexpected ids")
	}
	if Code(9999).Title() != "Unknown error" {
		t.Errorf("unknown title")
	}
}
