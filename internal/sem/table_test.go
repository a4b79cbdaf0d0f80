package sem_test

import (
	"testing"

	"hif/internal/hif"
	"hif/internal/sem"
)

func TestTableDeclarationLookup(t *testing.T) {
	table := sem.NewTable()
	decl := hif.NewSignal("count")
	defer hif.Destroy(decl)
	id := hif.NewIdentifier("count")
	defer hif.Destroy(id)

	if got := table.DeclarationOf(id); got != nil {
		t.Fatalf("unknown symbol resolved to %v", got)
	}
	table.Declare(id, decl)
	if got := table.DeclarationOf(id); got != hif.Declaration(decl) {
		t.Fatalf("symbol resolved to %v, want its declaration", got)
	}
}

func TestTableSpanWidth(t *testing.T) {
	table := sem.NewTable()
	r := hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0))
	defer hif.Destroy(r)

	if _, ok := table.SpanBitwidth(r); ok {
		t.Fatalf("unrecorded span reported a width")
	}
	table.SetSpanWidth(r, 8)
	w, ok := table.SpanBitwidth(r)
	if !ok || w != 8 {
		t.Fatalf("width = %d, ok=%v, want 8", w, ok)
	}
}

func TestTableZeroValueUsable(t *testing.T) {
	var table sem.Table
	id := hif.NewIdentifier("x")
	defer hif.Destroy(id)
	decl := hif.NewSignal("x")
	defer hif.Destroy(decl)

	table.Declare(id, decl)
	if table.DeclarationOf(id) != hif.Declaration(decl) {
		t.Fatalf("zero-value table lost a declaration")
	}
	table.SetSpanWidth(hif.NewRange(hif.DirUpto, hif.NewIntValue(0), hif.NewIntValue(3)), 4)
}
