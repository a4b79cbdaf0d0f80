// Package sem provides a map-backed implementation of the semantic
// collaborators the tree engines consume: declaration lookup for symbol
// identity and static span-width resolution. Real front ends bring their own
// language-specific implementations; this one serves tests and the command
// line tools.
package sem

import "hif/internal/hif"

// Table maps symbol nodes to their declarations and resolvable spans to
// widths. The zero value is usable.
type Table struct {
	decls  map[hif.Object]hif.Declaration
	widths map[*hif.Range]uint64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		decls:  make(map[hif.Object]hif.Declaration),
		widths: make(map[*hif.Range]uint64),
	}
}

// Declare records that symbol resolves to decl.
func (t *Table) Declare(symbol hif.Object, decl hif.Declaration) {
	if t.decls == nil {
		t.decls = make(map[hif.Object]hif.Declaration)
	}
	t.decls[symbol] = decl
}

// SetSpanWidth records the statically known width of r.
func (t *Table) SetSpanWidth(r *hif.Range, width uint64) {
	if t.widths == nil {
		t.widths = make(map[*hif.Range]uint64)
	}
	t.widths[r] = width
}

// DeclarationOf resolves a symbol node to its declaration, nil when unknown.
func (t *Table) DeclarationOf(symbol hif.Object) hif.Declaration {
	return t.decls[symbol]
}

// SpanBitwidth returns the recorded width of r, ok=false when r was never
// recorded.
func (t *Table) SpanBitwidth(r *hif.Range) (uint64, bool) {
	w, ok := t.widths[r]
	return w, ok
}

var (
	_ hif.DeclarationResolver = (*Table)(nil)
	_ hif.SpanResolver        = (*Table)(nil)
)
