package hif

// DeclarationResolver is the external declaration-lookup collaborator. The
// equality and matching engines use it to decide whether two symbols denote
// the same declared entity; they never mutate through it.
type DeclarationResolver interface {
	// DeclarationOf resolves a symbol node to its declaration, nil when the
	// symbol cannot be resolved.
	DeclarationOf(symbol Object) Declaration
}

// SpanResolver is the external semantics collaborator able to compute the
// bit width of statically resolvable spans.
type SpanResolver interface {
	// SpanBitwidth returns the number of elements spanned by r, ok=false
	// when r cannot be resolved statically.
	SpanBitwidth(r *Range) (uint64, bool)
}
