package hif

import "hif/internal/trace"

// EqualsOptions is the policy bundle of the structural equality engine. Each
// Check* gate is independent; disabling one makes the corresponding facet
// compare equal without being inspected. The zero value disables everything;
// start from DefaultEqualsOptions.
type EqualsOptions struct {
	// CheckOnlyTypes stops the comparison after the variant tags matched.
	CheckOnlyTypes bool
	// CheckOnlyNames compares only the name attributes, textually.
	CheckOnlyNames bool
	// CheckOnlySymbolsDeclarations lets two different symbol-capable
	// variants compare equal when both resolve to the same declaration.
	CheckOnlySymbolsDeclarations bool

	CheckSpans                      bool
	CheckInnerTypeOfComposite       bool
	CheckDeclarationRangeConstraint bool
	CheckFieldsInitialValue         bool
	CheckReferencedInstance         bool
	CheckConstexprFlag              bool
	CheckLogicFlag                  bool
	CheckSignedFlag                 bool
	CheckResolvedFlag               bool
	CheckTypeVariantField           bool
	CheckStringSpan                 bool
	CheckSpanDirection              bool

	// SkipChildren suppresses recursive child comparison, except while in
	// signature mode.
	SkipChildren bool
	// SkipNullBranches makes an absent left-hand branch compare equal to
	// anything. An absent right-hand branch is always unequal; the
	// asymmetry is load-bearing for existing callers and is kept on
	// purpose.
	SkipNullBranches bool
	// SkipReferences unwraps Reference wrapper types on either side before
	// comparing.
	SkipReferences bool
	// SkipDeclarationBodies enters signature mode: subprogram and type
	// declaration bodies are not compared, and anonymous loop labels stop
	// participating in name comparison.
	SkipDeclarationBodies bool
	// SkipViewContents enters signature mode for views: their contents are
	// not compared.
	SkipViewContents bool

	// HandleVectorTypes canonicalizes Signed/Unsigned/Bitvector into one
	// vector shape (signedness, span, logic and resolved flags) before
	// comparing, so the three variants compare interchangeably.
	HandleVectorTypes bool
	// HandleConstexprTypes compares the spans of compile-time-constant
	// vector types by computed size instead of structurally, so two
	// differently worded but equal-width spans compare equal.
	HandleConstexprTypes bool

	AssureSameSymbolDeclarations bool
	AssureSameProperties         bool
	AssureSameKeywords           bool

	// Decls resolves symbols to declarations for the symbol-identity
	// checks. Sem computes statically resolvable span widths for
	// HandleConstexprTypes.
	Decls DeclarationResolver
	Sem   SpanResolver

	// Tracer receives additive diagnostic events; it never changes the
	// result.
	Tracer trace.Tracer
}

// DefaultEqualsOptions returns the configuration used by deduplicating
// insertion and most passes: every facet checked, references unwrapped, no
// canonicalization, no add-on assurances.
func DefaultEqualsOptions() EqualsOptions {
	return EqualsOptions{
		CheckSpans:                      true,
		CheckInnerTypeOfComposite:       true,
		CheckDeclarationRangeConstraint: true,
		CheckFieldsInitialValue:         true,
		CheckReferencedInstance:         true,
		CheckConstexprFlag:              true,
		CheckLogicFlag:                  true,
		CheckSignedFlag:                 true,
		CheckResolvedFlag:               true,
		CheckTypeVariantField:           true,
		CheckStringSpan:                 true,
		CheckSpanDirection:              true,
		SkipReferences:                  true,
	}
}

// signatureMode reports whether the options put the engine in signature
// mode.
func (o *EqualsOptions) signatureMode() bool {
	return o.SkipDeclarationBodies || o.SkipViewContents
}

func (o *EqualsOptions) facetEnabled(f Facet) bool {
	switch f {
	case FacetSpan:
		return o.CheckSpans
	case FacetInnerType:
		return o.CheckInnerTypeOfComposite
	case FacetDeclRange:
		return o.CheckDeclarationRangeConstraint
	case FacetInitialValue:
		return o.CheckFieldsInitialValue
	case FacetInstance:
		return o.CheckReferencedInstance
	case FacetStringSpan:
		return o.CheckStringSpan
	case FacetBody:
		return !o.SkipDeclarationBodies
	case FacetViewContents:
		return !o.SkipViewContents
	default:
		return true
	}
}
