package hif

import (
	"fmt"

	"fortio.org/safecast"

	"hif/internal/trace"
)

// Equals reports whether a and b are structurally equal under opt. Either
// side may be nil; a nil right-hand side only ever equals a nil left-hand
// side, while a nil left-hand side matches anything when SkipNullBranches is
// set. The comparison never mutates either tree.
func Equals(a, b Object, opt EqualsOptions) bool {
	e := &eqEngine{opt: &opt, sig: opt.signatureMode()}
	e.push(a, b)
	for len(e.stack) > 0 {
		p := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		ok, why := e.comparePair(p.a, p.b)
		if !ok {
			if opt.Tracer != nil {
				trace.Point(opt.Tracer, trace.ScopeNode, "equals.diverge",
					fmt.Sprintf("%s vs %s: %s", className(p.a), className(p.b), why))
				trace.Point(opt.Tracer, trace.ScopeOp, "equals", "unequal")
			}
			return false
		}
	}
	if opt.Tracer != nil {
		trace.Point(opt.Tracer, trace.ScopeOp, "equals", "equal")
	}
	return true
}

type eqPair struct{ a, b Object }

type eqEngine struct {
	opt   *EqualsOptions
	stack []eqPair
	sig   bool
}

func (e *eqEngine) push(a, b Object) {
	if isNilObj(a) {
		a = nil
	}
	if isNilObj(b) {
		b = nil
	}
	e.stack = append(e.stack, eqPair{a, b})
}

// comparePair decides one node pair and queues its children. The returned
// reason is empty on success.
func (e *eqEngine) comparePair(a, b Object) (bool, string) {
	opt := e.opt

	for {
		if a == b {
			return true, ""
		}
		if b == nil {
			// An absent right-hand branch never matches; only the
			// reversed order is governed by SkipNullBranches.
			return false, "right branch absent"
		}
		if a == nil {
			if opt.SkipNullBranches {
				return true, ""
			}
			return false, "left branch absent"
		}
		if opt.SkipReferences {
			if r, ok := a.(*Reference); ok {
				a = unwrapOnce(r)
				continue
			}
			if r, ok := b.(*Reference); ok {
				b = unwrapOnce(r)
				continue
			}
		}
		break
	}

	if opt.HandleVectorTypes && a.Class().IsVectorClass() && b.Class().IsVectorClass() {
		return e.compareVectors(a, b)
	}

	if opt.CheckOnlyNames {
		na, _ := NameOf(a)
		nb, _ := NameOf(b)
		if na != nb {
			return false, "name mismatch"
		}
		return true, ""
	}

	if a.Class() != b.Class() {
		if opt.CheckOnlySymbolsDeclarations && IsSymbol(a) && IsSymbol(b) && opt.Decls != nil {
			da := opt.Decls.DeclarationOf(a)
			db := opt.Decls.DeclarationOf(b)
			if !isNilObj(da) && da == db {
				return true, ""
			}
			return false, "symbol declarations differ"
		}
		return false, "class mismatch"
	}

	if opt.CheckOnlyTypes {
		return true, ""
	}

	if na, named := NameOf(a); named {
		nb, _ := NameOf(b)
		if na != nb && !e.anonLoopLabel(a, na, nb) {
			return false, "name mismatch"
		}
	}

	if !a.sameAttrs(b, opt) {
		return false, "attribute mismatch"
	}

	if opt.AssureSameSymbolDeclarations && IsSymbol(a) {
		if opt.Decls == nil {
			return false, "no declaration resolver"
		}
		da := opt.Decls.DeclarationOf(a)
		db := opt.Decls.DeclarationOf(b)
		if isNilObj(da) || da != db {
			return false, "symbol declarations differ"
		}
	}
	if opt.AssureSameKeywords && !sameKeywords(a, b) {
		return false, "keyword mismatch"
	}
	if opt.AssureSameProperties {
		pa, pb := a.Properties(), b.Properties()
		if len(pa) != len(pb) {
			return false, "property count mismatch"
		}
		for _, p := range pa {
			vb, ok := b.PropertyValue(p.Name)
			if !ok {
				return false, "property missing: " + p.Name
			}
			e.push(p.Value, vb)
		}
	}

	// Signature mode overrides SkipChildren; the facet gates already
	// exclude bodies and view contents there.
	if opt.SkipChildren && !e.sig {
		return true, ""
	}

	sa, sb := a.slots(), b.slots()
	for i := range sa {
		s, t := sa[i], sb[i]
		if !opt.facetEnabled(s.Facet) {
			continue
		}
		if s.Facet == FacetSpan && opt.HandleConstexprTypes && (constexprVector(a) || constexprVector(b)) {
			ra, _ := s.Get().(*Range)
			rb, _ := t.Get().(*Range)
			if !e.spanSizeEqual(ra, rb) {
				return false, "span size mismatch"
			}
			continue
		}
		if s.IsList() {
			if s.list.size != t.list.size {
				return false, "list size mismatch: " + s.Name
			}
			for ea, eb := s.list.head, t.list.head; ea != nil; ea, eb = ea.next, eb.next {
				e.push(ea.obj, eb.obj)
			}
			continue
		}
		e.push(s.Get(), t.Get())
	}
	return true, ""
}

// anonLoopLabel reports whether the name mismatch is between loop labels of
// which at least one is compiler-generated, which signature comparison
// tolerates.
func (e *eqEngine) anonLoopLabel(a Object, na, nb string) bool {
	if !e.sig {
		return false
	}
	switch a.Class() {
	case ClassFor, ClassWhile:
		return na == "" || nb == ""
	}
	return false
}

// vectorShape is the canonical form the three numeric-vector variants reduce
// to under HandleVectorTypes.
type vectorShape struct {
	signed    bool
	logic     bool
	resolved  bool
	constexpr bool
	variant   TypeVariant
	span      *Range
}

func shapeOf(o Object) vectorShape {
	switch t := o.(type) {
	case *Signed:
		return vectorShape{signed: true, logic: true, resolved: true,
			constexpr: t.constexpr, variant: t.variant, span: t.span}
	case *Unsigned:
		return vectorShape{logic: true, resolved: true,
			constexpr: t.constexpr, variant: t.variant, span: t.span}
	case *Bitvector:
		return vectorShape{signed: t.signed, logic: t.logic, resolved: t.resolved,
			constexpr: t.constexpr, variant: t.variant, span: t.span}
	}
	return vectorShape{}
}

func (e *eqEngine) compareVectors(a, b Object) (bool, string) {
	opt := e.opt
	va, vb := shapeOf(a), shapeOf(b)
	if opt.CheckSignedFlag && va.signed != vb.signed {
		return false, "signedness mismatch"
	}
	if opt.CheckLogicFlag && va.logic != vb.logic {
		return false, "logic flag mismatch"
	}
	if opt.CheckResolvedFlag && va.resolved != vb.resolved {
		return false, "resolved flag mismatch"
	}
	if opt.CheckConstexprFlag && va.constexpr != vb.constexpr {
		return false, "constexpr flag mismatch"
	}
	if opt.CheckTypeVariantField && va.variant != vb.variant {
		return false, "type variant mismatch"
	}
	if opt.CheckSpans {
		if opt.HandleConstexprTypes && (va.constexpr || vb.constexpr) {
			if !e.spanSizeEqual(va.span, vb.span) {
				return false, "span size mismatch"
			}
		} else {
			e.push(objOrNil(va.span), objOrNil(vb.span))
		}
	}
	return true, ""
}

func constexprVector(o Object) bool {
	switch t := o.(type) {
	case *Signed:
		return t.constexpr
	case *Unsigned:
		return t.constexpr
	case *Bitvector:
		return t.constexpr
	}
	return false
}

// spanSizeEqual compares two spans by bit width rather than structurally.
// When a width cannot be resolved statically the size expressions
// (sup-inf)+1 are built and compared structurally instead.
func (e *eqEngine) spanSizeEqual(ra, rb *Range) bool {
	if ra == rb {
		return true
	}
	if rb == nil {
		return false
	}
	if ra == nil {
		return e.opt.SkipNullBranches
	}

	wa, aok := e.spanWidth(ra)
	wb, bok := e.spanWidth(rb)
	if aok && bok {
		return wa == wb
	}

	ea := spanSizeExpr(ra)
	eb := spanSizeExpr(rb)
	defer Destroy(ea)
	defer Destroy(eb)
	sub := *e.opt
	sub.HandleConstexprTypes = false
	sub.Tracer = nil
	return Equals(ea, eb, sub)
}

func (e *eqEngine) spanWidth(r *Range) (uint64, bool) {
	if e.opt.Sem != nil {
		if w, ok := e.opt.Sem.SpanBitwidth(r); ok {
			return w, true
		}
	}
	lv, lok := r.LeftBound().(*IntValue)
	rv, rok := r.RightBound().(*IntValue)
	if !lok || !rok {
		return 0, false
	}
	sup, inf := lv.Value(), rv.Value()
	if r.Direction() == DirUpto {
		sup, inf = inf, sup
	}
	d := sup - inf + 1
	if d < 0 {
		// null range
		d = 0
	}
	w, err := safecast.Conv[uint64](d)
	if err != nil {
		return 0, false
	}
	return w, true
}

// spanSizeExpr builds the size expression (sup-inf)+1 over deep copies of
// the range bounds. The caller owns the returned tree.
func spanSizeExpr(r *Range) *Expression {
	sup, inf := r.LeftBound(), r.RightBound()
	if r.Direction() == DirUpto {
		sup, inf = inf, sup
	}
	diff := NewExpression(OpMinus, copyValue(sup), copyValue(inf))
	return NewExpression(OpPlus, diff, NewIntValue(1))
}

func copyValue(v Value) Value {
	if isNilObj(v) {
		return nil
	}
	return Copy(v).(Value)
}

func sameKeywords(a, b Object) bool {
	type kwer interface{ Keywords() []string }
	ka, aok := a.(kwer)
	kb, bok := b.(kwer)
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	aw, bw := ka.Keywords(), kb.Keywords()
	if len(aw) != len(bw) {
		return false
	}
	set := make(map[string]struct{}, len(aw))
	for _, w := range aw {
		set[w] = struct{}{}
	}
	for _, w := range bw {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}

func unwrapOnce(r *Reference) Object {
	inner := r.BaseType()
	if isNilObj(inner) {
		return nil
	}
	return inner
}

func className(o Object) string {
	if o == nil {
		return "nil"
	}
	return o.Class().String()
}
