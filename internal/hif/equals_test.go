package hif_test

import (
	"testing"

	"hif/internal/hif"
	"hif/internal/sem"
	"hif/internal/trace"
)

func defaultOpts() hif.EqualsOptions { return hif.DefaultEqualsOptions() }

func TestEqualsNilAsymmetry(t *testing.T) {
	x := hif.NewIntValue(1)
	opts := defaultOpts()

	if !hif.Equals(nil, nil, opts) {
		t.Fatalf("nil/nil must be equal")
	}
	if hif.Equals(x, nil, opts) {
		t.Fatalf("value/nil must be unequal")
	}
	if hif.Equals(nil, x, opts) {
		t.Fatalf("nil/value must be unequal without SkipNullBranches")
	}

	opts.SkipNullBranches = true
	if hif.Equals(x, nil, opts) {
		t.Fatalf("value/nil must stay unequal even with SkipNullBranches")
	}
	if !hif.Equals(nil, x, opts) {
		t.Fatalf("nil/value must be equal with SkipNullBranches")
	}
}

func TestEqualsAssignScenario(t *testing.T) {
	a1, _, _ := buildAssignTree()
	a2, _, _ := buildAssignTree()
	opts := defaultOpts()

	if !hif.Equals(a1, a2, opts) {
		t.Fatalf("identically built trees must be equal")
	}
	if !hif.Equals(a1, a1, opts) {
		t.Fatalf("a node must equal itself")
	}

	a2.RightHand().(*hif.Expression).SetValue2(hif.NewIntValue(2))
	if hif.Equals(a1, a2, opts) {
		t.Fatalf("differing constants must break equality")
	}

	skip := opts
	skip.SkipChildren = true
	if !hif.Equals(a1, a2, skip) {
		t.Fatalf("SkipChildren must ignore the differing subtree")
	}
}

func TestEqualsCheckOnlyNames(t *testing.T) {
	opts := defaultOpts()
	opts.CheckOnlyNames = true

	if !hif.Equals(hif.NewIdentifier("x"), hif.NewSignal("x"), opts) {
		t.Fatalf("name-only comparison must ignore the variant")
	}
	if hif.Equals(hif.NewIdentifier("x"), hif.NewIdentifier("y"), opts) {
		t.Fatalf("different names must be unequal")
	}
	if hif.Equals(hif.NewIdentifier("x"), hif.NewIntValue(1), opts) {
		t.Fatalf("a named node must not equal an unnamed one")
	}
}

func TestEqualsCheckOnlyTypes(t *testing.T) {
	opts := defaultOpts()
	opts.CheckOnlyTypes = true

	if !hif.Equals(hif.NewIdentifier("x"), hif.NewIdentifier("y"), opts) {
		t.Fatalf("type-only comparison must ignore names")
	}
	if hif.Equals(hif.NewIdentifier("x"), hif.NewIntValue(1), opts) {
		t.Fatalf("type-only comparison still requires the same variant")
	}
}

func TestEqualsReferenceUnwrap(t *testing.T) {
	wrap := hif.NewReference()
	wrap.SetBaseType(hif.NewBit())
	plain := hif.NewBit()
	opts := defaultOpts()

	if !hif.Equals(wrap, plain, opts) {
		t.Fatalf("reference wrapper must be transparent by default")
	}

	opts.SkipReferences = false
	if hif.Equals(wrap, plain, opts) {
		t.Fatalf("wrapper must count when SkipReferences is off")
	}
}

func newVectorSpan(left, right int64) *hif.Range {
	return hif.NewRange(hif.DirDownto, hif.NewIntValue(left), hif.NewIntValue(right))
}

func TestEqualsVectorCanonicalization(t *testing.T) {
	signed := hif.NewSigned()
	signed.SetSpan(newVectorSpan(7, 0))

	bv := hif.NewBitvector()
	bv.SetSigned(true)
	bv.SetLogic(true)
	bv.SetResolved(true)
	bv.SetSpan(newVectorSpan(7, 0))

	opts := defaultOpts()
	if hif.Equals(signed, bv, opts) {
		t.Fatalf("distinct vector variants must be unequal without canonicalization")
	}

	opts.HandleVectorTypes = true
	if !hif.Equals(signed, bv, opts) {
		t.Fatalf("canonicalized vectors must be equal")
	}

	bv.SetSigned(false)
	if hif.Equals(signed, bv, opts) {
		t.Fatalf("signedness must still matter under canonicalization")
	}
}

func TestEqualsConstexprSpanSize(t *testing.T) {
	a := hif.NewBitvector()
	a.SetConstexpr(true)
	a.SetSpan(hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0)))

	b := hif.NewBitvector()
	b.SetConstexpr(true)
	b.SetSpan(hif.NewRange(hif.DirUpto, hif.NewIntValue(0), hif.NewIntValue(7)))

	opts := defaultOpts()
	opts.CheckSpanDirection = false
	if hif.Equals(a, b, opts) {
		t.Fatalf("different bounds must be unequal structurally")
	}

	opts.HandleConstexprTypes = true
	if !hif.Equals(a, b, opts) {
		t.Fatalf("spans of equal width must be equal under size comparison")
	}

	b.SetSpan(hif.NewRange(hif.DirDownto, hif.NewIntValue(3), hif.NewIntValue(0)))
	if hif.Equals(a, b, opts) {
		t.Fatalf("different widths must stay unequal")
	}
}

func TestEqualsConstexprSpanViaResolver(t *testing.T) {
	table := sem.NewTable()

	ra := hif.NewRange(hif.DirDownto, hif.NewIdentifier("W"), hif.NewIntValue(0))
	a := hif.NewBitvector()
	a.SetConstexpr(true)
	a.SetSpan(ra)
	table.SetSpanWidth(ra, 8)

	b := hif.NewBitvector()
	b.SetConstexpr(true)
	rb := hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0))
	b.SetSpan(rb)

	opts := defaultOpts()
	opts.HandleConstexprTypes = true
	opts.Sem = table
	if !hif.Equals(a, b, opts) {
		t.Fatalf("resolver-computed width must match the static width")
	}
}

func TestEqualsSignatureMode(t *testing.T) {
	mkFunc := func(bodyActions int) *hif.Function {
		f := hif.NewFunction("f")
		p := hif.NewParameter("x", hif.DirIn)
		p.SetDeclType(hif.NewBit())
		f.Parameters.PushBack(p)
		f.SetReturnType(hif.NewBit())
		body := hif.NewStateTable("f_body")
		st := hif.NewState("s")
		for i := 0; i < bodyActions; i++ {
			st.Actions.PushBack(hif.NewNull())
		}
		body.States.PushBack(st)
		f.SetBody(body)
		return f
	}

	f1 := mkFunc(1)
	f2 := mkFunc(3)
	opts := defaultOpts()
	if hif.Equals(f1, f2, opts) {
		t.Fatalf("different bodies must be unequal in full comparison")
	}

	sig := opts
	sig.SkipDeclarationBodies = true
	if !hif.Equals(f1, f2, sig) {
		t.Fatalf("signature comparison must ignore bodies")
	}

	// signature mode overrides SkipChildren: parameters still count
	f2.Parameters.Front().SetDeclType(hif.NewInt())
	sig.SkipChildren = true
	if hif.Equals(f1, f2, sig) {
		t.Fatalf("signature mode must still compare parameter types")
	}
}

func TestEqualsAnonymousLoopLabelInSignatureMode(t *testing.T) {
	l1 := hif.NewFor("")
	l2 := hif.NewFor("gen_loop")
	opts := defaultOpts()

	if hif.Equals(l1, l2, opts) {
		t.Fatalf("loop labels must count in full comparison")
	}

	opts.SkipDeclarationBodies = true
	if !hif.Equals(l1, l2, opts) {
		t.Fatalf("an anonymous loop label must match any label in signature mode")
	}
}

func TestEqualsSymbolDeclarations(t *testing.T) {
	decl := hif.NewSignal("s")
	table := sem.NewTable()
	id := hif.NewIdentifier("s")
	fr := hif.NewFieldReference(hif.NewIdentifier("rec"), "s")
	table.Declare(id, decl)
	table.Declare(fr, decl)

	opts := defaultOpts()
	opts.CheckOnlySymbolsDeclarations = true
	opts.Decls = table
	if !hif.Equals(id, fr, opts) {
		t.Fatalf("symbols of different variants resolving to one declaration must be equal")
	}

	other := hif.NewSignal("s2")
	table.Declare(fr, other)
	if hif.Equals(id, fr, opts) {
		t.Fatalf("symbols with different declarations must be unequal")
	}
}

func TestEqualsAssureProperties(t *testing.T) {
	a := hif.NewIdentifier("x")
	b := hif.NewIdentifier("x")
	a.SetProperty("keep", nil)

	opts := defaultOpts()
	if !hif.Equals(a, b, opts) {
		t.Fatalf("properties must not count by default")
	}

	opts.AssureSameProperties = true
	if hif.Equals(a, b, opts) {
		t.Fatalf("property sets must count with AssureSameProperties")
	}
	b.SetProperty("keep", nil)
	if !hif.Equals(a, b, opts) {
		t.Fatalf("matching property sets must be equal")
	}
}

func TestEqualsAssureKeywords(t *testing.T) {
	a := hif.NewSignal("s")
	b := hif.NewSignal("s")
	a.AddKeyword("register")

	opts := defaultOpts()
	opts.AssureSameKeywords = true
	if hif.Equals(a, b, opts) {
		t.Fatalf("keyword sets must count with AssureSameKeywords")
	}
	b.AddKeyword("register")
	if !hif.Equals(a, b, opts) {
		t.Fatalf("matching keyword sets must be equal")
	}
}

func TestEqualsTracingIsAdditive(t *testing.T) {
	a1, _, _ := buildAssignTree()
	a2, _, _ := buildAssignTree()
	a2.RightHand().(*hif.Expression).SetValue2(hif.NewIntValue(9))

	plain := defaultOpts()
	traced := plain
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	traced.Tracer = ring

	if hif.Equals(a1, a2, plain) != hif.Equals(a1, a2, traced) {
		t.Fatalf("tracing changed the comparison result")
	}
	if len(ring.Snapshot()) == 0 {
		t.Fatalf("no trace events were emitted")
	}
}

func TestEqualsReflexivity(t *testing.T) {
	roots := []hif.Object{
		hif.NewIntValue(42),
		hif.NewIdentifier("x"),
		hif.NewSignal("s"),
		func() hif.Object { a, _, _ := buildAssignTree(); return a }(),
		func() hif.Object { sig, _ := newSignalWithVector(t); return sig }(),
	}
	variants := []hif.EqualsOptions{
		defaultOpts(),
		{},
		func() hif.EqualsOptions { o := defaultOpts(); o.CheckOnlyTypes = true; return o }(),
		func() hif.EqualsOptions { o := defaultOpts(); o.CheckOnlyNames = true; return o }(),
		func() hif.EqualsOptions { o := defaultOpts(); o.HandleVectorTypes = true; return o }(),
		func() hif.EqualsOptions { o := defaultOpts(); o.SkipDeclarationBodies = true; return o }(),
	}
	for _, root := range roots {
		for i, opts := range variants {
			if !hif.Equals(root, root, opts) {
				t.Fatalf("%s is not equal to itself under option set %d", root.Class(), i)
			}
		}
		hif.Destroy(root)
	}
}
