package hif_test

import (
	"testing"

	"hif/internal/hif"
)

func newViewWithSignal(t *testing.T) (*hif.View, *hif.Signal, *hif.Range) {
	t.Helper()
	v := hif.NewView("rtl")
	e := hif.NewEntity("ent")
	e.Ports.PushBack(hif.NewPort("clk", hif.DirIn))
	e.Ports.PushBack(hif.NewPort("q", hif.DirOut))
	v.SetEntity(e)

	span := hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0))
	vec := hif.NewBitvector()
	vec.SetSpan(span)
	sig := hif.NewSignal("count")
	sig.SetDeclType(vec)

	c := hif.NewContents()
	c.Declarations.PushBack(sig)
	v.SetContents(c)
	return v, sig, span
}

func TestMatchObjectCopyRoundtrip(t *testing.T) {
	master, _, _ := newViewWithSignal(t)
	clone := hif.Copy(master)

	hif.Visit(master, func(p hif.Object) bool {
		got, ok := hif.MatchObject(p, master, clone, hif.MatchOptions{})
		if !ok {
			t.Fatalf("no match for %s %q", p.Class(), nameOrEmpty(p))
			return false
		}
		if got.Class() != p.Class() {
			t.Fatalf("matched %s against %s", got.Class(), p.Class())
		}
		if nameOrEmpty(got) != nameOrEmpty(p) {
			t.Fatalf("matched %q against %q", nameOrEmpty(got), nameOrEmpty(p))
		}
		if p == master && got != clone {
			t.Fatalf("root must match the other root")
		}
		return true
	})
}

func nameOrEmpty(o hif.Object) string {
	if n, ok := hif.NameOf(o); ok {
		return n
	}
	return ""
}

func TestMatchObjectRootIdentity(t *testing.T) {
	master, _, _ := newViewWithSignal(t)
	clone := hif.Copy(master)

	got, ok := hif.MatchObject(master, master, clone, hif.MatchOptions{})
	if !ok || got != clone {
		t.Fatalf("pattern==refTree must resolve to matchedTree")
	}
}

func TestMatchObjectOutsideReference(t *testing.T) {
	master, _, _ := newViewWithSignal(t)
	clone := hif.Copy(master)

	stray := hif.NewIdentifier("stray")
	defer hif.Destroy(stray)
	if _, ok := hif.MatchObject(stray, master, clone, hif.MatchOptions{}); ok {
		t.Fatalf("a node outside refTree must not match")
	}
}

func TestMatchObjectPositionNotContent(t *testing.T) {
	master, _, _ := newViewWithSignal(t)
	clone := hif.Copy(master)

	// Rename every node in the clone; matching is positional, so the walk
	// must still land on the renamed counterpart.
	clonedPort := clone.(*hif.View).Entity().Ports.Front()
	clonedPort.SetName("totally_different")

	pattern := master.Entity().Ports.Front()
	got, ok := hif.MatchObject(pattern, master, clone, hif.MatchOptions{})
	if !ok {
		t.Fatalf("positional match must survive a rename")
	}
	if got != hif.Object(clonedPort) {
		t.Fatalf("expected the renamed port at the same ordinal")
	}
}

func TestMatchObjectReferenceUnwrap(t *testing.T) {
	span := hif.NewRange(hif.DirDownto, hif.NewIntValue(3), hif.NewIntValue(0))
	vec := hif.NewBitvector()
	vec.SetSpan(span)
	ref := hif.NewReference()
	ref.SetBaseType(vec)
	defer hif.Destroy(ref)

	bare := hif.Copy(vec).(*hif.Bitvector)
	defer hif.Destroy(bare)

	// Wrapped reference tree, unwrapped matched tree.
	got, ok := hif.MatchObject(span, ref, bare, hif.MatchOptions{SkipReferences: true})
	if !ok || got != hif.Object(bare.Span()) {
		t.Fatalf("wrapped refTree must step into its base type")
	}
	if _, ok := hif.MatchObject(span, ref, bare, hif.MatchOptions{}); ok {
		t.Fatalf("without SkipReferences the wrapped root must not align")
	}

	// Unwrapped reference tree, wrapped matched tree.
	wrapped := hif.NewReference()
	wrapped.SetBaseType(hif.Copy(vec).(*hif.Bitvector))
	defer hif.Destroy(wrapped)
	inner := wrapped.BaseType().(*hif.Bitvector)
	got, ok = hif.MatchObject(span, vec, wrapped, hif.MatchOptions{SkipReferences: true})
	if !ok || got != hif.Object(inner.Span()) {
		t.Fatalf("wrapped matchedTree must be unwrapped before replay")
	}
}

func TestMatchObjectStructureRelaxation(t *testing.T) {
	refSig, refSpan := newSignalWithVector(t)
	defer hif.Destroy(refSig)

	// The counterpart declares its type through a Reference wrapper.
	wrappedVec := hif.NewBitvector()
	innerSpan := hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0))
	wrappedVec.SetSpan(innerSpan)
	wrap := hif.NewReference()
	wrap.SetBaseType(wrappedVec)
	otherSig := hif.NewSignal("count")
	otherSig.SetDeclType(wrap)
	defer hif.Destroy(otherSig)

	if _, ok := hif.MatchObject(refSpan, refSig, otherSig, hif.MatchOptions{}); ok {
		t.Fatalf("strict replay must stop at the wrapper")
	}
	got, ok := hif.MatchObject(refSpan, refSig, otherSig, hif.MatchOptions{MatchStructure: true})
	if !ok || got != hif.Object(innerSpan) {
		t.Fatalf("structural relaxation must step through the Reference wrapper")
	}
}

func newSignalWithVector(t *testing.T) (*hif.Signal, *hif.Range) {
	t.Helper()
	span := hif.NewRange(hif.DirDownto, hif.NewIntValue(7), hif.NewIntValue(0))
	vec := hif.NewBitvector()
	vec.SetSpan(span)
	sig := hif.NewSignal("count")
	sig.SetDeclType(vec)
	return sig, span
}

func mustPanicViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a contract violation panic")
		}
		if _, ok := r.(*hif.ContractViolation); !ok {
			t.Fatalf("panic value is %T, want *hif.ContractViolation", r)
		}
	}()
	fn()
}

func TestMatchedInsertListPolicies(t *testing.T) {
	oldParent := newEntityWithPorts(t, "a", "b", "c")
	defer hif.Destroy(oldParent)
	oldObj := oldParent.Ports.At(1) // "b", ordinal 2

	build := func() *hif.Entity { return newEntityWithPorts(t, "x", "y", "z") }

	t.Run("error if occupied", func(t *testing.T) {
		np := build()
		defer hif.Destroy(np)
		if hif.MatchedInsert(hif.NewPort("n", hif.DirIn), np, oldObj, oldParent, hif.ErrorIfOccupied) {
			t.Fatalf("ordinal 2 is occupied, insertion must refuse")
		}
		if np.Ports.Size() != 3 {
			t.Fatalf("a refused insertion must not mutate the target")
		}
	})

	t.Run("expand if needed", func(t *testing.T) {
		np := build()
		defer hif.Destroy(np)
		if !hif.MatchedInsert(hif.NewPort("n", hif.DirIn), np, oldObj, oldParent, hif.ExpandIfNeeded) {
			t.Fatalf("expanding insertion must succeed")
		}
		if got := portNames(np); len(got) != 4 || got[1] != "n" || got[2] != "y" {
			t.Fatalf("expected n at ordinal 2 with y shifted, got %v", got)
		}
	})

	t.Run("delete if occupied", func(t *testing.T) {
		np := build()
		defer hif.Destroy(np)
		displaced := np.Ports.At(1)
		if !hif.MatchedInsert(hif.NewPort("n", hif.DirIn), np, oldObj, oldParent, hif.DeleteIfOccupied) {
			t.Fatalf("replacing insertion must succeed")
		}
		if np.Ports.Size() != 3 || np.Ports.At(1).Name() != "n" {
			t.Fatalf("expected n to replace y, got %v", portNames(np))
		}
		mustPanicViolation(t, func() { hif.Detach(displaced) })
	})

	t.Run("overwrite keeps the occupant alive", func(t *testing.T) {
		np := build()
		defer hif.Destroy(np)
		displaced := np.Ports.At(1)
		if !hif.MatchedInsert(hif.NewPort("n", hif.DirIn), np, oldObj, oldParent, hif.Overwrite) {
			t.Fatalf("overwriting insertion must succeed")
		}
		if displaced.Parent() != nil {
			t.Fatalf("the displaced port must be detached")
		}
		hif.Destroy(displaced)
	})
}

func TestMatchedInsertSingularSlot(t *testing.T) {
	oldParent := hif.NewView("rtl")
	defer hif.Destroy(oldParent)
	oldObj := hif.NewEntity("iface")
	oldParent.SetEntity(oldObj)

	empty := hif.NewView("rtl2")
	defer hif.Destroy(empty)
	if !hif.MatchedInsert(hif.NewEntity("fresh"), empty, oldObj, oldParent, hif.ErrorIfOccupied) {
		t.Fatalf("an empty mirrored field must accept the node")
	}
	if empty.Entity() == nil || empty.Entity().Name() != "fresh" {
		t.Fatalf("entity not installed")
	}

	second := hif.NewEntity("second")
	if hif.MatchedInsert(second, empty, oldObj, oldParent, hif.ErrorIfOccupied) {
		t.Fatalf("an occupied field must refuse under ErrorIfOccupied")
	}
	if empty.Entity().Name() != "fresh" {
		t.Fatalf("refusal must leave the occupant in place")
	}
	if !hif.MatchedInsert(second, empty, oldObj, oldParent, hif.Overwrite) {
		t.Fatalf("Overwrite must replace the occupant")
	}
	if empty.Entity() != second {
		t.Fatalf("second entity not installed")
	}
}

func TestMatchedInsertTypeMismatch(t *testing.T) {
	oldParent := newEntityWithPorts(t, "a")
	defer hif.Destroy(oldParent)
	oldObj := oldParent.Ports.Front()

	np := newEntityWithPorts(t, "x")
	defer hif.Destroy(np)
	wrong := hif.NewSignal("not_a_port")
	defer hif.Destroy(wrong)
	if hif.MatchedInsert(wrong, np, oldObj, oldParent, hif.ExpandIfNeeded) {
		t.Fatalf("a type-incompatible node must be refused")
	}
	if np.Ports.Size() != 1 {
		t.Fatalf("a refused insertion must not mutate the list")
	}
}
