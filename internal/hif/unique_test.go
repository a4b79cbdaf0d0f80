package hif_test

import (
	"testing"

	"hif/internal/hif"
)

func TestAddUniqueRejectsStructuralDuplicate(t *testing.T) {
	e := newEntityWithPorts(t, "clk", "rst")
	defer hif.Destroy(e)

	dup := hif.NewPort("clk", hif.DirIn)
	if hif.AddUniqueObject(dup, &e.Ports, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("a structural duplicate must be rejected")
	}
	if e.Ports.Size() != 2 {
		t.Fatalf("rejection must leave the list size unchanged, got %d", e.Ports.Size())
	}
	if dup.Parent() != nil {
		t.Fatalf("the rejected candidate must stay with the caller")
	}
	hif.Destroy(dup)
}

func TestAddUniqueAcceptsNewNode(t *testing.T) {
	e := newEntityWithPorts(t, "clk")
	defer hif.Destroy(e)

	fresh := hif.NewPort("data", hif.DirIn)
	if !hif.AddUniqueObject(fresh, &e.Ports, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("a genuinely new node must be added")
	}
	if got := portNames(e); len(got) != 2 || got[1] != "data" {
		t.Fatalf("expected data appended, got %v", got)
	}
	if fresh.Parent() != hif.Object(e) {
		t.Fatalf("the added node must be owned by the entity")
	}
}

func TestAddUniquePosition(t *testing.T) {
	e := newEntityWithPorts(t, "a", "c")
	defer hif.Destroy(e)

	opt := hif.DefaultAddUniqueOptions()
	opt.Position = 2
	if !hif.AddUniqueObject(hif.NewPort("b", hif.DirIn), &e.Ports, opt) {
		t.Fatalf("positioned insertion must succeed")
	}
	if got := portNames(e); got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("expected b at ordinal 2, got %v", got)
	}
}

func TestAddUniqueCopyObject(t *testing.T) {
	e := newEntityWithPorts(t, "clk")
	defer hif.Destroy(e)

	candidate := hif.NewPort("data", hif.DirOut)
	defer hif.Destroy(candidate)
	opt := hif.DefaultAddUniqueOptions()
	opt.CopyObject = true
	if !hif.AddUniqueObject(candidate, &e.Ports, opt) {
		t.Fatalf("copying insertion must succeed")
	}
	if candidate.Parent() != nil {
		t.Fatalf("CopyObject must leave the candidate with the caller")
	}
	back := e.Ports.At(1)
	if back == candidate {
		t.Fatalf("the list must own a copy, not the candidate itself")
	}
	if !hif.Equals(back, candidate, hif.DefaultEqualsOptions()) {
		t.Fatalf("the inserted copy must be structurally equal to the candidate")
	}
}

func TestAddUniqueDeleteIfNotAdded(t *testing.T) {
	e := newEntityWithPorts(t, "clk")
	defer hif.Destroy(e)

	dup := hif.NewPort("clk", hif.DirIn)
	opt := hif.DefaultAddUniqueOptions()
	opt.DeleteIfNotAdded = true
	if hif.AddUniqueObject(dup, &e.Ports, opt) {
		t.Fatalf("a structural duplicate must be rejected")
	}
	mustPanicViolation(t, func() { hif.Detach(dup) })
}

func TestAddUniqueTypeMismatch(t *testing.T) {
	e := newEntityWithPorts(t, "clk")
	defer hif.Destroy(e)

	sig := hif.NewSignal("not_a_port")
	defer hif.Destroy(sig)
	if hif.AddUniqueObject[*hif.Port](sig, &e.Ports, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("a type-incompatible candidate must be rejected")
	}
	if e.Ports.Size() != 1 {
		t.Fatalf("rejection must not mutate the list")
	}
}

func TestAddUniqueInAncestors(t *testing.T) {
	v := hif.NewView("rtl")
	defer hif.Destroy(v)
	c := hif.NewContents()
	v.SetContents(c)
	sig := hif.NewSignal("count")
	c.Declarations.PushBack(sig)

	// Starting from a declaration, the nearest accepting list up the chain
	// is the contents' declaration list.
	fresh := hif.NewSignal("helper")
	if !hif.AddUniqueInAncestors(fresh, sig, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("ancestor insertion must find the declaration list")
	}
	if c.Declarations.Size() != 2 || fresh.Parent() != hif.Object(c) {
		t.Fatalf("helper must land in the contents declarations")
	}

	dup := hif.NewSignal("count")
	defer hif.Destroy(dup)
	if hif.AddUniqueInAncestors(dup, sig, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("a structural duplicate must be rejected in ancestors too")
	}
	if c.Declarations.Size() != 2 {
		t.Fatalf("rejected duplicate must not grow the list")
	}
}

func TestAddUniqueInAncestorsEntersFirstView(t *testing.T) {
	du := hif.NewDesignUnit("counter")
	defer hif.Destroy(du)
	first := hif.NewView("rtl")
	du.Views.PushBack(first)
	du.Views.PushBack(hif.NewView("gate"))

	// A design unit is a group of alternative forms; the search enters its
	// first form instead of scanning the group list itself.
	lib := hif.NewLibrary("ieee")
	if !hif.AddUniqueInAncestors(lib, du, hif.DefaultAddUniqueOptions()) {
		t.Fatalf("the library must be placed inside the first view")
	}
	if first.Libraries.Size() != 1 || lib.Parent() != hif.Object(first) {
		t.Fatalf("library must land in the first view's library list")
	}
}

func TestAddUniqueInAncestorsNoAcceptingList(t *testing.T) {
	root := hif.NewIdentifier("lonely")
	defer hif.Destroy(root)

	stray := hif.NewSignal("s")
	opt := hif.DefaultAddUniqueOptions()
	opt.DeleteIfNotAdded = true
	if hif.AddUniqueInAncestors(stray, root, opt) {
		t.Fatalf("no ancestor list accepts a declaration here")
	}
	mustPanicViolation(t, func() { hif.Detach(stray) })
}
