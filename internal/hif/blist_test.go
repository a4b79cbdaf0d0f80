package hif_test

import (
	"testing"

	"hif/internal/hif"
)

func newEntityWithPorts(t *testing.T, names ...string) *hif.Entity {
	t.Helper()
	e := hif.NewEntity("e")
	for _, name := range names {
		e.Ports.PushBack(hif.NewPort(name, hif.DirIn))
	}
	return e
}

func portNames(e *hif.Entity) []string {
	var out []string
	for p := range e.Ports.All() {
		out = append(out, p.Name())
	}
	return out
}

func TestBListPushAndOwnership(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b")
	p := hif.NewPort("c", hif.DirOut)
	e.Ports.PushBack(p)

	if got := e.Ports.Size(); got != 3 {
		t.Fatalf("size = %d, want 3", got)
	}
	if p.Parent() != hif.Object(e) {
		t.Fatalf("pushed port's parent is not the entity")
	}
	if !p.InBList() {
		t.Fatalf("pushed port does not report list membership")
	}
	if field, ok := p.OwnerField(); !ok || field != "ports" {
		t.Fatalf("owner field = %q, ok=%v", field, ok)
	}
}

func TestBListRejectsDoubleOwnership(t *testing.T) {
	e1 := newEntityWithPorts(t, "a")
	e2 := hif.NewEntity("other")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("attaching an owned node did not panic")
		}
		if _, ok := r.(*hif.ContractViolation); !ok {
			t.Fatalf("panic value is %T, want *hif.ContractViolation", r)
		}
	}()
	e2.Ports.PushBack(e1.Ports.Front())
}

func TestBListInsertExpandAndReplace(t *testing.T) {
	e := newEntityWithPorts(t, "a", "c")

	e.Ports.Insert(1, hif.NewPort("b", hif.DirIn), true)
	got := portNames(e)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after expand insert: names = %v, want %v", got, want)
		}
	}

	old := e.Ports.Insert(1, hif.NewPort("B", hif.DirIn), false)
	if old == nil || old.Name() != "b" {
		t.Fatalf("replace insert returned %v, want the displaced b", old)
	}
	if old.Parent() != nil || old.InBList() {
		t.Fatalf("displaced port is still owned")
	}
	if e.Ports.Size() != 3 {
		t.Fatalf("size = %d after replace, want 3", e.Ports.Size())
	}
}

func TestBListEraseAndRemove(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b", "c")
	b := e.Ports.At(1)
	if !e.Ports.Contains(b) {
		t.Fatalf("list does not contain its own element")
	}

	e.Ports.Remove(b)
	if e.Ports.Contains(b) {
		t.Fatalf("list still contains the removed port")
	}
	if b.Parent() != nil || b.InBList() {
		t.Fatalf("removed port still owned")
	}
	// removing again is a silent no-op
	e.Ports.Remove(b)
	if e.Ports.Size() != 2 {
		t.Fatalf("size = %d after remove, want 2", e.Ports.Size())
	}

	a := e.Ports.Front()
	e.Ports.Erase(a)
	defer func() {
		if recover() == nil {
			t.Fatalf("using an erased node did not panic")
		}
	}()
	hif.Detach(a)
}

func TestBListPositions(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b", "c")
	b := e.Ports.At(1)

	pos, ok := e.Ports.GetPosition(b)
	if !ok || pos != 1 {
		t.Fatalf("GetPosition = %d,%v want 1,true", pos, ok)
	}

	stranger := hif.NewPort("x", hif.DirIn)
	if _, ok := e.Ports.GetPosition(stranger); ok {
		t.Fatalf("GetPosition found a foreign node")
	}
	if got := e.Ports.PositionOrSize(stranger); got != e.Ports.Size() {
		t.Fatalf("PositionOrSize = %d, want size %d", got, e.Ports.Size())
	}
}

func TestBListMergeDrainsDonor(t *testing.T) {
	dst := newEntityWithPorts(t, "a")
	src := newEntityWithPorts(t, "b", "c")

	dst.Ports.Merge(&src.Ports)
	if dst.Ports.Size() != 3 || src.Ports.Size() != 0 {
		t.Fatalf("sizes after merge: dst=%d src=%d", dst.Ports.Size(), src.Ports.Size())
	}
	for p := range dst.Ports.All() {
		if p.Parent() != hif.Object(dst) {
			t.Fatalf("merged port %q not reparented", p.Name())
		}
	}
}

func TestBListRemoveDuplicates(t *testing.T) {
	e := hif.NewEntity("e")
	for _, name := range []string{"a", "a", "b", "a"} {
		e.Ports.PushBack(hif.NewPort(name, hif.DirIn))
	}

	if removed := e.Ports.RemoveDuplicates(false); removed != 2 {
		t.Fatalf("RemoveDuplicates removed %d, want 2", removed)
	}
	got := portNames(e)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("after RemoveDuplicates: %v, want [a b]", got)
	}
}

func TestBListFindByName(t *testing.T) {
	e := newEntityWithPorts(t, "Clk", "rst")

	if p := e.Ports.FindByName("rst"); p == nil || p.Name() != "rst" {
		t.Fatalf("FindByName(rst) = %v", p)
	}
	if p := e.Ports.FindByName("CLK"); p != nil {
		t.Fatalf("FindByName is exact, got %v for CLK", p)
	}
	if p := e.Ports.FindByNameFold("CLK"); p == nil || p.Name() != "Clk" {
		t.Fatalf("FindByNameFold(CLK) = %v", p)
	}
}

func TestBListRejectsForeignAdoption(t *testing.T) {
	v := hif.NewView("v")
	defer func() {
		if recover() == nil {
			t.Fatalf("ancestor adoption did not panic")
		}
	}()
	// a view cannot be pushed into a list it transitively owns
	c := hif.NewContents()
	v.SetContents(c)
	c.Declarations.PushBack(v)
}
