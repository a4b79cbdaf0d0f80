package hif_test

import (
	"testing"

	"hif/internal/hif"
)

func TestIteratorWalk(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b", "c")

	var forward []string
	for it := e.Ports.Begin(); it.Valid(); it = it.Next() {
		forward = append(forward, it.Obj().Name())
	}
	if len(forward) != 3 || forward[0] != "a" || forward[2] != "c" {
		t.Fatalf("forward walk = %v", forward)
	}

	var backward []string
	for it := e.Ports.RBegin(); it.Valid(); it = it.Prev() {
		backward = append(backward, it.Obj().Name())
	}
	if len(backward) != 3 || backward[0] != "c" || backward[2] != "a" {
		t.Fatalf("backward walk = %v", backward)
	}
}

func TestIteratorEndDereferencePanics(t *testing.T) {
	e := newEntityWithPorts(t, "a")
	end := e.Ports.Begin().Next()
	if end.Valid() {
		t.Fatalf("iterator past the last element is still valid")
	}
	defer func() {
		if _, ok := recover().(*hif.ContractViolation); !ok {
			t.Fatalf("dereferencing the end iterator did not violate")
		}
	}()
	end.Obj()
}

func TestIteratorInsert(t *testing.T) {
	e := newEntityWithPorts(t, "a", "c")
	it := e.Ports.Begin()
	it.InsertAfter(hif.NewPort("b", hif.DirIn))
	it.InsertBefore(hif.NewPort("start", hif.DirIn))

	got := portNames(e)
	want := []string{"start", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}

func TestIteratorEraseForward(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b", "c")

	it := e.Ports.IteratorTo(e.Ports.At(1))
	it = it.EraseForward()
	if !it.Valid() || it.Obj().Name() != "c" {
		t.Fatalf("EraseForward did not land on the successor")
	}
	if e.Ports.Size() != 2 {
		t.Fatalf("size = %d, want 2", e.Ports.Size())
	}
}

func TestIteratorRemoveBackward(t *testing.T) {
	e := newEntityWithPorts(t, "a", "b", "c")

	it := e.Ports.IteratorTo(e.Ports.At(1))
	removed, it := it.RemoveBackward()
	if removed.Name() != "b" {
		t.Fatalf("removed %q, want b", removed.Name())
	}
	if removed.Parent() != nil {
		t.Fatalf("removed port still owned")
	}
	if !it.Valid() || it.Obj().Name() != "a" {
		t.Fatalf("RemoveBackward did not land on the predecessor")
	}
}

func TestIteratorSplice(t *testing.T) {
	dst := newEntityWithPorts(t, "a", "d")
	src := newEntityWithPorts(t, "b", "c")

	dst.Ports.Begin().SpliceAfter(&src.Ports)
	got := portNames(dst)
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names after splice = %v, want %v", got, want)
		}
	}
	if src.Ports.Size() != 0 {
		t.Fatalf("donor not drained, size = %d", src.Ports.Size())
	}
	for p := range dst.Ports.All() {
		if p.Parent() != hif.Object(dst) {
			t.Fatalf("spliced port %q not reparented", p.Name())
		}
	}
}

func TestIteratorSwapAcrossLists(t *testing.T) {
	e1 := newEntityWithPorts(t, "x")
	e2 := newEntityWithPorts(t, "y")

	e1.Ports.Begin().Swap(e2.Ports.Begin())
	if e1.Ports.Front().Name() != "y" || e2.Ports.Front().Name() != "x" {
		t.Fatalf("swap did not exchange payloads: %q / %q",
			e1.Ports.Front().Name(), e2.Ports.Front().Name())
	}
	if e1.Ports.Front().Parent() != hif.Object(e1) {
		t.Fatalf("swapped port not reparented")
	}
}

func TestIteratorSwapRejectsNestedLists(t *testing.T) {
	outer := hif.NewIf()
	defer hif.Destroy(outer)
	inner := hif.NewIf()
	outer.Defaults.PushBack(inner)
	leaf := hif.NewNull()
	inner.Defaults.PushBack(leaf)

	// Exchanging the two slots would install inner under its own subtree.
	mustPanicViolation(t, func() {
		outer.Defaults.Begin().Swap(inner.Defaults.Begin())
	})
	if outer.Defaults.Front() != hif.Action(inner) || inner.Defaults.Front() != hif.Action(leaf) {
		t.Fatalf("refused swap must leave both lists unchanged")
	}
	if inner.Parent() != hif.Object(outer) || leaf.Parent() != hif.Object(inner) {
		t.Fatalf("refused swap must leave ownership unchanged")
	}
}
