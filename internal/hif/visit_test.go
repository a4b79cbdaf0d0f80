package hif_test

import (
	"testing"

	"hif/internal/hif"
)

// buildAssignTree returns "target := a + 1" with its pieces.
func buildAssignTree() (*hif.Assign, *hif.Identifier, *hif.Expression) {
	sum := hif.NewExpression(hif.OpPlus, hif.NewIdentifier("a"), hif.NewIntValue(1))
	target := hif.NewIdentifier("target")
	return hif.NewAssign(target, sum), target, sum
}

func TestVisitPreOrder(t *testing.T) {
	assign, _, _ := buildAssignTree()

	var classes []hif.ClassID
	hif.Visit(assign, func(o hif.Object) bool {
		classes = append(classes, o.Class())
		return true
	})

	want := []hif.ClassID{
		hif.ClassAssign,
		hif.ClassIdentifier, // target
		hif.ClassExpression,
		hif.ClassIdentifier, // a
		hif.ClassIntValue,
	}
	if len(classes) != len(want) {
		t.Fatalf("visited %d nodes, want %d (%v)", len(classes), len(want), classes)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Fatalf("visit order %v, want %v", classes, want)
		}
	}
}

func TestVisitPrune(t *testing.T) {
	assign, _, sum := buildAssignTree()

	var visited int
	hif.Visit(assign, func(o hif.Object) bool {
		visited++
		return o != hif.Object(sum) // skip the expression's operands
	})
	if visited != 3 {
		t.Fatalf("visited %d nodes with pruning, want 3", visited)
	}
}

func TestVisitSkipsProperties(t *testing.T) {
	assign, _, _ := buildAssignTree()
	assign.SetProperty("weight", hif.NewIntValue(42))

	count := hif.CountNodes(assign)
	if count != 5 {
		t.Fatalf("CountNodes = %d, property value must not be visited", count)
	}
}

func TestVisitDeepNesting(t *testing.T) {
	// chained binary expressions several thousand levels deep must not
	// exhaust the call stack
	expr := hif.Value(hif.NewIntValue(0))
	for i := 0; i < 20000; i++ {
		expr = hif.NewExpression(hif.OpPlus, expr, hif.NewIntValue(1))
	}
	count := hif.CountNodes(expr)
	if count != 40001 {
		t.Fatalf("CountNodes = %d, want 40001", count)
	}
}
