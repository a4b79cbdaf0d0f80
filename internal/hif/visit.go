package hif

// VisitFn is applied to each visited node; returning false prunes the node's
// children from the traversal.
type VisitFn func(Object) bool

// Visit applies fn to every node of root's subtree, root included, in
// pre-order. Generated hardware trees can nest thousands of levels deep
// (unrolled generates, chained expressions), so the walk keeps its own work
// stack instead of recursing.
func Visit(root Object, fn VisitFn) {
	if isNilObj(root) {
		return
	}
	mustAlive("Visit", root)
	stack := make([]Object, 0, 64)
	stack = append(stack, root)
	var scratch []Object
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		scratch = appendChildren(scratch[:0], n)
		for i := len(scratch) - 1; i >= 0; i-- {
			stack = append(stack, scratch[i])
		}
	}
}

// VisitList applies Visit to every element of a list in order.
func VisitList[T Object](l *BList[T], fn VisitFn) {
	for e := l.core.head; e != nil; e = e.next {
		Visit(e.obj, fn)
	}
}

// appendChildren collects n's structural children in slot order. Property
// values are metadata, not structure, and are not visited.
func appendChildren(dst []Object, n Object) []Object {
	for _, s := range n.slots() {
		if s.IsList() {
			for e := s.list.head; e != nil; e = e.next {
				dst = append(dst, e.obj)
			}
			continue
		}
		if c := s.Get(); c != nil {
			dst = append(dst, c)
		}
	}
	return dst
}

// CountNodes returns the number of nodes in root's subtree.
func CountNodes(root Object) int {
	n := 0
	Visit(root, func(Object) bool {
		n++
		return true
	})
	return n
}
