package hif

import "iter"

// entry is one slot of an owned list. The payload node's owning-slot
// reference points back at its entry, which is what makes detach O(1).
type entry struct {
	prev, next *entry
	list       *listCore
	obj        Object
}

// listCore is the untyped heart of BList. The typed facade adds the element
// constraint; matching and matched insertion work on the core through the
// slot table.
type listCore struct {
	owner   Object
	name    string
	accepts func(Object) bool
	head    *entry
	tail    *entry
	size    int
}

func (l *listCore) ident() string {
	if l.owner == nil {
		return l.name
	}
	return l.owner.Class().String() + "." + l.name
}

// adoptInto attaches obj into a fresh entry linked between prev and next.
func (l *listCore) adoptInto(op string, obj Object, prev, next *entry) *entry {
	if obj == nil {
		violate(op, l.ident(), "nil node")
	}
	mustAlive(op, l.owner)
	ob := obj.impl()
	if ob.dead {
		violate(op, l.ident(), "attach of destroyed "+obj.Class().String())
	}
	if ob.parent != nil || ob.owner.entry != nil {
		violate(op, l.ident(), obj.Class().String()+" is already owned elsewhere")
	}
	if isAncestorOrSelf(obj, l.owner) {
		violate(op, l.ident(), obj.Class().String()+" already owns this list")
	}
	e := &entry{prev: prev, next: next, list: l, obj: obj}
	if prev != nil {
		prev.next = e
	} else {
		l.head = e
	}
	if next != nil {
		next.prev = e
	} else {
		l.tail = e
	}
	l.size++
	ob.parent = l.owner
	ob.owner = slotRef{entry: e}
	return e
}

// detach unlinks e and releases its payload back to the caller.
func (l *listCore) detach(e *entry) Object {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
	l.size--
	obj := e.obj
	releaseChild(obj)
	e.obj = nil
	e.list = nil
	return obj
}

// entryOf returns obj's entry if obj currently occupies a slot of this list.
func (l *listCore) entryOf(obj Object) *entry {
	if obj == nil {
		return nil
	}
	e := obj.impl().owner.entry
	if e == nil || e.list != l {
		return nil
	}
	return e
}

func (l *listCore) entryAt(pos int) *entry {
	if pos < 0 || pos >= l.size {
		return nil
	}
	e := l.head
	for i := 0; i < pos; i++ {
		e = e.next
	}
	return e
}

// insertObjAt implements positional insertion on the untyped core: with
// expand a new slot is linked before pos, without it the occupant of pos is
// replaced and handed back to the caller. pos at or past the end appends.
func (l *listCore) insertObjAt(pos int, obj Object, expand bool) Object {
	at := l.entryAt(pos)
	if at == nil {
		l.adoptInto("BList.Insert", obj, l.tail, nil)
		return nil
	}
	if expand {
		l.adoptInto("BList.Insert", obj, at.prev, at)
		return nil
	}
	if obj == nil {
		violate("BList.Insert", l.ident(), "nil node")
	}
	ob := obj.impl()
	if ob.dead {
		violate("BList.Insert", l.ident(), "attach of destroyed "+obj.Class().String())
	}
	if ob.parent != nil || ob.owner.entry != nil {
		violate("BList.Insert", l.ident(), obj.Class().String()+" is already owned elsewhere")
	}
	if isAncestorOrSelf(obj, l.owner) {
		violate("BList.Insert", l.ident(), obj.Class().String()+" already owns this list")
	}
	old := at.obj
	releaseChild(old)
	at.obj = obj
	ob.parent = l.owner
	ob.owner = slotRef{entry: at}
	return old
}

func (l *listCore) position(obj Object) (int, bool) {
	e := l.entryOf(obj)
	if e == nil {
		return 0, false
	}
	pos := 0
	for p := l.head; p != e; p = p.next {
		pos++
	}
	return pos, true
}

// merge splices donor's whole sequence onto l's end, re-homing every moved
// element; donor is left empty.
func (l *listCore) merge(donor *listCore) {
	if donor == l || donor.size == 0 {
		return
	}
	for e := donor.head; e != nil; e = e.next {
		e.list = l
		e.obj.impl().parent = l.owner
	}
	if l.tail != nil {
		l.tail.next = donor.head
		donor.head.prev = l.tail
	} else {
		l.head = donor.head
	}
	l.tail = donor.tail
	l.size += donor.size
	donor.head, donor.tail, donor.size = nil, nil, 0
}

// isAncestorOrSelf reports whether anc is node itself or one of its
// ancestors.
func isAncestorOrSelf(anc, node Object) bool {
	for n := node; n != nil; n = n.Parent() {
		if n == anc {
			return true
		}
	}
	return false
}

// BList is a typed, owning, ordered, doubly-linked collection of nodes. Each
// element's dynamic type must satisfy T; each element's parent is the list's
// owner node for as long as it stays in the list.
type BList[T Object] struct {
	core listCore
}

func initBList[T Object](l *BList[T], owner Object, name string) {
	l.core = listCore{
		owner: owner,
		name:  name,
		accepts: func(o Object) bool {
			_, ok := o.(T)
			return ok
		},
	}
}

// Owner returns the node owning this list.
func (l *BList[T]) Owner() Object { return l.core.owner }

// Name returns the field name of the list on its owner, for diagnostics and
// structural matching.
func (l *BList[T]) Name() string { return l.core.name }

func (l *BList[T]) Size() int   { return l.core.size }
func (l *BList[T]) Empty() bool { return l.core.size == 0 }

// PushBack attaches v at the end. v must be alive and unowned.
func (l *BList[T]) PushBack(v T) {
	l.core.adoptInto("BList.PushBack", objOrNil(v), l.core.tail, nil)
}

// PushFront attaches v at the front. v must be alive and unowned.
func (l *BList[T]) PushFront(v T) {
	l.core.adoptInto("BList.PushFront", objOrNil(v), nil, l.core.head)
}

// Insert places v at position pos (0-based). With expand a new slot is
// created before pos and the zero T is returned; without it the node
// currently at pos is replaced and returned with ownership transferred to
// the caller. pos at or past the end appends in both modes.
func (l *BList[T]) Insert(pos int, v T, expand bool) T {
	var zero T
	old := l.core.insertObjAt(pos, objOrNil(v), expand)
	if old == nil {
		return zero
	}
	return old.(T)
}

// Erase detaches and destroys v. Not found is a no-op.
func (l *BList[T]) Erase(v T) {
	e := l.core.entryOf(objOrNil(v))
	if e == nil {
		return
	}
	destroy(l.core.detach(e))
}

// Remove detaches v, returning ownership to the caller. Not found is a
// no-op; the node stays valid either way.
func (l *BList[T]) Remove(v T) {
	if e := l.core.entryOf(objOrNil(v)); e != nil {
		l.core.detach(e)
	}
}

// RemoveSubTree detaches the single list element that is root itself or an
// ancestor of root, returning it; the zero T when no element qualifies.
func (l *BList[T]) RemoveSubTree(root Object) T {
	var zero T
	for e := l.core.head; e != nil; e = e.next {
		if isAncestorOrSelf(e.obj, root) {
			return l.core.detach(e).(T)
		}
	}
	return zero
}

// EraseSubTree destroys every list element that is root itself or an
// ancestor of root, returning how many were destroyed.
func (l *BList[T]) EraseSubTree(root Object) int {
	n := 0
	for e := l.core.head; e != nil; {
		next := e.next
		if isAncestorOrSelf(e.obj, root) {
			destroy(l.core.detach(e))
			n++
		}
		e = next
	}
	return n
}

// Contains reports whether v currently occupies a slot of this list.
func (l *BList[T]) Contains(v Object) bool { return l.core.entryOf(v) != nil }

// GetPosition returns v's 0-based position, ok=false when v is not an
// element.
func (l *BList[T]) GetPosition(v Object) (int, bool) { return l.core.position(v) }

// PositionOrSize returns v's position, or the list size when v is not an
// element (the historical not-found sentinel, kept for positional callers).
func (l *BList[T]) PositionOrSize(v Object) int {
	if pos, ok := l.core.position(v); ok {
		return pos
	}
	return l.core.size
}

// At returns the element at pos; the zero T when out of range.
func (l *BList[T]) At(pos int) T {
	var zero T
	e := l.core.entryAt(pos)
	if e == nil {
		return zero
	}
	return e.obj.(T)
}

func (l *BList[T]) Front() T { return l.At(0) }
func (l *BList[T]) Back() T  { return l.At(l.core.size - 1) }

// FindByName linearly scans for the first named element whose name is an
// exact match; the zero T if none.
func (l *BList[T]) FindByName(name string) T {
	var zero T
	for e := l.core.head; e != nil; e = e.next {
		if n, ok := NameOf(e.obj); ok && n == name {
			return e.obj.(T)
		}
	}
	return zero
}

// Merge splices every element of donor onto the end of l in order, leaving
// donor empty.
func (l *BList[T]) Merge(donor *BList[T]) { l.core.merge(&donor.core) }

// Clear destroys every element.
func (l *BList[T]) Clear() {
	for l.core.head != nil {
		destroy(l.core.detach(l.core.head))
	}
}

// RemoveDuplicates destroys later duplicates of earlier elements. With
// strict, duplicate means the same node occupying two slots (impossible in a
// well-formed list, so strict mode only guards against corruption); without
// it, duplicate means structurally equal under default equality options.
// Returns the number of destroyed elements.
func (l *BList[T]) RemoveDuplicates(strict bool) int {
	removed := 0
	for a := l.core.head; a != nil; a = a.next {
		for b := a.next; b != nil; {
			next := b.next
			dup := false
			if strict {
				dup = a.obj == b.obj
			} else {
				dup = Equals(a.obj, b.obj, DefaultEqualsOptions())
			}
			if dup {
				destroy(l.core.detach(b))
				removed++
			}
			b = next
		}
	}
	return removed
}

// All iterates the elements in order.
func (l *BList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.core.head; e != nil; e = e.next {
			if !yield(e.obj.(T)) {
				return
			}
		}
	}
}
