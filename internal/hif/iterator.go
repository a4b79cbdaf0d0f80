package hif

// Iterator is a position inside a BList. The zero Iterator and any iterator
// past either end are invalid; mutating or dereferencing through an invalid
// iterator is a contract violation, the same way an end iterator is in the
// containers this one replaces.
type Iterator[T Object] struct {
	list *BList[T]
	e    *entry
}

// Begin returns an iterator on the first element; invalid when the list is
// empty.
func (l *BList[T]) Begin() Iterator[T] { return Iterator[T]{list: l, e: l.core.head} }

// RBegin returns an iterator on the last element; invalid when the list is
// empty.
func (l *BList[T]) RBegin() Iterator[T] { return Iterator[T]{list: l, e: l.core.tail} }

// IteratorTo returns an iterator positioned on v; invalid when v is not an
// element.
func (l *BList[T]) IteratorTo(v Object) Iterator[T] {
	return Iterator[T]{list: l, e: l.core.entryOf(v)}
}

// Valid reports whether the iterator references an element.
func (it Iterator[T]) Valid() bool { return it.e != nil && it.e.list != nil }

func (it Iterator[T]) mustValid(op string) {
	if !it.Valid() {
		where := ""
		if it.list != nil {
			where = it.list.core.ident()
		}
		violate(op, where, "operation through an end or invalidated iterator")
	}
}

// Obj returns the element under the iterator.
func (it Iterator[T]) Obj() T {
	it.mustValid("Iterator.Obj")
	return it.e.obj.(T)
}

// Next returns the iterator advanced by one; invalid past the end.
func (it Iterator[T]) Next() Iterator[T] {
	it.mustValid("Iterator.Next")
	return Iterator[T]{list: it.list, e: it.e.next}
}

// Prev returns the iterator retreated by one; invalid before the front.
func (it Iterator[T]) Prev() Iterator[T] {
	it.mustValid("Iterator.Prev")
	return Iterator[T]{list: it.list, e: it.e.prev}
}

// InsertAfter attaches v into a new slot right after the iterator.
func (it Iterator[T]) InsertAfter(v T) {
	it.mustValid("Iterator.InsertAfter")
	l := it.e.list
	l.adoptInto("Iterator.InsertAfter", objOrNil(v), it.e, it.e.next)
}

// InsertBefore attaches v into a new slot right before the iterator.
func (it Iterator[T]) InsertBefore(v T) {
	it.mustValid("Iterator.InsertBefore")
	l := it.e.list
	l.adoptInto("Iterator.InsertBefore", objOrNil(v), it.e.prev, it.e)
}

// SpliceAfter moves every element of donor, in order, into new slots right
// after the iterator; donor is left empty.
func (it Iterator[T]) SpliceAfter(donor *BList[T]) {
	it.mustValid("Iterator.SpliceAfter")
	l := it.e.list
	anchor := it.e
	for donor.core.head != nil {
		obj := donor.core.detach(donor.core.head)
		anchor = l.adoptInto("Iterator.SpliceAfter", obj, anchor, anchor.next)
	}
}

// SpliceBefore moves every element of donor, in order, into new slots right
// before the iterator; donor is left empty.
func (it Iterator[T]) SpliceBefore(donor *BList[T]) {
	it.mustValid("Iterator.SpliceBefore")
	l := it.e.list
	for donor.core.head != nil {
		obj := donor.core.detach(donor.core.head)
		l.adoptInto("Iterator.SpliceBefore", obj, it.e.prev, it.e)
	}
}

// EraseForward destroys the element under the iterator and returns the
// iterator advanced to the next slot.
func (it Iterator[T]) EraseForward() Iterator[T] {
	it.mustValid("Iterator.EraseForward")
	l := it.e.list
	next := it.e.next
	destroy(l.detach(it.e))
	return Iterator[T]{list: it.list, e: next}
}

// EraseBackward destroys the element under the iterator and returns the
// iterator retreated to the previous slot.
func (it Iterator[T]) EraseBackward() Iterator[T] {
	it.mustValid("Iterator.EraseBackward")
	l := it.e.list
	prev := it.e.prev
	destroy(l.detach(it.e))
	return Iterator[T]{list: it.list, e: prev}
}

// RemoveForward detaches the element under the iterator, handing it to the
// caller, and returns it with the iterator advanced to the next slot.
func (it Iterator[T]) RemoveForward() (T, Iterator[T]) {
	it.mustValid("Iterator.RemoveForward")
	l := it.e.list
	next := it.e.next
	obj := l.detach(it.e)
	return obj.(T), Iterator[T]{list: it.list, e: next}
}

// RemoveBackward detaches the element under the iterator, handing it to the
// caller, and returns it with the iterator retreated to the previous slot.
func (it Iterator[T]) RemoveBackward() (T, Iterator[T]) {
	it.mustValid("Iterator.RemoveBackward")
	l := it.e.list
	prev := it.e.prev
	obj := l.detach(it.e)
	return obj.(T), Iterator[T]{list: it.list, e: prev}
}

// Swap exchanges the payloads of the two iterators' slots, re-homing each
// payload's back-references. The slots may belong to different lists; each
// payload must be acceptable in the other's list.
func (it Iterator[T]) Swap(other Iterator[T]) {
	it.mustValid("Iterator.Swap")
	other.mustValid("Iterator.Swap")
	if it.e == other.e {
		return
	}
	la, lb := it.e.list, other.e.list
	a, b := it.e.obj, other.e.obj
	if la.accepts != nil && !la.accepts(b) {
		violate("Iterator.Swap", la.ident(), b.Class().String()+" not acceptable here")
	}
	if lb.accepts != nil && !lb.accepts(a) {
		violate("Iterator.Swap", lb.ident(), a.Class().String()+" not acceptable here")
	}
	if isAncestorOrSelf(b, la.owner) {
		violate("Iterator.Swap", la.ident(), b.Class().String()+" already owns this list")
	}
	if isAncestorOrSelf(a, lb.owner) {
		violate("Iterator.Swap", lb.ident(), a.Class().String()+" already owns this list")
	}
	it.e.obj, other.e.obj = b, a
	a.impl().owner = slotRef{entry: other.e}
	a.impl().parent = lb.owner
	b.impl().owner = slotRef{entry: it.e}
	b.impl().parent = la.owner
}
