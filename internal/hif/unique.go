package hif

// AddUniqueOptions controls deduplicating insertion.
type AddUniqueOptions struct {
	// Position inserts at this 1-based ordinal, shifting later elements;
	// zero appends.
	Position int
	// CopyObject inserts a deep copy and leaves the candidate with the
	// caller.
	CopyObject bool
	// DeleteIfNotAdded destroys the candidate when it is rejected, whether
	// as a structural duplicate or as type-incompatible.
	DeleteIfNotAdded bool
	// Equals is the equality configuration duplicate detection runs under.
	Equals EqualsOptions
}

// DefaultAddUniqueOptions appends, without copying, comparing duplicates
// under the default equality configuration.
func DefaultAddUniqueOptions() AddUniqueOptions {
	return AddUniqueOptions{Equals: DefaultEqualsOptions()}
}

// AddUniqueObject inserts candidate into dst only if dst accepts its dynamic
// type and no existing element is structurally equal to it under
// opt.Equals. Reports whether the insertion happened; rejection is an
// ordinary outcome, not an error.
func AddUniqueObject[T Object](candidate Object, dst *BList[T], opt AddUniqueOptions) bool {
	if candidate == nil || dst == nil {
		return false
	}
	mustAlive("AddUniqueObject", candidate)
	if _, ok := candidate.(T); !ok {
		if opt.DeleteIfNotAdded {
			Destroy(candidate)
		}
		return false
	}
	return addUniqueCore(candidate, &dst.core, &opt)
}

// AddUniqueInAncestors walks up from start and inserts candidate into the
// first list slot that accepts its dynamic type, with the same duplicate
// rejection as AddUniqueObject. A named group of alternative forms is
// entered at its first form rather than searched as the group itself.
func AddUniqueInAncestors(candidate, start Object, opt AddUniqueOptions) bool {
	if candidate == nil || start == nil {
		return false
	}
	mustAlive("AddUniqueObject", candidate)
	if g, ok := start.(*DesignUnit); ok && !g.Views.Empty() {
		start = g.Views.Front()
	}
	for n := start; n != nil; n = n.Parent() {
		for _, s := range n.slots() {
			if s.IsList() && s.Accepts(candidate) {
				return addUniqueCore(candidate, s.list, &opt)
			}
		}
	}
	if opt.DeleteIfNotAdded {
		Destroy(candidate)
	}
	return false
}

func addUniqueCore(candidate Object, l *listCore, opt *AddUniqueOptions) bool {
	reject := func() bool {
		if opt.DeleteIfNotAdded {
			Destroy(candidate)
		}
		return false
	}
	if l.accepts != nil && !l.accepts(candidate) {
		return reject()
	}
	for e := l.head; e != nil; e = e.next {
		if Equals(e.obj, candidate, opt.Equals) {
			return reject()
		}
	}
	obj := candidate
	if opt.CopyObject {
		obj = Copy(candidate)
	}
	if opt.Position > 0 {
		l.insertObjAt(opt.Position-1, obj, true)
	} else {
		l.adoptInto("AddUniqueObject", obj, l.tail, nil)
	}
	return true
}
