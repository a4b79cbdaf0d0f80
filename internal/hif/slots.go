package hif

// Facet classifies what a child slot means to the equality engine, so the
// per-facet policy gates can be applied without per-variant special cases.
type Facet uint8

const (
	// FacetChild is a plain structural child.
	FacetChild Facet = iota
	// FacetSpan is a type's span (a Range child).
	FacetSpan
	// FacetInnerType is the element type of a composite type.
	FacetInnerType
	// FacetDeclRange is the range constraint of a type declaration.
	FacetDeclRange
	// FacetInitialValue is the initial value of a data declaration.
	FacetInitialValue
	// FacetInstance is the referenced instance of a reference node.
	FacetInstance
	// FacetStringSpan is the span information of a String type.
	FacetStringSpan
	// FacetBody is the body of a subprogram or type declaration; skipped in
	// signature mode.
	FacetBody
	// FacetViewContents is the contents of a View; skipped when view
	// contents are excluded.
	FacetViewContents
)

// Slot is one entry of a variant's child-slot table: either a named singular
// field or a named owned list, in the variant's declared order. The table is
// what positional matching, matched insertion, equality recursion, copying
// and traversal walk instead of raw field offsets.
type Slot struct {
	Name  string
	Facet Facet

	get     func() Object
	set     func(Object) Object
	accepts func(Object) bool
	list    *listCore
}

// IsList reports whether the slot is an owned list rather than a singular
// field.
func (s Slot) IsList() bool { return s.list != nil }

// Get returns the singular slot's current child, nil when empty or when the
// slot is a list.
func (s Slot) Get() Object {
	if s.get == nil {
		return nil
	}
	return s.get()
}

// Accepts reports whether o's dynamic type is acceptable in this slot.
func (s Slot) Accepts(o Object) bool {
	if s.accepts != nil {
		return s.accepts(o)
	}
	if s.list != nil && s.list.accepts != nil {
		return s.list.accepts(o)
	}
	return false
}

// set installs o into a singular slot, returning the detached previous
// occupant; o==nil empties the slot.
func (s Slot) setObj(o Object) Object {
	if s.set == nil {
		return nil
	}
	return s.set(o)
}

func fieldSlot[T Object](owner Object, name string, f Facet, dst *T) Slot {
	return Slot{
		Name:  name,
		Facet: f,
		get:   func() Object { return objOrNil(*dst) },
		set: func(o Object) Object {
			var t T
			if o != nil {
				t = o.(T)
			}
			return objOrNil(setChild(owner, name, dst, t))
		},
		accepts: func(o Object) bool {
			_, ok := o.(T)
			return ok
		},
	}
}

func listSlot(f Facet, l *listCore) Slot {
	return Slot{Name: l.name, Facet: f, list: l}
}

// Slots returns o's child-slot table in declared order.
func Slots(o Object) []Slot { return o.slots() }

// ChildSelector is a structural position of a child relative to its parent:
// a singular field name, or a list name plus 1-based ordinal.
type ChildSelector struct {
	Slot    string
	IsList  bool
	Ordinal int // 1-based, lists only
}

// SelectorOf locates child inside parent's slot table. ok=false when child is
// not a direct structural child of parent (property values do not count).
func SelectorOf(parent, child Object) (ChildSelector, bool) {
	for _, s := range parent.slots() {
		if s.IsList() {
			pos := 1
			for e := s.list.head; e != nil; e = e.next {
				if e.obj == child {
					return ChildSelector{Slot: s.Name, IsList: true, Ordinal: pos}, true
				}
				pos++
			}
			continue
		}
		if s.Get() == child {
			return ChildSelector{Slot: s.Name}, true
		}
	}
	return ChildSelector{}, false
}

// SlotByName finds the named slot in o's table.
func SlotByName(o Object, name string) (Slot, bool) {
	for _, s := range o.slots() {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// Resolve applies the selector to candidate, yielding the child at the same
// structural position. ok=false when the slot does not exist or the ordinal
// is out of range.
func (sel ChildSelector) Resolve(candidate Object) (Object, bool) {
	s, found := SlotByName(candidate, sel.Slot)
	if !found || s.IsList() != sel.IsList {
		return nil, false
	}
	if !sel.IsList {
		c := s.Get()
		return c, c != nil
	}
	pos := 1
	for e := s.list.head; e != nil; e = e.next {
		if pos == sel.Ordinal {
			return e.obj, true
		}
		pos++
	}
	return nil, false
}
