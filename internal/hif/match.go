package hif

// MatchOptions controls positional matching between two isomorphic trees.
type MatchOptions struct {
	// SkipReferences unwraps a Reference wrapper on either root when only
	// one side is wrapped.
	SkipReferences bool
	// MatchStructure relaxes failed steps the way the equality engine
	// aliases variants: the walk steps transparently through Cast and
	// Reference wrappers on the candidate side before giving up. Span
	// slots of Signed, Unsigned and Bitvector already resolve
	// interchangeably because the three variants share the slot name.
	MatchStructure bool
}

// MatchObject locates, inside matchedTree, the node standing at the same
// structural position that pattern occupies inside refTree. The position is
// purely positional: a chain of field names and 1-based list ordinals, never
// content. pattern must be a descendant of refTree and matchedTree must be
// structurally aligned with refTree, typically a deep copy or a fresh
// specialization. ok=false when pattern does not hang under refTree or the
// path cannot be replayed on matchedTree.
func MatchObject(pattern, refTree, matchedTree Object, opt MatchOptions) (Object, bool) {
	if pattern == nil || refTree == nil || matchedTree == nil {
		return nil, false
	}
	mustAlive("MatchObject", pattern)
	mustAlive("MatchObject", matchedTree)

	// Ancestor chain, top down: chain[0] is refTree, the last element is
	// pattern itself.
	var chain []Object
	for n := pattern; n != nil; n = n.Parent() {
		chain = append(chain, n)
		if n == refTree {
			break
		}
	}
	if chain[len(chain)-1] != refTree {
		return nil, false
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	candidate := matchedTree
	if opt.SkipReferences {
		rr, refWrapped := chain[0].(*Reference)
		mr, matchWrapped := candidate.(*Reference)
		switch {
		case refWrapped && !matchWrapped && len(chain) > 1:
			if inner := rr.BaseType(); !isNilObj(inner) && Object(inner) == chain[1] {
				chain = chain[1:]
			}
		case matchWrapped && !refWrapped:
			inner := mr.BaseType()
			if isNilObj(inner) {
				return nil, false
			}
			candidate = inner
		}
	}

	for i := 0; i+1 < len(chain); i++ {
		sel, ok := SelectorOf(chain[i], chain[i+1])
		if !ok {
			return nil, false
		}
		next, ok := sel.Resolve(candidate)
		if !ok && opt.MatchStructure {
			next, ok = resolveRelaxed(sel, candidate)
		}
		if !ok {
			return nil, false
		}
		candidate = next
	}
	return candidate, true
}

// resolveRelaxed retries the selector after stepping through wrapper nodes
// the equality engine also treats as transparent.
func resolveRelaxed(sel ChildSelector, candidate Object) (Object, bool) {
	for depth := 0; depth < 8; depth++ {
		switch c := candidate.(type) {
		case *Cast:
			candidate = objOrNil(c.Op())
		case *Reference:
			candidate = objOrNil(c.BaseType())
		default:
			return nil, false
		}
		if candidate == nil {
			return nil, false
		}
		if next, ok := sel.Resolve(candidate); ok {
			return next, true
		}
	}
	return nil, false
}

// InsertPolicy selects what MatchedInsert does when the mirrored slot is
// already occupied.
type InsertPolicy uint8

const (
	// DeleteIfOccupied destroys the current occupant and installs the new
	// node in its place.
	DeleteIfOccupied InsertPolicy = iota
	// ErrorIfOccupied refuses the insertion and leaves both trees
	// untouched, so the caller can place the node elsewhere.
	ErrorIfOccupied
	// ExpandIfNeeded inserts into a list at the mirrored ordinal without
	// replacing anything; on a singular slot it behaves like
	// ErrorIfOccupied.
	ExpandIfNeeded
	// Overwrite installs the new node and leaves the previous occupant
	// detached and alive.
	Overwrite
)

// MatchedInsert installs newObj into newParent at the slot mirroring where
// oldObj sits under oldParent: the same field name, or the same list name
// and ordinal. newObj must be alive and unowned. Reports whether the
// insertion happened; a missing mirrored slot or a type-incompatible newObj
// refuses without mutating anything.
func MatchedInsert(newObj, newParent, oldObj, oldParent Object, policy InsertPolicy) bool {
	if newObj == nil || newParent == nil || oldObj == nil || oldParent == nil {
		return false
	}
	sel, ok := SelectorOf(oldParent, oldObj)
	if !ok {
		return false
	}
	s, ok := SlotByName(newParent, sel.Slot)
	if !ok || s.IsList() != sel.IsList || !s.Accepts(newObj) {
		return false
	}

	if sel.IsList {
		pos := sel.Ordinal - 1
		switch policy {
		case ErrorIfOccupied:
			if pos < s.list.size {
				return false
			}
			s.list.insertObjAt(pos, newObj, true)
		case ExpandIfNeeded:
			s.list.insertObjAt(pos, newObj, true)
		case DeleteIfOccupied:
			if old := s.list.insertObjAt(pos, newObj, false); old != nil {
				Destroy(old)
			}
		case Overwrite:
			s.list.insertObjAt(pos, newObj, false)
		}
		return true
	}

	if prev := s.Get(); prev != nil && (policy == ErrorIfOccupied || policy == ExpandIfNeeded) {
		return false
	}
	old := s.setObj(newObj)
	if old != nil && policy == DeleteIfOccupied {
		Destroy(old)
	}
	return true
}
