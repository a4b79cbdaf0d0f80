package hif

import "fmt"

// ContractViolation reports a broken API precondition: inserting a nil or
// already-owned node, dereferencing an end iterator, operating on a destroyed
// node. It is delivered via panic and is not meant to be recovered at the
// call site; it is raised before any mutation, so the tree is never observed
// half-changed.
type ContractViolation struct {
	Op     string // operation that was attempted, e.g. "BList.PushBack"
	Where  string // list or field identity, e.g. "If.alts"
	Reason string
}

func (e *ContractViolation) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("hif: contract violation in %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("hif: contract violation in %s (%s): %s", e.Op, e.Where, e.Reason)
}

func violate(op, where, reason string) {
	panic(&ContractViolation{Op: op, Where: where, Reason: reason})
}

func mustAlive(op string, o Object) {
	if o != nil && o.impl().dead {
		violate(op, "", "use of destroyed node "+o.Class().String())
	}
}
