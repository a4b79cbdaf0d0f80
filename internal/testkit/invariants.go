// Package testkit holds invariant checks shared by the package tests and the
// selfcheck command.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"hif/internal/hif"
)

// MaxTreeNodes bounds the subtree size the checker accepts before declaring
// the tree degenerate.
const MaxTreeNodes = 1 << 20

// CheckOwnershipInvariants verifies the ownership wiring of root's subtree:
// 1) every node is owned exactly once
// 2) every non-root node's parent back-pointer names a real slot of the
// parent, and replaying that slot selector yields the node again
// 3) a node's list membership flag and owner-field name agree with the slot
// it actually occupies
func CheckOwnershipInvariants(root hif.Object) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}

	count := hif.CountNodes(root)
	if _, err := safecast.Conv[uint32](count); err != nil {
		return fmt.Errorf("node count overflow: %w", err)
	}
	if count > MaxTreeNodes {
		return fmt.Errorf("tree too large: %d nodes", count)
	}

	seen := make(map[hif.Object]struct{}, count)
	var firstErr error
	hif.Visit(root, func(n hif.Object) bool {
		if firstErr != nil {
			return false
		}
		if _, dup := seen[n]; dup {
			firstErr = fmt.Errorf("%s owned more than once", n.Class())
			return false
		}
		seen[n] = struct{}{}

		if n == root {
			return true
		}
		p := n.Parent()
		if p == nil {
			firstErr = fmt.Errorf("%s reachable but has no parent", n.Class())
			return false
		}
		sel, ok := hif.SelectorOf(p, n)
		if !ok {
			firstErr = fmt.Errorf("%s not found in any slot of its parent %s", n.Class(), p.Class())
			return false
		}
		back, ok := sel.Resolve(p)
		if !ok || back != n {
			firstErr = fmt.Errorf("selector %q of %s does not resolve back to the %s child",
				sel.Slot, p.Class(), n.Class())
			return false
		}
		if n.InBList() != sel.IsList {
			firstErr = fmt.Errorf("%s list membership flag disagrees with slot %q", n.Class(), sel.Slot)
			return false
		}
		if field, has := n.OwnerField(); !has || field != sel.Slot {
			firstErr = fmt.Errorf("%s owner field %q, expected %q", n.Class(), field, sel.Slot)
			return false
		}
		return true
	})
	return firstErr
}

// CheckDetached verifies that o looks freshly detached: alive, no parent, no
// list membership.
func CheckDetached(o hif.Object) error {
	if o == nil {
		return fmt.Errorf("nil node")
	}
	if o.Parent() != nil {
		return fmt.Errorf("%s still has a parent", o.Class())
	}
	if o.InBList() {
		return fmt.Errorf("%s still occupies a list slot", o.Class())
	}
	if field, has := o.OwnerField(); has {
		return fmt.Errorf("%s still owned through field %q", o.Class(), field)
	}
	return nil
}
