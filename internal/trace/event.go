package trace

import (
	"sync/atomic"
	"time"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a tree operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a tree operation.
	KindSpanEnd
	// KindPoint represents an instant event, such as a comparison verdict.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeOp covers whole tree operations: an equality run, a structural
	// match, a deep copy.
	ScopeOp Scope = iota + 1
	// ScopeNode covers per-node detail inside an operation, such as the
	// node pair at which a comparison diverged.
	ScopeNode
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeOp:
		return "op"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time   time.Time         // wall-clock timestamp
	Seq    uint64            // global sequence number (monotonic)
	Kind   Kind              // event kind
	Scope  Scope             // granularity level
	Name   string            // e.g., "equals", "match", "copy"
	Detail string            // optional detail message
	Extra  map[string]string // extensible key-value pairs
}

var seqCounter atomic.Uint64

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return seqCounter.Add(1)
}

// Point emits an instant event to t, filling in time and sequencing. It is
// the convenience path used by the tree operations; a nil or disabled tracer
// is a no-op.
func Point(t Tracer, scope Scope, name, detail string) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(&Event{
		Time:   time.Now(),
		Kind:   KindPoint,
		Scope:  scope,
		Name:   name,
		Detail: detail,
	})
}
