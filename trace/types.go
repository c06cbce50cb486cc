// Package trace defines the Trace result type, the three-way Decision
// protocol, and the sentinel errors shared by the path evaluator and the
// enumeration engine. The algorithms live in pathsum.go and find.go.
package trace

import (
	"errors"
	"fmt"
)

// Sentinel errors for path evaluation and enumeration.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Find or
	// PathLatency.
	ErrGraphNil = errors.New("trace: graph is nil")

	// ErrDecideNil is returned by Find when the decision function is nil.
	// Every walk needs a policy: a walk with no decisions never ends on a
	// cyclic graph and never includes anything on an acyclic one.
	ErrDecideNil = errors.New("trace: decision function is nil")

	// ErrBadDecision is returned by Find when a decision function yields a
	// value other than Stop, Continue, or Include. Decision functions must
	// be total; the walk aborts rather than guess.
	ErrBadDecision = errors.New("trace: unknown decision value")

	// ErrEmptyPath is returned by PathLatency for a zero-length path.
	// An explicit path must name at least one node.
	ErrEmptyPath = errors.New("trace: path is empty")

	// ErrNoRoute reports that an explicit path steps over an edge the
	// graph does not have. A gap is an expected outcome, not a failure;
	// branch on it with errors.Is.
	ErrNoRoute = errors.New("trace: no route")
)

// Decision tells Find what to do with a candidate trace. The values mirror
// the conventional -1/0/+1 encoding, but only the three named constants are
// part of the contract: Find rejects anything else with ErrBadDecision.
type Decision int8

const (
	// Stop prunes the branch: the candidate is not recorded and the walk
	// never extends past it.
	Stop Decision = iota - 1

	// Continue skips the candidate but keeps exploring beyond it.
	Continue

	// Include records the candidate in the result set and, like Continue,
	// keeps exploring beyond it.
	Include
)

// String returns the constant name, or "Decision(n)" for an unknown value.
func (d Decision) String() string {
	switch d {
	case Stop:
		return "Stop"
	case Continue:
		return "Continue"
	case Include:
		return "Include"
	default:
		return fmt.Sprintf("Decision(%d)", int8(d))
	}
}

// DecideFunc is the caller-supplied policy consulted once per edge
// extension. candidate is the trace that would exist after following the
// edge from→to, so candidate always ends at to. Its Path is a fresh slice
// the function may retain.
//
// A DecideFunc must be total (always return Stop, Continue, or Include)
// and must not mutate the graph. State captured by the function (a running
// minimum, a counter) is scoped to a single Find call and must not be
// shared across calls. A panic inside a DecideFunc propagates to the Find
// caller unmodified.
type DecideFunc[K comparable] func(candidate Trace[K], from, to K) Decision

// Trace is one walked path: the node sequence from the start of the walk
// and the total latency along it. A Trace handed to a DecideFunc or
// returned by Find owns its Path slice; mutating one never affects the
// engine or any other Trace.
type Trace[K comparable] struct {
	// Path holds the node identifiers in walk order, start node first.
	Path []K

	// Latency is the sum of the edge latencies along Path.
	Latency int64
}

// Hops returns the number of edges in the trace, one less than the number
// of nodes.
func (t Trace[K]) Hops() int {
	return len(t.Path) - 1
}

// End returns the last node of the trace. It panics on an empty Path;
// traces produced by this package always hold at least two nodes.
func (t Trace[K]) End() K {
	return t.Path[len(t.Path)-1]
}
