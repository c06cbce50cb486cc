// Package policy: running-minimum pruning. Shortest is the one stateful
// policy in the kit, so unlike the constructors it is an explicit mutable
// object with a method-valued decision function.
package policy

import "github.com/katalvlaran/latpath/trace"

// Shortest tracks the cheapest trace landing on a target while a walk
// runs, pruning every branch that can no longer beat it. It is plain
// enumeration with a shrinking ceiling, not a shortest-path algorithm: the
// walk still visits every branch until the running minimum cuts it off.
//
// A tracker is the mutable context of exactly one Find call. Create a
// fresh one per call with NewShortest, pass its Decide method as the
// decision function, and read the winner with Best afterwards. Sharing a
// tracker across calls, or across goroutines, corrupts the minimum.
//
// Decide has no bar to prune against until the first candidate lands on
// the target, so on a cyclic graph it must run behind a terminating guard:
//
//	s := policy.NewShortest[string]("C")
//	res, err := trace.Find(g, "A", policy.Chain(policy.MaxVisits[string](2), s.Decide))
//	best, ok := s.Best()
type Shortest[K comparable] struct {
	target K
	best   trace.Trace[K]
	found  bool
}

// NewShortest returns a tracker for the cheapest walk from a start node
// onto target. One tracker serves one Find call.
func NewShortest[K comparable](target K) *Shortest[K] {
	return &Shortest[K]{target: target}
}

// Decide is the tracker's trace.DecideFunc.
//
// A branch whose latency has reached the current minimum is pruned:
// latencies are non-negative, so it cannot come back under the bar. A
// candidate landing on the target below the minimum is recorded and
// becomes the new bar. Includes therefore arrive in strictly improving
// order, ties keep the first-discovered trace, and the last include is the
// global minimum once the walk drains.
func (s *Shortest[K]) Decide(c trace.Trace[K], _, to K) trace.Decision {
	if s.found && c.Latency >= s.best.Latency {
		return trace.Stop
	}

	if to == s.target {
		s.best = c
		s.found = true

		return trace.Include
	}

	return trace.Continue
}

// Best returns the cheapest trace seen so far and whether any candidate
// has landed on the target yet.
func (s *Shortest[K]) Best() (trace.Trace[K], bool) {
	return s.best, s.found
}
