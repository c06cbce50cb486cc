// Package policy: composition primitives. Chain sequences whole decision
// functions; StopWhen and IncludeWhen lift plain predicates into decisions.
package policy

import "github.com/katalvlaran/latpath/trace"

// Predicate examines a candidate trace and the edge that produced it.
type Predicate[K comparable] func(candidate trace.Trace[K], from, to K) bool

// Chain composes decision functions into one: each candidate is offered to
// the functions in order, and the first answer other than Continue wins.
// When every function answers Continue (or the chain is empty), the chained
// decision is Continue. Nil entries are skipped.
//
// Order the functions from guard to goal: a terminating rule placed first
// (MaxHops, MaxVisits) prunes before a later rule can include, which is
// what keeps composed walks on cyclic graphs finite.
func Chain[K comparable](fns ...trace.DecideFunc[K]) trace.DecideFunc[K] {
	return func(c trace.Trace[K], from, to K) trace.Decision {
		var d trace.Decision
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if d = fn(c, from, to); d != trace.Continue {
				return d
			}
		}

		return trace.Continue
	}
}

// StopWhen prunes every candidate pred matches and lets the rest continue.
// A nil pred never prunes.
func StopWhen[K comparable](pred Predicate[K]) trace.DecideFunc[K] {
	return func(c trace.Trace[K], from, to K) trace.Decision {
		if pred != nil && pred(c, from, to) {
			return trace.Stop
		}

		return trace.Continue
	}
}

// IncludeWhen records every candidate pred matches and lets the rest
// continue. It never prunes, so compose it behind a terminating rule on
// cyclic graphs. A nil pred never includes.
func IncludeWhen[K comparable](pred Predicate[K]) trace.DecideFunc[K] {
	return func(c trace.Trace[K], from, to K) trace.Decision {
		if pred != nil && pred(c, from, to) {
			return trace.Include
		}

		return trace.Continue
	}
}
