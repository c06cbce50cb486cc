// Package policy provides ready-made decision functions for trace.Find:
// bounding rules, selection rules, predicate lifts, a running-minimum
// tracker, and the Chain combinator that composes them.
//
// What:
//
//   - Bounding rules, each a terminating guard for cyclic walks:
//     MaxHops (hop cap), MaxLatency (cost ceiling, safe because latencies
//     never decrease along a path), MaxVisits (per-node revisit cap).
//   - Selection rules: EndingAt includes candidates landing on a target;
//     IncludeWhen and StopWhen lift arbitrary predicates.
//   - WhileActive: prunes everything once a context is done, bounding a
//     query by deadline or cancellation from the caller's side.
//   - Shortest: a stateful running-minimum tracker whose Decide method
//     prunes branches that cannot beat the best trace seen so far.
//   - Chain: offers each candidate to a list of decision functions in
//     order; the first answer other than Continue wins.
//
// Why:
//
//   - The enumeration engine deliberately has no built-in bounds, filters,
//     or shortest-path mode; every such behavior is a decision function.
//     This package keeps the common ones from being rewritten per call
//     site, and Chain makes them compose: a guard first, then selection.
//
// Usage:
//
//	// Round trips from C onto C within three hops.
//	trace.Find(g, "C", policy.Chain(policy.MaxHops[string](3), policy.EndingAt("C")))
//
//	// Cheapest route from A onto C, with a revisit guard for cycles.
//	s := policy.NewShortest[string]("C")
//	trace.Find(g, "A", policy.Chain(policy.MaxVisits[string](2), s.Decide))
//
// Constructors normalize senseless parameters instead of failing: a
// negative MaxHops or MaxVisits limit acts as 0 (prune everything), a
// negative MaxLatency ceiling acts as 0, and a nil context or predicate
// acts as "never". Every returned decision function is total.
//
// State:
//
//   - All constructors except NewShortest return stateless functions, safe
//     to reuse and share. A Shortest tracker is the explicit mutable state
//     of one Find call: fresh tracker per call, never shared.
//
// Complexity:
//
//   - Every rule is O(1) per candidate except MaxVisits, which scans the
//     candidate path, O(len(path)).
package policy
