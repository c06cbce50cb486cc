// Package latpath answers latency questions about small directed graphs:
// how long an explicit route takes, and which routes between two nodes
// satisfy a policy you choose.
//
// 🚀 What is latpath?
//
//	A small, immutable, in-memory graph-query library built around one idea:
//		• Core model: a read-only adjacency structure with deterministic,
//		  insertion-ordered enumeration
//		• Path sums: total latency of an explicit node sequence, with
//		  "no such route" as an ordinary result value
//		• Path enumeration: a depth-first walk steered entirely by a
//		  caller-supplied Stop/Continue/Include decision function
//		• Policies: ready-made decisions — hop caps, latency ceilings,
//		  cycle guards, running-minimum pruning — composable with Chain
//
// ✨ Why choose latpath?
//
//   - One engine, any query – termination and filtering live in your
//     decision function, never in the traversal
//   - Deterministic – results arrive in first-observed edge order, every run
//   - Immutable – a built Graph is safe for any number of concurrent readers
//   - Generic – node identifiers are any comparable type, not just strings
//
// Everything is organized under four subpackages:
//
//	core/     — generic Graph, Edge, Neighbor types; built once, read forever
//	trace/    — PathLatency evaluator and the Find enumeration engine
//	policy/   — decision-function building blocks and combinators
//	edgelist/ — "AB5, BC4, …" record parsing into a core.Graph
//
// Quick ASCII example:
//
//	    A──5──B
//	    │     │
//	    5     4
//	    │     │
//	    D──8──C
//
//	four services, four links, every arrow one-way; ask for every route
//	A→C under a latency ceiling, or the cheapest one, with the same engine.
//
// The engine never bounds a walk on its own: on cyclic graphs your decision
// function is the only brake. See trace.Find and the policy package.
//
//	go get github.com/katalvlaran/latpath
package latpath
