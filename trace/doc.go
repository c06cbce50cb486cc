// Package trace answers the two path questions latpath exists for: what an
// explicit route costs, and which routes a caller-defined policy selects.
//
// What:
//
//   - PathLatency(g, path): the total latency of an explicit node sequence.
//     A gap between consecutive nodes is reported as ErrNoRoute, an expected
//     outcome the caller branches on with errors.Is.
//   - Find(g, start, decide): depth-first enumeration of paths out of start.
//     The caller's DecideFunc inspects every candidate extension and answers
//     Stop (prune the branch), Continue (extend without recording), or
//     Include (record and extend).
//   - Trace: one result, a node path plus its cumulative latency, with the
//     Hops and End helpers.
//
// Why:
//
//   - One traversal serves every query. Hop caps, latency ceilings, cycle
//     guards, and running-minimum pruning are all expressible as decision
//     functions, so none of them needs engine support. The policy package
//     ships ready-made builders for the common ones.
//   - Termination stays a caller concern on purpose: the engine has no
//     depth, cost, or time governor, and a decide that never answers Stop
//     on a cyclic graph walks forever. Bound cyclic walks with a decision
//     rule (for example policy.MaxHops or policy.MaxVisits).
//
// Determinism:
//
//   - Candidates are generated in the graph's first-observed edge order and
//     results arrive in discovery order, so repeated calls with equivalent
//     decisions return identical sequences.
//   - The walk runs on an explicit frame stack but decides each candidate
//     at the moment its edge is reached, matching direct recursion turn for
//     turn. Long walks consume heap, not goroutine stack.
//
// Concurrency:
//
//   - A Find call's state (scratch path, frame stack, result slice) is
//     private to the call; the graph is read-only. Concurrent Find calls
//     over one graph are safe as long as they do not share a stateful
//     decision function.
//
// Complexity:
//
//   - PathLatency: O(len(path)).
//   - Find: O(P·L) time for P decided candidates and longest live path L;
//     each candidate carries a fresh O(L) path copy.
//
// Errors:
//
//   - ErrGraphNil    nil graph (Find, PathLatency)
//   - ErrDecideNil   nil decision function (Find)
//   - ErrBadDecision decision outside Stop/Continue/Include (Find)
//   - ErrEmptyPath   zero-length explicit path (PathLatency)
//   - ErrNoRoute     explicit path steps over a missing edge (PathLatency)
//
// An unknown start node is not an error: it has no outgoing edges, so Find
// returns an empty result.
package trace
