// Package core provides latpath's graph model: a generic, immutable,
// directed adjacency structure with deterministic enumeration order.
//
// What:
//
//   - Edge[K]: a one-way (From, To, Latency) connection; latency is a
//     non-negative integer, and at most one edge exists per ordered pair.
//   - Neighbor[K]: an adjacent node together with the latency reaching it.
//   - Graph[K]: built once by NewGraph from a list of edges, read-only
//     afterwards. Node identifiers are any comparable type K.
//
// Why:
//
//   - Every latpath query — explicit path sums and policy-driven path
//     enumeration — reads the same structure, so the model is kept free of
//     algorithm state and free of mutation.
//   - Immutability removes the need for locking: a built Graph may serve
//     any number of concurrent readers.
//
// Determinism:
//
//   - Neighbors(id) reports outgoing edges in the order they were first
//     observed at construction. Enumeration results elsewhere in latpath
//     inherit their ordering guarantees from this contract, so it is part
//     of the public API, not an implementation detail.
//   - Nodes() and Edges() are likewise first-observed ordered.
//
// Duplicate edges:
//
//   - A repeated (From, To) pair overwrites the latency (last write wins)
//     and keeps the neighbor's original position. Duplicates in input are
//     treated as an input-quality issue for the caller to avoid, not a
//     construction failure.
//
// Errors:
//
//   - ErrNegativeLatency — an edge with negative latency; construction is
//     rejected as a whole.
//
// Complexity:
//
//   - NewGraph: O(V+E) time and memory.
//   - Neighbors, Latency, HasNode, HasEdge, OutDegree: O(1).
//   - Nodes: O(V); Edges: O(V+E) (both return fresh slices).
package core
