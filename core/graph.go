// Package core implements the immutable adjacency structure behind latpath.
// A Graph is built exactly once from a list of edges and is read-only from
// then on, so it may be shared freely across goroutines without locks.
package core

import "fmt"

// Graph is an immutable directed graph with non-negative edge latencies.
//
// Two structures are kept in sync at construction time:
//
//   - latency[from][to] for O(1) edge lookups, and
//   - neighbors[from], an ordered Neighbor slice recording the sequence in
//     which each node's outgoing edges were first observed.
//
// Go maps do not preserve insertion order, and deterministic enumeration
// is part of this package's contract: every traversal over a given Graph
// must see neighbors in the same, first-observed order on every call.
//
// The zero value is an empty graph; use NewGraph to build a populated one.
type Graph[K comparable] struct {
	latency   map[K]map[K]int64 // from → to → latency
	neighbors map[K][]Neighbor[K]
	nodes     []K            // every node in first-observed order
	present   map[K]struct{} // node membership, including sink nodes
	edgeCount int
}

// NewGraph builds an immutable Graph from the given edges.
//
// Nodes are registered in first-observed order, scanning each edge's From
// before its To. A duplicate (From, To) pair overwrites the stored latency
// ("last write wins") but keeps the neighbor's original position, so the
// enumeration order of an input with duplicates matches the order of its
// first occurrences. Duplicates are an input-quality concern for callers;
// the constructor does not reject them.
//
// Returns ErrNegativeLatency (wrapped with the offending edge) if any edge
// carries a negative latency. Construction is all-or-nothing: no partially
// built graph is ever returned.
//
// Complexity: O(V + E) time and space.
func NewGraph[K comparable](edges ...Edge[K]) (*Graph[K], error) {
	g := &Graph[K]{
		latency:   make(map[K]map[K]int64, len(edges)),
		neighbors: make(map[K][]Neighbor[K], len(edges)),
		present:   make(map[K]struct{}, len(edges)),
	}

	var e Edge[K]
	for _, e = range edges {
		if e.Latency < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v latency=%d", ErrNegativeLatency, e.From, e.To, e.Latency)
		}
		g.addNode(e.From)
		g.addNode(e.To)
		g.addEdge(e)
	}

	return g, nil
}

// addNode registers id in the node index on first sight.
func (g *Graph[K]) addNode(id K) {
	if _, ok := g.present[id]; ok {
		return
	}
	g.present[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// addEdge records e in both the lookup map and the ordered neighbor slice.
// Called only during construction.
func (g *Graph[K]) addEdge(e Edge[K]) {
	row := g.latency[e.From]
	if row == nil {
		row = make(map[K]int64)
		g.latency[e.From] = row
	}

	if _, dup := row[e.To]; dup {
		// Last write wins; the neighbor keeps its original slot.
		row[e.To] = e.Latency
		nbs := g.neighbors[e.From]
		for i := range nbs {
			if nbs[i].ID == e.To {
				nbs[i].Latency = e.Latency
				break
			}
		}

		return
	}

	row[e.To] = e.Latency
	g.neighbors[e.From] = append(g.neighbors[e.From], Neighbor[K]{ID: e.To, Latency: e.Latency})
	g.edgeCount++
}

// Neighbors returns the outgoing edges of id in first-observed order.
//
// Unknown and childless nodes both yield a zero-length slice; Neighbors
// never fails. The returned slice is shared with the Graph and must be
// treated as read-only.
//
// Complexity: O(1).
func (g *Graph[K]) Neighbors(id K) []Neighbor[K] {
	return g.neighbors[id]
}

// Latency reports the latency of the edge from→to. The boolean is false
// when no such edge exists — an expected outcome, not an error.
//
// Complexity: O(1).
func (g *Graph[K]) Latency(from, to K) (int64, bool) {
	w, ok := g.latency[from][to]

	return w, ok
}

// HasNode reports whether id occurs anywhere in the graph, as a source or
// as a destination.
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.present[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	_, ok := g.latency[from][to]

	return ok
}

// Nodes returns every node identifier in first-observed order.
// The slice is a fresh copy, safe for the caller to retain or reorder.
//
// Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns every edge in deterministic order: nodes in first-observed
// order, each node's outgoing edges in first-observed order. The slice is
// freshly allocated on every call.
//
// Complexity: O(V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edgeCount)
	var from K
	var nb Neighbor[K]
	for _, from = range g.nodes {
		for _, nb = range g.neighbors[from] {
			out = append(out, Edge[K]{From: from, To: nb.ID, Latency: nb.Latency})
		}
	}

	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph[K]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct (From, To) pairs.
func (g *Graph[K]) EdgeCount() int {
	return g.edgeCount
}

// OutDegree returns the number of outgoing edges of id; zero for unknown
// or childless nodes.
func (g *Graph[K]) OutDegree(id K) int {
	return len(g.neighbors[id])
}
