// Package core defines the Edge, Neighbor, and Graph types shared by every
// latpath query. This file declares the value types and sentinel errors;
// the Graph itself lives in graph.go.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeLatency indicates an edge carried a negative latency.
	// Latencies are non-negative by contract; construction is rejected
	// as a whole, never partially applied.
	ErrNegativeLatency = errors.New("core: negative edge latency")
)

// Edge is a one-way connection between two nodes.
//
// From and To may be any comparable identifier type; equality is by value.
// Latency is the cost of traversing the edge, a non-negative integer.
// At most one edge exists per ordered (From, To) pair: the model is a
// simple directed graph, not a multigraph.
type Edge[K comparable] struct {
	// From is the source node identifier.
	From K

	// To is the destination node identifier.
	To K

	// Latency is the traversal cost of this edge. Never negative.
	Latency int64
}

// Neighbor pairs an adjacent node with the latency of the edge leading
// to it. Slices of Neighbor returned by Graph.Neighbors preserve the
// order in which edges were first observed at construction.
type Neighbor[K comparable] struct {
	// ID is the destination node identifier.
	ID K

	// Latency is the cost of the edge reaching ID.
	Latency int64
}
