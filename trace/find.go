// Package trace implements the decision-driven path enumerator on
// core.Graph. Find walks depth-first from a start node and consults a
// caller-supplied DecideFunc at every edge extension; the decision protocol
// (Stop / Continue / Include) is the only control the engine offers, which
// keeps every termination and filtering policy on the caller's side.
package trace

import (
	"fmt"

	"github.com/katalvlaran/latpath/core"
)

// walker holds the mutable state of one Find invocation: the scratch path,
// the simulated recursion stack, and the accumulated results. Nothing in it
// outlives the call.
type walker[K comparable] struct {
	graph  *core.Graph[K]
	decide DecideFunc[K]
	path   []K        // path[i] is the node at depth i; truncated on backtrack
	stack  []frame[K] // stack[i] is the iteration state at depth i
	out    []Trace[K]
}

// frame is one level of the simulated recursion: the outgoing edges of the
// node at this depth, the index of the next edge to examine, and the
// cumulative latency from the start node down to this depth.
type frame[K comparable] struct {
	nbs     []core.Neighbor[K]
	next    int
	latency int64
}

// Find enumerates paths from start, steered entirely by decide.
//
// The walk is depth-first in the graph's first-observed edge order: at each
// node, outgoing edges are examined in the order core.Graph.Neighbors
// reports them, and an extended branch is explored to exhaustion before the
// next sibling edge is examined. decide is consulted once per edge
// extension with the candidate trace that the extension would create:
//
//   - Stop: the candidate is discarded and the branch is pruned.
//   - Continue: the candidate is discarded but the walk extends past it.
//   - Include: the candidate is appended to the results and the walk
//     extends past it. Inclusion never ends exploration.
//
// Results arrive in discovery order, which the edge-order contract makes
// deterministic: two Find calls over one graph with equivalent decisions
// return identical sequences. Every returned Trace owns a freshly
// allocated Path.
//
// The engine imposes no depth, latency, or time bound of its own. The walk
// ends when every live branch has been pruned or has reached a node with no
// outgoing edges; on a cyclic graph a decide that never answers Stop keeps
// the walk alive forever, and preventing that is the caller's job. The
// recursion is simulated on an explicit frame stack, so deep walks consume
// heap instead of call stack.
//
// A start node absent from the graph has no outgoing edges: the result is
// empty and no error is returned. ErrGraphNil, ErrDecideNil, and
// ErrBadDecision report misuse; a panic inside decide propagates
// unmodified.
//
// Complexity: O(P·L) time and O(L + R) transient space, where P is the
// number of decided candidates, L the longest live path, and R the result
// count (each candidate copies its path, so per-candidate cost is O(L)).
func Find[K comparable](g *core.Graph[K], start K, decide DecideFunc[K]) ([]Trace[K], error) {
	// 1. Validate the input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Validate the decision function.
	if decide == nil {
		return nil, ErrDecideNil
	}

	// 3. Seed the walk at the start node and drain it.
	w := &walker[K]{graph: g, decide: decide}
	w.push(start, 0)
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// push descends one level to node id, reached with cumulative latency lat.
func (w *walker[K]) push(id K, lat int64) {
	w.path = append(w.path, id)
	w.stack = append(w.stack, frame[K]{nbs: w.graph.Neighbors(id), latency: lat})
}

// pop backtracks one level.
func (w *walker[K]) pop() {
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]
}

// run drains the stack depth-first. Each loop turn handles exactly one of:
// backtracking off an exhausted level, or deciding the next outgoing edge
// at the current level. Candidates are decided at the moment their edge is
// reached, never batched, so orderings and any state inside decide behave
// exactly as they would under direct recursion.
func (w *walker[K]) run() error {
	var (
		top  *frame[K]
		nb   core.Neighbor[K]
		cand Trace[K]
		d    Decision
	)
	for len(w.stack) > 0 {
		top = &w.stack[len(w.stack)-1]

		// Every edge at this depth handled: backtrack.
		if top.next == len(top.nbs) {
			w.pop()
			continue
		}

		nb = top.nbs[top.next]
		top.next++

		// The candidate rides a fresh path copy: decide may retain it, and
		// included candidates are handed to the caller as-is.
		cand = Trace[K]{Path: extend(w.path, nb.ID), Latency: top.latency + nb.Latency}

		d = w.decide(cand, w.path[len(w.path)-1], nb.ID)
		switch d {
		case Stop:
			// Branch pruned; the next turn takes the following sibling.
		case Include:
			w.out = append(w.out, cand)
			w.push(nb.ID, cand.Latency)
		case Continue:
			w.push(nb.ID, cand.Latency)
		default:
			return fmt.Errorf("%w: decide(%v→%v) returned %d", ErrBadDecision, cand.Path[len(cand.Path)-2], nb.ID, int8(d))
		}
	}

	return nil
}

// extend returns a fresh copy of path with next appended.
func extend[K comparable](path []K, next K) []K {
	out := make([]K, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}
