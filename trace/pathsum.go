// Package trace evaluates explicit paths and enumerates policy-selected
// paths over a core.Graph. This file holds the explicit-path evaluator.
package trace

import (
	"fmt"

	"github.com/katalvlaran/latpath/core"
)

// PathLatency returns the total latency of walking path through g.
//
// The path is an explicit node sequence supplied by the caller, so nothing
// guarantees that consecutive nodes are connected. A missing edge is the
// expected, routinely tested outcome: it is reported as ErrNoRoute wrapped
// with the offending pair and its 1-based hop index, and matched with
// errors.Is. Evaluation short-circuits on the first gap.
//
// A single-node path has latency 0 and consults no edges, whether or not
// the node occurs in the graph.
//
// Returns ErrGraphNil for a nil graph and ErrEmptyPath for an empty path.
//
// Complexity: O(len(path)) time, O(1) space.
func PathLatency[K comparable](g *core.Graph[K], path []K) (int64, error) {
	// 1. Validate the input graph.
	if g == nil {
		return 0, ErrGraphNil
	}

	// 2. Validate that the path names at least one node.
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	// 3. Sum the consecutive edge latencies, stopping at the first gap.
	var (
		total int64
		w     int64
		ok    bool
	)
	for i := 1; i < len(path); i++ {
		if w, ok = g.Latency(path[i-1], path[i]); !ok {
			return 0, fmt.Errorf("%w: no edge %v→%v at hop %d", ErrNoRoute, path[i-1], path[i], i)
		}
		total += w
	}

	return total, nil
}
