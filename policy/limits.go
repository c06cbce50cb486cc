// Package policy: bounding and selection rules. Each constructor returns a
// plain trace.DecideFunc, so these compose with hand-written decisions via
// Chain exactly like with each other.
package policy

import (
	"context"

	"github.com/katalvlaran/latpath/trace"
)

// MaxHops prunes every candidate longer than limit hops. On any graph it
// bounds walk depth to limit edges, which makes it the simplest terminating
// guard for cyclic walks. A negative limit is treated as 0, which prunes
// all candidates (the shortest candidate has one hop).
func MaxHops[K comparable](limit int) trace.DecideFunc[K] {
	if limit < 0 {
		limit = 0
	}

	return func(c trace.Trace[K], _, _ K) trace.Decision {
		if c.Hops() > limit {
			return trace.Stop
		}

		return trace.Continue
	}
}

// MaxLatency prunes every candidate whose cumulative latency exceeds max.
// Edge latencies are non-negative, so no descendant of a pruned candidate
// could come back under the ceiling: the cut loses no results. The ceiling
// alone does not terminate walks that ride zero-latency cycles; compose
// with MaxHops or MaxVisits when the graph may have them. A negative max is
// treated as 0.
func MaxLatency[K comparable](max int64) trace.DecideFunc[K] {
	if max < 0 {
		max = 0
	}

	return func(c trace.Trace[K], _, _ K) trace.Decision {
		if c.Latency > max {
			return trace.Stop
		}

		return trace.Continue
	}
}

// MaxVisits prunes a candidate when its end node occurs more than limit
// times in its path. With limit ≥ 1 every walk on a finite graph stays
// finite, since no path can grow past limit times the node count. Limit 1
// restricts the walk to simple paths; round trips need limit 2, because
// closing a cycle lands on a node the path already holds. A limit below 1
// prunes every candidate, because the end node always occurs at least once.
func MaxVisits[K comparable](limit int) trace.DecideFunc[K] {
	if limit < 0 {
		limit = 0
	}

	return func(c trace.Trace[K], _, to K) trace.Decision {
		seen := 0
		var id K
		for _, id = range c.Path {
			if id == to {
				seen++
			}
		}
		if seen > limit {
			return trace.Stop
		}

		return trace.Continue
	}
}

// EndingAt records every candidate landing on target and lets all others
// continue. It never prunes: alone it walks cyclic graphs forever, so
// compose it behind a terminating rule such as MaxHops or MaxLatency.
func EndingAt[K comparable](target K) trace.DecideFunc[K] {
	return func(_ trace.Trace[K], _, to K) trace.Decision {
		if to == target {
			return trace.Include
		}

		return trace.Continue
	}
}

// WhileActive prunes every candidate once ctx is done, draining the walk
// promptly. The engine itself never watches a clock or a context; placing
// this rule first in a Chain is the caller-side way to bound a query by
// deadline or cancellation. A nil ctx is treated as context.Background.
func WhileActive[K comparable](ctx context.Context) trace.DecideFunc[K] {
	if ctx == nil {
		ctx = context.Background()
	}

	return func(_ trace.Trace[K], _, _ K) trace.Decision {
		select {
		case <-ctx.Done():
			return trace.Stop
		default:
			return trace.Continue
		}
	}
}
