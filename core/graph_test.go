package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latpath/core"
)

// referenceEdges is the nine-edge network shared across latpath tests:
//
//	A→B:5, A→D:5, A→E:7, B→C:4, C→D:8, C→E:2, D→C:8, D→E:6, E→B:3
func referenceEdges() []core.Edge[string] {
	return []core.Edge[string]{
		{From: "A", To: "B", Latency: 5},
		{From: "A", To: "D", Latency: 5},
		{From: "A", To: "E", Latency: 7},
		{From: "B", To: "C", Latency: 4},
		{From: "C", To: "D", Latency: 8},
		{From: "C", To: "E", Latency: 2},
		{From: "D", To: "C", Latency: 8},
		{From: "D", To: "E", Latency: 6},
		{From: "E", To: "B", Latency: 3},
	}
}

func TestNewGraph_ReferenceAdjacency(t *testing.T) {
	g, err := core.NewGraph(referenceEdges()...)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 9, g.EdgeCount())

	// Each node's neighbors arrive in first-observed edge order.
	assert.Equal(t, []core.Neighbor[string]{
		{ID: "B", Latency: 5},
		{ID: "D", Latency: 5},
		{ID: "E", Latency: 7},
	}, g.Neighbors("A"))
	assert.Equal(t, []core.Neighbor[string]{{ID: "C", Latency: 4}}, g.Neighbors("B"))
	assert.Equal(t, []core.Neighbor[string]{
		{ID: "D", Latency: 8},
		{ID: "E", Latency: 2},
	}, g.Neighbors("C"))
	assert.Equal(t, []core.Neighbor[string]{
		{ID: "C", Latency: 8},
		{ID: "E", Latency: 6},
	}, g.Neighbors("D"))
	assert.Equal(t, []core.Neighbor[string]{{ID: "B", Latency: 3}}, g.Neighbors("E"))

	lat, ok := g.Latency("C", "E")
	assert.True(t, ok)
	assert.Equal(t, int64(2), lat)

	// E→D was never declared; the reverse direction does not imply it.
	_, ok = g.Latency("E", "D")
	assert.False(t, ok)
	assert.True(t, g.HasEdge("D", "E"))
	assert.False(t, g.HasEdge("E", "D"))

	assert.True(t, g.HasNode("C"))
	assert.False(t, g.HasNode("Z"))
}

func TestGraph_NodesFirstObservedOrder(t *testing.T) {
	g, err := core.NewGraph(referenceEdges()...)
	require.NoError(t, err)

	// Scanning From before To per edge: A,B then D, E, and finally C.
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, g.Nodes())
}

func TestGraph_EdgesDeterministicOrder(t *testing.T) {
	g, err := core.NewGraph(referenceEdges()...)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Latency: 5},
		{From: "A", To: "D", Latency: 5},
		{From: "A", To: "E", Latency: 7},
		{From: "B", To: "C", Latency: 4},
		{From: "D", To: "C", Latency: 8},
		{From: "D", To: "E", Latency: 6},
		{From: "E", To: "B", Latency: 3},
		{From: "C", To: "D", Latency: 8},
		{From: "C", To: "E", Latency: 2},
	}, g.Edges())
}

func TestNewGraph_NegativeLatencyRejected(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge[string]{From: "A", To: "B", Latency: 4},
		core.Edge[string]{From: "X", To: "Y", Latency: -3},
	)
	assert.ErrorIs(t, err, core.ErrNegativeLatency)
	assert.ErrorContains(t, err, "X→Y latency=-3")
	assert.Nil(t, g)
}

func TestNewGraph_DuplicateEdgeLastWins(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge[string]{From: "A", To: "B", Latency: 5},
		core.Edge[string]{From: "A", To: "C", Latency: 1},
		core.Edge[string]{From: "A", To: "B", Latency: 9},
	)
	require.NoError(t, err)

	// The latency is overwritten, the neighbor keeps its original slot.
	assert.Equal(t, []core.Neighbor[string]{
		{ID: "B", Latency: 9},
		{ID: "C", Latency: 1},
	}, g.Neighbors("A"))
	assert.Equal(t, 2, g.EdgeCount())

	lat, ok := g.Latency("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(9), lat)
}

func TestGraph_UnknownAndSinkNodes(t *testing.T) {
	g, err := core.NewGraph(core.Edge[string]{From: "A", To: "B", Latency: 1})
	require.NoError(t, err)

	// B exists only as a destination; it has no outgoing edges.
	assert.True(t, g.HasNode("B"))
	assert.Empty(t, g.Neighbors("B"))
	assert.Zero(t, g.OutDegree("B"))

	assert.False(t, g.HasNode("Z"))
	assert.Empty(t, g.Neighbors("Z"))
	assert.Zero(t, g.OutDegree("Z"))
}

func TestGraph_ZeroValueIsEmpty(t *testing.T) {
	var g core.Graph[string]

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasNode("A"))

	_, ok := g.Latency("A", "B")
	assert.False(t, ok)
}

func TestNewGraph_NoEdges(t *testing.T) {
	g, err := core.NewGraph[string]()
	require.NoError(t, err)

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestNewGraph_ZeroLatencyAllowed(t *testing.T) {
	g, err := core.NewGraph(core.Edge[string]{From: "A", To: "B", Latency: 0})
	require.NoError(t, err)

	lat, ok := g.Latency("A", "B")
	assert.True(t, ok)
	assert.Zero(t, lat)
}

func TestNewGraph_SelfLoop(t *testing.T) {
	g, err := core.NewGraph(core.Edge[string]{From: "A", To: "A", Latency: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasEdge("A", "A"))
	assert.Equal(t, []core.Neighbor[string]{{ID: "A", Latency: 2}}, g.Neighbors("A"))
}

func TestNewGraph_IntIdentifiers(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge[int]{From: 1, To: 2, Latency: 10},
		core.Edge[int]{From: 2, To: 3, Latency: 5},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, g.Nodes())
	assert.Equal(t, []core.Neighbor[int]{{ID: 2, Latency: 10}}, g.Neighbors(1))
}

func TestGraph_NodesReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(core.Edge[string]{From: "A", To: "B", Latency: 1})
	require.NoError(t, err)

	nodes := g.Nodes()
	nodes[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, g.Nodes())
}
