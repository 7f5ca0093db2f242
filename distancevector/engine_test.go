package distancevector_test

import (
	"testing"

	"github.com/eomielan/routing-protocols/distancevector"
	"github.com/eomielan/routing-protocols/routegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCanonicalFiveNode constructs the five-node topology of spec §8
// through the engine's own lifecycle calls, mirroring how the
// simulation driver builds a graph from a topology stream.
func buildCanonicalFiveNode(t *testing.T) *distancevector.Engine {
	t.Helper()
	g := routegraph.NewGraph()
	e := distancevector.New(g)

	lines := [][3]int{{1, 2, 8}, {2, 3, 3}, {2, 5, 4}, {4, 1, 1}, {4, 5, 1}}
	for _, l := range lines {
		a, b, cost := routegraph.NodeID(l[0]), routegraph.NodeID(l[1]), l[2]
		e.AddNode(a)
		e.AddNode(b)
		require.True(t, e.AddEdge(a, b, cost))
	}

	return e
}

func TestForwardingTableFromNode1(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	got := e.ForwardingTable(1)
	want := []routegraph.ForwardingEntry{
		{Dest: 1, NextHop: 1, Cost: 0},
		{Dest: 2, NextHop: 4, Cost: 6},
		{Dest: 3, NextHop: 4, Cost: 9},
		{Dest: 4, NextHop: 4, Cost: 1},
		{Dest: 5, NextHop: 4, Cost: 2},
	}
	assert.Equal(t, want, got)
}

func TestRoutePathCanonical(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	path, cost := e.RoutePath(1, 3)
	assert.Equal(t, []routegraph.NodeID{1, 4, 5, 2, 3}, path)
	assert.Equal(t, 9, cost)

	path, cost = e.RoutePath(1, 5)
	assert.Equal(t, []routegraph.NodeID{1, 4, 5}, path)
	assert.Equal(t, 2, cost)
}

func TestRemoveEdgeInvalidatesAndReconverges(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	require.True(t, e.RemoveEdge(2, 5))

	_, cost := e.RoutePath(1, 3)
	assert.Equal(t, 11, cost)
	path, _ := e.RoutePath(1, 3)
	assert.Equal(t, []routegraph.NodeID{1, 2, 3}, path)
}

func TestAddEdgeImprovesExistingPath(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	require.True(t, e.AddEdge(3, 4, 2))

	path, cost := e.RoutePath(1, 3)
	assert.Equal(t, []routegraph.NodeID{1, 4, 3}, path)
	assert.Equal(t, 3, cost)
}

func TestRemoveEdgeNoOpOnNonAdjacentPair(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	assert.False(t, e.RemoveEdge(1, 3))
}

func TestAddNodeProducesSelfEntryOnly(t *testing.T) {
	g := routegraph.NewGraph()
	e := distancevector.New(g)

	require.True(t, e.AddNode(6))
	got := e.ForwardingTable(6)
	assert.Equal(t, []routegraph.ForwardingEntry{{Dest: 6, NextHop: 6, Cost: 0}}, got)
}

func TestBootstrapConvergesGraphLoadedDirectly(t *testing.T) {
	// Load the topology straight onto the graph, bypassing Engine's own
	// AddNode/AddEdge, then rely on Bootstrap to converge every table.
	g := routegraph.NewGraph()
	for _, id := range []routegraph.NodeID{1, 2, 3, 4, 5} {
		g.AddNode(id)
	}
	g.AddEdge(1, 2, 8)
	g.AddEdge(2, 3, 3)
	g.AddEdge(2, 5, 4)
	g.AddEdge(4, 1, 1)
	g.AddEdge(4, 5, 1)

	e := distancevector.New(g)
	e.Bootstrap()

	got := e.ForwardingTable(1)
	want := []routegraph.ForwardingEntry{
		{Dest: 1, NextHop: 1, Cost: 0},
		{Dest: 2, NextHop: 4, Cost: 6},
		{Dest: 3, NextHop: 4, Cost: 9},
		{Dest: 4, NextHop: 4, Cost: 1},
		{Dest: 5, NextHop: 4, Cost: 2},
	}
	assert.Equal(t, want, got)
}

func TestChangeLineAddingUnknownNodeIsReachableAfterPropagation(t *testing.T) {
	e := buildCanonicalFiveNode(t)

	e.AddNode(6)
	require.True(t, e.AddEdge(6, 5, 3))

	path, cost := e.RoutePath(1, 6)
	assert.Equal(t, []routegraph.NodeID{1, 4, 5, 6}, path)
	assert.Equal(t, 5, cost)
}
