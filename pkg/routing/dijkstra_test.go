package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPathWithTraffic(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B", Distance: 5, TrafficWeight: 2},
		{From: "B", To: "C", Distance: 3, TrafficWeight: 1},
	}

	adj := BuildAdjacency(edges, true)
	path, cost := ShortestPath(adj, "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 11, cost)

	adj = BuildAdjacency(edges, false)
	path, cost = ShortestPath(adj, "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 8, cost)
}

func TestShortestPathIgnoresTrafficWhenDisabled(t *testing.T) {
	light := []Edge{
		{From: "A", To: "B", Distance: 5, TrafficWeight: 1},
		{From: "B", To: "C", Distance: 3, TrafficWeight: 0},
	}
	jammed := []Edge{
		{From: "A", To: "B", Distance: 5, TrafficWeight: 90},
		{From: "B", To: "C", Distance: 3, TrafficWeight: 40},
	}

	pathLight, costLight := ShortestPath(BuildAdjacency(light, false), "A", "C")
	pathJammed, costJammed := ShortestPath(BuildAdjacency(jammed, false), "A", "C")

	assert.Equal(t, pathLight, pathJammed)
	assert.Equal(t, costLight, costJammed)
}

func TestShortestPathTrafficChangesRoute(t *testing.T) {
	// direct hop is shorter by distance but jammed; the detour wins only
	// when traffic is considered
	edges := []Edge{
		{From: "A", To: "C", Distance: 4, TrafficWeight: 20},
		{From: "A", To: "B", Distance: 3, TrafficWeight: 0},
		{From: "B", To: "C", Distance: 3, TrafficWeight: 0},
	}

	path, cost := ShortestPath(BuildAdjacency(edges, true), "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 6, cost)

	path, cost = ShortestPath(BuildAdjacency(edges, false), "A", "C")
	assert.Equal(t, []string{"A", "C"}, path)
	assert.Equal(t, 4, cost)
}

func TestShortestPathStartEqualsDestination(t *testing.T) {
	adj := BuildAdjacency([]Edge{{From: "A", To: "B", Distance: 2}}, true)

	path, cost := ShortestPath(adj, "A", "A")
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, 0, cost)
}

func TestShortestPathUnknownStart(t *testing.T) {
	adj := BuildAdjacency([]Edge{{From: "A", To: "B", Distance: 2}}, true)

	path, cost := ShortestPath(adj, "Z", "A")
	assert.Empty(t, path)
	assert.Equal(t, -1, cost)
}

func TestShortestPathUnreachableDestination(t *testing.T) {
	adj := BuildAdjacency([]Edge{
		{From: "A", To: "B", Distance: 2},
		{From: "C", To: "D", Distance: 1},
	}, true)

	path, cost := ShortestPath(adj, "A", "D")
	assert.Empty(t, path)
	assert.Equal(t, -1, cost)
}

func TestShortestPathDestinationNotInGraph(t *testing.T) {
	adj := BuildAdjacency([]Edge{{From: "A", To: "B", Distance: 2}}, true)

	path, cost := ShortestPath(adj, "A", "Z")
	assert.Empty(t, path)
	assert.Equal(t, -1, cost)
}

func TestBuildAdjacencyUndirected(t *testing.T) {
	adj := BuildAdjacency([]Edge{{From: "A", To: "B", Distance: 4, TrafficWeight: 3}}, true)

	require.Len(t, adj["A"], 1)
	require.Len(t, adj["B"], 1)
	assert.Equal(t, Neighbor{Node: "B", Weight: 7}, adj["A"][0])
	assert.Equal(t, Neighbor{Node: "A", Weight: 7}, adj["B"][0])
}

func TestBuildAdjacencyKeepsParallelEdges(t *testing.T) {
	adj := BuildAdjacency([]Edge{
		{From: "A", To: "B", Distance: 9},
		{From: "A", To: "B", Distance: 2},
	}, true)

	require.Len(t, adj["A"], 2)

	// relaxation picks the cheaper parallel edge
	path, cost := ShortestPath(adj, "A", "B")
	assert.Equal(t, []string{"A", "B"}, path)
	assert.Equal(t, 2, cost)
}

func TestShortestPathSelfLoopHarmless(t *testing.T) {
	adj := BuildAdjacency([]Edge{
		{From: "A", To: "A", Distance: 1},
		{From: "A", To: "B", Distance: 5},
	}, true)

	path, cost := ShortestPath(adj, "A", "B")
	assert.Equal(t, []string{"A", "B"}, path)
	assert.Equal(t, 5, cost)
}

func TestShortestPathEmptyLabelNode(t *testing.T) {
	// a missing endpoint label collapses to the empty-label node; routing
	// through it still works, validation is the caller's job
	adj := BuildAdjacency([]Edge{
		{From: "A", To: "", Distance: 1},
		{From: "", To: "B", Distance: 1},
	}, true)

	path, cost := ShortestPath(adj, "A", "B")
	assert.Equal(t, []string{"A", "", "B"}, path)
	assert.Equal(t, 2, cost)
}

func TestShortestPathLargerGraph(t *testing.T) {
	edges := []Edge{
		{From: "Hospital", To: "Center", Distance: 2, TrafficWeight: 5},
		{From: "Hospital", To: "Ring", Distance: 6, TrafficWeight: 0},
		{From: "Center", To: "Accident", Distance: 2, TrafficWeight: 5},
		{From: "Ring", To: "Accident", Distance: 3, TrafficWeight: 0},
		{From: "Center", To: "Ring", Distance: 1, TrafficWeight: 1},
	}

	path, cost := ShortestPath(BuildAdjacency(edges, true), "Hospital", "Accident")
	assert.Equal(t, []string{"Hospital", "Ring", "Accident"}, path)
	assert.Equal(t, 9, cost)

	path, cost = ShortestPath(BuildAdjacency(edges, false), "Hospital", "Accident")
	assert.Equal(t, []string{"Hospital", "Center", "Accident"}, path)
	assert.Equal(t, 4, cost)
}
