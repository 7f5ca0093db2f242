package distancevector

import (
	"sort"

	"github.com/eomielan/routing-protocols/routegraph"
)

// bfsReachable returns every node reachable from source via g's current
// neighbor relation, source included, ordered by BFS discovery (a
// deterministic seed order for propagate's work queue; the fixpoint it
// converges to does not depend on this order, only the reproducibility
// of intermediate runs does).
func bfsReachable(g *routegraph.Graph, source routegraph.NodeID) []routegraph.NodeID {
	visited := map[routegraph.NodeID]bool{source: true}
	queue := []routegraph.NodeID{source}
	order := []routegraph.NodeID{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range sortedNeighborIDs(g.NeighborsOf(u)) {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
				order = append(order, v)
			}
		}
	}

	return order
}

// sortedNeighborIDs returns the keys of a neighbor-cost map in ascending
// order, giving propagate a deterministic relaxation order.
func sortedNeighborIDs(neighbors map[routegraph.NodeID]int) []routegraph.NodeID {
	out := make([]routegraph.NodeID, 0, len(neighbors))
	for id := range neighbors {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedKeys returns a DVTable's destination ids in ascending order.
func sortedKeys(t DVTable) []routegraph.NodeID {
	out := make([]routegraph.NodeID, 0, len(t))
	for id := range t {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// prepend returns a new path with v as its first element followed by
// path's elements, without mutating path.
func prepend(v routegraph.NodeID, path []routegraph.NodeID) []routegraph.NodeID {
	out := make([]routegraph.NodeID, 0, len(path)+1)
	out = append(out, v)
	out = append(out, path...)

	return out
}

// pathsEqual reports whether two node-id sequences are identical.
func pathsEqual(a, b []routegraph.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// traversesEdge reports whether path contains the edge (a,b) as a
// consecutive pair, in either direction.
func traversesEdge(path []routegraph.NodeID, a, b routegraph.NodeID) bool {
	for i := 0; i+1 < len(path); i++ {
		if (path[i] == a && path[i+1] == b) || (path[i] == b && path[i+1] == a) {
			return true
		}
	}

	return false
}
