// File: graph.go
// Role: Node and edge lifecycle primitives (AddNode/AddEdge/ChangeCost/
//       RemoveEdge) plus the read-only queries derived from them.
// Determinism: Nodes() returns ids sorted ascending; NeighborsOf returns
//       a defensive copy so callers can range over it while the engine
//       mutates the graph concurrently on a change line.
package routegraph

import "sort"

// AddNode inserts id into the graph. It reports true if id was newly
// added, false if it was already present.
//
// Complexity: O(1).
func (g *Graph) AddNode(id NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = struct{}{}
	g.neighbors[id] = make(map[NodeID]int)
	g.order = append(g.order, id)

	return true
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// AddEdge connects a and b with the given cost. It reports true only if
// both nodes already exist and no edge (a,b) exists yet; otherwise the
// graph is left unchanged and false is returned.
//
// Self-loops (a == b) are always rejected, matching the topology/changes
// wire format's "a != b" precondition.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b NodeID, cost int) bool {
	if a == b {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return false
	}
	if _, ok := g.nodes[b]; !ok {
		return false
	}
	if _, exists := g.neighbors[a][b]; exists {
		return false
	}

	g.neighbors[a][b] = cost
	g.neighbors[b][a] = cost

	return true
}

// ChangeCost updates the cost of an existing edge (a,b). It reports true
// if the edge existed, false otherwise (graph unchanged).
//
// Complexity: O(1).
func (g *Graph) ChangeCost(a, b NodeID, cost int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.neighbors[a][b]; !ok {
		return false
	}
	g.neighbors[a][b] = cost
	g.neighbors[b][a] = cost

	return true
}

// RemoveEdge deletes the edge (a,b) from both neighbor maps. It reports
// true if the edge existed, false otherwise (graph unchanged).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b NodeID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.neighbors[a][b]; !ok {
		return false
	}
	delete(g.neighbors[a], b)
	delete(g.neighbors[b], a)

	return true
}

// HasEdge reports whether an edge (a,b) currently exists.
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.neighbors[a][b]

	return ok
}

// CostOf returns the cost of edge (a,b) and whether it exists.
func (g *Graph) CostOf(a, b NodeID) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.neighbors[a][b]

	return c, ok
}

// NeighborsOf returns a defensive copy of the neighbor-cost map for id.
// An absent or unknown node yields an empty, non-nil map.
func (g *Graph) NeighborsOf(id NodeID) map[NodeID]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.neighbors[id]
	out := make(map[NodeID]int, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

// Nodes returns every node id in the graph, sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns every edge in the graph exactly once (a < b), sorted by
// (A, B) ascending. Used by diagnostics and tests, not by the hot path.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for a, nbrs := range g.neighbors {
		for b, cost := range nbrs {
			if a < b {
				out = append(out, Edge{A: a, B: b, Cost: cost})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
