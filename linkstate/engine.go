package linkstate

import (
	"container/heap"
	"sort"

	"github.com/eomielan/routing-protocols/routegraph"
)

// Engine answers shortest-path and forwarding-table queries over a
// routegraph.Graph using Dijkstra's algorithm with the canonical-path
// tie-break rule.
type Engine struct {
	g *routegraph.Graph
}

// New returns a link-state Engine bound to g. The engine holds no state
// of its own between queries; every call re-derives from g's current
// contents.
func New(g *routegraph.Graph) *Engine {
	return &Engine{g: g}
}

// ShortestPath returns the canonical shortest path from src to dst, or
// nil if dst is unreachable from src. The returned path starts at src
// and ends at dst; callers must not mutate it.
//
// Complexity: O((V+E) log V) for the Dijkstra pass plus O(E·V) for
// building the canonical path to every reached node (each predecessor
// edge copies and compares a path of up to V ids).
func (e *Engine) ShortestPath(src, dst routegraph.NodeID) []routegraph.NodeID {
	if src == dst {
		return []routegraph.NodeID{src}
	}

	canon, ok := e.canonicalPaths(src)
	if !ok {
		return nil
	}
	path, ok := canon[dst]
	if !ok {
		return nil
	}

	return append([]routegraph.NodeID(nil), path...)
}

// PathCost returns the sum of edge weights along path, or -1 for an
// empty path (the unreachable sentinel used throughout this engine).
func (e *Engine) PathCost(path []routegraph.NodeID) int {
	if len(path) == 0 {
		return -1
	}
	total := 0
	for i := 0; i+1 < len(path); i++ {
		c, _ := e.g.CostOf(path[i], path[i+1])
		total += c
	}

	return total
}

// ForwardingTable computes the forwarding table for source s: one entry
// per reachable destination, ordered ascending by destination id, with
// the self-entry (s, s, 0) included and unreachable destinations
// omitted.
func (e *Engine) ForwardingTable(s routegraph.NodeID) []routegraph.ForwardingEntry {
	canon, ok := e.canonicalPaths(s)
	if !ok {
		return nil
	}

	dests := make([]routegraph.NodeID, 0, len(canon))
	for d := range canon {
		dests = append(dests, d)
	}
	sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })

	out := make([]routegraph.ForwardingEntry, 0, len(dests))
	for _, d := range dests {
		if d == s {
			out = append(out, routegraph.ForwardingEntry{Dest: s, NextHop: s, Cost: 0})
			continue
		}
		path := canon[d]
		out = append(out, routegraph.ForwardingEntry{Dest: d, NextHop: path[1], Cost: e.PathCost(path)})
	}

	return out
}

// canonicalPaths runs Dijkstra from src and returns the canonical
// shortest path to every reachable node (including src itself, mapped
// to [src]). ok is false only if src is not a node of the graph.
func (e *Engine) canonicalPaths(src routegraph.NodeID) (map[routegraph.NodeID][]routegraph.NodeID, bool) {
	if !e.g.HasNode(src) {
		return nil, false
	}

	dist, preds, order := e.dijkstra(src)

	canon := make(map[routegraph.NodeID][]routegraph.NodeID, len(dist))
	canon[src] = []routegraph.NodeID{src}

	for _, v := range order {
		if v == src {
			continue
		}
		var best []routegraph.NodeID
		for _, p := range preds[v] {
			candidate := append(append([]routegraph.NodeID(nil), canon[p]...), v)
			if best == nil || routegraph.LessCanonical(best, candidate) {
				best = candidate
			}
		}
		canon[v] = best
	}

	return canon, true
}

// dijkstra runs a standard Dijkstra pass from src, but instead of a
// single predecessor per node it accumulates the full set of
// predecessors that achieve each node's shortest distance (needed
// because canonicalPaths must later choose among every equal-cost
// shortest path, not just the first one discovered).
//
// order is the set of reached nodes (including src) ordered by
// non-decreasing distance from src, which is also a valid dependency
// order for canonicalPaths: every predecessor of v appears before v,
// since edge costs are positive.
func (e *Engine) dijkstra(src routegraph.NodeID) (dist map[routegraph.NodeID]int, preds map[routegraph.NodeID][]routegraph.NodeID, order []routegraph.NodeID) {
	dist = map[routegraph.NodeID]int{src: 0}
	preds = make(map[routegraph.NodeID][]routegraph.NodeID)
	finalized := make(map[routegraph.NodeID]bool)

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if finalized[u] {
			continue
		}
		finalized[u] = true
		order = append(order, u)

		for v, w := range e.g.NeighborsOf(u) {
			nd := d + w
			cur, ok := dist[v]
			switch {
			case !ok || nd < cur:
				dist[v] = nd
				preds[v] = []routegraph.NodeID{u}
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			case nd == cur:
				preds[v] = append(preds[v], u)
			}
		}
	}

	return dist, preds, order
}

// nodeItem is a (vertex, tentative distance) pair stored in the
// priority queue, following the lazy-decrease-key pattern: a shorter
// distance is pushed as a new entry rather than mutating one in place,
// and stale entries are skipped via the finalized set on pop.
type nodeItem struct {
	id   routegraph.NodeID
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// RoutePath returns the canonical path from src to dst and its total
// cost, or (nil, -1) if dst is unreachable from src. It is the single
// entry point simulation.Driver uses to render routed messages.
func (e *Engine) RoutePath(src, dst routegraph.NodeID) ([]routegraph.NodeID, int) {
	path := e.ShortestPath(src, dst)
	if path == nil {
		return nil, -1
	}

	return path, e.PathCost(path)
}

// Nodes returns the underlying graph's node ids, ascending.
func (e *Engine) Nodes() []routegraph.NodeID {
	return e.g.Nodes()
}

// Edges returns the underlying graph's edges, each reported once.
func (e *Engine) Edges() []routegraph.Edge {
	return e.g.Edges()
}

// AddNode adds id to the underlying graph.
func (e *Engine) AddNode(id routegraph.NodeID) bool {
	return e.g.AddNode(id)
}

// AddEdge adds edge (a,b) with the given cost to the underlying graph.
func (e *Engine) AddEdge(a, b routegraph.NodeID, cost int) bool {
	return e.g.AddEdge(a, b, cost)
}

// ChangeCost updates the cost of edge (a,b) in the underlying graph.
func (e *Engine) ChangeCost(a, b routegraph.NodeID, cost int) bool {
	return e.g.ChangeCost(a, b, cost)
}

// RemoveEdge removes edge (a,b) from the underlying graph.
func (e *Engine) RemoveEdge(a, b routegraph.NodeID) bool {
	return e.g.RemoveEdge(a, b)
}
