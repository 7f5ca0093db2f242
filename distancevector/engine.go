// File: engine.go
// Role: Node lifecycle (AddNode/AddEdge/ChangeCost/RemoveEdge) plus the
//       propagate work-queue relaxation that keeps every node's
//       distance-vector table converged after each change.
package distancevector

import "github.com/eomielan/routing-protocols/routegraph"

// Bootstrap (re)initializes every node currently in the underlying
// graph: each gets its self-entry table if it doesn't have one yet,
// then propagate runs from every node so tables converge to the
// graph's current topology in one pass. Needed only when nodes/edges
// were added directly to the graph rather than through Engine's own
// AddNode/AddEdge, which already keep tables converged incrementally.
func (e *Engine) Bootstrap() {
	for _, id := range e.g.Nodes() {
		e.ensureTable(id)
	}
	for _, id := range e.g.Nodes() {
		e.propagate(id)
	}
}

// AddNode adds id to the underlying graph and, if newly added, seeds its
// distance-vector table with the mandatory self-entry ([id], 0).
func (e *Engine) AddNode(id routegraph.NodeID) bool {
	added := e.g.AddNode(id)
	if added {
		e.tables[id] = newSelfTable(id)
	}

	return added
}

// AddEdge adds edge (a,b) with the given cost, then runs propagate from
// both endpoints to bring every reachable table to fixpoint. It reports
// false, with no effect, if the underlying graph rejects the edge (e.g.
// a missing endpoint, a self-loop, or an edge that already exists).
func (e *Engine) AddEdge(a, b routegraph.NodeID, cost int) bool {
	if !e.g.AddEdge(a, b, cost) {
		return false
	}
	e.ensureTable(a)
	e.ensureTable(b)
	e.propagate(a)
	e.propagate(b)

	return true
}

// ChangeCost updates the cost of edge (a,b), evicts every DV entry whose
// canonical path traverses that edge in either direction (its recorded
// cost is stale), and re-propagates from both endpoints. It reports
// false, with no effect, if the edge does not exist.
func (e *Engine) ChangeCost(a, b routegraph.NodeID, cost int) bool {
	if !e.g.ChangeCost(a, b, cost) {
		return false
	}

	for _, table := range e.tables {
		for dest, entry := range table {
			if traversesEdge(entry.path, a, b) {
				delete(table, dest)
			}
		}
	}

	e.propagate(a)
	e.propagate(b)

	return true
}

// RemoveEdge removes edge (a,b), evicts every DV entry in the whole
// graph whose canonical path traversed that edge in either direction
// (including the direct neighbor entries a.dv[b] and b.dv[a]), and then
// re-propagates from both endpoints so alternate paths can take their
// place. It reports false, with no effect, if the edge does not exist.
func (e *Engine) RemoveEdge(a, b routegraph.NodeID) bool {
	if !e.g.RemoveEdge(a, b) {
		return false
	}

	delete(e.tables[a], b)
	delete(e.tables[b], a)

	for _, table := range e.tables {
		for dest, entry := range table {
			if traversesEdge(entry.path, a, b) {
				delete(table, dest)
			}
		}
	}

	e.propagate(a)
	e.propagate(b)

	return true
}

// ForwardingTable computes the forwarding table for node s: one entry
// per destination present in s's distance-vector table, ordered
// ascending by destination id. Destinations absent from s's table are
// omitted (unreachable); the self-entry is always present.
func (e *Engine) ForwardingTable(s routegraph.NodeID) []routegraph.ForwardingEntry {
	table := e.tables[s]
	dests := sortedKeys(table)

	out := make([]routegraph.ForwardingEntry, 0, len(dests))
	for _, d := range dests {
		if d == s {
			out = append(out, routegraph.ForwardingEntry{Dest: s, NextHop: s, Cost: 0})
			continue
		}
		entry := table[d]
		out = append(out, routegraph.ForwardingEntry{Dest: d, NextHop: entry.path[1], Cost: entry.cost})
	}

	return out
}

// propagate relaxes every node reachable from source (via the current
// neighbor relation) against its neighbors' distance-vector tables,
// repeating until no relaxation updates any table. See doc.go for the
// fixpoint argument; see routegraph.LessCanonical for the tie-break
// applied on equal-cost candidates. Each queue pop counts as one
// relaxation round toward PropagationRounds.
func (e *Engine) propagate(source routegraph.NodeID) {
	queue := bfsReachable(e.g, source)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		e.rounds++

		uTable := e.ensureTable(u)
		neighbors := e.g.NeighborsOf(u)

		for _, v := range sortedNeighborIDs(neighbors) {
			w := neighbors[v]
			vTable := e.ensureTable(v)

			for _, dest := range sortedKeys(uTable) {
				if dest == v {
					continue
				}
				entry := uTable[dest]
				candidatePath := prepend(v, entry.path)
				candidateCost := entry.cost + w

				existing, ok := vTable[dest]
				switch {
				case !ok || candidateCost < existing.cost:
					vTable[dest] = dvEntry{path: candidatePath, cost: candidateCost}
					queue = append(queue, v)
				case candidateCost == existing.cost && !pathsEqual(candidatePath, existing.path):
					chosen := existing.path
					if routegraph.LessCanonical(existing.path, candidatePath) {
						chosen = candidatePath
					}
					if !pathsEqual(chosen, existing.path) {
						vTable[dest] = dvEntry{path: chosen, cost: candidateCost}
						queue = append(queue, v)
					}
				}
			}
		}
	}
}

// ensureTable returns node id's distance-vector table, creating it with
// the mandatory self-entry if this is the first time the engine has
// seen id (e.g. a node added directly via the underlying graph rather
// than through Engine.AddNode).
func (e *Engine) ensureTable(id routegraph.NodeID) DVTable {
	t, ok := e.tables[id]
	if !ok {
		t = newSelfTable(id)
		e.tables[id] = t
	}

	return t
}

func newSelfTable(id routegraph.NodeID) DVTable {
	return DVTable{id: dvEntry{path: []routegraph.NodeID{id}, cost: 0}}
}

// RoutePath returns node s's canonical path to dst and its total cost,
// or (nil, -1) if dst is absent from s's distance-vector table.
func (e *Engine) RoutePath(s, dst routegraph.NodeID) ([]routegraph.NodeID, int) {
	entry, ok := e.tables[s][dst]
	if !ok {
		return nil, -1
	}

	return entry.path, entry.cost
}

// Nodes returns the underlying graph's node ids, ascending.
func (e *Engine) Nodes() []routegraph.NodeID {
	return e.g.Nodes()
}

// PropagationRounds returns the cumulative number of relaxation rounds
// (queue pops across every propagate call) performed since the engine
// was created. Driver uses the delta between consecutive reads to
// report per-cycle propagation activity via routingstat.
func (e *Engine) PropagationRounds() int {
	return e.rounds
}

// Edges returns the underlying graph's edges, each reported once.
func (e *Engine) Edges() []routegraph.Edge {
	return e.g.Edges()
}
