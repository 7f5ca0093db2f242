package distancevector

import "github.com/eomielan/routing-protocols/routegraph"

// dvEntry is one row of a node's distance-vector table: the canonical
// path to a destination and its total cost.
type dvEntry struct {
	path []routegraph.NodeID
	cost int
}

// DVTable is a node's distance-vector table: destination id to its
// canonical path and cost. Every table always contains a self-entry
// ([id], 0) for its owning node.
type DVTable map[routegraph.NodeID]dvEntry

// Engine maintains one DVTable per node of a routegraph.Graph and keeps
// them converged under topology changes via propagate.
type Engine struct {
	g      *routegraph.Graph
	tables map[routegraph.NodeID]DVTable
	rounds int // cumulative propagate relaxation rounds, see PropagationRounds
}

// New returns a distance-vector Engine bound to g. If g already has
// nodes and edges loaded directly (bypassing Engine's own
// AddNode/AddEdge), call Bootstrap once to seed every table from g's
// current contents; built up through Engine's own methods, no such
// call is necessary since each mutator keeps tables converged as it
// goes.
func New(g *routegraph.Graph) *Engine {
	return &Engine{
		g:      g,
		tables: make(map[routegraph.NodeID]DVTable),
	}
}
