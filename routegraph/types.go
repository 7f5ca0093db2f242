package routegraph

import "sync"

// NodeID uniquely identifies a router within a Graph. Positive integers
// are assumed by the topology/changes wire format (see ioformat), but
// the type itself places no such constraint.
type NodeID int

// Edge is an unordered pair of distinct node ids with an integer cost.
// It is a value type used to report graph contents; Graph itself stores
// costs in a symmetric adjacency map, not as a slice of Edge.
type Edge struct {
	A, B NodeID
	Cost int
}

// Graph is the in-memory undirected weighted graph model shared by the
// link-state and distance-vector engines.
//
// Invariant (symmetry): for every pair (a,b), neighbors[a][b] exists iff
// neighbors[b][a] exists, and the two costs are equal. Every exported
// mutator maintains both sides under the same lock, so this invariant
// never observably breaks.
type Graph struct {
	mu        sync.RWMutex
	nodes     map[NodeID]struct{}
	neighbors map[NodeID]map[NodeID]int
	order     []NodeID // insertion order; Nodes() still sorts ascending for callers
}

// NewGraph returns an empty Graph with no nodes and no edges.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]struct{}),
		neighbors: make(map[NodeID]map[NodeID]int),
	}
}

// ForwardingEntry is one row of a forwarding table: the next hop and
// total cost to reach Dest from the table's owning node. Both routing
// engines produce these, and ioformat renders them, so the type lives
// here rather than being duplicated per engine.
type ForwardingEntry struct {
	Dest, NextHop NodeID
	Cost          int
}
