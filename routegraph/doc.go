// Package routegraph defines the undirected weighted graph shared by the
// link-state and distance-vector routing engines.
//
// A Graph holds a node set and a symmetric adjacency map of integer link
// costs. It exposes the mutation primitives both engines drive from a
// topology or changes stream (AddNode, AddEdge, ChangeCost, RemoveEdge)
// and the read-only queries they use to compute routes (Nodes,
// NeighborsOf, HasEdge, CostOf).
//
// Concurrency: a single sync.RWMutex guards both the node set and the
// adjacency map, since every mutation here touches both sides of an edge
// atomically; callers never observe a node with half-updated neighbors.
//
// Canonical path tie-break: LessCanonical implements the
// reverse-lexicographic comparator both engines use to choose among
// equal-cost paths, so Dijkstra in linkstate and relaxation in
// distancevector can never disagree on which path is canonical.
package routegraph
