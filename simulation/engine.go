package simulation

import "github.com/eomielan/routing-protocols/routegraph"

// Engine is the behavior a routing engine must expose for Driver to
// build a topology, apply changes, and render forwarding tables and
// routed messages. Both linkstate.Engine and distancevector.Engine
// satisfy this interface directly, with no adapter needed: their
// method sets already match it.
type Engine interface {
	ForwardingTable(src routegraph.NodeID) []routegraph.ForwardingEntry
	RoutePath(src, dst routegraph.NodeID) ([]routegraph.NodeID, int)
	AddNode(id routegraph.NodeID) bool
	AddEdge(a, b routegraph.NodeID, cost int) bool
	ChangeCost(a, b routegraph.NodeID, cost int) bool
	RemoveEdge(a, b routegraph.NodeID) bool
	Nodes() []routegraph.NodeID
	Edges() []routegraph.Edge
}
