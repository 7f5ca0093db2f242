package routegraph

import "math"

// LessCanonical reports whether candidate should replace existing as the
// canonical path between two equal-cost paths to the same destination.
//
// Tie-break rule: compare node ids starting at index -2 (the position
// immediately before the destination) and walking backward toward the
// source; the path with the smaller id at the first differing position
// wins. A path that has already run out of positions at a given depth is
// treated as holding +infinity there, so it always loses to whichever
// path still has a real id to offer — this keeps the comparator
// well-defined for paths of length 1, where index -2 doesn't exist (a
// direct neighbor entry can never actually tie with anything else in
// practice, but the comparator must not panic if it's asked).
//
// Both paths are assumed to share the same destination (last element)
// and the same cost; LessCanonical does not itself check either.
func LessCanonical(existing, candidate []NodeID) bool {
	for i := 2; ; i++ {
		e, eok := at(existing, i)
		c, cok := at(candidate, i)

		if !eok && !cok {
			// Both paths exhausted at the same depth without a difference:
			// identical up to the source, candidate does not win.
			return false
		}

		ev, cv := int(e), int(c)
		if !eok {
			ev = math.MaxInt
		}
		if !cok {
			cv = math.MaxInt
		}

		if ev == cv {
			continue
		}

		return cv < ev
	}
}

// at returns the node id at the "-i"th position counting from the end of
// path (1-based at the last element) and whether that index is in range.
func at(path []NodeID, i int) (NodeID, bool) {
	idx := len(path) - i
	if idx < 0 {
		return 0, false
	}
	return path[idx], true
}
