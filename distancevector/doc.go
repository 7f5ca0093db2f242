// Package distancevector implements the distance-vector routing engine:
// an incremental, per-node distance-vector table maintained by a
// work-queue propagation routine, with the invalidation pass edge
// removal requires to stay correct.
//
// Each node owns a DVTable mapping destination id to its canonical path
// and cost. Unlike linkstate, which recomputes from scratch on every
// query, Engine mutates tables incrementally: AddEdge runs propagate
// from both new endpoints until no further relaxation improves any
// table (a Bellman-Ford-style fixpoint); ChangeCost and RemoveEdge first
// evict every DV entry whose canonical path traversed the changed or
// removed edge, then re-run propagate to re-derive those entries.
//
// Determinism and agreement with linkstate both rest on
// routegraph.LessCanonical: propagate applies the exact same tie-break
// rule that linkstate's reconstruction applies, so the two engines
// converge on the same canonical path for any reachable pair on
// identical input, as required by spec.
package distancevector
