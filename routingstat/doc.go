// Package routingstat collects small, structured per-run statistics
// about a simulation: node and edge counts at each emit cycle,
// propagation round counts, and the number of unreachable destination
// pairs observed. It has no effect on routing decisions; it exists so
// the CLIs can log a summary line built from the recorded cycles.
package routingstat
