// Package simulation drives a routing Engine (link-state or
// distance-vector) through a topology build, an initial emit, and a
// sequence of changes interleaved with re-emits, rendering forwarding
// tables and routed messages through an ioformat.Writer after each
// step. It is written once against the Engine interface so either
// concrete engine can be substituted without touching the driver.
package simulation
