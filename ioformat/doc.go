// Package ioformat parses the topology, changes, and message line
// streams and renders forwarding tables and routed-message records in
// the exact wire format the simulation driver writes to its output
// stream.
//
// Parsing is line-oriented: blank lines are always skipped; topology
// and changes lines must have exactly three whitespace-separated
// integer fields (a malformed line is a parse error, fatal per the
// simulation driver's contract); message lines may have fewer than the
// required four fields, in which case ParseMessageLine reports the line
// as malformed rather than erroring, and the caller renders it as an
// unreachable record with the literal placeholder "<message>".
package ioformat
