// File: write.go
// Role: Rendering forwarding tables and message records into the wire
// output format.
package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/eomielan/routing-protocols/routegraph"
)

// Writer renders forwarding tables and message delivery records into
// the line-oriented output format consumed by the reference grader:
// each forwarding table is a block of "<dest> <next_hop> <cost>" lines
// followed by a blank line, and each message record is a single
// "from ... to ... cost ... hops ... message ..." (or unreachable
// variant) line followed by a blank line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w for buffered output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteForwardingTable writes one forwarding table block: one line per
// entry, in the order given, followed by a trailing blank line. Callers
// are expected to pass entries already sorted by destination.
func (w *Writer) WriteForwardingTable(entries []routegraph.ForwardingEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w.w, "%d %d %d\n", e.Dest, e.NextHop, e.Cost); err != nil {
			return err
		}
	}

	_, err := w.w.WriteString("\n")
	return err
}

// WriteMessageRecord writes one message delivery record. path is the
// full canonical path from src to dst, destination included; the
// rendered hop sequence drops the trailing destination, per §6. A
// malformed line always renders as unreachable, regardless of whether
// its parsed src/dst happen to form a reachable pair, and uses the
// literal placeholder text in place of the message body; otherwise an
// empty path means dst is unreachable from src, and the record carries
// the given text. A trailing blank line always follows the record.
func (w *Writer) WriteMessageRecord(src, dst routegraph.NodeID, path []routegraph.NodeID, cost int, text string, malformed bool) error {
	if malformed {
		text = unreachablePlaceholder
		path = nil
	}

	if len(path) == 0 {
		_, err := fmt.Fprintf(w.w, "from %d to %d cost infinite hops unreachable message %s\n\n", src, dst, text)
		return err
	}

	if _, err := fmt.Fprintf(w.w, "from %d to %d cost %d hops", src, dst, cost); err != nil {
		return err
	}
	for _, hop := range path[:len(path)-1] {
		if _, err := fmt.Fprintf(w.w, " %d", hop); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w.w, " message %s\n\n", text); err != nil {
		return err
	}

	return nil
}
