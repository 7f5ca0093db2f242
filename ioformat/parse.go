// File: parse.go
// Role: Line-oriented parsing for topology/changes/message streams.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eomielan/routing-protocols/routegraph"
)

// RemoveSentinel is the cost value in a changes line that means "remove
// this edge" rather than "create or update it".
const RemoveSentinel = -999

// unreachablePlaceholder is the literal text substituted for a
// malformed message line's body.
const unreachablePlaceholder = "<message>"

// ChangeLine is one parsed line from the changes stream: an endpoint
// pair and a cost, where cost == RemoveSentinel means "remove this
// edge" rather than "create or update it".
type ChangeLine struct {
	A, B routegraph.NodeID
	Cost int
}

// Message is one parsed line from the message stream.
type Message struct {
	Src, Dst  routegraph.NodeID
	Text      string
	Malformed bool
}

// ReadLines reads every line from r, trimming surrounding whitespace
// and discarding blank lines, matching the "blank lines are skipped"
// rule shared by all three input streams.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out, scanner.Err()
}

// ParseTopologyLine parses a topology line of the form "a b cost". A
// line without exactly three whitespace-separated integer fields is a
// fatal error, per the simulation driver's contract for topology and
// changes streams.
func ParseTopologyLine(line string) (a, b routegraph.NodeID, cost int, err error) {
	return parseEdgeTriple(line)
}

// ParseChangeLine parses a changes line of the same "a b cost" shape as
// a topology line; cost == RemoveSentinel is interpreted by the caller
// as an edge removal rather than an upsert.
func ParseChangeLine(line string) (ChangeLine, error) {
	a, b, cost, err := parseEdgeTriple(line)
	if err != nil {
		return ChangeLine{}, err
	}

	return ChangeLine{A: a, B: b, Cost: cost}, nil
}

func parseEdgeTriple(line string) (a, b routegraph.NodeID, cost int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	av, err1 := strconv.Atoi(fields[0])
	bv, err2 := strconv.Atoi(fields[1])
	cv, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return routegraph.NodeID(av), routegraph.NodeID(bv), cv, nil
}

// ParseMessageLine parses a message line of the form "src dst <text>".
// A line with fewer than four whitespace-separated fields is reported
// as Malformed; per spec it is never treated as a fatal parse error,
// only rendered as an unreachable record with the literal placeholder
// "<message>".
func ParseMessageLine(line string) Message {
	fields := strings.Fields(line)

	var m Message
	if len(fields) >= 1 {
		if v, err := strconv.Atoi(fields[0]); err == nil {
			m.Src = routegraph.NodeID(v)
		}
	}
	if len(fields) >= 2 {
		if v, err := strconv.Atoi(fields[1]); err == nil {
			m.Dst = routegraph.NodeID(v)
		}
	}

	if len(fields) < 4 {
		m.Malformed = true
		m.Text = unreachablePlaceholder
		return m
	}

	m.Text = strings.Join(fields[2:], " ")

	return m
}
