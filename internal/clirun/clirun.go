// Package clirun holds the CLI argument handling and file-stream
// wiring shared by cmd/lsr and cmd/dvr. The two binaries differ only
// in which simulation.Engine they construct; everything else —
// argument parsing, stream opening, error reporting, stats logging —
// is identical and lives here.
package clirun

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eomielan/routing-protocols/ioformat"
	"github.com/eomielan/routing-protocols/routingstat"
	"github.com/eomielan/routing-protocols/simulation"
)

const defaultOutputFile = "output.txt"

// Config is the resolved set of file paths for one run, after parsing
// either the positional or flag-based CLI form.
type Config struct {
	TopologyFile string
	MessageFile  string
	ChangesFile  string
	OutputFile   string
}

// ParseArgs resolves args into a Config. It supports both the
// positional form `<topologyFile> <messageFile> <changesFile>
// [outputFile]` and an equivalent flag form (-topology, -messages,
// -changes, -out), matching the exact CLI contract while adding flags
// as a convenience. program names the binary for usage messages.
func ParseArgs(program string, args []string) (Config, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	topology := fs.String("topology", "", "topology file")
	messages := fs.String("messages", "", "message file")
	changes := fs.String("changes", "", "changes file")
	out := fs.String("out", defaultOutputFile, "output file")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%s: usage error: %w", program, err)
	}

	if *topology != "" || *messages != "" || *changes != "" {
		if *topology == "" || *messages == "" || *changes == "" {
			return Config{}, fmt.Errorf("%s: -topology, -messages, and -changes are all required together", program)
		}
		return Config{TopologyFile: *topology, MessageFile: *messages, ChangesFile: *changes, OutputFile: *out}, nil
	}

	rest := fs.Args()
	if len(rest) < 3 || len(rest) > 4 {
		return Config{}, fmt.Errorf("%s: usage: %s <topologyFile> <messageFile> <changesFile> [outputFile]", program, program)
	}

	cfg := Config{TopologyFile: rest[0], MessageFile: rest[1], ChangesFile: rest[2], OutputFile: defaultOutputFile}
	if len(rest) == 4 {
		cfg.OutputFile = rest[3]
	}

	return cfg, nil
}

// Run opens cfg's four streams, builds the topology, parses messages
// and changes, and drives eng through simulation.Driver.Run, logging
// one summary line via log once the run completes (the last emit
// cycle's counts plus the number of cycles). It returns the
// process exit code: 0 on success, 1 on any stream-open or parse
// failure.
func Run(log *slog.Logger, eng simulation.Engine, cfg Config) int {
	topologyFile, err := openStream(cfg.TopologyFile, os.Open)
	if err != nil {
		log.Error("open topology file", "path", cfg.TopologyFile, "err", err)
		return 1
	}
	defer topologyFile.Close()

	messageFile, err := openStream(cfg.MessageFile, os.Open)
	if err != nil {
		log.Error("open message file", "path", cfg.MessageFile, "err", err)
		return 1
	}
	defer messageFile.Close()

	changesFile, err := openStream(cfg.ChangesFile, os.Open)
	if err != nil {
		log.Error("open changes file", "path", cfg.ChangesFile, "err", err)
		return 1
	}
	defer changesFile.Close()

	outFile, err := openStream(cfg.OutputFile, os.Create)
	if err != nil {
		log.Error("open output file", "path", cfg.OutputFile, "err", err)
		return 1
	}
	defer outFile.Close()

	topologyLines, err := readTriples(topologyFile)
	if err != nil {
		log.Error("parse topology file", "err", err)
		return 1
	}

	changeLines, err := readTriples(changesFile)
	if err != nil {
		log.Error("parse changes file", "err", err)
		return 1
	}

	rawMsgLines, err := ioformat.ReadLines(messageFile)
	if err != nil {
		log.Error("read message file", "err", err)
		return 1
	}
	msgs := make([]ioformat.Message, 0, len(rawMsgLines))
	for _, line := range rawMsgLines {
		msgs = append(msgs, ioformat.ParseMessageLine(line))
	}

	simulation.BuildTopology(eng, topologyLines)

	writer := ioformat.NewWriter(outFile)
	stats := routingstat.NewCollector()
	driver := simulation.NewDriver(eng, writer, msgs, stats)

	if err := driver.Run(changeLines); err != nil {
		log.Error("run simulation", "err", err)
		return 1
	}
	if err := writer.Flush(); err != nil {
		log.Error("flush output", "err", err)
		return 1
	}

	if last, ok := stats.Last(); ok {
		log.Info("simulation complete",
			"nodes", last.Nodes, "edges", last.Edges,
			"messages", last.Messages, "unreachable", last.Unreachable,
			"cycles", len(stats.Cycles()))
	}

	return 0
}

// openStream opens path with open and, on failure, wraps the error
// with simulation.ErrStreamOpen so callers can classify it with
// errors.Is regardless of which of the four streams failed.
func openStream(path string, open func(string) (*os.File, error)) (*os.File, error) {
	f, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", simulation.ErrStreamOpen, path, err)
	}

	return f, nil
}

func readTriples(f *os.File) ([]ioformat.ChangeLine, error) {
	lines, err := ioformat.ReadLines(f)
	if err != nil {
		return nil, err
	}

	out := make([]ioformat.ChangeLine, 0, len(lines))
	for _, line := range lines {
		cl, err := ioformat.ParseChangeLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}

	return out, nil
}
