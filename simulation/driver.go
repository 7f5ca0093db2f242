package simulation

import (
	"fmt"

	"github.com/eomielan/routing-protocols/ioformat"
	"github.com/eomielan/routing-protocols/routegraph"
	"github.com/eomielan/routing-protocols/routingstat"
)

// roundCounter is implemented by engines that track relaxation rounds
// across their own mutations (distancevector.Engine does; linkstate's
// full-recompute design has no equivalent notion, so it simply won't
// satisfy this interface).
type roundCounter interface {
	PropagationRounds() int
}

// Driver sequences one simulation run: an initial emit of the topology
// built by the caller, followed by one emit per applied change line.
// The message list is fixed at construction and re-routed against the
// current topology on every emit.
type Driver struct {
	eng        Engine
	out        *ioformat.Writer
	msgs       []ioformat.Message
	stats      *routingstat.Collector // optional; nil disables collection
	lastRounds int                    // last PropagationRounds() reading, for per-cycle deltas
}

// NewDriver returns a Driver that renders eng's state to out, routing
// msgs on every emit. stats may be nil.
func NewDriver(eng Engine, out *ioformat.Writer, msgs []ioformat.Message, stats *routingstat.Collector) *Driver {
	return &Driver{eng: eng, out: out, msgs: msgs, stats: stats}
}

// BuildTopology adds every (a, b, cost) triple to eng, creating either
// endpoint's node first if absent, matching the topology stream's
// lifecycle rule: "a node is created... by a topology line."
func BuildTopology(eng Engine, lines []ioformat.ChangeLine) {
	for _, l := range lines {
		eng.AddNode(l.A)
		eng.AddNode(l.B)
		eng.AddEdge(l.A, l.B, l.Cost)
	}
}

// EmitAll renders the full forwarding-tables section followed by the
// full messages section, in that order, for the engine's current
// state.
func (d *Driver) EmitAll() error {
	unreachable := 0

	for _, n := range d.eng.Nodes() {
		if err := d.out.WriteForwardingTable(d.eng.ForwardingTable(n)); err != nil {
			return err
		}
	}

	for _, m := range d.msgs {
		var path []routegraph.NodeID
		var cost int
		if !m.Malformed {
			path, cost = d.eng.RoutePath(m.Src, m.Dst)
		}
		if len(path) == 0 {
			unreachable++
		}
		if err := d.out.WriteMessageRecord(m.Src, m.Dst, path, cost, m.Text, m.Malformed); err != nil {
			return err
		}
	}

	if d.stats != nil {
		propRounds := 0
		if rc, ok := d.eng.(roundCounter); ok {
			total := rc.PropagationRounds()
			propRounds = total - d.lastRounds
			d.lastRounds = total
		}

		d.stats.Record(routingstat.Cycle{
			Nodes:       len(d.eng.Nodes()),
			Edges:       len(d.eng.Edges()),
			Messages:    len(d.msgs),
			Unreachable: unreachable,
			PropRounds:  propRounds,
		})
	}

	return nil
}

// ApplyChange applies one changes-stream line to eng: either missing
// endpoint is added first; then cost == ioformat.RemoveSentinel removes
// the edge (a no-op if it does not exist), and any other cost creates
// the edge or updates it in place.
func (d *Driver) ApplyChange(c ioformat.ChangeLine) {
	d.eng.AddNode(c.A)
	d.eng.AddNode(c.B)

	if c.Cost == ioformat.RemoveSentinel {
		d.eng.RemoveEdge(c.A, c.B)
		return
	}

	if !d.eng.AddEdge(c.A, c.B, c.Cost) {
		d.eng.ChangeCost(c.A, c.B, c.Cost)
	}
}

// Run performs the full simulation: an initial EmitAll, then for each
// change, ApplyChange followed by another EmitAll.
func (d *Driver) Run(changes []ioformat.ChangeLine) error {
	if err := d.EmitAll(); err != nil {
		return fmt.Errorf("simulation: initial emit: %w", err)
	}

	for i, c := range changes {
		d.ApplyChange(c)
		if err := d.EmitAll(); err != nil {
			return fmt.Errorf("simulation: emit after change %d: %w", i, err)
		}
	}

	return nil
}
