package routingstat_test

import (
	"testing"

	"github.com/eomielan/routing-protocols/routingstat"
	"github.com/stretchr/testify/assert"
)

func TestCollectorRecordsInOrder(t *testing.T) {
	c := routingstat.NewCollector()
	c.Record(routingstat.Cycle{Nodes: 5, Edges: 5})
	c.Record(routingstat.Cycle{Nodes: 5, Edges: 4, Unreachable: 1})

	cycles := c.Cycles()
	assert.Len(t, cycles, 2)
	assert.Equal(t, 4, cycles[1].Edges)

	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, 1, last.Unreachable)
}

func TestCollectorLastEmpty(t *testing.T) {
	c := routingstat.NewCollector()
	_, ok := c.Last()
	assert.False(t, ok)
}
