package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIssuesIncreasingIDs(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, 0, c.Peek())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Peek())
	assert.Equal(t, 2, c.Next())
}

func TestCountersAreIndependent(t *testing.T) {
	nodes, genes := NewCounter(), NewCounter()
	NewMinimalGenome(3, 2, 0.5, nodes, genes)
	assert.Equal(t, 5, nodes.Peek())
	assert.Equal(t, 6, genes.Peek())
}
