package neat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// xorData returns the four XOR-style records for a 2-input/1-output seed.
func xorData(seed *Genome) Dataset {
	var inputs []int
	output := -1
	for _, id := range seed.NodeIDs() {
		switch seed.Nodes[id].Type {
		case InputNode:
			inputs = append(inputs, id)
		case OutputNode:
			output = id
		}
	}
	rows := [][3]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}}
	data := make(Dataset, 0, len(rows))
	for _, row := range rows {
		data = append(data, Record{
			Inputs:  map[int]float64{inputs[0]: row[0], inputs[1]: row[1]},
			Outputs: map[int]float64{output: row[2]},
		})
	}
	return data
}

// grow applies rounds of random structural and weight mutations to g.
func grow(t *testing.T, rng *rand.Rand, g *Genome, nodes, genes *Counter, rounds int) {
	t.Helper()
	for i := 0; i < rounds; i++ {
		switch rng.Intn(3) {
		case 0:
			g.MutateAddNode(rng, nodes, genes)
		case 1:
			g.MutateAddConnection(rng, genes, 10)
		default:
			g.MutatePerturbWeights(rng)
		}
	}
	require.GreaterOrEqual(t, len(g.Nodes), 3)
}

// pairKey identifies an unordered node pair.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// sequenceSource feeds rand.Rand a fixed sequence of Int63 values, cycling
// once the sequence is exhausted.
type sequenceSource struct {
	values []int64
	next   int
}

func newSequenceSource(values ...int64) *sequenceSource {
	return &sequenceSource{values: values}
}

func (s *sequenceSource) Int63() int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSource) Seed(int64) {}

// pick returns the Int63 value that makes rng.Intn(n) return index for any
// n above index that is not a power of two.
func pick(index int) int64 {
	return int64(index) << 32
}
