package neat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource makes rng.Float64 return a chosen value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (fixedSource) Seed(int64)     {}

func TestRouletteIndexEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, -1, rouletteIndex(rng, nil))
}

func TestRouletteIndexUniformWhenNothingPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[rouletteIndex(rng, []float64{0, -1, 0})]++
	}
	for i, c := range counts {
		assert.InDelta(t, 1000, c, 150, "index %d", i)
	}
}

func TestRouletteIndexSkipsNonPositiveWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		idx := rouletteIndex(rng, []float64{-5, 2, 0, 1})
		assert.Contains(t, []int{1, 3}, idx)
	}
}

func TestRouletteIndexIsProportional(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const draws = 10000
	second := 0
	for i := 0; i < draws; i++ {
		if rouletteIndex(rng, []float64{1, 3}) == 1 {
			second++
		}
	}
	assert.InDelta(t, 0.75, float64(second)/draws, 0.03)
}

func TestRouletteIndexBoundary(t *testing.T) {
	// Float64 draws exactly 0.5, so r lands on the boundary between the
	// second and third weight and the earlier index wins.
	half := rand.New(fixedSource(1 << 62))
	assert.Equal(t, 1, rouletteIndex(half, []float64{1, 1, 2}))

	zero := rand.New(fixedSource(0))
	assert.Equal(t, 1, rouletteIndex(zero, []float64{0, 1, 2}))
}

func TestPickSpeciesAndMember(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	assert.Nil(t, pickSpecies(rng, nil))

	s, genomes := newTestSpecies(t, 2)
	s.AddScore(genomes[0], 0)
	s.AddScore(genomes[1], 1)
	empty := NewSpecies(2, 1, genomes[0])

	for i := 0; i < 100; i++ {
		assert.Same(t, s, pickSpecies(rng, []*Species{empty, s}))
		assert.Same(t, genomes[1], pickMember(rng, s).Genome)
	}
}
