package neat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationReport(t *testing.T) {
	s, genomes := newTestSpecies(t, 2)
	s.AddScore(genomes[0], 2)
	s.AddScore(genomes[1], 4)
	s.updateStagnation(3)

	r := newGenerationReport(3, []*Species{s}, []float64{2, 4, 6}, 6, genomes[1])

	assert.Equal(t, 3, r.Generation)
	assert.InDelta(t, 4.0, r.MeanFitness, 1e-12)
	assert.InDelta(t, 2.0, r.StdevFitness, 1e-12)
	assert.InDelta(t, 6.0, r.HighestScore, 1e-12)
	require.Len(t, r.Species, 1)
	assert.Equal(t, SpeciesReport{
		ID:                   1,
		Size:                 2,
		TotalAdjustedFitness: 3,
		BestFitness:          4,
		Staleness:            0,
	}, r.Species[0])
	assert.Equal(t, "#3: 1 species, best f=6.00000, mean f=4.00000 (stdev 2.00000) with 2 connections", r.String())
}

func TestGenerationReportSingleGenome(t *testing.T) {
	r := newGenerationReport(1, nil, []float64{0.25}, 0.25, nil)
	assert.InDelta(t, 0.25, r.MeanFitness, 1e-12)
	assert.Zero(t, r.StdevFitness)
	assert.False(t, math.IsNaN(r.StdevFitness))
	assert.Equal(t, "#1: 0 species, best f=0.25000, mean f=0.25000 (stdev 0.00000)", r.String())
}
