package neat

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// SpeciesReport summarizes one species at the end of a generation.
type SpeciesReport struct {
	ID                   int
	Size                 int
	TotalAdjustedFitness float64
	BestFitness          float64 // Best raw fitness the species ever reached
	Staleness            int     // Generations since BestFitness last rose
}

// GenerationReport is what a caller gets back from one generation step.
type GenerationReport struct {
	Generation    int
	Species       []SpeciesReport
	HighestScore  float64 // Best raw fitness of the generation
	FittestGenome *Genome // Genome that reached HighestScore
	MeanFitness   float64
	StdevFitness  float64 // Sample standard deviation; 0 for fewer than two genomes
}

// newGenerationReport summarizes scored species and the raw fitness of every genome.
func newGenerationReport(generation int, species []*Species, fitnesses []float64, best float64, fittest *Genome) *GenerationReport {
	r := &GenerationReport{
		Generation:    generation,
		Species:       make([]SpeciesReport, 0, len(species)),
		HighestScore:  best,
		FittestGenome: fittest,
	}
	for _, s := range species {
		r.Species = append(r.Species, SpeciesReport{
			ID:                   s.ID,
			Size:                 s.Size(),
			TotalAdjustedFitness: s.TotalAdjustedFitness,
			BestFitness:          s.BestFitness,
			Staleness:            s.Staleness(generation),
		})
	}
	if len(fitnesses) > 0 {
		r.MeanFitness = stat.Mean(fitnesses, nil)
	}
	if len(fitnesses) > 1 {
		r.StdevFitness = stat.StdDev(fitnesses, nil)
	}
	return r
}

// String returns a one-line summary of the generation.
func (r *GenerationReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d: %d species, best f=%.5f, mean f=%.5f (stdev %.5f)",
		r.Generation, len(r.Species), r.HighestScore, r.MeanFitness, r.StdevFitness)
	if r.FittestGenome != nil {
		fmt.Fprintf(&b, " with %d connections", len(r.FittestGenome.Genes))
	}
	return b.String()
}
