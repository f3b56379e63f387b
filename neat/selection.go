package neat

import "math/rand"

// rouletteIndex picks an index with probability proportional to its weight.
// It draws r uniformly from [0, total) and returns the first index whose
// cumulative weight reaches r. Negative weights count as zero, and when no
// weight is positive every index is equally likely. It returns -1 for an
// empty slice.
func rouletteIndex(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	cumulative := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if cumulative >= r {
			return i
		}
	}
	// Rounding can leave the final sum a hair under r.
	return last
}

// pickSpecies chooses a species in proportion to its total adjusted fitness.
func pickSpecies(rng *rand.Rand, species []*Species) *Species {
	weights := make([]float64, len(species))
	for i, s := range species {
		weights[i] = s.TotalAdjustedFitness
	}
	i := rouletteIndex(rng, weights)
	if i < 0 {
		return nil
	}
	return species[i]
}

// pickMember chooses a scored member in proportion to its adjusted fitness.
func pickMember(rng *rand.Rand, s *Species) MemberScore {
	weights := make([]float64, len(s.Scores))
	for i, score := range s.Scores {
		weights[i] = score.AdjustedFitness
	}
	return s.Scores[rouletteIndex(rng, weights)]
}
