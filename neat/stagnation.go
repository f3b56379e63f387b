package neat

import "math"

var negativeInf = math.Inf(-1)

// updateStagnation folds this generation's scores into the species'
// improvement history. It must run after every member has been scored.
// Stagnation is only tracked for reporting; species are never removed for it.
func (s *Species) updateStagnation(generation int) {
	best := negativeInf
	for _, score := range s.Scores {
		if score.Fitness > best {
			best = score.Fitness
		}
	}
	if best > s.BestFitness {
		s.BestFitness = best
		s.LastImproved = generation
	}
}

// Staleness returns how many generations have passed since the species last improved.
func (s *Species) Staleness(generation int) int {
	return generation - s.LastImproved
}
