package neat

// reproduce builds the next generation from the scored species. Every
// species first passes a copy of its champion on unchanged. The remaining
// slots are filled with children: a species is drawn by total adjusted
// fitness, two parents are drawn from it by adjusted fitness (possibly the
// same genome twice), and their crossover is mutated.
func (e *Evaluator) reproduce() []*Genome {
	popSize := e.Config.Evaluator.PopSize
	next := make([]*Genome, 0, popSize)

	for _, s := range e.Species {
		if champion, ok := s.Champion(); ok {
			next = append(next, champion.Genome.Copy())
		}
	}

	for len(next) < popSize {
		s := pickSpecies(e.rng, e.Species)
		if s == nil || len(s.Scores) == 0 {
			break
		}
		parent1 := pickMember(e.rng, s)
		parent2 := pickMember(e.rng, s)
		if parent2.AdjustedFitness > parent1.AdjustedFitness {
			parent1, parent2 = parent2, parent1
		}
		child := Crossover(e.rng, parent1.Genome, parent2.Genome)
		e.mutate(child)
		next = append(next, child)
	}
	return next
}

// mutate applies each mutation operator to a freshly bred child with its configured probability.
func (e *Evaluator) mutate(child *Genome) {
	rc := e.Config.Reproduction
	if e.rng.Float64() < rc.WeightMutateRate {
		child.MutatePerturbWeights(e.rng)
	}
	if e.rng.Float64() < rc.ConnAddRate {
		child.MutateAddConnection(e.rng, e.GeneCounter, rc.ConnAddAttempts)
	}
	if e.rng.Float64() < rc.NodeAddRate {
		child.MutateAddNode(e.rng, e.NodeCounter, e.GeneCounter)
	}
}
