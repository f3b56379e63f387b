package neat

import (
	"fmt"
	"math/rand"
)

// MemberScore pairs a species member with its fitness for the current generation.
type MemberScore struct {
	Genome          *Genome
	Fitness         float64 // Raw fitness from the forward pass.
	AdjustedFitness float64 // Fitness divided by the species size.
}

// Species is a group of genetically similar genomes for one generation.
// Membership is decided by distance to the mascot, a genome picked from
// the previous generation's members.
type Species struct {
	ID      int     // Unique identifier for the species.
	Created int     // Generation number when the species was created.
	Mascot  *Genome // The comparison anchor for membership.
	Members []*Genome

	Scores               []MemberScore // Filled while scoring, in member order.
	TotalAdjustedFitness float64

	BestFitness  float64 // Best raw fitness any member ever reached.
	LastImproved int     // Last generation where BestFitness rose.
}

// NewSpecies creates a species whose only member is its mascot.
func NewSpecies(id, generation int, mascot *Genome) *Species {
	return &Species{
		ID:           id,
		Created:      generation,
		Mascot:       mascot,
		Members:      []*Genome{mascot},
		LastImproved: generation,
		BestFitness:  negativeInf,
	}
}

// Reset prepares the species for a new generation: a new mascot is drawn
// uniformly from the current members, then members and fitness
// bookkeeping are cleared. A species with no members keeps its mascot.
func (s *Species) Reset(rng *rand.Rand) {
	if len(s.Members) > 0 {
		s.Mascot = s.Members[rng.Intn(len(s.Members))]
	}
	s.Members = nil
	s.Scores = nil
	s.TotalAdjustedFitness = 0
}

// Add appends a genome to the species.
func (s *Species) Add(g *Genome) {
	s.Members = append(s.Members, g)
}

// Size returns the number of members.
func (s *Species) Size() int {
	return len(s.Members)
}

// AddScore records a member's fitness. The adjusted fitness is the raw
// fitness shared among all members of the species.
func (s *Species) AddScore(g *Genome, fitness float64) MemberScore {
	score := MemberScore{
		Genome:          g,
		Fitness:         fitness,
		AdjustedFitness: fitness / float64(len(s.Members)),
	}
	s.Scores = append(s.Scores, score)
	s.TotalAdjustedFitness += score.AdjustedFitness
	return score
}

// Champion returns the scored member with the highest adjusted fitness,
// the earliest one on ties. ok is false when nothing has been scored.
func (s *Species) Champion() (best MemberScore, ok bool) {
	for i, score := range s.Scores {
		if i == 0 || score.AdjustedFitness > best.AdjustedFitness {
			best = score
		}
	}
	return best, len(s.Scores) > 0
}

// String returns a short summary of the species.
func (s *Species) String() string {
	return fmt.Sprintf("Species(ID: %d, Members: %d, TotalAdjustedFitness: %.5f)",
		s.ID, len(s.Members), s.TotalAdjustedFitness)
}
