package neat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// Evaluator holds the state of the evolutionary process: the current
// generation of genomes, the species they fall into, and the two id
// counters shared by every mutation of the run.
type Evaluator struct {
	Config      *Config
	Genomes     []*Genome  // Current generation, in breeding order
	Species     []*Species // Active species, in creation order
	NodeCounter *Counter
	GeneCounter *Counter
	Generation  int // Number of completed generations

	HighestScore  float64 // Best raw fitness of the last generation
	FittestGenome *Genome // Genome that reached HighestScore

	Logger *slog.Logger

	rng           *rand.Rand
	activation    ActivationType
	nextSpeciesID int
}

// NewEvaluator creates an Evaluator whose first generation is PopSize
// copies of seed. nodes and genes must be the counters seed was built
// with; they keep issuing ids for the rest of the run.
func NewEvaluator(config *Config, seed *Genome, nodes, genes *Counter) (*Evaluator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	activation, err := GetActivation(config.Network.Activation)
	if err != nil {
		return nil, err
	}

	genomes := make([]*Genome, 0, config.Evaluator.PopSize)
	for i := 0; i < config.Evaluator.PopSize; i++ {
		genomes = append(genomes, seed.Copy())
	}

	return &Evaluator{
		Config:        config,
		Genomes:       genomes,
		NodeCounter:   nodes,
		GeneCounter:   genes,
		HighestScore:  negativeInf,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:           rand.New(rand.NewSource(config.Evaluator.Seed)),
		activation:    activation,
		nextSpeciesID: 1,
	}, nil
}

// Evaluate runs one generation: speciate, score every genome on data,
// carry each species' champion over and breed the rest of the next
// generation. A genome that cannot be scored aborts the generation; the
// population is then left as it was and the error is returned.
func (e *Evaluator) Evaluate(ctx context.Context, data Dataset) (*GenerationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	generation := e.Generation + 1

	membership := e.speciate(generation)

	fitnesses, err := e.score(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("scoring failed in generation %d: %w", generation, err)
	}

	best := negativeInf
	var fittest *Genome
	for i, g := range e.Genomes {
		membership[i].AddScore(g, fitnesses[i])
		if fitnesses[i] > best {
			best = fitnesses[i]
			fittest = g
		}
	}
	for _, s := range e.Species {
		s.updateStagnation(generation)
	}

	report := newGenerationReport(generation, e.Species, fitnesses, best, fittest)

	e.Genomes = e.reproduce()
	e.Generation = generation
	e.HighestScore = best
	e.FittestGenome = fittest

	e.Logger.Info("generation complete",
		"generation", generation,
		"species", len(e.Species),
		"best", best,
		"mean", report.MeanFitness,
	)
	return report, nil
}

// Run evaluates up to generations generations and returns the last report.
// It stops early once the fitness threshold is met, unless
// NoFitnessTermination is set, or when ctx is done between generations.
func (e *Evaluator) Run(ctx context.Context, data Dataset, generations int) (*GenerationReport, error) {
	var last *GenerationReport
	for i := 0; i < generations; i++ {
		report, err := e.Evaluate(ctx, data)
		if err != nil {
			return last, err
		}
		last = report
		if !e.Config.Evaluator.NoFitnessTermination && report.HighestScore >= e.Config.Evaluator.FitnessThreshold {
			e.Logger.Info("fitness threshold met",
				"generation", report.Generation,
				"best", report.HighestScore,
			)
			break
		}
	}
	return last, nil
}

// speciate resets every species, assigns each genome to the first species
// whose mascot is close enough (or founds a new one), and drops species
// left without members. It returns each genome's species, by genome index.
func (e *Evaluator) speciate(generation int) []*Species {
	for _, s := range e.Species {
		s.Reset(e.rng)
	}

	sc := e.Config.Speciation
	membership := make([]*Species, len(e.Genomes))
	for i, g := range e.Genomes {
		for _, s := range e.Species {
			if CompatibilityDistance(g, s.Mascot, sc.C1, sc.C2, sc.C3) < sc.CompatibilityThreshold {
				s.Add(g)
				membership[i] = s
				break
			}
		}
		if membership[i] == nil {
			s := NewSpecies(e.nextSpeciesID, generation, g)
			e.nextSpeciesID++
			e.Species = append(e.Species, s)
			membership[i] = s
			e.Logger.Debug("created new species", "species", s.ID, "generation", generation)
		}
	}

	alive := e.Species[:0]
	for _, s := range e.Species {
		if s.Size() == 0 {
			e.Logger.Debug("species died out", "species", s.ID, "generation", generation)
			continue
		}
		alive = append(alive, s)
	}
	e.Species = alive
	return membership
}

// score returns the raw fitness of every genome, by genome index. With
// more than one worker the genomes are scored concurrently; scoring draws
// no random numbers and each genome belongs to a single task, so the
// result does not depend on the worker count.
func (e *Evaluator) score(ctx context.Context, data Dataset) ([]float64, error) {
	fitnesses := make([]float64, len(e.Genomes))

	if e.Config.Evaluator.Workers <= 1 {
		for i, g := range e.Genomes {
			f, err := EvaluateGenome(g, data, e.activation)
			if err != nil {
				return nil, fmt.Errorf("genome %d: %w", i, err)
			}
			fitnesses[i] = f
		}
		return fitnesses, nil
	}

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(e.Config.Evaluator.Workers)
	for i, g := range e.Genomes {
		i, g := i, g
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := EvaluateGenome(g, data, e.activation)
			if err != nil {
				return fmt.Errorf("genome %d: %w", i, err)
			}
			fitnesses[i] = f
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return fitnesses, nil
}
