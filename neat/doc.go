// Package neat implements the core loop of NeuroEvolution of Augmenting Topologies (NEAT).
//
// A population of small feed-forward network graphs is grown one node or
// connection at a time. Every generation the genomes are grouped into
// species by compatibility distance, scored against a supervised dataset,
// and bred into the next generation through fitness-proportionate
// selection, crossover aligned by innovation number, and weight and
// structural mutation.
//
// Basic usage:
//
//	nodes, genes := neat.NewCounter(), neat.NewCounter()
//	seed := neat.NewMinimalGenome(2, 1, 0.5, nodes, genes)
//
//	ev, err := neat.NewEvaluator(neat.DefaultConfig(), seed, nodes, genes)
//	if err != nil {
//		log.Fatalf("Error creating evaluator: %v", err)
//	}
//
//	for i := 0; i < 50; i++ {
//		report, err := ev.Evaluate(ctx, data)
//		if err != nil {
//			log.Fatalf("Error running generation: %v", err)
//		}
//		fmt.Println(report)
//	}
//
// The two counters issue node ids and innovation numbers for the whole
// run and must be the ones the seed genome was built with.
package neat
