package neat

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

const (
	// perturbProbability is the chance a weight is scaled rather than replaced.
	perturbProbability = 0.9
	// weightRange bounds perturbation factors and replacement weights to [-weightRange, weightRange).
	weightRange = 2.0
	// newConnectionWeightMax bounds the weight of a fresh connection to [0, newConnectionWeightMax).
	newConnectionWeightMax = 2.0
)

// Genome represents an individual organism in the population.
// It owns its nodes and genes exclusively; nothing is shared with other genomes.
type Genome struct {
	Nodes map[int]*Node // Map node ID -> Node
	Genes map[int]*Gene // Map innovation number -> Gene
}

// NewGenome creates an empty genome.
func NewGenome() *Genome {
	return &Genome{
		Nodes: make(map[int]*Node),
		Genes: make(map[int]*Gene),
	}
}

// NewMinimalGenome builds the usual starting point of a run: numInputs
// input nodes and numOutputs output nodes allocated from nodes, with every
// input connected to every output by a gene of the given weight.
func NewMinimalGenome(numInputs, numOutputs int, weight float64, nodes, genes *Counter) *Genome {
	g := NewGenome()
	inputs := make([]*Node, 0, numInputs)
	for i := 0; i < numInputs; i++ {
		n := NewNode(InputNode, nodes.Next())
		g.AddNode(n)
		inputs = append(inputs, n)
	}
	outputs := make([]*Node, 0, numOutputs)
	for i := 0; i < numOutputs; i++ {
		n := NewNode(OutputNode, nodes.Next())
		g.AddNode(n)
		outputs = append(outputs, n)
	}
	for _, out := range outputs {
		for _, in := range inputs {
			g.AddGene(NewGene(in.ID, out.ID, weight, true, genes.Next()))
		}
	}
	return g
}

// AddNode inserts node under its id. The caller guarantees the id is unused.
func (g *Genome) AddNode(node *Node) {
	g.Nodes[node.ID] = node
}

// AddGene inserts gene under its innovation number. The caller guarantees the number is unused.
func (g *Genome) AddGene(gene *Gene) {
	g.Genes[gene.innovation] = gene
}

// Copy returns an independent genome with deep-copied nodes and genes.
func (g *Genome) Copy() *Genome {
	c := &Genome{
		Nodes: make(map[int]*Node, len(g.Nodes)),
		Genes: make(map[int]*Gene, len(g.Genes)),
	}
	for id, n := range g.Nodes {
		c.Nodes[id] = n.Copy()
	}
	for innovation, gene := range g.Genes {
		c.Genes[innovation] = gene.Copy()
	}
	return c
}

// NodeIDs returns the genome's node ids in ascending order.
func (g *Genome) NodeIDs() []int {
	return sortedKeys(g.Nodes)
}

// Innovations returns the genome's innovation numbers in ascending order.
func (g *Genome) Innovations() []int {
	return sortedKeys(g.Genes)
}

// String lists the genome's nodes and genes in key order.
func (g *Genome) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Genome(%d nodes, %d genes)", len(g.Nodes), len(g.Genes))
	for _, id := range g.NodeIDs() {
		b.WriteString("\n  ")
		b.WriteString(g.Nodes[id].String())
	}
	for _, innovation := range g.Innovations() {
		b.WriteString("\n  ")
		b.WriteString(g.Genes[innovation].String())
	}
	return b.String()
}

// MutatePerturbWeights visits every gene and either scales its weight by
// a random factor in [-2, 2) (probability 0.9) or replaces it with a random
// value in the same range.
func (g *Genome) MutatePerturbWeights(rng *rand.Rand) {
	for _, innovation := range g.Innovations() {
		gene := g.Genes[innovation]
		if rng.Float64() < perturbProbability {
			gene.Weight *= uniform(rng, -weightRange, weightRange)
		} else {
			gene.Weight = uniform(rng, -weightRange, weightRange)
		}
	}
}

// MutateAddConnection tries up to maxAttempts random node pairs and adds a
// new enabled gene for the first pair that is allowed. Inputs only ever act
// as sources and outputs only as sinks; between other nodes the direction is
// chosen so the new gene cannot close a cycle. It reports whether a gene was added.
func (g *Genome) MutateAddConnection(rng *rand.Rand, genes *Counter, maxAttempts int) bool {
	ids := g.NodeIDs()
	if len(ids) < 2 {
		return false
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		node1 := g.Nodes[ids[rng.Intn(len(ids))]]
		node2 := g.Nodes[ids[rng.Intn(len(ids))]]
		if node1.ID == node2.ID {
			continue
		}
		if node1.Type == node2.Type && node1.Type != HiddenNode {
			continue // input-input and output-output pairs cannot be wired
		}
		if g.connected(node1.ID, node2.ID) {
			continue
		}

		from, to := node1, node2
		switch {
		case node1.Type == HiddenNode && node2.Type == InputNode,
			node1.Type == OutputNode && node2.Type == HiddenNode,
			node1.Type == OutputNode && node2.Type == InputNode:
			from, to = node2, node1
		default:
			if g.reachable(node2.ID, node1.ID) {
				from, to = node2, node1
			}
		}

		g.AddGene(NewGene(from.ID, to.ID, rng.Float64()*newConnectionWeightMax, true, genes.Next()))
		return true
	}
	return false
}

// MutateAddNode splits a random gene: the gene is disabled and replaced by
// a new hidden node with an incoming gene of weight 1 and an outgoing gene
// carrying the old weight. It reports whether a node was added.
func (g *Genome) MutateAddNode(rng *rand.Rand, nodes, genes *Counter) bool {
	innovations := g.Innovations()
	if len(innovations) == 0 {
		return false
	}
	split := g.Genes[innovations[rng.Intn(len(innovations))]]
	split.Enabled = false

	newNode := NewNode(HiddenNode, nodes.Next())
	g.AddNode(newNode)
	g.AddGene(NewGene(split.inNode, newNode.ID, 1.0, true, genes.Next()))
	g.AddGene(NewGene(newNode.ID, split.outNode, split.Weight, true, genes.Next()))
	return true
}

// connected reports whether any gene joins a and b in either direction.
func (g *Genome) connected(a, b int) bool {
	for _, gene := range g.Genes {
		if gene.Connects(a, b) {
			return true
		}
	}
	return false
}

// Crossover builds a child from two parents. fitter must be the parent with
// the higher fitness: the child takes all of its nodes, all of its genes
// that the other parent lacks, and for matching genes a copy of either
// parent's version with equal probability. Genes only lessFit carries are dropped.
func Crossover(rng *rand.Rand, fitter, lessFit *Genome) *Genome {
	child := NewGenome()
	for id, node := range fitter.Nodes {
		child.Nodes[id] = node.Copy()
	}
	for _, innovation := range fitter.Innovations() {
		gene := fitter.Genes[innovation]
		if other, ok := lessFit.Genes[innovation]; ok && rng.Float64() >= 0.5 {
			child.AddGene(other.Copy())
			continue
		}
		child.AddGene(gene.Copy())
	}
	return child
}

// CompatibilityDistance measures how far apart two genomes are:
//
//	c1*excess + c2*disjoint + c3*avgWeightDiff
//
// Excess and disjoint keys are counted in the node id space and in the
// innovation space and the two counts are added together. The average
// weight difference is taken over shared innovations and is 0 when there are none.
func CompatibilityDistance(g1, g2 *Genome, c1, c2, c3 float64) float64 {
	nodeExcess, nodeDisjoint := excessDisjoint(g1.NodeIDs(), g2.NodeIDs())
	geneExcess, geneDisjoint := excessDisjoint(g1.Innovations(), g2.Innovations())
	excess := float64(nodeExcess + geneExcess)
	disjoint := float64(nodeDisjoint + geneDisjoint)
	return c1*excess + c2*disjoint + c3*averageWeightDiff(g1, g2)
}

// averageWeightDiff is the mean absolute weight difference over genes both genomes carry.
func averageWeightDiff(g1, g2 *Genome) float64 {
	matching := 0
	diff := 0.0
	for _, innovation := range g1.Innovations() {
		if gene2, ok := g2.Genes[innovation]; ok {
			diff += math.Abs(g1.Genes[innovation].Weight - gene2.Weight)
			matching++
		}
	}
	if matching == 0 {
		return 0
	}
	return diff / float64(matching)
}

// excessDisjoint counts unmatched keys of two ascending key sets. A key is
// excess when it lies beyond the other set's largest key and disjoint when
// it lies below it. An empty set has no largest key, so every key of the
// other set counts as excess.
func excessDisjoint(keys1, keys2 []int) (excess, disjoint int) {
	set1 := make(map[int]struct{}, len(keys1))
	for _, k := range keys1 {
		set1[k] = struct{}{}
	}
	set2 := make(map[int]struct{}, len(keys2))
	for _, k := range keys2 {
		set2[k] = struct{}{}
	}
	count := func(keys []int, other map[int]struct{}, otherKeys []int) {
		for _, k := range keys {
			if _, ok := other[k]; ok {
				continue
			}
			if len(otherKeys) == 0 || k > otherKeys[len(otherKeys)-1] {
				excess++
			} else {
				disjoint++
			}
		}
	}
	count(keys1, set2, keys2)
	count(keys2, set1, keys1)
	return excess, disjoint
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
