package neat

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/topo"
)

// Record is one supervised example: a value for every input node id and a
// target for every output node id it declares.
type Record struct {
	Inputs  map[int]float64
	Outputs map[int]float64
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Network is a genome compiled for repeated forward passes.
// It holds pointers into the genome, so node values computed by Activate
// are visible on the genome's nodes. A Network must not be shared between goroutines.
type Network struct {
	genome     *Genome
	activation ActivationType
	inputs     []*Node         // Input nodes in id order
	order      []*Node         // Non-input nodes in evaluation order
	incoming   map[int][]*Gene // Node id -> enabled incoming genes, by innovation
}

// NewNetwork compiles g into a Network. Nodes are ordered so that every
// node comes after the sources of its enabled incoming genes. An enabled
// gene that touches a node the genome does not have, a self loop, or a
// cycle among enabled genes makes the genome unevaluable.
func NewNetwork(g *Genome, activation ActivationType) (*Network, error) {
	if activation == nil {
		activation = Sigmoid
	}
	incoming := make(map[int][]*Gene)
	for _, innovation := range g.Innovations() {
		gene := g.Genes[innovation]
		if !gene.Enabled {
			continue
		}
		for _, id := range []int{gene.inNode, gene.outNode} {
			if _, ok := g.Nodes[id]; !ok {
				return nil, &UnevaluableGraphError{
					Unresolved: []int{gene.outNode},
					Reason:     fmt.Sprintf("gene %d references missing node %d", innovation, id),
				}
			}
		}
		if gene.inNode == gene.outNode {
			return nil, &UnevaluableGraphError{
				Unresolved: []int{gene.outNode},
				Reason:     fmt.Sprintf("gene %d loops onto its own node", innovation),
			}
		}
		incoming[gene.outNode] = append(incoming[gene.outNode], gene)
	}

	sorted, err := topo.SortStabilized(g.digraph(true), nil)
	if err != nil {
		var cycles topo.Unorderable
		if !errors.As(err, &cycles) {
			return nil, &UnevaluableGraphError{Reason: err.Error()}
		}
		var unresolved []int
		for _, component := range cycles {
			for _, n := range component {
				unresolved = append(unresolved, int(n.ID()))
			}
		}
		sort.Ints(unresolved)
		return nil, &UnevaluableGraphError{Unresolved: unresolved, Reason: "enabled genes form a cycle"}
	}

	net := &Network{
		genome:     g,
		activation: activation,
		incoming:   incoming,
	}
	for _, n := range sorted {
		node := g.Nodes[int(n.ID())]
		if node.Type == InputNode {
			net.inputs = append(net.inputs, node)
			continue
		}
		net.order = append(net.order, node)
	}
	sort.Slice(net.inputs, func(i, j int) bool { return net.inputs[i].ID < net.inputs[j].ID })
	return net, nil
}

// Activate runs one forward pass. Every input node takes its value from
// inputs; every other node becomes the sum, over its enabled incoming
// genes, of weight * activation(source value). Input values therefore
// enter the first layer of genes already squashed, and a node's own value
// stays unsquashed until it feeds the next gene. The values of all output
// nodes are returned by id.
func (net *Network) Activate(inputs map[int]float64) (map[int]float64, error) {
	for _, node := range net.inputs {
		v, ok := inputs[node.ID]
		if !ok {
			return nil, &InvalidDataError{NodeID: node.ID, Reason: "missing input value"}
		}
		node.Value = v
	}

	outputs := make(map[int]float64)
	for _, node := range net.order {
		value := 0.0
		for _, gene := range net.incoming[node.ID] {
			value += gene.Weight * net.activation(net.genome.Nodes[gene.inNode].Value)
		}
		node.Value = value
		if node.Type == OutputNode {
			outputs[node.ID] = value
		}
	}
	return outputs, nil
}

// Error runs a forward pass on record and returns its squared error:
// the sum over declared outputs of (target - computed)^2, divided by
// twice the number of outputs.
func (net *Network) Error(record Record) (float64, error) {
	if len(record.Outputs) == 0 {
		return 0, &InvalidDataError{NodeID: -1, Reason: "record declares no outputs"}
	}
	computed, err := net.Activate(record.Inputs)
	if err != nil {
		return 0, err
	}

	ids := sortedKeys(record.Outputs)
	sum := 0.0
	for _, id := range ids {
		value, ok := computed[id]
		if !ok {
			return 0, &InvalidDataError{NodeID: id, Reason: "target names a node that is not an output of the genome"}
		}
		diff := record.Outputs[id] - value
		sum += diff * diff
	}
	return sum / float64(2*len(ids)), nil
}

// EvaluateGenome scores g on data: 1 minus the mean per-record error.
// A perfect genome scores 1; poor genomes can score below 0.
// Both error kinds are fatal and abort the evaluation with no partial score.
func EvaluateGenome(g *Genome, data Dataset, activation ActivationType) (float64, error) {
	if len(data) == 0 {
		return 0, &InvalidDataError{NodeID: -1, Reason: "empty dataset"}
	}
	net, err := NewNetwork(g, activation)
	if err != nil {
		return 0, err
	}
	errorSum := 0.0
	for i, record := range data {
		e, err := net.Error(record)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		errorSum += e
	}
	return 1 - errorSum/float64(len(data)), nil
}
