package neat

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// digraph builds a directed graph view of the genome: one vertex per node
// and one edge per gene. When enabledOnly is set, disabled genes are left out.
// Genes that loop back onto their own node are skipped; callers that care
// about them check for them separately.
func (g *Genome) digraph(enabledOnly bool) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for _, id := range g.NodeIDs() {
		dg.AddNode(simple.Node(id))
	}
	for _, innovation := range g.Innovations() {
		gene := g.Genes[innovation]
		if enabledOnly && !gene.Enabled {
			continue
		}
		if gene.inNode == gene.outNode {
			continue
		}
		// SetEdge adds endpoints that are missing from the graph.
		dg.SetEdge(dg.NewEdge(simple.Node(gene.inNode), simple.Node(gene.outNode)))
	}
	return dg
}

// reachable reports whether target can be reached from source by
// following genes forward, whether they are enabled or not.
func (g *Genome) reachable(source, target int) bool {
	dg := g.digraph(false)
	if dg.Node(int64(source)) == nil {
		return false
	}
	var bfs traverse.BreadthFirst
	found := bfs.Walk(dg, simple.Node(source), func(n graph.Node, _ int) bool {
		return n.ID() == int64(target)
	})
	return found != nil
}
