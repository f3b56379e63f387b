package neat

import "fmt"

// NodeType is the role a node plays in a network graph.
type NodeType int

const (
	InputNode NodeType = iota
	HiddenNode
	OutputNode
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case InputNode:
		return "input"
	case HiddenNode:
		return "hidden"
	case OutputNode:
		return "output"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// --------------------------- Node ---------------------------

// Node is a vertex in a genome's network graph.
type Node struct {
	ID   int      // Unique within a genome, allocated from the node Counter.
	Type NodeType // Input, hidden or output.
	// Value is transient: it is overwritten on every forward pass.
	Value float64
}

// NewNode creates a node of the given type with a zero value.
func NewNode(t NodeType, id int) *Node {
	return &Node{ID: id, Type: t}
}

// Copy creates an independent copy of the node. The transient value is not carried over.
func (n *Node) Copy() *Node {
	return &Node{ID: n.ID, Type: n.Type}
}

// String returns a string representation of the Node.
func (n *Node) String() string {
	return fmt.Sprintf("Node(ID: %d, Type: %s)", n.ID, n.Type)
}

// --------------------------- Gene ---------------------------

// Gene is a directed, weighted connection between two node ids.
// Its innovation number and endpoints never change after creation;
// only Weight and Enabled are mutable. Removed connections are disabled,
// never deleted, so that genomes can still be aligned historically.
type Gene struct {
	innovation int
	inNode     int
	outNode    int

	Weight  float64
	Enabled bool
}

// NewGene creates a gene from inNode to outNode tagged with innovation.
func NewGene(inNode, outNode int, weight float64, enabled bool, innovation int) *Gene {
	return &Gene{
		innovation: innovation,
		inNode:     inNode,
		outNode:    outNode,
		Weight:     weight,
		Enabled:    enabled,
	}
}

// Innovation returns the gene's permanent historical marking.
func (g *Gene) Innovation() int { return g.innovation }

// InNode returns the id of the source node.
func (g *Gene) InNode() int { return g.inNode }

// OutNode returns the id of the target node.
func (g *Gene) OutNode() int { return g.outNode }

// Copy creates an independent copy of the Gene.
func (g *Gene) Copy() *Gene {
	return &Gene{
		innovation: g.innovation,
		inNode:     g.inNode,
		outNode:    g.outNode,
		Weight:     g.Weight,
		Enabled:    g.Enabled,
	}
}

// Connects reports whether the gene joins a and b in either direction.
func (g *Gene) Connects(a, b int) bool {
	return (g.inNode == a && g.outNode == b) || (g.inNode == b && g.outNode == a)
}

// String returns a string representation of the Gene.
func (g *Gene) String() string {
	return fmt.Sprintf("Gene(Innovation: %d, %d->%d, Weight: %.5f, Enabled: %t)",
		g.innovation, g.inNode, g.outNode, g.Weight, g.Enabled)
}
