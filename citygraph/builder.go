package citygraph

import "fmt"

// Builder accumulates nodes and edges and produces an immutable Graph.
// A Builder is not safe for concurrent use and must not be reused after Build.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty Builder. capacityHint pre-sizes node storage.
func NewBuilder(capacityHint int) *Builder {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Builder{g: &Graph{
		nodes:     make([]Node, 0, capacityHint),
		adjacency: make([][]Edge, 0, capacityHint),
		index:     make(map[string]int, capacityHint),
	}}
}

// AddNode appends a node and returns its ID, which equals the number of
// nodes added before it.
func (b *Builder) AddNode(label string, at Point) (int, error) {
	if label == "" {
		return -1, ErrEmptyLabel
	}
	if _, dup := b.g.index[label]; dup {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	id := len(b.g.nodes)
	b.g.nodes = append(b.g.nodes, Node{ID: id, Label: label, Location: at})
	b.g.adjacency = append(b.g.adjacency, nil)
	b.g.index[label] = id

	return id, nil
}

// AddEdge inserts the undirected road a-b as two directed entries.
func (b *Builder) AddEdge(a, c string, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, a, c, weight)
	}
	u, ok := b.g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, a)
	}
	v, ok := b.g.index[c]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, c)
	}
	b.addArc(u, v, weight)
	b.addArc(v, u, weight)
	b.g.edgeCount++

	return nil
}

// NodeCount reports how many nodes have been added so far.
func (b *Builder) NodeCount() int {
	return len(b.g.nodes)
}

// Build returns the finished Graph.
func (b *Builder) Build() *Graph {
	g := b.g
	b.g = nil

	return g
}

// addArc appends u→v. IDs come from the label index, so an out-of-range
// endpoint means the builder itself is corrupt.
func (b *Builder) addArc(u, v int, weight int64) {
	if u < 0 || u >= len(b.g.adjacency) || v < 0 || v >= len(b.g.adjacency) {
		panic(fmt.Sprintf("citygraph: arc %d→%d outside [0,%d)", u, v, len(b.g.adjacency)))
	}
	b.g.adjacency[u] = append(b.g.adjacency[u], Edge{To: v, Weight: weight})
}
