package citygraph

import (
	"fmt"
	"iter"
)

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges loaded.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasNode reports whether id is in [0, NodeCount()).
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// ID returns the node ID for label, or ErrNodeNotFound.
func (g *Graph) ID(label string) (int, error) {
	id, ok := g.index[label]
	if !ok {
		return -1, fmt.Errorf("%w: label %q", ErrNodeNotFound, label)
	}

	return id, nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id int) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// CoordinateOf returns the location of node id.
func (g *Graph) CoordinateOf(id int) (Point, error) {
	n, err := g.Node(id)
	if err != nil {
		return Point{}, err
	}

	return n.Location, nil
}

// Nodes returns a copy of all nodes in ID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Labels returns every node label in ID order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label
	}

	return out
}

// Neighbors returns a lazy sequence over the adjacency entries of id.
// Each call yields a fresh, finite walk. An out-of-range id yields nothing.
func (g *Graph) Neighbors(id int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.HasNode(id) {
			return
		}
		for _, e := range g.adjacency[id] {
			if !yield(e) {
				return
			}
		}
	}
}

// Degree returns the number of adjacency entries of id (0 when out of range).
func (g *Graph) Degree(id int) int {
	if !g.HasNode(id) {
		return 0
	}

	return len(g.adjacency[id])
}

// EdgeWeight scans u's adjacency list for v and returns the edge weight.
// With parallel roads between u and v the cheapest one is reported.
func (g *Graph) EdgeWeight(u, v int) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for e := range g.Neighbors(u) {
		if e.To != v {
			continue
		}
		if !found || e.Weight < best {
			best = e.Weight
			found = true
		}
	}

	return best, found
}

// PathSegments turns a sequence of node IDs into the segments joining
// each consecutive pair. A path shorter than two nodes has no segments.
func (g *Graph) PathSegments(path []int) ([]Segment, error) {
	if len(path) < 2 {
		return []Segment{}, nil
	}
	out := make([]Segment, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		from, err := g.CoordinateOf(path[i])
		if err != nil {
			return nil, err
		}
		to, err := g.CoordinateOf(path[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, Segment{From: from, To: to})
	}

	return out, nil
}
