package citygraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrMalformedInput is the class error of every failed Load.
	// A more precise sentinel is wrapped alongside it where one applies.
	ErrMalformedInput = errors.New("citygraph: malformed input")

	// ErrDuplicateLabel indicates a node label was declared twice.
	ErrDuplicateLabel = errors.New("citygraph: duplicate label")

	// ErrUnknownLabel indicates an edge references a label with no node.
	ErrUnknownLabel = errors.New("citygraph: unknown label")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("citygraph: negative edge weight")

	// ErrEmptyLabel indicates a node was added with an empty label.
	ErrEmptyLabel = errors.New("citygraph: empty label")

	// ErrNodeNotFound indicates a label or ID lookup missed.
	ErrNodeNotFound = errors.New("citygraph: node not found")
)

// Point is a 2D pixel or geographic coordinate.
type Point struct {
	X float64
	Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Node is a single city. ID equals the node's read order.
type Node struct {
	// ID is the dense index of the node in [0, NodeCount()).
	ID int

	// Label is the unique city name.
	Label string

	// Location is the city's coordinate.
	Location Point
}

// Edge is one directed adjacency entry.
type Edge struct {
	// To is the neighbor's node ID.
	To int

	// Weight is the non-negative travel cost.
	Weight int64
}

// Segment is a drawable line between two points.
type Segment struct {
	From Point
	To   Point
}

// Graph is the immutable city graph.
//
// nodes[i].ID == i for every i, and len(adjacency) == len(nodes).
type Graph struct {
	nodes     []Node
	adjacency [][]Edge
	index     map[string]int // label → ID
	edgeCount int            // undirected edges
}
