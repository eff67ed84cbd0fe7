// Package bfs provides breadth-first search over a citygraph.Graph,
// returning hop distances, parent links, and visit order, plus
// connected-component discovery.
package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cityroute/citygraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *citygraph.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by OnVisit.
func BFS(g *citygraph.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unvisited),
			Parent: filled(n, Unvisited),
		},
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue records depth and parent for id and queues it.
func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for e := range w.graph.Neighbors(id) {
			if w.res.Depth[e.To] == Unvisited {
				w.enqueue(e.To, next, id)
			}
		}
	}

	return nil
}

// Components partitions g into connected components. Each component lists
// its node IDs in ascending order; components are ordered by their
// smallest ID. A nil graph has no components.
func Components(g *citygraph.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	comp := filled(n, Unvisited)
	var out [][]int
	for s := 0; s < n; s++ {
		if comp[s] != Unvisited {
			continue
		}
		idx := len(out)
		members := []int{s}
		stack := []int{s}
		comp[s] = idx
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for e := range g.Neighbors(u) {
				if comp[e.To] == Unvisited {
					comp[e.To] = idx
					members = append(members, e.To)
					stack = append(stack, e.To)
				}
			}
		}
		slices.Sort(members)
		out = append(out, members)
	}

	return out
}

// Connected reports whether every node of g can reach every other node.
// Graphs with fewer than two nodes are connected.
func Connected(g *citygraph.Graph) bool {
	return len(Components(g)) <= 1
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
