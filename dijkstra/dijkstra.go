// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// citygraph.Graph, driven by an indexed min-heap with decrease-key.
//
// Notes on implementation choices:
//
//   - Every node enters the heap once at initialization (source at 0, the
//     rest at Infinity). Improvements call DecreaseKey, so the heap never
//     holds stale duplicates.
//   - Finalization is tracked in an explicit settled slice rather than
//     inferred from heap membership.
//   - A node popped at Infinity is unreachable; it is settled but never
//     relaxes its edges, so Infinity is never added to.
//   - The relax loop owns all of its state; the Engine only remembers the
//     reconstructed path of its last query.
package dijkstra

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/minheap"
)

// ShortestPaths runs the relax loop from source and returns the complete
// distance/predecessor table. The table belongs to the caller.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.NodeCount()) (ErrUnknownNode).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPaths(g *citygraph.Graph, source int) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrUnknownNode, source)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      minheap.New(n),
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Table{
		Source:      source,
		Dist:        r.dist,
		Prev:        r.prev,
		Settled:     r.settledCount,
		Relaxations: r.relaxations,
	}, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *citygraph.Graph // read-only
	source  int
	dist    []int64 // node → best known distance
	prev    []int   // node → predecessor, None if unset
	settled []bool  // node → distance is final
	pq      *minheap.Heap

	settledCount int
	relaxations  int
}

// init sets dist = Infinity and prev = None for every node, dist[source] = 0,
// and queues every node with its initial distance.
func (r *runner) init() error {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = None
	}
	r.dist[r.source] = 0

	for v := range r.dist {
		if err := r.pq.Insert(v, r.dist[v]); err != nil {
			return fmt.Errorf("%w: queue node %d: %w", ErrInternal, v, err)
		}
	}

	return nil
}

// process pops the closest unsettled node until the heap is empty.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, err := r.pq.RemoveMin()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		r.settled[u] = true

		// Everything still queued is unreachable as well; drain without relaxing.
		if r.dist[u] == Infinity {
			continue
		}
		r.settledCount++

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every unsettled neighbor of u through u.
// Assumes dist[u] is final and finite.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for e := range r.g.Neighbors(u) {
		v := e.To
		if r.settled[v] {
			continue
		}
		// Saturate instead of wrapping: such a sum can never beat a real distance.
		if e.Weight > Infinity-du {
			continue
		}
		cand := du + e.Weight
		if cand >= r.dist[v] {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.relaxations++
		if err := r.pq.DecreaseKey(v, cand); err != nil {
			return fmt.Errorf("%w: relax %d→%d: %w", ErrInternal, u, v, err)
		}
	}

	return nil
}

// PathTo backtracks predecessors from dest to the table's source.
// It returns the node sequence source..dest inclusive and its total cost,
// summed from the graph's edge weights. An unreachable dest yields an
// empty path and cost 0.
func (t *Table) PathTo(g *citygraph.Graph, dest int) ([]int, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if dest < 0 || dest >= len(t.Dist) {
		return nil, 0, fmt.Errorf("%w: destination %d", ErrUnknownNode, dest)
	}
	if t.Dist[dest] == Infinity {
		return []int{}, 0, nil
	}

	// Collect dest→source, then reverse. A chain longer than n is a cycle.
	rev := make([]int, 0, 8)
	for v := dest; v != None; v = t.Prev[v] {
		if len(rev) > len(t.Prev) {
			return nil, 0, fmt.Errorf("%w: predecessor cycle at %d", ErrInternal, v)
		}
		rev = append(rev, v)
	}
	if rev[len(rev)-1] != t.Source {
		return nil, 0, fmt.Errorf("%w: chain from %d ends at %d, not source %d",
			ErrInternal, dest, rev[len(rev)-1], t.Source)
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	var cost int64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if !ok {
			return nil, 0, fmt.Errorf("%w: no edge %d→%d on path", ErrInternal, path[i], path[i+1])
		}
		cost += w
	}

	return path, cost, nil
}

// Engine answers shortest-path queries on one graph and remembers the
// path of its last query for the display layer.
//
// An Engine is not safe for concurrent use; give each goroutine its own.
// Engines sharing a graph never interfere.
type Engine struct {
	g     *citygraph.Graph
	opts  Options
	state State
	path  []int
	cost  int64
}

// New returns an Engine over g.
func New(g *citygraph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{g: g, opts: cfg}, nil
}

// Graph returns the graph the engine queries.
func (e *Engine) Graph() *citygraph.Graph { return e.g }

// State returns the engine's life-cycle state.
func (e *Engine) State() State { return e.state }

// ComputeShortestPath returns the node IDs of a shortest path from source
// to dest, both inclusive. An unreachable dest yields an empty slice and
// a nil error. The result replaces any previously stored path.
func (e *Engine) ComputeShortestPath(source, dest int) ([]int, error) {
	if !e.g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrUnknownNode, source)
	}
	if !e.g.HasNode(dest) {
		return nil, fmt.Errorf("%w: destination %d", ErrUnknownNode, dest)
	}

	start := time.Now()
	e.state = StateRelaxing
	e.path, e.cost = nil, 0

	t, err := ShortestPaths(e.g, source)
	if err != nil {
		e.state = StateUninitialized
		return nil, err
	}
	path, cost, err := t.PathTo(e.g, dest)
	if err != nil {
		e.state = StateUninitialized
		return nil, err
	}

	e.path, e.cost = path, cost
	e.state = StateReconstructed

	stats := QueryStats{
		Source:      source,
		Destination: dest,
		Settled:     t.Settled,
		Relaxations: t.Relaxations,
		Found:       len(path) > 0,
		Cost:        cost,
		Duration:    time.Since(start),
	}
	e.opts.Logger.Debug("dijkstra: query done",
		"source", source,
		"destination", dest,
		"found", stats.Found,
		"hops", max(len(path)-1, 0),
		"cost", cost,
		"settled", stats.Settled,
		"relaxations", stats.Relaxations,
		"duration", stats.Duration,
	)
	if e.opts.Observer != nil {
		e.opts.Observer.ObserveQuery(stats)
	}

	return e.Path(), nil
}

// ComputeShortestPathByLabel resolves both labels and runs ComputeShortestPath.
func (e *Engine) ComputeShortestPathByLabel(from, to string) ([]int, error) {
	src, err := e.g.ID(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}
	dst, err := e.g.ID(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}

	return e.ComputeShortestPath(src, dst)
}

// Path returns a copy of the last reconstructed path, or nil if none.
func (e *Engine) Path() []int {
	if e.path == nil {
		return nil
	}
	out := make([]int, len(e.path))
	copy(out, e.path)

	return out
}

// Cost returns the total weight of the last path; 0 when none or unreachable.
func (e *Engine) Cost() int64 { return e.cost }

// PathSegments returns the last path as drawable segments.
// An unreachable destination yields an empty slice; no query at all
// yields ErrNoPathComputed.
func (e *Engine) PathSegments() ([]citygraph.Segment, error) {
	if e.state != StateReconstructed {
		return nil, ErrNoPathComputed
	}

	return e.g.PathSegments(e.path)
}

// Reset discards the stored path. Calling it repeatedly is harmless.
func (e *Engine) Reset() {
	e.path, e.cost = nil, 0
	e.state = StateUninitialized
}
