// Package dijkstra provides the shortest-path engine of cityroute: given a
// loaded citygraph.Graph, it finds a minimum-cost route between two cities.
//
// Overview:
//
//   - ShortestPaths computes the full distance/predecessor Table from one
//     source in O((V + E) log V), using minheap's indexed heap so each
//     relaxation is a true decrease-key.
//   - Table.PathTo backtracks predecessors into an ordered node sequence and
//     sums the edge weights along it.
//   - Engine wraps both for interactive use: it stores the last path so a
//     display layer can ask for line segments, and forgets it on Reset.
//
// Query life cycle (per Engine):
//
//	Uninitialized ──ComputeShortestPath──▶ Relaxing ──▶ Reconstructed
//	      ▲                                                  │
//	      └──────────────────────── Reset ───────────────────┘
//
// Unreachable destinations are not errors: ComputeShortestPath returns an
// empty path, Cost reports 0 and PathSegments returns no segments.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if New or ShortestPaths receives a nil graph.
//   - ErrUnknownNode:
//     Returned if a source or destination ID is outside [0, n), or a label is
//     not in the graph (also wraps citygraph.ErrNodeNotFound in that case).
//   - ErrNoPathComputed:
//     Returned by PathSegments before the first query or after Reset.
//   - ErrInternal:
//     Wraps a minheap error. A correct engine on a valid graph never returns it.
//
// API reference:
//
//	func ShortestPaths(g *citygraph.Graph, source int) (*Table, error)
//	func (t *Table) PathTo(g *citygraph.Graph, dest int) ([]int, int64, error)
//
//	func New(g *citygraph.Graph, opts ...Option) (*Engine, error)
//	func (e *Engine) ComputeShortestPath(source, dest int) ([]int, error)
//	func (e *Engine) ComputeShortestPathByLabel(from, to string) ([]int, error)
//	func (e *Engine) Cost() int64
//	func (e *Engine) PathSegments() ([]citygraph.Segment, error)
//	func (e *Engine) Reset()
//
// Thread safety:
//
//   - The graph is immutable and may be shared by any number of engines.
//   - An Engine holds its last path and must not be used from two goroutines
//     at once. Create one Engine per goroutine (the HTTP server creates one
//     per request).
//
// See also:
//
//   - citygraph: loading graphs and coordinate lookup.
//   - minheap: the indexed priority queue used by the relax loop.
//   - display: pixel hit-testing and segment export for renderers.
package dijkstra
