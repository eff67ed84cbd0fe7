// Package dijkstra defines core types and configuration options
// for the single-source shortest-path engine over a citygraph.Graph.
//
// Every query owns a fresh Table (distance + predecessor per node), a
// fresh indexed min-heap and a settled flag per node. Nothing is carried
// over between queries, so the read-only graph can be shared by any number
// of engines running at the same time.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |adjacency entries|
//	   • Every node is inserted once and removed once (V inserts, V removals).
//	   • Every improving relaxation is one decrease-key (at most E).
//	   • Each heap operation costs O(log V).
//	– Space: O(V) per query for the table, the heap and the settled flags.
//
// Options:
//
//	– WithLogger:   structured logger for query tracing (default slog.Default()).
//	– WithObserver: receives QueryStats after every successful query.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the engine is built on a nil graph.
//	– ErrUnknownNode     if a source or destination is not a node of the graph.
//	– ErrNoPathComputed  if segments are requested before any query (or after Reset).
//	– ErrInternal        if the heap reports misuse; indicates a bug, never bad input.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"
	"time"
)

// Infinity is the distance of a node no path reaches.
const Infinity int64 = math.MaxInt64

// None is the predecessor of the source and of unreached nodes.
const None = -1

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *citygraph.Graph was passed to New or ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates a query referenced an ID outside [0, n) or an unknown label.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrNoPathComputed indicates PathSegments was called with no stored path.
	ErrNoPathComputed = errors.New("dijkstra: no path computed")

	// ErrInternal indicates the engine broke the heap contract.
	ErrInternal = errors.New("dijkstra: internal consistency fault")
)

// State is the engine's position in the query life cycle.
type State int

const (
	// StateUninitialized means no path is stored.
	StateUninitialized State = iota

	// StateRelaxing means a query's relax loop is running.
	StateRelaxing

	// StateReconstructed means the last query's path is stored.
	StateReconstructed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRelaxing:
		return "relaxing"
	case StateReconstructed:
		return "reconstructed"
	default:
		return "unknown"
	}
}

// Table is the per-query result of the relax loop.
//
// Dist[v] is the shortest distance from Source to v, or Infinity.
// Prev[v] is v's predecessor on one shortest path, or None.
type Table struct {
	Source int
	Dist   []int64
	Prev   []int

	// Settled counts nodes popped from the heap with a finite distance.
	Settled int

	// Relaxations counts successful distance improvements.
	Relaxations int
}

// QueryStats summarises one ComputeShortestPath call for observers.
type QueryStats struct {
	Source      int
	Destination int
	Settled     int
	Relaxations int
	Found       bool
	Cost        int64
	Duration    time.Duration
}

// Observer receives statistics for every completed query.
type Observer interface {
	ObserveQuery(QueryStats)
}

// Options configures an Engine.
type Options struct {
	Logger   *slog.Logger // query tracing; nil means slog.Default()
	Observer Observer     // optional; nil disables reporting
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the logger used for query tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer for query statistics.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns an Options with slog.Default() and no observer.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
	}
}
