// Package citygraph holds the read-only graph of cities that every
// shortest-path query runs against.
//
// A Graph is a dense array of nodes (the node ID is its index) plus an
// adjacency list of weighted, directed entries. Every undirected road
// (u, v, w) is stored twice, once as u→v and once as v→u, so a walk over
// Neighbors(u) sees every road touching u.
//
// Construction:
//
//   - Load / LoadFile parse the line-oriented text format:
//
//     NODES
//     <count>
//     <label> <x> <y>            (count times)
//     ARCS
//     <labelA> <labelB> <weight> (until end of input)
//
//   - Builder adds nodes and edges programmatically; the loader and the
//     generator both go through it.
//
// Once built, a Graph never changes. It carries no locks and any number
// of goroutines may read it at the same time.
//
// Errors (sentinel):
//
//	ErrMalformedInput  – the text source violates the format; always the class error of a failed load.
//	ErrDuplicateLabel  – two nodes share a label.
//	ErrUnknownLabel    – an edge names a label that was never declared.
//	ErrNegativeWeight  – an edge weight is below zero.
//	ErrNodeNotFound    – lookup by label or ID missed.
package citygraph
