// Package bfs provides breadth-first search and connected-component
// discovery over a citygraph.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: hop count from start per node (Unvisited if never reached)
//   - Parent: predecessor in the BFS tree per node
//   - Components partitions the graph into its connected pieces.
//
// Why
//
//   - Tell "no road at all" apart from "long road" before or after a
//     Dijkstra query: two cities in different components have no path.
//   - Report graph connectivity from the CLI inspect command and the
//     server's /stats endpoint.
//
// Determinism
//
//	citygraph.Neighbors yields edges in load order, and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx error or hook error
//	}
//	comps := bfs.Components(g)
package bfs
