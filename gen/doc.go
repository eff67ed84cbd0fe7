// Package gen builds synthetic city graphs and writes graphs back out in
// the NODES/ARCS text format read by citygraph.Load.
//
// Grid lays out rows×cols cities on a square lattice and perturbs it with
// OpenSimplex noise so that the result looks like a road map rather than
// graph paper:
//
//   - every city is displaced by up to Jitter×Spacing along each axis;
//   - each city is joined to its right and bottom neighbours;
//   - a cell gets a diagonal road when the noise at its centre falls below
//     DiagonalProb;
//   - a road's weight is its Euclidean length multiplied by a terrain factor
//     in [1, 2] sampled at the road's midpoint, rounded, and never below 1.
//
// The same Config (Seed included) always yields the same graph, so
// generated graphs can be checked into testdata and compared byte for byte.
//
// Labels are "C<row>_<col>", zero-based, in row-major order; node IDs follow
// the same order.
//
// Write serialises any *citygraph.Graph, one line per undirected road, and
// the output loads back into an equal graph.
package gen
