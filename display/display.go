package display

import (
	"math"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// PixelTolerance is the half-width, in pixels, of the square around a city
// that still counts as a click on it.
const PixelTolerance = 5.0

// NodeAt returns the first node (in ID order) within PixelTolerance of p
// on both axes.
func NodeAt(g *citygraph.Graph, p citygraph.Point) (citygraph.Node, bool) {
	return NodeAtWithin(g, p, PixelTolerance)
}

// NodeAtWithin is NodeAt with an explicit tolerance. Distances must be
// strictly below tol; a non-positive tol never matches.
func NodeAtWithin(g *citygraph.Graph, p citygraph.Point, tol float64) (citygraph.Node, bool) {
	if g == nil || tol <= 0 {
		return citygraph.Node{}, false
	}
	for _, n := range g.Nodes() {
		if math.Abs(p.X-n.Location.X) < tol && math.Abs(p.Y-n.Location.Y) < tol {
			return n, true
		}
	}

	return citygraph.Node{}, false
}

// NodePoints returns every node location in ID order.
func NodePoints(g *citygraph.Graph) []citygraph.Point {
	if g == nil {
		return nil
	}
	out := make([]citygraph.Point, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		out = append(out, n.Location)
	}

	return out
}

// EdgeSegments returns one segment per road. Each undirected road is
// stored twice in the graph; only the entry with From ≤ To is drawn, so
// parallel roads still appear once each.
func EdgeSegments(g *citygraph.Graph) []citygraph.Segment {
	if g == nil {
		return nil
	}
	out := make([]citygraph.Segment, 0, g.EdgeCount())
	nodes := g.Nodes()
	for u := range nodes {
		selfLoops := 0
		for e := range g.Neighbors(u) {
			if e.To < u {
				continue
			}
			// A self-loop is stored as two entries in u's own list.
			if e.To == u {
				selfLoops++
				if selfLoops%2 == 0 {
					continue
				}
			}
			out = append(out, citygraph.Segment{From: nodes[u].Location, To: nodes[e.To].Location})
		}
	}

	return out
}

// Path returns the engine's last path as segments. It is the only engine
// surface a renderer needs; dijkstra.ErrNoPathComputed means "draw nothing".
func Path(e *dijkstra.Engine) ([]citygraph.Segment, error) {
	return e.PathSegments()
}

// Clear forgets the engine's last path, as a "reset" button would.
func Clear(e *dijkstra.Engine) {
	e.Reset()
}
