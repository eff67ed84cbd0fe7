package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/display"
)

// Point is a pixel coordinate on the wire.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a drawable line on the wire.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// NodeResponse describes one city.
type NodeResponse struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// RouteResponse answers GET /route.
type RouteResponse struct {
	QueryID   string    `json:"query_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reachable bool      `json:"reachable"`
	Cost      int64     `json:"cost"`
	Path      []string  `json:"path"`
	Segments  []Segment `json:"segments"`
}

// StatsResponse answers GET /stats.
type StatsResponse struct {
	Nodes            int  `json:"nodes"`
	Edges            int  `json:"edges"`
	Components       int  `json:"components"`
	LargestComponent int  `json:"largest_component"`
	Connected        bool `json:"connected"`
}

// handleRoute handles GET /route?from=&to=
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		s.metrics.RecordRejected()
		writeError(w, "query parameters from and to are required", http.StatusBadRequest)
		return
	}

	id := queryID(r)
	e, err := dijkstra.New(s.g,
		dijkstra.WithLogger(s.log.With("query_id", id)),
		dijkstra.WithObserver(s.metrics),
	)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	path, err := e.ComputeShortestPathByLabel(from, to)
	switch {
	case errors.Is(err, dijkstra.ErrUnknownNode):
		s.metrics.RecordRejected()
		writeError(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		s.log.Error("server: route failed", "query_id", id, "error", err)
		writeError(w, "route computation failed", http.StatusInternalServerError)
		return
	}

	segs, err := display.Path(e)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	labels := s.g.Labels()
	resp := RouteResponse{
		QueryID:   id,
		From:      from,
		To:        to,
		Reachable: len(path) > 0,
		Cost:      e.Cost(),
		Path:      make([]string, 0, len(path)),
		Segments:  toSegments(segs),
	}
	for _, v := range path {
		resp.Path = append(resp.Path, labels[v])
	}

	writeJSON(w, resp, http.StatusOK)
}

// handleNodes handles GET /nodes
func (s *Server) handleNodes(w http.ResponseWriter, _ *http.Request) {
	nodes := s.g.Nodes()
	out := make([]NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNode(n))
	}

	writeJSON(w, out, http.StatusOK)
}

// handleEdges handles GET /edges
func (s *Server) handleEdges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, toSegments(display.EdgeSegments(s.g)), http.StatusOK)
}

// handleLocate handles GET /locate?x=&y=[&tolerance=]
func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, err := parseFinite(q.Get("x"))
	if err != nil {
		writeError(w, "x: "+err.Error(), http.StatusBadRequest)
		return
	}
	y, err := parseFinite(q.Get("y"))
	if err != nil {
		writeError(w, "y: "+err.Error(), http.StatusBadRequest)
		return
	}
	tol := display.PixelTolerance
	if raw := q.Get("tolerance"); raw != "" {
		if tol, err = parseFinite(raw); err != nil || tol < 0 {
			writeError(w, fmt.Sprintf("tolerance %q must be a non-negative number", raw), http.StatusBadRequest)
			return
		}
	}

	n, ok := display.NodeAtWithin(s.g, citygraph.Point{X: x, Y: y}, tol)
	if !ok {
		writeError(w, fmt.Sprintf("no city within %g of (%g, %g)", tol, x, y), http.StatusNotFound)
		return
	}

	writeJSON(w, toNode(n), http.StatusOK)
}

// handleStats handles GET /stats
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	comps := bfs.Components(s.g)
	largest := 0
	for _, c := range comps {
		largest = max(largest, len(c))
	}

	writeJSON(w, StatsResponse{
		Nodes:            s.g.NodeCount(),
		Edges:            s.g.EdgeCount(),
		Components:       len(comps),
		LargestComponent: largest,
		Connected:        len(comps) <= 1,
	}, http.StatusOK)
}

func parseFinite(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("missing")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}

	return v, nil
}

func toNode(n citygraph.Node) NodeResponse {
	return NodeResponse{ID: n.ID, Label: n.Label, X: n.Location.X, Y: n.Location.Y}
}

func toSegments(segs []citygraph.Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, sg := range segs {
		out = append(out, Segment{
			From: Point{X: sg.From.X, Y: sg.From.Y},
			To:   Point{X: sg.To.X, Y: sg.To.Y},
		})
	}

	return out
}
