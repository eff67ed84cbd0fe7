package gen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/cityroute/citygraph"
)

// ErrInvalidConfig is returned by Generate for a Config no option could produce.
var ErrInvalidConfig = errors.New("gen: invalid config")

// ErrNilGraph is returned by Write for a nil graph.
var ErrNilGraph = errors.New("gen: graph is nil")

const (
	labelFmt = "C%d_%d"

	// maxCells bounds rows×cols.
	maxCells = 1 << 22

	// maxSpacing keeps every rounded weight inside int64.
	maxSpacing = 1e6

	// Noise sampling: lattice frequency and per-field offsets so the
	// x jitter, y jitter, diagonal and terrain fields are uncorrelated.
	latticeFreq = 0.618
	offsetY     = 71.3
	diagZ       = 3.7
	terrainZ    = 11.1
	terrainFreq = 0.41
)

// Grid generates a rows×cols city grid starting from DefaultConfig.
func Grid(rows, cols int, opts ...Option) (*citygraph.Graph, error) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	for _, opt := range opts {
		opt(&cfg)
	}

	return Generate(cfg)
}

// Generate builds the graph described by cfg.
func Generate(cfg Config) (*citygraph.Graph, error) {
	// 1) Validate everything before allocating.
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d (each must be ≥ 1)", ErrTooSmall, cfg.Rows, cfg.Cols)
	}
	if cfg.Rows > maxCells/cfg.Cols {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrInvalidConfig, cfg.Rows, cfg.Cols, maxCells)
	}
	if !(cfg.Spacing > 0) || cfg.Spacing > maxSpacing {
		return nil, fmt.Errorf("%w: spacing %g outside (0, %g]", ErrInvalidConfig, cfg.Spacing, maxSpacing)
	}
	if cfg.Jitter < 0 || cfg.Jitter > maxJitter {
		return nil, fmt.Errorf("%w: jitter %g outside [0, %g]", ErrInvalidConfig, cfg.Jitter, maxJitter)
	}
	if cfg.DiagonalProb < 0 || cfg.DiagonalProb > 1 {
		return nil, fmt.Errorf("%w: diagonal probability %g outside [0, 1]", ErrInvalidConfig, cfg.DiagonalProb)
	}

	g := &grid{
		cfg:     cfg,
		signed:  opensimplex.New(cfg.Seed),
		uniform: opensimplex.NewNormalized(cfg.Seed),
		b:       citygraph.NewBuilder(cfg.Rows * cfg.Cols),
		at:      make([]citygraph.Point, cfg.Rows*cfg.Cols),
	}

	// 2) Cities in row-major order.
	if err := g.placeCities(); err != nil {
		return nil, err
	}

	// 3) Roads: right, bottom, then the optional diagonal of each cell.
	if err := g.layRoads(); err != nil {
		return nil, err
	}

	return g.b.Build(), nil
}

// grid holds the state of one Generate call.
type grid struct {
	cfg     Config
	signed  opensimplex.Noise // [-1, 1]
	uniform opensimplex.Noise // [0, 1]
	b       *citygraph.Builder
	at      []citygraph.Point
}

func (g *grid) placeCities() error {
	s, j := g.cfg.Spacing, g.cfg.Jitter
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			nx, ny := float64(c)*latticeFreq+0.5, float64(r)*latticeFreq+0.5
			dx := clamp(g.signed.Eval2(nx, ny), -1, 1)
			dy := clamp(g.signed.Eval2(nx+offsetY, ny+offsetY), -1, 1)
			p := citygraph.Point{
				X: round2(float64(c)*s + j*s*dx),
				Y: round2(float64(r)*s + j*s*dy),
			}
			if _, err := g.b.AddNode(label(r, c), p); err != nil {
				return fmt.Errorf("gen: add %s: %w", label(r, c), err)
			}
			g.at[r*g.cfg.Cols+c] = p
		}
	}

	return nil
}

func (g *grid) layRoads() error {
	rows, cols := g.cfg.Rows, g.cfg.Cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.road(r, c, r, c+1); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err := g.road(r, c, r+1, c); err != nil {
					return err
				}
			}
			if r+1 < rows && c+1 < cols && g.diagonal(r, c) {
				if err := g.road(r, c, r+1, c+1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// diagonal reports whether cell (r, c) gets its top-left to bottom-right road.
func (g *grid) diagonal(r, c int) bool {
	p := g.cfg.DiagonalProb
	if p == 0 {
		return false
	}
	n := g.uniform.Eval3((float64(c)+0.5)*latticeFreq, (float64(r)+0.5)*latticeFreq, diagZ)

	return clamp(n, 0, 1) <= p
}

func (g *grid) road(r1, c1, r2, c2 int) error {
	a, b := g.at[r1*g.cfg.Cols+c1], g.at[r2*g.cfg.Cols+c2]
	w := g.weight(a, b)
	if err := g.b.AddEdge(label(r1, c1), label(r2, c2), w); err != nil {
		return fmt.Errorf("gen: road %s-%s: %w", label(r1, c1), label(r2, c2), err)
	}

	return nil
}

// weight is the road length scaled by the terrain factor at its midpoint.
func (g *grid) weight(a, b citygraph.Point) int64 {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	mx := (a.X + b.X) / 2 / g.cfg.Spacing
	my := (a.Y + b.Y) / 2 / g.cfg.Spacing
	terrain := 1 + clamp(g.uniform.Eval3(mx*terrainFreq, my*terrainFreq, terrainZ), 0, 1)

	return max(1, int64(math.Round(length*terrain)))
}

// Write serialises g in the NODES/ARCS text format. Each undirected road
// is written once, from its lower-ID endpoint, in adjacency order, so
// Write(Load(Write(g))) reproduces Write(g) byte for byte.
func Write(w io.Writer, g *citygraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	nodes := g.Nodes()
	fmt.Fprintln(bw, citygraph.HeaderNodes)
	fmt.Fprintln(bw, len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(bw, "%s %s %s\n", n.Label, formatCoord(n.Location.X), formatCoord(n.Location.Y))
	}

	fmt.Fprintln(bw, citygraph.HeaderArcs)
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
			fmt.Fprintf(bw, "%s %s %d\n", nodes[u].Label, nodes[e.To].Label, e.Weight)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gen: write graph: %w", err)
	}

	return nil
}

func label(r, c int) string { return fmt.Sprintf(labelFmt, r, c) }

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// round2 rounds to hundredths; adding 0 turns -0 into 0.
func round2(v float64) float64 { return math.Round(v*100)/100 + 0 }

func clamp(v, lo, hi float64) float64 { return math.Min(hi, math.Max(lo, v)) }
