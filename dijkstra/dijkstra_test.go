// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate input checking, the reference scenarios, optimality
// against brute force, idempotence, Reset semantics and concurrent use.
package dijkstra_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

type road struct {
	a, b string
	w    int64
}

// build creates a graph with nodes placed on the x axis in label order.
func build(t testing.TB, labels []string, roads []road) *citygraph.Graph {
	t.Helper()
	b := citygraph.NewBuilder(len(labels))
	for i, l := range labels {
		_, err := b.AddNode(l, citygraph.Point{X: float64(i), Y: 0})
		require.NoError(t, err)
	}
	for _, r := range roads {
		require.NoError(t, b.AddEdge(r.a, r.b, r.w))
	}

	return b.Build()
}

// abc is the A(0,0) B(1,0) C(2,0) scenario: A-B 5, B-C 3, A-C 100.
func abc(t testing.TB) *citygraph.Graph {
	return build(t, []string{"A", "B", "C"}, []road{{"A", "B", 5}, {"B", "C", 3}, {"A", "C", 100}})
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	_, err := dijkstra.New(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPaths(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_UnknownNode(t *testing.T) {
	e, err := dijkstra.New(abc(t))
	require.NoError(t, err)

	for _, tc := range []struct{ s, d int }{{-1, 0}, {0, 3}, {3, 0}, {0, -7}} {
		_, err = e.ComputeShortestPath(tc.s, tc.d)
		assert.ErrorIs(t, err, dijkstra.ErrUnknownNode, "s=%d d=%d", tc.s, tc.d)
	}
	assert.Equal(t, dijkstra.StateUninitialized, e.State())

	_, err = e.ComputeShortestPathByLabel("A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)
	assert.ErrorIs(t, err, citygraph.ErrNodeNotFound)
	_, err = e.ComputeShortestPathByLabel("Z", "A")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)

	_, err = dijkstra.ShortestPaths(abc(t), 9)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

func TestPathTo_Validation(t *testing.T) {
	g := abc(t)
	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	_, _, err = tbl.PathTo(nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, _, err = tbl.PathTo(g, 3)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------------

func TestCompute_ThreeCities(t *testing.T) {
	e, err := dijkstra.New(abc(t))
	require.NoError(t, err)

	path, err := e.ComputeShortestPathByLabel("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
	assert.EqualValues(t, 8, e.Cost())
	assert.Equal(t, dijkstra.StateReconstructed, e.State())

	segs, err := e.PathSegments()
	require.NoError(t, err)
	assert.Equal(t, []citygraph.Segment{
		{From: citygraph.Point{X: 0}, To: citygraph.Point{X: 1}},
		{From: citygraph.Point{X: 1}, To: citygraph.Point{X: 2}},
	}, segs)
}

func TestCompute_SingleNode(t *testing.T) {
	e, err := dijkstra.New(build(t, []string{"A"}, nil))
	require.NoError(t, err)

	path, err := e.ComputeShortestPath(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
	assert.EqualValues(t, 0, e.Cost())

	segs, err := e.PathSegments()
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestCompute_Unreachable(t *testing.T) {
	g := build(t, []string{"A", "B", "Island"}, []road{{"A", "B", 2}})
	e, err := dijkstra.New(g)
	require.NoError(t, err)

	path, err := e.ComputeShortestPathByLabel("A", "Island")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
	assert.EqualValues(t, 0, e.Cost())

	segs, err := e.PathSegments()
	require.NoError(t, err, "an unreachable result is still a computed path")
	assert.Empty(t, segs)

	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, tbl.Dist[2])
	assert.Equal(t, dijkstra.None, tbl.Prev[2])
	assert.Equal(t, dijkstra.None, tbl.Prev[0])
	assert.Equal(t, 2, tbl.Settled)
}

func TestCompute_ZeroWeights(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, []road{{"A", "B", 0}, {"B", "C", 0}, {"A", "C", 1}})
	e, err := dijkstra.New(g)
	require.NoError(t, err)

	path, err := e.ComputeShortestPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
	assert.EqualValues(t, 0, e.Cost())
}

func TestCompute_HugeWeightsDoNotWrap(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, []road{{"A", "B", math.MaxInt64 - 1}, {"B", "C", 5}})
	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.EqualValues(t, math.MaxInt64-1, tbl.Dist[1])
	// The only route to C would overflow, so C stays unreached rather than negative.
	assert.Equal(t, dijkstra.Infinity, tbl.Dist[2])
	for _, d := range tbl.Dist {
		assert.GreaterOrEqual(t, d, int64(0))
	}
}

func TestCompute_ParallelRoadsCostMatchesDistance(t *testing.T) {
	g := build(t, []string{"A", "B"}, []road{{"A", "B", 9}, {"A", "B", 2}, {"B", "A", 6}})
	e, err := dijkstra.New(g)
	require.NoError(t, err)

	_, err = e.ComputeShortestPath(1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, e.Cost())
}

func TestShortestPaths_HouseGraph(t *testing.T) {
	//	    (E)
	//	  3/   \4
	//	(C)──10─(D)
	//	 |2      |5
	//	(A)──4──(B)
	g := build(t, []string{"A", "B", "C", "D", "E"}, []road{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "D", 5}, {"C", "D", 10}, {"C", "E", 3}, {"E", "D", 4},
	})
	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 4, 2, 9, 5}, tbl.Dist)
	assert.Equal(t, 5, tbl.Settled)

	path, cost, err := tbl.PathTo(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, path)
	assert.EqualValues(t, 5, cost)
}

// ------------------------------------------------------------------------
// 3. Optimality against brute-force enumeration on small random graphs.
// ------------------------------------------------------------------------

// bruteForce returns the cheapest simple-path cost from s to d, or -1.
func bruteForce(g *citygraph.Graph, s, d int) int64 {
	best := int64(-1)
	seen := make([]bool, g.NodeCount())
	var walk func(u int, acc int64)
	walk = func(u int, acc int64) {
		if u == d {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		seen[u] = true
		for e := range g.Neighbors(u) {
			if !seen[e.To] {
				walk(e.To, acc+e.Weight)
			}
		}
		seen[u] = false
	}
	walk(s, 0)

	return best
}

func randomGraph(t testing.TB, r *rand.Rand, n int, density float64) *citygraph.Graph {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("V%d", i)
	}
	var roads []road
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < density {
				roads = append(roads, road{labels[i], labels[j], int64(r.Intn(20))})
			}
		}
	}

	return build(t, labels, roads)
}

func TestCompute_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(6)
		g := randomGraph(t, r, n, 0.2+r.Float64()*0.6)
		e, err := dijkstra.New(g)
		require.NoError(t, err)

		for s := 0; s < n; s++ {
			tbl, err := dijkstra.ShortestPaths(g, s)
			require.NoError(t, err)

			for d := 0; d < n; d++ {
				want := bruteForce(g, s, d)
				path, err := e.ComputeShortestPath(s, d)
				require.NoError(t, err)

				if want < 0 {
					assert.Empty(t, path, "round %d: %d→%d should be unreachable", round, s, d)
					assert.EqualValues(t, 0, e.Cost())
					assert.Equal(t, dijkstra.Infinity, tbl.Dist[d])
					continue
				}
				require.NotEmpty(t, path, "round %d: %d→%d", round, s, d)
				assert.Equal(t, s, path[0])
				assert.Equal(t, d, path[len(path)-1])
				assert.Equal(t, want, e.Cost(), "round %d: %d→%d", round, s, d)
				assert.Equal(t, tbl.Dist[d], e.Cost(), "cost must equal the relaxed distance")

				// Consecutive nodes on the path must be adjacent.
				for i := 0; i+1 < len(path); i++ {
					_, ok := g.EdgeWeight(path[i], path[i+1])
					assert.True(t, ok, "no road %d→%d", path[i], path[i+1])
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Idempotence, Reset and life cycle.
// ------------------------------------------------------------------------

func TestCompute_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g := randomGraph(t, r, 30, 0.15)
	e, err := dijkstra.New(g)
	require.NoError(t, err)

	first, err := e.ComputeShortestPath(0, 29)
	require.NoError(t, err)
	firstCost := e.Cost()

	second, err := e.ComputeShortestPath(0, 29)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstCost, e.Cost())
}

func TestReset(t *testing.T) {
	e, err := dijkstra.New(abc(t))
	require.NoError(t, err)

	_, err = e.PathSegments()
	assert.ErrorIs(t, err, dijkstra.ErrNoPathComputed, "nothing computed yet")

	_, err = e.ComputeShortestPath(0, 2)
	require.NoError(t, err)

	e.Reset()
	_, err = e.PathSegments()
	assert.ErrorIs(t, err, dijkstra.ErrNoPathComputed)
	assert.Nil(t, e.Path())
	assert.EqualValues(t, 0, e.Cost())
	assert.Equal(t, dijkstra.StateUninitialized, e.State())

	e.Reset()
	_, err = e.PathSegments()
	assert.ErrorIs(t, err, dijkstra.ErrNoPathComputed)
}

func TestPath_ReturnsCopy(t *testing.T) {
	e, err := dijkstra.New(abc(t))
	require.NoError(t, err)
	path, err := e.ComputeShortestPath(0, 2)
	require.NoError(t, err)

	path[0] = 99
	assert.Equal(t, []int{0, 1, 2}, e.Path())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", dijkstra.StateUninitialized.String())
	assert.Equal(t, "relaxing", dijkstra.StateRelaxing.String())
	assert.Equal(t, "reconstructed", dijkstra.StateReconstructed.String())
	assert.Equal(t, "unknown", dijkstra.State(42).String())
}

// ------------------------------------------------------------------------
// 5. Options: logger and observer.
// ------------------------------------------------------------------------

type recordingObserver struct {
	stats []dijkstra.QueryStats
}

func (r *recordingObserver) ObserveQuery(s dijkstra.QueryStats) { r.stats = append(r.stats, s) }

func TestOptions_ObserverAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := &recordingObserver{}

	g := build(t, []string{"A", "B", "C", "Island"}, []road{{"A", "B", 5}, {"B", "C", 3}, {"A", "C", 100}})
	e, err := dijkstra.New(g, dijkstra.WithLogger(logger), dijkstra.WithObserver(obs), dijkstra.WithLogger(nil))
	require.NoError(t, err)

	_, err = e.ComputeShortestPath(0, 2)
	require.NoError(t, err)
	_, err = e.ComputeShortestPath(0, 3)
	require.NoError(t, err)

	require.Len(t, obs.stats, 2)
	assert.True(t, obs.stats[0].Found)
	assert.EqualValues(t, 8, obs.stats[0].Cost)
	assert.Equal(t, 3, obs.stats[0].Settled)
	assert.Equal(t, 0, obs.stats[0].Source)
	assert.Equal(t, 2, obs.stats[0].Destination)
	assert.False(t, obs.stats[1].Found)
	assert.EqualValues(t, 0, obs.stats[1].Cost)

	assert.Contains(t, buf.String(), "dijkstra: query done")
	assert.Contains(t, buf.String(), "cost=8")
}

// ------------------------------------------------------------------------
// 6. Concurrency: engines sharing one graph do not interfere.
// ------------------------------------------------------------------------

func TestEngines_ShareGraphConcurrently(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	g := randomGraph(t, r, 60, 0.1)

	want := make([]int64, g.NodeCount())
	tbl, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	copy(want, tbl.Dist)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := dijkstra.New(g)
			if err != nil {
				errs <- err
				return
			}
			for d := 0; d < g.NodeCount(); d++ {
				if _, err := e.ComputeShortestPath(0, d); err != nil {
					errs <- err
					return
				}
				exp := want[d]
				if exp == dijkstra.Infinity {
					exp = 0
				}
				if e.Cost() != exp {
					errs <- fmt.Errorf("node %d: cost %d, want %d", d, e.Cost(), exp)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
