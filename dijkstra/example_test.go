// Package dijkstra_test provides examples demonstrating how to use the engine.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// ExampleEngine_ComputeShortestPath routes across three cities where the
// direct road is far more expensive than the detour.
func ExampleEngine_ComputeShortestPath() {
	// 1) Load the graph from its text form.
	g, err := citygraph.Load(strings.NewReader(`NODES
3
A 0 0
B 1 0
C 2 0
ARCS
A B 5
B C 3
A C 100
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Build an engine and query A → C by label.
	e, _ := dijkstra.New(g)
	path, err := e.ComputeShortestPathByLabel("A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print labels along the path and its total cost.
	labels := g.Labels()
	for i, id := range path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(labels[id])
	}
	fmt.Printf(" (cost %d)\n", e.Cost())
	// Output: A -> B -> C (cost 8)
}

// ExampleShortestPaths shows the full distance table from one source.
func ExampleShortestPaths() {
	b := citygraph.NewBuilder(4)
	for i, l := range []string{"A", "B", "C", "D"} {
		_, _ = b.AddNode(l, citygraph.Point{X: float64(i)})
	}
	_ = b.AddEdge("A", "B", 1)
	_ = b.AddEdge("B", "C", 2)
	_ = b.AddEdge("A", "C", 5)
	g := b.Build() // D has no roads

	t, _ := dijkstra.ShortestPaths(g, 0)
	for v, d := range t.Dist {
		if d == dijkstra.Infinity {
			fmt.Printf("%d: unreachable\n", v)
			continue
		}
		fmt.Printf("%d: %d via %d\n", v, d, t.Prev[v])
	}
	// Output:
	// 0: 0 via -1
	// 1: 1 via 0
	// 2: 3 via 1
	// 3: unreachable
}

// ExampleEngine_Reset clears the stored path for the display layer.
func ExampleEngine_Reset() {
	b := citygraph.NewBuilder(2)
	_, _ = b.AddNode("A", citygraph.Point{X: 0, Y: 0})
	_, _ = b.AddNode("B", citygraph.Point{X: 3, Y: 4})
	_ = b.AddEdge("A", "B", 5)
	e, _ := dijkstra.New(b.Build())

	_, _ = e.ComputeShortestPath(0, 1)
	segs, _ := e.PathSegments()
	fmt.Println(segs[0].From, "->", segs[0].To)

	e.Reset()
	_, err := e.PathSegments()
	fmt.Println(err)
	// Output:
	// (0, 0) -> (3, 4)
	// dijkstra: no path computed
}
