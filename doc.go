// Package cityroute finds shortest routes between cities on a road map.
//
// A map is a plain-text NODES/ARCS file: cities with pixel coordinates,
// then undirected roads with non-negative integer costs. cityroute loads
// it into an immutable graph and answers "what is the cheapest way from
// A to B?" with Dijkstra's algorithm over an indexed min-heap whose
// decrease-key runs in O(log V).
//
// Layout:
//
//	citygraph/      graph model, builder and the NODES/ARCS loader
//	minheap/        indexed binary min-heap with decrease-key
//	dijkstra/       the shortest-path engine and its query life cycle
//	bfs/            hop-count search and connected components
//	display/        pixel hit-testing and segment export for renderers
//	gen/            noise-driven synthetic city grids and the text writer
//	metrics/        Prometheus collectors for queries and the loaded graph
//	config/         viper-backed configuration and slog logger setup
//	server/         HTTP API over a loaded graph
//	cmd/cityroute   the command line (route, inspect, locate, generate, serve, config)
//
// Quick start:
//
//	g, err := citygraph.LoadFile("california.txt")
//	if err != nil { … }
//	e, _ := dijkstra.New(g)
//	path, err := e.ComputeShortestPathByLabel("SanFrancisco", "LosAngeles")
//	fmt.Println(path, e.Cost())
//
// The graph is safe to share between goroutines; engines are not. Give
// each goroutine (or each HTTP request) its own dijkstra.Engine.
package cityroute
