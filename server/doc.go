// Package server exposes a loaded city graph over HTTP.
//
// Routes (all GET, JSON unless noted):
//
//	/route?from=A&to=B       shortest path, cost and drawable segments
//	/nodes                   every city with its coordinates
//	/edges                   every road as a segment
//	/locate?x=&y=[&tolerance=] the city under a pixel
//	/stats                   node, road and component counts
//	/metrics                 Prometheus exposition (text format)
//	/healthz                 liveness probe
//
// Bad or missing parameters answer 400; an unknown label or an empty pixel
// answers 404. Every response carries an X-Query-ID header, which is also
// attached to the request's log lines.
//
// The graph is read-only, so handlers share it freely; each /route request
// runs on its own dijkstra.Engine.
package server
