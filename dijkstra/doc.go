// Package dijkstra implements a uniform-cost Dijkstra search over a core.Graph.
//
// With every edge costing 1 the result is identical in distance to a BFS:
// Dist[v] is the hop count from the source and Prev[v] a predecessor on one
// shortest path. *Result satisfies path.Tree, so route can use either engine.
//
// Early exit: WithTarget(id) ends the search when id is popped. At that point
// Dist[id] is final; vertices still in the heap may carry tentative distances,
// which are upper bounds and never used for reconstruction beyond the target's
// predecessor chain.
//
// See types.go for options and sentinel errors.
package dijkstra
