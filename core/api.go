// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted
	VertexCount int  // number of vertices
	EdgeCount   int  // number of undirected edges
	LoopCount   int  // number of self-loops among EdgeCount
	Isolated    int  // vertices with no incident edge
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges, loops and isolated vertices, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously (reduces contention and avoids lock-order hazards).
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	for _, bucket := range g.adjacencyList {
		if len(bucket) == 0 {
			stats.Isolated++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
