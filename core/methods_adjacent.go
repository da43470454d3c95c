// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID sequence.
//   - NeighborIDs() returns unique IDs sorted by vertex sequence.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Every undirected edge touching id appears exactly once; self-loops appear once.
//   - Parallel edges appear once each.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect incident edges from adjacencyList[id] buckets.
//   - Stage 5: Sort the result by Edge.ID sequence.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
//
// Notes:
//   - This method does not copy Edge objects; treat returned *Edge as immutable.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e, ok := g.edges[eid]
			if !ok {
				// adjacency should never reference a missing edge
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id,
// sorted by vertex sequence ("v2" before "v10").
//
// A self-loop makes id its own neighbor.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity:
//   - Time O(d + k log k), Space O(k), where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		other, _ := e.Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })

	return ids, nil
}

// ensureAdjacency guarantees that adjacencyList[from] and adjacencyList[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
