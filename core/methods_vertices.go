// File: methods_vertices.go
// Role: Vertex creation & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"strconv"
	"sync/atomic"
)

// vertexIDPrefix is the textual prefix of generated vertex handles ("v1", "v2", ...).
const vertexIDPrefix = 'v'

// AddVertex creates a new vertex carrying label and returns its generated ID.
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyLabel).
//   - Stage 2: Under muVert write lock, reserve the next handle and register the vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Never deduplicates: two calls with the same label produce two vertices.
//     Label uniqueness is a policy of the caller (see loader.LabelIndex).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(label string) (string, error) {
	if label == "" {
		return "", ErrEmptyLabel
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := nextVertexID(g)
	g.vertices[id] = &Vertex{ID: id, Label: label}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	g.adjacencyList[id] = make(map[string]map[string]struct{})
	g.muEdgeAdj.Unlock()

	return id, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex registered under id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// The returned *Vertex is shared with the graph; treat it as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Label returns the label of vertex id; errors match Vertex.
func (g *Graph) Label(id string) (string, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return "", err
	}

	return v.Label, nil
}

// Vertices returns all vertex IDs in insertion order.
//
// Returns a freshly allocated slice; callers may retain and mutate it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints incident to id.
// A self-loop contributes 2, matching the handshake lemma.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, e := range edges {
		if e.From == e.To {
			deg += 2
			continue
		}
		deg++
	}

	return deg, nil
}

// nextVertexID returns a new unique textual vertex ID ("v" + decimal).
// Must be called under muVert write lock; the counter is atomic regardless.
func nextVertexID(g *Graph) string {
	n := atomic.AddUint64(&g.nextVertexID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, vertexIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
