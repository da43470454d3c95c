// Package core provides a thread-safe in-memory labeled undirected Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Generated vertex handles ("v1", "v2", …) carrying a display Label
//   - Undirected labeled edges with generated IDs ("e1", "e2", …)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge membership via nested maps:
//     adjacencyList[a][b][edgeID] = struct{}{}, registered under both endpoints
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Undirectedness is a property of every Edge: AddEdge registers the edge
// under both endpoints once, so traversal from either side always succeeds.
// There is no directed mode.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(a,b) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (a == b); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Construction
//	AddVertex(label string) (id string, err error)          // O(1)
//	AddEdge(a, b, label string) (edgeID string, err error)  // O(1)†
//
//	// Query
//	HasVertex(id string) bool                // O(1)
//	Vertex(id string) (*Vertex, error)       // O(1)
//	Label(id string) (string, error)         // O(1)
//	HasEdge(a, b string) bool                // O(1), symmetric
//	GetEdge(edgeID string) (*Edge, error)    // O(1)
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), loops appear once
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V), insertion order
//	Edges() []*Edge                          // O(E·log E), creation order
//
//	// Counts & degrees
//	Degree(id string) (int, error)
//	VertexCount() int
//	EdgeCount() int
//	Stats() *GraphStats
//
// There is no removal API: graphs are built once and then queried.
//
// Errors:
//
//	ErrEmptyLabel          – zero-length vertex label
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex (AddEdge never auto-creates endpoints)
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
