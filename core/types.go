// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying labeled
// undirected graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Graphs are typically built once and then
// shared read-only between a loader and any number of searches.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel          - vertex or edge label is the empty string.
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a vertex was added without a display label.
	ErrEmptyLabel = errors.New("core: label is empty")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID is an opaque handle generated by the Graph ("v1", "v2", ...).
// Label is the display name used for lookups and output; it is not required
// to be unique at this layer.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Label is the human-readable name of the vertex.
	Label string
}

// Edge represents an undirected connection between two vertices.
//
// From and To only record insertion order; traversal is symmetric and both
// endpoints see the edge in their adjacency.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint's vertex ID.
	From string

	// To is the second endpoint's vertex ID.
	To string

	// Label is a descriptive string carried for diagnostics.
	Label string
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
// The second result is false if id is not an endpoint of e.
func (e *Edge) Other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory labeled undirected graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and adjacency.
// nextVertexID and nextEdgeID are atomic counters for handle generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextVertexID uint64             // atomic vertex ID generator
	nextEdgeID   uint64             // atomic edge ID generator
	vertices     map[string]*Vertex // vertex ID → Vertex
	order        []string           // vertex IDs in insertion order
	edges        map[string]*Edge   // edge ID → Edge

	// adjacencyList[Vertex.ID][neighbor Vertex.ID][Edge.ID] = struct{}{}
	// Every edge is registered under both endpoints (once for self-loops).
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph permits neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
