// Package dijkstra defines core types and configuration options
// for a uniform-cost Dijkstra search over a core.Graph.
//
// Every edge costs exactly 1, so distances equal hop counts and agree with
// package bfs. The heap-based search is kept as an alternative engine: it
// settles vertices in the same non-decreasing distance order and records
// predecessors as a first-class output.
//
// Options:
//
//	– Source:          ID of the starting vertex (must be non-empty and present in the graph).
//	– WithTarget:      stop once the target vertex is popped (its distance is final).
//	– WithMaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//	– WithContext:     cancellation between heap pops.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.WithTarget(end))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, ok := res.Distance(end)
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source or target vertex
	// does not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// unitCost is the cost of traversing any edge.
const unitCost int64 = 1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Target      – optional vertex whose settlement ends the search.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Ctx         context.Context
	Source      string
	Target      string
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget stops the search once id is popped from the heap.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Ctx:         context.Background().
//   - Source:      <as passed> (no validation here; validated in Dijkstra).
//   - Target:      "" (settle every reachable vertex).
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Ctx:         context.Background(),
		Source:      source,
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the outcome of a Dijkstra run.
//
// Dist contains only discovered vertices; a vertex missing from Dist was not
// reached. Prev[v] == u means the shortest path to v goes through u.
// Order lists vertices in the order their distance became final.
type Result struct {
	Start  string
	Target string
	Dist   map[string]int64
	Prev   map[string]string
	Order  []string
}

// Distance returns the hop distance from Start to id, if id was reached.
func (r *Result) Distance(id string) (int, bool) {
	d, ok := r.Dist[id]
	return int(d), ok
}

// Predecessor returns the vertex id was reached from on a shortest path.
func (r *Result) Predecessor(id string) (string, bool) {
	p, ok := r.Prev[id]
	return p, ok
}

// Reached reports whether id was discovered by the search.
func (r *Result) Reached(id string) bool {
	_, ok := r.Dist[id]
	return ok
}
