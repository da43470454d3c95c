// Package dijkstra implements Dijkstra's shortest-path algorithm with unit edge costs.
//
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop as soon as the target, if any, is popped.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by insertion sequence, so equal-distance vertices settle in discovery order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Dijkstra computes shortest hop distances from the source vertex (Options.Source).
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source, and Target when set (ErrVertexNotFound).
//
// An unreachable target is not an error; Reached(target) reports false.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Start:  cfg.Source,
			Target: cfg.Target,
			Dist:   make(map[string]int64, V),
			Prev:   make(map[string]string, V),
			Order:  make([]string, 0, V),
		},
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // The input graph; read-only within Dijkstra.
	options Options         // Configuration options (Source, Target, cap).
	res     *Result         // Distances, predecessors, settle order.
	visited map[string]bool // Tracks if a vertex's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64          // insertion counter for stable tie-breaking
}

// init seeds the source at distance zero.
func (r *runner) init() {
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process is the core loop. It repeatedly extracts the vertex with the minimum
// distance and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The target is popped.
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is cancelled.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		if u == r.options.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve distances to its neighbors.
// Assumes r.res.Dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		v, _ := e.Other(u)
		if r.visited[v] {
			continue
		}

		newDist := du + unitCost
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.res.Dist[v]; seen && newDist >= cur {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then push order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties go to the earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
