// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Optional target (WithTarget): the search stops once the target is dequeued.
//     Its depth is final at that moment, because every vertex at a smaller depth
//     was dequeued before it.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Parent links are recorded for every discovered vertex, so a shortest path
// can be rebuilt without guessing predecessors from distances. BFSResult
// satisfies path.Tree.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in vertex creation order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Unreachable targets
//
//	A target outside the start's component is not an error: the queue drains,
//	BFS returns nil, and Reached(target) is false.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, start, bfs.WithTarget(end))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
//	    // ErrOptionViolation, ErrNeighbors, or a hook error
//	}
//	if !result.Reached(end) {
//	    // no path
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no target, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithTarget(id):              stop once id is dequeued.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
package bfs
