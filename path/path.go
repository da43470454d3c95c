// Package path turns a shortest-path search result into an explicit route.
//
// Searches in bfs and dijkstra record a predecessor for every discovered
// vertex. Reconstruct follows those links from the target back to the start,
// checking at each step that the distance drops by exactly one and that the
// step runs along a real edge. When a predecessor is missing or inconsistent
// it falls back to any neighbor one hop closer, and it gives up with
// ErrInconsistent instead of looping.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

var (
	// ErrNoPath indicates that the target was not reached by the search.
	ErrNoPath = errors.New("path: target not reached")

	// ErrInconsistent indicates that the search result cannot be walked back
	// from the target to the start.
	ErrInconsistent = errors.New("path: inconsistent search tree")

	// ErrNilInput indicates a nil graph or tree.
	ErrNilInput = errors.New("path: nil graph or tree")
)

// Tree is the read side of a single-source shortest-path search.
type Tree interface {
	// Distance returns the hop count from the search start to id.
	Distance(id string) (int, bool)
	// Predecessor returns the vertex id was discovered from.
	Predecessor(id string) (string, bool)
}

// Reconstruct returns the handles on a shortest path from start to target,
// start first. A start equal to target yields a one-element path.
func Reconstruct(g *core.Graph, tree Tree, start, target string) ([]string, error) {
	if g == nil || tree == nil {
		return nil, ErrNilInput
	}
	dt, ok := tree.Distance(target)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, target)
	}
	if ds, ok := tree.Distance(start); !ok || ds != 0 {
		return nil, fmt.Errorf("%w: start %s is not the search origin", ErrInconsistent, start)
	}

	rev := make([]string, 0, dt+1)
	rev = append(rev, target)
	cur, d := target, dt
	for steps := 0; cur != start; steps++ {
		if steps >= dt || d <= 0 {
			return nil, fmt.Errorf("%w: walk from %s did not reach %s in %d steps", ErrInconsistent, target, start, dt)
		}
		next, err := step(g, tree, cur, d)
		if err != nil {
			return nil, err
		}
		rev = append(rev, next)
		cur, d = next, d-1
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// step picks the vertex one hop closer to the start than cur (at distance d).
func step(g *core.Graph, tree Tree, cur string, d int) (string, error) {
	if p, ok := tree.Predecessor(cur); ok && closer(g, tree, cur, p, d) {
		return p, nil
	}
	nbrs, err := g.NeighborIDs(cur)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInconsistent, err)
	}
	for _, n := range nbrs {
		if dn, ok := tree.Distance(n); ok && dn == d-1 {
			return n, nil
		}
	}

	return "", fmt.Errorf("%w: no neighbor of %s at distance %d", ErrInconsistent, cur, d-1)
}

func closer(g *core.Graph, tree Tree, cur, cand string, d int) bool {
	dc, ok := tree.Distance(cand)
	return ok && dc == d-1 && g.HasEdge(cur, cand)
}

// Labels maps vertex handles to their labels, preserving order.
func Labels(g *core.Graph, handles []string) ([]string, error) {
	out := make([]string, len(handles))
	for i, h := range handles {
		l, err := g.Label(h)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}

	return out, nil
}
