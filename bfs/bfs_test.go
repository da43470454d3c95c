package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// fixture builds an undirected graph from label pairs, creating one vertex per
// distinct label, and returns the graph with a label → handle map.
func fixture(t testing.TB, labels []string, pairs ...[2]string) (*core.Graph, map[string]string) {
	t.Helper()
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	ids := make(map[string]string, len(labels))
	add := func(label string) string {
		if id, ok := ids[label]; ok {
			return id
		}
		id, err := g.AddVertex(label)
		require.NoError(t, err)
		ids[label] = id
		return id
	}
	for _, l := range labels {
		add(l)
	}
	for _, p := range pairs {
		_, err := g.AddEdge(add(p[0]), add(p[1]), p[0]+p[1])
		require.NoError(t, err)
	}

	return g, ids
}

// labelsOf maps a slice of handles back to labels for readable assertions.
func labelsOf(t testing.TB, g *core.Graph, ids []string) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		l, err := g.Label(id)
		require.NoError(t, err)
		out[i] = l
	}

	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "v1")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, ids := fixture(t, []string{"A"})
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, ids["A"], bfs.WithTarget("missing"))
	assert.ErrorIs(t, err, bfs.ErrTargetVertexNotFound)

	_, err = bfs.BFS(g, ids["A"], bfs.WithTarget(""))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, ids["A"], bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g, ids := fixture(t, []string{"A"})
	res, err := bfs.BFS(g, ids["A"], bfs.WithTarget(ids["A"]))
	require.NoError(t, err)

	assert.Equal(t, []string{ids["A"]}, res.Order)
	d, ok := res.Distance(ids["A"])
	assert.True(t, ok)
	assert.Zero(t, d)
	_, ok = res.Predecessor(ids["A"])
	assert.False(t, ok, "start has no predecessor")
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, ids["A"])
	require.NoError(t, err)

	require.Len(t, res.Order, 4)
	assert.Equal(t, ids["A"], res.Order[0])
	assert.ElementsMatch(t, []string{ids["B"], ids["D"]}, res.Order[1:3])
	assert.Equal(t, ids["C"], res.Order[3])

	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 1}
	for label, depth := range want {
		assert.Equal(t, depth, res.Depth[ids[label]], "depth of %s", label)
	}
	p, ok := res.Predecessor(ids["C"])
	require.True(t, ok)
	assert.Contains(t, []string{ids["B"], ids["D"]}, p)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, err := bfs.BFS(g, ids["X"], bfs.WithTarget(ids["Q"]))
	require.NoError(t, err, "unreachable target is not an error")
	assert.Equal(t, []string{"X", "Y"}, labelsOf(t, g, resX.Order))
	assert.False(t, resX.Reached(ids["Q"]))
	assert.True(t, resX.Reached(ids["Y"]))
}

// TestBFS_EarlyExit stops as soon as the target is dequeued.
func TestBFS_EarlyExit(t *testing.T) {
	// chain A–B–C–D–E
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "E"})

	res, err := bfs.BFS(g, ids["A"], bfs.WithTarget(ids["C"]))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, labelsOf(t, g, res.Order))
	assert.Equal(t, 2, res.Depth[ids["C"]])
	assert.False(t, res.Reached(ids["E"]), "search must not run past the target")
	assert.Equal(t, ids["C"], res.Target)
	assert.Equal(t, ids["A"], res.Start)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})

	tests := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(g, ids["A"], bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.want, labelsOf(t, g, res.Order))
		})
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.BFS(g, ids["A"],
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == ids["B"] && nbr == ids["C"])
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labelsOf(t, g, res.Order))
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "A"}, [2]string{"A", "B"}, [2]string{"B", "A"})
	res, err := bfs.BFS(g, ids["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labelsOf(t, g, res.Order))
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})

	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(
		g, ids["A"],
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{entry(ids["A"], 0), entry(ids["B"], 1), entry(ids["C"], 2)}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_VisitErrorAborts propagates hook errors.
func TestBFS_VisitErrorAborts(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "B"})
	boom := errors.New("boom")
	_, err := bfs.BFS(g, ids["A"], bfs.WithOnVisit(func(id string, _ int) error {
		if id == ids["B"] {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	pairs := make([][2]string, 0, 100)
	for i := 0; i < 100; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1)})
	}
	g, ids := fixture(t, nil, pairs...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, ids["n0"], bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g, ids := fixture(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := bfs.BFS(g, ids["A"], bfs.WithTarget(ids["C"]))
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}
