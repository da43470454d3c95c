package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
)

// build creates one vertex per label and an undirected edge per pair.
func build(t testing.TB, labels []string, pairs ...[2]string) (*core.Graph, map[string]string) {
	t.Helper()
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	ids := make(map[string]string, len(labels))
	for _, l := range labels {
		id, err := g.AddVertex(l)
		require.NoError(t, err)
		ids[l] = id
	}
	for _, p := range pairs {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]], p[0]+p[1])
		require.NoError(t, err)
	}

	return g, ids
}

func labels(t testing.TB, g *core.Graph, ids []string) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		l, err := g.Label(id)
		require.NoError(t, err)
		out[i] = l
	}

	return out
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "v1")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g, _ := build(t, []string{"A"})
	_, err = dfs.DFS(g, "v9")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_PostOrderAndParents(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"}, [2]string{"C", "C"})

	res, err := dfs.DFS(g, ids["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A"}, labels(t, g, res.Order))
	assert.Equal(t, ids["B"], res.Parent[ids["C"]])
	assert.Equal(t, 2, res.Depth[ids["C"]])
	assert.Equal(t, []string{ids["A"]}, res.Roots)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := dfs.DFS(g, ids["A"], dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Visited[ids["C"]])

	res, err = dfs.DFS(g, ids["A"], dfs.WithFilterNeighbor(func(id string) bool { return id != ids["B"] }))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.Len(t, res.Order, 1)
}

func TestDFS_HookErrorsAndCancel(t *testing.T) {
	g, ids := build(t, []string{"A", "B"}, [2]string{"A", "B"})
	boom := errors.New("boom")

	_, err := dfs.DFS(g, ids["A"], dfs.WithOnVisit(func(id string) error {
		if id == ids["B"] {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, ids["A"], dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, ids["A"], dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g, ids := build(t, []string{"A", "B", "C", "D", "E"},
		[2]string{"A", "B"}, [2]string{"D", "C"})

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A", "B"}, labels(t, g, comps[0]))
	assert.Equal(t, []string{"C", "D"}, labels(t, g, comps[1]))
	assert.Equal(t, []string{"E"}, labels(t, g, comps[2]))

	of, err := dfs.ComponentOf(g)
	require.NoError(t, err)
	assert.Equal(t, of[ids["A"]], of[ids["B"]])
	assert.NotEqual(t, of[ids["A"]], of[ids["D"]])
}

func TestComponents_Empty(t *testing.T) {
	comps, err := dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func BenchmarkComponents(b *testing.B) {
	g := core.NewGraph()
	prev := ""
	for i := 0; i < 2000; i++ {
		id, _ := g.AddVertex("N" + strconv.Itoa(i))
		// break the chain every 100 vertices
		if prev != "" && i%100 != 0 {
			_, _ = g.AddEdge(prev, id, "")
		}
		prev = id
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
