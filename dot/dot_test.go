package dot_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dot"
)

func TestRender(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")
	c, _ := g.AddVertex("C")
	_, err := g.AddEdge(a, b, "roadAB")
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, "roadBC")
	require.NoError(t, err)
	_, err = g.AddEdge(c, c, "roundabout")
	require.NoError(t, err)

	want := `graph {
  v1 [label="A"];
  v2 [label="B"];
  v3 [label="C"];
  v1 -- v2 [label="roadAB"];
  v2 -- v3 [label="roadBC"];
  v3 -- v3 [label="roundabout"];
}
`
	assert.Equal(t, want, dot.Render(g))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "graph {\n}\n", dot.Render(core.NewGraph()))
	assert.Equal(t, "graph {\n}\n", dot.Render(nil))
}

func TestRender_QuotesLabels(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex(`say"hi"`)
	assert.Contains(t, dot.Render(g), `v1 [label="say\"hi\""];`)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("Solo")

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g))
	assert.Equal(t, dot.Render(g), buf.String())

	assert.Error(t, dot.Write(failWriter{}, g))
}
