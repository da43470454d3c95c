package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleDFS() {
	g := core.NewGraph()
	ids := map[string]string{}
	for _, l := range []string{"A", "B", "C", "D", "E", "F"} {
		ids[l], _ = g.AddVertex(l)
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_, _ = g.AddEdge(ids[e[0]], ids[e[1]], "")
	}

	res, err := dfs.DFS(g, ids["A"])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var order []string
	for _, id := range res.Order {
		l, _ := g.Label(id)
		order = append(order, l)
	}
	fmt.Println(strings.Join(order, " "))
	// Output: C E F D B A
}

// ExampleComponents counts the islands of a small map.
func ExampleComponents() {
	g := core.NewGraph()
	a, _ := g.AddVertex("Harbor")
	b, _ := g.AddVertex("Market")
	_, _ = g.AddVertex("Lighthouse")
	_, _ = g.AddEdge(a, b, "pier")

	comps, _ := dfs.Components(g)
	fmt.Println(len(comps))
	// Output: 2
}
