// Package dijkstra_test provides examples demonstrating how to use the Dijkstra search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// ExampleDijkstra_triangle computes hop distances on a triangle with a tail.
//
//	A ─ B
//	 \ /
//	  C ─ D
func ExampleDijkstra_triangle() {
	g := core.NewGraph()
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")
	c, _ := g.AddVertex("C")
	d, _ := g.AddVertex("D")
	_, _ = g.AddEdge(a, b, "ab")
	_, _ = g.AddEdge(b, c, "bc")
	_, _ = g.AddEdge(a, c, "ac")
	_, _ = g.AddEdge(c, d, "cd")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(a), dijkstra.WithTarget(d))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	hops, _ := res.Distance(d)
	via, _ := res.Predecessor(d)
	label, _ := g.Label(via)
	fmt.Printf("hops=%d via=%s\n", hops, label)
	// Output: hops=2 via=C
}
