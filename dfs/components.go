package dfs

import "github.com/katalvlaran/lvpath/core"

// Components partitions g into connected components.
//
// Components are ordered by their first vertex in insertion order, and the
// vertices inside a component are in DFS discovery order. An empty graph has
// no components; an isolated vertex is a component of its own.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var comps [][]string
	_, err := DFS(g, "",
		WithFullTraversal(),
		WithOnRoot(func(string) { comps = append(comps, nil) }),
		WithOnVisit(func(id string) error {
			comps[len(comps)-1] = append(comps[len(comps)-1], id)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return comps, nil
}

// ComponentOf returns a map from vertex ID to the index of its component in
// the order returned by Components.
func ComponentOf(g *core.Graph) (map[string]int, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, g.VertexCount())
	for i, c := range comps {
		for _, id := range c {
			out[id] = i
		}
	}

	return out, nil
}
