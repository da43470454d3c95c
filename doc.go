// Package lvpath answers "what is the shortest route between two labels?"
// for a labeled undirected graph described by two plain-text files.
//
// 🚀 What is lvpath?
//
//	A small, thread-safe graph toolkit and CLI that brings together:
//		• Records: tolerant parsing of `<key> <label>` and `<k1> <k2> <label>` lines
//		• Loader: key resolution, duplicate-label policies, load report
//		• Traversals: BFS with target early exit, DFS and connected components
//		• Shortest paths: uniform-cost Dijkstra agreeing with BFS
//		• Path reconstruction: predecessor walk with a distance-consistency guard
//		• Output: DOT rendering and a styled or plain result line
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - fundamental Graph, Vertex, Edge types & thread-safe primitives
//	records/   - line sources and node/edge record parsing
//	loader/    - builds a Network (graph + label index + report) from records
//	bfs/       - breadth-first search, parent links, early exit
//	dijkstra/  - heap-based unit-cost search with the same result shape
//	dfs/       - depth-first traversal and connected components
//	path/      - reconstructs and labels a shortest path
//	route/     - label-level queries: Finder, Route, query outcomes
//	dot/       - Graphviz DOT rendering
//	prompt/    - interactive or fixed start/end labels
//	cmd/lvpath - the command-line tool
//
// Quick ASCII example:
//
//	nodes.txt     edges.txt
//	1 A           1 2 roadAB
//	2 B           2 3 roadBC
//	3 C
//
//	A───B───C     Shortest path from A to C: A -> B -> C
//
//	go install github.com/katalvlaran/lvpath/cmd/lvpath@latest
package lvpath
