// Package dfs provides depth-first traversal over core.Graph and connected
// component labeling built on it.
//
// DFS(g, start, opts...) walks one tree, or the whole forest with
// WithFullTraversal. Hooks fire in pre-order (OnVisit), post-order (OnExit)
// and per tree root (OnRoot). Components(g) uses the forest walk to group
// vertices, and the loader reports the component count after a build.
package dfs
