// Package lagraph is breadth-first search in the language of linear algebra:
// graphs as sparse boolean matrices, frontiers as sparse vectors, and one
// traversal level as a masked matrix-vector product.
//
// 🚀 What is lagraph?
//
//	A small, allocation-aware Go library that brings together:
//		• Sparse primitives: CSR matrices, bitmap-backed vectors, semirings
//		• Direction-optimizing BFS: push through A, pull through Aᵀ, switch per level
//		• Shortest paths: parent-vector backtracking resolved to concrete edges
//		• A typed property graph that serves per-relation adjacency matrices
//		• Topology builders for fixtures and benchmarks
//
// ✨ Why choose lagraph?
//
//   - Deterministic: identical inputs give identical levels, parents and paths
//   - Observable: logrus debug traces and Prometheus counters, both optional
//   - Concurrent: independent traversals share matrices; pull scans fan out
//     with errgroup
//
// Packages:
//
//	sparse/        Matrix, Vector, Semiring, VxM/MxV kernels, RowDegree
//	bfs/           Run, Options, Tuning (α, β1, β2), Metrics
//	shortestpath/  Reconstruct, Find, Reachable
//	core/          Graph, Vertex, Edge; Views/Adjacency/Transpose/EdgesBetween
//	builder/       Path, Cycle, Star, Complete, Grid, Diamond, RandomSparse
//	cmd/lagraph/   CLI over edge-list files
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", "ROAD")
//	g.AddEdge("B", "C", "ROAD")
//	p, _ := shortestpath.Find(g, "A", "C")
//	fmt.Println(p) // A -[ROAD]-> B -[ROAD]-> C
//
//	go get github.com/katalvlaran/lagraph
package lagraph
