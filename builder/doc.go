// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology constructors that populate
// a core.Graph with typed, directed edges. The fixtures back the traversal
// tests, benchmarks and examples of the bfs and shortestpath packages.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(gopts, bopts, cons...), which creates the
//     graph, resolves the configuration and runs constructors in order.
//   - Topologies: Path, Cycle, Star, Complete, Grid, Diamond, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A"…"Z","AA",…), PrefixIDFn(p) ("v0","v1",…).
//   - Options: WithIDScheme, WithSeed, WithRand, WithRelation, WithBidirectional.
//
// Index contract:
//
//	Every constructor adds its vertices first, in index order idFn(0..n-1),
//	so on a fresh graph vertex i of the topology is row/column i of every
//	matrix core.Graph produces. Edges follow in a documented stable order.
//
// Direction:
//
//	Edges are directed. WithBidirectional adds the reverse of every edge of
//	the undirected topologies (Path, Cycle, Star, Grid, RandomSparse);
//	Complete and Diamond ignore it.
//
// Errors:
//
//	Constructors never panic; they return ErrTooFewVertices,
//	ErrInvalidProbability, ErrNeedRandSource or a wrapped core error.
//	Option constructors panic on programmer error (nil scheme, nil RNG,
//	empty relation).
package builder
