// Package npcover is a toolbox for three classic NP-hard problems on
// dense undirected graphs: maximum clique, maximum independent set, and
// minimum vertex cover — exact where exhaustive search is affordable,
// approximate or polynomial where structure allows it.
//
// 🚀 What is npcover?
//
//	A small, focused library that brings together:
//		• Core primitives: a dense boolean adjacency Graph and a stack-style VertexSet
//		• Clique search: exhaustive enumeration and pivoted Bron–Kerbosch
//		• Complement transform: the bridge from cliques to independent sets
//		• Independent sets: maximum IS via clique search on the complement
//		• Vertex covers: exact (via MIS), greedy 2-approximation,
//		  and exact-polynomial for bipartite graphs (Hopcroft–Karp + König)
//		• Builders: deterministic topologies (complete, path, cycle, bipartite)
//
// ✨ Why choose npcover?
//
//   - Honest contracts – every solver states its complexity and failure modes
//   - Sentinel errors – match with errors.Is, never panic on user input
//   - Deterministic – fixed scan orders and tie-breaks, reproducible results
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	core/        — Graph (dense adjacency matrix), VertexSet, Complement
//	build/       — deterministic topology constructors for tests & demos
//	clique/      — exhaustive and Bron–Kerbosch clique enumeration
//	indset/      — maximum independent set
//	matching/    — bipartition detection and Hopcroft–Karp matching
//	vertexcover/ — exact, approximate, and bipartite (König) covers
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    2───3
//
//	has maximum clique {0,2,3} (or {0,1,3}), maximum independent set {1,2},
//	and minimum vertex cover {0,3}.
//
// Dive into the package docs and examples for full usage patterns.
//
//	go get github.com/katalvlaran/npcover
package npcover
