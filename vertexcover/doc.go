// Package vertexcover computes minimum (or provably near-minimum) vertex
// covers of a dense undirected core.Graph.
//
// What:
//
//   - Exact: minimum vertex cover as the set-complement of a maximum
//     independent set — exponential, exact on any undirected graph.
//   - Approx: linear-time greedy cover from a maximal matching, at most
//     twice the optimum. Each accepted matching edge contributes two cover
//     vertices while any cover needs at least one vertex per matching
//     edge, hence |cover| ≤ 2·|optimal|.
//   - Bipartite: exact and polynomial for bipartite graphs via König's
//     theorem — a maximum Hopcroft–Karp matching plus one alternating BFS
//     from the free left vertices; the cover is (Left vertices unreached)
//     ∪ (Right vertices reached) and its size equals the matching size.
//
// Choosing a solver:
//
//	Bipartite when the graph 2-colors, Exact when it is small enough to
//	search exhaustively, Approx when neither holds.
//
// Errors:
//
//   - core.ErrGraphNil, core.ErrDirectedGraph: invalid input (all solvers).
//   - matching.ErrNotBipartite: Bipartite on a non-bipartite graph; no
//     partial result escapes.
//   - clique.ErrNoClique: Exact on a zero-vertex graph.
package vertexcover
