// Package indset computes a maximum independent set of a dense undirected
// core.Graph.
//
// How:
//
//	By the complement duality: no two vertices of a clique in the
//	complement graph are adjacent in the original, so a maximum clique of
//	core.Graph.Complement() is exactly a maximum independent set of the
//	source. The package builds the complement, runs clique.Maximum on it,
//	discards the complement, and hands the resulting VertexSet to the
//	caller unchanged.
//
// Errors:
//
//   - core.ErrGraphNil, core.ErrDirectedGraph: invalid input.
//   - clique.ErrNoClique: zero-vertex graph.
//
// Complexity: dominated by the exponential clique search on the complement.
package indset
