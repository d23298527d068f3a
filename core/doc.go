// Package core defines the central Graph and VertexSet types shared by
// every solver in npcover.
//
// What:
//
//   - Graph: a dense n×n boolean adjacency matrix with a directedness flag
//     and O(1) edge queries. Vertices are plain indices 0..n-1.
//   - VertexSet: an ordered, stack-discipline container of vertex indices,
//     the unit of exchange between all search routines.
//   - Complement: the edge-complement transform, the bridge between clique
//     search and independent-set / vertex-cover search.
//   - ValidateUndirected: the single validation boundary every solver calls
//     before touching a graph.
//
// Why:
//
//   - The solvers in clique, indset, matching and vertexcover are built for
//     dense graphs; a boolean matrix gives O(1) adjacency tests and makes
//     the neighborhood intersections of Bron–Kerbosch cheap and branch-free.
//   - Index vertices keep the recursion state (Current/Candidates/Excluded)
//     compact: a set is just a slice of ints.
//
// Concurrency:
//
//	A Graph is mutable only through AddEdge/RemoveEdge. Solvers never mutate
//	a caller-supplied graph; once construction is done, a Graph is safe for
//	any number of concurrent readers.
//
// Errors:
//
//   - ErrGraphNil: a nil *Graph was passed in.
//   - ErrNegativeOrder: NewGraph called with n < 0.
//   - ErrVertexOutOfRange: an index outside 0..n-1.
//   - ErrSelfLoop: an (i,i) edge was requested.
//   - ErrDirectedGraph: a directed graph reached an undirected-only routine.
//
// Complexity:
//
//   - HasEdge / AddEdge / RemoveEdge: O(1).
//   - Degree / Neighbors: O(V).
//   - Clone / Complement: O(V²).
package core
